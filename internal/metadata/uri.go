package metadata

import (
	"fmt"
	"strings"
)

const (
	idPlaceholder = "{id}"
	ipfsScheme    = "ipfs://"
)

// ResolveURI substitutes the ERC-1155 {id} placeholder with the id as 64
// lowercase hex digits and rewrites ipfs:// URIs onto gateway.
func ResolveURI(template string, id uint64, gateway string) string {
	uri := template
	if strings.Contains(uri, idPlaceholder) {
		uri = strings.ReplaceAll(uri, idPlaceholder, fmt.Sprintf("%064x", id))
	}
	return RewriteIPFS(uri, gateway)
}

// RewriteIPFS maps ipfs://<cid>/<path> onto an HTTP gateway. Other URIs are
// returned untouched, as is everything when gateway is empty.
func RewriteIPFS(uri, gateway string) string {
	if gateway == "" || !strings.HasPrefix(uri, ipfsScheme) {
		return uri
	}
	rest := strings.TrimPrefix(uri, ipfsScheme)
	rest = strings.TrimPrefix(rest, "ipfs/")
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}
	return gateway + rest
}
