// Package metadata resolves token URIs and fetches their display documents.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/logger"
	"github.com/bulbacards/packmint/internal/metrics"
)

// maxDocumentBytes bounds a metadata document.
const maxDocumentBytes = 1 << 20

// URIReader reads a token's URI template from the contract.
type URIReader interface {
	URI(ctx context.Context, id *big.Int) (string, error)
}

// Fetcher loads token metadata. Documents are immutable per resolved URI and
// are memoised in an LRU.
type Fetcher struct {
	uris    URIReader
	client  *http.Client
	gateway string
	cache   *lru.Cache[string, document]
}

type document struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// NewFetcher creates a Fetcher. cacheSize must be positive.
func NewFetcher(uris URIReader, client *http.Client, gateway string, cacheSize int) (*Fetcher, error) {
	cache, err := lru.New[string, document](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create metadata cache: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{uris: uris, client: client, gateway: gateway, cache: cache}, nil
}

// Fetch returns the metadata for token id. Any failure wraps domain.ErrMetadataFetch.
func (f *Fetcher) Fetch(ctx context.Context, id uint64) (domain.Metadata, error) {
	template, err := f.uris.URI(ctx, new(big.Int).SetUint64(id))
	if err != nil {
		metrics.MetadataFetchErrors.Inc()
		return domain.Metadata{ID: id}, fmt.Errorf("%w: token %d: %v", domain.ErrMetadataFetch, id, err)
	}
	if template == "" {
		metrics.MetadataFetchErrors.Inc()
		return domain.Metadata{ID: id}, fmt.Errorf("%w: token %d has no uri", domain.ErrMetadataFetch, id)
	}

	uri := ResolveURI(template, id, f.gateway)
	doc, err := f.document(ctx, uri)
	if err != nil {
		metrics.MetadataFetchErrors.Inc()
		logger.FromContext(ctx).Warn(LogMsgFetchFailed, "token_id", id, "uri", uri, "error", err)
		return domain.Metadata{ID: id}, fmt.Errorf("%w: token %d: %v", domain.ErrMetadataFetch, id, err)
	}

	return domain.Metadata{
		ID:          id,
		Name:        doc.Name,
		Description: doc.Description,
		Image:       RewriteIPFS(doc.Image, f.gateway),
	}, nil
}

func (f *Fetcher) document(ctx context.Context, uri string) (document, error) {
	if doc, ok := f.cache.Get(uri); ok {
		metrics.MetadataCacheHits.Inc()
		return doc, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return document{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return document{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return document{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var doc document
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxDocumentBytes)).Decode(&doc); err != nil {
		return document{}, fmt.Errorf("decode document: %w", err)
	}

	f.cache.Add(uri, doc)
	return doc, nil
}
