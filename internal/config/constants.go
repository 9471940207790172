package config

import "time"

// Eligibility sources
const (
	EligibilitySourceStatic   = "static"
	EligibilitySourceContract = "contract"
	EligibilitySourceCombined = "combined"
)

// Defaults
const (
	DefaultRPCURL            = "https://rpc-pulsechain.g4mm4.io"
	DefaultIPFSGateway       = "https://ipfs.io/ipfs/"
	DefaultMetadataCacheSize = 1024
	DefaultMetadataTimeout   = 10 * time.Second
)

// Example values shipped in .env.example that must never reach production.
const (
	exampleAPIKey = "generate_with_openssl_rand_hex_32"
)
