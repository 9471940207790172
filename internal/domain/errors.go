package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidAddress    = "invalid address"
	ErrMsgInvalidAmount     = "invalid mint amount"
	ErrMsgAmountExceedsMax  = "amount exceeds maximum mint amount"
	ErrMsgInvalidPrice      = "invalid unit price"
	ErrMsgInvalidTier       = "invalid tier"
	ErrMsgInvalidTokenRange = "invalid token range"

	// Pack selection errors
	ErrMsgNoPacksSelected = "no packs selected"
	ErrMsgNotAPack        = "token is not a pack"
	ErrMsgDuplicatePack   = "pack selected more than once"
	ErrMsgPackNotOwned    = "pack not owned by address"

	// Chain errors
	ErrMsgContractRead      = "contract read failed"
	ErrMsgMetadataFetch     = "metadata fetch failed"
	ErrMsgChainMismatch     = "connected to the wrong chain"
	ErrMsgSignerUnavailable = "no transaction signer configured"
	ErrMsgTransactionFailed = "transaction failed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidAddress    = errors.New(ErrMsgInvalidAddress)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrAmountExceedsMax  = errors.New(ErrMsgAmountExceedsMax)
	ErrInvalidPrice      = errors.New(ErrMsgInvalidPrice)
	ErrInvalidTier       = errors.New(ErrMsgInvalidTier)
	ErrInvalidTokenRange = errors.New(ErrMsgInvalidTokenRange)

	ErrNoPacksSelected = errors.New(ErrMsgNoPacksSelected)
	ErrNotAPack        = errors.New(ErrMsgNotAPack)
	ErrDuplicatePack   = errors.New(ErrMsgDuplicatePack)
	ErrPackNotOwned    = errors.New(ErrMsgPackNotOwned)

	ErrContractRead      = errors.New(ErrMsgContractRead)
	ErrMetadataFetch     = errors.New(ErrMsgMetadataFetch)
	ErrChainMismatch     = errors.New(ErrMsgChainMismatch)
	ErrSignerUnavailable = errors.New(ErrMsgSignerUnavailable)
	ErrTransactionFailed = errors.New(ErrMsgTransactionFailed)
)
