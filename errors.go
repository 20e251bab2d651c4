// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

import "errors"

// Sentinel errors for uaparser operations. All of them surface only at
// construction time; query operations have no error path.
var (
	// ErrInvalidCatalog indicates catalog input that could not be read or decoded.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrInvalidPattern indicates a rule pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrSetTooLarge indicates an aggregate pattern set exceeding the size budget.
	ErrSetTooLarge = errors.New("aggregate pattern set too large")
	// ErrNilProvider indicates a nil Provider receiver.
	ErrNilProvider = errors.New("provider is nil")
)
