// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

import (
	"path/filepath"
	"sync"
)

// Provider shares compiled parsers across callers, keyed by catalog file
// path.
//
// Compiling a full uap-core catalog is expensive; a Provider does it once
// per file and hands the same immutable Parser to every caller. Failed
// constructions are cached too, so repeated calls for a broken catalog
// return the same error deterministically instead of re-reading the file.
type Provider struct {
	// mu guards cache access.
	mu sync.Mutex
	// cache stores one compiled parser or construction error per path.
	cache map[string]*cachedParser
}

// cachedParser stores one construction outcome.
type cachedParser struct {
	// parser is nil when construction failed.
	parser *Parser
	// err stores the construction error for deterministic repeated calls.
	err error
}

// NewProvider creates an empty parser provider.
func NewProvider() *Provider {
	return &Provider{
		cache: make(map[string]*cachedParser),
	}
}

// Get returns the compiled parser for a catalog file, building it on first
// use. Concurrent callers for the same path share one construction.
func (p *Provider) Get(path string) (*Parser, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if cached, ok := p.cache[key]; ok {
		return cached.parser, cached.err
	}

	parser, err := NewFromFile(path)
	p.cache[key] = &cachedParser{parser: parser, err: err}

	return parser, err
}

// Invalidate drops the cached parser for a catalog file so the next Get
// rebuilds it, e.g. after the file was updated on disk.
func (p *Provider) Invalidate(path string) {
	if p == nil {
		return
	}

	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.cache, key)
}
