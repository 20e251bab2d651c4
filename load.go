// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalog decodes a uap-core rule catalog from reader.
//
// Rule order inside each facet list is preserved exactly as authored.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var catalog Catalog

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&catalog); err != nil {
		return Catalog{}, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	return catalog, nil
}

// LoadCatalogBytes decodes a uap-core rule catalog from raw bytes.
//
// Useful together with go:embed to compile a regexes.yaml into the
// consuming application.
func LoadCatalogBytes(data []byte) (Catalog, error) {
	var catalog Catalog

	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	return catalog, nil
}

// LoadCatalogFile reads and decodes a uap-core rule catalog from a file.
func LoadCatalogFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("%w: open: %v", ErrInvalidCatalog, err)
	}
	defer func() { _ = f.Close() }()

	catalog, err := LoadCatalog(f)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog file %s: %w", path, err)
	}

	return catalog, nil
}

// NewFromReader loads a catalog from reader and compiles a Parser.
func NewFromReader(r io.Reader) (*Parser, error) {
	catalog, err := LoadCatalog(r)
	if err != nil {
		return nil, err
	}

	return NewParser(catalog)
}

// NewFromBytes loads a catalog from raw bytes and compiles a Parser.
func NewFromBytes(data []byte) (*Parser, error) {
	catalog, err := LoadCatalogBytes(data)
	if err != nil {
		return nil, err
	}

	return NewParser(catalog)
}

// NewFromFile loads a catalog file and compiles a Parser.
func NewFromFile(path string) (*Parser, error) {
	catalog, err := LoadCatalogFile(path)
	if err != nil {
		return nil, err
	}

	return NewParser(catalog)
}
