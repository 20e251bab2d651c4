// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

/*
Package uaparser classifies raw user-agent strings into three independent
facets: software client, operating system and device.

Classification is driven by an ordered catalog of regular-expression rules
in uap-core format. The first rule whose pattern matches an input is
authoritative for its facet; capture groups and per-field replacement
templates produce the structured result.

Basic flow:
  - load catalog from YAML (`LoadCatalogFile` / `LoadCatalogBytes`)
  - or construct a parser directly (`NewFromFile` / `NewFromBytes`)
  - optionally merge catalogs (`MergeCatalogs`)
  - query facets (`Parse` / `ParseUserAgent` / `ParseOS` / `ParseDevice`)

Each facet query exists in two behaviorally equivalent forms: the ordered
scan (`ParseDevice`) and the set-accelerated form (`ParseDeviceSet`) that
pre-filters through one aggregate multi-pattern matcher before running a
single full match.

A compiled Parser is immutable and safe for concurrent use without
coordination. Queries never fail; when no rule matches, the facet default
record (family "Other") is returned. For process-wide sharing of parsers
compiled from files, use `Provider`.
*/
package uaparser
