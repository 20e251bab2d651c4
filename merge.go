// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

// MergeCatalogs merges catalogs preserving input order per facet.
//
// Rules of earlier catalogs keep priority over rules of later ones, which
// makes prepending a small custom catalog to an upstream uap-core catalog
// a one-call operation.
func MergeCatalogs(catalogs ...Catalog) Catalog {
	uaTotal, osTotal, deviceTotal := 0, 0, 0
	for _, c := range catalogs {
		uaTotal += len(c.UserAgentParsers)
		osTotal += len(c.OSParsers)
		deviceTotal += len(c.DeviceParsers)
	}

	out := Catalog{
		UserAgentParsers: make([]UserAgentRule, 0, uaTotal),
		OSParsers:        make([]OSRule, 0, osTotal),
		DeviceParsers:    make([]DeviceRule, 0, deviceTotal),
	}

	for _, c := range catalogs {
		out.UserAgentParsers = append(out.UserAgentParsers, c.UserAgentParsers...)
		out.OSParsers = append(out.OSParsers, c.OSParsers...)
		out.DeviceParsers = append(out.DeviceParsers, c.DeviceParsers...)
	}

	return out
}
