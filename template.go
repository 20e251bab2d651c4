// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

import (
	"strconv"
	"strings"
)

// substitute expands "$N" placeholders in a replacement template with the
// capture groups of one match.
//
// matches is the full submatch slice (whole match at index 0); groups that
// did not participate substitute as empty strings. Templates without "$",
// and matches without capture groups, skip substitution entirely. The
// result is always trimmed of surrounding whitespace.
func substitute(template string, matches []string) string {
	if !strings.Contains(template, "$") || len(matches) < 2 {
		return strings.TrimSpace(template)
	}

	out := template
	// Highest group first so "$12" is never consumed as "$1" plus "2".
	for i := len(matches) - 1; i >= 1; i-- {
		out = strings.ReplaceAll(out, "$"+strconv.Itoa(i), matches[i])
	}

	return strings.TrimSpace(out)
}

// fieldValue resolves one optional facet field: template substitution when
// a template is present, the conventional capture group otherwise. Empty
// results stand for absent fields. group 0 means no conventional group.
func fieldValue(template string, matches []string, group int) string {
	if template != "" {
		return substitute(template, matches)
	}

	if group > 0 && group < len(matches) {
		return matches[group]
	}

	return ""
}

// familyValue resolves the mandatory family field from capture group 1,
// falling back to UnknownFamily when the computed value is empty.
func familyValue(template string, matches []string) string {
	family := strings.TrimSpace(fieldValue(template, matches, 1))
	if family == "" {
		return UnknownFamily
	}

	return family
}
