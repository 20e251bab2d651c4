// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

import (
	"regexp"
	"strings"
)

// invalidEscapes matches backslash escapes that are valid in the catalog
// dialect but meaningless to the target engine: "\!", "\/" and "\ ".
var invalidEscapes = regexp.MustCompile(`\\([! /])`)

// cleanEscapes rewrites catalog-dialect escapes to their literal form so
// the pattern compiles in the target engine.
//
// The transform is pure, total and idempotent; it runs once per rule at
// construction time, before compilation.
func cleanEscapes(pattern string) string {
	if !strings.Contains(pattern, `\`) {
		return pattern
	}

	return invalidEscapes.ReplaceAllString(pattern, "$1")
}
