// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	matches := []string{"whole", "Nokia", "Lumia", "920", ""}

	cases := []struct {
		name     string
		template string
		want     string
	}{
		{name: "single group", template: "$1", want: "Nokia"},
		{name: "two groups", template: "$1 $2", want: "Nokia Lumia"},
		{name: "literal prefix", template: "Brand $3", want: "Brand 920"},
		{name: "absent group", template: "$1$4", want: "Nokia"},
		{name: "no placeholder", template: "Fixed Name", want: "Fixed Name"},
		{name: "trims result", template: " $2 $4 ", want: "Lumia"},
		{name: "empty template", template: "", want: ""},
		{name: "dollar without digit", template: "US$ price", want: "US$ price"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, substitute(tc.template, matches))
		})
	}
}

func TestSubstituteNoCaptureGroups(t *testing.T) {
	t.Parallel()

	// A match without capture groups keeps the template verbatim, even
	// when it contains a placeholder marker.
	assert.Equal(t, "$1", substitute("$1", []string{"whole"}))
	assert.Equal(t, "trimmed", substitute("  trimmed  ", []string{"whole"}))
}

func TestSubstituteMultiDigitGroups(t *testing.T) {
	t.Parallel()

	matches := make([]string, 13)
	matches[0] = "whole"
	matches[1] = "one"
	matches[12] = "twelve"

	// "$12" must resolve to group 12, not group 1 followed by "2".
	assert.Equal(t, "twelve", substitute("$12", matches))
	assert.Equal(t, "one twelve", substitute("$1 $12", matches))
}

func TestFieldValue(t *testing.T) {
	t.Parallel()

	matches := []string{"whole", "Firefox", "89", "0"}

	assert.Equal(t, "Firefox", fieldValue("", matches, 1))
	assert.Equal(t, "89", fieldValue("", matches, 2))
	assert.Equal(t, "", fieldValue("", matches, 7), "out-of-range group is absent")
	assert.Equal(t, "", fieldValue("", matches, 0), "no conventional group is absent")
	assert.Equal(t, "v89", fieldValue("v$2", matches, 1), "template wins over group")
}

func TestFamilyValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Firefox", familyValue("", []string{"whole", "Firefox"}))
	assert.Equal(t, "Fixed", familyValue("Fixed", []string{"whole", "Firefox"}))
	assert.Equal(t, UnknownFamily, familyValue("", []string{"whole", ""}), "empty capture falls back to sentinel")
	assert.Equal(t, UnknownFamily, familyValue("$2", []string{"whole", "x", ""}), "empty substitution falls back to sentinel")
	assert.Equal(t, "Spaced", familyValue("", []string{"whole", "  Spaced  "}), "raw family fallback is trimmed")
}
