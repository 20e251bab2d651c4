// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

import (
	"fmt"
	"regexp"
	"strings"
)

// compilePattern normalizes and compiles one rule pattern in the target
// engine. flag "i" enables case-insensitive matching for this rule only.
func compilePattern(pattern string, flag string) (*regexp.Regexp, error) {
	normalized := cleanEscapes(pattern)
	if strings.Contains(flag, "i") {
		normalized = "(?i)" + normalized
	}

	re, err := regexp.Compile(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, pattern, err)
	}

	return re, nil
}

// userAgentPattern is one compiled client rule with its field templates.
type userAgentPattern struct {
	// re is the individually compiled rule pattern.
	re *regexp.Regexp
	// family is the family template; empty means capture group 1.
	family string
	// v1, v2, v3 are version templates; empty means groups 2, 3 and 4.
	v1 string
	v2 string
	v3 string
}

// compileUserAgentRule compiles one client catalog entry.
func compileUserAgentRule(rule UserAgentRule) (userAgentPattern, error) {
	re, err := compilePattern(rule.Regex, "")
	if err != nil {
		return userAgentPattern{}, err
	}

	return userAgentPattern{
		re:     re,
		family: rule.FamilyReplacement,
		v1:     rule.V1Replacement,
		v2:     rule.V2Replacement,
		v3:     rule.V3Replacement,
	}, nil
}

// tryParse extracts the client record when the rule matches.
func (p *userAgentPattern) tryParse(ua string) (UserAgent, bool) {
	matches := p.re.FindStringSubmatch(ua)
	if matches == nil {
		return UserAgent{}, false
	}

	return UserAgent{
		Family: familyValue(p.family, matches),
		Major:  fieldValue(p.v1, matches, 2),
		Minor:  fieldValue(p.v2, matches, 3),
		Patch:  fieldValue(p.v3, matches, 4),
	}, true
}

// osPattern is one compiled operating-system rule with its field templates.
type osPattern struct {
	// re is the individually compiled rule pattern.
	re *regexp.Regexp
	// family is the family template; empty means capture group 1.
	family string
	// v1..v4 are version templates; empty means groups 2 through 5.
	v1 string
	v2 string
	v3 string
	v4 string
}

// compileOSRule compiles one operating-system catalog entry.
func compileOSRule(rule OSRule) (osPattern, error) {
	re, err := compilePattern(rule.Regex, rule.RegexFlag)
	if err != nil {
		return osPattern{}, err
	}

	return osPattern{
		re:     re,
		family: rule.OSReplacement,
		v1:     rule.OSV1Replacement,
		v2:     rule.OSV2Replacement,
		v3:     rule.OSV3Replacement,
		v4:     rule.OSV4Replacement,
	}, nil
}

// tryParse extracts the operating-system record when the rule matches.
func (p *osPattern) tryParse(ua string) (OS, bool) {
	matches := p.re.FindStringSubmatch(ua)
	if matches == nil {
		return OS{}, false
	}

	return OS{
		Family:     familyValue(p.family, matches),
		Major:      fieldValue(p.v1, matches, 2),
		Minor:      fieldValue(p.v2, matches, 3),
		Patch:      fieldValue(p.v3, matches, 4),
		PatchMinor: fieldValue(p.v4, matches, 5),
	}, true
}

// devicePattern is one compiled device rule with its field templates.
type devicePattern struct {
	// re is the individually compiled rule pattern.
	re *regexp.Regexp
	// family is the family template; empty means capture group 1.
	family string
	// brand is the brand template; empty means no brand.
	brand string
	// model is the model template; empty means capture group 1.
	model string
}

// compileDeviceRule compiles one device catalog entry.
func compileDeviceRule(rule DeviceRule) (devicePattern, error) {
	re, err := compilePattern(rule.Regex, rule.RegexFlag)
	if err != nil {
		return devicePattern{}, err
	}

	return devicePattern{
		re:     re,
		family: rule.DeviceReplacement,
		brand:  rule.BrandReplacement,
		model:  rule.ModelReplacement,
	}, nil
}

// tryParse extracts the device record when the rule matches.
//
// Brand has no conventional capture position in uap-core data, so a rule
// without a brand template yields an absent brand. Model falls back to
// capture group 1, same as family.
func (p *devicePattern) tryParse(ua string) (Device, bool) {
	matches := p.re.FindStringSubmatch(ua)
	if matches == nil {
		return Device{}, false
	}

	return Device{
		Family: familyValue(p.family, matches),
		Brand:  fieldValue(p.brand, matches, 0),
		Model:  fieldValue(p.model, matches, 1),
	}, true
}
