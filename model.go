// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

// UnknownFamily is the sentinel family reported when no rule matches.
const UnknownFamily = "Other"

// UserAgentRule is one client rule entry in uap-core format.
type UserAgentRule struct {
	// Regex is the rule pattern, possibly in the catalog dialect.
	Regex string `json:"regex" yaml:"regex"`
	// FamilyReplacement is the family template; empty means capture group 1.
	FamilyReplacement string `json:"family_replacement,omitempty" yaml:"family_replacement,omitempty"`
	// V1Replacement is the major version template; empty means capture group 2.
	V1Replacement string `json:"v1_replacement,omitempty" yaml:"v1_replacement,omitempty"`
	// V2Replacement is the minor version template; empty means capture group 3.
	V2Replacement string `json:"v2_replacement,omitempty" yaml:"v2_replacement,omitempty"`
	// V3Replacement is the patch version template; empty means capture group 4.
	V3Replacement string `json:"v3_replacement,omitempty" yaml:"v3_replacement,omitempty"`
}

// OSRule is one operating-system rule entry in uap-core format.
type OSRule struct {
	// Regex is the rule pattern, possibly in the catalog dialect.
	Regex string `json:"regex" yaml:"regex"`
	// RegexFlag holds dialect compilation flags ("i" enables case folding).
	RegexFlag string `json:"regex_flag,omitempty" yaml:"regex_flag,omitempty"`
	// OSReplacement is the family template; empty means capture group 1.
	OSReplacement string `json:"os_replacement,omitempty" yaml:"os_replacement,omitempty"`
	// OSV1Replacement is the major version template; empty means capture group 2.
	OSV1Replacement string `json:"os_v1_replacement,omitempty" yaml:"os_v1_replacement,omitempty"`
	// OSV2Replacement is the minor version template; empty means capture group 3.
	OSV2Replacement string `json:"os_v2_replacement,omitempty" yaml:"os_v2_replacement,omitempty"`
	// OSV3Replacement is the patch version template; empty means capture group 4.
	OSV3Replacement string `json:"os_v3_replacement,omitempty" yaml:"os_v3_replacement,omitempty"`
	// OSV4Replacement is the patch-minor template; empty means capture group 5.
	OSV4Replacement string `json:"os_v4_replacement,omitempty" yaml:"os_v4_replacement,omitempty"`
}

// DeviceRule is one device rule entry in uap-core format.
type DeviceRule struct {
	// Regex is the rule pattern, possibly in the catalog dialect.
	Regex string `json:"regex" yaml:"regex"`
	// RegexFlag holds dialect compilation flags ("i" enables case folding).
	RegexFlag string `json:"regex_flag,omitempty" yaml:"regex_flag,omitempty"`
	// DeviceReplacement is the family template; empty means capture group 1.
	DeviceReplacement string `json:"device_replacement,omitempty" yaml:"device_replacement,omitempty"`
	// BrandReplacement is the brand template; empty means no brand.
	BrandReplacement string `json:"brand_replacement,omitempty" yaml:"brand_replacement,omitempty"`
	// ModelReplacement is the model template; empty means capture group 1.
	ModelReplacement string `json:"model_replacement,omitempty" yaml:"model_replacement,omitempty"`
}

// Catalog is a fully parsed rule file: three ordered rule lists, one per
// facet. Entry order defines rule priority and must be preserved exactly
// as authored.
type Catalog struct {
	// UserAgentParsers are client rules in priority order.
	UserAgentParsers []UserAgentRule `json:"user_agent_parsers" yaml:"user_agent_parsers"`
	// OSParsers are operating-system rules in priority order.
	OSParsers []OSRule `json:"os_parsers" yaml:"os_parsers"`
	// DeviceParsers are device rules in priority order.
	DeviceParsers []DeviceRule `json:"device_parsers" yaml:"device_parsers"`
}

// UserAgent is the client facet result.
type UserAgent struct {
	// Family is the client family name, UnknownFamily when nothing matched.
	Family string `json:"family" yaml:"family"`
	// Major is the major version component, empty when absent.
	Major string `json:"major,omitempty" yaml:"major,omitempty"`
	// Minor is the minor version component, empty when absent.
	Minor string `json:"minor,omitempty" yaml:"minor,omitempty"`
	// Patch is the patch version component, empty when absent.
	Patch string `json:"patch,omitempty" yaml:"patch,omitempty"`
}

// OS is the operating-system facet result.
type OS struct {
	// Family is the OS family name, UnknownFamily when nothing matched.
	Family string `json:"family" yaml:"family"`
	// Major is the major version component, empty when absent.
	Major string `json:"major,omitempty" yaml:"major,omitempty"`
	// Minor is the minor version component, empty when absent.
	Minor string `json:"minor,omitempty" yaml:"minor,omitempty"`
	// Patch is the patch version component, empty when absent.
	Patch string `json:"patch,omitempty" yaml:"patch,omitempty"`
	// PatchMinor is the patch-minor version component, empty when absent.
	PatchMinor string `json:"patch_minor,omitempty" yaml:"patch_minor,omitempty"`
}

// Device is the device facet result.
type Device struct {
	// Family is the device family name, UnknownFamily when nothing matched.
	Family string `json:"family" yaml:"family"`
	// Brand is the device brand, empty when absent.
	Brand string `json:"brand,omitempty" yaml:"brand,omitempty"`
	// Model is the device model, empty when absent.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
}

// Client aggregates the three independent facet results for one input.
type Client struct {
	// UserAgent is the client facet result.
	UserAgent UserAgent `json:"user_agent" yaml:"user_agent"`
	// OS is the operating-system facet result.
	OS OS `json:"os" yaml:"os"`
	// Device is the device facet result.
	Device Device `json:"device" yaml:"device"`
}

// DefaultUserAgent returns the client no-match record.
func DefaultUserAgent() UserAgent {
	return UserAgent{Family: UnknownFamily}
}

// DefaultOS returns the operating-system no-match record.
func DefaultOS() OS {
	return OS{Family: UnknownFamily}
}

// DefaultDevice returns the device no-match record.
func DefaultDevice() Device {
	return Device{Family: UnknownFamily}
}
