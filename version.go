// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

import "strings"

// joinVersion joins dotted version components, stopping at the first
// absent one so "89" and "89.0.2" both render naturally.
func joinVersion(components ...string) string {
	var b strings.Builder

	for i, c := range components {
		if c == "" {
			break
		}

		if i > 0 {
			b.WriteByte('.')
		}

		b.WriteString(c)
	}

	return b.String()
}

// VersionString returns the dotted client version of present components.
func (ua UserAgent) VersionString() string {
	return joinVersion(ua.Major, ua.Minor, ua.Patch)
}

// String returns the client family with its version when present.
func (ua UserAgent) String() string {
	if v := ua.VersionString(); v != "" {
		return ua.Family + " " + v
	}

	return ua.Family
}

// VersionString returns the dotted OS version of present components.
func (os OS) VersionString() string {
	return joinVersion(os.Major, os.Minor, os.Patch, os.PatchMinor)
}

// String returns the OS family with its version when present.
func (os OS) String() string {
	if v := os.VersionString(); v != "" {
		return os.Family + " " + v
	}

	return os.Family
}

// String returns the device family.
func (d Device) String() string {
	return d.Family
}
