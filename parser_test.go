// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testdataParser compiles the shared testdata catalog.
func testdataParser(t *testing.T) *Parser {
	t.Helper()

	p, err := NewFromFile(filepath.Join("testdata", "regexes.yaml"))
	require.NoError(t, err)

	return p
}

func TestNewParserInvalidRule(t *testing.T) {
	t.Parallel()

	_, err := NewParser(Catalog{
		OSParsers: []OSRule{
			{Regex: `(Windows NT) (\d+)\.(\d+)`},
			{Regex: `broken(`},
		},
	})
	require.ErrorIs(t, err, ErrInvalidPattern)
	assert.Contains(t, err.Error(), "os rule 1")
}

func TestNewParserEmptyCatalog(t *testing.T) {
	t.Parallel()

	p, err := NewParser(Catalog{})
	require.NoError(t, err)

	client := p.Parse("Mozilla/5.0 whatever")
	assert.Equal(t, DefaultUserAgent(), client.UserAgent)
	assert.Equal(t, DefaultOS(), client.OS)
	assert.Equal(t, DefaultDevice(), client.Device)
}

func TestParseUserAgent(t *testing.T) {
	t.Parallel()

	p := testdataParser(t)

	ua := p.ParseUserAgent("Mozilla/5.0 (X11; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0")
	assert.Equal(t, UserAgent{Family: "Firefox", Major: "89", Minor: "0"}, ua)

	ua = p.ParseUserAgent("curl/7.64.1")
	assert.Equal(t, DefaultUserAgent(), ua)
}

func TestParseUserAgentPriority(t *testing.T) {
	t.Parallel()

	p := testdataParser(t)

	// Chrome UAs also carry AppleWebKit; the earlier Chrome rule must win
	// under both strategies.
	const ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36"

	ordered := p.ParseUserAgent(ua)
	assert.Equal(t, "Chrome", ordered.Family)
	assert.Equal(t, "91", ordered.Major)

	set := p.ParseUserAgentSet(ua)
	assert.Equal(t, ordered, set)
}

func TestParseOS(t *testing.T) {
	t.Parallel()

	p := testdataParser(t)

	res := p.ParseOS("Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	assert.Equal(t, OS{Family: "Windows", Major: "10", Minor: "0"}, res)

	res = p.ParseOS("Mozilla/5.0 (iPhone; CPU iPhone OS 15_0 like Mac OS X)")
	assert.Equal(t, OS{Family: "iOS", Major: "15", Minor: "0"}, res)

	res = p.ParseOS("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)")
	assert.Equal(t, OS{Family: "Mac OS X", Major: "10", Minor: "15", Patch: "7"}, res)
}

func TestParseDevicePriority(t *testing.T) {
	t.Parallel()

	p := testdataParser(t)

	// Both device rules match; the first-in-catalog rule is authoritative
	// under both strategies.
	const ua = "Mozilla/5.0 (iPhone; CPU iPhone OS 15_0 like Mac OS X)"

	ordered := p.ParseDevice(ua)
	assert.Equal(t, Device{Family: "iPhone", Brand: "Apple", Model: "iPhone"}, ordered)
	assert.Equal(t, ordered, p.ParseDeviceSet(ua))

	// Without the leading parenthesis only the generic rule matches.
	generic := p.ParseDevice("iPad download agent")
	assert.Equal(t, Device{Family: "GenericAppleDevice", Model: "iPad"}, generic)
	assert.Equal(t, generic, p.ParseDeviceSet("iPad download agent"))
}

func TestParseDefaultsOnNoMatch(t *testing.T) {
	t.Parallel()

	p := testdataParser(t)

	for _, ua := range []string{"", "curl/7.64.1", "totally unrelated input"} {
		assert.Equal(t, DefaultUserAgent(), p.ParseUserAgent(ua), "ordered ua %q", ua)
		assert.Equal(t, DefaultUserAgent(), p.ParseUserAgentSet(ua), "set ua %q", ua)
		assert.Equal(t, DefaultOS(), p.ParseOS(ua), "ordered os %q", ua)
		assert.Equal(t, DefaultOS(), p.ParseOSSet(ua), "set os %q", ua)
		assert.Equal(t, DefaultDevice(), p.ParseDevice(ua), "ordered device %q", ua)
		assert.Equal(t, DefaultDevice(), p.ParseDeviceSet(ua), "set device %q", ua)
	}
}

func TestParseComposite(t *testing.T) {
	t.Parallel()

	p := testdataParser(t)

	client := p.Parse("Mozilla/5.0 (iPhone; CPU iPhone OS 15_0 like Mac OS X) AppleWebKit/605.1.15")
	assert.Equal(t, "WebKit", client.UserAgent.Family)
	assert.Equal(t, "iOS", client.OS.Family)
	assert.Equal(t, "iPhone", client.Device.Family)
}

// TestStrategyEquivalence runs every fixture input through both matching
// strategies for all three facets. Results must be identical; flagged
// rules keep literal case in these inputs so the aggregate sets see the
// same matches as the individual matchers.
func TestStrategyEquivalence(t *testing.T) {
	t.Parallel()

	p := testdataParser(t)

	inputs := []string{
		"",
		"curl/7.64.1",
		"Mozilla/5.0 (X11; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 15_0 like Mac OS X) AppleWebKit/605.1.15",
		"Mozilla/5.0 (iPad; CPU OS 14_7_1 like Mac OS X)",
		"Opera/9.80 (Windows NT 6.1) Presto/2.12.388",
		"HbbTV/1.1.1 (;;;;) Mozilla/5.0",
		"Mozilla/5.0 (Linux; android 11; SAMSUNG SM-G991B)",
		"Mozilla/5.0 (Linux; android 6.0.1; Nexus 5 Build/M4B30Z)",
		"iPad download agent",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
	}

	for _, ua := range inputs {
		assert.Equal(t, p.ParseUserAgent(ua), p.ParseUserAgentSet(ua), "user agent facet, input %q", ua)
		assert.Equal(t, p.ParseOS(ua), p.ParseOSSet(ua), "os facet, input %q", ua)
		assert.Equal(t, p.ParseDevice(ua), p.ParseDeviceSet(ua), "device facet, input %q", ua)
	}
}

// TestFlaggedRuleSetAsymmetry pins the documented divergence: per-rule
// case-insensitivity applies to individual compilation only, so inputs
// that rely on it are found by the ordered scan but not by the aggregate
// pre-filter.
func TestFlaggedRuleSetAsymmetry(t *testing.T) {
	t.Parallel()

	p := testdataParser(t)

	const ua = "Mozilla/5.0 (Linux; Android 11)"

	ordered := p.ParseOS(ua)
	assert.Equal(t, OS{Family: "Android", Major: "11"}, ordered)

	set := p.ParseOSSet(ua)
	assert.Equal(t, DefaultOS(), set)
}

func TestParseDeterminism(t *testing.T) {
	t.Parallel()

	p := testdataParser(t)

	const ua = "Mozilla/5.0 (iPhone; CPU iPhone OS 15_0 like Mac OS X) AppleWebKit/605.1.15"

	first := p.Parse(ua)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, p.Parse(ua))
	}
}

func TestParseConcurrent(t *testing.T) {
	t.Parallel()

	p := testdataParser(t)

	const ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36"
	want := p.Parse(ua)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				if got := p.Parse(ua); got != want {
					t.Errorf("concurrent Parse mismatch: %+v", got)
					return
				}

				if got := p.ParseDeviceSet(ua); got != want.Device {
					t.Errorf("concurrent ParseDeviceSet mismatch: %+v", got)
					return
				}
			}
		}()
	}

	wg.Wait()
}
