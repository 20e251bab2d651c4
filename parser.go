// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

import "fmt"

// Parser classifies user-agent strings against one compiled rule catalog.
//
// Each facet owns an ordered list of individually compiled rules plus one
// aggregate set matcher compiled from the same ordered, normalized pattern
// list. Both views share index assignment; the set matcher is only a fast
// pre-filter and never changes which rule wins.
//
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	userAgentPatterns []userAgentPattern
	userAgentSet      *patternSet
	osPatterns        []osPattern
	osSet             *patternSet
	devicePatterns    []devicePattern
	deviceSet         *patternSet
}

// NewParser compiles a parsed catalog into a ready Parser.
//
// Construction is all-or-nothing: the first rule that fails to compile, or
// an aggregate set over budget, aborts with an error naming the facet and
// catalog index. Per-rule flags apply to individual compilation only; the
// aggregate sets are built from unflagged normalized patterns.
func NewParser(catalog Catalog) (*Parser, error) {
	p := &Parser{
		userAgentPatterns: make([]userAgentPattern, 0, len(catalog.UserAgentParsers)),
		osPatterns:        make([]osPattern, 0, len(catalog.OSParsers)),
		devicePatterns:    make([]devicePattern, 0, len(catalog.DeviceParsers)),
	}

	uaSources := make([]string, 0, len(catalog.UserAgentParsers))
	for i, rule := range catalog.UserAgentParsers {
		compiled, err := compileUserAgentRule(rule)
		if err != nil {
			return nil, fmt.Errorf("user agent rule %d: %w", i, err)
		}

		p.userAgentPatterns = append(p.userAgentPatterns, compiled)
		uaSources = append(uaSources, cleanEscapes(rule.Regex))
	}

	osSources := make([]string, 0, len(catalog.OSParsers))
	for i, rule := range catalog.OSParsers {
		compiled, err := compileOSRule(rule)
		if err != nil {
			return nil, fmt.Errorf("os rule %d: %w", i, err)
		}

		p.osPatterns = append(p.osPatterns, compiled)
		osSources = append(osSources, cleanEscapes(rule.Regex))
	}

	deviceSources := make([]string, 0, len(catalog.DeviceParsers))
	for i, rule := range catalog.DeviceParsers {
		compiled, err := compileDeviceRule(rule)
		if err != nil {
			return nil, fmt.Errorf("device rule %d: %w", i, err)
		}

		p.devicePatterns = append(p.devicePatterns, compiled)
		deviceSources = append(deviceSources, cleanEscapes(rule.Regex))
	}

	var err error
	if p.userAgentSet, err = compileSet(uaSources); err != nil {
		return nil, fmt.Errorf("user agent rules: %w", err)
	}

	if p.osSet, err = compileSet(osSources); err != nil {
		return nil, fmt.Errorf("os rules: %w", err)
	}

	if p.deviceSet, err = compileSet(deviceSources); err != nil {
		return nil, fmt.Errorf("device rules: %w", err)
	}

	return p, nil
}

// Parse returns the composite classification of one user-agent string.
func (p *Parser) Parse(ua string) Client {
	return Client{
		UserAgent: p.ParseUserAgent(ua),
		OS:        p.ParseOS(ua),
		Device:    p.ParseDevice(ua),
	}
}

// ParseUserAgent returns the client facet via the ordered first-match scan.
func (p *Parser) ParseUserAgent(ua string) UserAgent {
	for i := range p.userAgentPatterns {
		if res, ok := p.userAgentPatterns[i].tryParse(ua); ok {
			return res
		}
	}

	return DefaultUserAgent()
}

// ParseUserAgentSet returns the client facet via the set-accelerated path.
//
// The aggregate matcher reports every matching rule index in one pass; the
// smallest index is the first-in-catalog-order rule, so extraction runs
// against that single rule only. Behavior is identical to ParseUserAgent.
func (p *Parser) ParseUserAgentSet(ua string) UserAgent {
	if indices := p.userAgentSet.MatchSet(ua); len(indices) > 0 {
		if res, ok := p.userAgentPatterns[indices[0]].tryParse(ua); ok {
			return res
		}
	}

	return DefaultUserAgent()
}

// ParseOS returns the operating-system facet via the ordered scan.
func (p *Parser) ParseOS(ua string) OS {
	for i := range p.osPatterns {
		if res, ok := p.osPatterns[i].tryParse(ua); ok {
			return res
		}
	}

	return DefaultOS()
}

// ParseOSSet returns the operating-system facet via the set-accelerated path.
func (p *Parser) ParseOSSet(ua string) OS {
	if indices := p.osSet.MatchSet(ua); len(indices) > 0 {
		if res, ok := p.osPatterns[indices[0]].tryParse(ua); ok {
			return res
		}
	}

	return DefaultOS()
}

// ParseDevice returns the device facet via the ordered scan.
func (p *Parser) ParseDevice(ua string) Device {
	for i := range p.devicePatterns {
		if res, ok := p.devicePatterns[i].tryParse(ua); ok {
			return res
		}
	}

	return DefaultDevice()
}

// ParseDeviceSet returns the device facet via the set-accelerated path.
func (p *Parser) ParseDeviceSet(ua string) Device {
	if indices := p.deviceSet.MatchSet(ua); len(indices) > 0 {
		if res, ok := p.devicePatterns[indices[0]].tryParse(ua); ok {
			return res
		}
	}

	return DefaultDevice()
}
