// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

package uaparser

import (
	"fmt"
	"regexp/syntax"
	"sort"
	"unicode/utf8"
)

// setSizeLimit bounds the estimated compiled size of one aggregate set.
const setSizeLimit = 20 * (1 << 23)

// setInstSize is the estimated in-memory size of one compiled instruction.
const setInstSize = 16

// patternSet matches an ordered pattern list against one input in a
// single pass.
//
// Every pattern is parsed and compiled through regexp/syntax with the same
// Perl dialect used by regexp.Compile, so set membership agrees with the
// individually compiled rules. MatchSet runs all programs together in one
// Thompson-style simulation over the input and reports the indices of
// every pattern with a match anywhere, ascending. Index assignment is the
// source pattern order; callers rely on the smallest reported index being
// the first-in-catalog-order matching rule.
//
// A compiled set is immutable and safe for concurrent use; per-call VM
// state lives on the stack of MatchSet.
type patternSet struct {
	// progs are compiled programs in source pattern order.
	progs []*syntax.Prog
	// offsets are per-program bases into the shared visited-state space.
	offsets []int
	// states is the total visited-state space across all programs.
	states int
}

// compileSet compiles ordered patterns into one aggregate matcher with
// the default size budget.
func compileSet(patterns []string) (*patternSet, error) {
	return compileSetLimit(patterns, setSizeLimit)
}

// compileSetLimit compiles ordered patterns into one aggregate matcher.
//
// Compilation fails on the first malformed pattern or once the estimated
// program size crosses the byte limit.
func compileSetLimit(patterns []string, limit int) (*patternSet, error) {
	set := &patternSet{
		progs:   make([]*syntax.Prog, 0, len(patterns)),
		offsets: make([]int, 0, len(patterns)),
	}

	estimated := 0
	for i, pattern := range patterns {
		re, err := syntax.Parse(pattern, syntax.Perl)
		if err != nil {
			return nil, fmt.Errorf("%w: parse pattern %d %q: %v", ErrInvalidPattern, i, pattern, err)
		}

		prog, err := syntax.Compile(re.Simplify())
		if err != nil {
			return nil, fmt.Errorf("%w: compile pattern %d %q: %v", ErrInvalidPattern, i, pattern, err)
		}

		estimated += len(prog.Inst) * setInstSize
		if estimated > limit {
			return nil, fmt.Errorf("%w: %d patterns need over %d bytes", ErrSetTooLarge, len(patterns), limit)
		}

		set.offsets = append(set.offsets, set.states)
		set.states += len(prog.Inst)
		set.progs = append(set.progs, prog)
	}

	return set, nil
}

// setThread is one pending VM thread: pattern index plus program counter.
type setThread struct {
	pat int
	pc  uint32
}

// setRun is the mutable VM state of one MatchSet call.
type setRun struct {
	set *patternSet
	// visited stamps (pattern, pc) states with the position generation at
	// which they were last expanded, deduplicating the epsilon closure.
	visited []uint32
	gen     uint32
	// cur holds rune-consuming threads for the current position.
	cur []setThread
	// next holds successor pcs scheduled after consuming the current rune.
	next []setThread
	// matched marks patterns that already reported a match.
	matched []bool
	// remaining counts patterns still without a match.
	remaining int
	// result collects matched pattern indices in discovery order.
	result []int
}

// MatchSet reports the indices of all patterns matching anywhere in the
// input, sorted ascending. A nil or empty result means no pattern matched.
func (s *patternSet) MatchSet(input string) []int {
	if len(s.progs) == 0 {
		return nil
	}

	run := &setRun{
		set:       s,
		visited:   make([]uint32, s.states),
		matched:   make([]bool, len(s.progs)),
		remaining: len(s.progs),
	}

	prev := rune(-1)
	for pos := 0; ; {
		r := rune(-1)
		width := 0
		if pos < len(input) {
			r, width = utf8.DecodeRuneInString(input[pos:])
		}

		cond := syntax.EmptyOpContext(prev, r)
		run.gen++
		run.cur = run.cur[:0]

		// Threads carried over a consumed rune re-enter through the
		// epsilon closure of their successor pc.
		for _, t := range run.next {
			run.add(t.pat, t.pc, cond)
		}
		run.next = run.next[:0]

		// Unanchored search: every position seeds fresh start threads for
		// patterns that have not matched yet.
		for pat, prog := range s.progs {
			if !run.matched[pat] {
				run.add(pat, uint32(prog.Start), cond)
			}
		}

		if run.remaining == 0 || r == -1 {
			break
		}

		for _, t := range run.cur {
			if run.matched[t.pat] {
				continue
			}

			inst := &s.progs[t.pat].Inst[t.pc]
			if instMatchRune(inst, r) {
				run.next = append(run.next, setThread{pat: t.pat, pc: inst.Out})
			}
		}

		prev = r
		pos += width
	}

	sort.Ints(run.result)
	return run.result
}

// add expands the epsilon closure from one state, queueing rune-consuming
// instructions into cur and recording reached matches.
func (r *setRun) add(pat int, pc uint32, cond syntax.EmptyOp) {
	if r.matched[pat] {
		return
	}

	slot := r.set.offsets[pat] + int(pc)
	if r.visited[slot] == r.gen {
		return
	}

	r.visited[slot] = r.gen

	inst := &r.set.progs[pat].Inst[pc]
	switch inst.Op {
	case syntax.InstFail:
		// dead thread
	case syntax.InstAlt, syntax.InstAltMatch:
		r.add(pat, inst.Out, cond)
		r.add(pat, inst.Arg, cond)
	case syntax.InstNop, syntax.InstCapture:
		r.add(pat, inst.Out, cond)
	case syntax.InstEmptyWidth:
		if syntax.EmptyOp(inst.Arg)&^cond == 0 {
			r.add(pat, inst.Out, cond)
		}
	case syntax.InstMatch:
		r.matched[pat] = true
		r.remaining--
		r.result = append(r.result, pat)
	case syntax.InstRune, syntax.InstRune1, syntax.InstRuneAny, syntax.InstRuneAnyNotNL:
		r.cur = append(r.cur, setThread{pat: pat, pc: pc})
	}
}

// instMatchRune reports whether one rune-class instruction accepts r.
func instMatchRune(inst *syntax.Inst, r rune) bool {
	switch inst.Op {
	case syntax.InstRune:
		return inst.MatchRune(r)
	case syntax.InstRune1:
		return r == inst.Rune[0]
	case syntax.InstRuneAny:
		return true
	case syntax.InstRuneAnyNotNL:
		return r != '\n'
	default:
		return false
	}
}
