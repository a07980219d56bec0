package ubidi

import (
	"slices"

	"golang.org/x/text/unicode/bidi"
)

// resolver implements the level resolution phases of UAX #9 for a single
// paragraph: explicit levels (X1–X10), weak types (W1–W7), paired brackets
// (N0), neutrals (N1–N2), implicit levels (I1–I2) and line levels (L1).
type resolver struct {
	runes     []rune
	classes   []bidi.Class // initial classes, never modified
	types     []bidi.Class // classes after explicit overrides
	levels    []Level
	paraLevel Level
	// BD9: matching PDI for isolate initiators and vice versa, -1 if none.
	matchingPDI       []int
	matchingInitiator []int
}

func newResolver(runes []rune, classes []bidi.Class) *resolver {
	r := &resolver{
		runes:   runes,
		classes: classes,
		types:   slices.Clone(classes),
	}
	r.matchIsolates()
	return r
}

func isIsolateInitiator(c bidi.Class) bool {
	return c == bidi.LRI || c == bidi.RLI || c == bidi.FSI
}

// isRemovedByX9 reports whether a class is ignored by the resolution of
// weak and neutral types.
func isRemovedByX9(c bidi.Class) bool {
	switch c {
	case bidi.LRE, bidi.RLE, bidi.LRO, bidi.RLO, bidi.PDF, bidi.BN:
		return true
	}
	return false
}

func typeForLevel(l Level) bidi.Class {
	if l.IsRTL() {
		return bidi.R
	}
	return bidi.L
}

// strongDirection maps a resolved type to L or R for neutral resolution,
// numbers counting as R. Other types map to ON.
func strongDirection(c bidi.Class) bidi.Class {
	switch c {
	case bidi.L:
		return bidi.L
	case bidi.R, bidi.AL, bidi.EN, bidi.AN:
		return bidi.R
	}
	return bidi.ON
}

// matchIsolates implements BD9.
func (r *resolver) matchIsolates() {
	n := len(r.classes)
	r.matchingPDI = make([]int, n)
	r.matchingInitiator = make([]int, n)
	for i := range n {
		r.matchingPDI[i] = -1
		r.matchingInitiator[i] = -1
	}
	var open []int // positions of initiators still waiting for their PDI
	for i, c := range r.classes {
		switch {
		case isIsolateInitiator(c):
			open = append(open, i)
		case c == bidi.PDI:
			if len(open) == 0 {
				continue
			}
			init := open[len(open)-1]
			open = open[:len(open)-1]
			r.matchingPDI[init] = i
			r.matchingInitiator[i] = init
		case c == bidi.B:
			open = open[:0]
		}
	}
}

// firstStrong implements P2: find the first L, R or AL in [start, end),
// skipping characters between an isolate initiator and its matching PDI.
func (r *resolver) firstStrong(start, end int) (Level, bool) {
	for i := start; i < end; i++ {
		switch c := r.classes[i]; {
		case c == bidi.L:
			return 0, true
		case c == bidi.R || c == bidi.AL:
			return 1, true
		case c == bidi.B:
			return 0, false
		case isIsolateInitiator(c):
			if r.matchingPDI[i] < 0 {
				return 0, false
			}
			i = r.matchingPDI[i]
		}
	}
	return 0, false
}

// paragraphLevel implements P3 for default levels.
func (r *resolver) paragraphLevel(requested Level) Level {
	if !requested.IsDefault() {
		r.paraLevel = requested
		return requested
	}
	level, found := r.firstStrong(0, len(r.classes))
	if !found {
		level = 0
		if requested == DefaultRTL {
			level = 1
		}
	}
	r.paraLevel = level
	return level
}

// resolve runs all resolution phases and returns one level per code point,
// appended to levels.
func (r *resolver) resolve(levels []Level) []Level {
	r.levels = slices.Grow(levels, len(r.classes))[:len(r.classes)]
	r.resolveExplicit()
	for _, seq := range r.isolatingRunSequences() {
		seq.resolveWeak()
		seq.resolvePairedBrackets()
		seq.resolveNeutrals()
		seq.resolveImplicit()
	}
	r.assignRemovedLevels()
	r.applyL1()
	return r.levels
}

type statusEntry struct {
	level    Level
	override bidi.Class // ON for "no override"
	isolate  bool
}

// resolveExplicit implements X1–X8.
func (r *resolver) resolveExplicit() {
	n := len(r.types)
	stack := make([]statusEntry, 1, int(MaxExplicitLevel)+2)
	stack[0] = statusEntry{level: r.paraLevel, override: bidi.ON}
	overflowIsolates, overflowEmbeddings, validIsolates := 0, 0, 0
	for i := range n {
		top := stack[len(stack)-1]
		switch c := r.types[i]; c {
		case bidi.RLE, bidi.LRE, bidi.RLO, bidi.LRO, bidi.RLI, bidi.LRI, bidi.FSI:
			isolate := isIsolateInitiator(c)
			rtl := c == bidi.RLE || c == bidi.RLO || c == bidi.RLI
			if c == bidi.FSI {
				end := r.matchingPDI[i]
				if end < 0 {
					end = n
				}
				level, _ := r.firstStrong(i+1, end)
				rtl = level == 1
			}
			r.levels[i] = top.level
			if isolate && top.override != bidi.ON {
				r.types[i] = top.override
			}
			var newLevel Level
			if rtl {
				newLevel = (top.level + 1) | 1
			} else {
				newLevel = (top.level + 2) &^ 1
			}
			if newLevel <= MaxExplicitLevel && overflowIsolates == 0 && overflowEmbeddings == 0 {
				if isolate {
					validIsolates++
				}
				override := bidi.ON
				switch c {
				case bidi.RLO:
					override = bidi.R
				case bidi.LRO:
					override = bidi.L
				}
				stack = append(stack, statusEntry{level: newLevel, override: override, isolate: isolate})
			} else if isolate {
				overflowIsolates++
			} else if overflowIsolates == 0 {
				overflowEmbeddings++
			}
		case bidi.PDI:
			if overflowIsolates > 0 {
				overflowIsolates--
			} else if validIsolates > 0 {
				overflowEmbeddings = 0
				for !stack[len(stack)-1].isolate {
					stack = stack[:len(stack)-1]
				}
				stack = stack[:len(stack)-1]
				validIsolates--
			}
			top = stack[len(stack)-1]
			r.levels[i] = top.level
			if top.override != bidi.ON {
				r.types[i] = top.override
			}
		case bidi.PDF:
			r.levels[i] = top.level
			if overflowIsolates > 0 {
				// PDF inside an overflowing isolate is ignored
			} else if overflowEmbeddings > 0 {
				overflowEmbeddings--
			} else if !top.isolate && len(stack) >= 2 {
				stack = stack[:len(stack)-1]
			}
		case bidi.B:
			r.levels[i] = r.paraLevel
			stack = stack[:1]
			overflowIsolates, overflowEmbeddings, validIsolates = 0, 0, 0
		case bidi.BN:
			r.levels[i] = top.level
		default:
			r.levels[i] = top.level
			if top.override != bidi.ON {
				r.types[i] = top.override
			}
		}
	}
}

// levelRuns implements BD7 over the characters not removed by X9.
func (r *resolver) levelRuns() [][]int {
	var runs [][]int
	var run []int
	var runLevel Level
	for i, c := range r.classes {
		if isRemovedByX9(c) {
			continue
		}
		if run != nil && r.levels[i] != runLevel {
			runs = append(runs, run)
			run = nil
		}
		if run == nil {
			runLevel = r.levels[i]
		}
		run = append(run, i)
	}
	if run != nil {
		runs = append(runs, run)
	}
	return runs
}

// isolatingRunSequences implements BD13 and X10.
func (r *resolver) isolatingRunSequences() []*sequence {
	runs := r.levelRuns()
	runStartingAt := make(map[int]int, len(runs))
	runEndingAt := make(map[int]bool, len(runs))
	for k, run := range runs {
		runStartingAt[run[0]] = k
		runEndingAt[run[len(run)-1]] = true
	}
	var seqs []*sequence
	for _, run := range runs {
		first := run[0]
		if r.classes[first] == bidi.PDI {
			// continues the sequence of its isolate initiator
			if init := r.matchingInitiator[first]; init >= 0 && runEndingAt[init] {
				continue
			}
		}
		indexes := slices.Clone(run)
		for {
			last := indexes[len(indexes)-1]
			if !isIsolateInitiator(r.classes[last]) || r.matchingPDI[last] < 0 {
				break
			}
			k, ok := runStartingAt[r.matchingPDI[last]]
			if !ok {
				break
			}
			indexes = append(indexes, runs[k]...)
		}
		seqs = append(seqs, r.newSequence(indexes))
	}
	return seqs
}

// assignRemovedLevels gives characters removed by X9 the level of the
// preceding character, or the paragraph level at the start of the text.
func (r *resolver) assignRemovedLevels() {
	for i, c := range r.classes {
		if !isRemovedByX9(c) {
			continue
		}
		if i == 0 {
			r.levels[i] = r.paraLevel
		} else {
			r.levels[i] = r.levels[i-1]
		}
	}
}

// applyL1 resets segment and paragraph separators, and whitespace (including
// isolate controls and characters removed by X9) preceding them or the end of
// the text, to the paragraph level.
func (r *resolver) applyL1() {
	wsStart := -1
	for i, c := range r.classes {
		switch {
		case c == bidi.S || c == bidi.B:
			r.levels[i] = r.paraLevel
			if wsStart >= 0 {
				for j := wsStart; j < i; j++ {
					r.levels[j] = r.paraLevel
				}
			}
			wsStart = -1
		case c == bidi.WS || isIsolateInitiator(c) || c == bidi.PDI || isRemovedByX9(c):
			if wsStart < 0 {
				wsStart = i
			}
		default:
			wsStart = -1
		}
	}
	if wsStart >= 0 {
		for j := wsStart; j < len(r.classes); j++ {
			r.levels[j] = r.paraLevel
		}
	}
}
