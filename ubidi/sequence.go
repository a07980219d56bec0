package ubidi

import (
	"sort"

	"golang.org/x/text/unicode/bidi"
)

// sequence is an isolating run sequence (BD13). Weak, neutral and implicit
// resolution works on the sequence as if it were a contiguous text.
type sequence struct {
	r        *resolver
	indexes  []int        // positions in the paragraph
	types    []bidi.Class // working types, aligned with indexes
	level    Level
	sos, eos bidi.Class
}

func (r *resolver) newSequence(indexes []int) *sequence {
	s := &sequence{
		r:       r,
		indexes: indexes,
		types:   make([]bidi.Class, len(indexes)),
		level:   r.levels[indexes[0]],
	}
	for i, x := range indexes {
		s.types[i] = r.types[x]
	}
	prevLevel := r.paraLevel
	for j := indexes[0] - 1; j >= 0; j-- {
		if !isRemovedByX9(r.classes[j]) {
			prevLevel = r.levels[j]
			break
		}
	}
	s.sos = typeForLevel(max(prevLevel, s.level))
	last := indexes[len(indexes)-1]
	succLevel := r.paraLevel
	if !isIsolateInitiator(r.classes[last]) {
		for j := last + 1; j < len(r.classes); j++ {
			if !isRemovedByX9(r.classes[j]) {
				succLevel = r.levels[j]
				break
			}
		}
	}
	s.eos = typeForLevel(max(succLevel, s.level))
	return s
}

// resolveWeak implements W1–W7.
func (s *sequence) resolveWeak() {
	n := len(s.types)
	// W1
	prev := s.sos
	for i := range n {
		if s.types[i] == bidi.NSM {
			s.types[i] = prev
		}
		if t := s.types[i]; isIsolateInitiator(t) || t == bidi.PDI {
			prev = bidi.ON
		} else {
			prev = t
		}
	}
	// W2, W3
	lastStrong := s.sos
	for i, t := range s.types {
		switch t {
		case bidi.L, bidi.R, bidi.AL:
			lastStrong = t
		case bidi.EN:
			if lastStrong == bidi.AL {
				s.types[i] = bidi.AN
			}
		}
	}
	for i, t := range s.types {
		if t == bidi.AL {
			s.types[i] = bidi.R
		}
	}
	// W4
	for i := 1; i < n-1; i++ {
		t := s.types[i]
		if t != bidi.ES && t != bidi.CS {
			continue
		}
		before, after := s.types[i-1], s.types[i+1]
		if before == bidi.EN && after == bidi.EN {
			s.types[i] = bidi.EN
		} else if t == bidi.CS && before == bidi.AN && after == bidi.AN {
			s.types[i] = bidi.AN
		}
	}
	// W5
	for i := 0; i < n; i++ {
		if s.types[i] != bidi.ET {
			continue
		}
		end := i
		for end < n && s.types[end] == bidi.ET {
			end++
		}
		if (i > 0 && s.types[i-1] == bidi.EN) || (end < n && s.types[end] == bidi.EN) {
			for j := i; j < end; j++ {
				s.types[j] = bidi.EN
			}
		}
		i = end
	}
	// W6
	for i, t := range s.types {
		switch t {
		case bidi.ES, bidi.ET, bidi.CS:
			s.types[i] = bidi.ON
		}
	}
	// W7
	lastStrong = s.sos
	for i, t := range s.types {
		switch t {
		case bidi.L, bidi.R:
			lastStrong = t
		case bidi.EN:
			if lastStrong == bidi.L {
				s.types[i] = bidi.L
			}
		}
	}
}

// bracketPair holds positions within the sequence.
type bracketPair struct {
	open, close int
}

// maxBracketDepth is the stack limit of BD16.
const maxBracketDepth = 63

// locateBrackets implements BD16.
func (s *sequence) locateBrackets() []bracketPair {
	type opener struct {
		pos     int
		closing rune
	}
	var stack []opener
	var pairs []bracketPair
	for i, x := range s.indexes {
		if s.types[i] != bidi.ON {
			continue
		}
		r := s.r.runes[x]
		props, _ := bidi.LookupRune(r)
		if !props.IsBracket() {
			continue
		}
		if props.IsOpeningBracket() {
			if len(stack) == maxBracketDepth {
				break
			}
			stack = append(stack, opener{pos: i, closing: canonicalBracket(Mirror(r))})
			continue
		}
		closing := canonicalBracket(r)
		for k := len(stack) - 1; k >= 0; k-- {
			if stack[k].closing == closing {
				pairs = append(pairs, bracketPair{open: stack[k].pos, close: i})
				stack = stack[:k]
				break
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].open < pairs[j].open })
	return pairs
}

// resolvePairedBrackets implements N0.
func (s *sequence) resolvePairedBrackets() {
	embedding := typeForLevel(s.level)
	for _, p := range s.locateBrackets() {
		dir := bidi.ON
		opposite := false
		for i := p.open + 1; i < p.close; i++ {
			d := strongDirection(s.types[i])
			if d == bidi.ON {
				continue
			}
			if d == embedding {
				dir = embedding
				break
			}
			opposite = true
		}
		if dir == bidi.ON && opposite {
			context := s.sos
			for i := p.open - 1; i >= 0; i-- {
				if d := strongDirection(s.types[i]); d != bidi.ON {
					context = d
					break
				}
			}
			dir = embedding
			if context != embedding {
				dir = context
			}
		}
		if dir == bidi.ON {
			continue
		}
		s.setBracketType(p.open, dir)
		s.setBracketType(p.close, dir)
	}
}

// setBracketType sets the type of a bracket and of the nonspacing marks
// originally following it.
func (s *sequence) setBracketType(pos int, t bidi.Class) {
	s.types[pos] = t
	for i := pos + 1; i < len(s.types); i++ {
		if s.r.classes[s.indexes[i]] != bidi.NSM {
			break
		}
		s.types[i] = t
	}
}

func isNeutralOrIsolate(c bidi.Class) bool {
	switch c {
	case bidi.B, bidi.S, bidi.WS, bidi.ON, bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
		return true
	}
	return false
}

// resolveNeutrals implements N1 and N2.
func (s *sequence) resolveNeutrals() {
	n := len(s.types)
	embedding := typeForLevel(s.level)
	for i := 0; i < n; i++ {
		if !isNeutralOrIsolate(s.types[i]) {
			continue
		}
		end := i
		for end < n && isNeutralOrIsolate(s.types[end]) {
			end++
		}
		leading, trailing := s.sos, s.eos
		if i > 0 {
			leading = strongDirection(s.types[i-1])
		}
		if end < n {
			trailing = strongDirection(s.types[end])
		}
		resolved := embedding
		if leading == trailing && leading != bidi.ON {
			resolved = leading
		}
		for j := i; j < end; j++ {
			s.types[j] = resolved
		}
		i = end
	}
}

// resolveImplicit implements I1 and I2 and stores the levels.
func (s *sequence) resolveImplicit() {
	for i, t := range s.types {
		level := s.level
		if level.IsRTL() {
			switch t {
			case bidi.L, bidi.EN, bidi.AN:
				level++
			}
		} else {
			switch t {
			case bidi.R:
				level++
			case bidi.AN, bidi.EN:
				level += 2
			}
		}
		s.r.levels[s.indexes[i]] = level
	}
}
