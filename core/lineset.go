package core

const lineSetWords = (MaxLines + 31) / 32

// lineSet is a fixed-capacity set of interrupt lines, sized by MaxLines
// at compile time. Scopes use it to record which slots they own.
type lineSet struct {
	bits [lineSetWords]uint32
}

func (s *lineSet) add(line Line) {
	s.bits[line>>5] |= 1 << (line & 31)
}

func (s *lineSet) remove(line Line) {
	s.bits[line>>5] &^= 1 << (line & 31)
}

func (s *lineSet) has(line Line) bool {
	return s.bits[line>>5]&(1<<(line&31)) != 0
}

func (s *lineSet) empty() bool {
	for _, w := range s.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// forEach visits every line in the set in ascending order.
func (s *lineSet) forEach(fn func(Line)) {
	for w, bits := range s.bits {
		for b := 0; bits != 0; b++ {
			if bits&1 != 0 {
				fn(Line(w<<5 | b))
			}
			bits >>= 1
		}
	}
}
