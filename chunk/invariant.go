package chunk

import "fmt"

// CheckInvariants verifies the structural invariants SPEC_FULL.md §3 and §8
// require to hold after the brace/preprocessor cleanup pass, and returns
// every violation found (nil if none). It is meant for tests, not for the
// hot path.
func (s *Store) CheckInvariants() []error {
	var errs []error

	// Link integrity: c.prev.next == c and c.next.prev == c.
	for id := s.head; id != Invalid; id = s.nodes[id].next {
		n := s.nodes[id]
		if n.prev != Invalid && s.nodes[n.prev].next != id {
			errs = append(errs, fmt.Errorf("chunk %d: prev.next != self", id))
		}
		if n.next != Invalid && s.nodes[n.next].prev != id {
			errs = append(errs, fmt.Errorf("chunk %d: next.prev != self", id))
		}
	}

	// Brace/paren balance and virtual-brace pairing: walk a stack of
	// openers, matching each closer against the top of stack.
	var stack []ID
	for id := s.head; id != Invalid; id = s.nodes[id].next {
		t := s.nodes[id].Type
		if IsOpener(t) {
			stack = append(stack, id)
			continue
		}
		if IsCloser(t) {
			if len(stack) == 0 {
				errs = append(errs, fmt.Errorf("chunk %d: unmatched closer %s", id, t))
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			wantOpen := closers[t]
			if s.nodes[top].Type != wantOpen {
				errs = append(errs, fmt.Errorf("chunk %d: closer %s does not match opener %s at chunk %d", id, t, s.nodes[top].Type, top))
				continue
			}
			if s.nodes[top].Level != s.nodes[id].Level {
				errs = append(errs, fmt.Errorf("chunk %d: opener/closer level mismatch (%d vs %d)", id, s.nodes[top].Level, s.nodes[id].Level))
			}
			if t == VbraceClose || s.nodes[top].Type == VbraceOpen {
				if t != VbraceClose || s.nodes[top].Type != VbraceOpen {
					errs = append(errs, fmt.Errorf("chunk %d: virtual brace paired with non-virtual brace", id))
				} else if s.nodes[top].ParentType != s.nodes[id].ParentType {
					errs = append(errs, fmt.Errorf("chunk %d: virtual brace pair parent type mismatch", id))
				}
			}
		}
	}
	for _, id := range stack {
		errs = append(errs, fmt.Errorf("chunk %d: unmatched opener %s", id, s.nodes[id].Type))
	}

	// Preprocessor containment: InPreproc chunks lie strictly between a
	// Preproc chunk and the next newline at the same pp_level; chunks
	// outside never carry the flag.
	inDirective := false
	for id := s.head; id != Invalid; id = s.nodes[id].next {
		n := s.nodes[id]
		flagged := n.Flags.Has(InPreproc)
		switch {
		case n.Type == Preproc:
			inDirective = true
		case n.Type == Newline && inDirective:
			inDirective = false
		}
		if n.Type == Preproc {
			continue // the '#' itself is the boundary, not required to carry the flag
		}
		if flagged != inDirective && n.Type != Newline {
			errs = append(errs, fmt.Errorf("chunk %d: IN_PREPROC=%v outside expected directive span", id, flagged))
		}
	}

	return errs
}
