package chunk

import "testing"

func build(types ...Type) *Store {
	s := NewStore()
	for _, t := range types {
		s.Append(Chunk{Type: t})
	}
	return s
}

func TestNextNcNnlSkipsCommentsAndNewlines(t *testing.T) {
	s := build(Word, Newline, Comment, Word)
	first := s.Head()
	got := s.NextNcNnl(first, All)
	if s.At(got).Type != Word {
		t.Fatalf("expected to land on Word, got %s", s.At(got).Type)
	}
	if s.Next(got) != Invalid {
		t.Fatalf("expected last chunk")
	}
}

func TestNextNcNnlInPreprocStaysInsideDirective(t *testing.T) {
	s := NewStore()
	s.Append(Chunk{Type: Preproc, Flags: InPreproc})
	define := s.Append(Chunk{Type: PpDefine, Flags: InPreproc})
	s.Append(Chunk{Type: Newline})
	s.Append(Chunk{Type: Word})

	// The newline ends the directive; NextNcNnlInPreproc must not cross it
	// to reach the unflagged Word that follows.
	if got := s.NextNcNnlInPreproc(define); got != Invalid {
		t.Fatalf("expected Invalid (directive ends at newline), got chunk of type %s", s.At(got).Type)
	}
}

func TestSkipToMatchHandlesNesting(t *testing.T) {
	s := build(ParenOpen, ParenOpen, Word, ParenClose, ParenClose)
	outer := s.Head()
	match := s.SkipToMatch(outer)
	if s.At(match).Type != ParenClose {
		t.Fatalf("expected ParenClose, got %s", s.At(match).Type)
	}
	if s.Prev(match) == Invalid || s.At(s.Prev(match)).Type != ParenClose {
		t.Fatalf("expected outer match to be the final closer, not the inner one")
	}
}

func TestSkipToMatchUnmatchedReturnsInvalid(t *testing.T) {
	s := build(ParenOpen, Word)
	if got := s.SkipToMatch(s.Head()); got != Invalid {
		t.Fatalf("expected Invalid for unmatched opener, got %d", got)
	}
}

func TestCheckInvariantsDetectsUnbalancedBraces(t *testing.T) {
	s := build(BraceOpen, Word)
	errs := s.CheckInvariants()
	if len(errs) == 0 {
		t.Fatalf("expected an unmatched-opener invariant violation")
	}
}

func TestCheckInvariantsCleanOnBalancedInput(t *testing.T) {
	s := NewStore()
	open := s.Append(Chunk{Type: BraceOpen, Level: 0})
	s.Append(Chunk{Type: Word, Level: 1})
	close := s.Append(Chunk{Type: BraceClose, Level: 0})
	s.SetMatch(open, close)
	if errs := s.CheckInvariants(); len(errs) != 0 {
		t.Fatalf("unexpected invariant violations: %v", errs)
	}
}
