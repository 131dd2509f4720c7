package chunk

// Scope controls whether a traversal function may cross a preprocessor
// directive boundary. Per SPEC_FULL.md §4.1, every traversal that can walk
// across a directive must carry this explicitly; there is no implicit
// default.
type Scope int

const (
	// All lets a traversal cross preprocessor boundaries freely.
	All Scope = iota
	// Preproc keeps a traversal on its starting side of a preprocessor
	// boundary: if it starts inside a directive it must not leave, and if
	// it starts outside one it must not enter.
	Preproc
)

func isCommentOrNewline(t Type) bool {
	switch t {
	case Comment, CommentCpp, CommentMulti, CommentEmbed, CommentStart,
		CommentEnd, CommentWhole, CommentEndif, Newline, NlCont, Whitespace, Space:
		return true
	}
	return false
}

// NextNcNnl returns the next chunk after id that is not a comment or
// newline, honoring scope.
func (s *Store) NextNcNnl(id ID, scope Scope) ID {
	return s.walk(id, scope, s.Next, isCommentOrNewline)
}

// PrevNcNnl returns the previous chunk before id that is not a comment or
// newline, honoring scope.
func (s *Store) PrevNcNnl(id ID, scope Scope) ID {
	return s.walk(id, scope, s.Prev, isCommentOrNewline)
}

func (s *Store) walk(id ID, scope Scope, step func(ID) ID, skip func(Type) bool) ID {
	if id == Invalid {
		return Invalid
	}
	startInPreproc := s.At(id).Flags.Has(InPreproc)
	cur := id
	for {
		cur = step(cur)
		if cur == Invalid {
			return Invalid
		}
		c := s.At(cur)
		if scope == Preproc {
			inPreproc := c.Flags.Has(InPreproc)
			if inPreproc != startInPreproc {
				return Invalid
			}
		}
		if !skip(c.Type) {
			return cur
		}
	}
}

// NextNcNnlInPreproc is NextNcNnl with Preproc scope: it will not leave a
// preprocessor directive body it starts inside, nor enter one it starts
// outside.
func (s *Store) NextNcNnlInPreproc(id ID) ID { return s.NextNcNnl(id, Preproc) }

// PrevNcNnlInPreproc is PrevNcNnl with Preproc scope.
func (s *Store) PrevNcNnlInPreproc(id ID) ID { return s.PrevNcNnl(id, Preproc) }

var openers = map[Type]Type{
	ParenOpen:  ParenClose,
	SparenOpen: SparenClose,
	FparenOpen: FparenClose,
	TparenOpen: TparenClose,
	BraceOpen:  BraceClose,
	VbraceOpen: VbraceClose,
	SquareOpen: SquareClose,
	MacroOpen:  MacroClose,
	AngleOpen:  AngleClose,
}

var closers = func() map[Type]Type {
	m := make(map[Type]Type, len(openers))
	for o, c := range openers {
		m[c] = o
	}
	return m
}()

// IsOpener reports whether t is a bracket-opening tag with a matching
// closer tag.
func IsOpener(t Type) bool { _, ok := openers[t]; return ok }

// IsCloser reports whether t is a bracket-closing tag with a matching
// opener tag.
func IsCloser(t Type) bool { _, ok := closers[t]; return ok }

// SkipToMatch returns the closer matching the opener at open, searching
// forward and tracking nesting of the same opener/closer pair so that
// `( ( ) )` resolves correctly. Returns Invalid if no matching closer is
// found before the end of the sequence (an unmatched opener, per
// SPEC_FULL.md §4.7).
func (s *Store) SkipToMatch(open ID) ID {
	if open == Invalid {
		return Invalid
	}
	want, ok := openers[s.At(open).Type]
	if !ok {
		return Invalid
	}
	if m := s.Match(open); m != Invalid {
		return m
	}
	depth := 1
	openType := s.At(open).Type
	for cur := s.Next(open); cur != Invalid; cur = s.Next(cur) {
		t := s.At(cur).Type
		switch {
		case t == openType:
			depth++
		case t == want:
			depth--
			if depth == 0 {
				return cur
			}
		}
	}
	return Invalid
}

// SkipToMatchRev is the inverse of SkipToMatch: given a closer, returns
// the matching opener searching backward.
func (s *Store) SkipToMatchRev(closeID ID) ID {
	if closeID == Invalid {
		return Invalid
	}
	want, ok := closers[s.At(closeID).Type]
	if !ok {
		return Invalid
	}
	if m := s.Match(closeID); m != Invalid {
		return m
	}
	depth := 1
	closeType := s.At(closeID).Type
	for cur := s.Prev(closeID); cur != Invalid; cur = s.Prev(cur) {
		t := s.At(cur).Type
		switch {
		case t == closeType:
			depth++
		case t == want:
			depth--
			if depth == 0 {
				return cur
			}
		}
	}
	return Invalid
}

// GetNextType returns the first chunk after from (from itself excluded) whose
// Type equals t and whose Level equals level, or Invalid. A negative level
// disables the level check.
func (s *Store) GetNextType(from ID, t Type, level int) ID {
	for cur := s.Next(from); cur != Invalid; cur = s.Next(cur) {
		c := s.At(cur)
		if c.Type == t && (level < 0 || int(c.Level) == level) {
			return cur
		}
	}
	return Invalid
}

// GetPrevType is the backward counterpart of GetNextType.
func (s *Store) GetPrevType(from ID, t Type, level int) ID {
	for cur := s.Prev(from); cur != Invalid; cur = s.Prev(cur) {
		c := s.At(cur)
		if c.Type == t && (level < 0 || int(c.Level) == level) {
			return cur
		}
	}
	return Invalid
}

// GetNextStr returns the first chunk after from (from itself excluded) whose
// Text equals str and whose Level equals level, or Invalid. A negative
// level disables the level check.
func (s *Store) GetNextStr(from ID, str string, level int) ID {
	for cur := s.Next(from); cur != Invalid; cur = s.Next(cur) {
		c := s.At(cur)
		if c.Text == str && (level < 0 || int(c.Level) == level) {
			return cur
		}
	}
	return Invalid
}

// GetPrevStr is the backward counterpart of GetNextStr.
func (s *Store) GetPrevStr(from ID, str string, level int) ID {
	for cur := s.Prev(from); cur != Invalid; cur = s.Prev(cur) {
		c := s.At(cur)
		if c.Text == str && (level < 0 || int(c.Level) == level) {
			return cur
		}
	}
	return Invalid
}
