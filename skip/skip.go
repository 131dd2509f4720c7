// Package skip implements the structural skippers (component C):
// functions that, given a chunk at the start of some structural span
// (an attribute list, a declspec, a pointer/reference/qualifier run, a
// template argument list, an expression), return the chunk just past the
// end of that span. Grounded on the reference implementation's
// combine_skip.cpp, one function per skipper with the same name (minus
// the chunk_/skip_ duplication the C++ naming has, since Go's package
// qualifier already supplies that prefix).
package skip

import (
	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/predicate"
)

// Align skips an 'align(N):' qualifier sequence, returning the chunk
// after it (or start unchanged if start is not CT_ALIGN).
func Align(s *chunk.Store, start chunk.ID) chunk.ID {
	pc := start
	if !predicate.IsType(s, pc, chunk.Align) {
		return pc
	}
	pc = s.NextNcNnl(pc, chunk.All)
	if predicate.IsType(s, pc, chunk.ParenOpen) {
		pc = s.GetNextType(pc, chunk.ParenClose, int(s.At(pc).Level))
		pc = s.NextNcNnl(pc, chunk.All)
		if predicate.IsType(s, pc, chunk.Colon) {
			pc = s.NextNcNnl(pc, chunk.All)
		}
	}
	return pc
}

// cppTemplateAngleNestLevel counts how many CT_ANGLE_OPEN spans strictly
// enclose pc, used by ToExpressionEnd/Start to stop before leaving a
// template argument list that encloses the starting chunk.
func cppTemplateAngleNestLevel(s *chunk.Store, pc chunk.ID) int {
	depth := 0
	for cur := pc; cur != chunk.Invalid; cur = s.Prev(cur) {
		switch s.At(cur).Type {
		case chunk.AngleOpen:
			if s.Match(cur) == chunk.Invalid || IsAfter(s, s.Match(cur), pc) {
				depth++
			}
		}
	}
	return depth
}

// IsBefore reports whether a occurs strictly before b in the sequence
// (walking backward from b reaches a before the head).
func IsBefore(s *chunk.Store, a, b chunk.ID) bool {
	for cur := s.Prev(b); cur != chunk.Invalid; cur = s.Prev(cur) {
		if cur == a {
			return true
		}
	}
	return false
}

// IsAfter reports whether a occurs strictly after b in the sequence.
func IsAfter(s *chunk.Store, a, b chunk.ID) bool { return IsBefore(s, b, a) }

func toExpressionEdge(s *chunk.Store, pc chunk.ID, step func(chunk.ID, chunk.Scope) chunk.ID) chunk.ID {
	if pc == chunk.Invalid {
		return chunk.Invalid
	}
	prev := pc
	level := s.At(pc).Level
	next := pc
	templateNest := cppTemplateAngleNestLevel(s, pc)
	for next != chunk.Invalid && s.At(next).Level >= level {
		c := s.At(next)
		if c.Level == level && (c.Type == chunk.Comma || predicate.IsAnyType(s, next, chunk.Semicolon, chunk.Vsemicolon)) {
			break
		}
		if templateNest > cppTemplateAngleNestLevel(s, next) {
			break
		}
		prev = next
		next = step(next, chunk.Preproc)
	}
	return prev
}

// ToExpressionEnd returns the last chunk of the expression starting at pc:
// walks forward until a comma/semicolon at pc's level, or until leaving a
// template argument list pc started outside of.
func ToExpressionEnd(s *chunk.Store, pc chunk.ID) chunk.ID {
	return toExpressionEdge(s, pc, s.NextNcNnl)
}

// ToExpressionStart is the reverse of ToExpressionEnd.
func ToExpressionStart(s *chunk.Store, pc chunk.ID) chunk.ID {
	return toExpressionEdge(s, pc, s.PrevNcNnl)
}

// Expression returns the chunk immediately after the expression starting
// at pc.
func Expression(s *chunk.Store, pc chunk.ID) chunk.ID {
	return s.NextNcNnl(ToExpressionEnd(s, pc), chunk.All)
}

// ExpressionRev returns the chunk immediately before the expression ending
// at pc.
func ExpressionRev(s *chunk.Store, pc chunk.ID) chunk.ID {
	return s.PrevNcNnl(ToExpressionStart(s, pc), chunk.All)
}

// ToNextStatement walks forward until a semicolon or brace, inclusive.
func ToNextStatement(s *chunk.Store, pc chunk.ID) chunk.ID {
	for pc != chunk.Invalid &&
		!predicate.IsAnyType(s, pc, chunk.Semicolon, chunk.Vsemicolon) &&
		!predicate.IsAnyType(s, pc, chunk.BraceOpen, chunk.BraceClose) {
		pc = s.NextNcNnl(pc, chunk.All)
	}
	return pc
}

// PointersReferencesAndQualifiers walks backward over a run of
// pointer/reference sigils and qualifiers starting at pc, returning the
// first chunk that is neither (pc itself if it is neither). match's
// AssignedType calls it with the chunk just before an '=' to step over
// any such decoration before testing whether the preceding chunk is an
// identifier.
func PointersReferencesAndQualifiers(s *chunk.Store, pc chunk.ID, scope chunk.Scope) chunk.ID {
	for pc != chunk.Invalid && (predicate.IsPointerOrReference(s, pc) || predicate.IsQualifier(s, pc)) {
		pc = s.PrevNcNnl(pc, scope)
	}
	return pc
}

// TemplatePrev, given an CT_ANGLE_CLOSE, returns the chunk before the
// matching CT_ANGLE_OPEN (i.e. skips the whole template argument list
// backward), or ang_close unchanged if it is not an angle-close.
func TemplatePrev(s *chunk.Store, angClose chunk.ID) chunk.ID {
	if !predicate.IsType(s, angClose, chunk.AngleClose) {
		return angClose
	}
	open := s.GetPrevType(angClose, chunk.AngleOpen, int(s.At(angClose).Level))
	return s.PrevNcNnl(open, chunk.All)
}

// TemplateNext is the forward counterpart of TemplatePrev: given a chunk
// that may be an CT_ANGLE_OPEN, skips the whole template argument list
// forward, returning the chunk after the matching close angle. Returns pc
// unchanged if it is not an angle-open.
func TemplateNext(s *chunk.Store, pc chunk.ID) chunk.ID {
	if !predicate.IsType(s, pc, chunk.AngleOpen) {
		return pc
	}
	if m := s.SkipToMatch(pc); m != chunk.Invalid {
		return s.NextNcNnl(m, chunk.All)
	}
	return pc
}

// TsquareNext skips a '[]' or '[...]' array-declarator suffix, returning
// the chunk just after its matching closer.
func TsquareNext(s *chunk.Store, aryDef chunk.ID) chunk.ID {
	if predicate.IsType(s, aryDef, chunk.Tsquare) {
		return s.NextNcNnl(aryDef, chunk.All)
	}
	if predicate.IsType(s, aryDef, chunk.SquareOpen) {
		if m := s.SkipToMatch(aryDef); m != chunk.Invalid {
			return s.NextNcNnl(m, chunk.All)
		}
	}
	return aryDef
}

// Attribute skips one or more trailing __attribute__((...)) spans starting
// at attr, returning the closing paren of the last one (or, when that
// attribute has no parenthesized argument list, the chunk after it).
func Attribute(s *chunk.Store, attr chunk.ID) chunk.ID {
	pc := attr
	for predicate.IsType(s, pc, chunk.Attribute) {
		pc = s.NextNcNnl(pc, chunk.All)
		if predicate.IsType(s, pc, chunk.FparenOpen) {
			pc = s.GetNextType(pc, chunk.FparenClose, int(s.At(pc).Level))
		}
	}
	return pc
}

// AttributeNext is Attribute, but additionally steps past the final
// closing paren to the first chunk after the whole attribute run.
func AttributeNext(s *chunk.Store, attr chunk.ID) chunk.ID {
	next := Attribute(s, attr)
	if next != attr && predicate.IsType(s, next, chunk.FparenClose) {
		return s.NextNcNnl(next, chunk.All)
	}
	return attr
}

// AttributePrev is the reverse of AttributeNext, walking back over one or
// more attribute spans whose closing parens are marked with ParentType
// Attribute.
func AttributePrev(s *chunk.Store, fpClose chunk.ID) chunk.ID {
	pc := fpClose
	for {
		if predicate.IsType(s, pc, chunk.FparenClose) && s.At(pc).ParentType == chunk.Attribute {
			pc = s.GetPrevType(pc, chunk.Attribute, int(s.At(pc).Level))
		} else if !predicate.IsType(s, pc, chunk.Attribute) {
			break
		}
		pc = s.PrevNcNnl(pc, chunk.All)
	}
	return pc
}

// Declspec skips a __declspec(...) span starting at pc.
func Declspec(s *chunk.Store, pc chunk.ID) chunk.ID {
	if !predicate.IsType(s, pc, chunk.Declspec) {
		return pc
	}
	pc = s.NextNcNnl(pc, chunk.All)
	if predicate.IsType(s, pc, chunk.ParenOpen) {
		if m := s.SkipToMatch(pc); m != chunk.Invalid {
			return m
		}
	}
	return pc
}

// DeclspecNext is Declspec plus a step past the closing paren.
func DeclspecNext(s *chunk.Store, pc chunk.ID) chunk.ID {
	next := Declspec(s, pc)
	if next != pc && predicate.IsType(s, next, chunk.ParenClose) {
		return s.NextNcNnl(next, chunk.All)
	}
	return pc
}

// DeclspecPrev is the reverse of DeclspecNext.
func DeclspecPrev(s *chunk.Store, pc chunk.ID) chunk.ID {
	if predicate.IsType(s, pc, chunk.ParenClose) && s.At(pc).ParentType == chunk.Declspec {
		pc = s.SkipToMatchRev(pc)
		pc = s.PrevNcNnl(pc, chunk.All)
		if predicate.IsType(s, pc, chunk.Declspec) {
			pc = s.PrevNcNnl(pc, chunk.All)
		}
	}
	return pc
}

// MatchingBraceBracketParenNext, given an opener, returns the chunk after
// its matching closer.
func MatchingBraceBracketParenNext(s *chunk.Store, pc chunk.ID) chunk.ID {
	if predicate.IsBraceOpenLike(s, pc) || predicate.IsType(s, pc, chunk.ParenOpen) || predicate.IsType(s, pc, chunk.SquareOpen) {
		if m := s.SkipToMatch(pc); m != chunk.Invalid {
			return s.NextNcNnl(m, chunk.All)
		}
	}
	return pc
}

// ToChunkBeforeMatchingBraceBracketParenRev, given a closer, returns the
// chunk before its matching opener.
func ToChunkBeforeMatchingBraceBracketParenRev(s *chunk.Store, pc chunk.ID) chunk.ID {
	if predicate.IsBraceCloseLike(s, pc) || predicate.IsType(s, pc, chunk.ParenClose) || predicate.IsType(s, pc, chunk.SquareClose) {
		if m := s.SkipToMatchRev(pc); m != chunk.Invalid {
			return s.PrevNcNnl(m, chunk.All)
		}
	}
	return pc
}
