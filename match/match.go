// Package match implements the larger structural matchers (component E):
// given one chunk inside some construct, find the chunks that bound the
// whole construct — a compound type, a qualified identifier, a variable
// declaration, a function header, or a function-pointer signature.
//
// Where package pairmatch asks "can these two adjacent chunks sit next to
// each other in pattern X", this package walks outward from a seed chunk
// applying that adjacency test at every step, stopping at the first place
// it fails (or at a level change, comma, or semicolon). Grounded on the
// reference implementation's match_tools.cpp, the functions following
// adj_chunks_match_compound_type_pattern through match_variable_start.
package match

import (
	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/lang"
	"github.com/uncrustify/uncrustify-sub003/pairmatch"
	"github.com/uncrustify/uncrustify-sub003/predicate"
	"github.com/uncrustify/uncrustify-sub003/skip"
)

// AssignedType returns the identifier chunk an '=' assigns a type to, in
// declarations like "using X = ..." or "typename T = ...", or Invalid if
// pcAssign is not an assignment or is not preceded by a typename/using
// introduction.
func AssignedType(s *chunk.Store, pcAssign chunk.ID) chunk.ID {
	if !predicate.IsAssignToken(s, pcAssign) {
		return chunk.Invalid
	}
	prev := s.PrevNcNnl(pcAssign, chunk.Preproc)
	prev = skip.PointersReferencesAndQualifiers(s, prev, chunk.Preproc)

	if predicate.IsIdentifier(s, prev) {
		next := prev
		before := s.PrevNcNnl(prev, chunk.All)
		if predicate.IsTypenameToken(s, before) || predicate.IsType(s, before, chunk.Using) {
			return next
		}
		return chunk.Invalid
	}
	if predicate.IsAutoToken(s, prev) {
		return prev
	}
	return chunk.Invalid
}

// ChainNext walks forward from pc matching a literal sequence of types at
// the given level, returning the chunk matching the first element of
// chain, or Invalid if the whole chain is not found contiguously
// somewhere at or after pc.
func ChainNext(s *chunk.Store, pc chunk.ID, chainTypes []chunk.Type, level int, scope chunk.Scope) chunk.ID {
	for pc != chunk.Invalid {
		cur := pc
		if !predicate.IsType(s, cur, chainTypes[0]) {
			cur = s.GetNextType(cur, chainTypes[0], level)
		}
		first := cur
		ok := cur != chunk.Invalid
		for i := 1; ok && i < len(chainTypes); i++ {
			cur = s.NextNcNnl(cur, scope)
			ok = cur != chunk.Invalid && predicate.IsType(s, cur, chainTypes[i])
		}
		if ok {
			return first
		}
		if first == chunk.Invalid {
			return chunk.Invalid
		}
		pc = s.NextNcNnl(first, scope)
	}
	return chunk.Invalid
}

// ChainPrev is the reverse of ChainNext: chainTypes is given start-to-end
// but matched against the sequence walking backward from pc, and the
// match must land exactly at level.
func ChainPrev(s *chunk.Store, pc chunk.ID, chainTypes []chunk.Type, level int, scope chunk.Scope) chunk.ID {
	last := len(chainTypes) - 1
	for pc != chunk.Invalid {
		cur := pc
		if !predicate.IsType(s, cur, chainTypes[last]) {
			cur = s.GetPrevType(cur, chainTypes[last], -1)
		}
		first := cur
		ok := cur != chunk.Invalid
		for i := last - 1; ok && i >= 0; i-- {
			cur = s.PrevNcNnl(cur, scope)
			ok = cur != chunk.Invalid && predicate.IsType(s, cur, chainTypes[i])
		}
		if ok && first != chunk.Invalid && int(s.At(first).Level) == level {
			return first
		}
		if first == chunk.Invalid {
			return chunk.Invalid
		}
		pc = s.PrevNcNnl(first, scope)
	}
	return chunk.Invalid
}

// CompoundType returns the (start, end) bounds of the compound type
// enclosing pc at level, or (Invalid, Invalid) if either bound cannot be
// established.
func CompoundType(s *chunk.Store, pc chunk.ID, level int, language lang.Mask) (chunk.ID, chunk.ID) {
	start := CompoundTypeStart(s, pc, level, language)
	end := CompoundTypeEnd(s, pc, level, language)
	if start == chunk.Invalid || end == chunk.Invalid {
		return chunk.Invalid, chunk.Invalid
	}
	return start, end
}

// CompoundTypeEnd walks forward from pc, returning the last chunk of the
// compound type that begins there, or Invalid if the walk never settles
// on a consistent type pattern.
func CompoundTypeEnd(s *chunk.Store, pc chunk.ID, level int, language lang.Mask) chunk.ID {
	for pc != chunk.Invalid {
		if predicate.IsParenCloseLike(s, pc) {
			pc = s.SkipToMatchRev(pc)
		}
		if pc == chunk.Invalid {
			return chunk.Invalid
		}
		for pc != chunk.Invalid && int(s.At(pc).Level) > level {
			pc = s.NextNcNnl(pc, chunk.Preproc)
		}
		if predicate.IsType(s, pc, chunk.AngleOpen) || predicate.IsType(s, pc, chunk.SquareOpen) {
			pc = s.SkipToMatch(pc)
			if pc == chunk.Invalid {
				return chunk.Invalid
			}
		}
		if pc == chunk.Invalid {
			return chunk.Invalid
		}
		next := s.NextNcNnl(pc, chunk.Preproc)

		if predicate.IsIntrinsicType(s, pc) && predicate.IsType(s, next, chunk.AngleOpen) {
			return chunk.Invalid
		}
		if predicate.IsType(s, pc, chunk.Decltype) && predicate.IsType(s, next, chunk.ParenOpen) {
			pc = s.SkipToMatch(next)
			next = s.NextNcNnl(pc, chunk.Preproc)
		}
		if predicate.IsIdentifier(s, pc) && predicate.IsAssignToken(s, next) && AssignedType(s, next) == pc {
			return pc
		}
		if next == chunk.Invalid || int(s.At(next).Level) < level ||
			(predicate.IsType(s, next, chunk.Comma) && int(s.At(next).Level) == level) ||
			predicate.IsAnyType(s, next, chunk.Semicolon, chunk.Vsemicolon) {
			return pc
		}
		if predicate.IsParenOpenLike(s, next) {
			_, _, end, ok := FunctionPointerAtParen(s, next, language)
			if ok {
				return end
			}
			return chunk.Invalid
		}
		if !pairmatch.CompoundTypePair(s, pc, next, language) {
			if !predicate.IsMacroReference(s, pc) || !predicate.IsIdentifier(s, next) {
				return chunk.Invalid
			}
		}
		pc = next
	}
	return chunk.Invalid
}

// CompoundTypeStart is the reverse of CompoundTypeEnd.
func CompoundTypeStart(s *chunk.Store, pc chunk.ID, level int, language lang.Mask) chunk.ID {
	for pc != chunk.Invalid {
		for pc != chunk.Invalid && int(s.At(pc).Level) > level {
			pc = s.PrevNcNnl(pc, chunk.Preproc)
		}
		if predicate.IsType(s, pc, chunk.AngleClose) || predicate.IsType(s, pc, chunk.SquareClose) {
			pc = s.SkipToMatchRev(pc)
			if pc == chunk.Invalid {
				return chunk.Invalid
			}
		}
		if pc == chunk.Invalid {
			return chunk.Invalid
		}
		prev := s.PrevNcNnl(pc, chunk.Preproc)

		if predicate.IsIntrinsicType(s, prev) && predicate.IsType(s, pc, chunk.AngleOpen) {
			return chunk.Invalid
		}
		if predicate.IsIdentifier(s, prev) && predicate.IsAssignToken(s, pc) && AssignedType(s, pc) == prev {
			return prev
		}
		if prev == chunk.Invalid || int(s.At(prev).Level) < level ||
			(predicate.IsType(s, prev, chunk.Comma) && int(s.At(prev).Level) == level) ||
			predicate.IsAnyType(s, prev, chunk.Semicolon, chunk.Vsemicolon) ||
			predicate.IsType(s, prev, chunk.Typedef) || predicate.IsTypenameToken(s, prev) {
			return pc
		}
		if predicate.IsParenCloseLike(s, pc) {
			pc = s.SkipToMatchRev(pc)
			prev = s.PrevNcNnl(pc, chunk.Preproc)
		}
		if predicate.IsParenOpenLike(s, pc) && !predicate.IsType(s, prev, chunk.Decltype) {
			start, _, _, ok := FunctionPointerAtParen(s, pc, language)
			if ok {
				return start
			}
			return chunk.Invalid
		}
		if !pairmatch.CompoundTypePair(s, prev, pc, language) {
			if !predicate.IsMacroReference(s, prev) || !predicate.IsIdentifier(s, pc) {
				return chunk.Invalid
			}
		}
		pc = prev
	}
	return chunk.Invalid
}

// FunctionHeaderAtCloseParen, given the closing paren of a parameter
// list, returns the start of the function header (its return type, or
// its name if it is a constructor), or Invalid if pc does not close a
// function parameter list.
func FunctionHeaderAtCloseParen(s *chunk.Store, pc chunk.ID) chunk.ID {
	if !predicate.IsParenCloseLike(s, pc) {
		return chunk.Invalid
	}
	parenClose := pc
	parenOpen := s.SkipToMatchRev(parenClose)
	if parenOpen == chunk.Invalid {
		return chunk.Invalid
	}

	var identifier chunk.ID
	cur := s.PrevNcNnl(parenOpen, chunk.Preproc)
	switch {
	case predicate.IsIdentifier(s, cur):
		identifier = scopeChainStart(s, cur)
	case predicate.IsOverloadedToken(s, cur):
		cur = s.PrevNcNnl(cur, chunk.Preproc)
		if predicate.IsDoubleColonToken(s, cur) {
			identifier = scopeChainStart(s, cur)
		}
	default:
		return chunk.Invalid
	}

	if identifier != chunk.Invalid {
		cur = s.PrevNcNnl(identifier, chunk.Preproc)
	}
	if cur == chunk.Invalid {
		return chunk.Invalid
	}
	level := s.At(cur).Level
	cur = s.PrevNcNnl(cur, chunk.Preproc)
	returnTypeStart := CompoundTypeStart(s, cur, int(level), lang.CFamily)

	if returnTypeStart != chunk.Invalid &&
		(predicate.IsIdentifier(s, returnTypeStart) || predicate.IsIntrinsicType(s, returnTypeStart)) {
		return returnTypeStart
	}
	if identifier == chunk.Invalid {
		return chunk.Invalid
	}

	next := s.NextNcNnl(parenClose, chunk.All)
	if level > 0 && (predicate.IsAmpersandToken(s, next) || predicate.IsCvQualifierToken(s, next) ||
		predicate.IsDoubleAmpersandToken(s, next) || predicate.IsNoexceptToken(s, next)) {
		braceOpen := s.GetPrevType(identifier, chunk.BraceOpen, int(level)-1)
		var classType chunk.ID = chunk.Invalid
		if braceOpen != chunk.Invalid {
			classType = s.GetPrevStr(braceOpen, s.At(identifier).Text, int(level)-1)
		}
		if classType != chunk.Invalid {
			keyword := s.GetPrevType(classType, chunk.Class, int(level)-1)
			if keyword == chunk.Invalid {
				keyword = s.GetPrevType(classType, chunk.Struct, int(level)-1)
			}
			if keyword != chunk.Invalid {
				return identifier
			}
		}
	}
	return chunk.Invalid
}

// FunctionPointerAtParen tests whether the parenthesized span containing
// pc matches a function-pointer signature ("[ret] (*name)(args)" or
// "[ret] (Class::*name)(args) [const]"), returning (start, identifier,
// end, true) on a match.
func FunctionPointerAtParen(s *chunk.Store, pcParen chunk.ID, language lang.Mask) (chunk.ID, chunk.ID, chunk.ID, bool) {
	invalid := chunk.Invalid
	if predicate.IsParenCloseLike(s, pcParen) {
		pcParen = s.SkipToMatchRev(pcParen)
	}
	if !predicate.IsParenOpenLike(s, pcParen) {
		return invalid, invalid, invalid, false
	}

	parenOpen := pcParen
	parenClose := s.SkipToMatch(parenOpen)
	prev := s.PrevNcNnl(parenOpen, chunk.Preproc)

	var paramOpen, paramClose chunk.ID = invalid, invalid
	if predicate.IsParenCloseLike(s, prev) {
		paramClose, paramOpen = parenClose, parenOpen
		parenClose = prev
		parenOpen = s.SkipToMatchRev(parenClose)
	} else {
		next := s.NextNcNnl(parenClose, chunk.Preproc)
		if predicate.IsParenOpenLike(s, next) {
			paramOpen = next
			paramClose = s.SkipToMatch(paramOpen)
		}
	}
	if paramOpen == invalid || paramClose == invalid || parenOpen == invalid || parenClose == invalid {
		return invalid, invalid, invalid, false
	}

	next := s.NextNcNnl(parenOpen, chunk.Preproc)
	if predicate.IsType(s, next, chunk.DcMember) {
		next = s.NextNcNnl(next, chunk.Preproc)
	}
	if !predicate.IsType(s, next, chunk.Star) {
		return invalid, invalid, invalid, false
	}
	next = s.NextNcNnl(next, chunk.Preproc)

	var identifier chunk.ID = invalid
	if predicate.IsIdentifier(s, next) {
		identifier = next
		next = s.NextNcNnl(identifier, chunk.Preproc)
	}
	// next must close the declarator group itself; the param list is
	// checked separately by construction (it was found immediately after
	// parenClose, or immediately before parenOpen in the swapped case).
	if next != parenClose {
		return invalid, invalid, invalid, false
	}

	level := s.At(prev).Level
	start := CompoundTypeStart(s, prev, int(level), language)
	if start == invalid {
		return invalid, invalid, invalid, false
	}

	end := paramClose
	next = s.NextNcNnl(paramClose, chunk.Preproc)
	if predicate.IsType(s, next, chunk.Qualifier) {
		end = next
	}
	next = s.NextNcNnl(next, chunk.Preproc)
	if predicate.IsDoubleAmpersandToken(s, next) || predicate.IsAmpersandToken(s, next) {
		end = next
	}
	return start, identifier, end, true
}

// FunctionPointerTypedefAtIdentifier matches a function-pointer typedef
// of the form "typedef [ret] (*name)(args);" starting from the
// identifier, returning (start, identifier, end, true) with start backed
// up onto the 'typedef' keyword.
func FunctionPointerTypedefAtIdentifier(s *chunk.Store, pcIdentifier chunk.ID, language lang.Mask) (chunk.ID, chunk.ID, chunk.ID, bool) {
	start, identifier, end, ok := FunctionPointerVariableAtIdentifier(s, pcIdentifier, language)
	if !ok {
		return chunk.Invalid, chunk.Invalid, chunk.Invalid, false
	}
	prev := s.PrevNcNnl(start, chunk.Preproc)
	if predicate.IsType(s, prev, chunk.Typedef) {
		return prev, identifier, end, true
	}
	return chunk.Invalid, chunk.Invalid, chunk.Invalid, false
}

// FunctionPointerVariableAtIdentifier matches a function-pointer variable
// declaration starting from the candidate variable-name identifier.
func FunctionPointerVariableAtIdentifier(s *chunk.Store, pcIdentifier chunk.ID, language lang.Mask) (chunk.ID, chunk.ID, chunk.ID, bool) {
	if !predicate.IsIdentifier(s, pcIdentifier) {
		return chunk.Invalid, chunk.Invalid, chunk.Invalid, false
	}
	next := scopeChainEnd(s, pcIdentifier)
	next = s.NextNcNnl(next, chunk.Preproc)
	if !predicate.IsParenCloseLike(s, next) {
		return chunk.Invalid, chunk.Invalid, chunk.Invalid, false
	}
	next = s.NextNcNnl(next, chunk.Preproc)
	if !predicate.IsParenOpenLike(s, next) {
		return chunk.Invalid, chunk.Invalid, chunk.Invalid, false
	}
	return FunctionPointerAtParen(s, next, language)
}

// QualifiedIdentifier returns the (start, end) bounds of the qualified
// identifier chain (Ns::Template<...>::Name) containing pc, or
// (Invalid, Invalid) if pc is not part of one (i.e. no DC_MEMBER appears
// anywhere in the chain).
func QualifiedIdentifier(s *chunk.Store, pc chunk.ID) (chunk.ID, chunk.ID) {
	end := scopeChainEnd(s, pc)
	start := scopeChainStart(s, pc)
	if end == chunk.Invalid || start == chunk.Invalid {
		return chunk.Invalid, chunk.Invalid
	}
	for cur := start; cur != chunk.Invalid; cur = s.Next(cur) {
		if predicate.IsType(s, cur, chunk.DcMember) {
			return start, end
		}
		if cur == end {
			break
		}
	}
	return chunk.Invalid, chunk.Invalid
}

func scopeChainEnd(s *chunk.Store, pc chunk.ID) chunk.ID {
	end := pc
	for {
		next := s.NextNcNnl(end, chunk.Preproc)
		if next == chunk.Invalid || !pairmatch.QualifiedIdentifierPair(s, end, next) {
			return end
		}
		end = next
	}
}

func scopeChainStart(s *chunk.Store, pc chunk.ID) chunk.ID {
	start := pc
	for {
		prev := s.PrevNcNnl(start, chunk.Preproc)
		if prev == chunk.Invalid || !pairmatch.QualifiedIdentifierPair(s, prev, start) {
			return start
		}
		start = prev
	}
}

// Variable returns the (start, identifier, end) bounds of the variable
// declaration/definition containing pc at level, or three Invalid
// handles if none can be established.
func Variable(s *chunk.Store, pc chunk.ID, level int, language lang.Mask) (chunk.ID, chunk.ID, chunk.ID) {
	identifierFromEnd, end := VariableEnd(s, pc, level, language)
	start, identifierFromStart := VariableStart(s, pc, level, language)

	identifier := identifierFromEnd
	if identifier == chunk.Invalid {
		identifier = identifierFromStart
	}

	if identifier != chunk.Invalid && start != chunk.Invalid &&
		(end != chunk.Invalid || predicate.IsType(s, s.PrevNcNnl(identifier, chunk.All), chunk.Word)) {
		return start, identifier, end
	}
	return chunk.Invalid, chunk.Invalid, chunk.Invalid
}

// VariableEnd walks forward from pc, returning the candidate variable-name
// identifier and the last chunk of the declaration.
func VariableEnd(s *chunk.Store, pc chunk.ID, level int, language lang.Mask) (chunk.ID, chunk.ID) {
	var identifier chunk.ID = chunk.Invalid

	for pc != chunk.Invalid {
		var rhsExpEnd chunk.ID = chunk.Invalid
		if predicate.IsAssignToken(s, pc) {
			rhsExpEnd = skip.ToExpressionEnd(s, pc)
			pc = rhsExpEnd
		}
		for pc != chunk.Invalid && int(s.At(pc).Level) > level {
			pc = s.NextNcNnl(pc, chunk.All)
		}
		if predicate.IsType(s, pc, chunk.AngleOpen) || predicate.IsBraceOpenLike(s, pc) ||
			predicate.IsParenOpenLike(s, pc) || predicate.IsType(s, pc, chunk.SquareOpen) {
			pc = s.SkipToMatch(pc)
		}
		if pc == chunk.Invalid {
			return chunk.Invalid, chunk.Invalid
		}
		next := s.NextNcNnl(pc, chunk.All)

		if !predicate.IsType(s, next, chunk.Comma) && !predicate.IsType(s, next, chunk.FparenClose) &&
			!predicate.IsAnyType(s, next, chunk.Semicolon, chunk.Vsemicolon) &&
			!pairmatch.VarDefPair(s, pc, next, language) {
			break
		}
		if predicate.IsType(s, pc, chunk.Word) && pc != rhsExpEnd {
			identifier = pc
		}
		if predicate.IsType(s, next, chunk.Comma) || predicate.IsType(s, next, chunk.FparenClose) ||
			predicate.IsAnyType(s, next, chunk.Semicolon, chunk.Vsemicolon) {
			return identifier, pc
		}
		pc = next
	}
	return chunk.Invalid, chunk.Invalid
}

// VariableStart is the reverse of VariableEnd.
func VariableStart(s *chunk.Store, pc chunk.ID, level int, language lang.Mask) (chunk.ID, chunk.ID) {
	var identifier chunk.ID = chunk.Invalid

	for pc != chunk.Invalid {
		beforeRhsStart := skip.ExpressionRev(s, pc)
		prevWalk := pc
		var next chunk.ID = chunk.Invalid

		for prevWalk != beforeRhsStart && skip.IsAfter(s, prevWalk, beforeRhsStart) {
			next = prevWalk
			prevWalk = s.PrevNcNnl(next, chunk.Preproc)
			if predicate.IsAssignToken(s, next) {
				pc = prevWalk
			}
		}

		for pc != chunk.Invalid && int(s.At(pc).Level) > level {
			pc = s.PrevNcNnl(pc, chunk.Preproc)
		}
		if predicate.IsType(s, pc, chunk.AngleClose) || predicate.IsBraceCloseLike(s, pc) ||
			predicate.IsParenCloseLike(s, pc) || predicate.IsType(s, pc, chunk.SquareClose) {
			pc = s.SkipToMatchRev(pc)
		}
		if pc == chunk.Invalid {
			return chunk.Invalid, chunk.Invalid
		}
		prev := s.PrevNcNnl(pc, chunk.Preproc)

		if !pairmatch.VarDefPair(s, prev, pc, language) {
			if !predicate.IsType(s, prev, chunk.Word) &&
				(!predicate.IsPointerOrReference(s, pc) && !predicate.IsType(s, pc, chunk.Word)) {
				break
			}
		}
		if identifier == chunk.Invalid && predicate.IsType(s, pc, chunk.Word) {
			identifier = pc
		}
		if predicate.IsType(s, prev, chunk.AngleClose) || predicate.IsBraceCloseLike(s, prev) ||
			predicate.IsType(s, prev, chunk.Comma) || predicate.IsType(s, prev, chunk.TypeTag) ||
			predicate.IsType(s, prev, chunk.Word) {
			return pc, identifier
		}
		pc = prev
	}
	return chunk.Invalid, chunk.Invalid
}
