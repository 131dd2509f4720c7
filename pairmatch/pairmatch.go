// Package pairmatch implements the adjacent-pair pattern matchers
// (component D): pure, stateless predicates over a (prev, next) pair of
// non-comment, non-newline chunks that decide whether the pair is locally
// consistent with a qualified identifier, a variable definition, a
// compound type, or a template argument list opening/closing.
//
// Every predicate here is a switch on prev's type with a per-case
// whitelist of allowed next types, grounded verbatim on the reference
// implementation's adj_chunks_match_*_pattern functions in match_tools.cpp
// — SPEC_FULL.md §4.2 calls these "the table is normative" and this
// package is that table, once, in one place, so the five predicates
// cannot drift against each other (DESIGN NOTES, "produce the decision
// tables from a single source of truth").
//
// None of these predicates ever panic or look past the two chunks given
// plus the language mask: on an Invalid handle or an unrecognized pair
// they simply return false, which is how the caller's enclosing walk
// terminates (SPEC_FULL.md §4.2, "failure mode").
package pairmatch

import (
	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/lang"
	"github.com/uncrustify/uncrustify-sub003/predicate"
)

func t(s *chunk.Store, id chunk.ID) chunk.Type {
	if id == chunk.Invalid {
		return chunk.None
	}
	return s.At(id).Type
}

// parenClass collapses every flavor of paren-open/close into the bare
// ParenOpen/ParenClose tag for the purposes of a switch, mirroring the
// reference implementation's local get_token_type closures (used by both
// adj_chunks_match_compound_type_pattern and
// adj_chunks_match_var_def_pattern) that treat SparenOpen/FparenOpen/
// TparenOpen identically to a plain ParenOpen at this level of analysis.
func parenClass(ty chunk.Type) chunk.Type {
	switch ty {
	case chunk.ParenOpen, chunk.SparenOpen, chunk.FparenOpen, chunk.TparenOpen:
		return chunk.ParenOpen
	case chunk.ParenClose, chunk.SparenClose, chunk.FparenClose, chunk.TparenClose:
		return chunk.ParenClose
	default:
		return ty
	}
}

// QualifiedIdentifierPair decides whether (prev, next) can continue a
// Ns::Template<...>::Name chain.
//
//	prev.type        allowed next.type
//	ANGLE_CLOSE       DC_MEMBER
//	ANGLE_OPEN        any, provided a matching ANGLE_CLOSE exists
//	DC_MEMBER         TYPE, WORD
//	TYPE, WORD        ANGLE_OPEN, DC_MEMBER
func QualifiedIdentifierPair(s *chunk.Store, prev, next chunk.ID) bool {
	if prev == chunk.Invalid || next == chunk.Invalid {
		return false
	}
	switch t(s, prev) {
	case chunk.AngleClose:
		return t(s, next) == chunk.DcMember
	case chunk.AngleOpen:
		return s.SkipToMatch(prev) != chunk.Invalid
	case chunk.DcMember:
		return predicate.IsAnyType(s, next, chunk.TypeTag, chunk.Word)
	case chunk.TypeTag, chunk.Word:
		return predicate.IsAnyType(s, next, chunk.AngleOpen, chunk.DcMember)
	}
	return false
}

// VarDefPair decides whether (prev, next) is consistent with a variable
// definition. This is the normative table named by SPEC_FULL.md §4.2,
// reproduced from adj_chunks_match_var_def_pattern.
func VarDefPair(s *chunk.Store, prev, next chunk.ID, language lang.Mask) bool {
	if prev == chunk.Invalid || next == chunk.Invalid {
		return false
	}
	prevClass := parenClass(t(s, prev))
	nextClass := parenClass(t(s, next))

	switch prevClass {
	case chunk.AngleClose:
		return predicate.IsPointerOrReference(s, next) ||
			nextClass == chunk.DcMember ||
			nextClass == chunk.Qualifier ||
			nextClass == chunk.Word

	case chunk.AngleOpen:
		return s.SkipToMatch(prev) != chunk.Invalid

	case chunk.BraceClose:
		return predicate.IsPointerOrReference(s, next) ||
			nextClass == chunk.Qualifier ||
			nextClass == chunk.Word

	case chunk.BraceOpen:
		return s.SkipToMatch(prev) != chunk.Invalid

	case chunk.Byref:
		return nextClass == chunk.Word

	case chunk.Caret:
		return language.Is(lang.CppCli) &&
			(predicate.IsPointerOrReference(s, next) || nextClass == chunk.Qualifier || nextClass == chunk.Word)

	case chunk.Comma:
		return predicate.IsPointerOrReference(s, next) || nextClass == chunk.Word

	case chunk.DcMember:
		return nextClass == chunk.TypeTag || nextClass == chunk.Word

	case chunk.ParenOpen:
		return s.SkipToMatch(prev) != chunk.Invalid

	case chunk.PtrType, chunk.Star:
		return predicate.IsPointerOrReference(s, next) ||
			nextClass == chunk.Qualifier ||
			nextClass == chunk.Word

	case chunk.Qualifier:
		return predicate.IsPointerOrReference(s, next) ||
			nextClass == chunk.Qualifier ||
			nextClass == chunk.Word

	case chunk.SquareClose:
		return nextClass == chunk.Assign || nextClass == chunk.SquareOpen

	case chunk.SquareOpen:
		return s.SkipToMatch(prev) != chunk.Invalid

	case chunk.Tsquare:
		return nextClass == chunk.Assign || nextClass == chunk.SquareOpen

	case chunk.TypeTag:
		return predicate.IsPointerOrReference(s, next) ||
			nextClass == chunk.AngleOpen ||
			(nextClass == chunk.DcMember && !predicate.IsKeyword(s, prev)) ||
			nextClass == chunk.Qualifier ||
			nextClass == chunk.Word

	case chunk.Word:
		return nextClass == chunk.AngleOpen ||
			nextClass == chunk.Assign ||
			nextClass == chunk.BraceOpen ||
			nextClass == chunk.DcMember ||
			nextClass == chunk.ParenOpen ||
			nextClass == chunk.SquareOpen ||
			nextClass == chunk.Tsquare
	}
	return false
}

// CompoundTypePair is broader than VarDefPair: it additionally allows a
// closing paren after TYPE (a function-pointer signature), a DECLTYPE
// opening its paren, and TYPEDEF/TYPENAME as prev with the appropriate
// nexts, per SPEC_FULL.md §4.2.
func CompoundTypePair(s *chunk.Store, prev, next chunk.ID, language lang.Mask) bool {
	if prev == chunk.Invalid || next == chunk.Invalid {
		return false
	}
	if VarDefPair(s, prev, next, language) {
		return true
	}
	switch t(s, prev) {
	case chunk.TypeTag:
		return predicate.IsParenCloseLike(s, next)
	case chunk.Decltype:
		return predicate.IsParenOpenLike(s, next)
	case chunk.Typedef:
		return predicate.IsPointerOrReference(s, next) ||
			predicate.IsQualifier(s, next) ||
			predicate.IsIdentifier(s, next)
	case chunk.Typename:
		return predicate.IsIdentifier(s, next) || t(s, next) == chunk.DcMember
	}
	return false
}

// TemplateEndPair decides whether a '>' at this position closes a template
// argument list rather than being a comparison, by checking the token
// immediately before it (for the case prev.type already looks like the
// tail of a type expression) or immediately after it.
func TemplateEndPair(s *chunk.Store, prev, next chunk.ID, language lang.Mask) bool {
	if prev == chunk.Invalid || next == chunk.Invalid {
		return false
	}
	nextParent := s.At(next).ParentType

	switch t(s, prev) {
	case chunk.AngleClose:
		return predicate.IsClassStructUnion(s, next) ||
			predicate.IsColonToken(s, next) ||
			predicate.IsPointerOrReference(s, next) ||
			t(s, next) == chunk.AngleClose ||
			t(s, next) == chunk.Assign ||
			t(s, next) == chunk.BraceOpen ||
			t(s, next) == chunk.Comma ||
			t(s, next) == chunk.DcMember ||
			t(s, next) == chunk.Ellipsis ||
			predicate.IsParenCloseLike(s, next) ||
			predicate.IsParenOpenLike(s, next) ||
			predicate.IsQualifier(s, next) ||
			t(s, next) == chunk.Semicolon ||
			t(s, next) == chunk.SquareOpen ||
			t(s, next) == chunk.Template ||
			t(s, next) == chunk.TypeTag ||
			t(s, next) == chunk.Using ||
			t(s, next) == chunk.Word ||
			nextParent == chunk.Class ||
			nextParent == chunk.Enum ||
			nextParent == chunk.EnumClass ||
			nextParent == chunk.FuncClassDef ||
			nextParent == chunk.FuncDef ||
			nextParent == chunk.Function ||
			nextParent == chunk.Struct ||
			nextParent == chunk.Union

	case chunk.AngleOpen, chunk.Byref, chunk.Class, chunk.Ellipsis, chunk.Number,
		chunk.PtrType, chunk.Qualifier, chunk.SquareClose, chunk.Star, chunk.TypeTag,
		chunk.Typename, chunk.Word:
		return t(s, next) == chunk.AngleClose

	case chunk.ParenClose:
		return t(s, next) == chunk.AngleClose

	case chunk.String:
		text := s.At(prev).Text
		return len(text) > 0 && text[len(text)-1] == '\''
	}
	return false
}

// TemplateStartPair decides whether a '<' at this position opens a
// template argument list rather than being a comparison.
func TemplateStartPair(s *chunk.Store, prev, next chunk.ID) bool {
	if prev == chunk.Invalid || next == chunk.Invalid {
		return false
	}
	switch t(s, prev) {
	case chunk.AngleOpen:
		if predicate.IsClassStructUnion(s, next) {
			return true
		}
		switch t(s, next) {
		case chunk.AngleClose, chunk.DcMember, chunk.Decltype, chunk.Inv, chunk.Minus,
			chunk.Not, chunk.Number, chunk.Plus, chunk.Sizeof, chunk.Template,
			chunk.TypeTag, chunk.Typename, chunk.Word:
			return true
		}
		if predicate.IsQualifier(s, next) || predicate.IsParenOpenLike(s, next) {
			return true
		}
		if t(s, next) == chunk.String {
			text := s.At(next).Text
			return len(text) > 0 && text[0] == '\''
		}
		return false

	case chunk.Template, chunk.TypeTag, chunk.Word:
		return t(s, next) == chunk.AngleOpen
	}
	return false
}
