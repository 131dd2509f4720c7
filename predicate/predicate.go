// Package predicate implements the chunk predicates (component B):
// string-form and role-form tests for every operator/keyword, plus
// pointer/reference/qualifier classification. These are the leaves the
// rest of the core builds on — skippers (package skip), adjacent-pair
// matchers (package pairmatch), larger matchers (package match), and the
// mark/fix pass (package mark) all consult them instead of switching on
// chunk.Type directly, so the notion of e.g. "this is some kind of colon"
// has exactly one definition.
//
// Grounded on the reference implementation's chunk_tests.h, which defines
// one predicate per token (chunk_is_add_assign_token, chunk_is_alignof_str,
// ...). This package does not reproduce that one-wrapper-per-token texture
// mechanically; instead it exposes IsType/IsAnyType for the mechanical
// single-token case and names only the composite predicates that the rest
// of the core actually branches on.
package predicate

import "github.com/uncrustify/uncrustify-sub003/chunk"

// IsType reports whether id's chunk has the given Type. Equivalent to one
// of the reference implementation's chunk_is_X_token wrappers, but as a
// single parameterized function rather than ~260 generated ones.
func IsType(s *chunk.Store, id chunk.ID, t chunk.Type) bool {
	if id == chunk.Invalid {
		return false
	}
	return s.At(id).Type == t
}

// IsAnyType reports whether id's chunk has any of the given Types.
func IsAnyType(s *chunk.Store, id chunk.ID, types ...chunk.Type) bool {
	if id == chunk.Invalid {
		return false
	}
	t := s.At(id).Type
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}

// IsIdentifier reports whether id names something that could stand as an
// identifier in an expression or declaration: a plain word or a chunk
// already classified as a type name.
func IsIdentifier(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.Word, chunk.TypeTag)
}

// IsPointerOrReference reports whether id is one of the sigils that can
// appear in a compound-type or variable-definition pattern as a pointer or
// reference marker: '*', '&', '^' in any of their raw or already-classified
// forms (Star/Amp/Caret before classification; PtrType/Byref/Caret after).
func IsPointerOrReference(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id,
		chunk.Star, chunk.Amp, chunk.Caret,
		chunk.PtrType, chunk.Byref, chunk.Addr, chunk.Deref)
}

// IsQualifier reports whether id is a type qualifier keyword (const,
// volatile, and similar storage/cv qualifiers collapsed by the lexer into
// a single Qualifier tag, plus restrict-like extern/declspec wrappers that
// behave the same way in these patterns).
func IsQualifier(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.Qualifier, chunk.Volatile, chunk.Extern, chunk.Declspec, chunk.Align)
}

// IsClassStructUnion reports whether id opens a class/struct/union
// definition keyword (not enum: callers that also want to allow enum do so
// explicitly, since several patterns — e.g. the template-end pair — treat
// enum/enum-class asymmetrically from class/struct/union).
func IsClassStructUnion(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.Class, chunk.Struct, chunk.Union)
}

// IsColonToken reports whether id is any flavor of colon the core
// classifies: plain, class-inheritance, constructor-initializer,
// conditional (?:), case, label, where-clause, bitfield, asm, D array
// initializer, C# attribute, or for-each.
func IsColonToken(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id,
		chunk.Colon, chunk.ClassColon, chunk.ConstrColon, chunk.CondColon,
		chunk.CaseColon, chunk.LabelColon, chunk.WhereColon, chunk.BitColon,
		chunk.AsmColon, chunk.DArrayColon, chunk.CsSqColon, chunk.ForColon,
		chunk.TagColon)
}

// IsAssignToken reports whether id is any assignment operator, including
// the "assign followed by newline" bookkeeping tag used for indenting.
func IsAssignToken(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.Assign, chunk.AssignNl, chunk.Sassign)
}

// IsParenOpenLike reports whether id is any flavor of opening paren: a
// bare grouping paren, or one of the roles the brace/preprocessor pass
// stamps on it (function, statement-keyword, type).
func IsParenOpenLike(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.ParenOpen, chunk.SparenOpen, chunk.FparenOpen, chunk.TparenOpen)
}

// IsParenCloseLike reports whether id is any flavor of closing paren.
func IsParenCloseLike(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.ParenClose, chunk.SparenClose, chunk.FparenClose, chunk.TparenClose)
}

// IsBraceOpenLike reports whether id is a real or virtual opening brace.
func IsBraceOpenLike(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.BraceOpen, chunk.VbraceOpen)
}

// IsBraceCloseLike reports whether id is a real or virtual closing brace.
func IsBraceCloseLike(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.BraceClose, chunk.VbraceClose)
}

// IsTypenameToken reports whether id is the 'typename' or 'template'
// keyword used to introduce a dependent type name.
func IsTypenameToken(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.Typename, chunk.Template)
}

// IsKeyword reports whether id's chunk Type is one of the reserved-word
// types listed in keywordTypes (if, for, struct, ...). Only the Type is
// consulted, not the spelling, so a chunk already retyped to TypeTag is
// never a keyword here whatever its text.
func IsKeyword(s *chunk.Store, id chunk.ID) bool {
	if id == chunk.Invalid {
		return false
	}
	_, ok := keywordTypes[s.At(id).Type]
	return ok
}

var keywordTypes = map[chunk.Type]struct{}{
	chunk.If: {}, chunk.Else: {}, chunk.Elseif: {}, chunk.For: {}, chunk.While: {},
	chunk.Switch: {}, chunk.Case: {}, chunk.Do: {}, chunk.Sizeof: {}, chunk.Return: {},
	chunk.Break: {}, chunk.Goto: {}, chunk.Continue: {}, chunk.Typedef: {}, chunk.Struct: {},
	chunk.Enum: {}, chunk.Union: {}, chunk.Class: {}, chunk.Namespace: {}, chunk.Using: {},
	chunk.Try: {}, chunk.Catch: {}, chunk.Throw: {}, chunk.Friend: {}, chunk.Operator: {},
	chunk.New: {}, chunk.Delete: {}, chunk.This: {}, chunk.Sassign: {},
}

// IsLiteral reports whether id is a numeric, character, or string literal.
func IsLiteral(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.Number, chunk.NumberFp, chunk.String, chunk.StringMulti, chunk.Char)
}

// IsIntrinsicType reports whether id is a built-in scalar type keyword
// (int, char, void, ...), as opposed to a WORD later resolved to a
// user-defined TypeTag by the mark and construct passes.
func IsIntrinsicType(s *chunk.Store, id chunk.ID) bool {
	return IsType(s, id, chunk.Native)
}

// IsMacroReference reports whether id is a chunk that was classified as
// referencing a preprocessor macro rather than a plain identifier.
func IsMacroReference(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.MacroFunc, chunk.Macro)
}

// IsOverloadedToken reports whether id is the 'operator' keyword
// introducing an operator-overload declaration.
func IsOverloadedToken(s *chunk.Store, id chunk.ID) bool {
	return IsType(s, id, chunk.Operator)
}

// IsDoubleColonToken reports whether id is a scope-resolution '::'.
func IsDoubleColonToken(s *chunk.Store, id chunk.ID) bool {
	return IsType(s, id, chunk.DcMember)
}

// IsAmpersandToken reports whether id is a single reference sigil '&'
// (the lexer reuses one token type for '&' in all its roles, so a single
// '&' is distinguished from '&&' by text, not type).
func IsAmpersandToken(s *chunk.Store, id chunk.ID) bool {
	if !IsAnyType(s, id, chunk.Amp, chunk.Byref) {
		return false
	}
	return s.At(id).Text != "&&"
}

// IsDoubleAmpersandToken reports whether id is an rvalue-reference
// sigil '&&'.
func IsDoubleAmpersandToken(s *chunk.Store, id chunk.ID) bool {
	return IsAnyType(s, id, chunk.Amp, chunk.Byref) && s.At(id).Text == "&&"
}

// IsCvQualifierToken reports whether id is a trailing member-function
// cv-qualifier (const/volatile).
func IsCvQualifierToken(s *chunk.Store, id chunk.ID) bool {
	return IsType(s, id, chunk.Qualifier)
}

// IsNoexceptToken reports whether id is the 'noexcept' keyword.
func IsNoexceptToken(s *chunk.Store, id chunk.ID) bool {
	return IsType(s, id, chunk.Noexcept)
}

// IsAutoToken reports whether id is the 'auto' type-deduction keyword
// (a TypeTag chunk whose text is literally "auto", rather than a
// distinct token type).
func IsAutoToken(s *chunk.Store, id chunk.ID) bool {
	return IsType(s, id, chunk.TypeTag) && s.At(id).Text == "auto"
}
