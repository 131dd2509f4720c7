// Package mark implements the mark/fix pass (component F): the stage that
// walks the brace-cleaned chunk sequence and reclassifies chunks that the
// lexer and brace pass left ambiguous — "(word)" as a cast or a
// parenthesized expression, "name(" as a function call, definition, or
// prototype, a run of WORD/TYPE/'*' chunks as a variable definition — by
// looking at what comes before and after them.
//
// Grounded on the reference implementation's combine_fix_mark.cpp, one
// function per fix_*/mark_* entry point it exposes. mark_function and
// mark_function_type are reduced from the reference's full ~1200-line
// treatment (which separately handles every language's calling and
// declaration conventions) to the structural core that decides def vs.
// proto vs. call and marks parameters and return type accordingly; see
// DESIGN.md for what was dropped.
package mark

import (
	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/lang"
	"github.com/uncrustify/uncrustify-sub003/predicate"
	"github.com/uncrustify/uncrustify-sub003/skip"
)

const invalid = chunk.Invalid

func isPtrOperator(s *chunk.Store, id chunk.ID) bool {
	return predicate.IsAnyType(s, id, chunk.Star, chunk.Caret, chunk.PtrType)
}

// Casts marks a parenthesized "(type)" span starting at the open paren as
// a C-style cast when everything inside it looks like a type expression
// and what follows looks like an operand rather than an operator.
// Grounded on fix_casts.
func Casts(s *chunk.Store, start chunk.ID, language lang.Mask) {
	prev := s.PrevNcNnl(start, chunk.All)
	if prev == invalid {
		return
	}
	if predicate.IsAnyType(s, prev, chunk.PpDefined, chunk.AngleClose) {
		return
	}

	pc := s.NextNcNnl(start, chunk.All)
	first := pc
	var last chunk.ID = invalid
	wordCount := 0
	count := 0

	isCastBody := func(id chunk.ID) bool {
		t := s.At(id).Type
		switch t {
		case chunk.TypeTag, chunk.Word, chunk.Qualifier, chunk.DcMember,
			chunk.Pp, chunk.Star, chunk.Question, chunk.Caret, chunk.Tsquare, chunk.Amp:
			return true
		case chunk.AngleOpen, chunk.AngleClose:
			return language.Is(lang.ObjC | lang.Java | lang.CS | lang.Vala | lang.CPP)
		case chunk.Comma:
			return language.Is(lang.Java|lang.CS|lang.Vala) || language.Is(lang.CPP)
		case chunk.Member:
			return language.Is(lang.Java | lang.CS | lang.Vala)
		}
		return false
	}

	for pc != invalid && isCastBody(pc) {
		switch {
		case predicate.IsType(s, pc, chunk.Word),
			predicate.IsType(s, last, chunk.AngleClose) && predicate.IsType(s, pc, chunk.DcMember):
			wordCount++
		case predicate.IsAnyType(s, pc, chunk.DcMember, chunk.Member, chunk.Pp):
			wordCount--
		}
		last = pc
		pc = s.NextNcNnl(pc, chunk.All)
		count++
	}

	if pc == invalid || !predicate.IsType(s, pc, chunk.ParenClose) || predicate.IsType(s, prev, chunk.OcClass) {
		return
	}
	if wordCount > 1 {
		return
	}
	parenClose := pc

	doubtfulCast := false
	sureCast := predicate.IsAnyType(s, last, chunk.Star, chunk.Caret, chunk.PtrType, chunk.TypeTag) ||
		(predicate.IsType(s, last, chunk.AngleClose) && language.Is(lang.ObjC|lang.Java|lang.CS|lang.Vala|lang.CPP))

	if !sureCast && count == 1 {
		text := s.At(last).Text
		looksLikeType := (len(text) > 3 && text[len(text)-2] == '_' && text[len(text)-1] == 't') ||
			isUpperCase(text) ||
			(language.Is(lang.ObjC) && text == "id")
		if !looksLikeType {
			doubtfulCast = true
		}

		pc = s.NextNcNnl(parenClose, chunk.All)
		after := pc
		for {
			after = s.NextNcNnl(after, chunk.All)
			if !predicate.IsType(s, after, chunk.ParenOpen) {
				break
			}
		}
		if after == invalid || pc == invalid {
			return
		}

		nope := false
		switch {
		case isPtrOperator(s, pc) || predicate.IsAmpersandToken(s, pc):
			if predicate.IsAnyType(s, after, chunk.NumberFp, chunk.Number, chunk.String) || doubtfulCast {
				nope = true
			}
		case predicate.IsType(s, pc, chunk.Minus):
			if predicate.IsType(s, after, chunk.String) || doubtfulCast {
				nope = true
			}
		case predicate.IsType(s, pc, chunk.Plus):
			if !predicate.IsAnyType(s, after, chunk.Number, chunk.NumberFp) || doubtfulCast {
				nope = true
			}
		default:
			ok := predicate.IsAnyType(s, pc, chunk.NumberFp, chunk.Number, chunk.Word, chunk.This,
				chunk.TypeTag, chunk.ParenOpen, chunk.String, chunk.Decltype, chunk.Sizeof,
				chunk.FuncCall, chunk.FuncCallUser, chunk.Function, chunk.BraceOpen) ||
				s.At(pc).ParentType == chunk.Sizeof ||
				(predicate.IsType(s, pc, chunk.SquareOpen) && language.Is(lang.ObjC))
			if !ok {
				return
			}
		}
		if nope {
			return
		}
	}

	pc = s.NextNcNnl(parenClose, chunk.All)
	if pc == invalid {
		return
	}
	if predicate.IsAnyType(s, pc, chunk.Semicolon, chunk.Vsemicolon, chunk.Comma, chunk.Bool) || predicate.IsParenCloseLike(s, pc) {
		return
	}

	s.At(start).ParentType = chunk.CCast
	s.At(parenClose).ParentType = chunk.CCast
	for p := first; p != invalid && p != parenClose; p = s.NextNcNnl(p, chunk.All) {
		s.At(p).ParentType = chunk.CCast
		s.At(p).Type = chunk.TypeTag
	}

	pc = s.NextNcNnl(parenClose, chunk.All)
	if pc != invalid {
		s.At(pc).Flags = s.At(pc).Flags.Set(chunk.ExprStart)
	}
}

func isUpperCase(text string) bool {
	seenUpper := false
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			seenUpper = true
		}
	}
	return seenUpper
}

// FcnDefParams marks the parameter list starting at a function's open
// paren: pointer/reference sigils become PtrType/Byref, WORD/TYPE runs are
// pushed onto a stack and resolved into (type, name) pairs at each comma
// or '='. No flag is set on the list as a whole.
// Grounded on fix_fcn_def_params.
func FcnDefParams(s *chunk.Store, start chunk.ID, language lang.Mask) {
	for start != invalid && !predicate.IsParenOpenLike(s, start) {
		start = s.NextNcNnl(start, chunk.All)
	}
	if start == invalid {
		return
	}
	level := s.At(start).Level + 1
	var stack []chunk.ID
	pc := s.NextNcNnl(start, chunk.All)

	for pc != invalid {
		if s.At(pc).Level < level {
			break
		}
		if s.At(pc).Level > level {
			pc = s.NextNcNnl(pc, chunk.All)
			continue
		}
		switch {
		case predicate.IsType(s, pc, chunk.Star):
			s.At(pc).Type = chunk.PtrType
			stack = append(stack, pc)
		case predicate.IsAmpersandToken(s, pc) || (language.Is(lang.CPP) && predicate.IsDoubleAmpersandToken(s, pc)):
			s.At(pc).Type = chunk.Byref
			stack = append(stack, pc)
		case predicate.IsAnyType(s, pc, chunk.TypeWrap, chunk.Word, chunk.TypeTag):
			stack = append(stack, pc)
		case predicate.IsAnyType(s, pc, chunk.Comma, chunk.Assign):
			VariableStack(s, stack)
			stack = nil
			if predicate.IsType(s, pc, chunk.Assign) {
				s.At(pc).ParentType = chunk.FuncProto
			}
		}
		pc = s.NextNcNnl(pc, chunk.All)
	}
	VariableStack(s, stack)
}

// TypeCast marks a C++-style "static_cast<T>(...)" template-argument span
// as a type and the following parens as the cast's argument list.
// Grounded on fix_type_cast.
func TypeCast(s *chunk.Store, start chunk.ID) {
	pc := s.NextNcNnl(start, chunk.All)
	if pc == invalid || !predicate.IsType(s, pc, chunk.AngleOpen) {
		return
	}
	pc = s.NextNcNnl(pc, chunk.All)
	for pc != invalid && s.At(pc).Level >= s.At(start).Level {
		if s.At(pc).Level == s.At(start).Level && predicate.IsType(s, pc, chunk.AngleClose) {
			pc = s.NextNcNnl(pc, chunk.All)
			if pc == invalid {
				return
			}
			if s.At(pc).Text == "(" {
				s.At(pc).ParentType = chunk.TypeCast
			}
			return
		}
		s.At(pc).Type = chunk.TypeTag
		pc = s.NextNcNnl(pc, chunk.All)
	}
}

// Typedef marks a "typedef ..." statement: every chunk in it gets
// PCF_IN_TYPEDEF, a trailing ")(" makes it a function-pointer typedef
// whose parameter list is fixed up via FcnDefParams, and otherwise the
// last TYPE chunk before the terminating ';' is flagged PCF_ANCHOR for
// alignment. Grounded on fix_typedef.
func Typedef(s *chunk.Store, start chunk.ID, language lang.Mask) {
	var theType chunk.ID = invalid
	var lastOp chunk.ID = invalid

	for next := s.NextNcNnl(start, chunk.Preproc); next != invalid && s.At(next).Level >= s.At(start).Level; next = s.NextNcNnl(next, chunk.Preproc) {
		s.At(next).Flags = s.At(next).Flags.Set(chunk.InTypedef)
		if s.At(start).Level != s.At(next).Level {
			continue
		}
		if predicate.IsAnyType(s, next, chunk.Semicolon, chunk.Vsemicolon) {
			s.At(next).ParentType = chunk.Typedef
			break
		}
		if predicate.IsType(s, next, chunk.Attribute) {
			break
		}
		if language.Is(lang.D) && predicate.IsType(s, next, chunk.Assign) {
			s.At(next).ParentType = chunk.Typedef
			break
		}
		// A paren pair keeps its role (it is what lastOp/FcnDefParams below
		// key off of); only bare type words at this level turn into TYPE.
		if !predicate.IsParenOpenLike(s, next) && !predicate.IsParenCloseLike(s, next) {
			if predicate.IsType(s, next, chunk.Word) {
				s.At(next).Type = chunk.TypeTag
			}
			if predicate.IsType(s, next, chunk.TypeTag) {
				theType = next
			}
			s.At(next).Flags = s.At(next).Flags.Clear(chunk.Var1stDef)
		}
		if s.At(next).Text == "(" {
			lastOp = next
		}
	}

	if lastOp != invalid && !(language.Is(lang.ObjC) && s.At(lastOp).ParentType == chunk.Enum) {
		FcnDefParams(s, lastOp, language)
		if paramClose := s.SkipToMatch(lastOp); paramClose != invalid {
			s.At(lastOp).Type = chunk.FparenOpen
			s.At(paramClose).Type = chunk.FparenClose
			s.At(lastOp).ParentType = chunk.FuncProto
			s.At(paramClose).ParentType = chunk.FuncProto
		}
		theType = s.PrevNcNnl(lastOp, chunk.Preproc)
		if theType == invalid {
			return
		}
		if predicate.IsParenCloseLike(s, theType) {
			openParen := s.SkipToMatchRev(theType)
			FunctionType(s, theType)
			_ = openParen
			theType = s.PrevNcNnl(theType, chunk.Preproc)
			if theType == invalid {
				return
			}
		} else {
			s.At(theType).Type = chunk.FuncType
		}
		s.At(theType).ParentType = chunk.Typedef
		return
	}

	after := s.NextNcNnl(start, chunk.Preproc)
	if after == invalid {
		return
	}
	if !predicate.IsAnyType(s, after, chunk.Enum, chunk.Struct, chunk.Union) {
		if theType != invalid {
			s.At(theType).Flags = s.At(theType).Flags.Set(chunk.Anchor)
		}
		return
	}
	next := s.NextNcNnl(after, chunk.Preproc)
	if next == invalid {
		return
	}
	if predicate.IsType(s, next, chunk.TypeTag) {
		next = s.NextNcNnl(next, chunk.Preproc)
		if next == invalid {
			return
		}
	}
	if predicate.IsType(s, next, chunk.BraceOpen) {
		if brClose := s.GetNextType(next, chunk.BraceClose, int(s.At(next).Level)); brClose != invalid {
			tag := s.At(after).Type
			s.At(next).ParentType = tag
			s.At(brClose).ParentType = tag
			switch tag {
			case chunk.Enum:
				flagSeries(s, after, brClose, chunk.InEnum)
			case chunk.Struct:
				flagSeries(s, after, brClose, chunk.InStruct)
			}
		}
	}
	if theType != invalid {
		s.At(theType).Flags = s.At(theType).Flags.Set(chunk.Anchor)
	}
}

func flagSeries(s *chunk.Store, from, to chunk.ID, flag chunk.Flags) {
	for pc := from; pc != invalid; pc = s.Next(pc) {
		s.At(pc).Flags = s.At(pc).Flags.Set(flag)
		if pc == to {
			break
		}
	}
}

// VariableDefinition walks a run of TYPE/WORD/qualifier/pointer chunks
// starting at start, splits off the trailing name(s), marks the leading
// chunks as the type and the rest as a variable definition, and returns
// the chunk just past the statement. Grounded on fix_variable_definition.
func VariableDefinition(s *chunk.Store, start chunk.ID, language lang.Mask) chunk.ID {
	pc := start
	var stack []chunk.ID

	isBodyChunk := func(id chunk.ID) bool {
		return predicate.IsAnyType(s, id, chunk.TypeTag, chunk.Word, chunk.Qualifier, chunk.Typename, chunk.DcMember, chunk.Member, chunk.Pp) ||
			isPtrOperator(s, id) || predicate.IsAmpersandToken(s, id) || predicate.IsDoubleAmpersandToken(s, id)
	}

	for isBodyChunk(pc) {
		stack = append(stack, pc)
		pc = s.NextNcNnl(pc, chunk.All)
		if pc == invalid {
			return invalid
		}
		pc = skip.TemplateNext(s, pc)
		if pc == invalid {
			return invalid
		}
		pc = skip.AttributeNext(s, pc)
		if pc == invalid {
			return invalid
		}
		if language.Is(lang.Java) {
			pc = skip.TsquareNext(s, pc)
		}
	}
	end := pc
	if end == invalid {
		return invalid
	}
	if predicate.IsType(s, end, chunk.FuncCtorVar) {
		return end
	}

	if len(stack) == 1 && predicate.IsType(s, end, chunk.BraceOpen) && s.At(end).ParentType == chunk.BracedInitList {
		s.At(stack[0]).Type = chunk.TypeTag
	}

	if len(stack) <= 1 || predicate.IsAnyType(s, end, chunk.FuncDef, chunk.FuncProto, chunk.FuncClassDef, chunk.FuncClassProto, chunk.Operator) {
		return skip.ToNextStatement(s, end)
	}

	refIdx := len(stack) - 1
	if len(stack) >= 3 && predicate.IsAnyType(s, stack[len(stack)-2], chunk.Member, chunk.DcMember) {
		idx := len(stack) - 2
		for idx > 0 {
			if !predicate.IsAnyType(s, stack[idx], chunk.DcMember, chunk.Member) {
				break
			}
			idx--
			if !predicate.IsAnyType(s, stack[idx], chunk.Word, chunk.TypeTag) {
				break
			}
			s.At(stack[idx]).Type = chunk.TypeTag
			idx--
		}
		refIdx = idx + 1
	}
	// A run of '*'/'&'/'&&' directly ahead of the declared name is part of
	// the declarator, not the type: leave it for VariableDefinitionName to
	// retype as PtrType/Byref rather than folding it into the blanket
	// TypeTag below.
	for refIdx > 0 && (isPtrOperator(s, stack[refIdx-1]) ||
		predicate.IsAmpersandToken(s, stack[refIdx-1]) ||
		predicate.IsDoubleAmpersandToken(s, stack[refIdx-1])) {
		refIdx--
	}
	if refIdx <= 0 {
		return skip.ToNextStatement(s, end)
	}

	for i := 0; i < refIdx; i++ {
		s.At(stack[i]).Type = chunk.TypeTag
		s.At(stack[i]).Flags = s.At(stack[i]).Flags.Set(chunk.VarType)
	}
	VariableDefinitionName(s, stack[refIdx])

	if predicate.IsType(s, end, chunk.Comma) {
		return s.NextNcNnl(end, chunk.All)
	}
	return skip.ToNextStatement(s, end)
}

// VariableDefinitionName marks the first name of a variable definition as
// a 1st-definition variable and each later name in the same statement as
// a plain definition, turning '*'/'&' between them into pointer/reference
// sigils. An initializer introduced by '='/'[' is skipped as a whole;
// after a bitfield ':' a '*' is no longer retyped. Stops at the
// statement's ';' or where the level drops below start's.
// Grounded on mark_variable_definition.
func VariableDefinitionName(s *chunk.Store, start chunk.ID) chunk.ID {
	pc := start
	flags := chunk.Var1stDef
	bitfieldColon := false

	for pc != invalid && s.At(pc).Level == s.At(start).Level && !predicate.IsAnyType(s, pc, chunk.Semicolon, chunk.Vsemicolon) {
		switch {
		case predicate.IsAnyType(s, pc, chunk.Word, chunk.FuncCtorVar):
			if !s.At(pc).Flags.Has(chunk.InEnum) {
				s.At(pc).Flags = s.At(pc).Flags.Set(flags)
			}
			flags = flags.Clear(chunk.Var1st)
		case !bitfieldColon && isPtrOperator(s, pc):
			s.At(pc).Type = chunk.PtrType
		case predicate.IsAmpersandToken(s, pc) || predicate.IsDoubleAmpersandToken(s, pc):
			s.At(pc).Type = chunk.Byref
		case predicate.IsAnyType(s, pc, chunk.SquareOpen, chunk.Assign):
			pc = skip.Expression(s, pc)
			continue
		case predicate.IsColonToken(s, pc):
			bitfieldColon = true
		}
		pc = s.NextNcNnl(pc, chunk.All)
	}
	return pc
}

// VariableStack resolves a stack of WORD/TYPE chunks collected while
// scanning a parameter or typedef list: the last WORD is the variable
// name (PCF_VAR_DEF) and everything before it is the type (PCF_VAR_TYPE).
// A stack of length 1 is a type with no name (an unnamed parameter).
// Grounded on mark_variable_stack.
func VariableStack(s *chunk.Store, stack []chunk.ID) {
	if len(stack) == 0 {
		return
	}
	varName := stack[len(stack)-1]
	rest := stack[:len(stack)-1]

	if prev := s.Prev(varName); prev != invalid && s.At(prev).Type == chunk.DcMember {
		rest = stack
		varName = invalid
	}

	wordCount := 0
	for _, w := range rest {
		if predicate.IsAnyType(s, w, chunk.Word, chunk.TypeTag) {
			s.At(w).Type = chunk.TypeTag
			s.At(w).Flags = s.At(w).Flags.Set(chunk.VarType)
		}
		wordCount++
	}

	if varName != invalid && predicate.IsType(s, varName, chunk.Word) {
		if wordCount > 0 {
			s.At(varName).Flags = s.At(varName).Flags.Set(chunk.VarDef)
		} else {
			s.At(varName).Type = chunk.TypeTag
			s.At(varName).Flags = s.At(varName).Flags.Set(chunk.VarType)
		}
	}
}

// Lvalue walks backward from pc flagging every chunk at pc's level as
// PCF_LVALUE, stopping at an access specifier, assignment, boolean
// operator, comma, semicolon, or open bracket/brace/paren. A trailing '&'
// at pc's own level found this way is reinterpreted as a reference sigil.
// Grounded on mark_lvalue.
func Lvalue(s *chunk.Store, pc chunk.ID) {
	if s.At(pc).Flags.Has(chunk.InPreproc) {
		return
	}
	for prev := s.PrevNcNnl(pc, chunk.All); prev != invalid; prev = s.PrevNcNnl(prev, chunk.All) {
		c := s.At(prev)
		if c.Level < s.At(pc).Level ||
			predicate.IsAssignToken(s, prev) ||
			predicate.IsType(s, prev, chunk.Bool) ||
			predicate.IsType(s, prev, chunk.Comma) ||
			predicate.IsAnyType(s, prev, chunk.Semicolon, chunk.Vsemicolon) ||
			c.Text == "(" || c.Text == "{" || c.Text == "[" ||
			c.Flags.Has(chunk.InPreproc) ||
			c.ParentType == chunk.Namespace ||
			c.ParentType == chunk.Template {
			break
		}
		s.At(prev).Flags = s.At(prev).Flags.Set(chunk.Lvalue)
		if c.Level == s.At(pc).Level && c.Text == "&" {
			s.At(prev).Type = chunk.Byref
		}
	}
}

// StructUnionBody walks a struct/union/class body, treating each
// statement as a variable definition unless it is an align(...) qualifier
// or a lone '&' expression. Grounded on mark_struct_union_body.
func StructUnionBody(s *chunk.Store, start chunk.ID, language lang.Mask) {
	pc := start
	for pc != invalid && s.At(pc).Level >= s.At(start).Level &&
		!(s.At(pc).Level == s.At(start).Level && predicate.IsType(s, pc, chunk.BraceClose)) {
		if predicate.IsAnyType(s, pc, chunk.BraceOpen, chunk.BraceClose, chunk.Semicolon) {
			pc = s.NextNcNnl(pc, chunk.All)
			if pc == invalid {
				break
			}
		}
		switch {
		case predicate.IsType(s, pc, chunk.Align):
			pc = skip.Align(s, pc)
			if pc == invalid {
				return
			}
		case predicate.IsType(s, pc, chunk.Amp):
			pc = skip.Expression(s, pc)
		default:
			pc = VariableDefinition(s, pc, language)
			if pc == invalid {
				return
			}
		}
	}
}

// CppConstructor marks a constructor/destructor declaration or
// definition: its parameter list, any member-initializer-list entries
// (each "name(" becomes a PCF_IN_CONST_ARGS FUNC_CTOR_VAR call), and
// whether it ends in a body (parens and brace get parent FUNC_CLASS_DEF)
// or a semicolon (the semicolon gets parent FUNC_CLASS_PROTO). The type of
// pc itself is left as the caller set it. Grounded on mark_cpp_constructor.
func CppConstructor(s *chunk.Store, pc chunk.ID, language lang.Mask) {
	tmp := s.PrevNcNnl(pc, chunk.All)
	if predicate.IsAnyType(s, tmp, chunk.Inv, chunk.Destructor) {
		s.At(tmp).Type = chunk.Destructor
		s.At(pc).ParentType = chunk.Destructor
	}

	parenOpen := skip.TemplateNext(s, s.NextNcNnl(pc, chunk.All))
	if parenOpen == invalid || s.At(parenOpen).Text != "(" {
		return
	}
	FcnDefParams(s, parenOpen, language)
	flagParens(s, parenOpen, chunk.InFcnCall, chunk.FparenOpen, chunk.FuncClassProto)

	tmp = parenOpen
	hitColon := false
	for tmp != invalid && (!predicate.IsType(s, tmp, chunk.BraceOpen) || s.At(tmp).Level != s.At(parenOpen).Level) &&
		!predicate.IsAnyType(s, tmp, chunk.Semicolon, chunk.Vsemicolon) {
		s.At(tmp).Flags = s.At(tmp).Flags.Set(chunk.InConstArgs)
		tmp = s.NextNcNnl(tmp, chunk.All)
		if tmp == invalid {
			break
		}
		if s.At(tmp).Text == ":" && s.At(tmp).Level == s.At(parenOpen).Level {
			s.At(tmp).Type = chunk.ConstrColon
			hitColon = true
		}
		if hitColon && (predicate.IsParenOpenLike(s, tmp) || predicate.IsBraceOpenLike(s, tmp)) && s.At(tmp).Level == s.At(parenOpen).Level {
			v := skip.TemplatePrev(s, s.PrevNcNnl(tmp, chunk.All))
			if predicate.IsAnyType(s, v, chunk.TypeTag, chunk.Word) {
				s.At(v).Type = chunk.FuncCtorVar
				flagParens(s, tmp, chunk.InFcnCall, chunk.FparenOpen, chunk.FuncCtorVar)
			}
		}
	}

	if predicate.IsType(s, tmp, chunk.BraceOpen) {
		setParenParent(s, parenOpen, chunk.FuncClassDef)
		setParenParent(s, tmp, chunk.FuncClassDef)
	} else if tmp != invalid {
		s.At(tmp).ParentType = chunk.FuncClassProto
	}

	tmp = s.PrevNcNnl(pc, chunk.All)
	if predicate.IsType(s, tmp, chunk.Destructor) {
		s.At(tmp).ParentType = s.At(pc).Type
		tmp = s.PrevNcNnl(tmp, chunk.All)
	}
	for predicate.IsType(s, tmp, chunk.Qualifier) {
		s.At(tmp).ParentType = s.At(pc).Type
		tmp = s.PrevNcNnl(tmp, chunk.All)
	}
}

func flagParens(s *chunk.Store, open chunk.ID, flags chunk.Flags, openType chunk.Type, parent chunk.Type) chunk.ID {
	if open == invalid {
		return invalid
	}
	close := s.SkipToMatch(open)
	s.At(open).Type = openType
	s.At(open).ParentType = parent
	for pc := s.Next(open); pc != invalid && pc != close; pc = s.Next(pc) {
		s.At(pc).Flags = s.At(pc).Flags.Set(flags)
	}
	if close != invalid {
		s.At(close).ParentType = parent
		return s.NextNcNnl(close, chunk.All)
	}
	return invalid
}

func setParenParent(s *chunk.Store, open chunk.ID, parent chunk.Type) {
	s.At(open).ParentType = parent
	if close := s.SkipToMatch(open); close != invalid {
		s.At(close).ParentType = parent
	}
}

// CppLambda flags every chunk in a "[...]{...}" lambda span with
// PCF_IN_LAMBDA. Grounded on mark_cpp_lambda.
func CppLambda(s *chunk.Store, squareOpen chunk.ID) {
	if !predicate.IsType(s, squareOpen, chunk.SquareOpen) || s.At(squareOpen).ParentType != chunk.CppLambda {
		return
	}
	braceClose := s.GetNextType(squareOpen, chunk.BraceClose, int(s.At(squareOpen).Level))
	if braceClose == invalid || s.At(braceClose).ParentType != chunk.CppLambda {
		return
	}
	for pc := squareOpen; pc != invalid && pc != braceClose; pc = s.NextNcNnl(pc, chunk.All) {
		s.At(pc).Flags = s.At(pc).Flags.Set(chunk.InLambda)
	}
}

// FunctionReturnType walks backward from start, marking the function's
// return-type span with parentType and converting WORD chunks in it to
// TYPE. Grounded on mark_function_return_type, without the reference's
// friend/template back-marking tail; the InClass flag that construct sets
// on class bodies is not consulted here (see DESIGN.md).
func FunctionReturnType(s *chunk.Store, start chunk.ID, parentType chunk.Type) {
	if start == invalid {
		return
	}
	pc := start
	first := pc
	for pc != invalid {
		if predicate.IsType(s, pc, chunk.AngleClose) {
			pc = skip.TemplatePrev(s, pc)
			if pc == invalid || predicate.IsType(s, pc, chunk.Template) {
				break
			}
		}
		ok := predicate.IsType(s, pc, chunk.TypeTag) || predicate.IsAnyType(s, pc, chunk.Operator, chunk.Word, chunk.Addr)
		if !ok || s.At(pc).Flags.Has(chunk.InPreproc) {
			break
		}
		if !isPtrOperator(s, pc) {
			first = pc
		}
		pc = s.PrevNcNnl(pc, chunk.All)
	}

	isReturnTuple := false
	if predicate.IsType(s, pc, chunk.ParenClose) && !s.At(pc).Flags.Has(chunk.InPreproc) {
		first = s.SkipToMatchRev(pc)
		isReturnTuple = true
	}
	pc = first
	for pc != invalid {
		if parentType != chunk.None {
			s.At(pc).ParentType = parentType
		}
		prev := s.PrevNcNnl(pc, chunk.All)
		if !isReturnTuple || !predicate.IsType(s, pc, chunk.Word) || prev == invalid {
			s.At(pc).Type = chunk.TypeTag
		}
		if pc == start {
			break
		}
		pc = s.NextNcNnl(pc, chunk.All)
		if predicate.IsType(s, pc, chunk.AngleOpen) {
			pc = s.GetNextType(pc, chunk.AngleClose, int(s.At(pc).Level))
			if pc == start {
				break
			}
			pc = s.NextNcNnl(pc, chunk.All)
		}
	}
}

// Function classifies a WORD/TYPE chunk immediately followed by an open
// paren as a function call, definition, or prototype: a brace after the
// parameter list makes it a definition, a semicolon a prototype when a
// return type (identifier, built-in type, sigil, qualifier or '>')
// precedes the name, anything else (a bare "name(...);" statement, or an
// operand) a call. Parameters are fixed up via FcnDefParams and the
// return type via FunctionReturnType.
//
// This is a structural reduction of the reference's mark_function, which
// additionally special-cases Objective-C message sends, D/Java/C# generic
// method syntax, operator overloads, and virtual/override specifiers —
// dropped here; see DESIGN.md.
func Function(s *chunk.Store, pc chunk.ID, language lang.Mask) {
	parenOpen := s.NextNcNnl(pc, chunk.All)
	if parenOpen == invalid || !predicate.IsParenOpenLike(s, parenOpen) {
		return
	}
	parenClose := s.SkipToMatch(parenOpen)
	if parenClose == invalid {
		return
	}

	after := s.NextNcNnl(parenClose, chunk.All)
	prev := s.PrevNcNnl(pc, chunk.All)

	isDef := predicate.IsBraceOpenLike(s, after)
	hasReturnType := predicate.IsIdentifier(s, prev) || predicate.IsIntrinsicType(s, prev) ||
		predicate.IsPointerOrReference(s, prev) || predicate.IsQualifier(s, prev) ||
		predicate.IsType(s, prev, chunk.AngleClose)
	isProto := hasReturnType && predicate.IsAnyType(s, after, chunk.Semicolon, chunk.Vsemicolon)
	isCall := !isDef && !isProto

	switch {
	case isCall:
		s.At(pc).Type = chunk.FuncCall
		flagParens(s, parenOpen, chunk.InFcnCall, chunk.FparenOpen, chunk.FuncCall)
		return
	case isDef:
		s.At(pc).Type = chunk.FuncDef
	default:
		s.At(pc).Type = chunk.FuncProto
	}

	FcnDefParams(s, parenOpen, language)
	flagParens(s, parenOpen, chunk.Flags(0), chunk.FparenOpen, s.At(pc).Type)
	if isDef {
		setParenParent(s, after, s.At(pc).Type)
	}
	if prev != invalid {
		FunctionReturnType(s, prev, s.At(pc).Type)
	}
}

// FunctionType determines whether a "(*name)(args)"-shaped chunk run
// centered on a closing paren is a function pointer, tagging the pointer
// declarator's name FUNC_VAR and both parameter lists' opens/closes.
// Grounded on mark_function_type (reduced to the pointer-to-function
// shape; the reference's separate function-reference and Java/C#
// delegate-type branches are not reproduced — see DESIGN.md).
func FunctionType(s *chunk.Store, pc chunk.ID) bool {
	if !predicate.IsParenCloseLike(s, pc) {
		return false
	}
	open := s.SkipToMatchRev(pc)
	if open == invalid {
		return false
	}
	first := s.NextNcNnl(open, chunk.All)
	if first == invalid || !isPtrOperator(s, first) {
		return false
	}
	name := s.NextNcNnl(first, chunk.All)
	if !predicate.IsIdentifier(s, name) {
		return false
	}
	s.At(name).Type = chunk.FuncVar
	s.At(open).Type = chunk.TparenOpen
	s.At(pc).Type = chunk.TparenClose
	s.At(open).ParentType = chunk.FuncType
	s.At(pc).ParentType = chunk.FuncType
	return true
}

// TemplateFunc decides whether "name<args>" is a function call/def or a
// type, based on what follows the closing angle bracket: '(' makes it a
// call (or, lacking PCF_IN_FCN_CALL context, a definition handled by
// Function), a bare WORD makes "name" a type. Grounded on
// mark_template_func.
func TemplateFunc(s *chunk.Store, pc, pcNext chunk.ID, language lang.Mask) {
	angleClose := s.GetNextType(pcNext, chunk.AngleClose, int(s.At(pc).Level))
	after := s.NextNcNnl(angleClose, chunk.All)
	if after == invalid {
		return
	}
	if s.At(after).Text == "(" {
		if s.At(angleClose).Flags.Has(chunk.InFcnCall) {
			s.At(pc).Type = chunk.FuncCall
			flagParens(s, after, chunk.InFcnCall, chunk.FparenOpen, chunk.FuncCall)
		} else {
			s.At(pc).Type = chunk.FuncCall
			Function(s, pc, language)
		}
	} else if predicate.IsType(s, after, chunk.Word) {
		s.At(pc).Type = chunk.TypeTag
		s.At(pc).Flags = s.At(pc).Flags.Set(chunk.VarType)
		s.At(after).Flags = s.At(after).Flags.Set(chunk.VarDef)
	}
}
