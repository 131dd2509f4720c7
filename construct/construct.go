// Package construct implements component G, the class/enum/struct/union
// parser: given the keyword chunk that opens one of those constructs, it
// locates the construct's extent, marks its body braces, base-class or
// enum-integral-type colon, template argument list, where-clause, and any
// trailing variable declarations, and splits identifiers between the
// construct's own type name and the variables declared with it.
//
// Grounded on EnumStructUnionParser.{h,cpp}. The reference keeps this as a
// stateful class reused across calls (fields reset by initialize()); here
// a fresh Parser is constructed per call, which is the idiomatic Go
// equivalent of "one parse, one object instance."
package construct

import (
	"strings"

	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/lang"
	"github.com/uncrustify/uncrustify-sub003/mark"
	"github.com/uncrustify/uncrustify-sub003/match"
	"github.com/uncrustify/uncrustify-sub003/predicate"
	"github.com/uncrustify/uncrustify-sub003/skip"
)

const invalid = chunk.Invalid

// Parser carries the state accumulated while parsing one class, enum,
// struct, or union construct. Grounded on EnumStructUnionParser's private
// fields and the chunk_map it keeps of recorded commas/question marks.
type Parser struct {
	s        *chunk.Store
	language lang.Mask

	start chunk.ID
	end   chunk.ID
	typ   chunk.ID

	bodyStart        chunk.ID
	bodyEnd          chunk.ID
	templateStart    chunk.ID
	templateEnd      chunk.ID
	inheritanceStart chunk.ID
	enumBaseStart    chunk.ID
	whereStart       chunk.ID
	whereEnd         chunk.ID

	topLevelCommas    []chunk.ID
	questionOperators []chunk.ID

	parseError bool
}

// isClassEnumStructUnion reports whether pc opens one of the four
// constructs this package handles.
func isClassEnumStructUnion(s *chunk.Store, pc chunk.ID) bool {
	return predicate.IsClassStructUnion(s, pc) || predicate.IsType(s, pc, chunk.Enum)
}

func isClassOrStruct(s *chunk.Store, pc chunk.ID) bool {
	return predicate.IsAnyType(s, pc, chunk.Class, chunk.Struct)
}

func isSemicolon(s *chunk.Store, pc chunk.ID) bool {
	return predicate.IsAnyType(s, pc, chunk.Semicolon, chunk.Vsemicolon)
}

// skipScopeResolutionAndNestedNameSpecifiers skips a leading chain of
// "name::name::..." down to its last segment. Grounded on the reference's
// static skip_scope_resolution_and_nested_name_specifiers helper, rebuilt
// here on top of match.QualifiedIdentifier rather than a dedicated walk,
// since the two already compute the same scope-chain bounds.
func skipScopeResolutionAndNestedNameSpecifiers(s *chunk.Store, pc chunk.ID) chunk.ID {
	if _, end := match.QualifiedIdentifier(s, pc); end != invalid {
		return end
	}
	return pc
}

// Parse is the package's entry point: pc must be a CT_CLASS/CT_STRUCT/
// CT_UNION/CT_ENUM chunk. Grounded on EnumStructUnionParser::parse.
func Parse(s *chunk.Store, pc chunk.ID, language lang.Mask) {
	p := &Parser{s: s, language: language}
	p.parse(pc)
}

func (p *Parser) parse(pc chunk.ID) {
	s := p.s
	language := p.language
	p.initialize(pc)

	if s.At(p.start).ParentType == chunk.CCast || !isClassEnumStructUnion(s, p.start) {
		return
	}

	prev := p.start
	next := s.NextNcNnl(prev, chunk.All)

	if predicate.IsType(s, next, chunk.Enum) {
		prev = next
		next = s.NextNcNnl(prev, chunk.All)
	} else if predicate.IsType(s, prev, chunk.Enum) {
		if pp := s.PrevNcNnl(prev, chunk.All); predicate.IsType(s, pp, chunk.Enum) {
			p.start = pp
		}
	}

	for between(s, next, p.start, p.end) {
		next = skip.Attribute(s, next)
		next = skip.Declspec(s, next)

		if predicate.IsType(s, next, chunk.Assign) {
			next = skip.Expression(s, next)
		}

		switch {
		case predicate.IsType(s, next, chunk.AngleOpen) && !p.templateDetected():
			next = p.parseAngles(next)
		case predicate.IsType(s, next, chunk.BraceOpen) && !p.bodyDetected():
			next = p.parseBraces(next, language)
		case predicate.IsColonToken(s, next):
			p.parseColon(next, language)
		case predicate.IsType(s, next, chunk.Comma):
			p.recordTopLevelComma(next)
		case predicate.IsType(s, next, chunk.DcMember):
			next = p.parseDoubleColon(next, language)
		case predicate.IsType(s, next, chunk.Qualifier) && language.Is(lang.Java) && strings.HasPrefix(s.At(next).Text, "implements"):
			p.markBaseClasses(next)
		case predicate.IsType(s, next, chunk.Question):
			p.recordQuestionOperator(next)
		case predicate.IsType(s, next, chunk.Where) && !p.whereClauseDetected():
			p.markWhereClause(next)
		}
		prev = next

		for {
			next = s.NextNcNnl(next, chunk.All)
			if next == invalid || s.At(next).Level <= s.At(p.start).Level {
				break
			}
		}
	}

	p.analyzeIdentifiers(language)
	p.markExtracorporealLvalues()

	if prev != invalid && isSemicolon(s, prev) && s.At(prev).Level == s.At(p.start).Level && !s.At(prev).Flags.Has(chunk.InFor) {
		s.At(prev).ParentType = s.At(p.start).Type
	}
}

// between reports whether pc lies strictly between lo and hi in sequence
// order (inclusive of neither bound, mirroring chunk_is_between's default
// exclusive form used throughout the reference's main parse loop).
func between(s *chunk.Store, pc, lo, hi chunk.ID) bool {
	if pc == invalid || lo == invalid || hi == invalid {
		return false
	}
	for cur := s.Next(lo); cur != invalid && cur != hi; cur = s.Next(cur) {
		if cur == pc {
			return true
		}
	}
	return false
}

// betweenInclusive is the inclusive-of-bounds form used by
// mark_enum_integral_type, try_post_identify_macro_calls and friends.
func betweenInclusive(s *chunk.Store, pc, lo, hi chunk.ID) bool {
	if pc == invalid || lo == invalid {
		return false
	}
	for cur := lo; cur != invalid; cur = s.Next(cur) {
		if cur == pc {
			return true
		}
		if cur == hi {
			break
		}
	}
	return false
}

func (p *Parser) initialize(pc chunk.ID) {
	p.parseError = false
	p.start = pc
	p.typ = invalid
	p.bodyStart, p.bodyEnd = invalid, invalid
	p.templateStart, p.templateEnd = invalid, invalid
	p.inheritanceStart, p.enumBaseStart = invalid, invalid
	p.whereStart, p.whereEnd = invalid, invalid
	end := p.tryFindEndChunk(pc)
	p.end = p.refineEndChunk(end)
}

// isPotentialEndChunk mirrors is_potential_end_chunk: stop scanning once a
// semicolon/closing brace at the starting level is reached, or once the
// walk has crossed a preprocessor/function-definition boundary, template
// nesting, or (inside a call/definition) a level-matched comma/assign.
func (p *Parser) isPotentialEndChunk(pc chunk.ID) bool {
	s := p.s
	if pc == invalid || p.parseError {
		return true
	}
	if (isSemicolon(s, pc) || predicate.IsType(s, pc, chunk.BraceClose)) && s.At(pc).Level == s.At(p.start).Level {
		return true
	}

	pcFuncDef := s.At(pc).Flags.Has(chunk.InFcnDef)
	pcPreproc := s.At(pc).Flags.Has(chunk.InPreproc)
	startFuncDef := s.At(p.start).Flags.Has(chunk.InFcnDef)
	startPreproc := s.At(p.start).Flags.Has(chunk.InPreproc)

	if (predicate.IsType(s, pc, chunk.ParenClose) && s.At(pc).Level < s.At(p.start).Level) ||
		startFuncDef != pcFuncDef || startPreproc != pcPreproc {
		return true
	}

	if cppTemplateNestLevel(s, p.start) > cppTemplateNestLevel(s, pc) {
		return true
	}

	pcFuncCall := s.At(pc).Flags.Has(chunk.InFcnCall)
	startFuncCall := s.At(p.start).Flags.Has(chunk.InFcnCall)

	if (pcFuncCall && startFuncCall && predicate.IsType(s, pc, chunk.Comma) && s.At(pc).Level == s.At(p.start).Level) ||
		(pcFuncDef && ((predicate.IsType(s, pc, chunk.FparenClose) && s.At(pc).Level < s.At(p.start).Level) ||
			(predicate.IsAnyType(s, pc, chunk.Assign, chunk.Comma) && s.At(pc).Level == s.At(p.start).Level))) {
		return true
	}
	return false
}

// cppTemplateNestLevel counts enclosing CT_ANGLE_OPEN spans, grounded on
// get_cpp_template_angle_nest_level (reused from skip's internal counter
// idiom rather than duplicating it, since both walk cached match edges).
func cppTemplateNestLevel(s *chunk.Store, pc chunk.ID) int {
	depth := 0
	for cur := pc; cur != invalid; cur = s.Prev(cur) {
		switch s.At(cur).Type {
		case chunk.AngleOpen:
			if m := s.Match(cur); m == invalid || skip.IsAfter(s, m, pc) {
				depth++
			}
		}
	}
	return depth
}

func (p *Parser) tryFindEndChunk(pc chunk.ID) chunk.ID {
	s := p.s
	for {
		if predicate.IsAnyType(s, pc, chunk.TypeTag, chunk.Word) {
			s.At(pc).Type = chunk.Word
			s.At(pc).ParentType = chunk.None
		}
		for {
			pc = s.NextNcNnl(pc, chunk.Preproc)
			if pc == invalid || s.At(pc).Level <= s.At(p.start).Level {
				break
			}
		}
		if p.isPotentialEndChunk(pc) {
			break
		}
	}
	return p.refineEndChunk(pc)
}

// refineEndChunk extends past a closing brace over any trailing inline
// variable declarations, grounded on refine_end_chunk.
func (p *Parser) refineEndChunk(pc chunk.ID) chunk.ID {
	s := p.s
	if !predicate.IsType(s, pc, chunk.BraceClose) {
		return pc
	}
	next := s.NextNcNnl(pc, chunk.All)
	for {
		if isSemicolon(s, next) {
			pc = next
			break
		}
		if predicate.IsType(s, next, chunk.Comma) {
			next = s.NextNcNnl(next, chunk.All)
		}
		start, ident, end := match.Variable(s, next, int(s.At(p.start).Level), p.language)
		if start == invalid || ident == invalid || end == invalid {
			break
		}
		pc = s.NextNcNnl(end, chunk.All)
		if predicate.IsType(s, pc, chunk.Assign) {
			pc = skip.Expression(s, pc)
		}
		next = pc
	}
	return pc
}

func (p *Parser) bodyDetected() bool        { return p.bodyStart != invalid && p.bodyEnd != invalid }
func (p *Parser) templateDetected() bool    { return p.templateStart != invalid && p.templateEnd != invalid }
func (p *Parser) enumBaseDetected() bool    { return p.enumBaseStart != invalid }
func (p *Parser) inheritanceDetected() bool { return p.inheritanceStart != invalid }
func (p *Parser) whereClauseDetected() bool { return p.whereStart != invalid }
func (p *Parser) typeIdentified() bool      { return p.typ != invalid }

func (p *Parser) firstTopLevelComma() chunk.ID {
	if len(p.topLevelCommas) == 0 {
		return invalid
	}
	return p.topLevelCommas[0]
}

func (p *Parser) isWithinConditional(pc chunk.ID) bool {
	s := p.s
	for _, q := range p.questionOperators {
		end := skip.ToExpressionEnd(s, q)
		start := skip.ToExpressionStart(s, q)
		if betweenInclusive(s, pc, start, end) {
			return true
		}
	}
	return false
}

// inheritanceEnd returns the chunk closing the inheritance list (the body's
// opening brace, or a forward scan for one if the body hasn't been found
// yet), grounded on get_inheritance_end. invalid if there is no inheritance
// list at all.
func (p *Parser) inheritanceEnd() chunk.ID {
	if p.inheritanceStart == invalid {
		return invalid
	}
	if p.bodyStart != invalid {
		return p.bodyStart
	}
	return p.s.GetNextType(p.inheritanceStart, chunk.BraceOpen, int(p.s.At(p.start).Level))
}

func (p *Parser) isWithinInheritanceList(pc chunk.ID) bool {
	s := p.s
	if pc != invalid && s.At(pc).Flags.Has(chunk.InClassBase) {
		return true
	}
	if end := p.inheritanceEnd(); end != invalid {
		return betweenInclusive(p.s, pc, p.inheritanceStart, end)
	}
	return false
}

func (p *Parser) isWithinWhereClause(pc chunk.ID) bool {
	s := p.s
	if pc != invalid && s.At(pc).Flags.Has(chunk.InWhereSpec) {
		return true
	}
	if p.whereStart != invalid && p.whereEnd != invalid {
		return betweenInclusive(p.s, pc, p.whereStart, p.whereEnd)
	}
	return false
}

func (p *Parser) recordQuestionOperator(q chunk.ID) {
	if predicate.IsType(p.s, q, chunk.Question) {
		p.questionOperators = append(p.questionOperators, q)
	}
}

func (p *Parser) recordTopLevelComma(comma chunk.ID) {
	s := p.s
	if comma != invalid && s.At(comma).Level == s.At(p.start).Level &&
		!p.isWithinConditional(comma) && !p.isWithinInheritanceList(comma) {
		p.topLevelCommas = append(p.topLevelCommas, comma)
	}
}

func (p *Parser) parseAngles(angleOpen chunk.ID) chunk.ID {
	s := p.s
	pc := angleOpen
	if p.isWithinInheritanceList(pc) {
		return pc
	}
	angleClose := s.SkipToMatch(angleOpen)
	if angleClose == invalid {
		p.parseError = true
		return pc
	}
	next := s.NextNcNnl(angleClose, chunk.All)
	if !predicate.IsType(s, next, chunk.DcMember) {
		p.templateStart = angleOpen
		prev := s.PrevNcNnl(angleOpen, chunk.All)
		if !predicate.IsType(s, prev, chunk.Word) {
			p.parseError = true
		} else {
			p.templateEnd = angleClose
			p.markTemplate(angleOpen)
		}
	}
	return angleClose
}

func (p *Parser) parseBraces(braceOpen chunk.ID, language lang.Mask) chunk.ID {
	s := p.s
	pc := braceOpen
	braceClose := s.SkipToMatch(braceOpen)
	if braceClose == invalid {
		return pc
	}

	firstComma := p.firstTopLevelComma()
	if firstComma != invalid && skip.IsAfter(s, pc, firstComma) {
		return pc
	}

	p.bodyEnd = braceClose
	p.bodyStart = braceOpen

	prev := s.PrevNcNnl(pc, chunk.All)

	isPotentialFunctionDefinition := false
	if (language.Is(lang.C) || language.Is(lang.CPP)) && predicate.IsType(s, prev, chunk.ParenClose) {
		parenClose := prev
		parenOpen := s.SkipToMatchRev(parenClose)
		if parenOpen != invalid {
			typ := s.NextNcNnl(p.start, chunk.All)
			identifier := s.PrevNcNnl(parenOpen, chunk.Preproc)
			isPotentialFunctionDefinition = predicate.IsAnyType(s, identifier, chunk.FuncDef, chunk.Word) && typ != identifier
		}
	}

	if language.Is(lang.D) || language.Is(lang.Pawn) || !predicate.IsType(s, prev, chunk.ParenClose) ||
		isPotentialFunctionDefinition ||
		betweenInclusive(s, prev, p.enumBaseStart, braceOpen) ||
		betweenInclusive(s, prev, p.inheritanceStart, braceOpen) {
		p.markBraces(braceOpen)
		pc = braceClose
	} else {
		p.parseError = true
	}
	return pc
}

func (p *Parser) parseColon(colon chunk.ID, language lang.Mask) {
	s := p.s
	switch {
	case predicate.IsType(s, p.start, chunk.Union):
		p.parseError = true
	case p.isWithinConditional(colon):
		s.At(colon).Type = chunk.CondColon
	case p.isWithinWhereClause(colon):
		p.markWhereColon(colon)
	case !p.inheritanceDetected():
		if isClassOrStruct(s, p.start) {
			p.inheritanceStart = colon
			p.markClassColon(colon)
		} else if predicate.IsType(s, p.start, chunk.Enum) {
			p.enumBaseStart = colon
			p.markEnumIntegralType(colon)
		}
	}
}

func (p *Parser) parseDoubleColon(doubleColon chunk.ID, language lang.Mask) chunk.ID {
	pc := doubleColon
	if language.Is(lang.CPP) && predicate.IsType(p.s, pc, chunk.DcMember) {
		p.markNestedNameSpecifiers(pc)
		pc = skipScopeResolutionAndNestedNameSpecifiers(p.s, pc)
	}
	return pc
}

func (p *Parser) markNestedNameSpecifiers(start chunk.ID) {
	s := p.s
	qstart, qend := match.QualifiedIdentifier(s, start)
	if qstart == invalid {
		return
	}
	for pc := qstart; betweenInclusive(s, pc, qstart, qend); pc = s.NextNcNnl(pc, chunk.All) {
		if !predicate.IsType(s, pc, chunk.Word) {
			continue
		}
		next := s.NextNcNnl(pc, chunk.All)
		if predicate.IsType(s, next, chunk.AngleOpen) {
			angleClose := s.SkipToMatch(next)
			if angleClose == invalid {
				p.parseError = true
				break
			}
			s.At(pc).Type = chunk.TypeTag
			p.markTemplate(next)
			pc = angleClose
		} else if p.isWithinInheritanceList(pc) && predicate.IsAnyType(s, next, chunk.Comma, chunk.BraceOpen) {
			s.At(pc).Type = chunk.TypeTag
		}
	}
}

// flagRange flags every chunk strictly between open and its match with
// flags, without retyping the bracket chunks themselves. Grounded on the
// flag_parens(..., CT_NONE, CT_NONE, false) idiom used by mark_braces.
func flagRange(s *chunk.Store, open chunk.ID, flags chunk.Flags) chunk.ID {
	if open == invalid {
		return invalid
	}
	close := s.SkipToMatch(open)
	for pc := s.Next(open); pc != invalid && pc != close; pc = s.Next(pc) {
		s.At(pc).Flags = s.At(pc).Flags.Set(flags)
	}
	return close
}

func (p *Parser) markBraces(braceOpen chunk.ID) {
	s := p.s
	var flags chunk.Flags
	switch {
	case predicate.IsType(s, p.start, chunk.Class):
		flags = chunk.InClass
	case predicate.IsType(s, p.start, chunk.Enum):
		flags = chunk.InEnum
	case predicate.IsType(s, p.start, chunk.Struct):
		flags = chunk.InStruct
	}

	braceClose := flagRange(s, braceOpen, flags)

	if predicate.IsClassStructUnion(s, p.start) {
		mark.StructUnionBody(s, braceOpen, p.language)
		if p.inheritanceStart != invalid {
			p.markBaseClasses(p.inheritanceStart)
		}
	}
	s.At(braceOpen).ParentType = s.At(p.start).Type
	if braceClose != invalid {
		s.At(braceClose).ParentType = s.At(p.start).Type
	}
}

func (p *Parser) markBaseClasses(start chunk.ID) {
	s := p.s
	flags := chunk.Var1stDef
	pc := start
	for pc != invalid {
		s.At(pc).Flags = s.At(pc).Flags.Set(chunk.InClassBase)
		s.At(pc).Flags = s.At(pc).Flags.Clear(chunk.VarType)

		next := s.NextNcNnl(pc, chunk.Preproc)

		switch {
		case predicate.IsType(s, next, chunk.DcMember):
			pc = skip.TemplatePrev(s, pc)
			if predicate.IsType(s, pc, chunk.Word) {
				s.At(pc).Type = chunk.TypeTag
			}
		case (predicate.IsType(s, next, chunk.BraceOpen) ||
			(predicate.IsType(s, next, chunk.Comma) && !p.isWithinWhereClause(next))) &&
			next != invalid && s.At(next).Level == s.At(p.start).Level:
			pc = skip.TemplatePrev(s, pc)
			if predicate.IsType(s, pc, chunk.Word) {
				s.At(pc).Flags = s.At(pc).Flags.Set(flags)
				flags = flags.Clear(chunk.Var1st)
			}
			if predicate.IsType(s, next, chunk.BraceOpen) {
				pc = next
				s.At(pc).Flags = s.At(pc).Flags.Set(chunk.InClassBase)
				return
			}
		}
		pc = next
	}
}

func (p *Parser) markClassColon(colon chunk.ID) {
	s := p.s
	s.At(colon).Type = chunk.ClassColon
	s.At(colon).ParentType = s.At(p.start).Type
}

func (p *Parser) markEnumIntegralType(colon chunk.ID) {
	s := p.s
	s.At(colon).Type = chunk.BitColon
	s.At(colon).ParentType = s.At(p.start).Type

	pc := s.NextNcNnl(colon, chunk.All)
	for between(s, pc, p.start, p.end) && pc != p.bodyStart && !predicate.IsType(s, pc, chunk.BraceOpen) && !isSemicolon(s, pc) {
		if !predicate.IsType(s, pc, chunk.DcMember) {
			s.At(pc).Flags = s.At(pc).Flags.Clear(chunk.VarType)
			s.At(pc).Type = chunk.TypeTag
			s.At(pc).ParentType = s.At(colon).Type
		}
		pc = s.NextNcNnl(pc, chunk.All)
	}
}

func (p *Parser) markTemplate(start chunk.ID) {
	s := p.s
	if start == invalid {
		return
	}
	s.At(start).ParentType = chunk.Template
	end := s.SkipToMatch(start)
	if end == invalid {
		return
	}
	s.At(end).ParentType = chunk.Template
	p.markTemplateArgs(start, end)
}

func (p *Parser) markTemplateArgs(start, end chunk.ID) {
	s := p.s
	if start == invalid || end == invalid {
		return
	}
	for next := start; ; {
		next = s.NextNcNnl(next, chunk.All)
		if next == end || next == invalid {
			break
		}
		s.At(next).Flags = s.At(next).Flags.Set(chunk.InTemplate)
	}
}

func (p *Parser) markType(pc chunk.ID) {
	s := p.s
	if pc == invalid {
		return
	}
	p.typ = pc
	for {
		s.At(pc).Type = chunk.TypeTag
		s.At(pc).ParentType = s.At(p.start).Type
		pc = s.NextNcNnl(pc, chunk.Preproc)
		if !predicate.IsPointerOrReference(s, pc) {
			break
		}
	}
}

func (p *Parser) markVariable(variable chunk.ID, flags chunk.Flags) {
	s := p.s
	if variable == invalid {
		return
	}
	s.At(variable).Flags = s.At(variable).Flags.Set(flags)
	s.At(variable).Type = chunk.Word
	p.markPointerTypes(variable)
}

func (p *Parser) markPointerTypes(pc chunk.ID) {
	s := p.s
	if !predicate.IsType(s, pc, chunk.Word) {
		return
	}
	for {
		pc = s.PrevNcNnl(pc, chunk.All)
		if pc == invalid {
			return
		}
		if isPtrOperator(s, pc) {
			s.At(pc).ParentType = s.At(p.start).Type
			s.At(pc).Type = chunk.PtrType
		}
		if !(isPtrOperator(s, pc) || predicate.IsQualifier(s, pc)) {
			return
		}
	}
}

func isPtrOperator(s *chunk.Store, id chunk.ID) bool {
	return predicate.IsAnyType(s, id, chunk.Star, chunk.Caret, chunk.PtrType)
}

// markWhereClause marks a C# "where T : constraint" clause, grounded on
// mark_where_clause/mark_where_chunk. The reference stores where_start and
// where_end in the same map slot, so set_where_end's write silently
// clobbers where_start for any later is_within_where_clause query; this
// port keeps them as two distinct fields instead of replicating that, so
// a second where-clause on the same construct is still recognized.
func (p *Parser) markWhereClause(where chunk.ID) {
	s := p.s
	p.whereStart = where
	end := p.bodyStart
	if end == invalid {
		end = s.GetNextType(where, chunk.BraceOpen, int(s.At(p.start).Level))
	}
	p.whereEnd = end

	var flags chunk.Flags
	for pc := where; pc != end && pc != invalid; pc = s.NextNcNnl(pc, chunk.All) {
		flags = p.markWhereChunk(pc, flags)
	}
}

// markWhereChunk retypes one chunk of a where-clause, grounded on
// mark_where_chunk.
func (p *Parser) markWhereChunk(pc chunk.ID, flags chunk.Flags) chunk.Flags {
	s := p.s
	switch {
	case predicate.IsType(s, pc, chunk.Where):
		s.At(pc).Type = chunk.WhereSpec
		s.At(pc).ParentType = s.At(p.start).Type
		flags = flags.Set(chunk.InWhereSpec)
	case flags.Has(chunk.InWhereSpec):
		if s.At(pc).Text == ":" {
			s.At(pc).Type = chunk.WhereColon
		} else if predicate.IsAnyType(s, pc, chunk.Struct, chunk.Class) {
			s.At(pc).Type = chunk.Word
		}
	}
	if flags.Has(chunk.InWhereSpec) {
		s.At(pc).Flags = s.At(pc).Flags.Set(chunk.InWhereSpec)
	}
	return flags
}

func (p *Parser) markWhereColon(colon chunk.ID) {
	s := p.s
	s.At(colon).Type = chunk.WhereColon
	s.At(colon).ParentType = s.At(p.start).Type
}

// analyzeIdentifiers identifies the construct's type name (if not
// anonymous) and any variables declared along with it, grounded on
// analyze_identifiers.
func (p *Parser) analyzeIdentifiers(language lang.Mask) {
	s := p.s
	flags := chunk.Var1stDef
	pc := p.bodyEnd
	if pc == invalid {
		pc = p.start
	}

	if p.tryPreIdentifyType(language) {
		if p.bodyEnd != invalid {
			pc = p.bodyEnd
		} else if p.templateEnd != invalid {
			pc = p.templateEnd
		}
	}

	if pc != invalid && s.NextNcNnl(pc, chunk.All) == p.end {
		pc = s.NextNcNnl(p.end, chunk.All)
	}

	if p.typeIdentified() || isClassEnumStructUnion(s, pc) || pc == p.end {
		pc = s.NextNcNnl(pc, chunk.All)
	}

	if p.bodyEnd != invalid {
		flags = flags.Set(chunk.VarInline)
	} else if !p.typeIdentified() {
		for {
			prev := pc
			tmp := skip.AttributeNext(s, pc)
			tmp = skip.DeclspecNext(s, tmp)
			pc = tmp
			if tmp == prev {
				break
			}
		}
	}

	for between(s, pc, p.start, p.end) {
		start, identifier, end := match.Variable(s, pc, int(s.At(p.start).Level), language)
		if start != invalid && identifier != invalid && end != invalid {
			p.markVariable(identifier, flags)
			flags = flags.Clear(chunk.Var1st)
		}
		if end != invalid {
			pc = end
		}
		pc = s.NextNcNnl(pc, chunk.All)

		if predicate.IsType(s, pc, chunk.Assign) {
			pc = skip.Expression(s, pc)
		}

		if isSemicolon(s, pc) ||
			(predicate.IsType(s, pc, chunk.Comma) &&
				!s.At(pc).Flags.Any(chunk.InFcnDef|chunk.InFcnCall|chunk.InTemplate) &&
				!between(s, pc, p.inheritanceStart, p.bodyStart)) {
			pc = s.NextNcNnl(pc, chunk.All)
		}
	}

	p.tryPostIdentifyType()
	p.tryPostIdentifyMacroCalls(language)

	if isClassOrStruct(s, p.start) && (!predicate.IsType(s, p.start, chunk.Struct) || !language.Is(lang.C)) {
		p.markConstructors(language)
	}

	if p.typeIdentified() {
		if !flags.Has(chunk.Var1st) {
			s.At(p.typ).Flags = s.At(p.typ).Flags.Set(chunk.VarType)
		} else if !flags.Has(chunk.VarInline) {
			flagSeries(s, p.start, p.typ, chunk.Incomplete)
		}
	}
}

func flagSeries(s *chunk.Store, from, to chunk.ID, flags chunk.Flags) {
	for pc := from; pc != invalid; pc = s.Next(pc) {
		s.At(pc).Flags = s.At(pc).Flags.Set(flags)
		if pc == to {
			break
		}
	}
}

func (p *Parser) markExtracorporealLvalues() {
	s := p.s
	next := p.start
	var prev chunk.ID = invalid

	if s.At(next).ParentType == chunk.Template {
		for {
			pv := s.PrevNcNnl(next, chunk.All)
			if pv == invalid || (!s.At(pv).Flags.Has(chunk.InTemplate) && !predicate.IsType(s, pv, chunk.Template)) {
				break
			}
			next = pv
		}
	}

	for next != p.end && next != invalid {
		if !between(s, next, p.bodyStart, p.bodyEnd) && s.At(next).Flags.Has(chunk.Lvalue) {
			s.At(next).Flags = s.At(next).Flags.Clear(chunk.Lvalue)
		} else if predicate.IsAnyType(s, next, chunk.Assign, chunk.BraceOpen) &&
			predicate.IsType(s, prev, chunk.Word) &&
			prev != invalid && s.At(prev).Flags.Any(chunk.VarDef|chunk.Var1st|chunk.VarInline) {
			s.At(prev).Flags = s.At(prev).Flags.Set(chunk.Lvalue)
		}
		prev = next
		next = s.NextNcNnl(next, chunk.All)
	}
}

// markConstructors scans the construct's own body for members matching
// its type name and marks them as constructors/destructors, grounded on
// mark_constructors. Delegates member-initializer-list and destructor
// handling to mark.CppConstructor rather than duplicating it.
func (p *Parser) markConstructors(language lang.Mask) {
	s := p.s
	if !(p.bodyDetected() && p.typeIdentified() && isClassOrStruct(s, p.start)) {
		return
	}
	name := s.At(p.typ).Text
	level := s.At(p.typ).BraceLevel + 1

	var next chunk.ID = invalid
	for prev := p.bodyStart; prev != invalid && next != p.bodyEnd; prev = next {
		s.At(prev).Flags = s.At(prev).Flags.Set(chunk.InClass)
		next = skip.TemplateNext(s, s.NextNcNnl(prev, chunk.Preproc))

		if s.At(prev).Text == name && s.At(prev).Level == level && predicate.IsParenOpenLike(s, next) {
			s.At(prev).Type = chunk.FuncClassDef
			mark.CppConstructor(s, prev, language)
		}
	}
	if next != invalid {
		s.At(next).Flags = s.At(next).Flags.Set(chunk.InClass)
	}
}

// tryPreIdentifyType attempts to locate the construct's type name before
// any variable identifiers are marked, grounded on try_pre_identify_type.
// The reference's final heuristic fallback (scanning for a WORD chunk
// immediately followed by a pointer/reference outside any of the
// recognized anchors) is reduced here to the single/double-word cases;
// the deeper "common pattern" scan over embedded brackets and parens is
// left to try_post_identify_type's second pass instead of being
// duplicated here.
func (p *Parser) tryPreIdentifyType(language lang.Mask) bool {
	s := p.s
	pc := p.bodyStart

	switch {
	case language.Is(lang.Pawn) && predicate.IsType(s, p.start, chunk.Enum):
		// Pawn enum body parens are handled by parseBraces via mark.StructUnionBody.
	case p.templateDetected():
		pc = p.templateStart
	case p.enumBaseDetected():
		pc = p.enumBaseStart
	case p.inheritanceDetected():
		pc = p.inheritanceStart
		if predicate.IsType(s, p.start, chunk.Union) {
			p.parseError = true
			return false
		}
	}

	if pc == invalid {
		next := s.NextNcNnl(p.start, chunk.All)
		next = skipScopeResolutionAndNestedNameSpecifiers(s, next)
		nextNext := s.NextNcNnl(next, chunk.All)
		nextNext = skipScopeResolutionAndNestedNameSpecifiers(s, nextNext)

		switch {
		case nextNext == p.end:
			pc = nextNext
		case next != invalid && predicate.IsType(s, next, chunk.Word) && predicate.IsType(s, nextNext, chunk.Word) &&
			s.PrevNcNnl(p.end, chunk.All) == nextNext:
			if predicate.IsMacroReference(s, next) || s.At(p.start).ParentType == chunk.Template {
				pc = p.end
			} else {
				pc = nextNext
			}
		default:
			return false
		}
	}

	// Whatever anchored pc above — the template/enum-base/inheritance start,
	// or the fallback word search — the type name sits one significant
	// chunk before it.
	if pc == invalid {
		return false
	}
	pc = s.PrevNcNnl(pc, chunk.Preproc)
	if predicate.IsType(s, pc, chunk.Qualifier) && strings.HasPrefix(s.At(pc).Text, "final") {
		pc = s.PrevNcNnl(pc, chunk.Preproc)
	}
	if predicate.IsType(s, pc, chunk.Word) {
		p.markType(pc)
		return true
	}
	return false
}

func (p *Parser) tryPostIdentifyType() {
	s := p.s
	if p.typeIdentified() || p.bodyEnd != invalid {
		return
	}
	var typ chunk.ID = invalid
	pc := p.start
	for {
		pc = skipScopeResolutionAndNestedNameSpecifiers(s, pc)
		if s.At(pc).Flags.Any(chunk.VarDef | chunk.Var1st | chunk.VarInline) {
			break
		} else if predicate.IsAnyType(s, pc, chunk.Word, chunk.AngleClose) {
			typ = skip.TemplatePrev(s, pc)
		}
		pc = s.NextNcNnl(pc, chunk.All)
		if !between(s, pc, p.start, p.end) {
			break
		}
	}
	if typ != invalid {
		p.markType(typ)
	}
}

func (p *Parser) tryPostIdentifyMacroCalls(language lang.Mask) {
	s := p.s
	if !language.Is(lang.CPP) || !p.typeIdentified() {
		return
	}
	var pc chunk.ID = p.start
	var prev chunk.ID = invalid
	for {
		if !between(s, prev, p.inheritanceStart, p.bodyStart) &&
			predicate.IsAnyType(s, prev, chunk.Word, chunk.FuncDef) &&
			prev != invalid && !s.At(prev).Flags.Any(chunk.VarDef|chunk.Var1st|chunk.VarInline) &&
			s.At(prev).Level == s.At(p.start).Level {
			if predicate.IsParenOpenLike(s, pc) {
				parenOpen := pc
				parenClose := s.SkipToMatch(parenOpen)
				if parenClose != invalid {
					s.At(parenOpen).Type = chunk.FparenOpen
					s.At(parenOpen).ParentType = chunk.MacroFunc
					s.At(parenClose).Type = chunk.FparenClose
					s.At(parenClose).ParentType = chunk.MacroFunc
					s.At(prev).Type = chunk.MacroFunc
				}
			}
		}
		prev = pc
		pc = s.NextNcNnl(prev, chunk.All)
		if !between(s, pc, p.start, p.end) {
			break
		}
	}
}
