// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"regexp"

	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/lang"
)

type (
	// matcher abstracts over regexp.Regexp the same way the teacher's lexer
	// did, so a fixed-string rule doesn't pay for a regexp engine it
	// doesn't need.
	matcher interface {
		// FindIndex returns the two-element [start, end) span of the
		// earliest match in content, or nil if there is none.
		FindIndex(content []byte) []int
	}

	fixedStringMatcher string

	// matchingRule is one entry of the lexer's decision table: a pattern
	// and the chunk type a bare match of it produces.
	matchingRule struct {
		matchedType chunk.Type
		matchingImpl matcher
	}
)

func (fs fixedStringMatcher) FindIndex(content []byte) []int {
	s := string(fs)
	if len(content) < len(s) || string(content[:len(s)]) != s {
		return nil
	}
	return []int{0, len(s)}
}

// match reports the length of matchedType's match anchored at content[0],
// or false if matchingImpl doesn't match there at all. Every rule here is
// checked this way rather than searched for anywhere ahead in content: this
// is a whole-buffer lexer walking forward one token at a time, so the only
// question at each step is "does this rule match right here", not "where is
// this rule's next occurrence" — the forward-search-and-compare-begin-index
// design the teacher's matchingResult.Less used doesn't apply once every
// match is already pinned to offset 0. See DESIGN.md.
func (r matchingRule) match(content []byte) (length int, ok bool) {
	loc := r.matchingImpl.FindIndex(content)
	if loc == nil || loc[0] != 0 {
		return 0, false
	}
	return loc[1], true
}

// matchingRules is the decision table driving the lexer: every pattern this
// port recognizes apart from end-of-buffer and the single-byte fallback
// matchTokenAt uses when nothing here applies. Rules are tried in order and
// the longest match anchored at the cursor wins, with the earlier rule
// breaking ties — the same "longest match, then declaration order decides"
// rule the teacher's matchingResult.Less expressed as a comparator instead
// of an iteration order.
var matchingRules = []matchingRule{
	{chunk.Newline, fixedStringMatcher("\n")},
	{chunk.Whitespace, regexp.MustCompile(`^[\t\v\f\r ]+`)},
	{chunk.NlCont, regexp.MustCompile(`^\\[\t\v\f\r ]*\n`)},

	{chunk.CommentCpp, regexp.MustCompile(`^//[^\n]*`)},
	{chunk.CommentMulti, regexp.MustCompile(`(?s)^/\*.*?(\*/|\z)`)},

	{chunk.Char, regexp.MustCompile(`^'(?:[^'\\\n]|\\.)*'`)},
	{chunk.String, regexp.MustCompile(`^"(?:[^"\\\n]|\\.)*"`)},

	{chunk.NumberFp, regexp.MustCompile(`(?i)^(?:[0-9]+\.[0-9]*(?:e[+-]?[0-9]+)?|\.[0-9]+(?:e[+-]?[0-9]+)?|[0-9]+e[+-]?[0-9]+)[fl]?`)},
	{chunk.Number, regexp.MustCompile(`(?i)^(?:0x[0-9a-f]+|0b[01]+|[0-9][0-9a-zA-Z_]*)`)},

	{chunk.Word, regexp.MustCompile(`(?i)^[a-z_$][a-z0-9_$]*`)},

	{chunk.Ellipsis, fixedStringMatcher("...")},
	{chunk.Member, fixedStringMatcher("->*")},
	{chunk.Member, fixedStringMatcher("->")},
	{chunk.DcMember, fixedStringMatcher("::")},
	{chunk.Nullcond, fixedStringMatcher("??")},
	{chunk.Nullcond, fixedStringMatcher("?.")},

	{chunk.Sarith, fixedStringMatcher("<<=")},
	{chunk.Sarith, fixedStringMatcher(">>=")},
	{chunk.Arith, fixedStringMatcher("<<")},
	{chunk.Compare, fixedStringMatcher(">>")},
	{chunk.Compare, fixedStringMatcher("<=")},
	{chunk.Compare, fixedStringMatcher(">=")},
	{chunk.Compare, fixedStringMatcher("==")},
	{chunk.Compare, fixedStringMatcher("!=")},
	{chunk.Bool, fixedStringMatcher("&&")},
	{chunk.Bool, fixedStringMatcher("||")},
	{chunk.IncdecBefore, fixedStringMatcher("++")},
	{chunk.IncdecBefore, fixedStringMatcher("--")},
	{chunk.Sarith, fixedStringMatcher("+=")},
	{chunk.Sarith, fixedStringMatcher("-=")},
	{chunk.Sarith, fixedStringMatcher("*=")},
	{chunk.Sarith, fixedStringMatcher("/=")},
	{chunk.Sarith, fixedStringMatcher("%=")},
	{chunk.Sarith, fixedStringMatcher("&=")},
	{chunk.Sarith, fixedStringMatcher("|=")},
	{chunk.Sarith, fixedStringMatcher("^=")},
	{chunk.Assign, fixedStringMatcher("=")},

	{chunk.Compare, fixedStringMatcher("<")},
	{chunk.Compare, fixedStringMatcher(">")},
	{chunk.Plus, fixedStringMatcher("+")},
	{chunk.Minus, fixedStringMatcher("-")},
	{chunk.Star, fixedStringMatcher("*")},
	{chunk.Arith, fixedStringMatcher("/")},
	{chunk.Arith, fixedStringMatcher("%")},
	{chunk.Amp, fixedStringMatcher("&")},
	{chunk.Arith, fixedStringMatcher("|")},
	{chunk.Caret, fixedStringMatcher("^")},
	{chunk.Inv, fixedStringMatcher("~")},
	{chunk.Not, fixedStringMatcher("!")},
	{chunk.Question, fixedStringMatcher("?")},

	{chunk.ParenOpen, fixedStringMatcher("(")},
	{chunk.ParenClose, fixedStringMatcher(")")},
	{chunk.BraceOpen, fixedStringMatcher("{")},
	{chunk.BraceClose, fixedStringMatcher("}")},
	{chunk.SquareOpen, fixedStringMatcher("[")},
	{chunk.SquareClose, fixedStringMatcher("]")},

	{chunk.Semicolon, fixedStringMatcher(";")},
	{chunk.Colon, fixedStringMatcher(":")},
	{chunk.Comma, fixedStringMatcher(",")},
	{chunk.Dot, fixedStringMatcher(".")},
	{chunk.Pound, fixedStringMatcher("#")},
	{chunk.OcAt, fixedStringMatcher("@")},
}

// matchTokenAt returns the longest matchingRules match anchored at the
// start of content, with ties broken by earlier position in the table. It
// reports ok=false only at end of input; an unrecognized byte still
// produces a one-byte chunk.Unknown token so the lexer always makes
// progress, grounded on tokenizer.cpp treating a byte no rule understands
// as CT_UNKNOWN rather than aborting the whole file over it.
func matchTokenAt(content []byte) (length int, typ chunk.Type, ok bool) {
	if len(content) == 0 {
		return 0, chunk.Eof, false
	}
	best := -1
	for _, r := range matchingRules {
		if n, matched := r.match(content); matched && n > best {
			best, typ = n, r.matchedType
		}
	}
	if best < 0 {
		return 1, chunk.Unknown, true
	}
	return best, typ, true
}

// keywordEntry is one row of the language-masked keyword table, grounded on
// keywords.h's find_keyword_type: a word resolves to a specific chunk.Type
// only under languages whose mask it was registered for, and stays a plain
// chunk.Word everywhere else (keywords.h's CT_WORD fallback for a lookup
// miss).
type keywordEntry struct {
	typ  chunk.Type
	mask lang.Mask
}

var keywordTable = map[string]keywordEntry{
	"if":       {chunk.If, lang.CFamily},
	"else":     {chunk.Else, lang.CFamily},
	"for":      {chunk.For, lang.CFamily},
	"while":    {chunk.While, lang.CFamily},
	"do":       {chunk.Do, lang.CFamily},
	"switch":   {chunk.Switch, lang.CFamily},
	"case":     {chunk.Case, lang.CFamily},
	"default":  {chunk.Default, lang.CFamily},
	"break":    {chunk.Break, lang.CFamily},
	"continue": {chunk.Continue, lang.CFamily},
	"return":   {chunk.Return, lang.CFamily},
	"goto":     {chunk.Goto, lang.CFamily},

	"sizeof":   {chunk.Sizeof, lang.C | lang.CPP | lang.D | lang.CS},
	"typedef":  {chunk.Typedef, lang.C | lang.CPP | lang.D},
	"struct":   {chunk.Struct, lang.C | lang.CPP | lang.CS},
	"union":    {chunk.Union, lang.C | lang.CPP},
	"enum":     {chunk.Enum, lang.CFamily},
	"class":    {chunk.Class, lang.CPP | lang.CS | lang.Java | lang.Vala | lang.Ecma},
	"namespace": {chunk.Namespace, lang.CPP | lang.CS},
	"template": {chunk.Template, lang.CPP},
	"typename": {chunk.Typename, lang.CPP},
	"decltype": {chunk.Decltype, lang.CPP},
	"try":      {chunk.Try, lang.CPP | lang.CS | lang.Java | lang.Vala | lang.Ecma},
	"catch":    {chunk.Catch, lang.CPP | lang.CS | lang.Java | lang.Vala | lang.Ecma},
	"finally":  {chunk.Finally, lang.CS | lang.Java | lang.Ecma},
	"throw":    {chunk.Throw, lang.CPP | lang.CS | lang.Java | lang.Vala},
	"new":      {chunk.New, lang.CPP | lang.CS | lang.Java | lang.Vala | lang.Ecma},
	"delete":   {chunk.Delete, lang.CPP | lang.CS},
	"operator": {chunk.Operator, lang.CPP | lang.CS},
	"friend":   {chunk.Friend, lang.CPP},
	"export":   {chunk.Export, lang.CPP},
	"using":    {chunk.Using, lang.CPP | lang.CS},
	"volatile": {chunk.Volatile, lang.C | lang.CPP | lang.CS | lang.Java},
	"synchronized": {chunk.Synchronized, lang.Java},
	"lock":     {chunk.Lock, lang.CS},
	"noexcept": {chunk.Noexcept, lang.CPP},
	"private":  {chunk.Private, lang.CPP | lang.CS | lang.Java | lang.Vala},
	"import":   {chunk.Import, lang.Java | lang.D | lang.Ecma},
	"package":  {chunk.Package, lang.Java},
	"this":     {chunk.This, lang.CPP | lang.CS | lang.Java | lang.Vala | lang.Ecma},
	"base":     {chunk.Base, lang.CS},
	"super":    {chunk.Super, lang.Java},
	"as":       {chunk.As, lang.CS | lang.Vala},
	"in":       {chunk.In, lang.CS | lang.D},
	"assert":   {chunk.Assert, lang.Java},
	"stock":    {chunk.Stock, lang.Pawn},
	"forward":  {chunk.Forward, lang.Pawn},
	"native":   {chunk.Native, lang.Pawn},
	"state":    {chunk.State, lang.Pawn},
	"tagof":    {chunk.Tagof, lang.Pawn},
	"debug":    {chunk.Debug, lang.D},
	"debugger": {chunk.Debugger, lang.D},
	"invariant": {chunk.Invariant, lang.D},
	"unittest": {chunk.Unittest, lang.D},
	"unsafe":   {chunk.Unsafe, lang.D | lang.CS},
	"lazy":     {chunk.Lazy, lang.D},
	"with":     {chunk.DWith, lang.D},
	"module":   {chunk.DModule, lang.D},
	"delegate": {chunk.Delegate, lang.CS | lang.D},
	"where":    {chunk.Where, lang.CS},
	"when":     {chunk.When, lang.CS},
	"get":      {chunk.Getset, lang.CS},
	"set":      {chunk.Getset, lang.CS},
}

// lookupKeyword resolves a completed Word token's text to its keyword type
// under the given language, leaving it chunk.Word when the word isn't a
// keyword at all, or isn't one under this specific language.
func lookupKeyword(text string, language lang.Mask) chunk.Type {
	entry, ok := keywordTable[text]
	if !ok || entry.mask&language == 0 {
		return chunk.Word
	}
	return entry.typ
}

// ppDirectiveTable resolves the word immediately following a line-initial
// '#' to its preprocessor directive type. Anything not listed here becomes
// chunk.PpOther, the catch-all keywords.h documents for directives this
// port doesn't single out (e.g. #line, #error).
var ppDirectiveTable = map[string]chunk.Type{
	"define":    chunk.PpDefine,
	"undef":     chunk.PpUndef,
	"include":   chunk.PpInclude,
	"if":        chunk.PpIf,
	"ifdef":     chunk.PpIf,
	"ifndef":    chunk.PpIf,
	"elif":      chunk.PpIf,
	"else":      chunk.PpElse,
	"endif":     chunk.PpEndif,
	"pragma":    chunk.PpPragma,
	"region":    chunk.PpRegion,
	"endregion": chunk.PpEndregion,
}

func lookupPpDirective(text string) chunk.Type {
	if typ, ok := ppDirectiveTable[text]; ok {
		return typ
	}
	return chunk.PpOther
}
