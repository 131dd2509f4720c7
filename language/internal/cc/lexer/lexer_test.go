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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/lang"
)

func tokenize(t *testing.T, input string, language lang.Mask) []Token {
	t.Helper()
	return New([]byte(input), language).Tokenize()
}

func TestTokenizeEmptyInput(t *testing.T) {
	assert.Empty(t, tokenize(t, "", lang.CPP))
}

func TestTokenizePunctuationAndOperators(t *testing.T) {
	testCases := []struct {
		input string
		want  chunk.Type
	}{
		{"&&", chunk.Bool},
		{"||", chunk.Bool},
		{"==", chunk.Compare},
		{"!=", chunk.Compare},
		{"<=", chunk.Compare},
		{">=", chunk.Compare},
		{"<<", chunk.Arith},
		{">>", chunk.Compare},
		{"+=", chunk.Sarith},
		{"::", chunk.DcMember},
		{"->", chunk.Member},
		{"...", chunk.Ellipsis},
		{"{", chunk.BraceOpen},
		{"}", chunk.BraceClose},
		{"(", chunk.ParenOpen},
		{")", chunk.ParenClose},
		{"[", chunk.SquareOpen},
		{"]", chunk.SquareClose},
		{";", chunk.Semicolon},
		{",", chunk.Comma},
	}
	for _, tc := range testCases {
		toks := tokenize(t, tc.input, lang.CPP)
		if assert.Len(t, toks, 1, "input %q", tc.input) {
			assert.Equal(t, tc.want, toks[0].Type, "input %q", tc.input)
			assert.Equal(t, tc.input, toks[0].Text)
		}
	}
}

func TestTokenizeNewlineAndWhitespace(t *testing.T) {
	toks := tokenize(t, "\n\n", lang.CPP)
	if assert.Len(t, toks, 2) {
		assert.Equal(t, chunk.Newline, toks[0].Type)
		assert.Equal(t, chunk.Newline, toks[1].Type)
	}

	toks = tokenize(t, "\t\t abc", lang.CPP)
	if assert.Len(t, toks, 2) {
		assert.Equal(t, chunk.Whitespace, toks[0].Type)
		assert.Equal(t, "\t\t ", toks[0].Text)
		assert.Equal(t, chunk.Word, toks[1].Type)
	}
}

func TestTokenizeLineContinuationKeepsPreprocLineOpen(t *testing.T) {
	toks := tokenize(t, "#define X \\\n    1\n", lang.CPP)
	store := Assemble(toks)
	for id := store.Head(); id != chunk.Invalid; id = store.Next(id) {
		c := store.At(id)
		if c.Type == chunk.Newline && c.OrigLine == 1 {
			t.Fatalf("the first newline should be an NlCont, not a terminator")
		}
	}
	// The "1" on the continued line is still inside the #define body.
	var sawOne bool
	for id := store.Head(); id != chunk.Invalid; id = store.Next(id) {
		c := store.At(id)
		if c.Text == "1" {
			sawOne = true
			assert.True(t, c.Flags.Has(chunk.InPreproc))
		}
	}
	assert.True(t, sawOne)
}

func TestTokenizeComments(t *testing.T) {
	toks := tokenize(t, "// a line comment\n", lang.CPP)
	if assert.Len(t, toks, 2) {
		assert.Equal(t, chunk.CommentCpp, toks[0].Type)
		assert.Equal(t, "// a line comment", toks[0].Text)
	}

	toks = tokenize(t, "/* multi\nline */x", lang.CPP)
	if assert.Len(t, toks, 2) {
		assert.Equal(t, chunk.CommentMulti, toks[0].Type)
		assert.Equal(t, "/* multi\nline */", toks[0].Text)
		assert.Equal(t, chunk.Word, toks[1].Type)
	}
}

func TestTokenizeStringAndCharLiterals(t *testing.T) {
	toks := tokenize(t, `"a\"b" 'x'`, lang.CPP)
	if assert.Len(t, toks, 3) {
		assert.Equal(t, chunk.String, toks[0].Type)
		assert.Equal(t, `"a\"b"`, toks[0].Text)
		assert.Equal(t, chunk.Char, toks[2].Type)
		assert.Equal(t, `'x'`, toks[2].Text)
	}
}

func TestTokenizeNumbers(t *testing.T) {
	testCases := []struct {
		input string
		want  chunk.Type
	}{
		{"123", chunk.Number},
		{"0x1F", chunk.Number},
		{"0b101", chunk.Number},
		{"3.14", chunk.NumberFp},
		{".5", chunk.NumberFp},
		{"1e10", chunk.NumberFp},
		{"2.0f", chunk.NumberFp},
	}
	for _, tc := range testCases {
		toks := tokenize(t, tc.input, lang.CPP)
		if assert.Len(t, toks, 1, "input %q", tc.input) {
			assert.Equal(t, tc.want, toks[0].Type, "input %q", tc.input)
		}
	}
}

func TestTokenizeKeywordsAreLanguageGated(t *testing.T) {
	toks := tokenize(t, "synchronized", lang.Java)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, chunk.Synchronized, toks[0].Type)
	}

	// The same word isn't a keyword outside the language it belongs to.
	toks = tokenize(t, "synchronized", lang.CPP)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, chunk.Word, toks[0].Type)
	}
}

func TestTokenizeCommonKeywordsAcrossCFamily(t *testing.T) {
	for _, word := range []string{"if", "else", "for", "while", "return"} {
		toks := tokenize(t, word, lang.CPP)
		if assert.Len(t, toks, 1, "keyword %q", word) {
			assert.NotEqual(t, chunk.Word, toks[0].Type, "keyword %q should resolve", word)
		}
	}
}

func TestTokenizePreprocessorDirectives(t *testing.T) {
	testCases := []struct {
		input string
		want  chunk.Type
	}{
		{"#include <a.h>", chunk.PpInclude},
		{"#define FOO", chunk.PpDefine},
		{"#if FOO", chunk.PpIf},
		{"#ifdef FOO", chunk.PpIf},
		{"#else", chunk.PpElse},
		{"#endif", chunk.PpEndif},
		{"#pragma once", chunk.PpPragma},
		{"#undef FOO", chunk.PpUndef},
		{"#weird", chunk.PpOther},
	}
	for _, tc := range testCases {
		toks := tokenize(t, tc.input, lang.CPP)
		// toks[0] is '#', toks[1] is whitespace-or-directive-word depending
		// on whether a space separates them.
		var directive Token
		for _, tok := range toks {
			if tok.Type != chunk.Pound && tok.Type != chunk.Whitespace {
				directive = tok
				break
			}
		}
		assert.Equal(t, tc.want, directive.Type, "input %q", tc.input)
	}
}

func TestTokenizeUnrecognizedByteStillMakesProgress(t *testing.T) {
	toks := tokenize(t, "`x", lang.CPP)
	if assert.Len(t, toks, 2) {
		assert.Equal(t, chunk.Unknown, toks[0].Type)
		assert.Equal(t, "`", toks[0].Text)
		assert.Equal(t, chunk.Word, toks[1].Type)
	}
}

func TestTokenizeTracksOrigLineAndCol(t *testing.T) {
	toks := tokenize(t, "a\nbb", lang.CPP)
	// a, \n, bb
	if assert.Len(t, toks, 3) {
		assert.Equal(t, 1, toks[0].Line)
		assert.Equal(t, 1, toks[0].Col)
		assert.Equal(t, 2, toks[2].Line)
		assert.Equal(t, 1, toks[2].Col)
	}
}

func TestAssembleMarksPreprocFlagAcrossADirectiveLine(t *testing.T) {
	toks := tokenize(t, "x;\n#define Y 1\nz;\n", lang.CPP)
	store := Assemble(toks)

	var inPreproc, outOfPreproc int
	for id := store.Head(); id != chunk.Invalid; id = store.Next(id) {
		c := store.At(id)
		switch c.Text {
		case "Y", "1", "define", "#":
			if c.Flags.Has(chunk.InPreproc) {
				inPreproc++
			}
		case "x", "z":
			if !c.Flags.Has(chunk.InPreproc) {
				outOfPreproc++
			}
		}
	}
	assert.Equal(t, 4, inPreproc)
	assert.Equal(t, 2, outOfPreproc)
}

func TestLexBuildsAStoreDirectly(t *testing.T) {
	store := Lex([]byte("int x;"), lang.CPP)
	// "int", " ", "x", ";"
	assert.Equal(t, 4, store.Len())
	assert.Equal(t, "int", store.At(store.Head()).Text)
}
