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

// Package lexer breaks a whole C-family source file into a flat sequence of
// chunk.Chunk values: a segmentation and coarse classification pass that
// runs ahead of the brace cleanup, mark and construct passes. It tags
// tokens by shape (whitespace, comments, literals, punctuation) and, for
// identifiers, by a per-language keyword lookup; anything it can't resolve
// on its own (is this Word a type name, does this '<' open a template
// argument list) is left for the classification pipeline to decide once the
// whole chunk sequence exists.
package lexer

import (
	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/lang"
)

// Lexer turns a whole source buffer into a flat token stream in one pass.
// Unlike the teacher's incremental, bufio.Scanner-driven design, this
// lexer is handed the complete contents of a file up front: the formatter
// reads an entire file before doing anything with it, and every downstream
// pass (brace cleanup, mark, construct) needs random access across the
// whole chunk sequence regardless, so there's no streaming boundary left
// for an incremental scanner to respect. See DESIGN.md for why scanner.go
// didn't carry over.
type Lexer struct {
	data     []byte
	pos      int
	at       position
	language lang.Mask
}

// New returns a Lexer ready to tokenize source under the given language,
// which matters only for resolving Word tokens against the per-language
// keyword table (see lookupKeyword).
func New(source []byte, language lang.Mask) *Lexer {
	return &Lexer{data: source, at: startPosition, language: language}
}

// Tokenize runs the lexer to completion and returns every token, including
// whitespace, newlines and comments: deciding what to skip over is the
// classification pipeline's job (predicate.IsCommentOrNewline and
// friends), not the lexer's.
func (lx *Lexer) Tokenize() []Token {
	var tokens []Token

	// inPreprocLine and ppDirectiveSeen track a preprocessor line while
	// walking across it: the '#' that opens one, and whether the directive
	// keyword right after it (#if, #define, ...) has already been
	// resolved, since that one word needs ppDirectiveTable instead of the
	// ordinary keyword table.
	inPreprocLine := false
	ppDirectiveSeen := false

	for lx.pos < len(lx.data) {
		rest := lx.data[lx.pos:]
		length, typ, ok := matchTokenAt(rest)
		if !ok {
			break
		}
		text := string(rest[:length])
		line, col := lx.at.line, lx.at.col

		switch typ {
		case chunk.Word:
			if inPreprocLine && !ppDirectiveSeen {
				typ = lookupPpDirective(text)
				ppDirectiveSeen = true
			} else {
				typ = lookupKeyword(text, lx.language)
			}
		case chunk.Pound:
			inPreprocLine = true
			ppDirectiveSeen = false
		case chunk.Newline:
			// A line continuation (NlCont) never reaches this case, so a
			// backslash-continued preprocessor line correctly stays open
			// across the physical newline it swallows.
			inPreprocLine = false
			ppDirectiveSeen = false
		}

		tokens = append(tokens, Token{Type: typ, Text: text, Line: line, Col: col})
		lx.pos += length
		lx.at = lx.at.advancedBy(text)
	}

	return tokens
}

// Assemble converts a token stream into a chunk.Store, stamping each
// chunk's origin position and marking every token from a line-initial '#'
// through its closing (non-continued) newline with chunk.InPreproc — the
// same flag the brace cleanup pass and the rest of the pipeline key their
// preprocessor handling off of.
func Assemble(tokens []Token) *chunk.Store {
	s := chunk.NewStore()
	inPreproc := false
	for _, t := range tokens {
		if t.Type == chunk.Pound {
			inPreproc = true
		}
		var flags chunk.Flags
		if inPreproc {
			flags |= chunk.InPreproc
		}
		if t.Type == chunk.Newline {
			inPreproc = false
		}
		s.Append(chunk.Chunk{
			Text:     t.Text,
			Type:     t.Type,
			OrigLine: t.Line,
			OrigCol:  t.Col,
			Flags:    flags,
		})
	}
	return s
}

// Lex tokenizes source under language and returns the resulting chunk
// sequence, ready for the brace cleanup and mark/construct passes.
func Lex(source []byte, language lang.Mask) *chunk.Store {
	return Assemble(New(source, language).Tokenize())
}
