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

import "github.com/uncrustify/uncrustify-sub003/chunk"

// Token is one lexed unit of source text, already tagged with the coarse
// chunk.Type a bare scan of the bytes (and, for words, a per-language
// keyword lookup) can determine on its own: punctuation, literal and
// comment shapes, whitespace, preprocessor directive keywords. Whatever the
// scan can't resolve on its own — is this Word actually a type name, does
// this '<' open a template argument list — is left as chunk.Word/chunk.Compare
// for the classification pipeline (predicate/mark/construct) to decide once
// the whole chunk sequence exists, the same division of labor spec.md §6
// draws between the lexer and the core.
type Token struct {
	Type Type
	Text string
	Line int
	Col  int
}

// Type is an alias so every rule table entry in this package reads as
// "produces this chunk type" without a separate, parallel enumeration the
// teacher's TokenType kept (and lexer.go's never fully wired up against the
// rest of the module) — see DESIGN.md for why this port collapses them.
type Type = chunk.Type
