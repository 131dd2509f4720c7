// Copyright 2026 EngFlow Inc. All rights reserved.
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
	"strings"
	"unicode/utf8"
)

// position tracks where the next byte of source sits. Line and column are
// 1-based to match OrigLine/OrigCol on chunk.Chunk directly, so a stamped
// chunk never needs its own translation step.
type position struct {
	line, col int
}

var startPosition = position{line: 1, col: 1}

// advancedBy returns the position right after text, assuming p currently
// points at its first byte. A run spanning one or more newlines resets the
// column to whatever trails the last newline; a run with none only moves
// the column forward.
func (p position) advancedBy(text string) position {
	if lastNL := strings.LastIndexByte(text, '\n'); lastNL >= 0 {
		p.line += strings.Count(text, "\n")
		p.col = 1 + utf8.RuneCountInString(text[lastNL+1:])
		return p
	}
	p.col += utf8.RuneCountInString(text)
	return p
}
