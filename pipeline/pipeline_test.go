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

package pipeline

import (
	"testing"

	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/diag"
	"github.com/uncrustify/uncrustify-sub003/lang"
)

// TestRunPassClassifiesATypedefStatement builds "typedef int MyInt;" and
// checks runPass dispatches to mark.Typedef at the "typedef" chunk.
func TestRunPassClassifiesATypedefStatement(t *testing.T) {
	s := chunk.NewStore()
	td := s.Append(chunk.Chunk{Type: chunk.Typedef, Text: "typedef"})
	intTok := s.Append(chunk.Chunk{Type: chunk.Word, Text: "int"})
	name := s.Append(chunk.Chunk{Type: chunk.Word, Text: "MyInt"})
	semi := s.Append(chunk.Chunk{Type: chunk.Semicolon, Text: ";"})
	_ = td

	runPass(s, lang.CPP)

	if s.At(intTok).Type != chunk.TypeTag {
		t.Fatalf("int chunk = %v, want TypeTag", s.At(intTok).Type)
	}
	if s.At(name).Type != chunk.TypeTag {
		t.Fatalf("MyInt chunk = %v, want TypeTag", s.At(name).Type)
	}
	if s.At(semi).ParentType != chunk.Typedef {
		t.Fatalf("semicolon.ParentType = %v, want Typedef", s.At(semi).ParentType)
	}
}

// TestRunPassClassifiesAFunctionDefinition builds "foo ( ) { }" and checks
// that a Word chunk at statement start, followed by a paren-open-like
// chunk, dispatches to mark.Function rather than mark.VariableDefinition.
func TestRunPassClassifiesAFunctionDefinition(t *testing.T) {
	s := chunk.NewStore()
	name := s.Append(chunk.Chunk{Type: chunk.Word, Text: "foo"})
	open := s.Append(chunk.Chunk{Type: chunk.ParenOpen})
	close := s.Append(chunk.Chunk{Type: chunk.ParenClose})
	s.SetMatch(open, close)
	braceOpen := s.Append(chunk.Chunk{Type: chunk.BraceOpen})
	braceClose := s.Append(chunk.Chunk{Type: chunk.BraceClose})
	s.SetMatch(braceOpen, braceClose)

	runPass(s, lang.CPP)

	if s.At(name).Type != chunk.FuncDef {
		t.Fatalf("name chunk = %v, want FuncDef", s.At(name).Type)
	}
	if s.At(braceOpen).ParentType != chunk.FuncDef {
		t.Fatalf("brace.ParentType = %v, want FuncDef", s.At(braceOpen).ParentType)
	}
}

// TestRunPassClassifiesAVariableDefinition builds "int x ;" at the start
// of the sequence (so isStatementStart is true for "int") and checks the
// run splits into a type chunk and a 1st-definition name.
func TestRunPassClassifiesAVariableDefinition(t *testing.T) {
	s := chunk.NewStore()
	ty := s.Append(chunk.Chunk{Type: chunk.Word, Text: "int"})
	name := s.Append(chunk.Chunk{Type: chunk.Word, Text: "x"})
	s.Append(chunk.Chunk{Type: chunk.Semicolon, Text: ";"})

	runPass(s, lang.CPP)

	if s.At(ty).Type != chunk.TypeTag {
		t.Fatalf("type chunk = %v, want TypeTag", s.At(ty).Type)
	}
	if !s.At(name).Flags.Has(chunk.VarDef) {
		t.Fatalf("name chunk missing VarDef flag")
	}
}

// TestIsStatementStartRecognizesFileStartAndTerminators checks the local
// recovery of statement-start status that runPass persists onto the
// StmtStart flag (see the package doc comment).
func TestIsStatementStartRecognizesFileStartAndTerminators(t *testing.T) {
	s := chunk.NewStore()
	first := s.Append(chunk.Chunk{Type: chunk.Word, Text: "a"})
	if !isStatementStart(s, first) {
		t.Fatalf("the first chunk in a sequence should start a statement")
	}

	semi := s.Append(chunk.Chunk{Type: chunk.Semicolon})
	second := s.Append(chunk.Chunk{Type: chunk.Word, Text: "b"})
	_ = semi
	if !isStatementStart(s, second) {
		t.Fatalf("a word right after a semicolon should start a statement")
	}

	ws := s.Append(chunk.Chunk{Type: chunk.Whitespace})
	_ = ws
	third := s.Append(chunk.Chunk{Type: chunk.Word, Text: "c"})
	if isStatementStart(s, third) {
		t.Fatalf("a word following another word mid-statement should not start a statement")
	}
}

// TestProcessRunsBraceCleanupBeforeTheFixedPointLoop checks Process wires
// brace.Process ahead of the mark/construct passes: an unbraced if/else
// arm must already carry virtual braces (and the SparenOpen/SparenClose
// retype brace.Process performs) by the time runPass's dispatch sees it.
func TestProcessRunsBraceCleanupBeforeTheFixedPointLoop(t *testing.T) {
	s := chunk.NewStore()
	ifKw := s.Append(chunk.Chunk{Type: chunk.If})
	popen := s.Append(chunk.Chunk{Type: chunk.ParenOpen})
	s.Append(chunk.Chunk{Type: chunk.Word, Text: "c"})
	pclose := s.Append(chunk.Chunk{Type: chunk.ParenClose})
	s.Append(chunk.Chunk{Type: chunk.Word, Text: "x"})
	s.Append(chunk.Chunk{Type: chunk.Assign})
	s.Append(chunk.Chunk{Type: chunk.Number, Text: "1"})
	s.Append(chunk.Chunk{Type: chunk.Semicolon})
	_ = ifKw

	var d diag.Sink
	Process(s, lang.CPP, &d)

	if s.At(popen).Type != chunk.SparenOpen {
		t.Fatalf("if's '(' = %v, want SparenOpen", s.At(popen).Type)
	}
	if s.At(pclose).Type != chunk.SparenClose {
		t.Fatalf("if's ')' = %v, want SparenClose", s.At(pclose).Type)
	}
}

// TestProcessTerminatesWithoutChangesOnAnAlreadyClassifiedSequence checks
// the fixed-point loop stops on the first pass that reclassifies nothing,
// rather than always spinning to maxPasses.
func TestProcessTerminatesWithoutChangesOnAnAlreadyClassifiedSequence(t *testing.T) {
	s := chunk.NewStore()
	s.Append(chunk.Chunk{Type: chunk.Semicolon})

	var d diag.Sink
	Process(s, lang.CPP, &d)

	if runPass(s, lang.CPP) {
		t.Fatalf("runPass reported a change on a sequence with nothing left to classify")
	}
}
