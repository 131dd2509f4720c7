package brace

import (
	"testing"

	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/diag"
	"github.com/uncrustify/uncrustify-sub003/lang"
)

// TestProcessInsertsVirtualBracesAroundUnbracedIfElse builds
// "if (c) x = 1; else y = 2;" and checks that both arms get a matched
// virtual brace pair at the same level as the enclosing scope.
func TestProcessInsertsVirtualBracesAroundUnbracedIfElse(t *testing.T) {
	s := chunk.NewStore()
	ifKw := s.Append(chunk.Chunk{Type: chunk.If})
	popen := s.Append(chunk.Chunk{Type: chunk.ParenOpen})
	cond := s.Append(chunk.Chunk{Type: chunk.Word, Text: "c"})
	pclose := s.Append(chunk.Chunk{Type: chunk.ParenClose})
	x := s.Append(chunk.Chunk{Type: chunk.Word, Text: "x"})
	assign1 := s.Append(chunk.Chunk{Type: chunk.Assign})
	one := s.Append(chunk.Chunk{Type: chunk.Number, Text: "1"})
	semi1 := s.Append(chunk.Chunk{Type: chunk.Semicolon})
	elseKw := s.Append(chunk.Chunk{Type: chunk.Else})
	y := s.Append(chunk.Chunk{Type: chunk.Word, Text: "y"})
	assign2 := s.Append(chunk.Chunk{Type: chunk.Assign})
	two := s.Append(chunk.Chunk{Type: chunk.Number, Text: "2"})
	semi2 := s.Append(chunk.Chunk{Type: chunk.Semicolon})
	_ = cond

	var d diag.Sink
	Process(s, lang.CPP, &d)

	if s.At(popen).Type != chunk.SparenOpen {
		t.Fatalf("if's '(' = %v, want SparenOpen", s.At(popen).Type)
	}
	if s.At(pclose).Type != chunk.SparenClose {
		t.Fatalf("if's ')' = %v, want SparenClose", s.At(pclose).Type)
	}
	if s.Match(popen) != pclose {
		t.Fatalf("if's parens not matched")
	}

	// "x = 1;" should now be wrapped: vopen before x, vclose after semi1.
	vopenIf := s.Prev(x)
	if s.At(vopenIf).Type != chunk.VbraceOpen {
		t.Fatalf("expected VbraceOpen before 'x', got %v", s.At(vopenIf).Type)
	}
	if s.At(vopenIf).ParentType != chunk.If {
		t.Fatalf("if-body vbrace open ParentType = %v, want If", s.At(vopenIf).ParentType)
	}
	vcloseIf := s.Next(semi1)
	if s.At(vcloseIf).Type != chunk.VbraceClose {
		t.Fatalf("expected VbraceClose after first ';', got %v", s.At(vcloseIf).Type)
	}
	if s.Match(vopenIf) != vcloseIf {
		t.Fatalf("if-body virtual braces not matched")
	}
	if s.At(vopenIf).Level != s.At(vcloseIf).Level {
		t.Fatalf("if-body vbrace open/close level mismatch: %d vs %d", s.At(vopenIf).Level, s.At(vcloseIf).Level)
	}
	if s.At(vopenIf).BraceLevel != s.At(vcloseIf).BraceLevel {
		t.Fatalf("if-body vbrace open/close brace-level mismatch: %d vs %d", s.At(vopenIf).BraceLevel, s.At(vcloseIf).BraceLevel)
	}

	// next significant token after the if-body's vclose must be "else".
	if s.Next(vcloseIf) != elseKw {
		t.Fatalf("expected 'else' immediately after if-body vclose")
	}

	vopenElse := s.Prev(y)
	if s.At(vopenElse).Type != chunk.VbraceOpen {
		t.Fatalf("expected VbraceOpen before 'y', got %v", s.At(vopenElse).Type)
	}
	if s.At(vopenElse).ParentType != chunk.Else {
		t.Fatalf("else-body vbrace open ParentType = %v, want Else", s.At(vopenElse).ParentType)
	}
	vcloseElse := s.Next(semi2)
	if s.At(vcloseElse).Type != chunk.VbraceClose {
		t.Fatalf("expected VbraceClose after second ';', got %v", s.At(vcloseElse).Type)
	}
	if s.Match(vopenElse) != vcloseElse {
		t.Fatalf("else-body virtual braces not matched")
	}

	// Both arms sit at the same enclosing level (outside the if/else
	// entirely, the stack is back at its starting depth).
	if s.At(vopenIf).Level != s.At(vopenElse).Level {
		t.Fatalf("if-arm and else-arm vbrace levels differ: %d vs %d", s.At(vopenIf).Level, s.At(vopenElse).Level)
	}

	_ = assign1
	_ = assign2
}

// TestProcessPreservesBraceLevelAcrossIfElseEndif builds an outer brace
// pair around "#if { } #else g #endif tail" and checks that brace_level
// outside the conditional is unaffected by the branches, and that the
// brace pair inside the #if branch does not change the #else branch's
// starting level.
func TestProcessPreservesBraceLevelAcrossIfElseEndif(t *testing.T) {
	s := chunk.NewStore()

	outerOpen := s.Append(chunk.Chunk{Type: chunk.BraceOpen, ParentType: chunk.Namespace})

	ppIf := s.Append(chunk.Chunk{Type: chunk.Preproc})
	s.Append(chunk.Chunk{Type: chunk.PpIf})

	branchAOpen := s.Append(chunk.Chunk{Type: chunk.BraceOpen, ParentType: chunk.If})
	branchAClose := s.Append(chunk.Chunk{Type: chunk.BraceClose})
	s.SetMatch(branchAOpen, branchAClose)

	ppElse := s.Append(chunk.Chunk{Type: chunk.Preproc})
	s.Append(chunk.Chunk{Type: chunk.PpElse})

	afterElse := s.Append(chunk.Chunk{Type: chunk.Word, Text: "g"})

	ppEndif := s.Append(chunk.Chunk{Type: chunk.Preproc})
	s.Append(chunk.Chunk{Type: chunk.PpEndif})

	afterEndif := s.Append(chunk.Chunk{Type: chunk.Word, Text: "tail"})
	outerClose := s.Append(chunk.Chunk{Type: chunk.BraceClose})

	var d diag.Sink
	Process(s, lang.CPP, &d)

	if s.At(outerOpen).BraceLevel != s.At(outerClose).BraceLevel {
		t.Fatalf("outer brace pair level mismatch: %d vs %d", s.At(outerOpen).BraceLevel, s.At(outerClose).BraceLevel)
	}
	// The else-branch's content sits at the same brace_level the
	// #if-branch started from, not one deeper because of the #if-branch's
	// own (already-closed) nested brace.
	if s.At(afterElse).BraceLevel != s.At(branchAOpen).BraceLevel {
		t.Fatalf("else-branch level = %d, want it to match the if-branch's starting level %d",
			s.At(afterElse).BraceLevel, s.At(branchAOpen).BraceLevel)
	}
	if s.At(afterEndif).BraceLevel != s.At(outerOpen).BraceLevel+1 {
		t.Fatalf("post-#endif level = %d, want outer level + 1 (still inside the namespace body)",
			s.At(afterEndif).BraceLevel)
	}

	if d.HasFatal() {
		t.Fatalf("unexpected fatal diagnostic: %v", d.Entries())
	}

	_ = ppIf
	_ = ppElse
	_ = ppEndif
}

func TestProcessFlagsUnmatchedClosingBrace(t *testing.T) {
	s := chunk.NewStore()
	s.Append(chunk.Chunk{Type: chunk.BraceClose, OrigLine: 3, OrigCol: 1})

	var d diag.Sink
	Process(s, lang.CPP, &d)

	entries := d.Entries()
	if len(entries) != 1 {
		t.Fatalf("Entries() = %v, want exactly one warning", entries)
	}
	if entries[0].Line != 3 {
		t.Fatalf("warning line = %d, want 3", entries[0].Line)
	}
}

func TestProcessTagsDoWhileTrailer(t *testing.T) {
	s := chunk.NewStore()
	doKw := s.Append(chunk.Chunk{Type: chunk.Do})
	body := s.Append(chunk.Chunk{Type: chunk.Word, Text: "x"})
	semi := s.Append(chunk.Chunk{Type: chunk.Semicolon})
	whileKw := s.Append(chunk.Chunk{Type: chunk.While})
	popen := s.Append(chunk.Chunk{Type: chunk.ParenOpen})
	cond := s.Append(chunk.Chunk{Type: chunk.Word, Text: "c"})
	pclose := s.Append(chunk.Chunk{Type: chunk.ParenClose})
	tailSemi := s.Append(chunk.Chunk{Type: chunk.Semicolon})

	var d diag.Sink
	Process(s, lang.CPP, &d)

	vopen := s.Prev(body)
	if s.At(vopen).Type != chunk.VbraceOpen || s.At(vopen).ParentType != chunk.Do {
		t.Fatalf("expected Do-bodied VbraceOpen before loop body, got type=%v parent=%v",
			s.At(vopen).Type, s.At(vopen).ParentType)
	}
	vclose := s.Next(semi)
	if s.At(vclose).Type != chunk.VbraceClose {
		t.Fatalf("expected VbraceClose after do-body ';', got %v", s.At(vclose).Type)
	}
	if s.At(whileKw).ParentType != chunk.Do {
		t.Fatalf("trailing while's ParentType = %v, want Do", s.At(whileKw).ParentType)
	}
	if s.At(popen).Type != chunk.SparenOpen {
		t.Fatalf("while's '(' = %v, want SparenOpen", s.At(popen).Type)
	}

	_ = doKw
	_ = cond
	_ = pclose
	_ = tailSemi
}

// TestProcessClosesChainedUnbracedIfBodies builds "if (a) if (b) x = 1;"
// and checks the single trailing semicolon closes both the inner and the
// outer if's virtual body, each matched to its own opener at its own
// level, rather than only the innermost one.
func TestProcessClosesChainedUnbracedIfBodies(t *testing.T) {
	s := chunk.NewStore()
	outerIf := s.Append(chunk.Chunk{Type: chunk.If})
	outerOpen := s.Append(chunk.Chunk{Type: chunk.ParenOpen})
	s.Append(chunk.Chunk{Type: chunk.Word, Text: "a"})
	outerClose := s.Append(chunk.Chunk{Type: chunk.ParenClose})
	innerIf := s.Append(chunk.Chunk{Type: chunk.If})
	innerOpen := s.Append(chunk.Chunk{Type: chunk.ParenOpen})
	s.Append(chunk.Chunk{Type: chunk.Word, Text: "b"})
	innerClose := s.Append(chunk.Chunk{Type: chunk.ParenClose})
	x := s.Append(chunk.Chunk{Type: chunk.Word, Text: "x"})
	s.Append(chunk.Chunk{Type: chunk.Assign})
	s.Append(chunk.Chunk{Type: chunk.Number, Text: "1"})
	semi := s.Append(chunk.Chunk{Type: chunk.Semicolon})
	_ = outerIf
	_ = innerIf

	var d diag.Sink
	Process(s, lang.CPP, &d)

	if s.At(outerOpen).Type != chunk.SparenOpen || s.At(innerOpen).Type != chunk.SparenOpen {
		t.Fatalf("both ifs' '(' should become SparenOpen, got outer=%v inner=%v",
			s.At(outerOpen).Type, s.At(innerOpen).Type)
	}

	vopenInner := s.Prev(x)
	if s.At(vopenInner).Type != chunk.VbraceOpen || s.At(vopenInner).ParentType != chunk.If {
		t.Fatalf("expected inner If-bodied VbraceOpen before 'x', got type=%v parent=%v",
			s.At(vopenInner).Type, s.At(vopenInner).ParentType)
	}
	if s.Prev(vopenInner) != innerClose {
		t.Fatalf("inner vbrace open should immediately follow inner if's ')'")
	}

	vcloseInner := s.Next(semi)
	if s.At(vcloseInner).Type != chunk.VbraceClose {
		t.Fatalf("expected a VbraceClose immediately after ';', got %v", s.At(vcloseInner).Type)
	}
	if s.Match(vopenInner) != vcloseInner {
		t.Fatalf("inner if-body virtual braces not matched")
	}

	vcloseOuter := s.Next(vcloseInner)
	if s.At(vcloseOuter).Type != chunk.VbraceClose {
		t.Fatalf("expected a second VbraceClose chained after the first, got %v", s.At(vcloseOuter).Type)
	}
	if s.At(vcloseOuter).ParentType != chunk.If {
		t.Fatalf("outer vbrace close ParentType = %v, want If", s.At(vcloseOuter).ParentType)
	}

	// The outer if's vbrace open sits between the outer ')' and the inner
	// "if" keyword, one level further out than the inner one.
	vopenOuter := s.Next(outerClose)
	if s.At(vopenOuter).Type != chunk.VbraceOpen || s.At(vopenOuter).ParentType != chunk.If {
		t.Fatalf("expected outer If-bodied VbraceOpen after outer ')', got type=%v parent=%v",
			s.At(vopenOuter).Type, s.At(vopenOuter).ParentType)
	}
	if s.Match(vopenOuter) != vcloseOuter {
		t.Fatalf("outer if-body virtual braces not matched")
	}
	if s.At(vopenOuter).Level >= s.At(vopenInner).Level {
		t.Fatalf("outer vbrace level (%d) should be shallower than inner (%d)",
			s.At(vopenOuter).Level, s.At(vopenInner).Level)
	}
	if s.At(vopenOuter).Level != s.At(vcloseOuter).Level {
		t.Fatalf("outer vbrace open/close level mismatch: %d vs %d", s.At(vopenOuter).Level, s.At(vcloseOuter).Level)
	}
}
