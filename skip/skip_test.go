package skip

import (
	"testing"

	"github.com/uncrustify/uncrustify-sub003/chunk"
)

func TestAlignSkipsParenAndColon(t *testing.T) {
	s := chunk.NewStore()
	align := s.Append(chunk.Chunk{Type: chunk.Align})
	open := s.Append(chunk.Chunk{Type: chunk.ParenOpen, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.Number, Level: 1})
	closeP := s.Append(chunk.Chunk{Type: chunk.ParenClose, Level: 0})
	s.SetMatch(open, closeP)
	colon := s.Append(chunk.Chunk{Type: chunk.Colon})
	word := s.Append(chunk.Chunk{Type: chunk.Word})

	got := Align(s, align)
	if got != word {
		t.Fatalf("Align() = %v, want chunk after colon (%v); colon was %v", got, word, colon)
	}
}

func TestAlignNoOpWhenNotAlign(t *testing.T) {
	s := chunk.NewStore()
	word := s.Append(chunk.Chunk{Type: chunk.Word})
	if got := Align(s, word); got != word {
		t.Fatalf("Align() on non-ALIGN chunk should be a no-op, got %v want %v", got, word)
	}
}

func TestToExpressionEndStopsAtCommaSameLevel(t *testing.T) {
	s := chunk.NewStore()
	a := s.Append(chunk.Chunk{Type: chunk.Word, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.Plus, Level: 0})
	b := s.Append(chunk.Chunk{Type: chunk.Number, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.Comma, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.Word, Level: 0})

	if got := ToExpressionEnd(s, a); got != b {
		t.Fatalf("ToExpressionEnd() = %v, want %v (stop before comma)", got, b)
	}
}

func TestToExpressionEndStopsAtSemicolon(t *testing.T) {
	s := chunk.NewStore()
	a := s.Append(chunk.Chunk{Type: chunk.Word, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.Semicolon, Level: 0})

	if got := ToExpressionEnd(s, a); got != a {
		t.Fatalf("ToExpressionEnd() = %v, want %v (single-token expression)", got, a)
	}
}

func TestToNextStatementStopsAtSemicolon(t *testing.T) {
	s := chunk.NewStore()
	a := s.Append(chunk.Chunk{Type: chunk.Word})
	s.Append(chunk.Chunk{Type: chunk.Assign})
	s.Append(chunk.Chunk{Type: chunk.Number})
	semi := s.Append(chunk.Chunk{Type: chunk.Semicolon})

	if got := ToNextStatement(s, a); got != semi {
		t.Fatalf("ToNextStatement() = %v, want %v", got, semi)
	}
}

func TestPointersReferencesAndQualifiersSkipsStarsAndConst(t *testing.T) {
	s := chunk.NewStore()
	word := s.Append(chunk.Chunk{Type: chunk.Word})
	s.Append(chunk.Chunk{Type: chunk.Qualifier})
	star := s.Append(chunk.Chunk{Type: chunk.Star})
	assign := s.Append(chunk.Chunk{Type: chunk.Assign})

	if got := PointersReferencesAndQualifiers(s, star, chunk.All); got != word {
		t.Fatalf("PointersReferencesAndQualifiers() = %v, want %v", got, word)
	}
	_ = assign
}

func TestTemplatePrevSkipsWholeAngleSpan(t *testing.T) {
	s := chunk.NewStore()
	before := s.Append(chunk.Chunk{Type: chunk.Word})
	open := s.Append(chunk.Chunk{Type: chunk.AngleOpen, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.TypeTag, Level: 1})
	closeA := s.Append(chunk.Chunk{Type: chunk.AngleClose, Level: 0})
	s.SetMatch(open, closeA)

	if got := TemplatePrev(s, closeA); got != before {
		t.Fatalf("TemplatePrev() = %v, want %v", got, before)
	}
}

func TestTsquareNextOnBareTsquare(t *testing.T) {
	s := chunk.NewStore()
	ts := s.Append(chunk.Chunk{Type: chunk.Tsquare})
	after := s.Append(chunk.Chunk{Type: chunk.Semicolon})
	if got := TsquareNext(s, ts); got != after {
		t.Fatalf("TsquareNext() = %v, want %v", got, after)
	}
}

func TestTsquareNextOnBracketPair(t *testing.T) {
	s := chunk.NewStore()
	open := s.Append(chunk.Chunk{Type: chunk.SquareOpen, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.Number, Level: 1})
	closeS := s.Append(chunk.Chunk{Type: chunk.SquareClose, Level: 0})
	s.SetMatch(open, closeS)
	after := s.Append(chunk.Chunk{Type: chunk.Semicolon})

	if got := TsquareNext(s, open); got != after {
		t.Fatalf("TsquareNext() = %v, want %v", got, after)
	}
}

func TestAttributeNextSkipsParenArgs(t *testing.T) {
	s := chunk.NewStore()
	attr := s.Append(chunk.Chunk{Type: chunk.Attribute, Level: 0})
	open := s.Append(chunk.Chunk{Type: chunk.FparenOpen, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.Word, Level: 1})
	closeF := s.Append(chunk.Chunk{Type: chunk.FparenClose, Level: 0})
	s.SetMatch(open, closeF)
	after := s.Append(chunk.Chunk{Type: chunk.Word})

	if got := AttributeNext(s, attr); got != after {
		t.Fatalf("AttributeNext() = %v, want %v", got, after)
	}
}

func TestDeclspecNextSkipsParen(t *testing.T) {
	s := chunk.NewStore()
	ds := s.Append(chunk.Chunk{Type: chunk.Declspec, Level: 0})
	open := s.Append(chunk.Chunk{Type: chunk.ParenOpen, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.Word, Level: 1})
	closeP := s.Append(chunk.Chunk{Type: chunk.ParenClose, Level: 0})
	s.SetMatch(open, closeP)
	after := s.Append(chunk.Chunk{Type: chunk.Word})

	if got := DeclspecNext(s, ds); got != after {
		t.Fatalf("DeclspecNext() = %v, want %v", got, after)
	}
}

func TestMatchingBraceBracketParenNextOnBrace(t *testing.T) {
	s := chunk.NewStore()
	open := s.Append(chunk.Chunk{Type: chunk.BraceOpen, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.Word, Level: 1})
	closeB := s.Append(chunk.Chunk{Type: chunk.BraceClose, Level: 0})
	s.SetMatch(open, closeB)
	after := s.Append(chunk.Chunk{Type: chunk.Semicolon})

	if got := MatchingBraceBracketParenNext(s, open); got != after {
		t.Fatalf("MatchingBraceBracketParenNext() = %v, want %v", got, after)
	}
}

func TestToChunkBeforeMatchingBraceBracketParenRev(t *testing.T) {
	s := chunk.NewStore()
	before := s.Append(chunk.Chunk{Type: chunk.Word})
	open := s.Append(chunk.Chunk{Type: chunk.ParenOpen, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.Word, Level: 1})
	closeP := s.Append(chunk.Chunk{Type: chunk.ParenClose, Level: 0})
	s.SetMatch(open, closeP)

	if got := ToChunkBeforeMatchingBraceBracketParenRev(s, closeP); got != before {
		t.Fatalf("ToChunkBeforeMatchingBraceBracketParenRev() = %v, want %v", got, before)
	}
}
