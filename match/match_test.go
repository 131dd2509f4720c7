package match

import (
	"testing"

	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/lang"
)

func TestAssignedTypeUsingAlias(t *testing.T) {
	s := chunk.NewStore()
	s.Append(chunk.Chunk{Type: chunk.Using})
	name := s.Append(chunk.Chunk{Type: chunk.Word})
	assign := s.Append(chunk.Chunk{Type: chunk.Assign})
	s.Append(chunk.Chunk{Type: chunk.TypeTag})

	if got := AssignedType(s, assign); got != name {
		t.Fatalf("AssignedType() = %v, want %v", got, name)
	}
}

func TestAssignedTypeNotAnAssignment(t *testing.T) {
	s := chunk.NewStore()
	word := s.Append(chunk.Chunk{Type: chunk.Word})
	if got := AssignedType(s, word); got != chunk.Invalid {
		t.Fatalf("AssignedType() on non-assign chunk should be Invalid, got %v", got)
	}
}

func TestQualifiedIdentifierRequiresDcMember(t *testing.T) {
	s := chunk.NewStore()
	ns := s.Append(chunk.Chunk{Type: chunk.Word})
	s.Append(chunk.Chunk{Type: chunk.DcMember})
	name := s.Append(chunk.Chunk{Type: chunk.Word})

	start, end := QualifiedIdentifier(s, ns)
	if start != ns || end != name {
		t.Fatalf("QualifiedIdentifier() = (%v, %v), want (%v, %v)", start, end, ns, name)
	}
}

func TestQualifiedIdentifierRejectsBareWord(t *testing.T) {
	s := chunk.NewStore()
	word := s.Append(chunk.Chunk{Type: chunk.Word})

	start, end := QualifiedIdentifier(s, word)
	if start != chunk.Invalid || end != chunk.Invalid {
		t.Fatalf("QualifiedIdentifier() on a lone word should be (Invalid, Invalid), got (%v, %v)", start, end)
	}
}

func TestFunctionPointerAtParenMatchesSignature(t *testing.T) {
	s := chunk.NewStore()
	ret := s.Append(chunk.Chunk{Type: chunk.Native, Level: 0})
	open1 := s.Append(chunk.Chunk{Type: chunk.ParenOpen, Level: 0})
	star := s.Append(chunk.Chunk{Type: chunk.Star, Level: 1})
	name := s.Append(chunk.Chunk{Type: chunk.Word, Level: 1})
	close1 := s.Append(chunk.Chunk{Type: chunk.ParenClose, Level: 0})
	s.SetMatch(open1, close1)
	open2 := s.Append(chunk.Chunk{Type: chunk.FparenOpen, Level: 0})
	s.Append(chunk.Chunk{Type: chunk.Word, Level: 1})
	close2 := s.Append(chunk.Chunk{Type: chunk.FparenClose, Level: 0})
	s.SetMatch(open2, close2)
	_ = star

	start, identifier, end, ok := FunctionPointerAtParen(s, open1, lang.CPP)
	if !ok {
		t.Fatalf("FunctionPointerAtParen() did not match expected signature")
	}
	if start != ret {
		t.Fatalf("start = %v, want %v", start, ret)
	}
	if identifier != name {
		t.Fatalf("identifier = %v, want %v", identifier, name)
	}
	if end != close2 {
		t.Fatalf("end = %v, want %v", end, close2)
	}
}
