package mark

import (
	"testing"

	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/lang"
)

func TestFunctionClassifiesCallVsDef(t *testing.T) {
	s := chunk.NewStore()
	name := s.Append(chunk.Chunk{Type: chunk.Word, Text: "foo"})
	open := s.Append(chunk.Chunk{Type: chunk.ParenOpen})
	close := s.Append(chunk.Chunk{Type: chunk.ParenClose})
	s.SetMatch(open, close)
	s.Append(chunk.Chunk{Type: chunk.Semicolon})

	Function(s, name, lang.CPP)

	if s.At(name).Type != chunk.FuncCall {
		t.Fatalf("Function() classified bare call-site as %v, want FuncCall", s.At(name).Type)
	}
}

func TestFunctionClassifiesDefinitionByTrailingBrace(t *testing.T) {
	s := chunk.NewStore()
	ret := s.Append(chunk.Chunk{Type: chunk.Native})
	name := s.Append(chunk.Chunk{Type: chunk.Word, Text: "foo"})
	open := s.Append(chunk.Chunk{Type: chunk.ParenOpen})
	close := s.Append(chunk.Chunk{Type: chunk.ParenClose})
	s.SetMatch(open, close)
	brace := s.Append(chunk.Chunk{Type: chunk.BraceOpen})

	Function(s, name, lang.CPP)

	if s.At(name).Type != chunk.FuncDef {
		t.Fatalf("Function() = %v, want FuncDef", s.At(name).Type)
	}
	if s.At(ret).Type != chunk.TypeTag {
		t.Fatalf("return type chunk not reclassified as TypeTag, got %v", s.At(ret).Type)
	}
	if s.At(brace).ParentType != chunk.FuncDef {
		t.Fatalf("opening brace parent = %v, want FuncDef", s.At(brace).ParentType)
	}
}

func TestVariableStackSplitsTypeAndName(t *testing.T) {
	s := chunk.NewStore()
	ty := s.Append(chunk.Chunk{Type: chunk.Word})
	name := s.Append(chunk.Chunk{Type: chunk.Word})

	VariableStack(s, []chunk.ID{ty, name})

	if s.At(ty).Type != chunk.TypeTag {
		t.Fatalf("type chunk not reclassified, got %v", s.At(ty).Type)
	}
	if !s.At(name).Flags.Has(chunk.VarDef) {
		t.Fatalf("name chunk missing VarDef flag")
	}
}

func TestVariableStackSingleEntryIsType(t *testing.T) {
	s := chunk.NewStore()
	word := s.Append(chunk.Chunk{Type: chunk.Word})

	VariableStack(s, []chunk.ID{word})

	if s.At(word).Type != chunk.TypeTag {
		t.Fatalf("unnamed parameter not reclassified as TypeTag, got %v", s.At(word).Type)
	}
	if !s.At(word).Flags.Has(chunk.VarType) {
		t.Fatalf("unnamed parameter missing VarType flag")
	}
}

func TestLvalueStopsAtAssign(t *testing.T) {
	s := chunk.NewStore()
	s.Append(chunk.Chunk{Type: chunk.Assign})
	a := s.Append(chunk.Chunk{Type: chunk.Word})
	b := s.Append(chunk.Chunk{Type: chunk.Word})

	Lvalue(s, b)

	if !s.At(a).Flags.Has(chunk.Lvalue) {
		t.Fatalf("chunk before target should be marked Lvalue")
	}
}

func TestVariableDefinitionSplitsLeadingPointerFromMultipleDeclarators(t *testing.T) {
	s := chunk.NewStore()
	ty := s.Append(chunk.Chunk{Type: chunk.Word, Text: "int"})
	star := s.Append(chunk.Chunk{Type: chunk.Star, Text: "*"})
	a := s.Append(chunk.Chunk{Type: chunk.Word, Text: "a"})
	s.Append(chunk.Chunk{Type: chunk.Comma, Text: ","})
	b := s.Append(chunk.Chunk{Type: chunk.Word, Text: "b"})
	s.Append(chunk.Chunk{Type: chunk.Semicolon, Text: ";"})

	VariableDefinition(s, ty, lang.CPP)

	if s.At(ty).Type != chunk.TypeTag {
		t.Fatalf("int chunk = %v, want TypeTag", s.At(ty).Type)
	}
	if s.At(star).Type != chunk.PtrType {
		t.Fatalf("'*' chunk = %v, want PtrType", s.At(star).Type)
	}
	if !s.At(a).Flags.Has(chunk.Var1stDef) {
		t.Fatalf("a should carry Var1stDef")
	}
	if !s.At(b).Flags.Has(chunk.VarDef) || s.At(b).Flags.Has(chunk.Var1st) {
		t.Fatalf("b should carry VarDef but not Var1st, got flags %v", s.At(b).Flags)
	}
}

func TestFunctionTypeRecognizesPointerDeclarator(t *testing.T) {
	s := chunk.NewStore()
	open := s.Append(chunk.Chunk{Type: chunk.ParenOpen})
	s.Append(chunk.Chunk{Type: chunk.Star})
	name := s.Append(chunk.Chunk{Type: chunk.Word})
	close := s.Append(chunk.Chunk{Type: chunk.ParenClose})
	s.SetMatch(open, close)

	if !FunctionType(s, close) {
		t.Fatalf("FunctionType() did not recognize (*name) shape")
	}
	if s.At(name).Type != chunk.FuncVar {
		t.Fatalf("declarator name not reclassified as FuncVar, got %v", s.At(name).Type)
	}
}
