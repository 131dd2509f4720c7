// Package lang holds the language bitset consulted by the chunk predicates,
// skippers, and matchers. Per DESIGN NOTES this is a plain bitset with a
// membership test, not a polymorphism hierarchy: a predicate that behaves
// differently in C++/CLI or Objective-C just checks a mask, the same way it
// checks a token type.
package lang

// Mask is a bitset of the languages a predicate may need to special-case.
// A single source file is associated with exactly one Mask value built
// from one or more of the base languages below (the "header file" variant
// reuses the language of the associated source, e.g. a C header is C, a
// C++ header is CPP).
type Mask uint32

const (
	C Mask = 1 << iota
	CPP
	D
	CS
	Java
	ObjC
	Vala
	Pawn
	Ecma

	// CppCli marks a source additionally compiled under the C++/CLI
	// extension, where '^' is a managed pointer/reference sigil. Combined
	// with CPP rather than standing alone.
	CppCli
)

// CFamily is every base language descended from C's block/expression syntax.
const CFamily = C | CPP | D | CS | Java | ObjC | Vala | Pawn | Ecma

// Is reports whether any of the languages in want are set in m.
func (m Mask) Is(want Mask) bool { return m&want != 0 }

// Name returns the conventional short name of the primary language in m,
// for diagnostics.
func (m Mask) Name() string {
	switch {
	case m.Is(CppCli):
		return "c++/cli"
	case m.Is(CPP):
		return "c++"
	case m.Is(C):
		return "c"
	case m.Is(D):
		return "d"
	case m.Is(CS):
		return "c#"
	case m.Is(Java):
		return "java"
	case m.Is(ObjC):
		return "objective-c"
	case m.Is(Vala):
		return "vala"
	case m.Is(Pawn):
		return "pawn"
	case m.Is(Ecma):
		return "ecma"
	default:
		return "unknown"
	}
}

// FromExtension derives a Mask from a filename's extension, following the
// same extension-table idiom as the teacher's language/cpp/lang.go
// (hasMatchingExtension), generalized from one language to the full set
// this module supports.
func FromExtension(ext string) (Mask, bool) {
	m, ok := extensionTable[ext]
	return m, ok
}

var extensionTable = map[string]Mask{
	".c":   C,
	".h":   C | CPP, // both C and C++; no paired source is consulted
	".cc":  CPP,
	".cpp": CPP,
	".cxx": CPP,
	".c++": CPP,
	".hh":  CPP,
	".hpp": CPP,
	".hxx": CPP,
	".d":   D,
	".di":  D,
	".cs":  CS,
	".java": Java,
	".m":   ObjC,
	".mm":  ObjC | CPP,
	".vala": Vala,
	".pawn": Pawn,
	".pwn":  Pawn,
	".es":  Ecma,
}
