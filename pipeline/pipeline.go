// Package pipeline wires the classification passes together: brace
// cleanup (component H) first, then a driver that walks the resulting
// chunk sequence once per pass, dispatching to the mark (component F) and
// construct (component G) entry points at the positions each of them
// expects to be called from, and repeating until a pass reclassifies
// nothing.
//
// The reference implementation drives these same entry points from
// combine_fix_mark.cpp's single ~1500-line function, which recognizes a
// statement's start from bookkeeping (PCF_STMT_START/PCF_EXPR_START)
// accumulated by an earlier tokenize_cleanup pass this port does not
// build (see DESIGN.md). Statement boundaries are instead recovered
// locally here — a chunk starts a statement if the previous significant
// chunk is a statement/body terminator, or it is the first chunk in the
// file — and persisted onto chunk.StmtStart as each pass recovers it, so
// the fact survives in the finished chunk stream the same way it would if
// tokenize_cleanup had set it upstream.
package pipeline

import (
	"github.com/uncrustify/uncrustify-sub003/brace"
	"github.com/uncrustify/uncrustify-sub003/chunk"
	"github.com/uncrustify/uncrustify-sub003/construct"
	"github.com/uncrustify/uncrustify-sub003/diag"
	"github.com/uncrustify/uncrustify-sub003/lang"
	"github.com/uncrustify/uncrustify-sub003/mark"
	"github.com/uncrustify/uncrustify-sub003/predicate"
)

// maxPasses bounds the fixed-point loop: each pass can only turn a Word
// into something more specific (FuncDef, TypeTag, ...), never back again,
// so the type sequence strictly shrinks its "still ambiguous" subset pass
// over pass. A handful of passes is enough for realistic nesting depth;
// this is a backstop against an unforeseen oscillation, not a tuned limit.
const maxPasses = 8

// Process runs the brace cleanup pass and then the mark/construct fixed
// point over s, classifying it in place. Diagnostics from every pass are
// recorded on d.
func Process(s *chunk.Store, language lang.Mask, d *diag.Sink) {
	brace.Process(s, language, d)

	for i := 0; i < maxPasses; i++ {
		if !runPass(s, language) {
			return
		}
	}
}

// isStatementStart reports whether pc is the first chunk of a statement:
// either the very first chunk in the sequence, or the previous significant
// chunk closes a prior statement or opens/closes a block.
func isStatementStart(s *chunk.Store, pc chunk.ID) bool {
	prev := s.PrevNcNnl(pc, chunk.All)
	if prev == chunk.Invalid {
		return true
	}
	return predicate.IsAnyType(s, prev,
		chunk.Semicolon, chunk.Vsemicolon,
		chunk.BraceOpen, chunk.BraceClose,
		chunk.VbraceOpen, chunk.VbraceClose,
		chunk.Colon, chunk.CaseColon, chunk.LabelColon,
	)
}

// runPass walks the whole sequence once, persisting chunk.StmtStart on
// every statement-start chunk it recovers locally, dispatching to a
// mark/construct entry point wherever a chunk matches one of its trigger
// shapes, and reports whether any dispatch chunk's own Type changed during
// its step (types an entry point assigns to other chunks are not
// compared) — the fixed-point loop in Process stops once a pass reports
// false.
func runPass(s *chunk.Store, language lang.Mask) bool {
	changed := false

	for pc := s.Head(); pc != chunk.Invalid; pc = s.Next(pc) {
		c := s.At(pc)
		before := c.Type

		stmtStart := isStatementStart(s, pc)
		if stmtStart {
			s.At(pc).Flags = s.At(pc).Flags.Set(chunk.StmtStart)
		}

		switch {
		case c.Type == chunk.Typedef:
			mark.Typedef(s, pc, language)

		case predicate.IsClassStructUnion(s, pc) || predicate.IsType(s, pc, chunk.Enum):
			construct.Parse(s, pc, language)

		case c.Type == chunk.ParenOpen:
			mark.Casts(s, pc, language)

		case predicate.IsAssignToken(s, pc):
			mark.Lvalue(s, pc)

		case c.Type == chunk.Word && stmtStart:
			if next := s.NextNcNnl(pc, chunk.All); next != chunk.Invalid && predicate.IsParenOpenLike(s, next) {
				mark.Function(s, pc, language)
			} else {
				mark.VariableDefinition(s, pc, language)
			}

		case c.Type == chunk.Word:
			if next := s.NextNcNnl(pc, chunk.All); next != chunk.Invalid && predicate.IsParenOpenLike(s, next) {
				mark.Function(s, pc, language)
			}
		}

		if s.At(pc).Type != before {
			changed = true
		}
	}

	return changed
}
