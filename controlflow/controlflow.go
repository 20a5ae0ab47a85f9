// Package controlflow computes per-statement reachability facts for a
// syntax tree: whether a statement can ever execute, and how execution
// leaves it.
package controlflow

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ecmalint/ecmalint/ast"
)

// EndKind classifies how execution leaves a statement or block.
type EndKind int

const (
	// EndKindForced means something stops execution at that point
	// unconditionally.
	EndKindForced EndKind = iota
	// EndKindBreak means execution stopped at a break or continue statement.
	EndKindBreak
	// EndKindContinue means execution passes through, like a function body
	// that ends without returning or throwing. Unlike the other two kinds it
	// does not prevent further execution.
	EndKindContinue
)

// End describes how a statement or block finishes.
//
// A forced end carries three flags rather than a single cause because the
// conditions can hold simultaneously:
//
//	switch (foo) {
//	  case 1: return 1;
//	  case 2: throw 2;
//	  default: return 0;
//	}
//
// Control may enter any branch here, so the switch ends with
// Ret and Throw both set.
type End struct {
	Kind EndKind

	// Set only when Kind is EndKindForced.
	Ret          bool // unconditionally returns
	Throw        bool // unconditionally throws
	InfiniteLoop bool // unconditionally enters an infinite loop
}

func ForcedReturn() End       { return End{Kind: EndKindForced, Ret: true} }
func ForcedThrow() End        { return End{Kind: EndKindForced, Throw: true} }
func ForcedInfiniteLoop() End { return End{Kind: EndKindForced, InfiniteLoop: true} }
func Forced(ret, throw, infiniteLoop bool) End {
	return End{Kind: EndKindForced, Ret: ret, Throw: throw, InfiniteLoop: infiniteLoop}
}
func Break() End    { return End{Kind: EndKindBreak} }
func Continue() End { return End{Kind: EndKindContinue} }

func (e End) IsForced() bool { return e.Kind == EndKindForced }

func (e End) stops() bool { return e.Kind == EndKindForced || e.Kind == EndKindBreak }

// MergeForced combines two forced ends by or-ing their flags. The second
// return is false when either side is not forced.
func (e End) MergeForced(other End) (End, bool) {
	if e.Kind != EndKindForced || other.Kind != EndKindForced {
		return End{}, false
	}
	return End{
		Kind:         EndKindForced,
		Ret:          e.Ret || other.Ret,
		Throw:        e.Throw || other.Throw,
		InfiniteLoop: e.InfiniteLoop || other.InfiniteLoop,
	}, true
}

// Metadata holds the facts computed for a single statement or switch case.
type Metadata struct {
	Unreachable bool
	End         *End
}

// StopsExecution reports whether the node prevents further execution.
func (m *Metadata) StopsExecution() bool {
	return m != nil && m.End != nil && (m.End.Kind == EndKindForced || m.End.Kind == EndKindBreak)
}

// ContinuesExecution reports whether the node does not prevent further
// execution.
func (m *Metadata) ContinuesExecution() bool {
	return m == nil || m.End == nil || m.End.Kind == EndKindContinue
}

// Facts is the result of an analysis, keyed by node start position.
//
// A position can be taken from Idx0 of any statement, and of switch cases.
// Loop facts are keyed at the loop statement itself; loop bodies keep their
// own independently computed end.
type Facts struct {
	meta map[ast.Idx]*Metadata
}

// MetaAt returns the facts recorded for the node starting at lo, or nil
// when the analysis recorded nothing there.
func (f *Facts) MetaAt(lo ast.Idx) *Metadata {
	return f.meta[lo]
}

// Positions returns every position carrying facts, in ascending order.
func (f *Facts) Positions() []ast.Idx {
	keys := maps.Keys(f.meta)
	slices.Sort(keys)
	return keys
}

// Analyze computes control flow facts for the whole program.
func Analyze(p *ast.Program) *Facts {
	a := &analyzer{
		scope: newScope(nil, blockKindProgram, ""),
		info:  make(map[ast.Idx]*Metadata),
	}
	a.V = a
	p.VisitWith(a)
	return &Facts{meta: a.info}
}
