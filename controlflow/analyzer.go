package controlflow

import (
	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/token"
)

// blockKind is the kind of a basic block.
type blockKind int

const (
	blockKindProgram blockKind = iota
	blockKindFunction
	blockKindCase
	blockKindIf
	blockKindLoop
	blockKindLabel
	blockKindCatch
	blockKindFinally
)

type scope struct {
	parent *scope
	kind   blockKind
	label  string

	// Names referenced before execution stopped. Exists to handle code like
	// `function foo() { return bar(); function bar() { return 1; } }`.
	usedHoistable map[string]bool

	// Unconditionally ends with return, throw or an infinite loop.
	end *End

	mayThrow bool

	foundBreak bool
	breakLabel string // empty when the break carried no label

	foundContinue bool
}

func newScope(parent *scope, kind blockKind, label string) *scope {
	return &scope{
		parent:        parent,
		kind:          kind,
		label:         label,
		usedHoistable: make(map[string]bool),
	}
}

type analyzer struct {
	ast.NoopVisitor

	scope *scope
	info  map[ast.Idx]*Metadata
}

func (a *analyzer) meta(lo ast.Idx) *Metadata {
	m := a.info[lo]
	if m == nil {
		m = &Metadata{}
		a.info[lo] = m
	}
	return m
}

func (a *analyzer) endReason(lo ast.Idx) *End {
	if m := a.info[lo]; m != nil {
		return m.End
	}
	return nil
}

// markEnd marks lo as a finisher and exposes the reason. The current
// scope's end is only promoted while it is still undecided; once the scope
// is forced, later finishers are recorded merged but the scope keeps its
// first reason.
func (a *analyzer) markEnd(lo ast.Idx, end End) {
	var recorded End
	switch {
	case a.scope.end == nil || a.scope.end.Kind == EndKindContinue:
		e := end
		a.scope.end = &e
		recorded = end
	case a.scope.end.Kind == EndKindBreak:
		recorded = end
	default:
		if merged, ok := a.scope.end.MergeForced(end); ok {
			recorded = merged
		} else {
			recorded = *a.scope.end
		}
	}
	e := recorded
	a.meta(lo).End = &e
}

// withChildScope runs op in a child scope and marks lo as an end when the
// child finished unconditionally.
func (a *analyzer) withChildScope(kind blockKind, label string, lo ast.Idx, op func()) {
	prevEnd := a.scope.end
	parent := a.scope
	child := newScope(parent, kind, label)

	// A finished outer scope finishes the inner one too, except across a
	// function boundary.
	if kind != blockKindFunction && prevEnd != nil && prevEnd.Kind == EndKindForced {
		e := *prevEnd
		child.end = &e
	}

	a.scope = child
	op()
	a.scope = parent

	for id := range child.usedHoistable {
		parent.usedHoistable[id] = true
	}
	parent.mayThrow = parent.mayThrow || child.mayThrow
	if !parent.foundBreak {
		parent.foundBreak = child.foundBreak
		parent.breakLabel = child.breakLabel
	}
	parent.foundContinue = parent.foundContinue || child.foundContinue

	if child.end == nil {
		return
	}
	end := *child.end

	switch kind {
	case blockKindProgram:
	case blockKindFunction:
		if end.Kind == EndKindForced || end.Kind == EndKindContinue {
			a.markEnd(lo, end)
		}
		a.scope.end = prevEnd
	case blockKindCase, blockKindIf:
	case blockKindLoop:
		if end.Kind == EndKindForced {
			a.markEnd(lo, end)
			e := end
			a.scope.end = &e
		} else {
			// The loop as a whole passes through.
			a.markEnd(lo, Continue())
			a.scope.end = prevEnd
		}
	case blockKindLabel:
		if a.scope.foundBreak && a.scope.breakLabel != "" && a.scope.breakLabel == label {
			// Eat the break statement.
			a.scope.foundBreak = false
			a.scope.breakLabel = ""
		}
	case blockKindCatch:
		a.markEnd(lo, end)
	case blockKindFinally:
		// Analyzed detached; VisitTryStatement applies the recorded reason.
	}
}

// visitStmtOrBlock visits a statement and handles break and continue,
// which may make execution end.
func (a *analyzer) visitStmtOrBlock(s *ast.Statement) {
	if s == nil || s.Stmt == nil {
		return
	}
	s.VisitWith(a.V)

	switch s.Stmt.(type) {
	case *ast.BreakStatement, *ast.ContinueStatement:
		a.markEnd(s.Stmt.Idx0(), Break())
	}
}

func isLiteralTrue(e *ast.Expression) bool {
	if e == nil {
		return false
	}
	b, ok := e.Expr.(*ast.BooleanLiteral)
	return ok && b.Value
}

func (a *analyzer) VisitStatement(n *ast.Statement) {
	if n.Stmt == nil {
		return
	}

	scopeEnded := a.scope.end != nil &&
		(a.scope.end.Kind == EndKindForced || a.scope.end.Kind == EndKindBreak)

	unreachable := false
	if scopeEnded {
		// Although execution has ended, hoisting still applies.
		switch s := n.Stmt.(type) {
		case *ast.EmptyStatement:
		case *ast.FunctionDeclaration:
			if s.Function.Name == nil || !a.scope.usedHoistable[s.Function.Name.Name] {
				unreachable = true
			}
		case *ast.VariableDeclaration:
			if s.Token != token.Var {
				unreachable = true
			} else {
				for _, d := range s.List {
					if d.Initializer != nil {
						unreachable = true
						break
					}
				}
			}
		default:
			unreachable = true
		}
	}
	a.meta(n.Stmt.Idx0()).Unreachable = unreachable

	n.Stmt.VisitWith(a.V)
}

func (a *analyzer) VisitStatements(n *ast.Statements) {
	for i := range *n {
		a.visitStmtOrBlock(&(*n)[i])
	}
}

func (a *analyzer) VisitBlockStatement(n *ast.BlockStatement) {
	for i := range n.List {
		a.visitStmtOrBlock(&n.List[i])
	}

	if a.scope.end != nil {
		a.markEnd(n.LeftBrace, *a.scope.end)
	} else {
		a.markEnd(n.LeftBrace, Continue())
	}
}

func (a *analyzer) VisitExpression(n *ast.Expression) {
	if n.Expr == nil {
		return
	}
	n.VisitChildrenWith(a.V)

	if a.scope.end == nil {
		switch e := n.Expr.(type) {
		case *ast.Identifier:
			a.scope.usedHoistable[e.Name] = true
		case *ast.ThisExpression:
		default:
			// Anything more involved than a bare name may throw.
			a.scope.mayThrow = true
		}
	}
}

func (a *analyzer) VisitMemberExpression(n *ast.MemberExpression) {
	n.Object.VisitWith(a.V)
	if n.Computed {
		n.Property.VisitWith(a.V)
	}
}

func (a *analyzer) VisitReturnStatement(n *ast.ReturnStatement) {
	n.VisitChildrenWith(a.V)
	a.markEnd(n.Return, ForcedReturn())
}

func (a *analyzer) VisitThrowStatement(n *ast.ThrowStatement) {
	n.VisitChildrenWith(a.V)
	a.markEnd(n.Throw, ForcedThrow())
}

func (a *analyzer) VisitBreakStatement(n *ast.BreakStatement) {
	a.scope.foundBreak = true
	if n.Label != nil {
		a.scope.breakLabel = n.Label.Name
	} else {
		a.scope.breakLabel = ""
	}
}

func (a *analyzer) VisitContinueStatement(n *ast.ContinueStatement) {
	a.scope.foundContinue = true
}

func (a *analyzer) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	a.withChildScope(blockKindFunction, "", n.Function, func() {
		n.VisitChildrenWith(a.V)
	})
}

func (a *analyzer) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	a.withChildScope(blockKindFunction, "", n.Start, func() {
		n.VisitChildrenWith(a.V)
	})
}

func (a *analyzer) VisitClassStaticBlock(n *ast.ClassStaticBlock) {
	a.withChildScope(blockKindFunction, "", n.Static, func() {
		n.VisitChildrenWith(a.V)
	})
}

func (a *analyzer) VisitCatchStatement(n *ast.CatchStatement) {
	a.withChildScope(blockKindCatch, "", n.Catch, func() {
		n.VisitChildrenWith(a.V)
	})
}

func (a *analyzer) VisitLabelledStatement(n *ast.LabelledStatement) {
	a.withChildScope(blockKindLabel, n.Label.Name, n.Idx0(), func() {
		a.visitStmtOrBlock(n.Statement)
	})
}

func (a *analyzer) VisitIfStatement(n *ast.IfStatement) {
	n.Test.VisitWith(a.V)

	prevEnd := a.scope.end

	consLo := n.Consequent.Idx0()
	a.withChildScope(blockKindIf, "", consLo, func() {
		a.visitStmtOrBlock(n.Consequent)
	})
	consReason := a.endReason(consLo)

	if n.Alternate == nil {
		a.markEnd(n.If, Continue())
		a.scope.end = prevEnd
		return
	}

	altLo := n.Alternate.Idx0()
	a.withChildScope(blockKindIf, "", altLo, func() {
		a.visitStmtOrBlock(n.Alternate)
	})
	altReason := a.endReason(altLo)

	switch {
	case consReason != nil && altReason != nil && consReason.IsForced() && altReason.IsForced():
		merged, _ := consReason.MergeForced(*altReason)
		a.markEnd(n.If, merged)
	case consReason != nil && altReason != nil && consReason.stops() && altReason.stops():
		a.markEnd(n.If, Break())
	default:
		a.markEnd(n.If, Continue())
	}
}

func (a *analyzer) VisitSwitchStatement(n *ast.SwitchStatement) {
	prevEnd := a.scope.end
	n.VisitChildrenWith(a.V)

	// A switch ends unconditionally when every case does; an empty switch
	// cannot.
	forced := &End{Kind: EndKindForced}
	for i := range n.Body {
		reason := a.endReason(n.Body[i].Case)
		if reason == nil {
			continue
		}
		if forced != nil {
			if merged, ok := forced.MergeForced(*reason); ok {
				forced = &merged
			} else {
				forced = nil
			}
		}
	}

	end := Continue()
	if forced != nil && len(n.Body) > 0 {
		end = *forced
	}
	a.markEnd(n.Switch, end)

	if end.Kind != EndKindForced {
		a.scope.end = prevEnd
	}
}

func (a *analyzer) VisitCaseStatement(n *ast.CaseStatement) {
	prevEnd := a.scope.end
	var caseEnd *End

	a.withChildScope(blockKindCase, "", n.Case, func() {
		if n.Test != nil {
			n.Test.VisitWith(a.V)
		}
		n.Consequent.VisitWith(a.V)

		if a.scope.foundBreak {
			e := Break()
			caseEnd = &e
		} else if a.scope.end != nil && a.scope.end.Kind == EndKindForced {
			e := *a.scope.end
			caseEnd = &e
		}
	})

	if caseEnd != nil {
		a.markEnd(n.Case, *caseEnd)
	} else {
		a.markEnd(n.Case, Continue())
	}

	a.scope.end = prevEnd
}

// loops

func (a *analyzer) VisitWhileStatement(n *ast.WhileStatement) {
	bodyLo := n.Body.Idx0()

	a.withChildScope(blockKindLoop, "", n.While, func() {
		a.visitStmtOrBlock(n.Body)

		unconditionallyEnter := isLiteralTrue(n.Test)
		reason := a.endReason(bodyLo)
		returnOrThrow := reason != nil && reason.IsForced()
		infiniteLoop := !a.scope.foundBreak

		switch {
		case unconditionallyEnter && returnOrThrow:
			a.markEnd(n.While, *reason)
		case unconditionallyEnter && infiniteLoop:
			a.markEnd(n.While, ForcedInfiniteLoop())
		default:
			a.markEnd(n.While, Continue())
			e := Continue()
			a.scope.end = &e
		}
	})

	n.Test.VisitWith(a.V)
}

func (a *analyzer) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	bodyLo := n.Body.Idx0()

	a.withChildScope(blockKindLoop, "", n.Do, func() {
		a.visitStmtOrBlock(n.Body)

		reason := a.endReason(bodyLo)
		returnOrThrow := reason != nil && reason.IsForced()
		infiniteLoop := isLiteralTrue(n.Test) && !a.scope.foundBreak

		switch {
		case returnOrThrow:
			a.markEnd(n.Do, *reason)
		case infiniteLoop:
			a.markEnd(n.Do, ForcedInfiniteLoop())
		default:
			a.markEnd(n.Do, Continue())
			e := Continue()
			a.scope.end = &e
		}
	})

	n.Test.VisitWith(a.V)
}

func (a *analyzer) VisitForStatement(n *ast.ForStatement) {
	if n.Initializer != nil && n.Initializer.Initializer != nil {
		n.Initializer.Initializer.VisitWith(a.V)
	}
	if n.Update != nil {
		n.Update.VisitWith(a.V)
	}
	if n.Test != nil {
		n.Test.VisitWith(a.V)
	}

	bodyLo := n.Body.Idx0()

	a.withChildScope(blockKindLoop, "", n.For, func() {
		a.visitStmtOrBlock(n.Body)

		var forced *End
		if !a.scope.foundBreak && (n.Test == nil || isLiteralTrue(n.Test)) {
			end := ForcedInfiniteLoop()
			if reason := a.endReason(bodyLo); reason != nil && reason.IsForced() {
				end = *reason
			}
			a.markEnd(n.For, end)
			forced = &end
		}

		if forced == nil {
			a.markEnd(n.For, Continue())
			e := Continue()
			a.scope.end = &e
		}
	})
}

func (a *analyzer) VisitForInStatement(n *ast.ForInStatement) {
	n.Source.VisitWith(a.V)

	a.withChildScope(blockKindLoop, "", n.For, func() {
		a.visitStmtOrBlock(n.Body)

		// It is impossible to decide whether the loop body is entered at
		// all, so the loop always passes through.
		a.markEnd(n.For, Continue())
		e := Continue()
		a.scope.end = &e
	})
}

func (a *analyzer) VisitForOfStatement(n *ast.ForOfStatement) {
	n.Source.VisitWith(a.V)

	a.withChildScope(blockKindLoop, "", n.For, func() {
		a.visitStmtOrBlock(n.Body)

		a.markEnd(n.For, Continue())
		e := Continue()
		a.scope.end = &e
	})
}

func (a *analyzer) VisitTryStatement(n *ast.TryStatement) {
	lo := n.Try

	// The finally block is analyzed in a detached scope first; its reason
	// is applied after the try and catch arms so that it can override them
	// without making the try block itself look unreachable.
	if n.Finally != nil {
		a.withChildScope(blockKindFinally, "", n.Finally.LeftBrace, func() {
			n.Finally.VisitWith(a.V)
		})
	}

	oldThrow := a.scope.mayThrow
	prevEnd := a.scope.end

	a.scope.mayThrow = false
	n.Body.VisitWith(a.V)

	var tryEnd *End
	if a.scope.mayThrow {
		// The end of the try block may be skipped by a throw, so it is not
		// committed to the enclosing scope.
		if a.scope.end != nil {
			e := *a.scope.end
			tryEnd = &e
			a.scope.end = prevEnd
		}
	} else if a.scope.end != nil {
		e := *a.scope.end
		tryEnd = &e
		a.markEnd(lo, e)
	}

	if n.Catch != nil {
		a.scope.mayThrow = false
		n.Catch.VisitWith(a.V)
		catchEnd := a.scope.end

		switch {
		case tryEnd != nil && catchEnd != nil && tryEnd.IsForced() && catchEnd.IsForced():
			// Only concretely reachable exits count: an unconditional throw
			// in the try block is consumed by the catch clause, so the
			// statement throws only if the catch clause does.
			a.markEnd(lo, End{
				Kind:         EndKindForced,
				Ret:          tryEnd.Ret || catchEnd.Ret,
				Throw:        catchEnd.Throw,
				InfiniteLoop: tryEnd.InfiniteLoop || catchEnd.InfiniteLoop,
			})
		case tryEnd != nil && tryEnd.IsForced() && catchEnd != nil && catchEnd.Kind == EndKindBreak:
			a.markEnd(lo, Break())
		default:
			a.markEnd(lo, Continue())
			a.scope.end = prevEnd
		}
	} else if tryEnd != nil && (tryEnd.IsForced() || tryEnd.Kind == EndKindBreak) {
		a.markEnd(lo, *tryEnd)
	} else if n.Finally != nil {
		reason := Continue()
		if r := a.endReason(n.Finally.LeftBrace); r != nil {
			reason = *r
		}
		a.markEnd(lo, reason)
		a.scope.end = prevEnd
		a.scope.mayThrow = oldThrow
	} else {
		a.scope.end = prevEnd
	}

	if n.Finally != nil {
		if r := a.endReason(n.Finally.LeftBrace); r != nil && r.IsForced() {
			a.markEnd(lo, *r)
			e := *r
			a.scope.end = &e
		}
	}
}
