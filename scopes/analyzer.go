package scopes

import (
	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/token"
)

type analyzer struct {
	ast.NoopVisitor

	tree    *ScopeTree
	current *Scope
}

func (a *analyzer) push(kind ScopeKind) {
	a.current = a.tree.newScope(a.current, kind)
}

func (a *analyzer) pop() {
	if a.current.parent != nil {
		a.current = a.current.parent
	}
}

// bind declares id in the current scope and records its occurrence.
func (a *analyzer) bind(id *ast.Identifier, kind BindingKind) {
	a.tree.occ[id.Idx] = a.current
	a.tree.declare(a.current, id.Name, kind)
}

// bindTarget flattens a binding target down to its leaf identifiers, each
// declared with kind. Non-pattern targets (member expressions in for-in
// heads, for example) are plain references and get visited as such.
func (a *analyzer) bindTarget(e ast.Expr, kind BindingKind) {
	switch t := e.(type) {
	case nil:
	case *ast.Identifier:
		a.bind(t, kind)
	case *ast.ArrayPattern:
		for i := range t.Elements {
			a.bindTarget(t.Elements[i].Expr, kind)
		}
		if t.Rest != nil {
			a.bindTarget(t.Rest.Expr, kind)
		}
	case *ast.ObjectPattern:
		for i := range t.Properties {
			a.bindProperty(t.Properties[i].Prop, kind)
		}
		if t.Rest != nil {
			a.bindTarget(t.Rest, kind)
		}
	case *ast.AssignExpression:
		// Default value; the right side is evaluated in the current scope.
		a.bindTarget(t.Left.Expr, kind)
		t.Right.VisitWith(a.V)
	case *ast.SpreadElement:
		a.bindTarget(t.Expression.Expr, kind)
	default:
		e.VisitWith(a.V)
	}
}

func (a *analyzer) bindProperty(p ast.Prop, kind BindingKind) {
	switch t := p.(type) {
	case nil:
	case *ast.PropertyShort:
		a.bind(t.Name, kind)
		if t.Initializer != nil {
			t.Initializer.VisitWith(a.V)
		}
	case *ast.PropertyKeyed:
		if t.Computed {
			t.Key.VisitWith(a.V)
		}
		a.bindTarget(t.Value.Expr, kind)
	case *ast.SpreadElement:
		a.bindTarget(t.Expression.Expr, kind)
	}
}

// visitBody visits a statement that serves as the body of a construct that
// already opened a scope. A block body contributes its children directly
// instead of opening a redundant block scope.
func (a *analyzer) visitBody(s *ast.Statement) {
	if s == nil || s.Stmt == nil {
		return
	}
	if block, ok := s.Stmt.(*ast.BlockStatement); ok {
		block.VisitChildrenWith(a.V)
	} else {
		s.VisitWith(a.V)
	}
}

func (a *analyzer) params(pl *ast.ParameterList) {
	for i := range pl.List {
		d := &pl.List[i]
		if d.Target != nil {
			a.bindTarget(d.Target.Target, BindingKindParam)
		}
		if d.Initializer != nil {
			d.Initializer.VisitWith(a.V)
		}
	}
	if pl.Rest != nil {
		a.bindTarget(pl.Rest, BindingKindParam)
	}
}

func (a *analyzer) enterFunction(fn *ast.FunctionLiteral, bindOwnName bool) {
	a.push(ScopeKindFunction)
	if bindOwnName && fn.Name != nil {
		// A named function expression binds its own name inside itself.
		a.bind(fn.Name, BindingKindFunction)
	}
	a.params(&fn.ParameterList)
	if fn.Body != nil {
		// Prevent creating a new scope for the body.
		fn.Body.VisitChildrenWith(a.V)
	}
	a.pop()
}

func (a *analyzer) enterClass(c *ast.ClassLiteral, bindOwnName bool) {
	a.push(ScopeKindClass)
	if bindOwnName && c.Name != nil {
		a.bind(c.Name, BindingKindClass)
	}
	if c.SuperClass != nil {
		c.SuperClass.VisitWith(a.V)
	}
	for i := range c.Body {
		if c.Body[i].Element != nil {
			c.Body[i].Element.VisitWith(a.V)
		}
	}
	a.pop()
}

func (a *analyzer) VisitIdentifier(n *ast.Identifier) {
	a.tree.occ[n.Idx] = a.current
}

// Non-computed member properties and object keys are names, not variable
// references, so they are not recorded as occurrences.

func (a *analyzer) VisitMemberExpression(n *ast.MemberExpression) {
	n.Object.VisitWith(a.V)
	if n.Computed {
		n.Property.VisitWith(a.V)
	}
}

func (a *analyzer) VisitPropertyKeyed(n *ast.PropertyKeyed) {
	if n.Computed {
		n.Key.VisitWith(a.V)
	}
	n.Value.VisitWith(a.V)
}

func (a *analyzer) VisitBlockStatement(n *ast.BlockStatement) {
	a.push(ScopeKindBlock)
	n.VisitChildrenWith(a.V)
	a.pop()
}

func (a *analyzer) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.Function.Name != nil {
		a.bind(n.Function.Name, BindingKindFunction)
	}
	a.enterFunction(n.Function, false)
}

func (a *analyzer) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	a.enterFunction(n, true)
}

func (a *analyzer) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	a.push(ScopeKindArrow)
	a.params(&n.ParameterList)
	if n.Body != nil {
		switch body := n.Body.Body.(type) {
		case *ast.BlockStatement:
			body.VisitChildrenWith(a.V)
		case *ast.Expression:
			body.VisitWith(a.V)
		}
	}
	a.pop()
}

func (a *analyzer) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if n.Class.Name != nil {
		a.bind(n.Class.Name, BindingKindClass)
	}
	a.enterClass(n.Class, false)
}

func (a *analyzer) VisitClassLiteral(n *ast.ClassLiteral) {
	a.enterClass(n, true)
}

func (a *analyzer) VisitClassStaticBlock(n *ast.ClassStaticBlock) {
	a.push(ScopeKindBlock)
	n.Block.VisitChildrenWith(a.V)
	a.pop()
}

func (a *analyzer) VisitCatchStatement(n *ast.CatchStatement) {
	a.push(ScopeKindCatch)
	if n.Parameter != nil {
		a.bindTarget(n.Parameter.Target, BindingKindCatchClause)
	}
	if n.Body != nil {
		n.Body.VisitChildrenWith(a.V)
	}
	a.pop()
}

func (a *analyzer) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	kind := BindingKindVar
	switch n.Token {
	case token.Let:
		kind = BindingKindLet
	case token.Const:
		kind = BindingKindConst
	}

	for i := range n.List {
		d := &n.List[i]
		dk := kind
		if id, ok := targetIdent(d.Target); ok {
			if c, ok := initClass(d.Initializer); ok && c.Name != nil && c.Name.Name == id.Name {
				// `let Foo = class Foo {}` declares a class binding.
				dk = BindingKindClass
			}
		}
		if d.Target != nil {
			a.bindTarget(d.Target.Target, dk)
		}
		if d.Initializer != nil {
			d.Initializer.VisitWith(a.V)
		}
	}
}

func targetIdent(t *ast.BindingTarget) (*ast.Identifier, bool) {
	if t == nil {
		return nil, false
	}
	id, ok := t.Target.(*ast.Identifier)
	return id, ok
}

func initClass(e *ast.Expression) (*ast.ClassLiteral, bool) {
	if e == nil {
		return nil, false
	}
	c, ok := e.Expr.(*ast.ClassLiteral)
	return c, ok
}

// loops

func (a *analyzer) VisitWhileStatement(n *ast.WhileStatement) {
	a.push(ScopeKindLoop)
	n.Test.VisitWith(a.V)
	a.visitBody(n.Body)
	a.pop()
}

func (a *analyzer) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	a.push(ScopeKindLoop)
	a.visitBody(n.Body)
	n.Test.VisitWith(a.V)
	a.pop()
}

func (a *analyzer) VisitForStatement(n *ast.ForStatement) {
	a.push(ScopeKindLoop)
	if n.Initializer != nil && n.Initializer.Initializer != nil {
		n.Initializer.Initializer.VisitWith(a.V)
	}
	if n.Test != nil {
		n.Test.VisitWith(a.V)
	}
	if n.Update != nil {
		n.Update.VisitWith(a.V)
	}
	a.visitBody(n.Body)
	a.pop()
}

func (a *analyzer) VisitForInStatement(n *ast.ForInStatement) {
	a.push(ScopeKindLoop)
	if n.Into != nil && n.Into.Into != nil {
		n.Into.Into.VisitWith(a.V)
	}
	n.Source.VisitWith(a.V)
	a.visitBody(n.Body)
	a.pop()
}

func (a *analyzer) VisitForOfStatement(n *ast.ForOfStatement) {
	a.push(ScopeKindLoop)
	if n.Into != nil && n.Into.Into != nil {
		n.Into.Into.VisitWith(a.V)
	}
	n.Source.VisitWith(a.V)
	a.visitBody(n.Body)
	a.pop()
}

func (a *analyzer) VisitSwitchStatement(n *ast.SwitchStatement) {
	a.push(ScopeKindSwitch)
	n.VisitChildrenWith(a.V)
	a.pop()
}

func (a *analyzer) VisitWithStatement(n *ast.WithStatement) {
	n.Object.VisitWith(a.V)
	a.push(ScopeKindWith)
	a.visitBody(n.Body)
	a.pop()
}

// Labels are not variable references.

func (a *analyzer) VisitLabelledStatement(n *ast.LabelledStatement) {
	if n.Statement != nil {
		n.Statement.VisitWith(a.V)
	}
}

func (a *analyzer) VisitBreakStatement(*ast.BreakStatement) {}

func (a *analyzer) VisitContinueStatement(*ast.ContinueStatement) {}

func (a *analyzer) VisitImportDeclaration(n *ast.ImportDeclaration) {
	for i := range n.Specifiers {
		switch s := n.Specifiers[i].Spec.(type) {
		case *ast.ImportDefaultSpecifier:
			a.bind(s.Local, BindingKindImport)
		case *ast.ImportNamespaceSpecifier:
			a.bind(s.Local, BindingKindImport)
		case *ast.ImportNamedSpecifier:
			a.bind(s.LocalName(), BindingKindImport)
			if s.Local != nil {
				// The imported name itself is not a local binding, but it
				// is still an identifier occurrence.
				a.tree.occ[s.Imported.Idx] = a.current
			}
		}
	}
}
