// Package asttest builds syntax trees by hand for analyzer tests.
//
// Every constructor stamps the node with fresh positions from a running
// counter, so each node (and each identifier occurrence) has a distinct
// start index. Analyses key their results by those indices; tests read
// them back through Idx0 on the nodes they kept.
package asttest

import (
	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/token"
)

type Builder struct {
	next ast.Idx
}

func New() *Builder {
	return &Builder{next: 1}
}

func (b *Builder) idx() ast.Idx {
	i := b.next
	b.next += 16
	return i
}

func (b *Builder) Program(stmts ...ast.Statement) *ast.Program {
	return &ast.Program{Body: stmts}
}

func (b *Builder) Stmt(s ast.Stmt) ast.Statement {
	return ast.Statement{Stmt: s}
}

func (b *Builder) Stmts(list ...ast.Stmt) ast.Statements {
	out := make(ast.Statements, 0, len(list))
	for _, s := range list {
		out = append(out, ast.Statement{Stmt: s})
	}
	return out
}

func (b *Builder) Expr(e ast.Expr) *ast.Expression {
	return &ast.Expression{Expr: e}
}

func (b *Builder) Ident(name string) *ast.Identifier {
	return &ast.Identifier{Idx: b.idx(), Name: name}
}

func (b *Builder) Bool(v bool) *ast.BooleanLiteral {
	return &ast.BooleanLiteral{Idx: b.idx(), Value: v}
}

func (b *Builder) Num(v float64) *ast.NumberLiteral {
	return &ast.NumberLiteral{Idx: b.idx(), Value: v}
}

func (b *Builder) Str(v string) *ast.StringLiteral {
	return &ast.StringLiteral{Idx: b.idx(), Value: v}
}

func (b *Builder) Null() *ast.NullLiteral {
	return &ast.NullLiteral{Idx: b.idx()}
}

func (b *Builder) This() *ast.ThisExpression {
	return &ast.ThisExpression{Idx: b.idx()}
}

func (b *Builder) Block(list ...ast.Stmt) *ast.BlockStatement {
	return &ast.BlockStatement{
		LeftBrace:  b.idx(),
		List:       b.Stmts(list...),
		RightBrace: b.idx(),
	}
}

func (b *Builder) Empty() *ast.EmptyStatement {
	return &ast.EmptyStatement{Semicolon: b.idx()}
}

func (b *Builder) Debugger() *ast.DebuggerStatement {
	return &ast.DebuggerStatement{Debugger: b.idx()}
}

func (b *Builder) ExprStmt(e ast.Expr) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: b.Expr(e)}
}

func (b *Builder) Ret(arg ast.Expr) *ast.ReturnStatement {
	n := &ast.ReturnStatement{Return: b.idx()}
	if arg != nil {
		n.Argument = b.Expr(arg)
	}
	return n
}

func (b *Builder) Throw(arg ast.Expr) *ast.ThrowStatement {
	return &ast.ThrowStatement{Throw: b.idx(), Argument: b.Expr(arg)}
}

func (b *Builder) Brk() *ast.BreakStatement {
	return &ast.BreakStatement{Idx: b.idx()}
}

func (b *Builder) BrkL(label string) *ast.BreakStatement {
	return &ast.BreakStatement{Idx: b.idx(), Label: b.Ident(label)}
}

func (b *Builder) Cont() *ast.ContinueStatement {
	return &ast.ContinueStatement{Idx: b.idx()}
}

func (b *Builder) ContL(label string) *ast.ContinueStatement {
	return &ast.ContinueStatement{Idx: b.idx(), Label: b.Ident(label)}
}

func (b *Builder) If(test ast.Expr, cons ast.Stmt) *ast.IfStatement {
	s := b.Stmt(cons)
	return &ast.IfStatement{If: b.idx(), Test: b.Expr(test), Consequent: &s}
}

func (b *Builder) IfElse(test ast.Expr, cons, alt ast.Stmt) *ast.IfStatement {
	n := b.If(test, cons)
	s := b.Stmt(alt)
	n.Alternate = &s
	return n
}

func (b *Builder) While(test ast.Expr, body ast.Stmt) *ast.WhileStatement {
	s := b.Stmt(body)
	return &ast.WhileStatement{While: b.idx(), Test: b.Expr(test), Body: &s}
}

func (b *Builder) DoWhile(body ast.Stmt, test ast.Expr) *ast.DoWhileStatement {
	s := b.Stmt(body)
	return &ast.DoWhileStatement{Do: b.idx(), Test: b.Expr(test), Body: &s}
}

// For builds a classic for loop. Any of init, test and update may be nil.
func (b *Builder) For(init ast.ForLoopInit, test, update ast.Expr, body ast.Stmt) *ast.ForStatement {
	s := b.Stmt(body)
	n := &ast.ForStatement{For: b.idx(), Body: &s}
	if init != nil {
		n.Initializer = &ast.ForLoopInitializer{Initializer: init}
	}
	if test != nil {
		n.Test = b.Expr(test)
	}
	if update != nil {
		n.Update = b.Expr(update)
	}
	return n
}

func (b *Builder) ForIn(into ast.Into, source ast.Expr, body ast.Stmt) *ast.ForInStatement {
	s := b.Stmt(body)
	return &ast.ForInStatement{
		For:    b.idx(),
		Into:   &ast.ForInto{Into: into},
		Source: b.Expr(source),
		Body:   &s,
	}
}

func (b *Builder) ForOf(into ast.Into, source ast.Expr, body ast.Stmt) *ast.ForOfStatement {
	s := b.Stmt(body)
	return &ast.ForOfStatement{
		For:    b.idx(),
		Into:   &ast.ForInto{Into: into},
		Source: b.Expr(source),
		Body:   &s,
	}
}

func (b *Builder) Switch(disc ast.Expr, cases ...ast.CaseStatement) *ast.SwitchStatement {
	return &ast.SwitchStatement{Switch: b.idx(), Discriminant: b.Expr(disc), Body: cases}
}

func (b *Builder) Case(test ast.Expr, list ...ast.Stmt) ast.CaseStatement {
	return ast.CaseStatement{Case: b.idx(), Test: b.Expr(test), Consequent: b.Stmts(list...)}
}

func (b *Builder) DefaultCase(list ...ast.Stmt) ast.CaseStatement {
	return ast.CaseStatement{Case: b.idx(), Consequent: b.Stmts(list...)}
}

// Try builds a try statement; catch and finally may be nil.
func (b *Builder) Try(body *ast.BlockStatement, catch *ast.CatchStatement, finally *ast.BlockStatement) *ast.TryStatement {
	return &ast.TryStatement{Try: b.idx(), Body: body, Catch: catch, Finally: finally}
}

// Catch builds a catch clause; param may be nil.
func (b *Builder) Catch(param ast.Target, body *ast.BlockStatement) *ast.CatchStatement {
	n := &ast.CatchStatement{Catch: b.idx(), Body: body}
	if param != nil {
		n.Parameter = &ast.BindingTarget{Target: param}
	}
	return n
}

func (b *Builder) Label(name string, stmt ast.Stmt) *ast.LabelledStatement {
	s := b.Stmt(stmt)
	return &ast.LabelledStatement{Label: b.Ident(name), Colon: b.idx(), Statement: &s}
}

func (b *Builder) With(object ast.Expr, body ast.Stmt) *ast.WithStatement {
	s := b.Stmt(body)
	return &ast.WithStatement{With: b.idx(), Object: b.Expr(object), Body: &s}
}

// Fn builds a function literal; name may be empty for an anonymous function.
func (b *Builder) Fn(name string, body *ast.BlockStatement, params ...string) *ast.FunctionLiteral {
	n := &ast.FunctionLiteral{
		Function:      b.idx(),
		ParameterList: b.Params(params...),
		Body:          body,
	}
	if name != "" {
		n.Name = b.Ident(name)
	}
	return n
}

func (b *Builder) FnDecl(name string, body *ast.BlockStatement, params ...string) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{Function: b.Fn(name, body, params...)}
}

func (b *Builder) Params(names ...string) ast.ParameterList {
	pl := ast.ParameterList{Opening: b.idx()}
	for _, name := range names {
		pl.List = append(pl.List, ast.VariableDeclarator{
			Target: &ast.BindingTarget{Target: b.Ident(name)},
		})
	}
	pl.Closing = b.idx()
	return pl
}

func (b *Builder) Arrow(body ast.Body, params ...string) *ast.ArrowFunctionLiteral {
	return &ast.ArrowFunctionLiteral{
		Start:         b.idx(),
		ParameterList: b.Params(params...),
		Body:          &ast.ConciseBody{Body: body},
	}
}

// Class builds a class literal; name may be empty for an anonymous class.
func (b *Builder) Class(name string, elements ...ast.ClassElement) *ast.ClassLiteral {
	n := &ast.ClassLiteral{Class: b.idx(), Body: elements, RightBrace: b.idx()}
	if name != "" {
		n.Name = b.Ident(name)
	}
	return n
}

func (b *Builder) ClassDecl(name string, elements ...ast.ClassElement) *ast.ClassDeclaration {
	return &ast.ClassDeclaration{Class: b.Class(name, elements...)}
}

func (b *Builder) Method(name string, body *ast.BlockStatement, params ...string) ast.ClassElement {
	return ast.ClassElement{Element: &ast.MethodDefinition{
		Idx:  b.idx(),
		Key:  b.Expr(b.Ident(name)),
		Kind: ast.PropertyKindMethod,
		Body: b.Fn("", body, params...),
	}}
}

func (b *Builder) Field(name string, init ast.Expr) ast.ClassElement {
	n := &ast.FieldDefinition{Idx: b.idx(), Key: b.Expr(b.Ident(name))}
	if init != nil {
		n.Initializer = b.Expr(init)
	}
	return ast.ClassElement{Element: n}
}

func (b *Builder) StaticBlock(block *ast.BlockStatement) ast.ClassElement {
	return ast.ClassElement{Element: &ast.ClassStaticBlock{Static: b.idx(), Block: block}}
}

// VarDecl builds a declaration list; tok is token.Var, token.Let or
// token.Const.
func (b *Builder) VarDecl(tok token.Token, list ...ast.VariableDeclarator) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{Idx: b.idx(), Token: tok, List: list}
}

// D builds a declarator; init may be nil.
func (b *Builder) D(target ast.Target, init ast.Expr) ast.VariableDeclarator {
	d := ast.VariableDeclarator{Target: &ast.BindingTarget{Target: target}}
	if init != nil {
		d.Initializer = b.Expr(init)
	}
	return d
}

// Var is shorthand for a single-declarator declaration of a plain name.
func (b *Builder) Var(tok token.Token, name string, init ast.Expr) *ast.VariableDeclaration {
	return b.VarDecl(tok, b.D(b.Ident(name), init))
}

func (b *Builder) ArrPat(rest ast.Expr, elements ...ast.Expr) *ast.ArrayPattern {
	n := &ast.ArrayPattern{LeftBracket: b.idx(), RightBracket: b.idx()}
	for _, e := range elements {
		n.Elements = append(n.Elements, *b.Expr(e))
	}
	if rest != nil {
		n.Rest = b.Expr(rest)
	}
	return n
}

func (b *Builder) ObjPat(rest ast.Expr, props ...ast.Prop) *ast.ObjectPattern {
	n := &ast.ObjectPattern{LeftBrace: b.idx(), RightBrace: b.idx(), Rest: rest}
	for _, p := range props {
		n.Properties = append(n.Properties, ast.Property{Prop: p})
	}
	return n
}

func (b *Builder) PropShort(name string) *ast.PropertyShort {
	return &ast.PropertyShort{Name: b.Ident(name)}
}

func (b *Builder) PropKeyed(key string, value ast.Expr) *ast.PropertyKeyed {
	return &ast.PropertyKeyed{
		Key:   b.Expr(b.Str(key)),
		Kind:  ast.PropertyKindValue,
		Value: b.Expr(value),
	}
}

func (b *Builder) Call(callee ast.Expr, args ...ast.Expr) *ast.CallExpression {
	n := &ast.CallExpression{Callee: b.Expr(callee), LeftParenthesis: b.idx()}
	for _, a := range args {
		n.ArgumentList = append(n.ArgumentList, *b.Expr(a))
	}
	n.RightParenthesis = b.idx()
	return n
}

func (b *Builder) New(callee ast.Expr, args ...ast.Expr) *ast.NewExpression {
	n := &ast.NewExpression{New: b.idx(), Callee: b.Expr(callee), LeftParenthesis: b.idx()}
	for _, a := range args {
		n.ArgumentList = append(n.ArgumentList, *b.Expr(a))
	}
	n.RightParenthesis = b.idx()
	return n
}

func (b *Builder) Assign(left, right ast.Expr) *ast.AssignExpression {
	return &ast.AssignExpression{Operator: token.Assign, Left: b.Expr(left), Right: b.Expr(right)}
}

func (b *Builder) Binary(op token.Token, left, right ast.Expr) *ast.BinaryExpression {
	return &ast.BinaryExpression{Operator: op, Left: b.Expr(left), Right: b.Expr(right)}
}

func (b *Builder) Unary(op token.Token, operand ast.Expr) *ast.UnaryExpression {
	return &ast.UnaryExpression{Operator: op, Idx: b.idx(), Operand: b.Expr(operand)}
}

func (b *Builder) Member(object ast.Expr, name string) *ast.MemberExpression {
	return &ast.MemberExpression{Object: b.Expr(object), Property: b.Expr(b.Ident(name))}
}

func (b *Builder) Import(source string, specs ...ast.ImportSpecifier) *ast.ImportDeclaration {
	return &ast.ImportDeclaration{Import: b.idx(), Specifiers: specs, Source: b.Str(source)}
}

func (b *Builder) ImportDefault(local string) ast.ImportSpecifier {
	return ast.ImportSpecifier{Spec: &ast.ImportDefaultSpecifier{Local: b.Ident(local)}}
}

func (b *Builder) ImportStar(local string) ast.ImportSpecifier {
	return ast.ImportSpecifier{Spec: &ast.ImportNamespaceSpecifier{Star: b.idx(), Local: b.Ident(local)}}
}

// ImportNamed binds imported under the alias local; local may be empty.
func (b *Builder) ImportNamed(imported, local string) ast.ImportSpecifier {
	n := &ast.ImportNamedSpecifier{Imported: b.Ident(imported)}
	if local != "" {
		n.Local = b.Ident(local)
	}
	return ast.ImportSpecifier{Spec: n}
}
