package scopes_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ecmalint/ecmalint/ast/asttest"
	"github.com/ecmalint/ecmalint/scopes"
	"github.com/ecmalint/ecmalint/token"
)

func wantBinding(t *testing.T, s *scopes.Scope, name string, kind scopes.BindingKind) {
	t.Helper()
	b := s.Binding(name)
	if b == nil {
		t.Fatalf("no binding %q in %s scope", name, s.Kind())
	}
	if b.Kind() != kind {
		t.Errorf("binding %q has kind %s, want %s", name, b.Kind(), kind)
	}
	if b.Scope() != s {
		t.Errorf("binding %q points at a different scope", name)
	}
}

func bindingNames(s *scopes.Scope) []string {
	var names []string
	for _, b := range s.Bindings() {
		names = append(names, b.Name())
	}
	return names
}

func TestGlobalBindings(t *testing.T) {
	b := asttest.New()
	tree := scopes.Analyze(b.Program(
		b.Stmt(b.Var(token.Var, "a", b.Num(1))),
		b.Stmt(b.Var(token.Let, "b", nil)),
		b.Stmt(b.Var(token.Const, "c", b.Num(2))),
		b.Stmt(b.FnDecl("f", b.Block())),
		b.Stmt(b.ClassDecl("C")),
	))

	root := tree.Root()
	if root.Kind() != scopes.ScopeKindGlobal {
		t.Fatalf("root kind = %s, want global", root.Kind())
	}
	if len(root.Path()) != 0 {
		t.Errorf("root path = %v, want empty", root.Path())
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "f", "C"}, bindingNames(root)); diff != "" {
		t.Errorf("binding order (-want +got):\n%s", diff)
	}
	wantBinding(t, root, "a", scopes.BindingKindVar)
	wantBinding(t, root, "b", scopes.BindingKindLet)
	wantBinding(t, root, "c", scopes.BindingKindConst)
	wantBinding(t, root, "f", scopes.BindingKindFunction)
	wantBinding(t, root, "C", scopes.BindingKindClass)

	kids := root.Children()
	if len(kids) != 2 || kids[0].Kind() != scopes.ScopeKindFunction || kids[1].Kind() != scopes.ScopeKindClass {
		t.Errorf("unexpected child scopes: %v", kids)
	}
}

func TestFunctionScope(t *testing.T) {
	b := asttest.New()
	decl := b.FnDecl("f", b.Block(b.Var(token.Let, "z", nil)), "x", "y")
	tree := scopes.Analyze(b.Program(b.Stmt(decl)))

	root := tree.Root()
	wantBinding(t, root, "f", scopes.BindingKindFunction)

	fn := root.Children()[0]
	if fn.Kind() != scopes.ScopeKindFunction {
		t.Fatalf("child kind = %s, want function", fn.Kind())
	}
	if diff := cmp.Diff([]scopes.ScopeKind{scopes.ScopeKindGlobal}, fn.Path()); diff != "" {
		t.Errorf("path (-want +got):\n%s", diff)
	}
	wantBinding(t, fn, "x", scopes.BindingKindParam)
	wantBinding(t, fn, "y", scopes.BindingKindParam)
	wantBinding(t, fn, "z", scopes.BindingKindLet)

	// The body block shares the function scope.
	if len(fn.Children()) != 0 {
		t.Errorf("function scope has %d children, want none", len(fn.Children()))
	}
}

func TestNamedFunctionExpression(t *testing.T) {
	b := asttest.New()
	tree := scopes.Analyze(b.Program(
		b.Stmt(b.Var(token.Var, "g", b.Fn("h", b.Block()))),
	))

	root := tree.Root()
	wantBinding(t, root, "g", scopes.BindingKindVar)
	if root.Binding("h") != nil {
		t.Error("function expression name leaked into the outer scope")
	}

	hs := tree.BindingsNamed("h")
	if len(hs) != 1 {
		t.Fatalf("got %d bindings named h, want 1", len(hs))
	}
	if hs[0].Scope().Kind() != scopes.ScopeKindFunction {
		t.Errorf("h lives in a %s scope, want function", hs[0].Scope().Kind())
	}
	if hs[0].Kind() != scopes.BindingKindFunction {
		t.Errorf("h has kind %s, want function", hs[0].Kind())
	}
}

func TestArrowParamResolution(t *testing.T) {
	b := asttest.New()
	ref := b.Ident("a")
	arrow := b.Arrow(b.Expr(ref), "a")
	tree := scopes.Analyze(b.Program(b.Stmt(b.Var(token.Const, "f", arrow))))

	scope := tree.ScopeOf(ref.Idx)
	if scope == nil || scope.Kind() != scopes.ScopeKindArrow {
		t.Fatalf("occurrence scope = %v, want arrow", scope)
	}

	binding := tree.LookupBinding(ref)
	if binding == nil {
		t.Fatal("reference did not resolve")
	}
	if binding.Kind() != scopes.BindingKindParam || binding.Scope() != scope {
		t.Errorf("resolved to %s in %s scope, want param in the arrow scope",
			binding.Kind(), binding.Scope().Kind())
	}
}

func TestBlockAndLoopScopes(t *testing.T) {
	b := asttest.New()
	tree := scopes.Analyze(b.Program(
		b.Stmt(b.Block(b.Var(token.Let, "x", nil))),
		b.Stmt(b.While(b.Ident("a"), b.Block(b.Var(token.Let, "y", nil)))),
		b.Stmt(b.For(b.Var(token.Let, "i", nil), nil, nil, b.Block())),
		b.Stmt(b.ForIn(b.Var(token.Const, "k", nil), b.Ident("o"), b.Block())),
	))

	kids := tree.Root().Children()
	want := []scopes.ScopeKind{
		scopes.ScopeKindBlock,
		scopes.ScopeKindLoop,
		scopes.ScopeKindLoop,
		scopes.ScopeKindLoop,
	}
	var got []scopes.ScopeKind
	for _, s := range kids {
		got = append(got, s.Kind())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("child scope kinds (-want +got):\n%s", diff)
	}

	wantBinding(t, kids[0], "x", scopes.BindingKindLet)
	wantBinding(t, kids[1], "y", scopes.BindingKindLet)
	wantBinding(t, kids[2], "i", scopes.BindingKindLet)
	wantBinding(t, kids[3], "k", scopes.BindingKindConst)

	// A loop body block shares the loop scope.
	if len(kids[1].Children()) != 0 {
		t.Errorf("loop scope has %d children, want none", len(kids[1].Children()))
	}
}

func TestCatchScope(t *testing.T) {
	b := asttest.New()
	ref := b.Ident("e")
	try := b.Try(
		b.Block(),
		b.Catch(b.Ident("e"), b.Block(b.ExprStmt(ref))),
		nil,
	)
	tree := scopes.Analyze(b.Program(b.Stmt(try)))

	binding := tree.LookupBinding(ref)
	if binding == nil {
		t.Fatal("catch parameter reference did not resolve")
	}
	if binding.Kind() != scopes.BindingKindCatchClause {
		t.Errorf("kind = %s, want catch", binding.Kind())
	}
	if binding.Scope().Kind() != scopes.ScopeKindCatch {
		t.Errorf("scope kind = %s, want catch", binding.Scope().Kind())
	}
}

func TestImports(t *testing.T) {
	b := asttest.New()
	tree := scopes.Analyze(b.Program(
		b.Stmt(b.Import("mod", b.ImportDefault("d"), b.ImportStar("ns"))),
		b.Stmt(b.Import("mod2", b.ImportNamed("a", "b"), b.ImportNamed("c", ""))),
	))

	root := tree.Root()
	for _, name := range []string{"d", "ns", "b", "c"} {
		wantBinding(t, root, name, scopes.BindingKindImport)
	}
	// `import { a as b }` binds b, not a.
	if root.Binding("a") != nil {
		t.Error("aliased import bound its source name")
	}
}

func TestClassExpressionName(t *testing.T) {
	b := asttest.New()
	tree := scopes.Analyze(b.Program(
		b.Stmt(b.Var(token.Let, "Foo", b.Class("Foo"))),
		b.Stmt(b.Var(token.Let, "Bar", b.Class("Baz"))),
	))

	root := tree.Root()
	wantBinding(t, root, "Foo", scopes.BindingKindClass)
	wantBinding(t, root, "Bar", scopes.BindingKindLet)

	foos := tree.BindingsNamed("Foo")
	if len(foos) != 2 {
		t.Fatalf("got %d bindings named Foo, want 2", len(foos))
	}
	if foos[0].Scope() != root {
		t.Error("first Foo binding is not the outer one")
	}
	if foos[1].Scope().Kind() != scopes.ScopeKindClass {
		t.Errorf("inner Foo lives in a %s scope, want class", foos[1].Scope().Kind())
	}
}

func TestRedeclarationCollapses(t *testing.T) {
	b := asttest.New()
	tree := scopes.Analyze(b.Program(
		b.Stmt(b.Var(token.Var, "x", nil)),
		b.Stmt(b.Var(token.Let, "x", nil)),
	))

	root := tree.Root()
	if got := len(root.Bindings()); got != 1 {
		t.Fatalf("got %d bindings, want 1", got)
	}
	wantBinding(t, root, "x", scopes.BindingKindLet)
	if got := len(tree.BindingsNamed("x")); got != 1 {
		t.Errorf("BindingsNamed returned %d entries, want 1", got)
	}
}

func TestLookupWalksOutward(t *testing.T) {
	b := asttest.New()
	ref := b.Ident("x")
	free := b.Ident("y")
	decl := b.FnDecl("f", b.Block(b.ExprStmt(ref), b.ExprStmt(free)))
	tree := scopes.Analyze(b.Program(
		b.Stmt(b.Var(token.Let, "x", nil)),
		b.Stmt(decl),
	))

	binding := tree.LookupBinding(ref)
	if binding == nil || binding.Scope() != tree.Root() {
		t.Errorf("x did not resolve to the outer binding")
	}
	if got := tree.LookupBinding(free); got != nil {
		t.Errorf("free name resolved to %q", got.Name())
	}
	if s := tree.ScopeOf(ref.Idx); s == nil || s.Kind() != scopes.ScopeKindFunction {
		t.Errorf("occurrence scope = %v, want function", s)
	}
}

func TestDestructuring(t *testing.T) {
	b := asttest.New()
	arr := b.ArrPat(b.Ident("q"), b.Ident("p"))
	obj := b.ObjPat(nil, b.PropShort("r"), b.PropKeyed("s", b.Ident("t")))
	tree := scopes.Analyze(b.Program(b.Stmt(b.VarDecl(token.Const,
		b.D(arr, b.Ident("src")),
		b.D(obj, b.Ident("src2")),
	))))

	root := tree.Root()
	if diff := cmp.Diff([]string{"p", "q", "r", "t"}, bindingNames(root)); diff != "" {
		t.Errorf("bindings (-want +got):\n%s", diff)
	}
	for _, name := range []string{"p", "q", "r", "t"} {
		wantBinding(t, root, name, scopes.BindingKindConst)
	}
	// Keys in `{ s: t }` are names, not bindings.
	if root.Binding("s") != nil {
		t.Error("pattern key bound as a name")
	}
}

func TestScopePath(t *testing.T) {
	b := asttest.New()
	decl := b.FnDecl("f", b.Block(b.Block(b.Var(token.Let, "x", nil))))
	tree := scopes.Analyze(b.Program(b.Stmt(decl)))

	xs := tree.BindingsNamed("x")
	if len(xs) != 1 {
		t.Fatalf("got %d bindings named x, want 1", len(xs))
	}
	want := []scopes.ScopeKind{scopes.ScopeKindGlobal, scopes.ScopeKindFunction}
	if diff := cmp.Diff(want, xs[0].Scope().Path()); diff != "" {
		t.Errorf("path (-want +got):\n%s", diff)
	}
}

func TestWithAndSwitchScopes(t *testing.T) {
	b := asttest.New()
	obj := b.Ident("o")
	with := b.With(obj, b.Block())
	sw := b.Switch(b.Ident("x"), b.Case(b.Num(1), b.Var(token.Let, "y", nil)))
	tree := scopes.Analyze(b.Program(b.Stmt(with), b.Stmt(sw)))

	// The with object is evaluated in the enclosing scope.
	if s := tree.ScopeOf(obj.Idx); s != tree.Root() {
		t.Errorf("with object scope = %v, want the root", s)
	}

	kids := tree.Root().Children()
	if len(kids) != 2 || kids[0].Kind() != scopes.ScopeKindWith || kids[1].Kind() != scopes.ScopeKindSwitch {
		t.Fatalf("unexpected child scopes: %v", kids)
	}
	wantBinding(t, kids[1], "y", scopes.BindingKindLet)
}

func TestShadowedParam(t *testing.T) {
	b := asttest.New()
	aRef := b.Ident("a")
	call := b.Call(b.Member(b.Ident("console"), "log"), aRef, b.Ident("b"))
	body := b.Block(
		b.ExprStmt(call),
		b.Block(b.Var(token.Const, "c", b.Num(1))),
		b.Ret(b.Num(1)),
	)
	decl := b.FnDecl("asdf", body, "b", "c")
	tree := scopes.Analyze(b.Program(
		b.Stmt(b.Var(token.Const, "a", b.Str("a"))),
		b.Stmt(decl),
	))

	outer := tree.LookupBinding(aRef)
	if outer == nil || outer.Scope() != tree.Root() || outer.Kind() != scopes.BindingKindConst {
		t.Errorf("a did not resolve to the module-level const")
	}
	if len(outer.Scope().Path()) != 0 {
		t.Errorf("module-level binding path = %v, want empty", outer.Scope().Path())
	}

	cs := tree.BindingsNamed("c")
	if len(cs) != 2 {
		t.Fatalf("got %d bindings named c, want 2", len(cs))
	}
	if cs[0].Kind() != scopes.BindingKindParam || cs[0].Scope().Kind() != scopes.ScopeKindFunction {
		t.Errorf("outer c = %s in %s scope, want param in function", cs[0].Kind(), cs[0].Scope().Kind())
	}
	if cs[1].Kind() != scopes.BindingKindConst || cs[1].Scope().Kind() != scopes.ScopeKindBlock {
		t.Errorf("inner c = %s in %s scope, want const in block", cs[1].Kind(), cs[1].Scope().Kind())
	}
}

func TestClassBodyScopes(t *testing.T) {
	b := asttest.New()
	ref := b.Ident("s")
	cls := b.ClassDecl("C",
		b.Field("count", b.Num(0)),
		b.Method("run", b.Block(b.Var(token.Let, "m", nil))),
		b.StaticBlock(b.Block(b.ExprStmt(ref))),
	)
	tree := scopes.Analyze(b.Program(b.Stmt(cls)))

	root := tree.Root()
	wantBinding(t, root, "C", scopes.BindingKindClass)

	class := root.Children()[0]
	if class.Kind() != scopes.ScopeKindClass {
		t.Fatalf("child kind = %s, want class", class.Kind())
	}

	kids := class.Children()
	if len(kids) != 2 || kids[0].Kind() != scopes.ScopeKindFunction || kids[1].Kind() != scopes.ScopeKindBlock {
		t.Fatalf("unexpected class body scopes: %v", kids)
	}
	wantBinding(t, kids[0], "m", scopes.BindingKindLet)

	want := []scopes.ScopeKind{scopes.ScopeKindGlobal, scopes.ScopeKindClass}
	if diff := cmp.Diff(want, kids[1].Path()); diff != "" {
		t.Errorf("static block path (-want +got):\n%s", diff)
	}
}
