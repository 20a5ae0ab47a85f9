package controlflow_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/ast/asttest"
	"github.com/ecmalint/ecmalint/controlflow"
	"github.com/ecmalint/ecmalint/token"
)

func wantEnd(t *testing.T, f *controlflow.Facts, lo ast.Idx, want controlflow.End) {
	t.Helper()
	m := f.MetaAt(lo)
	if m == nil || m.End == nil {
		t.Fatalf("no end recorded at %d, want %+v", lo, want)
	}
	if *m.End != want {
		t.Errorf("end at %d = %+v, want %+v", lo, *m.End, want)
	}
}

func wantUnreachable(t *testing.T, f *controlflow.Facts, lo ast.Idx, want bool) {
	t.Helper()
	m := f.MetaAt(lo)
	if m == nil {
		t.Fatalf("no facts recorded at %d", lo)
	}
	if m.Unreachable != want {
		t.Errorf("unreachable at %d = %v, want %v", lo, m.Unreachable, want)
	}
}

func TestReturnMakesRestUnreachable(t *testing.T) {
	b := asttest.New()
	ret := b.Ret(b.Num(1))
	after := b.ExprStmt(b.Call(b.Ident("f")))
	f := controlflow.Analyze(b.Program(b.Stmt(ret), b.Stmt(after)))

	wantUnreachable(t, f, ret.Return, false)
	wantEnd(t, f, ret.Return, controlflow.ForcedReturn())
	wantUnreachable(t, f, after.Idx0(), true)
}

func TestThrowMakesRestUnreachable(t *testing.T) {
	b := asttest.New()
	throw := b.Throw(b.Num(1))
	after := b.ExprStmt(b.Call(b.Ident("f")))
	f := controlflow.Analyze(b.Program(b.Stmt(throw), b.Stmt(after)))

	wantEnd(t, f, throw.Throw, controlflow.ForcedThrow())
	wantUnreachable(t, f, after.Idx0(), true)
}

func TestHoistedDeclarationsAfterReturn(t *testing.T) {
	b := asttest.New()
	ret := b.Ret(b.Call(b.Ident("bar")))
	bar := b.FnDecl("bar", b.Block())
	baz := b.FnDecl("baz", b.Block())
	empty := b.Empty()
	varPlain := b.Var(token.Var, "a", nil)
	varInit := b.Var(token.Var, "c", b.Num(1))
	letPlain := b.Var(token.Let, "d", nil)
	body := b.Block(ret, bar, baz, empty, varPlain, varInit, letPlain)
	f := controlflow.Analyze(b.Program(b.Stmt(b.FnDecl("f", body))))

	// bar is called before the return, so its declaration is still live.
	wantUnreachable(t, f, bar.Idx0(), false)
	wantUnreachable(t, f, baz.Idx0(), true)
	wantUnreachable(t, f, empty.Idx0(), false)
	// var without an initializer hoists; an initializer would still run here.
	wantUnreachable(t, f, varPlain.Idx, false)
	wantUnreachable(t, f, varInit.Idx, true)
	wantUnreachable(t, f, letPlain.Idx, true)
}

func TestFunctionBodyDoesNotEndEnclosingScope(t *testing.T) {
	b := asttest.New()
	decl := b.FnDecl("f", b.Block(b.Ret(b.Num(1))))
	after := b.ExprStmt(b.Call(b.Ident("g")))
	f := controlflow.Analyze(b.Program(b.Stmt(decl), b.Stmt(after)))

	wantEnd(t, f, decl.Function.Function, controlflow.ForcedReturn())
	wantUnreachable(t, f, after.Idx0(), false)
}

func TestWhile(t *testing.T) {
	t.Run("conditional with break", func(t *testing.T) {
		b := asttest.New()
		brk := b.Brk()
		body := b.Block(brk)
		loop := b.While(b.Ident("a"), body)
		f := controlflow.Analyze(b.Program(b.Stmt(loop)))

		wantEnd(t, f, loop.While, controlflow.Continue())
		wantEnd(t, f, body.LeftBrace, controlflow.Break())
		wantEnd(t, f, brk.Idx, controlflow.Break())
	})

	t.Run("true with break", func(t *testing.T) {
		b := asttest.New()
		loop := b.While(b.Bool(true), b.Block(b.Brk()))
		f := controlflow.Analyze(b.Program(b.Stmt(loop)))

		wantEnd(t, f, loop.While, controlflow.Continue())
	})

	t.Run("infinite", func(t *testing.T) {
		b := asttest.New()
		loop := b.While(b.Bool(true), b.Block())
		after := b.ExprStmt(b.Call(b.Ident("f")))
		f := controlflow.Analyze(b.Program(b.Stmt(loop), b.Stmt(after)))

		wantEnd(t, f, loop.While, controlflow.ForcedInfiniteLoop())
		wantUnreachable(t, f, after.Idx0(), true)
	})

	t.Run("true with return", func(t *testing.T) {
		b := asttest.New()
		loop := b.While(b.Bool(true), b.Block(b.Ret(b.Num(1))))
		f := controlflow.Analyze(b.Program(b.Stmt(loop)))

		wantEnd(t, f, loop.While, controlflow.ForcedReturn())
	})
}

func TestDoWhile(t *testing.T) {
	t.Run("break", func(t *testing.T) {
		b := asttest.New()
		loop := b.DoWhile(b.Block(b.Brk()), b.Bool(true))
		f := controlflow.Analyze(b.Program(b.Stmt(loop)))

		wantEnd(t, f, loop.Do, controlflow.Continue())
	})

	t.Run("infinite", func(t *testing.T) {
		b := asttest.New()
		loop := b.DoWhile(b.Block(), b.Bool(true))
		f := controlflow.Analyze(b.Program(b.Stmt(loop)))

		wantEnd(t, f, loop.Do, controlflow.ForcedInfiniteLoop())
	})

	t.Run("body runs at least once", func(t *testing.T) {
		b := asttest.New()
		loop := b.DoWhile(b.Block(b.Ret(b.Num(1))), b.Ident("a"))
		f := controlflow.Analyze(b.Program(b.Stmt(loop)))

		wantEnd(t, f, loop.Do, controlflow.ForcedReturn())
	})
}

func TestFor(t *testing.T) {
	t.Run("no test", func(t *testing.T) {
		b := asttest.New()
		loop := b.For(nil, nil, nil, b.Block())
		f := controlflow.Analyze(b.Program(b.Stmt(loop)))

		wantEnd(t, f, loop.For, controlflow.ForcedInfiniteLoop())
	})

	t.Run("no test with break", func(t *testing.T) {
		b := asttest.New()
		loop := b.For(nil, nil, nil, b.Block(b.Brk()))
		f := controlflow.Analyze(b.Program(b.Stmt(loop)))

		wantEnd(t, f, loop.For, controlflow.Continue())
	})

	t.Run("no test with return", func(t *testing.T) {
		b := asttest.New()
		loop := b.For(nil, nil, nil, b.Block(b.Ret(b.Num(1))))
		f := controlflow.Analyze(b.Program(b.Stmt(loop)))

		wantEnd(t, f, loop.For, controlflow.ForcedReturn())
	})

	t.Run("conditional", func(t *testing.T) {
		b := asttest.New()
		loop := b.For(nil, b.Ident("a"), nil, b.Block())
		f := controlflow.Analyze(b.Program(b.Stmt(loop)))

		wantEnd(t, f, loop.For, controlflow.Continue())
	})
}

func TestForInForOfPassThrough(t *testing.T) {
	b := asttest.New()
	forIn := b.ForIn(b.Var(token.Const, "k", nil), b.Ident("o"), b.Block(b.Ret(nil)))
	forOf := b.ForOf(b.Var(token.Const, "v", nil), b.Ident("xs"), b.Block(b.Throw(b.Num(1))))
	after := b.ExprStmt(b.Call(b.Ident("f")))
	f := controlflow.Analyze(b.Program(b.Stmt(forIn), b.Stmt(forOf), b.Stmt(after)))

	wantEnd(t, f, forIn.For, controlflow.Continue())
	wantEnd(t, f, forOf.For, controlflow.Continue())
	wantUnreachable(t, f, after.Idx0(), false)
}

func TestIf(t *testing.T) {
	t.Run("both branches return", func(t *testing.T) {
		b := asttest.New()
		ifs := b.IfElse(b.Ident("a"), b.Ret(b.Num(1)), b.Ret(b.Num(2)))
		after := b.ExprStmt(b.Call(b.Ident("f")))
		f := controlflow.Analyze(b.Program(b.Stmt(ifs), b.Stmt(after)))

		wantEnd(t, f, ifs.If, controlflow.ForcedReturn())
		wantUnreachable(t, f, after.Idx0(), true)
	})

	t.Run("return and throw merge", func(t *testing.T) {
		b := asttest.New()
		ifs := b.IfElse(b.Ident("a"), b.Ret(b.Num(1)), b.Throw(b.Num(2)))
		f := controlflow.Analyze(b.Program(b.Stmt(ifs)))

		wantEnd(t, f, ifs.If, controlflow.Forced(true, true, false))
	})

	t.Run("no alternate passes through", func(t *testing.T) {
		b := asttest.New()
		ifs := b.If(b.Ident("a"), b.Ret(b.Num(1)))
		after := b.ExprStmt(b.Call(b.Ident("f")))
		f := controlflow.Analyze(b.Program(b.Stmt(ifs), b.Stmt(after)))

		wantEnd(t, f, ifs.If, controlflow.Continue())
		wantUnreachable(t, f, after.Idx0(), false)
	})

	t.Run("break and return stop both ways", func(t *testing.T) {
		b := asttest.New()
		ifs := b.IfElse(b.Ident("b"), b.Brk(), b.Ret(nil))
		loop := b.While(b.Ident("a"), b.Block(ifs))
		f := controlflow.Analyze(b.Program(b.Stmt(loop)))

		wantEnd(t, f, ifs.If, controlflow.Break())
		wantEnd(t, f, loop.While, controlflow.Continue())
	})
}

func TestSwitch(t *testing.T) {
	t.Run("exhaustive", func(t *testing.T) {
		b := asttest.New()
		c1 := b.Case(b.Num(1), b.Ret(b.Num(1)))
		def := b.DefaultCase(b.Throw(b.Num(2)))
		sw := b.Switch(b.Ident("x"), c1, def)
		after := b.ExprStmt(b.Call(b.Ident("f")))
		f := controlflow.Analyze(b.Program(b.Stmt(sw), b.Stmt(after)))

		wantEnd(t, f, c1.Case, controlflow.ForcedReturn())
		wantEnd(t, f, def.Case, controlflow.ForcedThrow())
		wantEnd(t, f, sw.Switch, controlflow.Forced(true, true, false))
		wantUnreachable(t, f, after.Idx0(), true)
	})

	t.Run("all cases forced without default", func(t *testing.T) {
		b := asttest.New()
		c1 := b.Case(b.Num(1), b.Ret(b.Num(1)))
		sw := b.Switch(b.Ident("x"), c1)
		f := controlflow.Analyze(b.Program(b.Stmt(sw)))

		wantEnd(t, f, sw.Switch, controlflow.ForcedReturn())
	})

	t.Run("empty case falls through", func(t *testing.T) {
		b := asttest.New()
		c1 := b.Case(b.Num(1), b.Ret(b.Num(1)))
		c2 := b.Case(b.Num(2))
		sw := b.Switch(b.Ident("x"), c1, c2)
		after := b.ExprStmt(b.Call(b.Ident("f")))
		f := controlflow.Analyze(b.Program(b.Stmt(sw), b.Stmt(after)))

		wantEnd(t, f, c2.Case, controlflow.Continue())
		wantEnd(t, f, sw.Switch, controlflow.Continue())
		wantUnreachable(t, f, after.Idx0(), false)
	})

	t.Run("break case is not forced", func(t *testing.T) {
		b := asttest.New()
		c1 := b.Case(b.Num(1), b.Brk())
		def := b.DefaultCase(b.Ret(b.Num(1)))
		sw := b.Switch(b.Ident("x"), c1, def)
		f := controlflow.Analyze(b.Program(b.Stmt(sw)))

		wantEnd(t, f, c1.Case, controlflow.Break())
		wantEnd(t, f, def.Case, controlflow.ForcedReturn())
		wantEnd(t, f, sw.Switch, controlflow.Continue())
	})
}

func TestTry(t *testing.T) {
	t.Run("catch can swallow the exit", func(t *testing.T) {
		b := asttest.New()
		try := b.Try(b.Block(b.Ret(b.Num(1))), b.Catch(b.Ident("e"), b.Block()), nil)
		after := b.ExprStmt(b.Call(b.Ident("f")))
		f := controlflow.Analyze(b.Program(b.Stmt(try), b.Stmt(after)))

		wantEnd(t, f, try.Try, controlflow.Continue())
		wantUnreachable(t, f, after.Idx0(), false)
	})

	t.Run("catch consumes the throw", func(t *testing.T) {
		b := asttest.New()
		try := b.Try(
			b.Block(b.Throw(b.Num(1))),
			b.Catch(b.Ident("e"), b.Block(b.Ret(b.Num(2)))),
			nil,
		)
		after := b.ExprStmt(b.Call(b.Ident("f")))
		f := controlflow.Analyze(b.Program(b.Stmt(try), b.Stmt(after)))

		// The unconditional throw never escapes, so the statement only
		// returns.
		wantEnd(t, f, try.Try, controlflow.ForcedReturn())
		wantUnreachable(t, f, after.Idx0(), true)
	})

	t.Run("catch body unreachable when try cannot throw", func(t *testing.T) {
		b := asttest.New()
		call := b.ExprStmt(b.Call(b.Ident("f")))
		try := b.Try(b.Block(b.Ret(nil)), b.Catch(b.Ident("e"), b.Block(call)), nil)
		f := controlflow.Analyze(b.Program(b.Stmt(try)))

		wantEnd(t, f, try.Try, controlflow.ForcedReturn())
		wantUnreachable(t, f, call.Idx0(), true)
	})

	t.Run("forced finally wins", func(t *testing.T) {
		b := asttest.New()
		fin := b.Block(b.Ret(b.Num(1)))
		try := b.Try(
			b.Block(b.ExprStmt(b.Call(b.Ident("f")))),
			b.Catch(b.Ident("e"), b.Block()),
			fin,
		)
		after := b.ExprStmt(b.Call(b.Ident("g")))
		f := controlflow.Analyze(b.Program(b.Stmt(try), b.Stmt(after)))

		wantEnd(t, f, fin.LeftBrace, controlflow.ForcedReturn())
		wantEnd(t, f, try.Try, controlflow.ForcedReturn())
		wantUnreachable(t, f, after.Idx0(), true)
	})

	t.Run("forced try without catch", func(t *testing.T) {
		b := asttest.New()
		try := b.Try(b.Block(b.Ret(b.Num(1))), nil, b.Block())
		after := b.ExprStmt(b.Call(b.Ident("g")))
		f := controlflow.Analyze(b.Program(b.Stmt(try), b.Stmt(after)))

		wantEnd(t, f, try.Try, controlflow.ForcedReturn())
		wantUnreachable(t, f, after.Idx0(), true)
	})

	t.Run("plain finally passes through", func(t *testing.T) {
		b := asttest.New()
		try := b.Try(b.Block(b.ExprStmt(b.Call(b.Ident("f")))), nil, b.Block())
		after := b.ExprStmt(b.Call(b.Ident("g")))
		f := controlflow.Analyze(b.Program(b.Stmt(try), b.Stmt(after)))

		wantEnd(t, f, try.Try, controlflow.Continue())
		wantUnreachable(t, f, after.Idx0(), false)
	})
}

func TestLabelledBreak(t *testing.T) {
	t.Run("labelled block", func(t *testing.T) {
		b := asttest.New()
		brk := b.BrkL("out")
		label := b.Label("out", b.Block(brk))
		after := b.ExprStmt(b.Call(b.Ident("f")))
		f := controlflow.Analyze(b.Program(b.Stmt(label), b.Stmt(after)))

		wantEnd(t, f, brk.Idx, controlflow.Break())
		wantUnreachable(t, f, after.Idx0(), false)
	})

	t.Run("labelled loop", func(t *testing.T) {
		b := asttest.New()
		loop := b.While(b.Bool(true), b.Block(b.BrkL("out")))
		label := b.Label("out", loop)
		after := b.ExprStmt(b.Call(b.Ident("f")))
		f := controlflow.Analyze(b.Program(b.Stmt(label), b.Stmt(after)))

		wantEnd(t, f, loop.While, controlflow.Continue())
		wantUnreachable(t, f, after.Idx0(), false)
	})
}

func TestFunctionBodyEnds(t *testing.T) {
	t.Run("loop break then return", func(t *testing.T) {
		b := asttest.New()
		loopBody := b.Block(b.Brk())
		ret := b.Ret(b.Num(1))
		body := b.Block(b.While(b.Ident("a"), loopBody), ret)
		f := controlflow.Analyze(b.Program(b.Stmt(b.FnDecl("foo", body))))

		wantEnd(t, f, body.LeftBrace, controlflow.ForcedReturn())
		wantEnd(t, f, loopBody.LeftBrace, controlflow.Break())
		wantEnd(t, f, ret.Return, controlflow.ForcedReturn())
	})

	t.Run("infinite loop body returns", func(t *testing.T) {
		b := asttest.New()
		loopBody := b.Block(b.Ret(b.Num(1)))
		after := b.ExprStmt(b.Call(b.Ident("bar")))
		body := b.Block(b.While(b.Bool(true), loopBody), after)
		f := controlflow.Analyze(b.Program(b.Stmt(b.FnDecl("foo", body))))

		wantEnd(t, f, body.LeftBrace, controlflow.ForcedReturn())
		wantEnd(t, f, loopBody.LeftBrace, controlflow.ForcedReturn())
		wantUnreachable(t, f, after.Idx0(), true)
	})
}

func TestUnreachableThrowMergesForcedState(t *testing.T) {
	b := asttest.New()
	sw := b.Switch(b.Ident("x"),
		b.Case(b.Num(1), b.Ret(b.Num(0))),
		b.DefaultCase(b.Block(b.Ret(b.Num(0)))),
	)
	throw := b.Throw(b.Ident("err"))
	f := controlflow.Analyze(b.Program(b.Stmt(sw), b.Stmt(throw)))

	wantEnd(t, f, sw.Switch, controlflow.ForcedReturn())
	wantUnreachable(t, f, throw.Throw, true)
	wantEnd(t, f, throw.Throw, controlflow.Forced(true, true, false))
}

func TestDanglingBreakDoesNotPanic(t *testing.T) {
	b := asttest.New()
	brk := b.Brk()
	f := controlflow.Analyze(b.Program(b.Stmt(brk)))

	wantEnd(t, f, brk.Idx, controlflow.Break())
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	build := func() *ast.Program {
		b := asttest.New()
		loop := b.While(b.Ident("a"), b.Block(
			b.If(b.Ident("b"), b.Brk()),
			b.ExprStmt(b.Call(b.Ident("f"))),
		))
		try := b.Try(
			b.Block(b.Throw(b.Num(1))),
			b.Catch(b.Ident("e"), b.Block(b.Ret(b.Num(2)))),
			nil,
		)
		return b.Program(b.Stmt(loop), b.Stmt(try))
	}

	collect := func(f *controlflow.Facts) map[ast.Idx]controlflow.Metadata {
		out := make(map[ast.Idx]controlflow.Metadata)
		for _, lo := range f.Positions() {
			out[lo] = *f.MetaAt(lo)
		}
		return out
	}

	first := collect(controlflow.Analyze(build()))
	second := collect(controlflow.Analyze(build()))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("facts differ between runs (-first +second):\n%s", diff)
	}
}

func TestMetadataNilReceiver(t *testing.T) {
	var m *controlflow.Metadata
	if m.StopsExecution() {
		t.Error("nil metadata should not stop execution")
	}
	if !m.ContinuesExecution() {
		t.Error("nil metadata should continue execution")
	}

	f := controlflow.Analyze(asttest.New().Program())
	if got := f.MetaAt(12345); got != nil {
		t.Errorf("MetaAt on an unknown position = %+v, want nil", got)
	}
}
