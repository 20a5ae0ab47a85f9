// Package scopes builds the lexical scope tree of a program and classifies
// every declared name.
package scopes

import (
	"golang.org/x/exp/slices"

	"github.com/ecmalint/ecmalint/ast"
)

type ScopeKind int

const (
	ScopeKindGlobal ScopeKind = iota
	ScopeKindFunction
	ScopeKindArrow
	ScopeKindBlock
	ScopeKindLoop
	ScopeKindClass
	ScopeKindSwitch
	ScopeKindWith
	ScopeKindCatch
)

var scopeKindNames = [...]string{
	ScopeKindGlobal:   "global",
	ScopeKindFunction: "function",
	ScopeKindArrow:    "arrow",
	ScopeKindBlock:    "block",
	ScopeKindLoop:     "loop",
	ScopeKindClass:    "class",
	ScopeKindSwitch:   "switch",
	ScopeKindWith:     "with",
	ScopeKindCatch:    "catch",
}

func (k ScopeKind) String() string {
	if k >= 0 && int(k) < len(scopeKindNames) {
		return scopeKindNames[k]
	}
	return "unknown"
}

type BindingKind int

const (
	BindingKindVar BindingKind = iota
	BindingKindLet
	BindingKindConst
	BindingKindFunction
	BindingKindClass
	BindingKindParam
	BindingKindCatchClause
	BindingKindImport
)

var bindingKindNames = [...]string{
	BindingKindVar:         "var",
	BindingKindLet:         "let",
	BindingKindConst:       "const",
	BindingKindFunction:    "function",
	BindingKindClass:       "class",
	BindingKindParam:       "param",
	BindingKindCatchClause: "catch",
	BindingKindImport:      "import",
}

func (k BindingKind) String() string {
	if k >= 0 && int(k) < len(bindingKindNames) {
		return bindingKindNames[k]
	}
	return "unknown"
}

// Binding is a declared name in a particular scope.
type Binding struct {
	name  string
	kind  BindingKind
	scope *Scope
}

func (b *Binding) Name() string      { return b.name }
func (b *Binding) Kind() BindingKind { return b.kind }
func (b *Binding) Scope() *Scope     { return b.scope }

// Scope is a node in the lexical scope tree.
type Scope struct {
	parent   *Scope
	kind     ScopeKind
	children []*Scope
	bindings map[string]*Binding
	names    []string
	path     []ScopeKind
}

func (s *Scope) Kind() ScopeKind    { return s.kind }
func (s *Scope) Parent() *Scope     { return s.parent }
func (s *Scope) Children() []*Scope { return s.children }

// Path returns the kinds of every ancestor of the scope, outermost first.
// The root scope has an empty path.
func (s *Scope) Path() []ScopeKind { return slices.Clone(s.path) }

// Bindings returns the scope's own bindings in declaration order.
func (s *Scope) Bindings() []*Binding {
	out := make([]*Binding, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.bindings[name])
	}
	return out
}

// Binding returns the scope's own binding for name, or nil.
func (s *Scope) Binding(name string) *Binding { return s.bindings[name] }

// ScopeTree is the result of an analysis.
type ScopeTree struct {
	root   *Scope
	byName map[string][]*Binding
	occ    map[ast.Idx]*Scope
}

func (t *ScopeTree) Root() *Scope { return t.root }

// BindingsNamed returns every binding of name anywhere in the program, in
// declaration order.
func (t *ScopeTree) BindingsNamed(name string) []*Binding {
	return slices.Clone(t.byName[name])
}

// ScopeOf returns the scope enclosing the identifier occurrence at lo, or
// nil when no identifier starts there.
func (t *ScopeTree) ScopeOf(lo ast.Idx) *Scope { return t.occ[lo] }

// LookupBinding resolves an identifier occurrence to the binding it refers
// to, walking outward from the occurrence's scope. It returns nil for free
// names.
func (t *ScopeTree) LookupBinding(id *ast.Identifier) *Binding {
	for s := t.occ[id.Idx]; s != nil; s = s.parent {
		if b := s.bindings[id.Name]; b != nil {
			return b
		}
	}
	return nil
}

func (t *ScopeTree) newScope(parent *Scope, kind ScopeKind) *Scope {
	s := &Scope{
		parent:   parent,
		kind:     kind,
		bindings: make(map[string]*Binding),
	}
	if parent != nil {
		s.path = append(slices.Clone(parent.path), parent.kind)
		parent.children = append(parent.children, s)
	}
	return s
}

// declare adds a binding to s. Redeclaring a name within the same scope
// collapses to a single binding carrying the latest kind.
func (t *ScopeTree) declare(s *Scope, name string, kind BindingKind) *Binding {
	if b := s.bindings[name]; b != nil {
		b.kind = kind
		return b
	}
	b := &Binding{name: name, kind: kind, scope: s}
	s.bindings[name] = b
	s.names = append(s.names, name)
	t.byName[name] = append(t.byName[name], b)
	return b
}

// Analyze builds the scope tree for the whole program.
func Analyze(p *ast.Program) *ScopeTree {
	t := &ScopeTree{
		byName: make(map[string][]*Binding),
		occ:    make(map[ast.Idx]*Scope),
	}
	t.root = t.newScope(nil, ScopeKindGlobal)

	a := &analyzer{tree: t, current: t.root}
	a.V = a
	p.VisitWith(a)
	return t
}
