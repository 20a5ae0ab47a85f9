package ast

type (
	ImportDeclaration struct {
		Import     Idx
		Specifiers []ImportSpecifier
		Source     *StringLiteral
	}

	ImportSpecifier struct {
		Spec ImportSpec
	}

	ImportSpec interface {
		Node
		VisitableNode
		_importSpecifier()
	}

	ImportDefaultSpecifier struct {
		Local *Identifier
	}

	ImportNamespaceSpecifier struct {
		Star  Idx
		Local *Identifier
	}

	ImportNamedSpecifier struct {
		Imported *Identifier
		// Local is nil when the import carries no "as" alias; the
		// imported name is then the bound local name.
		Local *Identifier `optional:"true"`
	}
)

// LocalName returns the identifier bound in the importing module.
func (n *ImportNamedSpecifier) LocalName() *Identifier {
	if n.Local != nil {
		return n.Local
	}
	return n.Imported
}

func (*ImportDefaultSpecifier) _importSpecifier()   {}
func (*ImportNamespaceSpecifier) _importSpecifier() {}
func (*ImportNamedSpecifier) _importSpecifier()     {}
