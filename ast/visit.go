package ast

type VisitableNode interface {
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

type Visitor interface {
	VisitProgram(node *Program)
	VisitStatement(node *Statement)
	VisitStatements(node *Statements)
	VisitExpression(node *Expression)
	VisitExpressions(node *Expressions)

	VisitBadStatement(node *BadStatement)
	VisitBlockStatement(node *BlockStatement)
	VisitBreakStatement(node *BreakStatement)
	VisitCaseStatement(node *CaseStatement)
	VisitCatchStatement(node *CatchStatement)
	VisitContinueStatement(node *ContinueStatement)
	VisitDebuggerStatement(node *DebuggerStatement)
	VisitDoWhileStatement(node *DoWhileStatement)
	VisitEmptyStatement(node *EmptyStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitForInStatement(node *ForInStatement)
	VisitForOfStatement(node *ForOfStatement)
	VisitForStatement(node *ForStatement)
	VisitIfStatement(node *IfStatement)
	VisitLabelledStatement(node *LabelledStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitSwitchStatement(node *SwitchStatement)
	VisitThrowStatement(node *ThrowStatement)
	VisitTryStatement(node *TryStatement)
	VisitWhileStatement(node *WhileStatement)
	VisitWithStatement(node *WithStatement)

	VisitVariableDeclaration(node *VariableDeclaration)
	VisitFunctionDeclaration(node *FunctionDeclaration)
	VisitClassDeclaration(node *ClassDeclaration)
	VisitImportDeclaration(node *ImportDeclaration)
	VisitBinding(node *VariableDeclarator)
	VisitParameterList(node *ParameterList)

	VisitIdentifier(node *Identifier)
	VisitPrivateIdentifier(node *PrivateIdentifier)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitNullLiteral(node *NullLiteral)
	VisitNumberLiteral(node *NumberLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitRegExpLiteral(node *RegExpLiteral)
	VisitTemplateLiteral(node *TemplateLiteral)
	VisitThisExpression(node *ThisExpression)
	VisitSuperExpression(node *SuperExpression)

	VisitArrayLiteral(node *ArrayLiteral)
	VisitObjectLiteral(node *ObjectLiteral)
	VisitFunctionLiteral(node *FunctionLiteral)
	VisitClassLiteral(node *ClassLiteral)
	VisitArrowFunctionLiteral(node *ArrowFunctionLiteral)

	VisitAssignExpression(node *AssignExpression)
	VisitBinaryExpression(node *BinaryExpression)
	VisitCallExpression(node *CallExpression)
	VisitNewExpression(node *NewExpression)
	VisitConditionalExpression(node *ConditionalExpression)
	VisitMemberExpression(node *MemberExpression)
	VisitUnaryExpression(node *UnaryExpression)
	VisitUpdateExpression(node *UpdateExpression)
	VisitSequenceExpression(node *SequenceExpression)
	VisitSpreadElement(node *SpreadElement)
	VisitYieldExpression(node *YieldExpression)
	VisitAwaitExpression(node *AwaitExpression)
	VisitArrayPattern(node *ArrayPattern)
	VisitObjectPattern(node *ObjectPattern)
	VisitInvalidExpression(node *InvalidExpression)

	VisitPropertyShort(node *PropertyShort)
	VisitPropertyKeyed(node *PropertyKeyed)

	VisitFieldDefinition(node *FieldDefinition)
	VisitMethodDefinition(node *MethodDefinition)
	VisitClassStaticBlock(node *ClassStaticBlock)

	VisitImportDefaultSpecifier(node *ImportDefaultSpecifier)
	VisitImportNamespaceSpecifier(node *ImportNamespaceSpecifier)
	VisitImportNamedSpecifier(node *ImportNamedSpecifier)
}

// NoopVisitor visits every child of every node and does nothing else.
// Embedders set V to the outermost visitor so their overrides are reached
// during recursion.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(node *Program)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatement(node *Statement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatements(node *Statements)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpression(node *Expression)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressions(node *Expressions) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitBadStatement(node *BadStatement)             { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBlockStatement(node *BlockStatement)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBreakStatement(node *BreakStatement)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCaseStatement(node *CaseStatement)           { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCatchStatement(node *CatchStatement)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitContinueStatement(node *ContinueStatement)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitDebuggerStatement(node *DebuggerStatement)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitDoWhileStatement(node *DoWhileStatement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitEmptyStatement(node *EmptyStatement)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressionStatement(node *ExpressionStatement) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitForInStatement(node *ForInStatement)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForOfStatement(node *ForOfStatement)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForStatement(node *ForStatement)           { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIfStatement(node *IfStatement)             { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitLabelledStatement(node *LabelledStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitReturnStatement(node *ReturnStatement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSwitchStatement(node *SwitchStatement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThrowStatement(node *ThrowStatement)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTryStatement(node *TryStatement)           { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitWhileStatement(node *WhileStatement)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitWithStatement(node *WithStatement)         { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitVariableDeclaration(node *VariableDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitFunctionDeclaration(node *FunctionDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitClassDeclaration(node *ClassDeclaration) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitImportDeclaration(node *ImportDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitBinding(node *VariableDeclarator)  { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitParameterList(node *ParameterList) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitIdentifier(node *Identifier)               { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPrivateIdentifier(node *PrivateIdentifier) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBooleanLiteral(node *BooleanLiteral)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNullLiteral(node *NullLiteral)             { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNumberLiteral(node *NumberLiteral)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStringLiteral(node *StringLiteral)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitRegExpLiteral(node *RegExpLiteral)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTemplateLiteral(node *TemplateLiteral)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThisExpression(node *ThisExpression)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSuperExpression(node *SuperExpression)     { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitArrayLiteral(node *ArrayLiteral)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectLiteral(node *ObjectLiteral)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionLiteral(node *FunctionLiteral) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassLiteral(node *ClassLiteral)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrowFunctionLiteral(node *ArrowFunctionLiteral) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitAssignExpression(node *AssignExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinaryExpression(node *BinaryExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCallExpression(node *CallExpression)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNewExpression(node *NewExpression)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConditionalExpression(node *ConditionalExpression) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitMemberExpression(node *MemberExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUnaryExpression(node *UnaryExpression)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUpdateExpression(node *UpdateExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSequenceExpression(node *SequenceExpression) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitSpreadElement(node *SpreadElement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitYieldExpression(node *YieldExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAwaitExpression(node *AwaitExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrayPattern(node *ArrayPattern)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectPattern(node *ObjectPattern)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitInvalidExpression(node *InvalidExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitPropertyShort(node *PropertyShort) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyKeyed(node *PropertyKeyed) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitFieldDefinition(node *FieldDefinition)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMethodDefinition(node *MethodDefinition) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassStaticBlock(node *ClassStaticBlock) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitImportDefaultSpecifier(node *ImportDefaultSpecifier) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitImportNamespaceSpecifier(node *ImportNamespaceSpecifier) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitImportNamedSpecifier(node *ImportNamedSpecifier) {
	node.VisitChildrenWith(nv.V)
}

func (n *Program) VisitWith(v Visitor) { v.VisitProgram(n) }

func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *Statement) VisitWith(v Visitor) { v.VisitStatement(n) }

func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *Statements) VisitWith(v Visitor) { v.VisitStatements(n) }

func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitStatement(&(*n)[i])
	}
}

func (n *Expression) VisitWith(v Visitor) { v.VisitExpression(n) }

func (n *Expression) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *Expressions) VisitWith(v Visitor) { v.VisitExpressions(n) }

func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitExpression(&(*n)[i])
	}
}

func (n *BadStatement) VisitWith(v Visitor)         { v.VisitBadStatement(n) }
func (n *BadStatement) VisitChildrenWith(v Visitor) {}

func (n *BlockStatement) VisitWith(v Visitor) { v.VisitBlockStatement(n) }

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *BreakStatement) VisitWith(v Visitor) { v.VisitBreakStatement(n) }

func (n *BreakStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *CaseStatement) VisitWith(v Visitor) { v.VisitCaseStatement(n) }

func (n *CaseStatement) VisitChildrenWith(v Visitor) {
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	for i := range n.Consequent {
		n.Consequent[i].VisitWith(v)
	}
}

func (n *CatchStatement) VisitWith(v Visitor) { v.VisitCatchStatement(n) }

func (n *CatchStatement) VisitChildrenWith(v Visitor) {
	if n.Parameter != nil && n.Parameter.Target != nil {
		n.Parameter.Target.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ContinueStatement) VisitWith(v Visitor) { v.VisitContinueStatement(n) }

func (n *ContinueStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *DebuggerStatement) VisitWith(v Visitor)         { v.VisitDebuggerStatement(n) }
func (n *DebuggerStatement) VisitChildrenWith(v Visitor) {}

func (n *DoWhileStatement) VisitWith(v Visitor) { v.VisitDoWhileStatement(n) }

func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	n.Test.VisitWith(v)
}

func (n *EmptyStatement) VisitWith(v Visitor)         { v.VisitEmptyStatement(n) }
func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitWith(v Visitor) { v.VisitExpressionStatement(n) }

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *ForInStatement) VisitWith(v Visitor) { v.VisitForInStatement(n) }

func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	if n.Into != nil && n.Into.Into != nil {
		n.Into.Into.VisitWith(v)
	}
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForOfStatement) VisitWith(v Visitor) { v.VisitForOfStatement(n) }

func (n *ForOfStatement) VisitChildrenWith(v Visitor) {
	if n.Into != nil && n.Into.Into != nil {
		n.Into.Into.VisitWith(v)
	}
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForStatement) VisitWith(v Visitor) { v.VisitForStatement(n) }

func (n *ForStatement) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil && n.Initializer.Initializer != nil {
		n.Initializer.Initializer.VisitWith(v)
	}
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	if n.Update != nil {
		n.Update.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *IfStatement) VisitWith(v Visitor) { v.VisitIfStatement(n) }

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *LabelledStatement) VisitWith(v Visitor) { v.VisitLabelledStatement(n) }

func (n *LabelledStatement) VisitChildrenWith(v Visitor) {
	n.Label.VisitWith(v)
	n.Statement.VisitWith(v)
}

func (n *ReturnStatement) VisitWith(v Visitor) { v.VisitReturnStatement(n) }

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *SwitchStatement) VisitWith(v Visitor) { v.VisitSwitchStatement(n) }

func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	n.Discriminant.VisitWith(v)
	for i := range n.Body {
		n.Body[i].VisitWith(v)
	}
}

func (n *ThrowStatement) VisitWith(v Visitor) { v.VisitThrowStatement(n) }

func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *TryStatement) VisitWith(v Visitor) { v.VisitTryStatement(n) }

func (n *TryStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	if n.Catch != nil {
		n.Catch.VisitWith(v)
	}
	if n.Finally != nil {
		n.Finally.VisitWith(v)
	}
}

func (n *WhileStatement) VisitWith(v Visitor) { v.VisitWhileStatement(n) }

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *WithStatement) VisitWith(v Visitor) { v.VisitWithStatement(n) }

func (n *WithStatement) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *FunctionDeclaration) VisitWith(v Visitor) { v.VisitFunctionDeclaration(n) }

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *ClassDeclaration) VisitWith(v Visitor) { v.VisitClassDeclaration(n) }

func (n *ClassDeclaration) VisitChildrenWith(v Visitor) {
	n.Class.VisitWith(v)
}

func (n *ImportDeclaration) VisitWith(v Visitor) { v.VisitImportDeclaration(n) }

func (n *ImportDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.Specifiers {
		if n.Specifiers[i].Spec != nil {
			n.Specifiers[i].Spec.VisitWith(v)
		}
	}
	if n.Source != nil {
		n.Source.VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitWith(v Visitor) { v.VisitBinding(n) }

func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
	if n.Target != nil && n.Target.Target != nil {
		n.Target.Target.VisitWith(v)
	}
}

func (n *ParameterList) VisitWith(v Visitor) { v.VisitParameterList(n) }

func (n *ParameterList) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *Identifier) VisitWith(v Visitor)         { v.VisitIdentifier(n) }
func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *PrivateIdentifier) VisitWith(v Visitor) { v.VisitPrivateIdentifier(n) }

func (n *PrivateIdentifier) VisitChildrenWith(v Visitor) {
	n.Identifier.VisitWith(v)
}

func (n *BooleanLiteral) VisitWith(v Visitor)         { v.VisitBooleanLiteral(n) }
func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}

func (n *NullLiteral) VisitWith(v Visitor)         { v.VisitNullLiteral(n) }
func (n *NullLiteral) VisitChildrenWith(v Visitor) {}

func (n *NumberLiteral) VisitWith(v Visitor)         { v.VisitNumberLiteral(n) }
func (n *NumberLiteral) VisitChildrenWith(v Visitor) {}

func (n *StringLiteral) VisitWith(v Visitor)         { v.VisitStringLiteral(n) }
func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *RegExpLiteral) VisitWith(v Visitor)         { v.VisitRegExpLiteral(n) }
func (n *RegExpLiteral) VisitChildrenWith(v Visitor) {}

func (n *TemplateLiteral) VisitWith(v Visitor) { v.VisitTemplateLiteral(n) }

func (n *TemplateLiteral) VisitChildrenWith(v Visitor) {
	if n.Tag != nil {
		n.Tag.VisitWith(v)
	}
	n.Expressions.VisitWith(v)
}

func (n *ThisExpression) VisitWith(v Visitor)         { v.VisitThisExpression(n) }
func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *SuperExpression) VisitWith(v Visitor)         { v.VisitSuperExpression(n) }
func (n *SuperExpression) VisitChildrenWith(v Visitor) {}

func (n *ArrayLiteral) VisitWith(v Visitor) { v.VisitArrayLiteral(n) }

func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *ObjectLiteral) VisitWith(v Visitor) { v.VisitObjectLiteral(n) }

func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Value {
		if n.Value[i].Prop != nil {
			n.Value[i].Prop.VisitWith(v)
		}
	}
}

func (n *FunctionLiteral) VisitWith(v Visitor) { v.VisitFunctionLiteral(n) }

func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ClassLiteral) VisitWith(v Visitor) { v.VisitClassLiteral(n) }

func (n *ClassLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(v)
	}
	for i := range n.Body {
		if n.Body[i].Element != nil {
			n.Body[i].Element.VisitWith(v)
		}
	}
}

func (n *ArrowFunctionLiteral) VisitWith(v Visitor) { v.VisitArrowFunctionLiteral(n) }

func (n *ArrowFunctionLiteral) VisitChildrenWith(v Visitor) {
	n.ParameterList.VisitWith(v)
	if n.Body != nil && n.Body.Body != nil {
		n.Body.Body.VisitWith(v)
	}
}

func (n *AssignExpression) VisitWith(v Visitor) { v.VisitAssignExpression(n) }

func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BinaryExpression) VisitWith(v Visitor) { v.VisitBinaryExpression(n) }

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *CallExpression) VisitWith(v Visitor) { v.VisitCallExpression(n) }

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *NewExpression) VisitWith(v Visitor) { v.VisitNewExpression(n) }

func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *ConditionalExpression) VisitWith(v Visitor) { v.VisitConditionalExpression(n) }

func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *MemberExpression) VisitWith(v Visitor) { v.VisitMemberExpression(n) }

func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *UnaryExpression) VisitWith(v Visitor) { v.VisitUnaryExpression(n) }

func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UpdateExpression) VisitWith(v Visitor) { v.VisitUpdateExpression(n) }

func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *SequenceExpression) VisitWith(v Visitor) { v.VisitSequenceExpression(n) }

func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	n.Sequence.VisitWith(v)
}

func (n *SpreadElement) VisitWith(v Visitor) { v.VisitSpreadElement(n) }

func (n *SpreadElement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *YieldExpression) VisitWith(v Visitor) { v.VisitYieldExpression(n) }

func (n *YieldExpression) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *AwaitExpression) VisitWith(v Visitor) { v.VisitAwaitExpression(n) }

func (n *AwaitExpression) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *ArrayPattern) VisitWith(v Visitor) { v.VisitArrayPattern(n) }

func (n *ArrayPattern) VisitChildrenWith(v Visitor) {
	n.Elements.VisitWith(v)
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *ObjectPattern) VisitWith(v Visitor) { v.VisitObjectPattern(n) }

func (n *ObjectPattern) VisitChildrenWith(v Visitor) {
	for i := range n.Properties {
		if n.Properties[i].Prop != nil {
			n.Properties[i].Prop.VisitWith(v)
		}
	}
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *InvalidExpression) VisitWith(v Visitor)         { v.VisitInvalidExpression(n) }
func (n *InvalidExpression) VisitChildrenWith(v Visitor) {}

func (n *PropertyShort) VisitWith(v Visitor) { v.VisitPropertyShort(n) }

func (n *PropertyShort) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *PropertyKeyed) VisitWith(v Visitor) { v.VisitPropertyKeyed(n) }

func (n *PropertyKeyed) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *FieldDefinition) VisitWith(v Visitor) { v.VisitFieldDefinition(n) }

func (n *FieldDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *MethodDefinition) VisitWith(v Visitor) { v.VisitMethodDefinition(n) }

func (n *MethodDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ClassStaticBlock) VisitWith(v Visitor) { v.VisitClassStaticBlock(n) }

func (n *ClassStaticBlock) VisitChildrenWith(v Visitor) {
	n.Block.VisitWith(v)
}

func (n *ImportDefaultSpecifier) VisitWith(v Visitor) { v.VisitImportDefaultSpecifier(n) }

func (n *ImportDefaultSpecifier) VisitChildrenWith(v Visitor) {
	n.Local.VisitWith(v)
}

func (n *ImportNamespaceSpecifier) VisitWith(v Visitor) { v.VisitImportNamespaceSpecifier(n) }

func (n *ImportNamespaceSpecifier) VisitChildrenWith(v Visitor) {
	n.Local.VisitWith(v)
}

func (n *ImportNamedSpecifier) VisitWith(v Visitor) { v.VisitImportNamedSpecifier(n) }

func (n *ImportNamedSpecifier) VisitChildrenWith(v Visitor) {
	n.Imported.VisitWith(v)
	if n.Local != nil {
		n.Local.VisitWith(v)
	}
}
