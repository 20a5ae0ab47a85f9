package token

import "strconv"

// Token is the set of token kinds a parsed syntax tree carries on its nodes:
// declaration keywords and the operators of assign/binary/unary/update
// expressions. Lexing itself happens upstream; this package only names the
// kinds the tree refers to.
type Token int

const (
	Undetermined Token = iota

	// Declaration keywords.
	Var
	Let
	Const

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	LogicalAnd // &&
	LogicalOr  // ||
	Coalesce   // ??

	Equal          // ==
	NotEqual       // !=
	StrictEqual    // ===
	StrictNotEqual // !==
	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=

	In
	InstanceOf

	Assign          // =
	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	QuotientAssign  // /=
	RemainderAssign // %=

	Not        // !
	BitwiseNot // ~
	Typeof
	Void
	Delete

	Increment // ++
	Decrement // --
)

var token2string = [...]string{
	Undetermined:       "UNDETERMINED",
	Var:                "var",
	Let:                "let",
	Const:              "const",
	Plus:               "+",
	Minus:              "-",
	Multiply:           "*",
	Exponent:           "**",
	Slash:              "/",
	Remainder:          "%",
	And:                "&",
	Or:                 "|",
	ExclusiveOr:        "^",
	ShiftLeft:          "<<",
	ShiftRight:         ">>",
	UnsignedShiftRight: ">>>",
	LogicalAnd:         "&&",
	LogicalOr:          "||",
	Coalesce:           "??",
	Equal:              "==",
	NotEqual:           "!=",
	StrictEqual:        "===",
	StrictNotEqual:     "!==",
	Less:               "<",
	Greater:            ">",
	LessOrEqual:        "<=",
	GreaterOrEqual:     ">=",
	In:                 "in",
	InstanceOf:         "instanceof",
	Assign:             "=",
	AddAssign:          "+=",
	SubtractAssign:     "-=",
	MultiplyAssign:     "*=",
	QuotientAssign:     "/=",
	RemainderAssign:    "%=",
	Not:                "!",
	BitwiseNot:         "~",
	Typeof:             "typeof",
	Void:               "void",
	Delete:             "delete",
	Increment:          "++",
	Decrement:          "--",
}

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t >= 0 && int(t) < len(token2string) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}
