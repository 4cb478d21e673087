package ast

import "fmt"

// BinaryOp enumerates operator tags. New, Del and Index mark the
// user-overloadable operations (construction, destruction, subscript).
type BinaryOp uint8

const (
	// Арифметические
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod

	// Сравнение
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe

	// Логические
	OpAnd
	OpOr

	// Перегружаемые
	OpNew
	OpDel
	OpIndex
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	case OpMod:
		return "Mod"
	case OpEq:
		return "Eq"
	case OpNe:
		return "Ne"
	case OpLt:
		return "Lt"
	case OpLe:
		return "Le"
	case OpGt:
		return "Gt"
	case OpGe:
		return "Ge"
	case OpAnd:
		return "And"
	case OpOr:
		return "Or"
	case OpNew:
		return "New"
	case OpDel:
		return "Del"
	case OpIndex:
		return "Index"
	default:
		panic(fmt.Sprintf("ast: unhandled BinaryOp %d", uint8(op)))
	}
}

// Symbol returns the source spelling of the operator.
func (op BinaryOp) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpNew:
		return "new"
	case OpDel:
		return "delete"
	case OpIndex:
		return "[]"
	default:
		panic(fmt.Sprintf("ast: unhandled BinaryOp %d", uint8(op)))
	}
}

// IsComparison reports whether op yields a boolean from two operands of the same type.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpAnd, OpOr, OpNew, OpDel, OpIndex:
		return false
	default:
		panic(fmt.Sprintf("ast: unhandled BinaryOp %d", uint8(op)))
	}
}
