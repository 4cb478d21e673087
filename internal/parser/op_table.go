package parser

import (
	"snowball/internal/ast"
	"snowball/internal/token"
)

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precAssignment     = 1 // =
	precLogicalOr      = 2 // ||
	precLogicalAnd     = 3 // &&
	precEquality       = 4 // == !=
	precComparison     = 5 // < <= > >=
	precAdditive       = 6 // + -
	precMultiplicative = 7 // * / %
	precCast           = 8 // as
)

// binaryPrec возвращает приоритет и правоассоциативность оператора,
// -1 если токен не бинарный оператор.
func binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.Assign:
		return precAssignment, true
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.EqEq, token.BangEq:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	case token.KwAs:
		return precCast, false
	default:
		return -1, false
	}
}

var binaryOps = map[token.Kind]ast.BinaryOp{
	token.Plus:    ast.OpAdd,
	token.Minus:   ast.OpSub,
	token.Star:    ast.OpMul,
	token.Slash:   ast.OpDiv,
	token.Percent: ast.OpMod,
	token.EqEq:    ast.OpEq,
	token.BangEq:  ast.OpNe,
	token.Lt:      ast.OpLt,
	token.LtEq:    ast.OpLe,
	token.Gt:      ast.OpGt,
	token.GtEq:    ast.OpGe,
	token.AndAnd:  ast.OpAnd,
	token.OrOr:    ast.OpOr,
}

// unaryOps - префиксные операторы; операнд кладётся в Lhs.
var unaryOps = map[token.Kind]ast.BinaryOp{
	token.Minus:    ast.OpSub,
	token.Plus:     ast.OpAdd,
	token.KwDelete: ast.OpDel,
}
