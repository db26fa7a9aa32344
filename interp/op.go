package interp

import (
	"math"

	"github.com/reusee/myndra/ast"
)

var opNames = map[ast.BinaryOp]string{
	ast.OpAdd: "addition",
	ast.OpSub: "subtraction",
	ast.OpMul: "multiplication",
	ast.OpDiv: "division",
	ast.OpMod: "modulo",
	ast.OpLt:  "comparison",
	ast.OpLe:  "comparison",
	ast.OpGt:  "comparison",
	ast.OpGe:  "comparison",
}

// binaryOp applies op to two evaluated operands. There is no implicit int/float promotion.
func binaryOp(op ast.BinaryOp, left, right Value) (Value, error) {
	switch op {

	case ast.OpEq:
		return Bool(left == right), nil
	case ast.OpNe:
		return Bool(left != right), nil

	case ast.OpAnd:
		return Bool(Truthy(left) && Truthy(right)), nil
	case ast.OpOr:
		return Bool(Truthy(left) || Truthy(right)), nil

	case ast.OpAdd:
		if l, ok := left.(String); ok {
			if r, ok := right.(String); ok {
				return l + r, nil
			}
		}
		fallthrough

	case ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod,
		ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		switch l := left.(type) {
		case Int:
			if r, ok := right.(Int); ok {
				return arith(op, l, r)
			}
		case Float:
			if r, ok := right.(Float); ok {
				return arith(op, l, r)
			}
		}
		return nil, errorf(ErrType, "Invalid operands for %s: %s and %s",
			opNames[op], left.TypeName(), right.TypeName())

	}

	return nil, errorf(ErrNotImplemented, "Unsupported binary operator %s", op)
}

func arith[T Int | Float](op ast.BinaryOp, l, r T) (Value, error) {
	switch op {
	case ast.OpAdd:
		return Value(l + r), nil
	case ast.OpSub:
		return Value(l - r), nil
	case ast.OpMul:
		return Value(l * r), nil
	case ast.OpDiv:
		if r == 0 {
			return nil, errorf(ErrDivisionByZero, "Division by zero")
		}
		return Value(l / r), nil
	case ast.OpMod:
		if r == 0 {
			return nil, errorf(ErrDivisionByZero, "Division by zero")
		}
		switch l := any(l).(type) {
		case Int:
			return l % any(r).(Int), nil
		case Float:
			return Float(math.Mod(float64(l), float64(any(r).(Float)))), nil
		}
	case ast.OpLt:
		return Bool(l < r), nil
	case ast.OpLe:
		return Bool(l <= r), nil
	case ast.OpGt:
		return Bool(l > r), nil
	case ast.OpGe:
		return Bool(l >= r), nil
	}
	return nil, errorf(ErrNotImplemented, "Unsupported binary operator %s", op)
}

func unaryOp(op ast.UnaryOp, operand Value) (Value, error) {
	switch op {

	case ast.OpNot:
		return Bool(!Truthy(operand)), nil

	case ast.OpNeg:
		switch v := operand.(type) {
		case Int:
			return -v, nil
		case Float:
			return -v, nil
		}
		return nil, errorf(ErrType, "Invalid operand for negation: %s", operand.TypeName())

	case ast.OpPlus:
		switch operand.(type) {
		case Int, Float:
			return operand, nil
		}
		return nil, errorf(ErrType, "Invalid operand for unary plus: %s", operand.TypeName())

	}

	return nil, errorf(ErrNotImplemented, "Unsupported unary operator %s", op)
}
