package ast

import "fmt"

type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpAssign
)

var binaryOpTexts = [...]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpMod:    "%",
	OpEq:     "==",
	OpNe:     "!=",
	OpLt:     "<",
	OpLe:     "<=",
	OpGt:     ">",
	OpGe:     ">=",
	OpAnd:    "and",
	OpOr:     "or",
	OpAssign: "=",
}

func (o BinaryOp) String() string {
	if int(o) < len(binaryOpTexts) {
		return binaryOpTexts[o]
	}
	return fmt.Sprintf("BinaryOp(%d)", uint8(o))
}

type UnaryOp uint8

const (
	OpNot UnaryOp = iota
	OpNeg
	OpPlus
)

func (o UnaryOp) String() string {
	switch o {
	case OpNot:
		return "!"
	case OpNeg:
		return "-"
	case OpPlus:
		return "+"
	}
	return fmt.Sprintf("UnaryOp(%d)", uint8(o))
}
