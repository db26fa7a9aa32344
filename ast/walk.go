package ast

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children of node with w,
// followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {

	case *Program:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}

	case *IntegerLiteral, *FloatLiteral, *StringLiteral, *BooleanLiteral, *Identifier:

	case *BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *UnaryExpr:
		Walk(v, n.Operand)

	case *CallExpr:
		Walk(v, n.Callee)
		for _, arg := range n.Args {
			Walk(v, arg)
		}

	case *IndexExpr:
		Walk(v, n.Base)
		Walk(v, n.Index)

	case *MemberExpr:
		Walk(v, n.Base)

	case *ContextConditional:
		Walk(v, n.Expr)

	case *ExprStmt:
		Walk(v, n.Expr)

	case *VarDecl:
		if n.Init != nil {
			Walk(v, n.Init)
		}

	case *BlockStmt:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}

	case *FunctionDef:
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *ReturnStmt:
		if n.Value != nil {
			Walk(v, n.Value)
		}

	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}

	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)

	case *ForStmt:
		Walk(v, n.Start)
		Walk(v, n.End)
		Walk(v, n.Body)

	default:
		panic(fmt.Errorf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for each node in pre-order; f returning false prunes the subtree.
// f is called with nil after the children of a node are visited.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
