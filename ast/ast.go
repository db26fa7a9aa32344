// Package ast defines the syntax tree produced by the parser.
//
// The node set is closed: Expr and Stmt carry unexported marker methods, so only this package
// can add variants, and consumers switch over the concrete types. Nodes never point back to
// their parents and are not shared between trees.
package ast

import (
	"github.com/reusee/myndra/lexer"
)

type Pos = lexer.Pos

type Node interface {
	// Position of the first token of the node.
	Position() Pos
	// String renders the node as source-like text.
	String() string
}

type Expr interface {
	Node
	exprNode()
}

type Stmt interface {
	Node
	stmtNode()
}

type Program struct {
	Stmts []Stmt
}

func (p *Program) Position() Pos {
	if len(p.Stmts) == 0 {
		return Pos{Line: 1, Column: 1}
	}
	return p.Stmts[0].Position()
}

// expressions

type IntegerLiteral struct {
	Pos   Pos
	Value int64
}

type FloatLiteral struct {
	Pos   Pos
	Value float64
}

type StringLiteral struct {
	Pos   Pos
	Value string
}

type BooleanLiteral struct {
	Pos   Pos
	Value bool
}

type Identifier struct {
	Pos  Pos
	Name string
}

type BinaryExpr struct {
	Pos   Pos
	Left  Expr
	Op    BinaryOp
	Right Expr
}

type UnaryExpr struct {
	Pos     Pos
	Op      UnaryOp
	Operand Expr
}

// CallExpr accepts any callee expression.
type CallExpr struct {
	Pos    Pos
	Callee Expr
	Args   []Expr
}

type IndexExpr struct {
	Pos   Pos
	Base  Expr
	Index Expr
}

type MemberExpr struct {
	Pos    Pos
	Base   Expr
	Member string
}

// ContextConditional is `Expr if context == "Context"`.
type ContextConditional struct {
	Pos     Pos
	Expr    Expr
	Context string
}

// statements

type ExprStmt struct {
	Pos  Pos
	Expr Expr
}

type VarDecl struct {
	Pos     Pos
	Name    string
	Type    string // empty when not annotated
	Init    Expr   // nil when absent
	Mutable bool
}

// BlockStmt introduces a lexical scope.
type BlockStmt struct {
	Pos   Pos
	Stmts []Stmt
}

type Param struct {
	Name string
	Type string
}

type FunctionDef struct {
	Pos        Pos
	Name       string
	Params     []Param
	ReturnType string
	Body       *BlockStmt
}

type ReturnStmt struct {
	Pos   Pos
	Value Expr
}

type IfStmt struct {
	Pos  Pos
	Cond Expr
	Then Stmt
	Else Stmt
}

type WhileStmt struct {
	Pos  Pos
	Cond Expr
	Body Stmt
}

// ForStmt iterates Var over the half-open range [Start, End).
type ForStmt struct {
	Pos   Pos
	Var   string
	Start Expr
	End   Expr
	Body  Stmt
}

func (n *IntegerLiteral) Position() Pos     { return n.Pos }
func (n *FloatLiteral) Position() Pos       { return n.Pos }
func (n *StringLiteral) Position() Pos      { return n.Pos }
func (n *BooleanLiteral) Position() Pos     { return n.Pos }
func (n *Identifier) Position() Pos         { return n.Pos }
func (n *BinaryExpr) Position() Pos         { return n.Pos }
func (n *UnaryExpr) Position() Pos          { return n.Pos }
func (n *CallExpr) Position() Pos           { return n.Pos }
func (n *IndexExpr) Position() Pos          { return n.Pos }
func (n *MemberExpr) Position() Pos         { return n.Pos }
func (n *ContextConditional) Position() Pos { return n.Pos }
func (n *ExprStmt) Position() Pos           { return n.Pos }
func (n *VarDecl) Position() Pos            { return n.Pos }
func (n *BlockStmt) Position() Pos          { return n.Pos }
func (n *FunctionDef) Position() Pos        { return n.Pos }
func (n *ReturnStmt) Position() Pos         { return n.Pos }
func (n *IfStmt) Position() Pos             { return n.Pos }
func (n *WhileStmt) Position() Pos          { return n.Pos }
func (n *ForStmt) Position() Pos            { return n.Pos }

func (*IntegerLiteral) exprNode()     {}
func (*FloatLiteral) exprNode()       {}
func (*StringLiteral) exprNode()      {}
func (*BooleanLiteral) exprNode()     {}
func (*Identifier) exprNode()         {}
func (*BinaryExpr) exprNode()         {}
func (*UnaryExpr) exprNode()          {}
func (*CallExpr) exprNode()           {}
func (*IndexExpr) exprNode()          {}
func (*MemberExpr) exprNode()         {}
func (*ContextConditional) exprNode() {}

func (*ExprStmt) stmtNode()    {}
func (*VarDecl) stmtNode()     {}
func (*BlockStmt) stmtNode()   {}
func (*FunctionDef) stmtNode() {}
func (*ReturnStmt) stmtNode()  {}
func (*IfStmt) stmtNode()      {}
func (*WhileStmt) stmtNode()   {}
func (*ForStmt) stmtNode()     {}
