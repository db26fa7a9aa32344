package ast

import (
	"strconv"
	"strings"
)

// FormatFloat renders a float so that it lexes back as a FLOAT token.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// Quote renders a string literal using only the escapes the lexer understands.
func Quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

func (n *IntegerLiteral) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (n *FloatLiteral) String() string {
	return FormatFloat(n.Value)
}

func (n *StringLiteral) String() string {
	return Quote(n.Value)
}

func (n *BooleanLiteral) String() string {
	return strconv.FormatBool(n.Value)
}

func (n *Identifier) String() string {
	return n.Name
}

func (n *BinaryExpr) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

func (n *UnaryExpr) String() string {
	return "(" + n.Op.String() + n.Operand.String() + ")"
}

func (n *CallExpr) String() string {
	var sb strings.Builder
	sb.WriteString(n.Callee.String())
	sb.WriteString("(")
	for i, arg := range n.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (n *IndexExpr) String() string {
	return n.Base.String() + "[" + n.Index.String() + "]"
}

func (n *MemberExpr) String() string {
	return n.Base.String() + "." + n.Member
}

func (n *ContextConditional) String() string {
	return n.Expr.String() + " if context == " + Quote(n.Context)
}

func (n *ExprStmt) String() string {
	return n.Expr.String() + ";"
}

func (n *VarDecl) String() string {
	var sb strings.Builder
	sb.WriteString("let ")
	if n.Mutable {
		sb.WriteString("mut ")
	}
	sb.WriteString(n.Name)
	if n.Type != "" {
		sb.WriteString(": ")
		sb.WriteString(n.Type)
	}
	if n.Init != nil {
		sb.WriteString(" = ")
		sb.WriteString(n.Init.String())
	}
	sb.WriteString(";")
	return sb.String()
}

func (n *BlockStmt) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range n.Stmts {
		for line := range strings.Lines(stmt.String()) {
			sb.WriteString("  ")
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("}")
	return sb.String()
}

func (n *FunctionDef) String() string {
	var sb strings.Builder
	sb.WriteString("fn ")
	sb.WriteString(n.Name)
	sb.WriteString("(")
	for i, param := range n.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.Name)
		sb.WriteString(": ")
		sb.WriteString(param.Type)
	}
	sb.WriteString(")")
	if n.ReturnType != "" {
		sb.WriteString(" -> ")
		sb.WriteString(n.ReturnType)
	}
	sb.WriteString(" ")
	if n.Body != nil {
		sb.WriteString(n.Body.String())
	} else {
		sb.WriteString("{\n}")
	}
	return sb.String()
}

func (n *ReturnStmt) String() string {
	if n.Value == nil {
		return "return;"
	}
	return "return " + n.Value.String() + ";"
}

func (n *IfStmt) String() string {
	s := "if " + n.Cond.String() + " " + n.Then.String()
	if n.Else != nil {
		s += " else " + n.Else.String()
	}
	return s
}

func (n *WhileStmt) String() string {
	return "while " + n.Cond.String() + " " + n.Body.String()
}

func (n *ForStmt) String() string {
	return "for " + n.Var + " in " + n.Start.String() + ".." + n.End.String() + " " + n.Body.String()
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, stmt := range p.Stmts {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
