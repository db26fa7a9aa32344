package interp

import (
	"strconv"

	"github.com/reusee/myndra/ast"
)

// Value is a runtime value. The set of implementations is closed.
type Value interface {
	String() string
	TypeName() string
	value()
}

type (
	Int    int64
	Float  float64
	String string
	Bool   bool
)

var (
	_ Value = Int(0)
	_ Value = Float(0)
	_ Value = String("")
	_ Value = Bool(false)
)

func (Int) value()    {}
func (Float) value()  {}
func (String) value() {}
func (Bool) value()   {}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (f Float) String() string {
	return ast.FormatFloat(float64(f))
}

func (s String) String() string {
	return string(s)
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (Int) TypeName() string    { return "int" }
func (Float) TypeName() string  { return "float" }
func (String) TypeName() string { return "string" }
func (Bool) TypeName() string   { return "bool" }

// Truthy maps every value to a boolean: bools as themselves, numbers when nonzero, strings when
// non-empty.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Int:
		return v != 0
	case Float:
		return v != 0
	case String:
		return v != ""
	}
	return false
}

// FromLiteral converts a literal node to its runtime value.
func FromLiteral(expr ast.Expr) (Value, bool) {
	switch expr := expr.(type) {
	case *ast.IntegerLiteral:
		return Int(expr.Value), true
	case *ast.FloatLiteral:
		return Float(expr.Value), true
	case *ast.StringLiteral:
		return String(expr.Value), true
	case *ast.BooleanLiteral:
		return Bool(expr.Value), true
	}
	return nil, false
}
