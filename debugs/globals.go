package debugs

import (
	"github.com/reusee/myndra/interp"
)

// InterpreterGlobals exposes an interpreter's global scope and string built-ins to a tap.
// Helpers are underscore-prefixed and a script global of the same name wins.
// Built-in failures yield zero values.
func InterpreterGlobals(i *interp.Interpreter) map[string]any {
	ret := make(map[string]any)
	ret["_functions"] = i.Functions()
	ret["_length"] = func(s string) int64 {
		v, err := interp.Call("length", interp.String(s))
		if err != nil {
			return 0
		}
		return int64(v.(interp.Int))
	}
	ret["_substring"] = func(s string, start int64, n int64) string {
		v, err := interp.Call("substring", interp.String(s), interp.Int(start), interp.Int(n))
		if err != nil {
			return ""
		}
		return string(v.(interp.String))
	}
	for name, value := range i.Globals() {
		ret[name] = value
	}
	return ret
}
