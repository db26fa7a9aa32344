package interp

import "maps"

// Env is a stack of scopes. The bottom frame holds globals and is never popped.
type Env struct {
	frames []map[string]Value
}

func NewEnv() *Env {
	return &Env{
		frames: []map[string]Value{
			{},
		},
	}
}

func (e *Env) Push() {
	e.frames = append(e.frames, nil)
}

func (e *Env) Pop() {
	if len(e.frames) == 1 {
		panic("pop of global scope")
	}
	e.frames[len(e.frames)-1] = nil
	e.frames = e.frames[:len(e.frames)-1]
}

// Depth returns the number of frames, globals included.
func (e *Env) Depth() int {
	return len(e.frames)
}

// Define binds name in the innermost frame, shadowing any outer binding.
func (e *Env) Define(name string, val Value) {
	frame := e.frames[len(e.frames)-1]
	if frame == nil {
		frame = make(map[string]Value)
		e.frames[len(e.frames)-1] = frame
	}
	frame[name] = val
}

func (e *Env) Get(name string) (Value, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign rebinds the innermost existing binding of name. It reports false if no frame defines it.
func (e *Env) Assign(name string, val Value) bool {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if _, ok := e.frames[i][name]; ok {
			e.frames[i][name] = val
			return true
		}
	}
	return false
}

// Globals returns a copy of the global frame.
func (e *Env) Globals() map[string]Value {
	return maps.Clone(e.frames[0])
}
