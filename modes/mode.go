package modes

import "fmt"

type Mode uint8

const (
	ModeDevelopment Mode = iota + 1
	ModeProduction
	ModeTest
)

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	case ModeProduction:
		return "production"
	case ModeTest:
		return "test"
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ContextName is the execution context label used when nothing else selects one.
func (m Mode) ContextName() string {
	switch m {
	case ModeProduction:
		return "prod"
	case ModeTest:
		return "test"
	}
	return "dev"
}
