package cmds

// Var defines name taking one argument, and name+"." resetting it to zero.
func Var[T any](name string, desc string, aliases ...string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc).Alias(aliases...))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name setting a flag, and "!"+name clearing it.
func Switch(name string, desc string, aliases ...string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc(desc).Alias(aliases...))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))

	return &value
}

// Collect defines a repeatable name appending its argument.
func Collect[T any](name string, desc string, aliases ...string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc).Alias(aliases...))
	return &value
}
