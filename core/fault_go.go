//go:build !tinygo

package core

// defaultFault on host builds is an unrecoverable fault naming the
// offending line, so tests and simulations fail loudly.
func defaultFault(line Line) {
	panic("unhandled interrupt line " + itoa(int(line)))
}
