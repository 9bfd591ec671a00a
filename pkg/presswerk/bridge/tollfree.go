package bridge

// TypeRepr is the memory shape of one type representation crossing the
// bridge: its size and alignment in bytes. The name is diagnostic only.
type TypeRepr struct {
	Name  string
	Size  uintptr
	Align uintptr
}

// TollFree reports whether two representations are interchangeable via
// pointer reinterpretation. Identical size and alignment is the only
// justification for reinterpreting a pointer's type without copying; the
// relation is symmetric and transitive by construction.
func TollFree(a, b TypeRepr) bool {
	return a.Size == b.Size && a.Align == b.Align
}
