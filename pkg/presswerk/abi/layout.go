package abi

import (
	"errors"
	"fmt"
)

// Padding returns the number of bytes needed after offset to reach the next
// multiple of align.
func Padding(offset, align uintptr) uintptr {
	if rem := offset % align; rem != 0 {
		return align - rem
	}
	return 0
}

// AlignUp rounds size up to the next multiple of align.
func AlignUp(size, align uintptr) uintptr {
	return size + Padding(size, align)
}

// Field declares one struct member. Pointer marks fields that must match the
// target's native pointer width.
type Field struct {
	Name    string
	Size    uintptr
	Align   uintptr
	Pointer bool
}

// FieldLayout is a Field with its computed offset.
type FieldLayout struct {
	Field
	Offset uintptr
}

// StructLayout is a named, ordered field sequence with derived total size
// and alignment. Instances are immutable after NewLayout returns.
type StructLayout struct {
	name   string
	fields []FieldLayout
	size   uintptr
	align  uintptr
}

var errNoFields = errors.New("abi: layout has no fields")

// NewLayout computes the layout for the declared field order, inserting
// natural padding so every field lands on a multiple of its own alignment
// and rounding the total size up to a multiple of the struct alignment.
// Declarations that cannot satisfy these invariants fail here, at definition
// time; they are never silently accepted.
func NewLayout(name string, fields ...Field) (*StructLayout, error) {
	if name == "" {
		return nil, errors.New("abi: layout name is empty")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("abi: %s: %w", name, errNoFields)
	}

	seen := make(map[string]bool, len(fields))
	out := make([]FieldLayout, 0, len(fields))
	var cursor, structAlign uintptr

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("abi: %s: unnamed field", name)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("abi: %s: duplicate field %q", name, f.Name)
		}
		seen[f.Name] = true
		if f.Size == 0 {
			return nil, fmt.Errorf("abi: %s.%s: zero size", name, f.Name)
		}
		if f.Align == 0 || f.Align&(f.Align-1) != 0 {
			return nil, fmt.Errorf("abi: %s.%s: alignment %d is not a power of two", name, f.Name, f.Align)
		}

		cursor = AlignUp(cursor, f.Align)
		out = append(out, FieldLayout{Field: f, Offset: cursor})
		cursor += f.Size
		if f.Align > structAlign {
			structAlign = f.Align
		}
	}

	return &StructLayout{
		name:   name,
		fields: out,
		size:   AlignUp(cursor, structAlign),
		align:  structAlign,
	}, nil
}

// mustLayout backs the package-level reference layouts; a defect in one of
// them is unrecoverable and surfaces at package initialization.
func mustLayout(name string, fields ...Field) *StructLayout {
	l, err := NewLayout(name, fields...)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the layout name.
func (l *StructLayout) Name() string { return l.name }

// Size returns the total struct size including trailing padding.
func (l *StructLayout) Size() uintptr { return l.size }

// Align returns the struct alignment (the largest field alignment).
func (l *StructLayout) Align() uintptr { return l.align }

// Fields returns the laid-out fields in declaration order.
func (l *StructLayout) Fields() []FieldLayout {
	out := make([]FieldLayout, len(l.fields))
	copy(out, l.fields)
	return out
}

// Offset returns the offset of the named field.
func (l *StructLayout) Offset(field string) (uintptr, bool) {
	for _, f := range l.fields {
		if f.Name == field {
			return f.Offset, true
		}
	}
	return 0, false
}

// Compliant checks the layout field by field for a target whose native
// pointer width is ptrWidth bytes: every offset must be an exact multiple of
// the field's own alignment, every pointer field must match the native
// width, and the total size must be a multiple of the struct alignment. The
// first violation is returned.
func (l *StructLayout) Compliant(ptrWidth uintptr) error {
	for _, f := range l.fields {
		if f.Offset%f.Align != 0 {
			return fmt.Errorf("abi: %s.%s: offset %d not aligned to %d", l.name, f.Name, f.Offset, f.Align)
		}
		if f.Pointer && f.Size != ptrWidth {
			return fmt.Errorf("abi: %s.%s: pointer field is %d bytes, target needs %d", l.name, f.Name, f.Size, ptrWidth)
		}
	}
	if l.size%l.align != 0 {
		return fmt.Errorf("abi: %s: size %d not a multiple of alignment %d", l.name, l.size, l.align)
	}
	return nil
}
