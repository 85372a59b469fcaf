package photjson

// Type identifies which payload a Value currently holds.
type Type int

// The six JSON value kinds.
const (
	Null Type = iota
	Bool
	Num
	Str
	Arr
	Obj

	numTypes
)

var typeStrings = [numTypes]string{
	"null", "bool", "number", "string", "array", "object",
}

// String returns a human-readable name for t, or "<unknown>" if t is
// not one of the defined Type constants.
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "<unknown>"
	}
	return typeStrings[t]
}

// Member is a single key/value pair inside an Object. Keys are
// arbitrary UTF-8 byte sequences; duplicate keys within one Object are
// legal (the parser preserves them in insertion order) but the
// editing API addresses only the first match for a given key.
type Member struct {
	key   []byte
	value Value
}

// Key returns the member's key as a string.
func (m *Member) Key() string { return string(m.key) }

// KeyBytes returns the member's key as a byte slice. The caller must
// not mutate the returned slice.
func (m *Member) KeyBytes() []byte { return m.key }

// Value returns a pointer to the member's value, usable for in-place editing.
func (m *Member) Value() *Value { return &m.value }

// Value is a single JSON document node: a tagged union of Null, Bool,
// Num, Str, Arr, and Obj. The zero Value is Null and requires no
// cleanup. Arr and Obj own their child Values/Members exclusively —
// ownership forms a tree, never a shared graph.
type Value struct {
	typ Type

	boolVal bool
	numVal  float64

	// strVal holds the decoded bytes plus one trailing NUL byte, kept
	// for parity with the C original's string interop. strLen is the
	// authoritative length and may be less than len(strVal)-1 only in
	// the sense that it never is: strVal is always exactly strLen+1
	// bytes. Embedded NUL bytes inside the first strLen bytes are legal.
	strVal []byte

	arr []Value
	obj []Member
}

// Init resets v to Null, releasing anything it previously held. It is
// always safe to call on a zero Value.
func (v *Value) Init() {
	v.Free()
}

// Free releases v's payload (recursively, for Arr and Obj) and resets
// its type to Null. Free is idempotent: calling it on an already-Null
// Value, or on a nil *Value, does nothing.
func (v *Value) Free() {
	if v == nil {
		return
	}
	switch v.typ {
	case Str:
		v.strVal = nil
	case Arr:
		for i := range v.arr {
			v.arr[i].Free()
		}
		v.arr = nil
	case Obj:
		for i := range v.obj {
			v.obj[i].value.Free()
		}
		v.obj = nil
	}
	v.typ = Null
	v.boolVal = false
	v.numVal = 0
}

// Type returns v's current tag.
func (v *Value) Type() Type {
	if v == nil {
		return Null
	}
	return v.typ
}

// SetNull is equivalent to Free: it discards any payload and sets the
// type to Null.
func (v *Value) SetNull() { v.Free() }

// SetBool discards v's previous payload and stores a boolean.
func (v *Value) SetBool(b bool) {
	v.Free()
	v.boolVal = b
	v.typ = Bool
}

// Bool returns v's boolean payload. Precondition: v.Type() == Bool.
func (v *Value) Bool() bool {
	mustType(v, Bool)
	return v.boolVal
}

// SetNum discards v's previous payload and stores a float64.
func (v *Value) SetNum(n float64) {
	v.Free()
	v.numVal = n
	v.typ = Num
}

// Num returns v's numeric payload. Precondition: v.Type() == Num.
func (v *Value) Num() float64 {
	mustType(v, Num)
	return v.numVal
}

// SetStr discards v's previous payload and stores a copy of b as a
// string value. b may be nil only when len(b) == 0.
func (v *Value) SetStr(b []byte) {
	if b == nil && len(b) != 0 {
		panic("photjson: SetStr called with nil bytes and nonzero length")
	}
	v.Free()
	buf := make([]byte, len(b)+1)
	copy(buf, b)
	v.strVal = buf
	v.typ = Str
}

// SetStrString is a convenience wrapper around SetStr for Go strings.
func (v *Value) SetStrString(s string) { v.SetStr([]byte(s)) }

// Str returns v's string payload. The returned slice shares no memory
// with the internal buffer and may be mutated freely.
// Precondition: v.Type() == Str.
func (v *Value) Str() []byte {
	mustType(v, Str)
	out := make([]byte, len(v.strVal)-1)
	copy(out, v.strVal[:len(v.strVal)-1])
	return out
}

// StrString returns v's string payload as a Go string.
// Precondition: v.Type() == Str.
func (v *Value) StrString() string {
	mustType(v, Str)
	return string(v.strVal[:len(v.strVal)-1])
}

// StrLen returns the length of v's string payload in bytes.
// Precondition: v.Type() == Str.
func (v *Value) StrLen() int {
	mustType(v, Str)
	return len(v.strVal) - 1
}

// SetArr discards v's previous payload and makes v an empty array
// with room for cap elements before the next growth.
func (v *Value) SetArr(cap int) {
	v.Free()
	if cap > 0 {
		v.arr = make([]Value, 0, cap)
	}
	v.typ = Arr
}

// SetObj discards v's previous payload and makes v an empty object
// with room for cap members before the next growth.
func (v *Value) SetObj(cap int) {
	v.Free()
	if cap > 0 {
		v.obj = make([]Member, 0, cap)
	}
	v.typ = Obj
}

func mustType(v *Value, want Type) {
	if v == nil || v.typ != want {
		panic("photjson: value is not of type " + want.String())
	}
}

// Copy makes dst a deep copy of src: scalars are copied by value,
// strings are duplicated, and Arr/Obj are recursively copied so that
// subsequent mutation of dst never affects src (or vice versa).
// dst and src must not be the same Value.
func Copy(dst, src *Value) {
	if dst == src {
		panic("photjson: Copy called with dst == src")
	}
	dst.Free()
	switch src.typ {
	case Null:
		// nothing to do; dst is already Null after Free.
	case Bool:
		dst.SetBool(src.boolVal)
	case Num:
		dst.SetNum(src.numVal)
	case Str:
		buf := make([]byte, len(src.strVal))
		copy(buf, src.strVal)
		dst.strVal = buf
		dst.typ = Str
	case Arr:
		dst.arr = make([]Value, len(src.arr), cap(src.arr))
		for i := range src.arr {
			Copy(&dst.arr[i], &src.arr[i])
		}
		dst.typ = Arr
	case Obj:
		dst.obj = make([]Member, len(src.obj), cap(src.obj))
		for i := range src.obj {
			key := make([]byte, len(src.obj[i].key))
			copy(key, src.obj[i].key)
			dst.obj[i].key = key
			Copy(&dst.obj[i].value, &src.obj[i].value)
		}
		dst.typ = Obj
	}
}

// Copy makes v a deep copy of src. It is a convenience method form of
// the package-level Copy function.
func (v *Value) Copy(src *Value) { Copy(v, src) }

// Move transfers src's payload into dst (discarding whatever dst held)
// and resets src to Null. No deep copy occurs: this is a shallow
// ownership transfer. dst and src must not be the same Value.
func Move(dst, src *Value) {
	if dst == src {
		panic("photjson: Move called with dst == src")
	}
	dst.Free()
	*dst = *src
	*src = Value{}
}

// Move is a convenience method form of the package-level Move function.
func (v *Value) Move(src *Value) { Move(v, src) }

// Swap exchanges the full contents of a and b. Swapping a Value with
// itself is a no-op.
func Swap(a, b *Value) {
	if a == b {
		return
	}
	*a, *b = *b, *a
}

// Swap is a convenience method form of the package-level Swap function.
func (v *Value) Swap(other *Value) { Swap(v, other) }

// Equal reports whether a and b are structurally equal: same type,
// and (for Num) the same float64 bit pattern under ==, (for Str) the
// same bytes, (for Arr) the same length with elementwise-equal
// elements in order, and (for Obj) the same length where every member
// of a has a first-match same-key member in b with an equal value.
// Object equality is therefore order-insensitive, but in the presence
// of duplicate keys it is not symmetric in general (see DESIGN.md).
func Equal(a, b *Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.typ {
	case Null:
		return true
	case Bool:
		return a.boolVal == b.boolVal
	case Num:
		return a.numVal == b.numVal
	case Str:
		return string(a.strVal) == string(b.strVal)
	case Arr:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(&a.arr[i], &b.arr[i]) {
				return false
			}
		}
		return true
	case Obj:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for i := range a.obj {
			idx := b.FindIndex(a.obj[i].key)
			if idx == KeyNotFound || !Equal(&a.obj[i].value, &b.obj[idx].value) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal is a convenience method form of the package-level Equal function.
func (v *Value) Equal(other *Value) bool { return Equal(v, other) }

// Index is a fluent accessor for drilling into arrays: it returns the
// element at i, or a Null Value if v is not an Arr or i is out of
// range. Unlike Get, Index never panics, matching the teacher's
// fluent-navigation convention for read-only exploration.
func (v *Value) Index(i int) *Value {
	if v.Type() != Arr || i < 0 || i >= len(v.arr) {
		return &Value{}
	}
	return &v.arr[i]
}

// Key is a fluent accessor for drilling into objects: it returns the
// first value stored under k, or a Null Value if v is not an Obj or
// no member has that key. Unlike FindValue, Key never panics.
func (v *Value) Key(k string) *Value {
	if v.Type() != Obj {
		return &Value{}
	}
	idx := v.FindIndex([]byte(k))
	if idx == KeyNotFound {
		return &Value{}
	}
	return &v.obj[idx].value
}
