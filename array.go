package photjson

// Container editing shared by Arr and Obj values (Len, Cap, Reserve,
// Shrink, Clear), plus the Arr-only element operations (Get, Push,
// Pop, Insert, Erase). All methods panic on a type mismatch, matching
// the library's preconditions-not-errors policy for API misuse
// (spec.md §7) — the same role photjson.c's assert() calls play in
// the original.

// Len returns the number of elements (Arr) or members (Obj) in v.
// Precondition: v.Type() is Arr or Obj.
func (v *Value) Len() int {
	switch v.typ {
	case Arr:
		return len(v.arr)
	case Obj:
		return len(v.obj)
	default:
		panic("photjson: Len requires an Arr or Obj value")
	}
}

// Cap returns the current capacity of v before the next growth.
// Precondition: v.Type() is Arr or Obj.
func (v *Value) Cap() int {
	switch v.typ {
	case Arr:
		return cap(v.arr)
	case Obj:
		return cap(v.obj)
	default:
		panic("photjson: Cap requires an Arr or Obj value")
	}
}

// Reserve grows v's backing storage so it can hold at least newCap
// elements/members without reallocating, if it does not already.
// Precondition: v.Type() is Arr or Obj.
func (v *Value) Reserve(newCap int) {
	switch v.typ {
	case Arr:
		if newCap <= cap(v.arr) {
			return
		}
		grown := make([]Value, len(v.arr), newCap)
		copy(grown, v.arr)
		v.arr = grown
	case Obj:
		if newCap <= cap(v.obj) {
			return
		}
		grown := make([]Member, len(v.obj), newCap)
		copy(grown, v.obj)
		v.obj = grown
	default:
		panic("photjson: Reserve requires an Arr or Obj value")
	}
}

// Shrink reallocates v's backing storage to exactly its current
// length, releasing any spare capacity.
// Precondition: v.Type() is Arr or Obj.
func (v *Value) Shrink() {
	switch v.typ {
	case Arr:
		if len(v.arr) == cap(v.arr) {
			return
		}
		if len(v.arr) == 0 {
			v.arr = nil
			return
		}
		shrunk := make([]Value, len(v.arr))
		copy(shrunk, v.arr)
		v.arr = shrunk
	case Obj:
		if len(v.obj) == cap(v.obj) {
			return
		}
		if len(v.obj) == 0 {
			v.obj = nil
			return
		}
		shrunk := make([]Member, len(v.obj))
		copy(shrunk, v.obj)
		v.obj = shrunk
	default:
		panic("photjson: Shrink requires an Arr or Obj value")
	}
}

// Clear frees every element/member of v and empties it, retaining capacity.
// Precondition: v.Type() is Arr or Obj.
func (v *Value) Clear() {
	switch v.typ {
	case Arr:
		for i := range v.arr {
			v.arr[i].Free()
		}
		v.arr = v.arr[:0]
	case Obj:
		for i := range v.obj {
			v.obj[i].value.Free()
		}
		v.obj = v.obj[:0]
	default:
		panic("photjson: Clear requires an Arr or Obj value")
	}
}

// Get returns a pointer to the element at i, usable for in-place
// editing. Precondition: v.Type() == Arr and i < v.Len().
func (v *Value) Get(i int) *Value {
	mustType(v, Arr)
	if i < 0 || i >= len(v.arr) {
		panic("photjson: array index out of range")
	}
	return &v.arr[i]
}

// Push appends a new Null element to the end of v, growing capacity
// by doubling (starting from 1) if needed, and returns a pointer to
// the new slot so the caller can set or move a value into it.
// Precondition: v.Type() == Arr.
func (v *Value) Push() *Value {
	mustType(v, Arr)
	if len(v.arr) == cap(v.arr) {
		newCap := cap(v.arr) * 2
		if newCap == 0 {
			newCap = 1
		}
		v.Reserve(newCap)
	}
	v.arr = append(v.arr, Value{})
	return &v.arr[len(v.arr)-1]
}

// Pop frees and removes the last element of v.
// Precondition: v.Type() == Arr and v.Len() > 0.
func (v *Value) Pop() {
	mustType(v, Arr)
	if len(v.arr) == 0 {
		panic("photjson: Pop called on empty array")
	}
	last := len(v.arr) - 1
	v.arr[last].Free()
	v.arr = v.arr[:last]
}

// Insert makes room for a new Null element at index i, shifting
// subsequent elements up by one, and returns a pointer to it.
// Precondition: v.Type() == Arr and i <= v.Len().
func (v *Value) Insert(i int) *Value {
	mustType(v, Arr)
	if i < 0 || i > len(v.arr) {
		panic("photjson: insert index out of range")
	}
	if len(v.arr) == cap(v.arr) {
		newCap := cap(v.arr) * 2
		if newCap == 0 {
			newCap = 1
		}
		v.Reserve(newCap)
	}
	v.arr = append(v.arr, Value{})
	copy(v.arr[i+1:], v.arr[i:len(v.arr)-1])
	v.arr[i] = Value{}
	return &v.arr[i]
}

// Erase frees and removes the n elements starting at index i, shifting
// subsequent elements down. Precondition: v.Type() == Arr and i+n <= v.Len().
func (v *Value) Erase(i, n int) {
	mustType(v, Arr)
	if n == 0 {
		return
	}
	if i < 0 || n < 0 || i+n > len(v.arr) {
		panic("photjson: erase range out of bounds")
	}
	for k := i; k < i+n; k++ {
		v.arr[k].Free()
	}
	copy(v.arr[i:], v.arr[i+n:])
	tail := len(v.arr) - n
	for k := tail; k < len(v.arr); k++ {
		v.arr[k] = Value{}
	}
	v.arr = v.arr[:tail]
}
