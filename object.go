package photjson

import "bytes"

// Object-only editing operations. Len, Cap, Reserve, Shrink, and Clear
// are shared with Arr and defined in array.go.

// KeyAt returns the key of the member at index i as a string.
// Precondition: v.Type() == Obj and i < v.Len().
func (v *Value) KeyAt(i int) string {
	return string(v.KeyBytesAt(i))
}

// KeyBytesAt returns the key of the member at index i. The caller
// must not mutate the returned slice. Precondition: v.Type() == Obj
// and i < v.Len().
func (v *Value) KeyBytesAt(i int) []byte {
	mustType(v, Obj)
	if i < 0 || i >= len(v.obj) {
		panic("photjson: object index out of range")
	}
	return v.obj[i].key
}

// KeyLenAt returns the byte length of the key of the member at index i.
// Precondition: v.Type() == Obj and i < v.Len().
func (v *Value) KeyLenAt(i int) int {
	return len(v.KeyBytesAt(i))
}

// ValueAt returns a pointer to the value of the member at index i,
// usable for in-place editing. Precondition: v.Type() == Obj and
// i < v.Len().
func (v *Value) ValueAt(i int) *Value {
	mustType(v, Obj)
	if i < 0 || i >= len(v.obj) {
		panic("photjson: object index out of range")
	}
	return &v.obj[i].value
}

// FindIndex returns the index of the first member whose key matches
// key byte-for-byte, or KeyNotFound if no such member exists.
// Precondition: v.Type() == Obj.
func (v *Value) FindIndex(key []byte) int {
	mustType(v, Obj)
	for i := range v.obj {
		if bytes.Equal(v.obj[i].key, key) {
			return i
		}
	}
	return KeyNotFound
}

// FindIndexString is a convenience wrapper around FindIndex for Go strings.
func (v *Value) FindIndexString(key string) int {
	return v.FindIndex([]byte(key))
}

// FindValue returns a pointer to the value of the first member whose
// key matches key, or nil if no such member exists.
// Precondition: v.Type() == Obj.
func (v *Value) FindValue(key []byte) *Value {
	idx := v.FindIndex(key)
	if idx == KeyNotFound {
		return nil
	}
	return &v.obj[idx].value
}

// FindValueString is a convenience wrapper around FindValue for Go strings.
func (v *Value) FindValueString(key string) *Value {
	return v.FindValue([]byte(key))
}

// SetValue returns a pointer to the value slot for key: if a member
// with that key already exists, its value slot is returned unchanged;
// otherwise a new member is appended (key copied, value Null) and its
// value slot is returned. Capacity grows by doubling (starting from
// 1) when needed. Precondition: v.Type() == Obj.
func (v *Value) SetValue(key []byte) *Value {
	mustType(v, Obj)
	if idx := v.FindIndex(key); idx != KeyNotFound {
		return &v.obj[idx].value
	}
	if len(v.obj) == cap(v.obj) {
		newCap := cap(v.obj) * 2
		if newCap == 0 {
			newCap = 1
		}
		v.Reserve(newCap)
	}
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)
	v.obj = append(v.obj, Member{key: keyCopy})
	return &v.obj[len(v.obj)-1].value
}

// SetValueString is a convenience wrapper around SetValue for Go strings.
func (v *Value) SetValueString(key string) *Value {
	return v.SetValue([]byte(key))
}

// Remove frees the key and value of the member at index i and removes
// it, shifting subsequent members down by one.
// Precondition: v.Type() == Obj and i < v.Len().
func (v *Value) Remove(i int) {
	mustType(v, Obj)
	if i < 0 || i >= len(v.obj) {
		panic("photjson: object index out of range")
	}
	v.obj[i].value.Free()
	v.obj[i].key = nil
	copy(v.obj[i:], v.obj[i+1:])
	last := len(v.obj) - 1
	v.obj[last] = Member{}
	v.obj = v.obj[:last]
}
