package photjson

// scratch is a grow-only byte stack used as transient storage during
// parsing (decoded string bytes, in-flight array elements, in-flight
// object members) and during serialization (formatted numbers,
// escaped strings). It grows by a factor of 1.5 from an initial 256
// bytes, a deliberately different policy from the ×2 container growth
// in array.go/object.go: the scratch is short-lived and hot, while
// containers are long-lived and indexed (spec.md §4.5).
//
// Ported from photjson.c's phot_context_push/phot_context_pop
// (original_source); the teacher repo has no scratch-buffer analogue.
type scratch struct {
	buf []byte
	top int
}

const scratchInitSize = 256

// push reserves n bytes at the top of the stack and returns them for
// the caller to fill in. It grows the backing array by ×1.5 (from an
// initial 256 bytes) whenever the reservation would not fit.
func (s *scratch) push(n int) []byte {
	if s.top+n > len(s.buf) {
		newSize := len(s.buf)
		if newSize == 0 {
			newSize = scratchInitSize
		}
		for s.top+n > newSize {
			newSize += newSize / 2
		}
		grown := make([]byte, newSize)
		copy(grown, s.buf[:s.top])
		s.buf = grown
	}
	ret := s.buf[s.top : s.top+n]
	s.top += n
	return ret
}

// pushByte appends a single byte.
func (s *scratch) pushByte(b byte) {
	s.push(1)[0] = b
}

// pushBytes appends a copy of b.
func (s *scratch) pushBytes(b []byte) {
	copy(s.push(len(b)), b)
}

// pop discards the top n bytes and returns the region now past the
// new top; it remains valid only until the next push.
func (s *scratch) pop(n int) []byte {
	if n > s.top {
		panic("photjson: scratch pop underflow")
	}
	s.top -= n
	return s.buf[s.top : s.top+n]
}

// truncate drops the stack back to the given watermark, discarding
// any partial output accumulated since it was taken.
func (s *scratch) truncate(mark int) {
	s.top = mark
}

// bytes returns a freshly allocated copy of the currently pushed region.
func (s *scratch) bytes() []byte {
	out := make([]byte, s.top)
	copy(out, s.buf[:s.top])
	return out
}
