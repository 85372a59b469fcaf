package photjson

import "strconv"

// Stringify serializes v to its compact JSON form: no inserted
// whitespace, object members and array elements in their current
// in-memory order. It never fails on a well-formed Value, but returns
// an error if v (or a descendant) is not fully initialized (a
// negative-width Type), matching phot_stringify's documented contract
// in original_source.
func Stringify(v *Value) ([]byte, error) {
	var s scratch
	if err := stringifyValue(&s, v); err != nil {
		return nil, err
	}
	return s.bytes(), nil
}

func stringifyValue(s *scratch, v *Value) error {
	switch v.Type() {
	case Null:
		s.pushBytes([]byte("null"))
	case Bool:
		if v.Bool() {
			s.pushBytes([]byte("true"))
		} else {
			s.pushBytes([]byte("false"))
		}
	case Num:
		stringifyNumber(s, v.Num())
	case Str:
		stringifyString(s, v.strVal[:len(v.strVal)-1])
	case Arr:
		s.pushByte('[')
		for i := range v.arr {
			if i > 0 {
				s.pushByte(',')
			}
			if err := stringifyValue(s, &v.arr[i]); err != nil {
				return err
			}
		}
		s.pushByte(']')
	case Obj:
		s.pushByte('{')
		for i := range v.obj {
			if i > 0 {
				s.pushByte(',')
			}
			stringifyString(s, v.obj[i].key)
			s.pushByte(':')
			if err := stringifyValue(s, &v.obj[i].value); err != nil {
				return err
			}
		}
		s.pushByte('}')
	default:
		return parseErr(ErrInvalidValue, 0)
	}
	return nil
}

// stringifyNumber formats n the way photjson.c's printf("%.17g", n)
// does: the shortest decimal representation that round-trips back to
// the same float64, which is exactly what Go's strconv.AppendFloat
// produces with precision -1.
func stringifyNumber(s *scratch, n float64) {
	buf := strconv.AppendFloat(nil, n, 'g', -1, 64)
	s.pushBytes(buf)
}

const hexDigits = "0123456789ABCDEF"

// pushUnicodeEscape writes \u00XX for a control byte with no short escape.
func pushUnicodeEscape(s *scratch, b byte) {
	buf := s.push(6)
	buf[0] = '\\'
	buf[1] = 'u'
	buf[2] = '0'
	buf[3] = '0'
	buf[4] = hexDigits[b>>4]
	buf[5] = hexDigits[b&0xF]
}

// stringifyString writes raw as a quoted JSON string, escaping '"',
// '\\', and control bytes per spec.md §4.4.
func stringifyString(s *scratch, raw []byte) {
	s.pushByte('"')
	for _, b := range raw {
		switch {
		case b == '"':
			s.pushBytes([]byte(`\"`))
		case b == '\\':
			s.pushBytes([]byte(`\\`))
		case b == '\b':
			s.pushBytes([]byte(`\b`))
		case b == '\f':
			s.pushBytes([]byte(`\f`))
		case b == '\n':
			s.pushBytes([]byte(`\n`))
		case b == '\r':
			s.pushBytes([]byte(`\r`))
		case b == '\t':
			s.pushBytes([]byte(`\t`))
		case b < 0x20:
			pushUnicodeEscape(s, b)
		default:
			s.pushByte(b)
		}
	}
	s.pushByte('"')
}
