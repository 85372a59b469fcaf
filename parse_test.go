package photjson_test

import (
	"errors"
	"testing"

	"github.com/mcvoid/photjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiterals(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		wantType photjson.Type
	}{
		"null with surrounding whitespace": {" null ", photjson.Null},
		"true":                             {"true", photjson.Bool},
		"false":                            {"false", photjson.Bool},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, err := photjson.Parse([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, v.Type())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		wantErr error
	}{
		"empty input":                {"", photjson.ErrExpectValue},
		"whitespace only":            {"   ", photjson.ErrExpectValue},
		"garbage token":              {"nul", photjson.ErrInvalidValue},
		"trailing garbage":           {"null x", photjson.ErrRootNotSingular},
		"number overflow":            {"1e309", photjson.ErrNumTooBig},
		"unterminated string":        {`"abc`, photjson.ErrMissQuotationMark},
		"bad escape":                 {`"\q"`, photjson.ErrInvalidStringEscape},
		"raw control char":           {"\"\x01\"", photjson.ErrInvalidStringChar},
		"bad hex escape":             {`"\u12"`, photjson.ErrInvalidUnicodeHex},
		"lone high surrogate":        {`"\uD800"`, photjson.ErrInvalidUnicodeSurrogate},
		"low surrogate without high": {`"\uDC00"`, photjson.ErrInvalidUnicodeSurrogate},
		"array missing comma":        {"[1 2]", photjson.ErrMissCommaOrSquareBracket},
		"array trailing comma":       {"[1,2,]", photjson.ErrInvalidValue},
		"object missing key":         {"{1:2}", photjson.ErrMissKey},
		"object missing colon":       {`{"a" 1}`, photjson.ErrMissColon},
		"object missing comma":       {`{"a":1 "b":2}`, photjson.ErrMissCommaOrCurlyBracket},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := photjson.Parse([]byte(tc.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v, want wrapping %v", err, tc.wantErr)

			var pe *photjson.ParseError
			require.True(t, errors.As(err, &pe))
		})
	}
}

func TestParseNumbers(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		expected float64
	}{
		"negative zero":          {"-0", 0},
		"small integer":          {"42", 42},
		"negative integer":       {"-17", -17},
		"fraction":               {"3.14", 3.14},
		"exponent":               {"1e3", 1000},
		"max float":              {"1.7976931348623157e308", 1.7976931348623157e308},
		"tiny underflows to zero": {"1e-10000", 0},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, err := photjson.Parse([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, photjson.Num, v.Type())
			assert.Equal(t, tc.expected, v.Num())
		})
	}
}

func TestParseStringEscapes(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		expected string
	}{
		"simple escapes":      {`"a\tb\nc"`, "a\tb\nc"},
		"escaped quote":       {`"say \"hi\""`, `say "hi"`},
		"unicode bmp escape":  {`"é"`, "é"},
		"surrogate pair":      {`"𝄞"`, "\U0001D11E"},
		"embedded nul escape": {`"a b"`, "a\x00b"},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, err := photjson.Parse([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v.StrString())
		})
	}
}

func TestParseArrayRoundTrip(t *testing.T) {
	t.Parallel()

	v, err := photjson.Parse([]byte("[1,2,3]"))
	require.NoError(t, err)
	require.Equal(t, photjson.Arr, v.Type())
	require.Equal(t, 3, v.Len())
	assert.Equal(t, float64(1), v.Get(0).Num())
	assert.Equal(t, float64(2), v.Get(1).Num())
	assert.Equal(t, float64(3), v.Get(2).Num())

	out, err := photjson.Stringify(v)
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]", string(out))
}

func TestParseEmptyContainers(t *testing.T) {
	t.Parallel()

	arr, err := photjson.Parse([]byte("[]"))
	require.NoError(t, err)
	assert.Equal(t, 0, arr.Len())

	obj, err := photjson.Parse([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, 0, obj.Len())
}

func TestParseNestedObjectRoundTrip(t *testing.T) {
	t.Parallel()

	const input = `{"name":"go","tags":["a","b"],"meta":{"ok":true,"n":null}}`
	v, err := photjson.Parse([]byte(input))
	require.NoError(t, err)
	require.Equal(t, photjson.Obj, v.Type())

	assert.Equal(t, "go", v.Key("name").StrString())
	assert.Equal(t, 2, v.Key("tags").Len())
	assert.True(t, v.Key("meta").Key("ok").Bool())
	assert.Equal(t, photjson.Null, v.Key("meta").Key("n").Type())

	out, err := photjson.Stringify(v)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestParseMaxDepth(t *testing.T) {
	t.Parallel()

	_, err := photjson.ParseWithOptions([]byte("[[[1]]]"), photjson.WithMaxDepth(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, photjson.ErrMaxDepthExceeded))

	v, err := photjson.ParseWithOptions([]byte("[[[1]]]"), photjson.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, photjson.Arr, v.Type())
}

type recordingLogger struct {
	calls int
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.calls++ }

func TestParseLoggerReceivesTraces(t *testing.T) {
	t.Parallel()

	l := &recordingLogger{}
	v, err := photjson.ParseWithOptions([]byte(`{"a":[1,2]}`), photjson.WithLogger(l))
	require.NoError(t, err)
	assert.Equal(t, photjson.Obj, v.Type())
	assert.Greater(t, l.calls, 0)
}

func TestParseCleansUpOnArrayElementError(t *testing.T) {
	t.Parallel()

	_, err := photjson.Parse([]byte(`[1,2,}]`))
	require.Error(t, err)
}

func TestParseCleansUpOnObjectMemberError(t *testing.T) {
	t.Parallel()

	_, err := photjson.Parse([]byte(`{"a":1,"b":}`))
	require.Error(t, err)
}

func TestParseIdempotentRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`null`, `true`, `false`, `0`, `-12.5`, `"hi"`,
		`[]`, `{}`, `[1,[2,3],{"a":1}]`,
	}
	for _, in := range inputs {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			v, err := photjson.Parse([]byte(in))
			require.NoError(t, err)
			out, err := photjson.Stringify(v)
			require.NoError(t, err)

			v2, err := photjson.Parse(out)
			require.NoError(t, err)
			out2, err := photjson.Stringify(v2)
			require.NoError(t, err)

			assert.Equal(t, string(out), string(out2))
			assert.True(t, v.Equal(v2))
		})
	}
}
