// Package leptcanon renders a leptvalue.Value tree into the RFC 8785 JSON
// Canonicalization Scheme (JCS) byte sequence: UTF-16 code-unit sorted
// object keys, ECMAScript Number::toString formatting, and the canonical
// string escaping rules. It is supplementary to the base library — the
// parser and the insertion-order leptstringify package have no opinion on
// canonical form — and exists because the canonical-serialization problem
// is common enough, and the ECMA float algorithm intricate enough, that a
// JSON value-tree library is a natural place to offer it.
//
// Canonicalize additionally requires what RFC 8785 requires of its input:
// finite numbers, valid UTF-8 strings, and object keys unique within their
// object. leptvalue.Parse never yields NaN/Inf, but it passes bytes of
// invalid UTF-8 through unchanged and keeps repeated keys, and SetNumber
// stores any float64, NaN and +/-Inf included; Canonicalize rejects all
// three instead of picking an arbitrary winner.
package leptcanon

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/foolish-han/leptjson-go/lepterr"
	"github.com/foolish-han/leptjson-go/leptvalue"
)

// Canonicalize renders v as the RFC 8785 canonical JSON byte sequence.
func Canonicalize(v *leptvalue.Value) ([]byte, error) {
	if err := validate(v); err != nil {
		return nil, err
	}
	return appendValue(nil, v), nil
}

func appendValue(buf []byte, v *leptvalue.Value) []byte {
	switch v.Type() {
	case leptvalue.Null:
		return append(buf, "null"...)
	case leptvalue.False:
		return append(buf, "false"...)
	case leptvalue.True:
		return append(buf, "true"...)
	case leptvalue.Number:
		// formatECMANumber cannot fail here: validate already rejected
		// non-finite numbers.
		s, _ := formatECMANumber(v.Number())
		return append(buf, s...)
	case leptvalue.String:
		return appendString(buf, v.StringValue())
	case leptvalue.Array:
		return appendArray(buf, v)
	case leptvalue.Object:
		return appendObject(buf, v)
	default:
		panic("leptcanon: value has an unrecognized type")
	}
}

// appendString applies the RFC 8785 string escaping rules: the seven
// two-character shorthand escapes, every other control byte as a lowercase
// \u00xx, the solidus left unescaped, and everything else copied as raw
// UTF-8.
func appendString(buf []byte, s []byte) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); {
		b := s[i]
		switch b {
		case '"':
			buf = append(buf, '\\', '"')
			i++
			continue
		case '\\':
			buf = append(buf, '\\', '\\')
			i++
			continue
		case '\b':
			buf = append(buf, '\\', 'b')
			i++
			continue
		case '\t':
			buf = append(buf, '\\', 't')
			i++
			continue
		case '\n':
			buf = append(buf, '\\', 'n')
			i++
			continue
		case '\f':
			buf = append(buf, '\\', 'f')
			i++
			continue
		case '\r':
			buf = append(buf, '\\', 'r')
			i++
			continue
		}
		if b < 0x20 {
			buf = append(buf, '\\', 'u', '0', '0', lowerHexDigit(b>>4), lowerHexDigit(b&0x0F))
			i++
			continue
		}
		size := utf8SeqLen(b)
		if i+size > len(s) {
			size = len(s) - i
		}
		buf = append(buf, s[i:i+size]...)
		i += size
	}
	return append(buf, '"')
}

func lowerHexDigit(b byte) byte {
	if b < 10 {
		return '0' + b
	}
	return 'a' + (b - 10)
}

func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	default:
		return 4
	}
}

func appendArray(buf []byte, v *leptvalue.Value) []byte {
	buf = append(buf, '[')
	for i, n := 0, v.ArraySize(); i < n; i++ {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendValue(buf, v.ArrayGet(i))
	}
	return append(buf, ']')
}

// appendObject sorts members by key using UTF-16 code-unit ordering, per
// RFC 8785 §3.2.3, rather than the object's insertion order.
func appendObject(buf []byte, v *leptvalue.Value) []byte {
	n := v.ObjectSize()
	order := make([]int, n)
	keys16 := make([][]uint16, n)
	for i := 0; i < n; i++ {
		order[i] = i
		keys16[i] = utf16.Encode([]rune(string(v.ObjectKey(i))))
	}
	sort.Slice(order, func(a, b int) bool {
		return compareUTF16Units(keys16[order[a]], keys16[order[b]]) < 0
	})

	buf = append(buf, '{')
	for i, idx := range order {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendString(buf, v.ObjectKey(idx))
		buf = append(buf, ':')
		buf = appendValue(buf, v.ObjectValue(idx))
	}
	return append(buf, '}')
}

func compareUTF16Units(a, b []uint16) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// validate walks v checking the preconditions Canonicalize requires beyond
// what leptvalue.Value already guarantees: every number must be finite,
// every string must be valid UTF-8, and every object's keys must be unique.
func validate(v *leptvalue.Value) error {
	switch v.Type() {
	case leptvalue.Null, leptvalue.False, leptvalue.True:
		return nil
	case leptvalue.Number:
		if _, err := formatECMANumber(v.Number()); err != nil {
			return lepterr.New(lepterr.NonFiniteNumber, -1, "cannot canonicalize a NaN or infinite number")
		}
		return nil
	case leptvalue.String:
		return validateString(v.StringValue())
	case leptvalue.Array:
		for i, n := 0, v.ArraySize(); i < n; i++ {
			if err := validate(v.ArrayGet(i)); err != nil {
				return err
			}
		}
		return nil
	case leptvalue.Object:
		seen := make(map[string]struct{}, v.ObjectSize())
		for i, n := 0, v.ObjectSize(); i < n; i++ {
			key := v.ObjectKey(i)
			if err := validateString(key); err != nil {
				return err
			}
			if _, dup := seen[string(key)]; dup {
				return lepterr.New(lepterr.DuplicateObjectKey, -1, "cannot canonicalize an object with a repeated key")
			}
			seen[string(key)] = struct{}{}
			if err := validate(v.ObjectValue(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		panic("leptcanon: value has an unrecognized type")
	}
}

func validateString(s []byte) error {
	if !utf8.Valid(s) {
		return lepterr.New(lepterr.InvalidUTF8String, -1, "string is not valid UTF-8")
	}
	return nil
}
