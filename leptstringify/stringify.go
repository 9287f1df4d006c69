// Package leptstringify renders a leptvalue.Value tree back to JSON text
// (spec component C5). Output preserves array element and object member
// insertion order — it does not sort object keys, unlike the RFC 8785
// canonical form in leptcanon.
package leptstringify

import (
	"strconv"

	"github.com/foolish-han/leptjson-go/leptvalue"
)

// Stringify renders v as a compact JSON document. Panics if v (or any value
// reachable from it) holds a Type outside the seven variants; a zero-value
// Value is Null and renders as "null".
func Stringify(v *leptvalue.Value) []byte {
	buf := make([]byte, 0, 256)
	return appendValue(buf, v)
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
		return appendNumber(buf, v.Number())
	case leptvalue.String:
		return appendString(buf, v.StringValue())
	case leptvalue.Array:
		return appendArray(buf, v)
	case leptvalue.Object:
		return appendObject(buf, v)
	default:
		panic("leptstringify: value has an unrecognized type")
	}
}

// appendNumber formats with 17 significant digits — enough for any float64
// to round-trip exactly through strconv.ParseFloat — trimming trailing
// zeros the way %g does. This is deliberately not the ECMA shortest
// round-trip algorithm leptcanon uses; the base format only promises
// round-trip fidelity, not a canonical minimal-length representation.
func appendNumber(buf []byte, n float64) []byte {
	return strconv.AppendFloat(buf, n, 'g', 17, 64)
}

const hexDigits = "0123456789ABCDEF"

func appendString(buf []byte, s []byte) []byte {
	buf = append(buf, '"')
	for _, c := range s {
		switch c {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if c < 0x20 {
				buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0x0F])
			} else {
				buf = append(buf, c)
			}
		}
	}
	return append(buf, '"')
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

func appendObject(buf []byte, v *leptvalue.Value) []byte {
	buf = append(buf, '{')
	for i, n := 0, v.ObjectSize(); i < n; i++ {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendString(buf, v.ObjectKey(i))
		buf = append(buf, ':')
		buf = appendValue(buf, v.ObjectValue(i))
	}
	return append(buf, '}')
}
