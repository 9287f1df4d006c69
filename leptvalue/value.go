// Package leptvalue implements the JSON value tree (spec component C1), its
// scratch stack (C2), lexical helpers (C3), and the recursive-descent parser
// (C4) that builds a tree from UTF-8 JSON text.
//
// A Value's zero value is already a valid Null value — unlike the C original
// this ports from, no separate Init call is needed, since Go zero-initializes
// the Type field to Null.
package leptvalue

import (
	"bytes"
	"fmt"
)

// Type identifies which variant a Value currently holds.
type Type int

const (
	Null Type = iota
	False
	True
	Number
	String
	Array
	Object
)

var typeNames = [...]string{
	Null:   "null",
	False:  "false",
	True:   "true",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Member is a key/value pair inside an Object. Keys are compared byte-wise;
// no Unicode normalization is applied.
type Member struct {
	Key   []byte
	Value Value
}

// Value is a JSON value: one of Null, False, True, Number, String, Array, or
// Object. Only the fields relevant to the current Type are meaningful;
// switching Type releases the previous payload (see free).
type Value struct {
	typ Type
	num float64
	str []byte
	arr []Value
	obj []Member
}

// Type returns the value's current variant.
func (v *Value) Type() Type {
	return v.typ
}

// mustType panics if the value is not of the expected type. This is the
// Go mapping of the spec's "trip an assertion (debug), undefined behavior
// (release)" contract for precondition violations: wrong-variant accessors
// are programmer errors, not recoverable runtime conditions.
func (v *Value) mustType(t Type) {
	if v.typ != t {
		panic(fmt.Sprintf("leptvalue: value is %s, not %s", v.typ, t))
	}
}

// free releases v's payload and resets it to Null. Go is garbage collected,
// so there is no manual deallocation here — dropping the slice references is
// enough for the backing arrays to become collectible once unreferenced.
func (v *Value) free() {
	v.num = 0
	v.str = nil
	v.arr = nil
	v.obj = nil
	v.typ = Null
}

// Free resets v to Null, releasing any payload. Free is idempotent.
func (v *Value) Free() {
	v.free()
}

// Bool returns the boolean payload. Panics if v is not True or False.
func (v *Value) Bool() bool {
	switch v.typ {
	case True:
		return true
	case False:
		return false
	default:
		panic(fmt.Sprintf("leptvalue: value is %s, not a boolean", v.typ))
	}
}

// SetBool frees v's existing payload and sets it to True or False.
func (v *Value) SetBool(b bool) {
	v.free()
	if b {
		v.typ = True
	} else {
		v.typ = False
	}
}

// Number returns the numeric payload. Panics if v is not Number.
func (v *Value) Number() float64 {
	v.mustType(Number)
	return v.num
}

// SetNumber frees v's existing payload and sets it to the given number.
func (v *Value) SetNumber(n float64) {
	v.free()
	v.num = n
	v.typ = Number
}

// StringValue returns the string payload's bytes. The length is always
// authoritative — embedded NULs are preserved. Panics if v is not String.
func (v *Value) StringValue() []byte {
	v.mustType(String)
	return v.str
}

// StringLen returns the byte length of the string payload. Panics if v is
// not String.
func (v *Value) StringLen() int {
	v.mustType(String)
	return len(v.str)
}

// SetString frees v's existing payload and copies s into v as a String.
func (v *Value) SetString(s []byte) {
	v.free()
	cp := make([]byte, len(s))
	copy(cp, s)
	v.str = cp
	v.typ = String
}

// Equal reports whether a and b hold the same value: equal type, IEEE ==
// number equality (so NaN is never equal to anything, including itself,
// and 0 equals -0), byte-equal strings, element-wise equal arrays in order, and
// objects matched member-by-member via key lookup (order-independent; a
// duplicate key on the right side resolves to its first occurrence, per the
// spec's find-first semantics).
func Equal(a, b *Value) bool {
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case Null, True, False:
		return true
	case Number:
		return a.num == b.num
	case String:
		return bytes.Equal(a.str, b.str)
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(&a.arr[i], &b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for i := range a.obj {
			idx := b.FindObjectIndex(a.obj[i].Key)
			if idx == NotFound {
				return false
			}
			if !Equal(&a.obj[i].Value, &b.obj[idx].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal reports whether v and other hold the same value. See the Equal
// function for the exact semantics.
func (v *Value) Equal(other *Value) bool {
	return Equal(v, other)
}

// CopyFrom replaces dst's payload with an independent deep copy of src.
// Primitives are copied by value; strings, arrays, and objects are
// recursively duplicated so dst shares no backing storage with src.
func (dst *Value) CopyFrom(src *Value) {
	dst.free()
	switch src.typ {
	case Null, True, False:
		dst.typ = src.typ
	case Number:
		dst.num = src.num
		dst.typ = Number
	case String:
		dst.SetString(src.str)
	case Array:
		arr := make([]Value, len(src.arr))
		for i := range src.arr {
			arr[i].CopyFrom(&src.arr[i])
		}
		dst.arr = arr
		dst.typ = Array
	case Object:
		obj := make([]Member, len(src.obj))
		for i := range src.obj {
			obj[i].Key = append([]byte(nil), src.obj[i].Key...)
			obj[i].Value.CopyFrom(&src.obj[i].Value)
		}
		dst.obj = obj
		dst.typ = Object
	}
}

// Clone returns a new Value holding an independent deep copy of v.
func (v *Value) Clone() *Value {
	clone := &Value{}
	clone.CopyFrom(v)
	return clone
}

// MoveFrom frees dst, relocates src's payload into dst, and resets src to
// Null. After MoveFrom, src is always safe to reuse or discard.
func (dst *Value) MoveFrom(src *Value) {
	dst.free()
	*dst = *src
	*src = Value{}
}

// Swap exchanges the payloads of v and other. No allocation occurs.
func (v *Value) Swap(other *Value) {
	*v, *other = *other, *v
}
