package leptvalue_test

import (
	"math"
	"testing"

	"github.com/foolish-han/leptjson-go/leptvalue"
)

func TestZeroValueIsNull(t *testing.T) {
	var v leptvalue.Value
	if v.Type() != leptvalue.Null {
		t.Fatalf("zero value type = %s, want null", v.Type())
	}
}

func TestSetBool(t *testing.T) {
	var v leptvalue.Value
	v.SetBool(true)
	if v.Type() != leptvalue.True || !v.Bool() {
		t.Fatalf("SetBool(true) produced %s", v.Type())
	}
	v.SetBool(false)
	if v.Type() != leptvalue.False || v.Bool() {
		t.Fatalf("SetBool(false) produced %s", v.Type())
	}
}

func TestSetNumber(t *testing.T) {
	var v leptvalue.Value
	v.SetNumber(3.1415)
	if v.Type() != leptvalue.Number || v.Number() != 3.1415 {
		t.Fatalf("SetNumber round trip failed: %v", v.Number())
	}
}

func TestSetStringCopies(t *testing.T) {
	var v leptvalue.Value
	src := []byte("hello")
	v.SetString(src)
	src[0] = 'H'
	if string(v.StringValue()) != "hello" {
		t.Fatalf("SetString aliased caller's slice: %q", v.StringValue())
	}
	if v.StringLen() != 5 {
		t.Fatalf("StringLen = %d, want 5", v.StringLen())
	}
}

func TestAccessorPanicsOnWrongType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Number() on a String value did not panic")
		}
	}()
	var v leptvalue.Value
	v.SetString([]byte("x"))
	v.Number()
}

func TestFreeResetsToNull(t *testing.T) {
	var v leptvalue.Value
	v.SetString([]byte("x"))
	v.Free()
	if v.Type() != leptvalue.Null {
		t.Fatalf("Free left type %s", v.Type())
	}
	v.Free() // idempotent
}

func TestEqualPrimitives(t *testing.T) {
	var a, b leptvalue.Value
	a.SetNumber(1.5)
	b.SetNumber(1.5)
	if !a.Equal(&b) {
		t.Fatal("equal numbers reported unequal")
	}
	b.SetNumber(1.6)
	if a.Equal(&b) {
		t.Fatal("unequal numbers reported equal")
	}
}

func TestEqualNaNIsNeverEqual(t *testing.T) {
	var a, b leptvalue.Value
	a.SetNumber(math.NaN())
	b.SetNumber(math.NaN())
	if a.Equal(&b) {
		t.Fatal("NaN compared equal to NaN")
	}
	if a.Equal(&a) {
		t.Fatal("NaN compared equal to itself")
	}
}

func TestEqualArraysAndObjects(t *testing.T) {
	a, err := leptvalue.Parse([]byte(`{"a":1,"b":[true,null]}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := leptvalue.Parse([]byte(`{"b":[true,null],"a":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("objects with the same members in different order compared unequal")
	}
	c, err := leptvalue.Parse([]byte(`{"a":1,"b":[true,false]}`))
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Fatal("objects with different nested array contents compared equal")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original, err := leptvalue.Parse([]byte(`{"nums":[1,2,3]}`))
	if err != nil {
		t.Fatal(err)
	}
	clone := original.Clone()
	clone.ObjectValue(0).ArrayGet(0).SetNumber(99)
	if original.ObjectValue(0).ArrayGet(0).Number() == 99 {
		t.Fatal("Clone shared backing storage with the original")
	}
	if !original.Equal(original.Clone()) {
		t.Fatal("cloning twice should still be equal to itself")
	}
}

func TestMoveFromResetsSource(t *testing.T) {
	var src, dst leptvalue.Value
	src.SetString([]byte("payload"))
	dst.MoveFrom(&src)
	if dst.Type() != leptvalue.String || string(dst.StringValue()) != "payload" {
		t.Fatalf("MoveFrom did not relocate payload: %s", dst.Type())
	}
	if src.Type() != leptvalue.Null {
		t.Fatalf("MoveFrom left source as %s, want null", src.Type())
	}
}

func TestSwap(t *testing.T) {
	var a, b leptvalue.Value
	a.SetNumber(1)
	b.SetString([]byte("x"))
	a.Swap(&b)
	if a.Type() != leptvalue.String || b.Type() != leptvalue.Number {
		t.Fatalf("Swap did not exchange payloads: a=%s b=%s", a.Type(), b.Type())
	}
}
