package leptcanon_test

import (
	"math"
	"testing"

	"github.com/foolish-han/leptjson-go/lepterr"
	"github.com/foolish-han/leptjson-go/leptcanon"
	"github.com/foolish-han/leptjson-go/leptvalue"
)

func parse(t *testing.T, json string) *leptvalue.Value {
	t.Helper()
	v, err := leptvalue.Parse([]byte(json))
	if err != nil {
		t.Fatalf("Parse(%q): %v", json, err)
	}
	return v
}

func TestCanonicalizeSortsObjectKeysByUTF16CodeUnit(t *testing.T) {
	v := parse(t, `{"b":1,"a":2,"c":3}`)
	got, err := leptcanon.Canonicalize(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"a":2,"b":1,"c":3}` {
		t.Fatalf("Canonicalize = %s, want sorted keys", got)
	}
}

func TestCanonicalizeSortsNestedObjects(t *testing.T) {
	v := parse(t, `{"z":{"y":1,"x":2},"a":1}`)
	got, err := leptcanon.Canonicalize(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"a":1,"z":{"x":2,"y":1}}` {
		t.Fatalf("Canonicalize = %s, want nested sort", got)
	}
}

func TestCanonicalizePreservesArrayOrder(t *testing.T) {
	v := parse(t, `[3,1,2]`)
	got, err := leptcanon.Canonicalize(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[3,1,2]` {
		t.Fatalf("Canonicalize = %s, array order must be preserved", got)
	}
}

func TestCanonicalizeStringEscaping(t *testing.T) {
	v := parse(t, `"tab\tnewline\nslash/quote\""`)
	got, err := leptcanon.Canonicalize(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `"tab\tnewline\nslash/quote\""`
	if string(got) != want {
		t.Fatalf("Canonicalize = %s, want %s", got, want)
	}
}

func TestCanonicalizeLowercaseHexEscape(t *testing.T) {
	v := parse(t, "\"\\u001F\"")
	got, err := leptcanon.Canonicalize(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `"\u001f"` {
		t.Fatalf("Canonicalize = %s, want lowercase \\u001f escape", got)
	}
}

func TestCanonicalizeRejectsNonFiniteNumber(t *testing.T) {
	var v leptvalue.Value
	v.SetNumber(math.NaN())
	_, err := leptcanon.Canonicalize(&v)
	if err == nil {
		t.Fatal("Canonicalize accepted NaN")
	}
	var le *lepterr.Error
	if !asLeptErr(err, &le) || le.Code != lepterr.NonFiniteNumber {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCanonicalizeRejectsInvalidUTF8(t *testing.T) {
	var v leptvalue.Value
	v.SetString([]byte{0xff, 0xfe})
	_, err := leptcanon.Canonicalize(&v)
	if err == nil {
		t.Fatal("Canonicalize accepted invalid UTF-8")
	}
}

func TestCanonicalizeRejectsDuplicateKeys(t *testing.T) {
	v := parse(t, `{"a":1,"a":2}`)
	_, err := leptcanon.Canonicalize(v)
	if err == nil {
		t.Fatal("Canonicalize accepted an object with a duplicate key")
	}
	var le *lepterr.Error
	if !asLeptErr(err, &le) || le.Code != lepterr.DuplicateObjectKey {
		t.Fatalf("unexpected error: %v", err)
	}
}

func asLeptErr(err error, target **lepterr.Error) bool {
	le, ok := err.(*lepterr.Error)
	if !ok {
		return false
	}
	*target = le
	return true
}
