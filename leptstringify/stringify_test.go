package leptstringify_test

import (
	"testing"

	"github.com/foolish-han/leptjson-go/leptstringify"
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

func TestStringifyLiterals(t *testing.T) {
	cases := map[string]string{
		"null":  "null",
		"true":  "true",
		"false": "false",
	}
	for in, want := range cases {
		got := string(leptstringify.Stringify(parse(t, in)))
		if got != want {
			t.Fatalf("Stringify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStringifyNumbers(t *testing.T) {
	for _, in := range []string{"0", "-0", "1", "-1", "1.5", "3.1416", "1e30", "1e-30", "-1.5e100"} {
		v := parse(t, in)
		out := leptstringify.Stringify(v)
		roundTripped, err := leptvalue.Parse(out)
		if err != nil {
			t.Fatalf("Stringify(%q) = %q did not reparse: %v", in, out, err)
		}
		if roundTripped.Number() != v.Number() {
			t.Fatalf("number round trip changed value: %v -> %q -> %v", v.Number(), out, roundTripped.Number())
		}
	}
}

func TestStringifyStringEscapes(t *testing.T) {
	cases := map[string]string{
		`""`:                         `""`,
		`"hello"`:                    `"hello"`,
		`"a\"b"`:                     `"a\"b"`,
		`"a\\b"`:                     `"a\\b"`,
		"\"a\\u0001b\"": "\"a\\u0001b\"",
		`"tab\there"`:                 `"tab\there"`,
		`"newline\nhere"`:             `"newline\nhere"`,
		`"slash/stays"`:               `"slash/stays"`,
	}
	for in, want := range cases {
		got := string(leptstringify.Stringify(parse(t, in)))
		if got != want {
			t.Fatalf("Stringify(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestStringifyPreservesArrayOrder(t *testing.T) {
	v := parse(t, "[3,1,2]")
	got := string(leptstringify.Stringify(v))
	if got != "[3,1,2]" {
		t.Fatalf("array order not preserved: %s", got)
	}
}

func TestStringifyPreservesObjectInsertionOrder(t *testing.T) {
	v := parse(t, `{"z":1,"a":2,"m":3}`)
	got := string(leptstringify.Stringify(v))
	if got != `{"z":1,"a":2,"m":3}` {
		t.Fatalf("object insertion order not preserved: %s", got)
	}
}

func TestStringifyKeepsDuplicateKeys(t *testing.T) {
	v := parse(t, `{"a":1,"a":2}`)
	got := string(leptstringify.Stringify(v))
	if got != `{"a":1,"a":2}` {
		t.Fatalf("duplicate keys were not preserved verbatim: %s", got)
	}
}

func TestStringifyRoundTripsThroughParse(t *testing.T) {
	originals := []string{
		`{"a":[1,2.5,"x",true,false,null],"b":{},"c":[]}`,
		`[[[[]]]]`,
		`""`,
	}
	for _, in := range originals {
		v := parse(t, in)
		out := leptstringify.Stringify(v)
		reparsed, err := leptvalue.Parse(out)
		if err != nil {
			t.Fatalf("Stringify(%q) = %q failed to reparse: %v", in, out, err)
		}
		if !v.Equal(reparsed) {
			t.Fatalf("round trip changed value: %q -> %q", in, out)
		}
	}
}
