package types

import (
	"math"
	"testing"

	"relstore/pkg/dberr"
)

func TestCoerce(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want Field
	}{
		{"nil", nil, Null},
		{"int", 42, NewIntField(42)},
		{"int64", int64(-7), NewIntField(-7)},
		{"int8", int8(3), NewIntField(3)},
		{"uint16", uint16(9), NewIntField(9)},
		{"uint64", uint64(10), NewIntField(10)},
		{"float64", 2.5, NewFloatField(2.5)},
		{"float32", float32(0.5), NewFloatField(0.5)},
		{"string", "hi", NewStringField("hi")},
		{"bool", true, NewBoolField(true)},
		{"bytes", []byte{1, 2}, NewBytesField([]byte{1, 2})},
	}

	for _, c := range cases {
		got, err := Coerce(c.in)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if !got.Equals(c.want) {
			t.Errorf("%s: Coerce(%v) = %v, want %v", c.name, c.in, got, c.want)
		}
	}
}

func TestCoerce_FieldIdentity(t *testing.T) {
	f := NewIntField(5)
	got, err := Coerce(f)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != f {
		t.Error("Coerce should pass already-typed fields through unchanged")
	}
}

func TestCoerce_Unsupported(t *testing.T) {
	for _, in := range []any{struct{}{}, map[string]int{}, []int{1}, make(chan int)} {
		_, err := Coerce(in)
		if err == nil {
			t.Errorf("Coerce(%T) should fail", in)
			continue
		}
		if !dberr.IsTypeError(err) {
			t.Errorf("Coerce(%T) error = %v, want TypeError", in, err)
		}
	}
}

func TestCoerce_UintOverflow(t *testing.T) {
	_, err := Coerce(uint64(math.MaxUint64))
	if err == nil {
		t.Fatal("Expected overflow to fail")
	}
	if !dberr.IsTypeError(err) {
		t.Errorf("Expected TypeError, got %v", err)
	}
}
