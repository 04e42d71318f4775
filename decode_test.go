package attrval

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeTagTable(t *testing.T) {
	cases := []struct {
		name string
		in   AttributeValue
		want any
	}{
		{"S", Str("a"), "a"},
		{"B normalizes to string", Bin("a"), "a"},
		{"N integral widens to int64", Num("3"), int64(3)},
		{"N fractional widens to float64", Num("2.5"), float64(2.5)},
		{"N beyond int64 widens to float64", Num("9223372036854775808"), float64(9223372036854775808)},
		{"BOOL true is truthy scalar", Bool(true), int64(1)},
		{"BOOL false is falsy scalar", Bool(false), int64(0)},
		{"SS normalizes to list", StrSet("a", "b", "c"), []any{"a", "b", "c"}},
		{"BS normalizes to list", BinSet("a", "b", "c"), []any{"a", "b", "c"}},
		{"NS normalizes to numbers", NumSet("1", "2", "3"), []any{int64(1), int64(2), int64(3)}},
		{"L", List(Str("g"), Num("8")), []any{"g", int64(8)}},
		{"M", Map(map[string]AttributeValue{"c": Str("d")}), map[string]any{"c": "d"}},
		{"NULL", Null(), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.in)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(tc.want, got) {
				t.Fatalf("want %#v got %#v", tc.want, got)
			}
		})
	}
}

func TestDecodeZeroValue(t *testing.T) {
	var zero AttributeValue
	if _, err := Decode(zero); !errors.Is(err, ErrUnsupportedTag) {
		t.Fatalf("want ErrUnsupportedTag got %v", err)
	}
}

func TestDecodeBadNumberPayload(t *testing.T) {
	_, err := Decode(Num("abc"))
	if !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("want ErrInvalidAttribute got %v", err)
	}
	if !strings.Contains(err.Error(), "abc") {
		t.Fatalf("error must name the payload, got %q", err)
	}

	_, err = Decode(NumSet("1", "nope"))
	if !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("NS: want ErrInvalidAttribute got %v", err)
	}
}

func TestDecodeErrorNamesPath(t *testing.T) {
	tagged := Map(map[string]AttributeValue{
		"outer": List(Num("1"), Num("bad")),
	})
	_, err := Decode(tagged)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `map["outer"]`) || !strings.Contains(err.Error(), "list[1]") {
		t.Fatalf("error must locate the failing node, got %q", err)
	}
}

func TestDecodeNestedNormalization(t *testing.T) {
	// Composite data coming back from storage may carry any of the ten
	// tags; the thawed tree collapses them all into the plain universe.
	tagged := Map(map[string]AttributeValue{
		"bin":    Bin("payload"),
		"flags":  StrSet("a", "b"),
		"counts": NumSet("1", "2.5"),
		"on":     Bool(true),
		"gone":   Null(),
	})
	want := map[string]any{
		"bin":    "payload",
		"flags":  []any{"a", "b"},
		"counts": []any{int64(1), float64(2.5)},
		"on":     int64(1),
		"gone":   nil,
	}
	got, err := Decode(tagged)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("want %#v got %#v", want, got)
	}
}

func TestDecodeDepthExceeded(t *testing.T) {
	v := Str("leaf")
	for i := 0; i < 40; i++ {
		v = List(v)
	}
	if _, err := Decode(v); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("want ErrDepthExceeded got %v", err)
	}
	if _, err := Decode(v, WithDecodeLimits(Limits{MaxDepth: 64})); err != nil {
		t.Fatalf("raised limit: %v", err)
	}
}

func TestDecodeTransform(t *testing.T) {
	upper := func(v any) (any, error) {
		if s, ok := v.(string); ok {
			return strings.ToUpper(s), nil
		}
		return v, nil
	}
	got, err := Decode(List(Str("a"), Map(map[string]AttributeValue{"k": Str("b")})),
		WithDecodeTransform(upper))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{"A", map[string]any{"k": "B"}}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("want %#v got %#v", want, got)
	}
}

func TestDecodeTransformError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Decode(Str("x"), WithDecodeTransform(func(v any) (any, error) {
		return nil, boom
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("want transform error got %v", err)
	}
}
