package attrval

import (
	"bytes"
	"io"
	"reflect"
	"testing"
)

func sampleItem() map[string]AttributeValue {
	return map[string]AttributeValue{
		"id":     Str("widget-7"),
		"price":  Num("19.99"),
		"thumb":  Bin("aGVsbG8="),
		"active": Bool(true),
		"tags":   StrSet("sale", "new"),
		"scores": NumSet("1", "2.5", "-3"),
		"chunks": BinSet("AA==", "AQ=="),
		"dims":   List(Num("4"), Num("2"), Num("1")),
		"meta": Map(map[string]AttributeValue{
			"color":    Str("red"),
			"replaces": Null(),
		}),
	}
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, io.ErrClosedPipe
	}
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, io.ErrClosedPipe
	}
	w.n -= len(p)
	return len(p), nil
}

func compressionName(c Compression) string {
	switch c {
	case CompNone:
		return "none"
	case CompZIP:
		return "zip"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBR:
		return "brotli"
	default:
		return "unknown"
	}
}

func TestBlobRoundTrip_AllCompressions(t *testing.T) {
	comps := []Compression{CompNone, CompZIP, CompZSTD, CompLZ4, CompBR}
	for _, comp := range comps {
		t.Run("comp="+compressionName(comp), func(t *testing.T) {
			item := sampleItem()
			var buf bytes.Buffer
			if err := WriteItem(&buf, item, WithCompression(comp)); err != nil {
				t.Fatalf("WriteItem: %v", err)
			}
			got, err := ReadItem(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("ReadItem: %v", err)
			}
			if !reflect.DeepEqual(item, got) {
				t.Fatalf("item mismatch\nwant: %#v\ngot:  %#v", item, got)
			}
		})
	}
}

func TestFreezeThawRoundTrip(t *testing.T) {
	plain := map[string]any{
		"name":  "widget",
		"price": 19.99,
		"code":  "3", // text, must stay a string through the round trip
		"count": int64(42),
		"dims":  []any{int64(4), int64(2), int64(1)},
		"meta": map[string]any{
			"color":    "red",
			"replaces": nil,
		},
	}
	frozen, err := Encode(plain)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	thawed, err := Decode(frozen)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(plain, thawed) {
		t.Fatalf("round trip mismatch\nwant: %#v\ngot:  %#v", plain, thawed)
	}
}

// Thawing a tree that uses only the tags Encode itself produces, then
// freezing and thawing again, must be a fixed point.
func TestLossyThawIdempotence(t *testing.T) {
	tagged := Map(map[string]AttributeValue{
		"a": List(Str("b"), Map(map[string]AttributeValue{"c": Str("d")})),
		"n": Num("2.5"),
		"z": Null(),
	})
	first, err := Decode(tagged)
	if err != nil {
		t.Fatal(err)
	}
	refrozen, err := Encode(first)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Decode(refrozen)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("thaw not idempotent\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

func TestItemWrappers(t *testing.T) {
	plain := map[string]any{
		"pk":    "user#1",
		"age":   int64(30),
		"notes": nil,
	}
	frozen, err := EncodeItem(plain)
	if err != nil {
		t.Fatalf("EncodeItem: %v", err)
	}
	want := map[string]AttributeValue{
		"pk":    Str("user#1"),
		"age":   Num("30"),
		"notes": Null(),
	}
	if !reflect.DeepEqual(want, frozen) {
		t.Fatalf("frozen mismatch\nwant: %#v\ngot:  %#v", want, frozen)
	}
	thawed, err := DecodeItem(frozen)
	if err != nil {
		t.Fatalf("DecodeItem: %v", err)
	}
	if !reflect.DeepEqual(plain, thawed) {
		t.Fatalf("thawed mismatch\nwant: %#v\ngot:  %#v", plain, thawed)
	}
}

func TestWriteItemNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteItem(&buf, nil); err == nil {
		t.Fatal("expected error for nil item")
	}
}

func TestWriteItemShortWriter(t *testing.T) {
	for _, n := range []int{0, 10, 30} {
		w := &failingWriter{n: n}
		if err := WriteItem(w, sampleItem(), WithCompression(CompNone)); err == nil {
			t.Fatalf("expected write error with budget %d", n)
		}
	}
}
