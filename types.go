package attrval

// Tag identifies the storage type of an attribute value. The wire names
// (see [Tag.String]) are a fixed contract with the storage service's
// attribute-value schema and are case-sensitive.
type Tag uint8

const (
	TagInvalid Tag = iota
	TagS           // string
	TagN           // number, carried as its decimal string form
	TagB           // binary, carried as a string
	TagBool        // boolean
	TagSS          // string set
	TagNS          // number set
	TagBS          // binary set
	TagL           // list
	TagM           // map
	TagNull        // null
)

// String returns the wire name of the tag.
func (t Tag) String() string {
	switch t {
	case TagS:
		return "S"
	case TagN:
		return "N"
	case TagB:
		return "B"
	case TagBool:
		return "BOOL"
	case TagSS:
		return "SS"
	case TagNS:
		return "NS"
	case TagBS:
		return "BS"
	case TagL:
		return "L"
	case TagM:
		return "M"
	case TagNull:
		return "NULL"
	default:
		return "invalid"
	}
}

func tagFromName(name string) Tag {
	switch name {
	case "S":
		return TagS
	case "N":
		return TagN
	case "B":
		return TagB
	case "BOOL":
		return TagBool
	case "SS":
		return TagSS
	case "NS":
		return TagNS
	case "BS":
		return TagBS
	case "L":
		return TagL
	case "M":
		return TagM
	case "NULL":
		return TagNull
	default:
		return TagInvalid
	}
}

// Number is a numeric scalar carried as its exact decimal string form.
// Use it on the plain side of [Encode] when a value must classify as a
// number without passing through a native float, e.g. high-precision
// decimals read from another system.
type Number string

func (n Number) String() string { return string(n) }

// AttributeValue is one node of a tagged value tree: exactly one tag and
// the payload belonging to it. The zero value carries no tag and is
// rejected by Decode, MarshalJSON, and item validation.
//
// Container payloads returned by the accessors are not copied; a value
// tree is transient and owned by whoever built it.
type AttributeValue struct {
	tag Tag

	scalar string // S, N, B
	truth  bool   // BOOL
	set    []string
	list   []AttributeValue
	attrs  map[string]AttributeValue
}

// Str returns an S-tagged value.
func Str(s string) AttributeValue { return AttributeValue{tag: TagS, scalar: s} }

// Num returns an N-tagged value. The payload must be the decimal string
// form of a number; [Encode] produces it from native numerics, and item
// validation checks the syntax.
func Num(s string) AttributeValue { return AttributeValue{tag: TagN, scalar: s} }

// Bin returns a B-tagged value.
func Bin(s string) AttributeValue { return AttributeValue{tag: TagB, scalar: s} }

// Bool returns a BOOL-tagged value.
func Bool(v bool) AttributeValue { return AttributeValue{tag: TagBool, truth: v} }

// StrSet returns an SS-tagged value.
func StrSet(elems ...string) AttributeValue { return AttributeValue{tag: TagSS, set: elems} }

// NumSet returns an NS-tagged value. Elements are decimal strings.
func NumSet(elems ...string) AttributeValue { return AttributeValue{tag: TagNS, set: elems} }

// BinSet returns a BS-tagged value.
func BinSet(elems ...string) AttributeValue { return AttributeValue{tag: TagBS, set: elems} }

// List returns an L-tagged value.
func List(elems ...AttributeValue) AttributeValue { return AttributeValue{tag: TagL, list: elems} }

// Map returns an M-tagged value.
func Map(entries map[string]AttributeValue) AttributeValue {
	return AttributeValue{tag: TagM, attrs: entries}
}

// Null returns a NULL-tagged value.
func Null() AttributeValue { return AttributeValue{tag: TagNull} }

// Tag returns the value's tag, or TagInvalid for the zero value.
func (v AttributeValue) Tag() Tag { return v.tag }

// IsNull reports whether the value is NULL-tagged.
func (v AttributeValue) IsNull() bool { return v.tag == TagNull }

// Scalar returns the payload of an S, N, or B value, or "" otherwise.
func (v AttributeValue) Scalar() string { return v.scalar }

// Truth returns the payload of a BOOL value, or false otherwise.
func (v AttributeValue) Truth() bool { return v.truth }

// Set returns the payload of an SS, NS, or BS value, or nil otherwise.
func (v AttributeValue) Set() []string { return v.set }

// Elems returns the payload of an L value, or nil otherwise.
func (v AttributeValue) Elems() []AttributeValue { return v.list }

// Entries returns the payload of an M value, or nil otherwise.
func (v AttributeValue) Entries() map[string]AttributeValue { return v.attrs }
