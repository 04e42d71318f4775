package attrval

import (
	"encoding/json"
	"fmt"
)

// The wire form of a tagged value is a one-key JSON object whose key is
// the tag's wire name. The ten names and their payload shapes are a
// fixed contract with the storage service and must not drift.

// MarshalJSON emits the wire form. Nil container payloads are emitted as
// empty containers, so a freshly built List() or Map(nil) still frames
// as [] / {}. Marshaling a zero AttributeValue fails with
// [ErrInvalidAttribute].
func (v AttributeValue) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.tag {
	case TagS, TagN, TagB:
		payload = v.scalar
	case TagBool:
		payload = v.truth
	case TagSS, TagNS, TagBS:
		if v.set == nil {
			payload = []string{}
		} else {
			payload = v.set
		}
	case TagL:
		if v.list == nil {
			payload = []AttributeValue{}
		} else {
			payload = v.list
		}
	case TagM:
		if v.attrs == nil {
			payload = map[string]AttributeValue{}
		} else {
			payload = v.attrs
		}
	case TagNull:
		payload = true
	default:
		return nil, fmt.Errorf("%w: no tag set", ErrInvalidAttribute)
	}

	inner, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(inner)+len(v.tag.String())+4)
	out = append(out, '{', '"')
	out = append(out, v.tag.String()...)
	out = append(out, '"', ':')
	out = append(out, inner...)
	out = append(out, '}')
	return out, nil
}

// UnmarshalJSON parses the wire form. A node carrying zero or more than
// one tag key is malformed input and fails with [ErrInvalidAttribute]
// rather than picking a key; an unknown tag fails with
// [ErrUnsupportedTag] naming it.
func (v *AttributeValue) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAttribute, err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("%w: wire value must carry exactly one tag, got %d", ErrInvalidAttribute, len(raw))
	}

	var name string
	var payload json.RawMessage
	for k, p := range raw {
		name, payload = k, p
	}

	tag := tagFromName(name)
	switch tag {
	case TagS, TagN, TagB:
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return fmt.Errorf("%w: %s payload must be a string", ErrInvalidAttribute, name)
		}
		*v = AttributeValue{tag: tag, scalar: s}

	case TagBool:
		b, err := unmarshalTruth(payload)
		if err != nil {
			return err
		}
		*v = Bool(b)

	case TagSS, TagNS, TagBS:
		var elems []string
		if err := json.Unmarshal(payload, &elems); err != nil {
			return fmt.Errorf("%w: %s payload must be an array of strings", ErrInvalidAttribute, name)
		}
		*v = AttributeValue{tag: tag, set: elems}

	case TagL:
		var elems []AttributeValue
		if err := json.Unmarshal(payload, &elems); err != nil {
			return err
		}
		*v = List(elems...)

	case TagM:
		var entries map[string]AttributeValue
		if err := json.Unmarshal(payload, &entries); err != nil {
			return err
		}
		if entries == nil {
			entries = map[string]AttributeValue{}
		}
		*v = Map(entries)

	case TagNull:
		// The payload is a truthy sentinel and is discarded.
		*v = Null()

	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedTag, name)
	}
	return nil
}

// unmarshalTruth accepts the boolean-ish payload forms BOOL ships in:
// true/false or the numbers 0/1.
func unmarshalTruth(payload json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(payload, &b); err == nil {
		return b, nil
	}
	var n float64
	if err := json.Unmarshal(payload, &n); err == nil && (n == 0 || n == 1) {
		return n == 1, nil
	}
	return false, fmt.Errorf("%w: BOOL payload must be true/false or 0/1", ErrInvalidAttribute)
}

// MarshalItem emits a whole item as a JSON object of wire values.
func MarshalItem(item map[string]AttributeValue) ([]byte, error) {
	if item == nil {
		item = map[string]AttributeValue{}
	}
	return json.Marshal(item)
}

// UnmarshalItem parses a JSON object of wire values.
func UnmarshalItem(data []byte) (map[string]AttributeValue, error) {
	var item map[string]AttributeValue
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item must be a JSON object", ErrInvalidAttribute)
	}
	return item, nil
}
