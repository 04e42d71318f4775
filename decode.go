package attrval

import (
	"fmt"
	"strconv"
)

// Decode thaws one tagged value back into a plain value.
//
// The thaw direction is deliberately lossy and normalizing: B thaws to a
// plain string, SS and BS to a []any of strings, NS to a []any of
// numbers, and BOOL to int64(1) or int64(0), so that every thawed tree
// stays inside the universe Encode accepts. NULL thaws to nil no matter
// what the payload said. Numbers widen per the payload text: integral
// text becomes int64, anything else float64.
//
// A zero AttributeValue fails with [ErrUnsupportedTag]; an N or NS
// payload that is not numeric text fails with [ErrInvalidAttribute].
// Either failure propagates straight out of the recursion with no
// partial result.
func Decode(v AttributeValue, opts ...DecodeOption) (any, error) {
	cfg := decodeConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return decodeValue(v, &cfg, 0)
}

// DecodeItem thaws every attribute of a flat item.
func DecodeItem(item map[string]AttributeValue, opts ...DecodeOption) (map[string]any, error) {
	out := make(map[string]any, len(item))
	for name, v := range item {
		pv, err := Decode(v, opts...)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = pv
	}
	return out, nil
}

func decodeValue(v AttributeValue, cfg *decodeConfig, depth int) (any, error) {
	if depth > cfg.limits.MaxDepth {
		return nil, fmt.Errorf("%w: deeper than %d", ErrDepthExceeded, cfg.limits.MaxDepth)
	}

	var out any
	switch v.tag {
	case TagS, TagB:
		out = v.scalar

	case TagN:
		n, err := parseNumber(v.scalar)
		if err != nil {
			return nil, err
		}
		out = n

	case TagBool:
		if v.truth {
			out = int64(1)
		} else {
			out = int64(0)
		}

	case TagSS, TagBS:
		elems := make([]any, len(v.set))
		for i, s := range v.set {
			elems[i] = s
		}
		out = elems

	case TagNS:
		elems := make([]any, len(v.set))
		for i, s := range v.set {
			n, err := parseNumber(s)
			if err != nil {
				return nil, fmt.Errorf("NS[%d]: %w", i, err)
			}
			elems[i] = n
		}
		out = elems

	case TagL:
		elems := make([]any, 0, len(v.list))
		for i, elem := range v.list {
			pv, err := decodeValue(elem, cfg, depth+1)
			if err != nil {
				return nil, fmt.Errorf("list[%d]: %w", i, err)
			}
			elems = append(elems, pv)
		}
		out = elems

	case TagM:
		entries := make(map[string]any, len(v.attrs))
		for k, elem := range v.attrs {
			pv, err := decodeValue(elem, cfg, depth+1)
			if err != nil {
				return nil, fmt.Errorf("map[%q]: %w", k, err)
			}
			entries[k] = pv
		}
		out = entries

	case TagNull:
		out = nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTag, v.tag)
	}

	if cfg.transform != nil {
		return cfg.transform(out)
	}
	return out, nil
}

// parseNumber widens decimal text to int64 when it is integral and in
// range, float64 otherwise.
func parseNumber(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: N payload %q is not numeric", ErrInvalidAttribute, s)
	}
	return f, nil
}
