package attrval

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Encode freezes one plain value into its tagged form.
//
// The plain universe is nil, string, the native numeric types, [Number],
// json.Number, []any, and map[string]any. Classification is by static
// type: a string freezes to S even when its text parses as a number, a
// native numeric always freezes to N with its decimal string form as the
// payload. Callers holding a numeric string freeze it as a number by
// wrapping it in [Number].
//
// Encode only ever produces the tags S, N, L, M, and NULL. Anything
// outside the plain universe fails with [ErrUnsupportedValue]; this is a
// programming error at the call site, not a data error. Non-finite
// floats fail the same way, since their payload could never thaw.
func Encode(v any, opts ...EncodeOption) (AttributeValue, error) {
	cfg := encodeConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return encodeValue(v, &cfg, 0)
}

// EncodeItem freezes every attribute of a flat item. It adds no logic of
// its own beyond naming the failing attribute.
func EncodeItem(item map[string]any, opts ...EncodeOption) (map[string]AttributeValue, error) {
	out := make(map[string]AttributeValue, len(item))
	for name, v := range item {
		av, err := Encode(v, opts...)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = av
	}
	return out, nil
}

func encodeValue(v any, cfg *encodeConfig, depth int) (AttributeValue, error) {
	if depth > cfg.limits.MaxDepth {
		return AttributeValue{}, fmt.Errorf("%w: deeper than %d", ErrDepthExceeded, cfg.limits.MaxDepth)
	}
	if cfg.transform != nil {
		tv, err := cfg.transform(v)
		if err != nil {
			return AttributeValue{}, err
		}
		v = tv
	}

	switch val := v.(type) {
	case nil:
		return Null(), nil

	case map[string]any:
		entries := make(map[string]AttributeValue, len(val))
		for k, elem := range val {
			av, err := encodeValue(elem, cfg, depth+1)
			if err != nil {
				return AttributeValue{}, fmt.Errorf("map[%q]: %w", k, err)
			}
			entries[k] = av
		}
		return Map(entries), nil

	case []any:
		elems := make([]AttributeValue, 0, len(val))
		for i, elem := range val {
			av, err := encodeValue(elem, cfg, depth+1)
			if err != nil {
				return AttributeValue{}, fmt.Errorf("list[%d]: %w", i, err)
			}
			elems = append(elems, av)
		}
		return List(elems...), nil

	case string:
		return Str(val), nil
	case Number:
		return Num(string(val)), nil
	case json.Number:
		return Num(string(val)), nil

	case int:
		return Num(strconv.FormatInt(int64(val), 10)), nil
	case int8:
		return Num(strconv.FormatInt(int64(val), 10)), nil
	case int16:
		return Num(strconv.FormatInt(int64(val), 10)), nil
	case int32:
		return Num(strconv.FormatInt(int64(val), 10)), nil
	case int64:
		return Num(strconv.FormatInt(val, 10)), nil
	case uint:
		return Num(strconv.FormatUint(uint64(val), 10)), nil
	case uint8:
		return Num(strconv.FormatUint(uint64(val), 10)), nil
	case uint16:
		return Num(strconv.FormatUint(uint64(val), 10)), nil
	case uint32:
		return Num(strconv.FormatUint(uint64(val), 10)), nil
	case uint64:
		return Num(strconv.FormatUint(val, 10)), nil

	case float32:
		return encodeFloat(float64(val), 32)
	case float64:
		return encodeFloat(val, 64)

	default:
		return AttributeValue{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func encodeFloat(f float64, bits int) (AttributeValue, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return AttributeValue{}, fmt.Errorf("%w: non-finite float", ErrUnsupportedValue)
	}
	return Num(strconv.FormatFloat(f, 'f', -1, bits)), nil
}
