package attrval

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// validateItem checks an item against the blob container's data
// contract. Encode and Decode stay total over their universes; only the
// container enforces item-level shape.
func validateItem(item map[string]AttributeValue, limits Limits) error {
	if len(item) > limits.MaxAttributes {
		return fmt.Errorf("%w: too many attributes", ErrLimitExceeded)
	}
	for name, v := range item {
		if err := validateAttributeName(name, limits); err != nil {
			return err
		}
		if err := validateAttribute(v, limits, 0); err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
	}
	return nil
}

func validateAttributeName(name string, limits Limits) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty attribute name", ErrValidation)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: attribute name is not valid UTF-8", ErrValidation)
	}
	if len(name) > limits.MaxAttributeNameLen {
		return fmt.Errorf("%w: attribute name too long", ErrLimitExceeded)
	}
	return nil
}

func validateAttribute(v AttributeValue, limits Limits, depth int) error {
	if depth > limits.MaxDepth {
		return fmt.Errorf("%w: deeper than %d", ErrDepthExceeded, limits.MaxDepth)
	}
	switch v.tag {
	case TagS, TagB:
		if len(v.scalar) > limits.MaxScalarLen {
			return fmt.Errorf("%w: %s payload too large", ErrLimitExceeded, v.tag)
		}

	case TagN:
		if _, err := parseNumber(v.scalar); err != nil {
			return fmt.Errorf("%w: N payload %q is not numeric", ErrValidation, v.scalar)
		}

	case TagSS, TagBS:
		for i, s := range v.set {
			if len(s) > limits.MaxScalarLen {
				return fmt.Errorf("%w: %s[%d] too large", ErrLimitExceeded, v.tag, i)
			}
		}

	case TagNS:
		for i, s := range v.set {
			if _, err := parseNumber(s); err != nil {
				return fmt.Errorf("%w: NS[%d] payload %q is not numeric", ErrValidation, i, s)
			}
		}

	case TagBool, TagNull:

	case TagL:
		for i, elem := range v.list {
			if err := validateAttribute(elem, limits, depth+1); err != nil {
				return fmt.Errorf("list[%d]: %w", i, err)
			}
		}

	case TagM:
		for k, elem := range v.attrs {
			if err := validateAttributeName(k, limits); err != nil {
				return fmt.Errorf("map key %q: %w", k, err)
			}
			if err := validateAttribute(elem, limits, depth+1); err != nil {
				return fmt.Errorf("map[%q]: %w", k, err)
			}
		}

	default:
		return fmt.Errorf("%w: value has no tag", ErrValidation)
	}
	return nil
}
