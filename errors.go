package attrval

import "errors"

var (
	ErrUnsupportedValue   = errors.New("attrval: unsupported value kind")
	ErrUnsupportedTag     = errors.New("attrval: unsupported attribute tag")
	ErrInvalidAttribute   = errors.New("attrval: invalid attribute value")
	ErrDepthExceeded      = errors.New("attrval: nesting depth exceeded")
	ErrInvalidMagic       = errors.New("attrval: invalid magic")
	ErrUnsupportedVersion = errors.New("attrval: unsupported version")
	ErrInvalidHeader      = errors.New("attrval: invalid fixed header")
	ErrInvalidPayload     = errors.New("attrval: invalid payload")
	ErrLimitExceeded      = errors.New("attrval: limit exceeded")
	ErrValidation         = errors.New("attrval: validation failed")
)
