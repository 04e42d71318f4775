package attrval

type Limits struct {
	MaxDepth            int    // nesting depth of one value tree
	MaxAttributes       int    // top-level attributes per item
	MaxAttributeNameLen int    // bytes per attribute name
	MaxScalarLen        int    // bytes per S/B/SS/BS payload element
	MaxPayloadLen       uint64 // stored blob payload, as framed in the container
	MaxUncompressedLen  uint64 // wire JSON bytes after decompression
}

func defaultLimits() Limits {
	return Limits{
		MaxDepth:            32, // the storage service's own nesting ceiling
		MaxAttributes:       10_000,
		MaxAttributeNameLen: 1024,
		MaxScalarLen:        400 << 10,
		MaxPayloadLen:       16 << 20,
		MaxUncompressedLen:  64 << 20,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxDepth == 0 {
		l.MaxDepth = d.MaxDepth
	}
	if l.MaxAttributes == 0 {
		l.MaxAttributes = d.MaxAttributes
	}
	if l.MaxAttributeNameLen == 0 {
		l.MaxAttributeNameLen = d.MaxAttributeNameLen
	}
	if l.MaxScalarLen == 0 {
		l.MaxScalarLen = d.MaxScalarLen
	}
	if l.MaxPayloadLen == 0 {
		l.MaxPayloadLen = d.MaxPayloadLen
	}
	if l.MaxUncompressedLen == 0 {
		l.MaxUncompressedLen = d.MaxUncompressedLen
	}
	return l
}
