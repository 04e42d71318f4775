package attrval

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Blob container: one item framed as a self-describing binary blob for
// archival or cache transport. A blob is a 24-byte fixed header followed
// by the item's wire JSON, optionally compressed.

// Magic is the 8-byte blob signature.
var Magic = [8]byte{'A', 'T', 'T', 'R', 'V', '\r', '\n', 0x1A}

const (
	VersionV1 uint16 = 1

	fixedHeaderSizeV1 uint32 = 24
)

type Compression uint16

const (
	CompNone Compression = 0x0
	CompZIP  Compression = 0x1
	CompZSTD Compression = 0x2
	CompLZ4  Compression = 0x3
	CompBR   Compression = 0x4
)

const (
	headerFlagCompressionMask    uint16 = 0x000F
	headerFlagHasUncompressedLen uint16 = 0x0010
)

type fixedHeaderV1 struct {
	Magic      [8]byte
	Version    uint16
	Flags      uint16
	PayloadLen uint64
	Reserved   uint32
}

func (h fixedHeaderV1) compression() Compression {
	return Compression(h.Flags & headerFlagCompressionMask)
}

func (h fixedHeaderV1) hasUncompressedLen() bool {
	return (h.Flags & headerFlagHasUncompressedLen) != 0
}

func readFixedHeader(r io.Reader) (fixedHeaderV1, error) {
	var buf [fixedHeaderSizeV1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return fixedHeaderV1{}, err
	}
	var h fixedHeaderV1
	copy(h.Magic[:], buf[0:8])
	h.Version = binary.LittleEndian.Uint16(buf[8:10])
	h.Flags = binary.LittleEndian.Uint16(buf[10:12])
	h.PayloadLen = binary.LittleEndian.Uint64(buf[12:20])
	h.Reserved = binary.LittleEndian.Uint32(buf[20:24])
	return h, nil
}

func writeFixedHeader(w io.Writer, h fixedHeaderV1) error {
	var buf [fixedHeaderSizeV1]byte
	copy(buf[0:8], h.Magic[:])
	binary.LittleEndian.PutUint16(buf[8:10], h.Version)
	binary.LittleEndian.PutUint16(buf[10:12], h.Flags)
	binary.LittleEndian.PutUint64(buf[12:20], h.PayloadLen)
	binary.LittleEndian.PutUint32(buf[20:24], h.Reserved)
	_, err := w.Write(buf[:])
	return err
}

// WriteItem frames item as a v1 blob on w.
//
// The item is validated first (attribute names, numeric payload syntax,
// nesting depth, limits). By default the payload is Zstandard
// compressed; use WithCompression to pick another codec or CompNone, and
// WithWriteLimits to change the limits.
func WriteItem(w io.Writer, item map[string]AttributeValue, opts ...WriteOption) error {
	cfg := writeConfig{limits: defaultLimits(), compression: CompZSTD}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrValidation)
	}
	if err := validateItem(item, cfg.limits); err != nil {
		return err
	}

	wireJSON, err := MarshalItem(item)
	if err != nil {
		return err
	}
	if uint64(len(wireJSON)) > cfg.limits.MaxUncompressedLen {
		return fmt.Errorf("%w: wire JSON too large", ErrLimitExceeded)
	}

	flags, payload, err := compressPayload(cfg.compression, wireJSON)
	if err != nil {
		return err
	}
	if uint64(len(payload)) > cfg.limits.MaxPayloadLen {
		return fmt.Errorf("%w: payload too large", ErrLimitExceeded)
	}

	h := fixedHeaderV1{
		Magic:      Magic,
		Version:    VersionV1,
		Flags:      flags,
		PayloadLen: uint64(len(payload)),
		Reserved:   0,
	}
	if err := writeFixedHeader(w, h); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// ReadItem reads one blob from r and returns the framed item.
//
// ReadItem returns ErrInvalidMagic if r does not hold a blob,
// ErrUnsupportedVersion for versions other than 1, ErrLimitExceeded when
// a size limit is exceeded (including the decompression bomb guard), and
// ErrValidation when the framed item fails validation.
func ReadItem(r io.Reader, opts ...ReadOption) (map[string]AttributeValue, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	h, err := readFixedHeader(r)
	if err != nil {
		return nil, err
	}
	if h.Magic != Magic {
		return nil, ErrInvalidMagic
	}
	if h.Version != VersionV1 {
		return nil, ErrUnsupportedVersion
	}
	if h.Reserved != 0 {
		return nil, fmt.Errorf("%w: reserved must be zero", ErrInvalidHeader)
	}
	switch h.compression() {
	case CompNone, CompZIP, CompZSTD, CompLZ4, CompBR:
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidHeader, h.compression())
	}
	if h.PayloadLen > cfg.limits.MaxPayloadLen {
		return nil, fmt.Errorf("%w: payload length %d", ErrLimitExceeded, h.PayloadLen)
	}

	payload := make([]byte, h.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	wireJSON, err := decompressPayload(h.compression(), h.Flags, payload, cfg.limits.MaxUncompressedLen)
	if err != nil {
		return nil, err
	}

	item, err := UnmarshalItem(wireJSON)
	if err != nil {
		return nil, err
	}
	if err := validateItem(item, cfg.limits); err != nil {
		return nil, err
	}
	return item, nil
}
