// Package attrval converts between plain Go values and the tagged
// attribute-value encoding used by key-value document stores.
//
// Every stored value is wrapped in a single-tag node describing its
// storage type: S (string), N (number), B (binary), BOOL, SS/NS/BS
// (sets), L (list), M (map), or NULL. Encode freezes a plain value into
// that form; Decode thaws it back.
//
// # Freezing
//
// Classification is by static type: strings freeze to S, native numerics
// (and [Number] / json.Number) freeze to N with a decimal string
// payload, map[string]any to M, []any to L, nil to NULL. A string whose
// text happens to parse as a number still freezes to S; wrap it in
// [Number] to declare numeric intent. Encode never produces B, BOOL, or
// the set tags.
//
//	av, err := attrval.Encode(map[string]any{
//		"name":  "widget",
//		"price": 19.99,
//		"dims":  []any{4, 2, 1},
//	})
//
// # Thawing
//
// Decode understands all ten tags but is deliberately normalizing: B
// thaws to a plain string, the set tags to plain lists, BOOL to an
// int64 0/1, and NULL to nil regardless of payload. The thawed tree is
// always re-freezable.
//
// # Items
//
// EncodeItem and DecodeItem apply the codec across a flat attribute
// mapping, the unit one storage record holds. MarshalItem and
// UnmarshalItem produce the JSON wire form of such an item, and
// WriteItem/ReadItem frame it as a binary blob with optional ZIP,
// Zstandard, LZ4, or Brotli compression for archival or cache transport.
//
// # Security Considerations
//
// ReadItem enforces configurable [Limits] on payload size, decompressed
// size, attribute counts, and nesting depth, protecting against
// decompression bombs and adversarially deep input. Encode and Decode
// enforce the depth limit as well.
package attrval
