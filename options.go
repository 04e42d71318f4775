package attrval

// Transform rewrites one plain value node. Encode applies its transform
// to every node before classification; Decode applies its transform to
// every node after thawing. The core recursion itself is never modified
// by a transform; returning the input unchanged is the identity.
type Transform func(v any) (any, error)

type encodeConfig struct {
	limits    Limits
	transform Transform
}

type EncodeOption func(*encodeConfig)

func WithEncodeLimits(l Limits) EncodeOption {
	return func(c *encodeConfig) { c.limits = l }
}

// WithEncodeTransform installs a pre-encode hook, e.g. mapping native
// bools onto a Number before the freeze rules see them.
func WithEncodeTransform(fn Transform) EncodeOption {
	return func(c *encodeConfig) { c.transform = fn }
}

type decodeConfig struct {
	limits    Limits
	transform Transform
}

type DecodeOption func(*decodeConfig)

func WithDecodeLimits(l Limits) DecodeOption {
	return func(c *decodeConfig) { c.limits = l }
}

// WithDecodeTransform installs a post-decode hook applied to every thawed
// node, innermost first.
func WithDecodeTransform(fn Transform) DecodeOption {
	return func(c *decodeConfig) { c.transform = fn }
}

type writeConfig struct {
	limits      Limits
	compression Compression
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

func WithCompression(comp Compression) WriteOption {
	return func(c *writeConfig) { c.compression = comp }
}

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}
