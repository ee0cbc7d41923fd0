package dynval

// Custom is implemented by out-of-band payloads stored in a Value.
//
// String is the only required capability; both formatters use it. On the
// tree-based JSON path the rendered string is emitted as a raw, unescaped
// JSON fragment, which lets a Custom inject pre-formatted JSON.
//
// A Value only ever holds a shared handle to a Custom: cloning a Value copies
// the handle, so the same instance may be observed through multiple Values.
type Custom interface {
	String() string
}

// CustomType is optionally implemented by Custom payloads that expose a type
// discriminator, for callers who need to distinguish custom kinds before
// downcasting.
type CustomType interface {
	Custom
	Type() string
}
