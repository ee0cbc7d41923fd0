package dynval

import "errors"

var (
	// ErrMalformedJSON is returned by FromJSON when the input is not a
	// well-formed JSON document. The underlying parser detail, if any, is
	// attached via wrapping.
	ErrMalformedJSON = errors.New("malformed JSON document")

	// ErrInvalidBlob is returned by Load when the input does not start with
	// a valid blob header.
	ErrInvalidBlob = errors.New("invalid blob header")

	// ErrUnknownCodec is returned by Load when the blob header names a codec
	// this build does not know.
	ErrUnknownCodec = errors.New("unknown codec name")
)
