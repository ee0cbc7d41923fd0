package dynval

import "github.com/hupe1980/dynval/codec"

type options struct {
	codec       codec.Codec
	compression Compression
	logger      *Logger
}

// Option configures blob Save/Load behavior.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		codec:       codec.Default,
		compression: CompressionNone,
		logger:      NoopLogger(),
	}
}

// WithCodec configures the codec used to encode the document payload.
//
// If nil is passed, codec.Default is used. Load ignores this option: the
// codec is selected by the name recorded in the blob header.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures payload compression for Save.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger configures structured logging. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
