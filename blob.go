package dynval

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/dynval/codec"
	"github.com/hupe1980/dynval/internal/conv"
)

// Compression defines the compression algorithm used for blob payloads.
type Compression uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone Compression = 0
	// CompressionLZ4 indicates LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZSTD indicates ZSTD compression (better ratio, good for cold data).
	CompressionZSTD Compression = 2
)

// Blob layout:
//
//	magic(4) | version u16 LE | compression u8 | nameLen u8 | codec name |
//	uncompressedLen u32 LE | payloadLen u32 LE | payload
var (
	blobMagic   = [4]byte{'D', 'V', 'A', '0'}
	blobVersion = uint16(1)
)

// Save writes v as a self-describing blob. The codec name and compression
// algorithm are recorded in the header, so Load needs no out-of-band
// configuration.
func Save(w io.Writer, v Value, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	enc, err := o.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	comp := o.compression
	payload, err := compressPayload(enc, comp)
	if err != nil {
		return fmt.Errorf("failed to compress document: %w", err)
	}
	if payload == nil {
		// Incompressible; store uncompressed.
		comp = CompressionNone
		payload = enc
	}

	name := o.codec.Name()
	if len(name) > math.MaxUint8 {
		return fmt.Errorf("codec name too long: %q", name)
	}

	header := make([]byte, 0, 8+len(name)+8)
	header = append(header, blobMagic[:]...)
	header = binary.LittleEndian.AppendUint16(header, blobVersion)
	header = append(header, byte(comp), byte(len(name)))
	header = append(header, name...)
	uncompressedLen, err := conv.IntToUint32(len(enc))
	if err != nil {
		return fmt.Errorf("document too large: %w", err)
	}
	payloadLen, err := conv.IntToUint32(len(payload))
	if err != nil {
		return fmt.Errorf("document too large: %w", err)
	}
	header = binary.LittleEndian.AppendUint32(header, uncompressedLen)
	header = binary.LittleEndian.AppendUint32(header, payloadLen)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write blob header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write blob payload: %w", err)
	}

	o.logger.Debug("saved document blob",
		"codec", name,
		"compression", uint8(comp),
		"encoded_bytes", len(enc),
		"payload_bytes", len(payload),
	)
	return nil
}

// Load reads a blob written by Save and decodes the document it holds.
func Load(r io.Reader, opts ...Option) (Value, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Value{}, fmt.Errorf("%w: failed to read magic: %v", ErrInvalidBlob, err)
	}
	if magic != blobMagic {
		return Value{}, fmt.Errorf("%w: bad magic", ErrInvalidBlob)
	}

	var fixed [4]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return Value{}, fmt.Errorf("%w: failed to read header: %v", ErrInvalidBlob, err)
	}
	version := binary.LittleEndian.Uint16(fixed[0:2])
	if version != blobVersion {
		return Value{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidBlob, version)
	}
	comp := Compression(fixed[2])
	nameLen := int(fixed[3])

	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return Value{}, fmt.Errorf("%w: failed to read codec name: %v", ErrInvalidBlob, err)
	}
	c, ok := codec.ByName(string(name))
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	var lens [8]byte
	if _, err := io.ReadFull(r, lens[:]); err != nil {
		return Value{}, fmt.Errorf("%w: failed to read lengths: %v", ErrInvalidBlob, err)
	}
	uncompressedLen := binary.LittleEndian.Uint32(lens[0:4])
	payloadLen := binary.LittleEndian.Uint32(lens[4:8])

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Value{}, fmt.Errorf("failed to read blob payload: %w", err)
	}

	enc, err := decompressPayload(payload, comp, uncompressedLen)
	if err != nil {
		return Value{}, fmt.Errorf("failed to decompress document: %w", err)
	}

	var v Value
	if err := c.Unmarshal(enc, &v); err != nil {
		return Value{}, fmt.Errorf("failed to decode document: %w", err)
	}

	o.logger.Debug("loaded document blob",
		"codec", string(name),
		"compression", uint8(comp),
		"encoded_bytes", len(enc),
	)
	return v, nil
}

// compressPayload compresses data with the given algorithm. It returns nil
// (no error) when the result would not be smaller than the input.
func compressPayload(data []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompressionNone:
		return data, nil
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		var c lz4.Compressor
		n, err := c.CompressBlock(data, buf)
		if err != nil {
			return nil, fmt.Errorf("lz4 compression failed: %w", err)
		}
		if n == 0 || n >= len(data) {
			return nil, nil
		}
		return buf[:n], nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd encoder init failed: %w", err)
		}
		out := enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("zstd encoder close failed: %w", err)
		}
		if len(out) >= len(data) {
			return nil, nil
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %d", comp)
	}
}

func decompressPayload(payload []byte, comp Compression, uncompressedLen uint32) ([]byte, error) {
	switch comp {
	case CompressionNone:
		return payload, nil
	case CompressionLZ4:
		dst := make([]byte, uncompressedLen)
		n, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
		return dst[:n], nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decoder init failed: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(payload, make([]byte, 0, uncompressedLen))
		if err != nil {
			return nil, fmt.Errorf("zstd decompression failed: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %d", comp)
	}
}
