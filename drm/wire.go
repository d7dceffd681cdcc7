package drm

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/quic-go/quic-go/quicvarint"
)

// AppendWire appends the wire encoding of the InitData to buf and
// returns the extended slice.
//
// Layout: [scheme count (varint)] then per scheme
// [UUID (16 bytes)] [mime length (varint)] [mime bytes]
// [data length (varint)] [data bytes].
func (d *InitData) AppendWire(buf []byte) []byte {
	buf = quicvarint.Append(buf, uint64(len(d.schemes)))
	for _, s := range d.schemes {
		buf = append(buf, s.SchemeID[:]...)
		buf = quicvarint.Append(buf, uint64(len(s.MimeType)))
		buf = append(buf, s.MimeType...)
		buf = quicvarint.Append(buf, uint64(len(s.Data)))
		buf = append(buf, s.Data...)
	}
	return buf
}

// ParseWire decodes an InitData from the front of data, returning the
// decoded value and the number of bytes consumed. Truncated input
// yields an error wrapping [io.ErrUnexpectedEOF].
func ParseWire(data []byte) (*InitData, int, error) {
	pos := 0
	count, n, err := quicvarint.Parse(data)
	if err != nil {
		return nil, 0, fmt.Errorf("drm: scheme count: %w", err)
	}
	pos += n

	if count > uint64(len(data)-pos) {
		return nil, 0, fmt.Errorf("drm: scheme count %d exceeds input: %w", count, io.ErrUnexpectedEOF)
	}

	schemes := make([]SchemeData, 0, count)
	for i := uint64(0); i < count; i++ {
		if pos+16 > len(data) {
			return nil, 0, fmt.Errorf("drm: scheme %d uuid: %w", i, io.ErrUnexpectedEOF)
		}
		var id uuid.UUID
		copy(id[:], data[pos:pos+16])
		pos += 16

		mime, n, err := parseBytes(data[pos:])
		if err != nil {
			return nil, 0, fmt.Errorf("drm: scheme %d mime type: %w", i, err)
		}
		pos += n

		payload, n, err := parseBytes(data[pos:])
		if err != nil {
			return nil, 0, fmt.Errorf("drm: scheme %d data: %w", i, err)
		}
		pos += n

		schemes = append(schemes, SchemeData{SchemeID: id, MimeType: string(mime), Data: payload})
	}
	return &InitData{schemes: schemes}, pos, nil
}

// parseBytes reads a varint-length-prefixed byte string, returning a
// copy of the payload and the total bytes consumed.
func parseBytes(data []byte) ([]byte, int, error) {
	length, n, err := quicvarint.Parse(data)
	if err != nil {
		return nil, 0, err
	}
	end := uint64(n) + length
	if end > uint64(len(data)) {
		return nil, 0, io.ErrUnexpectedEOF
	}
	out := make([]byte, length)
	copy(out, data[n:end])
	return out, int(end), nil
}
