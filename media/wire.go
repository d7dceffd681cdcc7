package media

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/quic-go/quic-go/quicvarint"
	"github.com/zsiec/mediaformat/drm"
)

// Wire layout, in field order:
//
//	id, containerMimeType, sampleMimeType, codecs    nullable string
//	bitrate, maxInputSize, width, height             int32 BE
//	frameRate                                        float64 BE (IEEE 754)
//	rotationDegrees                                  int32 BE
//	pixelWidthHeightRatio                            float64 BE
//	channelCount, sampleRate, pcmEncoding            int32 BE
//	encoderDelay, encoderPadding, selectionFlags     int32 BE
//	language                                         nullable string
//	subsampleOffsetUs                                int64 BE
//	initializationData                               varint count, then
//	                                                 varint-length buffers
//	drmInitData                                      presence byte, then
//	                                                 the nested drm unit
//
// A nullable string is a presence byte (0 or 1) followed, when present,
// by a varint length and the UTF-8 bytes. The empty string encodes as
// absent.

// Serialize returns the wire encoding of the format.
func (f *Format) Serialize() []byte {
	return f.AppendWire(nil)
}

// AppendWire appends the wire encoding of the format to buf and returns
// the extended slice.
func (f *Format) AppendWire(buf []byte) []byte {
	buf = appendWireString(buf, f.ID)
	buf = appendWireString(buf, f.ContainerMimeType)
	buf = appendWireString(buf, f.SampleMimeType)
	buf = appendWireString(buf, f.Codecs)
	buf = appendWireInt32(buf, f.Bitrate)
	buf = appendWireInt32(buf, f.MaxInputSize)
	buf = appendWireInt32(buf, f.Width)
	buf = appendWireInt32(buf, f.Height)
	buf = appendWireFloat64(buf, f.FrameRate)
	buf = appendWireInt32(buf, f.RotationDegrees)
	buf = appendWireFloat64(buf, f.PixelWidthHeightRatio)
	buf = appendWireInt32(buf, f.ChannelCount)
	buf = appendWireInt32(buf, f.SampleRate)
	buf = appendWireInt32(buf, f.PCMEncoding)
	buf = appendWireInt32(buf, f.EncoderDelay)
	buf = appendWireInt32(buf, f.EncoderPadding)
	buf = appendWireInt32(buf, f.SelectionFlags)
	buf = appendWireString(buf, f.Language)
	buf = binary.BigEndian.AppendUint64(buf, uint64(f.SubsampleOffsetUs))

	buf = quicvarint.Append(buf, uint64(len(f.InitializationData)))
	for _, blob := range f.InitializationData {
		buf = quicvarint.Append(buf, uint64(len(blob)))
		buf = append(buf, blob...)
	}

	if f.DRMInitData != nil {
		buf = append(buf, 1)
		buf = f.DRMInitData.AppendWire(buf)
	} else {
		buf = append(buf, 0)
	}
	return buf
}

// Parse decodes a wire-encoded format. Truncated or malformed input
// fails with a [*ParseError]; Parse never reads out of bounds or
// panics. Trailing bytes after the format are ignored.
func Parse(data []byte) (*Format, error) {
	r := &wireReader{data: data}
	f := &Format{}
	var err error

	if f.ID, err = r.readString(); err != nil {
		return nil, &ParseError{Field: "id", Err: err}
	}
	if f.ContainerMimeType, err = r.readString(); err != nil {
		return nil, &ParseError{Field: "container_mime_type", Err: err}
	}
	if f.SampleMimeType, err = r.readString(); err != nil {
		return nil, &ParseError{Field: "sample_mime_type", Err: err}
	}
	if f.Codecs, err = r.readString(); err != nil {
		return nil, &ParseError{Field: "codecs", Err: err}
	}
	if f.Bitrate, err = r.readInt32(); err != nil {
		return nil, &ParseError{Field: "bitrate", Err: err}
	}
	if f.MaxInputSize, err = r.readInt32(); err != nil {
		return nil, &ParseError{Field: "max_input_size", Err: err}
	}
	if f.Width, err = r.readInt32(); err != nil {
		return nil, &ParseError{Field: "width", Err: err}
	}
	if f.Height, err = r.readInt32(); err != nil {
		return nil, &ParseError{Field: "height", Err: err}
	}
	if f.FrameRate, err = r.readFloat64(); err != nil {
		return nil, &ParseError{Field: "frame_rate", Err: err}
	}
	if f.RotationDegrees, err = r.readInt32(); err != nil {
		return nil, &ParseError{Field: "rotation_degrees", Err: err}
	}
	if f.PixelWidthHeightRatio, err = r.readFloat64(); err != nil {
		return nil, &ParseError{Field: "pixel_width_height_ratio", Err: err}
	}
	if f.ChannelCount, err = r.readInt32(); err != nil {
		return nil, &ParseError{Field: "channel_count", Err: err}
	}
	if f.SampleRate, err = r.readInt32(); err != nil {
		return nil, &ParseError{Field: "sample_rate", Err: err}
	}
	if f.PCMEncoding, err = r.readInt32(); err != nil {
		return nil, &ParseError{Field: "pcm_encoding", Err: err}
	}
	if f.EncoderDelay, err = r.readInt32(); err != nil {
		return nil, &ParseError{Field: "encoder_delay", Err: err}
	}
	if f.EncoderPadding, err = r.readInt32(); err != nil {
		return nil, &ParseError{Field: "encoder_padding", Err: err}
	}
	if f.SelectionFlags, err = r.readInt32(); err != nil {
		return nil, &ParseError{Field: "selection_flags", Err: err}
	}
	if f.Language, err = r.readString(); err != nil {
		return nil, &ParseError{Field: "language", Err: err}
	}
	if f.SubsampleOffsetUs, err = r.readInt64(); err != nil {
		return nil, &ParseError{Field: "subsample_offset_us", Err: err}
	}

	if f.InitializationData, err = r.readInitData(); err != nil {
		return nil, &ParseError{Field: "initialization_data", Err: err}
	}

	present, err := r.readByte()
	if err != nil {
		return nil, &ParseError{Field: "drm_init_data", Err: err}
	}
	if present != 0 {
		drmData, n, err := drm.ParseWire(r.data[r.pos:])
		if err != nil {
			return nil, &ParseError{Field: "drm_init_data", Err: err}
		}
		r.pos += n
		f.DRMInitData = drmData
	}

	return f, nil
}

func appendWireString(buf []byte, s string) []byte {
	if s == "" {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	buf = quicvarint.Append(buf, uint64(len(s)))
	return append(buf, s...)
}

func appendWireInt32(buf []byte, v int) []byte {
	return binary.BigEndian.AppendUint32(buf, uint32(int32(v)))
}

func appendWireFloat64(buf []byte, v float64) []byte {
	return binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
}

// wireReader walks a byte slice sequentially during decode.
type wireReader struct {
	data []byte
	pos  int
}

func (r *wireReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *wireReader) readVarint() (uint64, error) {
	if r.pos >= len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}
	v, n, err := quicvarint.Parse(r.data[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

func (r *wireReader) readString() (string, error) {
	present, err := r.readByte()
	if err != nil {
		return "", err
	}
	if present == 0 {
		return "", nil
	}
	length, err := r.readVarint()
	if err != nil {
		return "", err
	}
	if length > uint64(len(r.data)-r.pos) {
		return "", io.ErrUnexpectedEOF
	}
	end := r.pos + int(length)
	s := string(r.data[r.pos:end])
	r.pos = end
	return s, nil
}

func (r *wireReader) readInt32() (int, error) {
	if r.pos+4 > len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}
	v := int32(binary.BigEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return int(v), nil
}

func (r *wireReader) readInt64() (int64, error) {
	if r.pos+8 > len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}
	v := int64(binary.BigEndian.Uint64(r.data[r.pos:]))
	r.pos += 8
	return v, nil
}

func (r *wireReader) readFloat64() (float64, error) {
	if r.pos+8 > len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}
	v := math.Float64frombits(binary.BigEndian.Uint64(r.data[r.pos:]))
	r.pos += 8
	return v, nil
}

// readInitData reads the initialization-data sequence. The declared
// buffer count is validated against the remaining input before
// allocation so a hostile count fails instead of exhausting memory.
func (r *wireReader) readInitData() ([][]byte, error) {
	count, err := r.readVarint()
	if err != nil {
		return nil, err
	}
	if count > uint64(len(r.data)-r.pos) {
		return nil, io.ErrUnexpectedEOF
	}
	blobs := make([][]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		length, err := r.readVarint()
		if err != nil {
			return nil, err
		}
		if length > uint64(len(r.data)-r.pos) {
			return nil, io.ErrUnexpectedEOF
		}
		end := r.pos + int(length)
		blob := make([]byte, length)
		copy(blob, r.data[r.pos:end])
		r.pos = end
		blobs = append(blobs, blob)
	}
	return blobs, nil
}
