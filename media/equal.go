package media

import (
	"bytes"
	"encoding/binary"
	"hash/fnv"
)

// Equal reports whether f and other are structurally identical: every
// descriptor field matches, with initialization data compared buffer by
// buffer, byte for byte, in order. Either side may be nil; two nil
// formats are equal. Equal never panics.
func (f *Format) Equal(other *Format) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	if f.Bitrate != other.Bitrate || f.MaxInputSize != other.MaxInputSize ||
		f.Width != other.Width || f.Height != other.Height ||
		f.FrameRate != other.FrameRate ||
		f.RotationDegrees != other.RotationDegrees ||
		f.PixelWidthHeightRatio != other.PixelWidthHeightRatio ||
		f.ChannelCount != other.ChannelCount || f.SampleRate != other.SampleRate ||
		f.PCMEncoding != other.PCMEncoding ||
		f.EncoderDelay != other.EncoderDelay || f.EncoderPadding != other.EncoderPadding ||
		f.SubsampleOffsetUs != other.SubsampleOffsetUs ||
		f.SelectionFlags != other.SelectionFlags ||
		f.ID != other.ID || f.Language != other.Language ||
		f.ContainerMimeType != other.ContainerMimeType ||
		f.SampleMimeType != other.SampleMimeType ||
		f.Codecs != other.Codecs ||
		!f.DRMInitData.Equal(other.DRMInitData) ||
		len(f.InitializationData) != len(other.InitializationData) {
		return false
	}
	for i := range f.InitializationData {
		if !bytes.Equal(f.InitializationData[i], other.InitializationData[i]) {
			return false
		}
	}
	return true
}

// Hash returns a stable hash of the format, computed over a fixed field
// subset: ID, ContainerMimeType, SampleMimeType, Codecs, Bitrate,
// Width, Height, ChannelCount, SampleRate, Language and DRMInitData.
// Initialization data and the float fields are deliberately excluded,
// so distinct formats may share a hash while differing under Equal.
//
// The value is memoized on first use. A racing first use recomputes the
// same deterministic result, so no synchronization beyond the atomic
// publication is needed.
func (f *Format) Hash() uint64 {
	if h := f.hash.Load(); h != 0 {
		return h
	}
	h := f.computeHash()
	if h == 0 {
		h = 1 // reserve 0 as the not-yet-computed marker
	}
	f.hash.Store(h)
	return h
}

func (f *Format) computeHash() uint64 {
	h := fnv.New64a()
	var scratch [8]byte

	writeInt := func(v int64) {
		binary.BigEndian.PutUint64(scratch[:], uint64(v))
		h.Write(scratch[:])
	}
	writeString := func(s string) {
		writeInt(int64(len(s)))
		h.Write([]byte(s))
	}

	writeString(f.ID)
	writeString(f.ContainerMimeType)
	writeString(f.SampleMimeType)
	writeString(f.Codecs)
	writeInt(int64(f.Bitrate))
	writeInt(int64(f.Width))
	writeInt(int64(f.Height))
	writeInt(int64(f.ChannelCount))
	writeInt(int64(f.SampleRate))
	writeString(f.Language)
	writeInt(int64(f.DRMInitData.Hash()))
	return h.Sum64()
}
