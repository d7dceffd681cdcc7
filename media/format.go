package media

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/zsiec/mediaformat/drm"
)

// NoValue marks an integer or float field as unknown or not applicable.
// Every legitimate value in this domain is >= 0, so -1 never collides.
const NoValue = -1

// OffsetSampleRelative is the SubsampleOffsetUs value indicating that
// subsample timestamps are relative to the timestamps of their parent
// samples.
const OffsetSampleRelative int64 = math.MaxInt64

// Track selection flags.
const (
	// SelectionFlagDefault marks a track to select absent an explicit
	// user preference.
	SelectionFlagDefault = 1
	// SelectionFlagForced marks a track that must be displayed. Only
	// applies to text tracks.
	SelectionFlagForced = 2
	// SelectionFlagAutoselect marks a track the player may choose on
	// its own absent an explicit user preference.
	SelectionFlagAutoselect = 4
)

// PCM sample encodings, meaningful only when SampleMimeType is
// [MimeTypeAudioRaw].
const (
	PCMEncoding8Bit = iota + 1
	PCMEncoding16Bit
	PCMEncoding24Bit
	PCMEncoding32Bit
)

// Format describes a media track or container. Reference-like fields
// (ID, Codecs, the MIME types, Language) use "" for unknown; numeric
// fields use [NoValue]; the DRM reference uses nil. InitializationData
// is never nil, only possibly empty.
//
// A Format is immutable after construction: callers must not modify
// its fields, its initialization data buffers, or its DRM reference.
// All derivation goes through the With* methods, which copy untouched
// fields and share substructure with the source.
type Format struct {
	// ID is an opaque identifier for the format, or "".
	ID string
	// Bitrate is the average bandwidth in bits per second, or NoValue.
	Bitrate int
	// Codecs is an RFC 6381 codec string, or "".
	Codecs string

	// ContainerMimeType is the MIME type of the container, or "".
	// Set on container-level formats only, by convention.
	ContainerMimeType string

	// SampleMimeType is the MIME type of the elementary stream, or "".
	SampleMimeType string
	// MaxInputSize is the maximum size of a buffer of data (typically
	// one sample), or NoValue.
	MaxInputSize int
	// InitializationData holds the decoder initialization blobs, in
	// order. Never nil; empty when no initialization data is required.
	InitializationData [][]byte
	// DRMInitData is the protection metadata, or nil for clear streams.
	// The referenced value may be shared by many formats.
	DRMInitData *drm.InitData

	// Video specific.

	// Width and Height are the video dimensions in pixels, or NoValue.
	Width  int
	Height int
	// FrameRate is the frame rate in frames per second, or NoValue.
	FrameRate float64
	// RotationDegrees is the clockwise rotation to apply for correct
	// display, or NoValue. 0, 90, 180 and 270 are the meaningful
	// values; no validation is performed.
	RotationDegrees int
	// PixelWidthHeightRatio is the pixel aspect ratio, or NoValue.
	PixelWidthHeightRatio float64

	// Audio specific.

	// ChannelCount is the number of audio channels, or NoValue.
	ChannelCount int
	// SampleRate is the audio sampling rate in Hz, or NoValue.
	SampleRate int
	// PCMEncoding is one of the PCMEncoding* constants for raw audio,
	// or NoValue for other media types.
	PCMEncoding int
	// EncoderDelay and EncoderPadding are the sample counts to trim
	// from the start and end of the decoded audio stream.
	EncoderDelay   int
	EncoderPadding int

	// Text specific.

	// SubsampleOffsetUs is added to subsample timestamps.
	// OffsetSampleRelative means subsample timestamps are relative to
	// their parent sample.
	SubsampleOffsetUs int64

	// Audio and text specific.

	// SelectionFlags is a bitmask of SelectionFlag* hints.
	SelectionFlags int
	// Language is a BCP-47-style language tag, or "".
	Language string

	// Lazily published derived values. Both are pure functions of the
	// fields above; redundant computation under a first-use race is
	// benign.
	hash   atomic.Uint64
	config atomic.Pointer[MediaConfig]
}

// sentinelFormat returns a Format with every field at its sentinel.
// Category constructors overwrite only the fields their category can
// express.
func sentinelFormat() *Format {
	return &Format{
		Bitrate:               NoValue,
		MaxInputSize:          NoValue,
		InitializationData:    [][]byte{},
		Width:                 NoValue,
		Height:                NoValue,
		FrameRate:             NoValue,
		RotationDegrees:       NoValue,
		PixelWidthHeightRatio: NoValue,
		ChannelCount:          NoValue,
		SampleRate:            NoValue,
		PCMEncoding:           NoValue,
		SubsampleOffsetUs:     OffsetSampleRelative,
	}
}

// initDataOrEmpty normalizes a nil initialization-data slice to empty.
func initDataOrEmpty(initData [][]byte) [][]byte {
	if initData == nil {
		return [][]byte{}
	}
	return initData
}

// NewVideoContainerFormat describes a video track at the container or
// manifest level. MaxInputSize, rotation, pixel aspect ratio and all
// audio fields are left at their sentinels.
func NewVideoContainerFormat(id, containerMimeType, sampleMimeType, codecs string,
	bitrate, width, height int, frameRate float64, initData [][]byte) *Format {
	f := sentinelFormat()
	f.ID = id
	f.ContainerMimeType = containerMimeType
	f.SampleMimeType = sampleMimeType
	f.Codecs = codecs
	f.Bitrate = bitrate
	f.Width = width
	f.Height = height
	f.FrameRate = frameRate
	f.InitializationData = initDataOrEmpty(initData)
	return f
}

// NewVideoSampleFormat describes a video elementary stream. Pass
// NoValue for rotationDegrees and pixelWidthHeightRatio when unknown.
func NewVideoSampleFormat(id, sampleMimeType, codecs string,
	bitrate, maxInputSize, width, height int, frameRate float64,
	initData [][]byte, rotationDegrees int, pixelWidthHeightRatio float64,
	drmData *drm.InitData) *Format {
	f := sentinelFormat()
	f.ID = id
	f.SampleMimeType = sampleMimeType
	f.Codecs = codecs
	f.Bitrate = bitrate
	f.MaxInputSize = maxInputSize
	f.Width = width
	f.Height = height
	f.FrameRate = frameRate
	f.RotationDegrees = rotationDegrees
	f.PixelWidthHeightRatio = pixelWidthHeightRatio
	f.InitializationData = initDataOrEmpty(initData)
	f.DRMInitData = drmData
	return f
}

// NewAudioContainerFormat describes an audio track at the container or
// manifest level. All video fields are left at their sentinels.
func NewAudioContainerFormat(id, containerMimeType, sampleMimeType, codecs string,
	bitrate, channelCount, sampleRate int, initData [][]byte,
	selectionFlags int, language string) *Format {
	f := sentinelFormat()
	f.ID = id
	f.ContainerMimeType = containerMimeType
	f.SampleMimeType = sampleMimeType
	f.Codecs = codecs
	f.Bitrate = bitrate
	f.ChannelCount = channelCount
	f.SampleRate = sampleRate
	f.InitializationData = initDataOrEmpty(initData)
	f.SelectionFlags = selectionFlags
	f.Language = language
	return f
}

// NewAudioSampleFormat describes an audio elementary stream. Pass
// NoValue for pcmEncoding on non-raw audio and 0 for encoderDelay and
// encoderPadding when no gapless trimming applies.
func NewAudioSampleFormat(id, sampleMimeType, codecs string,
	bitrate, maxInputSize, channelCount, sampleRate, pcmEncoding int,
	encoderDelay, encoderPadding int, initData [][]byte,
	drmData *drm.InitData, selectionFlags int, language string) *Format {
	f := sentinelFormat()
	f.ID = id
	f.SampleMimeType = sampleMimeType
	f.Codecs = codecs
	f.Bitrate = bitrate
	f.MaxInputSize = maxInputSize
	f.ChannelCount = channelCount
	f.SampleRate = sampleRate
	f.PCMEncoding = pcmEncoding
	f.EncoderDelay = encoderDelay
	f.EncoderPadding = encoderPadding
	f.InitializationData = initDataOrEmpty(initData)
	f.DRMInitData = drmData
	f.SelectionFlags = selectionFlags
	f.Language = language
	return f
}

// NewTextContainerFormat describes a text track at the container or
// manifest level.
func NewTextContainerFormat(id, containerMimeType, sampleMimeType, codecs string,
	bitrate, selectionFlags int, language string) *Format {
	f := sentinelFormat()
	f.ID = id
	f.ContainerMimeType = containerMimeType
	f.SampleMimeType = sampleMimeType
	f.Codecs = codecs
	f.Bitrate = bitrate
	f.SelectionFlags = selectionFlags
	f.Language = language
	return f
}

// NewTextSampleFormat describes a text elementary stream. Subsample
// timestamps default to sample-relative; use
// [Format.WithSubsampleOffset] to attach an explicit offset.
func NewTextSampleFormat(id, sampleMimeType, codecs string,
	bitrate, selectionFlags int, language string, drmData *drm.InitData) *Format {
	f := sentinelFormat()
	f.ID = id
	f.SampleMimeType = sampleMimeType
	f.Codecs = codecs
	f.Bitrate = bitrate
	f.SelectionFlags = selectionFlags
	f.Language = language
	f.DRMInitData = drmData
	return f
}

// NewImageSampleFormat describes an image elementary stream.
func NewImageSampleFormat(id, sampleMimeType, codecs string, bitrate int,
	initData [][]byte, language string, drmData *drm.InitData) *Format {
	f := sentinelFormat()
	f.ID = id
	f.SampleMimeType = sampleMimeType
	f.Codecs = codecs
	f.Bitrate = bitrate
	f.InitializationData = initDataOrEmpty(initData)
	f.Language = language
	f.DRMInitData = drmData
	return f
}

// NewContainerFormat describes a container of unspecified media kind.
func NewContainerFormat(id, containerMimeType, sampleMimeType string, bitrate int) *Format {
	f := sentinelFormat()
	f.ID = id
	f.ContainerMimeType = containerMimeType
	f.SampleMimeType = sampleMimeType
	f.Bitrate = bitrate
	return f
}

// NewSampleFormat describes an elementary stream of unspecified media
// kind.
func NewSampleFormat(id, sampleMimeType, codecs string, bitrate int, drmData *drm.InitData) *Format {
	f := sentinelFormat()
	f.ID = id
	f.SampleMimeType = sampleMimeType
	f.Codecs = codecs
	f.Bitrate = bitrate
	f.DRMInitData = drmData
	return f
}

// String returns a one-line debug form. Its exact text is not a
// contract.
func (f *Format) String() string {
	return fmt.Sprintf("Format(%s, %s, %s, %d, %s, %s, [%d, %d, %g], [%d, %d])",
		f.ID, f.ContainerMimeType, f.SampleMimeType, f.Bitrate, f.Codecs,
		f.Language, f.Width, f.Height, f.FrameRate, f.ChannelCount, f.SampleRate)
}
