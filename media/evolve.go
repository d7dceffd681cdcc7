package media

import "github.com/zsiec/mediaformat/drm"

// clone returns a new Format with every descriptor field copied from f.
// Initialization data and the DRM reference are shared, not duplicated;
// both are immutable after publication. The derived-value caches start
// empty on the copy.
func (f *Format) clone() *Format {
	return &Format{
		ID:                    f.ID,
		Bitrate:               f.Bitrate,
		Codecs:                f.Codecs,
		ContainerMimeType:     f.ContainerMimeType,
		SampleMimeType:        f.SampleMimeType,
		MaxInputSize:          f.MaxInputSize,
		InitializationData:    f.InitializationData,
		DRMInitData:           f.DRMInitData,
		Width:                 f.Width,
		Height:                f.Height,
		FrameRate:             f.FrameRate,
		RotationDegrees:       f.RotationDegrees,
		PixelWidthHeightRatio: f.PixelWidthHeightRatio,
		ChannelCount:          f.ChannelCount,
		SampleRate:            f.SampleRate,
		PCMEncoding:           f.PCMEncoding,
		EncoderDelay:          f.EncoderDelay,
		EncoderPadding:        f.EncoderPadding,
		SubsampleOffsetUs:     f.SubsampleOffsetUs,
		SelectionFlags:        f.SelectionFlags,
		Language:              f.Language,
	}
}

// WithMaxInputSize returns a copy of f with MaxInputSize replaced.
func (f *Format) WithMaxInputSize(maxInputSize int) *Format {
	g := f.clone()
	g.MaxInputSize = maxInputSize
	return g
}

// WithSubsampleOffset returns a copy of f with SubsampleOffsetUs
// replaced.
func (f *Format) WithSubsampleOffset(subsampleOffsetUs int64) *Format {
	g := f.clone()
	g.SubsampleOffsetUs = subsampleOffsetUs
	return g
}

// WithContainerInfo returns a copy of f carrying container-level track
// information: identifier, bitrate, display size, selection flags and
// language.
func (f *Format) WithContainerInfo(id string, bitrate, width, height,
	selectionFlags int, language string) *Format {
	g := f.clone()
	g.ID = id
	g.Bitrate = bitrate
	g.Width = width
	g.Height = height
	g.SelectionFlags = selectionFlags
	g.Language = language
	return g
}

// WithGaplessInfo returns a copy of f with the gapless-playback trim
// counts replaced.
func (f *Format) WithGaplessInfo(encoderDelay, encoderPadding int) *Format {
	g := f.clone()
	g.EncoderDelay = encoderDelay
	g.EncoderPadding = encoderPadding
	return g
}

// WithDRMInitData returns a copy of f with the DRM reference replaced.
func (f *Format) WithDRMInitData(drmData *drm.InitData) *Format {
	g := f.clone()
	g.DRMInitData = drmData
	return g
}

// WithManifestInfo reconciles a sample-derived format f with the
// corresponding container- or manifest-level format. Per-field
// precedence:
//
//   - ID always comes from manifest.
//   - Codecs, Bitrate, FrameRate and Language come from f when known,
//     falling back to manifest.
//   - SelectionFlags is the bitwise OR of both.
//   - The DRM reference comes from manifest when preferManifestDRM is
//     set and manifest carries one, or when f carries none; otherwise
//     it stays with f.
//   - Every other field is taken unchanged from f.
func (f *Format) WithManifestInfo(manifest *Format, preferManifestDRM bool) *Format {
	g := f.clone()
	g.ID = manifest.ID
	if f.Codecs == "" {
		g.Codecs = manifest.Codecs
	}
	if f.Bitrate == NoValue {
		g.Bitrate = manifest.Bitrate
	}
	if f.FrameRate == NoValue {
		g.FrameRate = manifest.FrameRate
	}
	g.SelectionFlags = f.SelectionFlags | manifest.SelectionFlags
	if f.Language == "" {
		g.Language = manifest.Language
	}
	if (preferManifestDRM && manifest.DRMInitData != nil) || f.DRMInitData == nil {
		g.DRMInitData = manifest.DRMInitData
	}
	return g
}
