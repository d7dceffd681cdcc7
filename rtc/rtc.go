// Package rtc maps sample-level media formats onto WebRTC codec
// capabilities for track negotiation with pion.
package rtc

import (
	"errors"
	"fmt"

	"github.com/pion/webrtc/v4"

	"github.com/zsiec/mediaformat/media"
)

// ErrUnsupportedMimeType indicates a format whose sample MIME type has
// no WebRTC equivalent.
var ErrUnsupportedMimeType = errors.New("rtc: unsupported mime type")

// videoClockRate is the RTP clock rate shared by all video codecs.
const videoClockRate = 90000

// CodecCapability translates a sample-level format into the
// RTPCodecCapability pion expects when creating a local track. Video
// formats use the 90 kHz RTP clock; audio formats use their sample
// rate and channel count, defaulting to 48 kHz stereo when unknown.
func CodecCapability(f *media.Format) (webrtc.RTPCodecCapability, error) {
	mimeType, ok := rtpMimeType(f.SampleMimeType)
	if !ok {
		return webrtc.RTPCodecCapability{}, fmt.Errorf("%w: %q", ErrUnsupportedMimeType, f.SampleMimeType)
	}

	if media.IsVideo(mimeType) {
		return webrtc.RTPCodecCapability{
			MimeType:  mimeType,
			ClockRate: videoClockRate,
		}, nil
	}

	clockRate := uint32(48000)
	if f.SampleRate != media.NoValue {
		clockRate = uint32(f.SampleRate)
	}
	channels := uint16(2)
	if f.ChannelCount != media.NoValue {
		channels = uint16(f.ChannelCount)
	}
	return webrtc.RTPCodecCapability{
		MimeType:  mimeType,
		ClockRate: clockRate,
		Channels:  channels,
	}, nil
}

// rtpMimeType maps this module's MIME constants onto the RTP payload
// names pion uses.
func rtpMimeType(sampleMimeType string) (string, bool) {
	switch sampleMimeType {
	case media.MimeTypeVideoH264:
		return webrtc.MimeTypeH264, true
	case media.MimeTypeVideoH265:
		return webrtc.MimeTypeH265, true
	case media.MimeTypeVideoVP8:
		return webrtc.MimeTypeVP8, true
	case media.MimeTypeVideoVP9:
		return webrtc.MimeTypeVP9, true
	case media.MimeTypeVideoAV1:
		return webrtc.MimeTypeAV1, true
	case media.MimeTypeAudioOpus:
		return webrtc.MimeTypeOpus, true
	default:
		return "", false
	}
}
