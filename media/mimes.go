package media

import "strings"

// MIME types commonly carried by formats in this module.
const (
	MimeTypeVideoMP4  = "video/mp4"
	MimeTypeVideoWebM = "video/webm"
	MimeTypeVideoH264 = "video/avc"
	MimeTypeVideoH265 = "video/hevc"
	MimeTypeVideoVP8  = "video/x-vnd.on2.vp8"
	MimeTypeVideoVP9  = "video/x-vnd.on2.vp9"
	MimeTypeVideoAV1  = "video/av01"

	MimeTypeAudioMP4  = "audio/mp4"
	MimeTypeAudioAAC  = "audio/mp4a-latm"
	MimeTypeAudioOpus = "audio/opus"
	MimeTypeAudioAC3  = "audio/ac3"
	MimeTypeAudioEAC3 = "audio/eac3"
	MimeTypeAudioRaw  = "audio/raw"

	MimeTypeTextVTT      = "text/vtt"
	MimeTypeAppMP4       = "application/mp4"
	MimeTypeAppM3U8      = "application/x-mpegURL"
	MimeTypeAppSubrip    = "application/x-subrip"
	MimeTypeAppTTML      = "application/ttml+xml"
	MimeTypeAppCEA608    = "application/cea-608"
	MimeTypeAppID3       = "application/id3"
	MimeTypeAppRawCC     = "application/x-rawcc"
	MimeTypeAppWebM      = "application/webm"
	MimeTypeAppMPEGPS    = "application/mpeg-ps"
	MimeTypeAppSCTE35    = "application/x-scte35"
	MimeTypeAppCameraMot = "application/x-camera-motion"
)

// IsVideo reports whether mimeType has a video top-level type.
func IsVideo(mimeType string) bool {
	return topLevelType(mimeType) == "video"
}

// IsAudio reports whether mimeType has an audio top-level type.
func IsAudio(mimeType string) bool {
	return topLevelType(mimeType) == "audio"
}

// IsText reports whether mimeType has a text top-level type.
func IsText(mimeType string) bool {
	return topLevelType(mimeType) == "text"
}

// IsImage reports whether mimeType has an image top-level type.
func IsImage(mimeType string) bool {
	return topLevelType(mimeType) == "image"
}

func topLevelType(mimeType string) string {
	if i := strings.IndexByte(mimeType, '/'); i >= 0 {
		return mimeType[:i]
	}
	return ""
}
