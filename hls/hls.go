// Package hls derives container-level media formats from HLS master
// playlists. Each variant stream yields a video container format and
// each EXT-X-MEDIA alternative rendition yields an audio or text
// container format, ready to be merged with sample-derived formats via
// [github.com/zsiec/mediaformat/media.Format.WithManifestInfo].
package hls

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grafov/m3u8"

	"github.com/zsiec/mediaformat/media"
)

// ErrNotMaster indicates that the input was a media playlist rather
// than a master playlist.
var ErrNotMaster = errors.New("hls: not a master playlist")

// ParseMaster decodes a master playlist and returns the container
// formats it declares.
func ParseMaster(r io.Reader) ([]*media.Format, error) {
	playlist, listType, err := m3u8.DecodeFrom(r, true)
	if err != nil {
		return nil, fmt.Errorf("hls: decode playlist: %w", err)
	}
	if listType != m3u8.MASTER {
		return nil, ErrNotMaster
	}
	master, ok := playlist.(*m3u8.MasterPlaylist)
	if !ok {
		return nil, ErrNotMaster
	}
	return FormatsFromMaster(master), nil
}

// FormatsFromMaster converts a parsed master playlist into container
// formats: one video format per variant (I-frame-only variants are
// skipped) followed by one format per distinct alternative rendition.
func FormatsFromMaster(master *m3u8.MasterPlaylist) []*media.Format {
	var formats []*media.Format

	seen := make(map[string]bool)
	for i, v := range master.Variants {
		if v == nil || v.Iframe {
			continue
		}
		formats = append(formats, variantFormat(i, v))
		for _, alt := range v.Alternatives {
			key := alt.Type + "/" + alt.GroupId + "/" + alt.Name
			if seen[key] {
				continue
			}
			seen[key] = true
			if f := alternativeFormat(alt); f != nil {
				formats = append(formats, f)
			}
		}
	}
	return formats
}

func variantFormat(index int, v *m3u8.Variant) *media.Format {
	id := v.Name
	if id == "" {
		id = strconv.Itoa(index)
	}
	bitrate := media.NoValue
	if v.Bandwidth > 0 {
		bitrate = int(v.Bandwidth)
	}
	width, height := parseResolution(v.Resolution)
	frameRate := float64(media.NoValue)
	if v.FrameRate > 0 {
		frameRate = v.FrameRate
	}
	return media.NewVideoContainerFormat(id, media.MimeTypeAppM3U8, "", v.Codecs,
		bitrate, width, height, frameRate, nil)
}

func alternativeFormat(alt *m3u8.Alternative) *media.Format {
	flags := 0
	if alt.Default {
		flags |= media.SelectionFlagDefault
	}
	if strings.EqualFold(alt.Autoselect, "yes") {
		flags |= media.SelectionFlagAutoselect
	}
	if strings.EqualFold(alt.Forced, "yes") {
		flags |= media.SelectionFlagForced
	}

	switch alt.Type {
	case "AUDIO":
		return media.NewAudioContainerFormat(alt.Name, media.MimeTypeAppM3U8, "", "",
			media.NoValue, media.NoValue, media.NoValue, nil, flags, alt.Language)
	case "SUBTITLES":
		return media.NewTextContainerFormat(alt.Name, media.MimeTypeAppM3U8, "", "",
			media.NoValue, flags, alt.Language)
	case "CLOSED-CAPTIONS":
		// Carried inside the video elementary stream; no URI of its own.
		return media.NewTextContainerFormat(alt.Name, media.MimeTypeAppM3U8,
			media.MimeTypeAppCEA608, "", media.NoValue, flags, alt.Language)
	default:
		return nil
	}
}

// parseResolution splits a RESOLUTION attribute ("1280x720") into its
// dimensions, returning NoValue for both on any malformed input.
func parseResolution(res string) (width, height int) {
	x := strings.IndexByte(res, 'x')
	if x < 0 {
		return media.NoValue, media.NoValue
	}
	w, err := strconv.Atoi(res[:x])
	if err != nil {
		return media.NoValue, media.NoValue
	}
	h, err := strconv.Atoi(res[x+1:])
	if err != nil {
		return media.NoValue, media.NoValue
	}
	return w, h
}
