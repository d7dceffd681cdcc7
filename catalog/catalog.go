// Package catalog serializes a set of media formats into a MoQ-style
// JSON track catalog (draft-ietf-moq-catalogformat), the publication
// format a relay hands to subscribers so they can pick tracks before
// any media flows.
package catalog

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/zsiec/mediaformat/media"
)

// catalogDoc is the top-level catalog structure.
type catalogDoc struct {
	Version                int            `json:"version"`
	StreamingFormat        int            `json:"streamingFormat"`
	StreamingFormatVersion string         `json:"streamingFormatVersion"`
	CommonTrackFields      commonFields   `json:"commonTrackFields"`
	Tracks                 []catalogTrack `json:"tracks"`
}

// commonFields holds fields shared by all tracks in the catalog.
type commonFields struct {
	Namespace string `json:"namespace"`
	Packaging string `json:"packaging"`
}

// catalogTrack describes a single track.
type catalogTrack struct {
	Name            string          `json:"name"`
	SelectionParams selectionParams `json:"selectionParams"`
}

// selectionParams holds codec and media parameters for track selection.
type selectionParams struct {
	Codec         string  `json:"codec,omitempty"`
	MimeType      string  `json:"mimeType,omitempty"`
	Bitrate       int     `json:"bitrate,omitempty"`
	Width         int     `json:"width,omitempty"`
	Height        int     `json:"height,omitempty"`
	Framerate     float64 `json:"framerate,omitempty"`
	SampleRate    int     `json:"samplerate,omitempty"`
	ChannelConfig string  `json:"channelConfig,omitempty"`
	Language      string  `json:"lang,omitempty"`
	InitData      string  `json:"initData,omitempty"`
}

// Build assembles the catalog JSON for a set of formats published under
// the given namespace. Track names come from the format ID, falling
// back to a positional name.
func Build(namespace string, formats []*media.Format) ([]byte, error) {
	doc := catalogDoc{
		Version:                1,
		StreamingFormat:        1,
		StreamingFormatVersion: "0.2",
		CommonTrackFields: commonFields{
			Namespace: namespace,
			Packaging: "loc",
		},
	}

	for i, f := range formats {
		name := f.ID
		if name == "" {
			name = fmt.Sprintf("track%d", i)
		}
		doc.Tracks = append(doc.Tracks, catalogTrack{
			Name:            name,
			SelectionParams: paramsFromFormat(f),
		})
	}

	return json.Marshal(doc)
}

func paramsFromFormat(f *media.Format) selectionParams {
	p := selectionParams{
		Codec:    f.Codecs,
		MimeType: f.SampleMimeType,
		Language: f.Language,
	}
	if f.Bitrate != media.NoValue {
		p.Bitrate = f.Bitrate
	}
	if f.Width != media.NoValue {
		p.Width = f.Width
	}
	if f.Height != media.NoValue {
		p.Height = f.Height
	}
	if f.FrameRate != media.NoValue {
		p.Framerate = f.FrameRate
	}
	if f.SampleRate != media.NoValue {
		p.SampleRate = f.SampleRate
	}
	if f.ChannelCount != media.NoValue {
		p.ChannelConfig = fmt.Sprintf("%d", f.ChannelCount)
	}
	if len(f.InitializationData) > 0 {
		p.InitData = base64.StdEncoding.EncodeToString(f.InitializationData[0])
	}
	return p
}
