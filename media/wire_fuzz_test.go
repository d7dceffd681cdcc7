package media

import (
	"testing"

	"github.com/zsiec/mediaformat/drm"
)

func FuzzParse(f *testing.F) {
	// Seeds: valid encodings across the category constructors.
	f.Add(NewContainerFormat("", "", "", NoValue).Serialize())
	f.Add(sampleVideoFormat().Serialize())
	f.Add(NewAudioSampleFormat("a", MimeTypeAudioRaw, "", NoValue, NoValue,
		2, 44_100, PCMEncoding16Bit, 576, 1024, [][]byte{{1, 2}},
		drm.NewInitData(drm.SchemeData{SchemeID: drm.WidevineUUID, Data: []byte{3}}),
		SelectionFlagDefault, "en").Serialize())
	f.Add([]byte{})
	f.Add([]byte{1})

	f.Fuzz(func(t *testing.T, data []byte) {
		parsed, err := Parse(data) // must not panic or read out of bounds
		if err != nil {
			return
		}
		// Anything that decodes must survive a second round trip.
		again, err := Parse(parsed.Serialize())
		if err != nil {
			t.Fatalf("re-parse of re-serialized format failed: %v", err)
		}
		if !parsed.Equal(again) {
			t.Fatal("re-serialized format decoded differently")
		}
	})
}
