package media

import (
	"errors"
	"io"
	"testing"

	"github.com/quic-go/quic-go/quicvarint"
	"github.com/zsiec/mediaformat/drm"
)

func roundTrip(t *testing.T, f *Format) *Format {
	t.Helper()
	got, err := Parse(f.Serialize())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !f.Equal(got) {
		t.Fatalf("round trip changed the format:\n got %v\nwant %v", got, f)
	}
	return got
}

func TestWireRoundTripVideoSample(t *testing.T) {
	t.Parallel()
	roundTrip(t, sampleVideoFormat())
}

func TestWireRoundTripAllSentinels(t *testing.T) {
	t.Parallel()
	got := roundTrip(t, NewContainerFormat("", "", "", NoValue))
	if got.InitializationData == nil {
		t.Error("decoded InitializationData is nil, want empty slice")
	}
	if got.SubsampleOffsetUs != OffsetSampleRelative {
		t.Errorf("SubsampleOffsetUs = %d, want OffsetSampleRelative", got.SubsampleOffsetUs)
	}
}

func TestWireRoundTripEmptyAndMultiBuffers(t *testing.T) {
	t.Parallel()
	roundTrip(t, NewVideoSampleFormat("v", MimeTypeVideoH264, "avc1", 1, 2, 3, 4, 5,
		[][]byte{}, 0, 1, nil))
	roundTrip(t, NewVideoSampleFormat("v", MimeTypeVideoH265, "hvc1", 1, 2, 3, 4, 5,
		[][]byte{{}, {1}, {2, 3, 4, 5, 6, 7, 8, 9}}, 270, 1.5, nil))
}

func TestWireRoundTripWithDRM(t *testing.T) {
	t.Parallel()
	d := drm.NewInitData(
		drm.SchemeData{SchemeID: drm.WidevineUUID, MimeType: MimeTypeVideoMP4, Data: []byte{1, 2, 3}},
		drm.SchemeData{SchemeID: drm.PlayReadyUUID, Data: []byte{}},
	)
	f := NewAudioSampleFormat("a", MimeTypeAudioAAC, "mp4a.40.2", 128_000, 4096,
		2, 48_000, NoValue, 576, 1024, [][]byte{{0x12, 0x10}}, d,
		SelectionFlagDefault|SelectionFlagAutoselect, "en")
	got := roundTrip(t, f)
	if !got.DRMInitData.Equal(d) {
		t.Error("DRM init data did not survive the round trip")
	}
}

func TestWireRoundTripNegativeAndFloatValues(t *testing.T) {
	t.Parallel()
	// Out-of-range values pass through the codec unvalidated.
	f := NewVideoContainerFormat("v", MimeTypeAppM3U8, "", "", -500, 1920, 1080, 23.976, nil)
	roundTrip(t, f.WithSubsampleOffset(-9_000_000))
}

func TestWireTruncatedInputs(t *testing.T) {
	t.Parallel()
	full := sampleVideoFormat().
		WithDRMInitData(drm.NewInitData(
			drm.SchemeData{SchemeID: drm.ClearKeyUUID, Data: []byte{7, 8}})).
		Serialize()

	// Every strict prefix must fail cleanly: the codec has no optional
	// trailing region.
	for i := 0; i < len(full); i++ {
		if _, err := Parse(full[:i]); err == nil {
			t.Fatalf("Parse accepted a %d-byte prefix of a %d-byte encoding", i, len(full))
		}
	}

	var parseErr *ParseError
	_, err := Parse(full[:3])
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("error = %v, want to wrap io.ErrUnexpectedEOF", err)
	}
}

func TestWireHostileInitDataCount(t *testing.T) {
	t.Parallel()
	valid := NewContainerFormat("x", "", "", NoValue).Serialize()

	// Locate the init data count: it sits right before the final DRM
	// presence byte in a format with no init data.
	countPos := len(valid) - 2
	hostile := append([]byte{}, valid[:countPos]...)
	hostile = quicvarint.Append(hostile, 1<<40) // absurd buffer count
	hostile = append(hostile, valid[countPos+1:]...)

	_, err := Parse(hostile)
	if err == nil {
		t.Fatal("Parse accepted an init data count exceeding the input size")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Field != "initialization_data" {
		t.Fatalf("error = %v, want ParseError on initialization_data", err)
	}
}

func TestWireTrailingBytesIgnored(t *testing.T) {
	t.Parallel()
	f := sampleVideoFormat()
	data := append(f.Serialize(), 0xde, 0xad)
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed on trailing bytes: %v", err)
	}
	if !f.Equal(got) {
		t.Error("trailing bytes altered the decoded format")
	}
}

func TestWireDeterministic(t *testing.T) {
	t.Parallel()
	f := sampleVideoFormat()
	a := f.Serialize()
	b := f.Serialize()
	if len(a) != len(b) {
		t.Fatal("repeated serialization differs in length")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("repeated serialization differs at byte %d", i)
		}
	}
}
