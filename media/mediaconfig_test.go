package media

import (
	"reflect"
	"testing"
)

func TestMediaConfigOmitsSentinels(t *testing.T) {
	t.Parallel()
	f := NewAudioSampleFormat("a", MimeTypeAudioAAC, "mp4a.40.2", 128_000, NoValue,
		2, 48_000, NoValue, 0, 0, nil, nil, 0, "")
	cfg := f.MediaConfig()

	for _, key := range []string{
		ConfigKeyWidth, ConfigKeyHeight, ConfigKeyFrameRate,
		ConfigKeyRotationDegrees, ConfigKeyMaxInputSize,
		ConfigKeyEncoderDelay, ConfigKeyEncoderPadding, ConfigKeyLanguage,
	} {
		if _, ok := cfg[key]; ok {
			t.Errorf("sentinel-valued key %q present in config", key)
		}
	}
	if cfg[ConfigKeyChannelCount] != 2 {
		t.Errorf("channel-count = %v, want 2", cfg[ConfigKeyChannelCount])
	}
	if cfg[ConfigKeySampleRate] != 48_000 {
		t.Errorf("sample-rate = %v, want 48000", cfg[ConfigKeySampleRate])
	}
	if cfg[ConfigKeyMime] != MimeTypeAudioAAC {
		t.Errorf("mime = %v, want %q", cfg[ConfigKeyMime], MimeTypeAudioAAC)
	}
}

func TestMediaConfigVideoFields(t *testing.T) {
	t.Parallel()
	f := sampleVideoFormat()
	cfg := f.MediaConfig()

	if cfg[ConfigKeyWidth] != 1920 || cfg[ConfigKeyHeight] != 1080 {
		t.Errorf("dimensions = (%v, %v), want (1920, 1080)", cfg[ConfigKeyWidth], cfg[ConfigKeyHeight])
	}
	if cfg[ConfigKeyFrameRate] != 30.0 {
		t.Errorf("frame-rate = %v, want 30", cfg[ConfigKeyFrameRate])
	}
	if cfg[ConfigKeyRotationDegrees] != 90 {
		t.Errorf("rotation-degrees = %v, want 90", cfg[ConfigKeyRotationDegrees])
	}
	if _, ok := cfg[ConfigKeyChannelCount]; ok {
		t.Error("audio key present in video config")
	}
}

func TestMediaConfigInitDataKeys(t *testing.T) {
	t.Parallel()
	f := sampleVideoFormat() // two init data buffers
	cfg := f.MediaConfig()

	csd0, ok := cfg["csd-0"].([]byte)
	if !ok || len(csd0) != 2 {
		t.Errorf("csd-0 = %v, want first init buffer", cfg["csd-0"])
	}
	if _, ok := cfg["csd-1"]; !ok {
		t.Error("csd-1 missing")
	}
	if _, ok := cfg["csd-2"]; ok {
		t.Error("csd-2 present for a two-buffer format")
	}
}

func TestMediaConfigGaplessKeys(t *testing.T) {
	t.Parallel()
	f := NewAudioSampleFormat("a", MimeTypeAudioAAC, "", NoValue, NoValue,
		NoValue, NoValue, NoValue, 576, 1024, nil, nil, 0, "en")
	cfg := f.MediaConfig()
	if cfg[ConfigKeyEncoderDelay] != 576 || cfg[ConfigKeyEncoderPadding] != 1024 {
		t.Errorf("trim keys = (%v, %v), want (576, 1024)",
			cfg[ConfigKeyEncoderDelay], cfg[ConfigKeyEncoderPadding])
	}
	if cfg[ConfigKeyLanguage] != "en" {
		t.Errorf("language = %v, want en", cfg[ConfigKeyLanguage])
	}
}

func TestMediaConfigMemoized(t *testing.T) {
	t.Parallel()
	f := sampleVideoFormat()
	a := f.MediaConfig()
	b := f.MediaConfig()
	if reflect.ValueOf(a).Pointer() != reflect.ValueOf(b).Pointer() {
		t.Error("MediaConfig rebuilt on second call")
	}
}
