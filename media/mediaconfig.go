package media

import "fmt"

// MediaConfig keys. The names follow the platform decoder convention:
// initialization data buffers are keyed "csd-0", "csd-1", and so on.
const (
	ConfigKeyMime            = "mime"
	ConfigKeyLanguage        = "language"
	ConfigKeyMaxInputSize    = "max-input-size"
	ConfigKeyWidth           = "width"
	ConfigKeyHeight          = "height"
	ConfigKeyFrameRate       = "frame-rate"
	ConfigKeyRotationDegrees = "rotation-degrees"
	ConfigKeyChannelCount    = "channel-count"
	ConfigKeySampleRate      = "sample-rate"
	ConfigKeyEncoderDelay    = "encoder-delay"
	ConfigKeyEncoderPadding  = "encoder-padding"
)

// MediaConfig is the named-key configuration handed to a decoder
// subsystem. Values are string, int, float64 or []byte. Callers must
// treat it as read-only; the same map may be shared by every caller of
// [Format.MediaConfig].
type MediaConfig map[string]any

// MediaConfig returns the decoder configuration for the format.
// Sentinel-valued fields are omitted rather than written as -1; the
// mime key is always present. The map is built once per format and
// memoized; a racing first call builds the same map redundantly.
func (f *Format) MediaConfig() MediaConfig {
	if c := f.config.Load(); c != nil {
		return *c
	}
	c := f.buildMediaConfig()
	f.config.Store(&c)
	return c
}

func (f *Format) buildMediaConfig() MediaConfig {
	c := MediaConfig{ConfigKeyMime: f.SampleMimeType}
	setString(c, ConfigKeyLanguage, f.Language)
	setInt(c, ConfigKeyMaxInputSize, f.MaxInputSize)
	setInt(c, ConfigKeyWidth, f.Width)
	setInt(c, ConfigKeyHeight, f.Height)
	setFloat(c, ConfigKeyFrameRate, f.FrameRate)
	setInt(c, ConfigKeyRotationDegrees, f.RotationDegrees)
	setInt(c, ConfigKeyChannelCount, f.ChannelCount)
	setInt(c, ConfigKeySampleRate, f.SampleRate)
	// The trim counts use 0, not NoValue, as their sentinel.
	if f.EncoderDelay != 0 {
		c[ConfigKeyEncoderDelay] = f.EncoderDelay
	}
	if f.EncoderPadding != 0 {
		c[ConfigKeyEncoderPadding] = f.EncoderPadding
	}
	for i, blob := range f.InitializationData {
		c[fmt.Sprintf("csd-%d", i)] = blob
	}
	return c
}

func setString(c MediaConfig, key, value string) {
	if value != "" {
		c[key] = value
	}
}

func setInt(c MediaConfig, key string, value int) {
	if value != NoValue {
		c[key] = value
	}
}

func setFloat(c MediaConfig, key string, value float64) {
	if value != NoValue {
		c[key] = value
	}
}
