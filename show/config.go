package show

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heartlight/ecg"
	"github.com/katalvlaran/heartlight/fixture"
	"github.com/katalvlaran/heartlight/mapfunc"
)

// DefaultURL is the broker address used when transport.url is empty and
// no environment override is set.
const DefaultURL = "nats://127.0.0.1:4222"

// Config describes a complete show: where signals come from, how heart
// rates are derived from them, and how the fixture rig renders the
// result. Durations are fractional seconds.
type Config struct {
	Transport TransportConfig `yaml:"transport"`
	Channels  []ChannelConfig `yaml:"channels"`
	ECG       ECGConfig       `yaml:"ecg"`
	HeartRate HeartRateConfig `yaml:"heart_rate"`
	Fixtures  FixtureConfig   `yaml:"fixtures"`
	Mapping   MappingConfig   `yaml:"mapping"`
	Pulse     PulseConfig     `yaml:"pulse"`
}

// TransportConfig names the broker and the optional outbound subject
// for rendered frames. An empty FrameSubject keeps frames local.
type TransportConfig struct {
	URL          string `yaml:"url"`
	FrameSubject string `yaml:"frame_subject"`
}

// ChannelConfig binds one wearer's sample stream to a named channel.
// Capacity is the rolling sample window; zero means one second of
// signal at the configured ECG rate.
type ChannelConfig struct {
	Name     string `yaml:"name"`
	Subject  string `yaml:"subject"`
	Capacity int    `yaml:"capacity"`
}

// ECGConfig shapes the beat-energy stage. Rate is the stream's sample
// rate in Hz, Low and High the band-pass corners in Hz, Window the
// smoothing span in seconds, and MinSamples how many raw samples must
// arrive before filtering starts.
type ECGConfig struct {
	Rate       int     `yaml:"rate"`
	Low        float64 `yaml:"low"`
	High       float64 `yaml:"high"`
	Window     float64 `yaml:"window"`
	MinSamples int     `yaml:"min_samples"`
}

// HeartRateConfig shapes the BPM stage. Window is the chunk span in
// seconds, Interval how often rates are recomputed, History how many
// BPM values the reduction averages over, and MinBPM/MaxBPM the range
// mapped onto 0..1 for the colour chains.
type HeartRateConfig struct {
	Window   float64 `yaml:"window"`
	Average  string  `yaml:"average"`
	Interval float64 `yaml:"interval"`
	History  int     `yaml:"history"`
	MinBPM   float64 `yaml:"min_bpm"`
	MaxBPM   float64 `yaml:"max_bpm"`
}

// FixtureConfig lists the rig. Anchors are fixture IDs, one per
// channel in order, where that channel's value lands before spatial
// interpolation spreads it across the rig.
type FixtureConfig struct {
	IDs     []int `yaml:"ids"`
	Anchors []int `yaml:"anchors"`
}

// MappingConfig picks the rendered channel set, the mode preset, the
// interpolation edge behaviour, and the ramp shape. Ramp is the fade
// duration and Step the frame cadence, both in seconds.
type MappingConfig struct {
	Set  string  `yaml:"set"`
	Mode string  `yaml:"mode"`
	Edge string  `yaml:"edge"`
	Ramp float64 `yaml:"ramp"`
	Step float64 `yaml:"step"`
}

// PulseConfig shapes the per-beat intensity pulse on each channel's
// anchor fixture. On and Off are levels in 0..1, Wait the hold in
// seconds, and OffFirst leads with the blackout half. Match, when
// positive, additionally gates each pulse on beat morphology: the raw
// window around the crossing must sit within this normalised warp
// distance of an idealised beat, so electrode spikes sweeping past the
// centre stay dark. Zero skips the shape check.
type PulseConfig struct {
	On       float64 `yaml:"on"`
	Off      float64 `yaml:"off"`
	Wait     float64 `yaml:"wait"`
	OffFirst bool    `yaml:"off_first"`
	Match    float64 `yaml:"match"`
}

// Load reads a YAML show description from path. The HEARTLIGHT_NATS_URL
// environment variable, when set, overrides transport.url.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("show: read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	if url := os.Getenv(EnvURL); url != "" {
		cfg.Transport.URL = url
	}
	return cfg, nil
}

// Parse decodes a YAML show description, fills defaults, and validates
// the result.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("show: parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Transport.URL == "" {
		c.Transport.URL = DefaultURL
	}
	for i := range c.Channels {
		if c.Channels[i].Capacity == 0 {
			c.Channels[i].Capacity = c.ECG.Rate
		}
	}
	if c.ECG.Window == 0 {
		c.ECG.Window = 0.15
	}
	if c.ECG.MinSamples == 0 {
		c.ECG.MinSamples = 21
	}
	if c.HeartRate.Average == "" {
		c.HeartRate.Average = ecg.AverageMean.String()
	}
	if c.HeartRate.Interval == 0 {
		c.HeartRate.Interval = 1
	}
	if c.HeartRate.History == 0 {
		c.HeartRate.History = DefaultRateCapacity
	}
	if c.HeartRate.MinBPM == 0 && c.HeartRate.MaxBPM == 0 {
		c.HeartRate.MinBPM, c.HeartRate.MaxBPM = 60, 120
	}
	if c.Mapping.Edge == "" {
		c.Mapping.Edge = mapfunc.EdgeReflect.String()
	}
	if c.Mapping.Ramp == 0 {
		c.Mapping.Ramp = 1
	}
	if c.Mapping.Step == 0 {
		c.Mapping.Step = 0.5
	}
	if c.Pulse.On == 0 {
		c.Pulse.On = 1
	}
	if c.Pulse.Wait == 0 {
		c.Pulse.Wait = 0.1
	}
}

// Validate reports the first problem with the configuration, wrapped in
// ErrConfig.
func (c Config) Validate() error {
	if len(c.Channels) == 0 {
		return confErr("at least one signal channel is required")
	}
	if c.ECG.Rate < 1 {
		return confErr("ecg.rate %d must be at least 1 Hz", c.ECG.Rate)
	}
	if c.ECG.Low <= 0 || c.ECG.High <= c.ECG.Low || c.ECG.High >= float64(c.ECG.Rate)/2 {
		return confErr("ecg band [%g, %g] must satisfy 0 < low < high < %g",
			c.ECG.Low, c.ECG.High, float64(c.ECG.Rate)/2)
	}
	if c.ECG.Window <= 0 {
		return confErr("ecg.window %g must be positive", c.ECG.Window)
	}
	if c.ECG.MinSamples < 2 {
		return confErr("ecg.min_samples %d must be at least 2", c.ECG.MinSamples)
	}
	names := make(map[string]struct{}, len(c.Channels))
	subjects := make(map[string]struct{}, len(c.Channels))
	for i, ch := range c.Channels {
		if ch.Name == "" {
			return confErr("channel %d has no name", i)
		}
		if _, dup := names[ch.Name]; dup {
			return confErr("duplicate channel name %q", ch.Name)
		}
		names[ch.Name] = struct{}{}
		if ch.Subject == "" {
			return confErr("channel %q has no subject", ch.Name)
		}
		if _, dup := subjects[ch.Subject]; dup {
			return confErr("channel %q reuses subject %q", ch.Name, ch.Subject)
		}
		subjects[ch.Subject] = struct{}{}
		if ch.Capacity <= c.ECG.MinSamples {
			return confErr("channel %q capacity %d must exceed ecg.min_samples %d",
				ch.Name, ch.Capacity, c.ECG.MinSamples)
		}
	}
	if c.HeartRate.Window*float64(c.ECG.Rate) < 1 {
		return confErr("heart_rate.window %g spans no samples at %d Hz",
			c.HeartRate.Window, c.ECG.Rate)
	}
	if _, err := ecg.ParseAverage(c.HeartRate.Average); err != nil {
		return confErr("heart_rate.average: %v", err)
	}
	if c.HeartRate.Interval <= 0 {
		return confErr("heart_rate.interval %g must be positive", c.HeartRate.Interval)
	}
	if c.HeartRate.History < 1 {
		return confErr("heart_rate.history %d must be at least 1", c.HeartRate.History)
	}
	if c.HeartRate.MinBPM >= c.HeartRate.MaxBPM {
		return confErr("heart_rate BPM range [%g, %g] must be increasing",
			c.HeartRate.MinBPM, c.HeartRate.MaxBPM)
	}
	if len(c.Fixtures.IDs) == 0 {
		return confErr("fixtures.ids is empty")
	}
	ids := make(map[int]struct{}, len(c.Fixtures.IDs))
	for _, id := range c.Fixtures.IDs {
		if _, dup := ids[id]; dup {
			return confErr("duplicate fixture id %d", id)
		}
		ids[id] = struct{}{}
	}
	if len(c.Fixtures.Anchors) != len(c.Channels) {
		return confErr("fixtures.anchors wants one anchor per channel: %d anchors, %d channels",
			len(c.Fixtures.Anchors), len(c.Channels))
	}
	for _, a := range c.Fixtures.Anchors {
		if _, ok := ids[a]; !ok {
			return confErr("anchor %d is not a fixture id", a)
		}
	}
	if _, err := fixture.ParseChannelSet(c.Mapping.Set); err != nil {
		return confErr("mapping.set: %v", err)
	}
	if c.Mapping.Mode == "" {
		return confErr("mapping.mode is required")
	}
	if _, err := mapfunc.ParseEdge(c.Mapping.Edge); err != nil {
		return confErr("mapping.edge: %v", err)
	}
	if c.Mapping.Ramp < 0 {
		return confErr("mapping.ramp %g must not be negative", c.Mapping.Ramp)
	}
	if c.Mapping.Step <= 0 {
		return confErr("mapping.step %g must be positive", c.Mapping.Step)
	}
	if c.Pulse.On < 0 || c.Pulse.On > 1 {
		return confErr("pulse.on %g must be within 0..1", c.Pulse.On)
	}
	if c.Pulse.Off < 0 || c.Pulse.Off > 1 {
		return confErr("pulse.off %g must be within 0..1", c.Pulse.Off)
	}
	if c.Pulse.Wait < 0 {
		return confErr("pulse.wait %g must not be negative", c.Pulse.Wait)
	}
	if c.Pulse.Match < 0 {
		return confErr("pulse.match %g must not be negative", c.Pulse.Match)
	}
	if c.Pulse.Match > 0 {
		if c.HeartRate.MinBPM <= 0 {
			return confErr("pulse.match needs a positive BPM range, min_bpm is %g",
				c.HeartRate.MinBPM)
		}
		n := c.beatTemplateLen()
		if n < 2 {
			return confErr("pulse.match template spans %d samples at %d Hz, need at least 2",
				n, c.ECG.Rate)
		}
		for _, ch := range c.Channels {
			if n > ch.Capacity {
				return confErr("pulse.match template spans %d samples, channel %q holds %d",
					n, ch.Name, ch.Capacity)
			}
		}
	}
	return nil
}

// beatTemplateLen is the span of one beat, in samples, at the midpoint
// of the configured BPM range.
func (c Config) beatTemplateLen() int {
	mid := (c.HeartRate.MinBPM + c.HeartRate.MaxBPM) / 2
	return int(60 / mid * float64(c.ECG.Rate))
}

func confErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// seconds converts a fractional-second config value to a Duration.
func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
