package show

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/heartlight/dtw"
	"github.com/katalvlaran/heartlight/ecg"
	"github.com/katalvlaran/heartlight/feature"
	"github.com/katalvlaran/heartlight/fifo"
	"github.com/katalvlaran/heartlight/fixture"
	"github.com/katalvlaran/heartlight/gate"
	"github.com/katalvlaran/heartlight/ingest"
	"github.com/katalvlaran/heartlight/mapfunc"
	"github.com/katalvlaran/heartlight/mapper"
	"github.com/katalvlaran/heartlight/pipeline"
	"github.com/katalvlaran/heartlight/sink"
	"github.com/katalvlaran/heartlight/wave"
)

// expansionName is the aggregator slot holding the rig-sized vector the
// continuous mapper renders from.
const expansionName = "rig"

// initialPeakCapacity sizes the peak buffers before the first detection
// pass resizes them to the real peak count.
const initialPeakCapacity = 1

// channelState is one wearer's slice of the pipeline: the rolling
// buffers, the gates pacing each stage, and the per-beat trigger.
type channelState struct {
	name    string
	subject string
	anchor  int

	raw         *fifo.Buffer // incoming samples
	transformed *fifo.Buffer // beat energy
	rates       *fifo.Buffer // rolling BPM history
	peaks       *fifo.Buffer // peak positions of the last pass

	detectGate *gate.Gate
	rateGate   *gate.Gate
	peakGate   *gate.Gate

	trigger *mapper.Trigger
}

// Show owns a configured pipeline from broker subjects to lighting
// frames. Build one with New, start it with Run, and swap colour moods
// while it runs with SwitchMode.
type Show struct {
	cfg    Config
	base   *slog.Logger
	logger *slog.Logger
	poll   time.Duration

	conn ingest.Conn // non-nil when WithConn injected one

	channels []*channelState
	agg      *feature.Aggregator
	fix      *fixture.Array

	set fixture.ChannelSet
	out sink.Sink

	con       *mapper.Continuous
	cell      *pipeline.Cell
	lastChain uint64 // map task's last rendered cell version
	modes     map[string]pipeline.Chain

	reduceGate *gate.Gate
	mapGate    *gate.Gate

	detectChain pipeline.Chain
	rateChain   pipeline.Chain
	peakChain   pipeline.Chain
	reduceChain pipeline.Chain
	expandChain pipeline.Chain

	rampDur   time.Duration
	rampStep  time.Duration
	pulseWait time.Duration

	mu   sync.RWMutex
	mode string
}

// New validates cfg and wires the whole pipeline: buffers and gates per
// channel, the feature aggregator over the BPM histories, the fixture
// array, the mode chains, and a beat trigger per anchor, with a shape
// confirmation link behind each trigger when Pulse.Match is set.
// Nothing is dialled yet; Run does that unless WithConn injected a
// connection.
func New(cfg Config, opts ...Option) (*Show, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{poll: DefaultPollInterval}
	for _, opt := range opts {
		opt(&o)
	}
	base := o.logger
	if base == nil {
		base = slog.Default()
	}

	set, err := fixture.ParseChannelSet(cfg.Mapping.Set)
	if err != nil {
		return nil, err
	}
	edge, err := mapfunc.ParseEdge(cfg.Mapping.Edge)
	if err != nil {
		return nil, err
	}
	avg, err := ecg.ParseAverage(cfg.HeartRate.Average)
	if err != nil {
		return nil, err
	}

	s := &Show{
		cfg:       cfg,
		base:      base,
		logger:    base.With(slog.String("component", "show")),
		poll:      o.poll,
		conn:      o.conn,
		set:       set,
		out:       o.out,
		mode:      cfg.Mapping.Mode,
		rampDur:   seconds(cfg.Mapping.Ramp),
		rampStep:  seconds(cfg.Mapping.Step),
		pulseWait: seconds(cfg.Pulse.Wait),
	}
	if s.out == nil {
		s.out = sink.NewLog(base)
	}

	interval := seconds(cfg.HeartRate.Interval)
	feats := make([]feature.Channel, 0, len(cfg.Channels))
	for i, cc := range cfg.Channels {
		ch, err := newChannelState(cc, cfg.HeartRate.History, interval)
		if err != nil {
			return nil, err
		}
		ch.anchor = cfg.Fixtures.Anchors[i]
		s.channels = append(s.channels, ch)
		feats = append(feats, feature.Channel{Name: cc.Name, Source: ch.rates})
	}

	if s.agg, err = feature.New(feats); err != nil {
		return nil, err
	}
	if s.fix, err = fixture.New(cfg.Fixtures.IDs, cfg.Fixtures.Anchors); err != nil {
		return nil, err
	}

	s.modes = builtinModes(set, cfg.HeartRate.MinBPM, cfg.HeartRate.MaxBPM)
	for name, chain := range o.modes {
		s.modes[name] = chain
	}
	chain, ok := s.modes[cfg.Mapping.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mapping.Mode)
	}
	s.cell = pipeline.NewCell(chain)
	s.lastChain = s.cell.Version()

	if s.con, err = mapper.NewContinuous(s.agg, s.fix, chain); err != nil {
		return nil, err
	}
	if s.reduceGate, err = gate.New(gate.ModeUpdate); err != nil {
		return nil, err
	}
	if s.mapGate, err = gate.New(gate.ModeUpdate); err != nil {
		return nil, err
	}

	s.detectChain = pipeline.Chain{ecg.Detect(cfg.ECG.Low, cfg.ECG.High, cfg.ECG.Window, cfg.ECG.Rate)}
	rateStep := ecg.Rate(cfg.HeartRate.Window, cfg.ECG.Rate, avg)
	rateStep.OutputIndex = pipeline.OutIndex(0)
	s.rateChain = pipeline.Chain{rateStep}
	peakStep := ecg.Rate(cfg.HeartRate.Window, cfg.ECG.Rate, avg)
	peakStep.OutputIndex = pipeline.OutIndex(1)
	s.peakChain = pipeline.Chain{peakStep}
	if avg == ecg.AverageMedian {
		s.reduceChain = pipeline.Chain{mapfunc.Median()}
	} else {
		s.reduceChain = pipeline.Chain{mapfunc.Mean()}
	}
	s.expandChain = pipeline.Chain{mapfunc.Interpolate1D(s.fix.Size(), s.fix.AnchorPositions(), edge)}

	var beat []float64
	if cfg.Pulse.Match > 0 {
		if beat, err = wave.Template(cfg.beatTemplateLen()); err != nil {
			return nil, err
		}
	}
	for _, ch := range s.channels {
		ch := ch
		cross := mapper.NewIndexCrossAt(ch.raw.CentreIndex())
		chain := []mapper.TriggerFunc{cross.Fn}
		if beat != nil {
			confirm, err := dtw.Confirm(ch.raw, beat, cfg.Pulse.Match)
			if err != nil {
				return nil, err
			}
			chain = append(chain, confirm)
		}
		action := func(ctx context.Context) error {
			return sink.Pulse(ctx, s.out, []int{ch.anchor}, cfg.Pulse.On, cfg.Pulse.Off, s.pulseWait, cfg.Pulse.OffFirst)
		}
		ch.trigger, err = mapper.NewTrigger(ch.raw, mapper.QuerySource(ch.peaks),
			chain, action, mapper.WithPollInterval(s.poll))
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func newChannelState(cc ChannelConfig, history int, interval time.Duration) (*channelState, error) {
	ch := &channelState{name: cc.Name, subject: cc.Subject}
	var err error
	if ch.raw, err = fifo.New(cc.Capacity); err != nil {
		return nil, err
	}
	if ch.transformed, err = fifo.New(cc.Capacity); err != nil {
		return nil, err
	}
	if ch.rates, err = fifo.New(history); err != nil {
		return nil, err
	}
	if ch.peaks, err = fifo.New(initialPeakCapacity); err != nil {
		return nil, err
	}
	if ch.detectGate, err = gate.New(gate.ModeUpdate); err != nil {
		return nil, err
	}
	if ch.rateGate, err = gate.New(gate.ModeInterval, gate.WithInterval(interval)); err != nil {
		return nil, err
	}
	if ch.peakGate, err = gate.New(gate.ModeUpdate); err != nil {
		return nil, err
	}
	return ch, nil
}

// Run connects, subscribes every channel, blacks the rig out, and
// drives all stages until ctx ends or one of them fails. The broker
// connection is drained on the way out, injected or dialled.
func (s *Show) Run(ctx context.Context) error {
	src, err := s.connectSource()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			s.logger.Warn("close source", slog.Any("err", cerr))
		}
	}()

	for _, ch := range s.channels {
		if err := src.Subscribe(ch.subject, ch.raw); err != nil {
			return err
		}
	}
	if err := s.blackout(ctx); err != nil {
		return err
	}

	s.logger.Info("show running",
		slog.Int("channels", len(s.channels)),
		slog.Int("fixtures", s.fix.Size()),
		slog.String("set", s.set.String()),
		slog.String("mode", s.Mode()))

	g := NewGroup(ctx, s.logger)
	for _, ch := range s.channels {
		ch := ch
		g.Go("detect "+ch.name, s.every(func(context.Context) error { return s.detectTick(ch) }))
		g.Go("rate "+ch.name, s.every(func(context.Context) error { return s.rateTick(ch) }))
		g.Go("peaks "+ch.name, s.every(func(context.Context) error { return s.peakTick(ch) }))
		g.Go("pulse "+ch.name, ch.trigger.Run)
	}
	g.Go("reduce", s.every(func(context.Context) error { return s.reduceTick() }))
	g.Go("map", s.every(s.mapTick))

	err = g.Wait()
	s.logger.Info("show stopped")
	return err
}

func (s *Show) connectSource() (*ingest.Source, error) {
	if s.conn != nil {
		return ingest.New(s.conn, ingest.WithLogger(s.base))
	}
	return ingest.Connect(s.cfg.Transport.URL, ingest.WithLogger(s.base))
}

// blackout pushes the rig's zeroed state out before the stages start,
// so the first ramp fades up from a known dark baseline.
func (s *Show) blackout(ctx context.Context) error {
	sets := []fixture.ChannelSet{s.set}
	if s.set != fixture.Intensity {
		sets = append(sets, fixture.Intensity)
	}
	for _, set := range sets {
		dark, err := s.fix.Current(set)
		if err != nil {
			return fmt.Errorf("show: blackout: %w", err)
		}
		frame := sink.Frame{Set: set, Fixtures: s.fix.IDs(), Values: dark}
		if err := s.out.Send(ctx, frame); err != nil {
			return fmt.Errorf("show: blackout: %w", err)
		}
	}
	return nil
}

// every wraps tick in the shared poll cadence.
func (s *Show) every(tick func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(s.poll)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
			if err := tick(ctx); err != nil {
				return err
			}
		}
	}
}

// detectTick reruns the beat-energy transform once enough raw samples
// are in and the window moved since the last pass.
func (s *Show) detectTick(ch *channelState) error {
	if ch.raw.Len() <= s.cfg.ECG.MinSamples {
		return nil
	}
	out, fired, err := pipeline.ApplyGated(ch.raw, s.detectChain, ch.detectGate)
	if err != nil || !fired {
		return err
	}
	if xs, ok := out.Floats(); ok && len(xs) > 0 {
		ch.transformed.Enqueue(xs...)
	}
	return nil
}

// rateTick recomputes BPM on the configured cadence once a full window
// of beat energy is available.
func (s *Show) rateTick(ch *channelState) error {
	if !ch.transformed.Full() {
		return nil
	}
	out, fired, err := pipeline.ApplyGated(ch.transformed, s.rateChain, ch.rateGate)
	if err != nil || !fired {
		return err
	}
	if xs, ok := out.Floats(); ok && len(xs) > 0 {
		ch.rates.Enqueue(xs...)
	}
	return nil
}

// peakTick refreshes the channel's peak positions whenever the beat
// energy moved, replacing the previous set wholesale.
func (s *Show) peakTick(ch *channelState) error {
	out, fired, err := pipeline.ApplyGated(ch.transformed, s.peakChain, ch.peakGate)
	if err != nil || !fired {
		return err
	}
	if xs, ok := out.Floats(); ok {
		ch.peaks.Replace(xs, true)
	}
	return nil
}

// reduceTick folds each channel's BPM history into the feature vector
// when any history buffer moved.
func (s *Show) reduceTick() error {
	_, err := s.agg.RecomputeGated(s.reduceChain, s.reduceGate)
	return err
}

// mapTick renders the rig. It watches two versions: the mode cell, so a
// swap repaints even with a stale feature vector, and the aggregator,
// so every landed reduction repaints. The gate observes the aggregator
// version on every pass; a swap-only pass must not replay an already
// rendered reduction later.
func (s *Show) mapTick(ctx context.Context) error {
	chain, version := s.cell.Load()
	changed := version != s.lastChain
	if changed {
		s.con.SetFunctions(chain)
		s.lastChain = version
	}
	fired := s.mapGate.Admit(s.agg.Version())
	if !fired && !changed {
		return nil
	}

	if err := s.agg.SpatialExpansion(s.expandChain, expansionName); err != nil {
		return err
	}
	if err := s.con.ApplyMapping(s.set, expansionName); err != nil {
		return err
	}
	from, err := s.fix.Previous(s.set)
	if err != nil {
		return err
	}
	to, err := s.fix.Current(s.set)
	if err != nil {
		return err
	}
	return sink.Ramp(ctx, s.out, s.set, s.fix.IDs(), from, to, s.rampDur, s.rampStep)
}

// SwitchMode swaps the colour mood. The running map stage picks the new
// chain up on its next pass and repaints the rig without waiting for a
// fresh heart-rate reduction.
func (s *Show) SwitchMode(name string) error {
	chain, ok := s.modes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
	s.cell.Store(chain)
	s.mu.Lock()
	s.mode = name
	s.mu.Unlock()
	s.logger.Info("mode switched", slog.String("mode", name))
	return nil
}

// Mode reports the active mode name.
func (s *Show) Mode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Modes lists the registered mode names, sorted.
func (s *Show) Modes() []string {
	names := make([]string, 0, len(s.modes))
	for name := range s.modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
