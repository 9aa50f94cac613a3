package dtw

import (
	"fmt"
	"math"
)

// Distance computes the dynamic-time-warping cost of aligning a with b:
// the minimum, over all monotone elastic alignments, of the summed
// absolute differences between aligned samples, plus the configured
// slope penalty per insert/delete step. 0 means the windows are
// identical; the cost grows with shape disagreement but tolerates one
// window being a stretched or compressed copy of the other.
//
// Time is O(n·m) (less under WithWindow), memory two rows of min(n,m).
func Distance(a, b []float64, opts ...Option) (float64, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, ErrEmpty
	}
	// Two-row DP wants the shorter window on the inner axis.
	if m > n {
		a, b = b, a
		n, m = m, n
	}

	window := n + m // unconstrained: the band covers everything
	if cfg.hasWindow {
		window = cfg.window
		if d := n - m; d > window {
			window = d
		}
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	cur := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		lo, hi := i-window, i+window
		if lo < 1 {
			lo = 1
		}
		if hi > m {
			hi = m
		}
		cur[0] = inf
		for j := 1; j < lo; j++ {
			cur[j] = inf
		}
		for j := hi + 1; j <= m; j++ {
			cur[j] = inf
		}
		for j := lo; j <= hi; j++ {
			best := prev[j-1] // diagonal match
			if ins := prev[j] + cfg.penalty; ins < best {
				best = ins
			}
			if del := cur[j-1] + cfg.penalty; del < best {
				best = del
			}
			cur[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, cur = cur, prev
	}
	return prev[m], nil
}

// Normalized divides the warp cost by the combined window length, so
// thresholds carry across window sizes: a per-step average misalignment
// rather than a total.
func Normalized(a, b []float64, opts ...Option) (float64, error) {
	d, err := Distance(a, b, opts...)
	if err != nil {
		return 0, err
	}
	return d / float64(len(a)+len(b)), nil
}

func resolve(opts []Option) (config, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasWindow && cfg.window < 1 {
		return cfg, fmt.Errorf("%w: %d", ErrBadWindow, cfg.window)
	}
	if cfg.penalty < 0 {
		return cfg, fmt.Errorf("%w: %g", ErrBadPenalty, cfg.penalty)
	}
	return cfg, nil
}
