// Package ecg derives heart activity from raw ECG samples, packaged as
// pipeline steps so the derivation runs inside buffer transform chains.
//
// 🚀 What it does
//
//   - Detect is the QRS-emphasis front end of the Pan–Tompkins chain:
//     zero-phase band-pass, first difference, squaring, centred moving
//     average. Peaks of its output mark heartbeats.
//   - Rate chunks the QRS signal into fixed windows and derives per-chunk
//     heart rates from RR intervals, yielding a tuple of (rates, peak
//     indices, RR samples, RR seconds) for downstream output selection.
//   - FindPeaks is the underlying detector: height, prominence and
//     minimum-distance conditions over strict local maxima.
//
// ✨ Guarantees
//
//   - Detect is zero-phase: QRS humps stay aligned with the beats that
//     caused them, which the centre-crossing trigger depends on.
//   - Degradation over failure: inputs too short to difference yield an
//     empty vector, and a window with fewer than two peaks repeats the
//     previous window's rate (0 for the first).
//   - Peak indices are reported in whole-signal coordinates (chunk
//     offsets applied), ascending.
//
// ⚙️ Typical use
//
//	rate := ecg.Rate(1, 130, ecg.AverageMedian)
//	rate.OutputIndex = pipeline.OutIndex(0) // select per-window BPM
//	chain := pipeline.Chain{ecg.Detect(5, 15, 0.15, 130), rate}
package ecg
