package ingest

import (
	"encoding/binary"
	"math"
)

// sampleBytes is the wire width of one sample: little-endian float32.
const sampleBytes = 4

// Encode packs samples into the transport's batch format, four
// little-endian float32 bytes per sample. The producer side of Decode.
func Encode(samples []float64) []byte {
	out := make([]byte, sampleBytes*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint32(out[i*sampleBytes:], math.Float32bits(float32(v)))
	}
	return out
}

// Decode unpacks a batch frame into float64 samples. ok is false when
// the payload does not divide into whole samples, in which case the
// frame should be dropped rather than partially consumed.
func Decode(data []byte) (samples []float64, ok bool) {
	if len(data)%sampleBytes != 0 {
		return nil, false
	}
	samples = make([]float64, len(data)/sampleBytes)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(data[i*sampleBytes:])
		samples[i] = float64(math.Float32frombits(bits))
	}
	return samples, true
}
