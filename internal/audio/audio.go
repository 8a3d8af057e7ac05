package audio

import "encoding/binary"

// Stream parameters shared by every capture session. The capture utility,
// the recognizer and the WAV artifact all speak 16 kHz mono s16le.
const (
	SampleRate     = 16000
	Channels       = 1
	BitDepth       = 16
	BytesPerSample = 2
)

// MaxLevel is the upper bound of the loudness scale.
const MaxLevel = 10

// levelDivisor maps mean absolute sample magnitude onto [0, MaxLevel].
const levelDivisor = 32767.0 / MaxLevel

// BytesToSamples interprets b as little-endian signed 16-bit samples.
// A dangling trailing byte is discarded.
func BytesToSamples(b []byte) []int16 {
	n := len(b) / BytesPerSample
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		samples[i] = int16(binary.LittleEndian.Uint16(b[i*BytesPerSample:]))
	}
	return samples
}

// SamplesToBytes is the inverse of BytesToSamples.
func SamplesToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*BytesPerSample:], uint16(s))
	}
	return out
}

// Level estimates the loudness of a chunk as an integer in [0, MaxLevel]:
// the mean absolute sample magnitude, scaled so a full-scale chunk maps to
// MaxLevel and truncated toward zero. An empty chunk is silent.
func Level(samples []int16) int {
	if len(samples) == 0 {
		return 0
	}
	var sum int64
	for _, s := range samples {
		v := int64(s)
		if v < 0 {
			v = -v
		}
		sum += v
	}
	avg := float64(sum) / float64(len(samples))
	level := int(avg / levelDivisor)
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}
