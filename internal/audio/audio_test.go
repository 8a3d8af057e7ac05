package audio

import (
	"bytes"
	"testing"
)

func filled(n int, v int16) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name    string
		samples []int16
		want    int
	}{
		{"empty", nil, 0},
		{"silence", make([]int16, 160), 0},
		{"quiet", filled(160, 300), 0},
		{"half scale", filled(160, 16384), 5},
		{"full scale", filled(160, 32767), 10},
		{"negative full scale", filled(160, -32768), 10},
		{"mixed signs", []int16{-16384, 16384, -16384, 16384}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Level(tt.samples)
			if got != tt.want {
				t.Errorf("Level() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > MaxLevel {
				t.Errorf("Level() = %d, outside [0, %d]", got, MaxLevel)
			}
		})
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := -1
	for _, amp := range []int16{0, 1000, 5000, 10000, 20000, 32767} {
		level := Level(filled(64, amp))
		if level < prev {
			t.Fatalf("level decreased: amplitude %d gave %d, previous %d", amp, level, prev)
		}
		prev = level
	}
}

func TestBytesToSamples(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []int16
	}{
		{"empty", nil, nil},
		{"single sample", []byte{0x01, 0x00}, []int16{1}},
		{"negative", []byte{0xFF, 0xFF, 0x00, 0x80}, []int16{-1, -32768}},
		{"odd trailing byte dropped", []byte{0x02, 0x00, 0x7F}, []int16{2}},
		{"lone byte dropped", []byte{0x7F}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BytesToSamples(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d samples, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSamplesToBytesRoundTrip(t *testing.T) {
	samples := []int16{0, 1, -1, 12345, -12345, 32767, -32768}
	b := SamplesToBytes(samples)
	if len(b) != len(samples)*BytesPerSample {
		t.Fatalf("got %d bytes, want %d", len(b), len(samples)*BytesPerSample)
	}
	back := BytesToSamples(b)
	for i := range samples {
		if back[i] != samples[i] {
			t.Errorf("sample %d = %d after round trip, want %d", i, back[i], samples[i])
		}
	}
}

func TestBytesToSamplesLittleEndian(t *testing.T) {
	// 0x1234 little-endian is byte order 0x34, 0x12.
	got := BytesToSamples([]byte{0x34, 0x12})
	if got[0] != 0x1234 {
		t.Fatalf("got %#x, want 0x1234", got[0])
	}
	if !bytes.Equal(SamplesToBytes(got), []byte{0x34, 0x12}) {
		t.Fatal("SamplesToBytes did not restore little-endian order")
	}
}
