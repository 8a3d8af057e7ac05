package capture

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/oneoblomov/speech2text/internal/source"
	"github.com/oneoblomov/speech2text/internal/state"
)

// recordSink logs every slot write in order.
type recordSink struct {
	texts  []string
	levels []int
}

func (s *recordSink) SetText(_ context.Context, text string) error {
	s.texts = append(s.texts, text)
	return nil
}

func (s *recordSink) SetLevel(_ context.Context, level int) error {
	s.levels = append(s.levels, level)
	return nil
}

func (s *recordSink) SetModelPath(context.Context, string) error { return nil }

// fakeRec replays scripted payloads keyed by accept count.
type fakeRec struct {
	accepts  int
	results  map[int]string
	partials map[int]string
	final    string
}

func (r *fakeRec) Accept([]byte) bool {
	r.accepts++
	_, ok := r.results[r.accepts]
	return ok
}

func (r *fakeRec) Result() string  { return r.results[r.accepts] }
func (r *fakeRec) Partial() string { return r.partials[r.accepts] }
func (r *fakeRec) Final() string   { return r.final }
func (r *fakeRec) Close() error    { return nil }

func assertInts(t *testing.T, name string, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %d, want %d", name, i, got[i], want[i])
		}
	}
}

func assertStrings(t *testing.T, name string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %q, want %q", name, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", name, i, got[i], want[i])
		}
	}
}

func TestSessionCaptureOnly(t *testing.T) {
	dir := t.TempDir()
	sink := &recordSink{}
	pub := state.NewPublisher(sink)

	// Two full silent chunks, then end of stream.
	sess := New(bytes.NewReader(make([]byte, 640)), nil, pub, source.Microphone, Options{OutputDir: dir})
	sum := sess.Run(context.Background())

	if sum.Samples != 320 {
		t.Errorf("samples = %d, want 320", sum.Samples)
	}
	if sum.Bytes != 640 {
		t.Errorf("bytes = %d, want 640", sum.Bytes)
	}
	if sum.WriteErr != nil {
		t.Errorf("write error: %v", sum.WriteErr)
	}
	if sum.OutputFile == "" {
		t.Fatal("no artifact written")
	}

	base := filepath.Base(sum.OutputFile)
	if !strings.HasPrefix(base, "microphone_") || !strings.HasSuffix(base, ".wav") {
		t.Errorf("artifact name = %q", base)
	}

	raw, err := os.ReadFile(sum.OutputFile)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if got := binary.LittleEndian.Uint32(raw[40:44]); got != 640 {
		t.Errorf("artifact data size = %d, want 640", got)
	}
	if got := binary.LittleEndian.Uint32(raw[24:28]); got != 16000 {
		t.Errorf("artifact sample rate = %d, want 16000", got)
	}

	// Reset, one cadence publish (every 2nd chunk at the defaults), and
	// the closing zero.
	assertInts(t, "levels", sink.levels, []int{0, 0, 0})
	// No recognizer ran: only the reset blank hits the text slot.
	assertStrings(t, "texts", sink.texts, []string{""})
}

func TestSessionPublishesSegments(t *testing.T) {
	rec := &fakeRec{
		results:  map[int]string{2: `{"text": "hello"}`},
		partials: map[int]string{1: `{"text":"hel"}`, 3: `{"text":"wor"}`},
		final:    `{"text": "world"}`,
	}
	sink := &recordSink{}
	pub := state.NewPublisher(sink)

	sess := New(bytes.NewReader(make([]byte, 4*320)), rec, pub, source.Microphone, Options{OutputDir: t.TempDir()})
	sum := sess.Run(context.Background())

	if sum.Transcript != "hello world" {
		t.Errorf("transcript = %q, want %q", sum.Transcript, "hello world")
	}
	assertStrings(t, "texts", sink.texts, []string{"", "hel", "hello", "wor", "hello world"})
}

type cancellingSource struct {
	cancel   context.CancelFunc
	cancelOn int
	reads    int
}

// Read delivers silent chunks forever, flipping the stop switch during the
// cancelOn-th read. The chunk it returns must still be processed.
func (s *cancellingSource) Read(p []byte) (int, error) {
	s.reads++
	if s.reads == s.cancelOn {
		s.cancel()
	}
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestSessionStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &cancellingSource{cancel: cancel, cancelOn: 3}
	rec := &fakeRec{final: `{"text": "stopped cleanly"}`}
	sink := &recordSink{}
	pub := state.NewPublisher(sink)
	dir := t.TempDir()

	sess := New(src, rec, pub, source.SystemAudio, Options{OutputDir: dir})
	sum := sess.Run(ctx)

	if sum.Samples != 3*160 {
		t.Errorf("samples = %d, want %d (in-flight chunk must complete)", sum.Samples, 3*160)
	}
	if sum.Transcript != "stopped cleanly" {
		t.Errorf("transcript = %q, want finalization to run after a stop", sum.Transcript)
	}
	if sum.OutputFile == "" {
		t.Fatal("artifact must be written after a stop")
	}
	if base := filepath.Base(sum.OutputFile); !strings.HasPrefix(base, "system_audio_") {
		t.Errorf("artifact name = %q, want system_audio prefix", base)
	}
	if last := sink.levels[len(sink.levels)-1]; last != 0 {
		t.Errorf("closing level = %d, want 0", last)
	}
	if last := sink.texts[len(sink.texts)-1]; last != "stopped cleanly" {
		t.Errorf("closing text = %q", last)
	}
}

func TestSessionShortTailOddByte(t *testing.T) {
	// One full chunk plus a 5-byte tail; the dangling byte is dropped.
	sink := &recordSink{}
	sess := New(bytes.NewReader(make([]byte, 325)), nil, state.NewPublisher(sink), source.Microphone, Options{OutputDir: t.TempDir()})
	sum := sess.Run(context.Background())

	if sum.Samples != 162 {
		t.Errorf("samples = %d, want 162", sum.Samples)
	}
	if sum.Bytes != 324 {
		t.Errorf("bytes = %d, want 324", sum.Bytes)
	}

	raw, err := os.ReadFile(sum.OutputFile)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if got := binary.LittleEndian.Uint32(raw[40:44]); got != 324 {
		t.Errorf("artifact data size = %d, want 324", got)
	}
}

func TestSessionEmptyStream(t *testing.T) {
	dir := t.TempDir()
	sink := &recordSink{}
	sess := New(bytes.NewReader(nil), nil, state.NewPublisher(sink), source.Microphone, Options{OutputDir: dir})
	sum := sess.Run(context.Background())

	if sum.Samples != 0 || sum.OutputFile != "" {
		t.Errorf("summary = %+v, want no artifact for an empty stream", sum)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("output dir has %d entries, want none", len(entries))
	}
	assertInts(t, "levels", sink.levels, []int{0, 0})
}

func TestSessionPublishesChunkLevel(t *testing.T) {
	// Silent first chunk, full-scale second chunk; the cadence publish
	// lands on the second.
	data := make([]byte, 640)
	for i := 320; i < 640; i += 2 {
		data[i] = 0xFF
		data[i+1] = 0x7F
	}
	sink := &recordSink{}
	sess := New(bytes.NewReader(data), nil, state.NewPublisher(sink), source.Microphone, Options{OutputDir: t.TempDir()})
	sess.Run(context.Background())

	assertInts(t, "levels", sink.levels, []int{0, 10, 0})
}

func TestSessionStatusLine(t *testing.T) {
	var out bytes.Buffer
	sess := New(bytes.NewReader(make([]byte, 4*320)), nil, state.NewPublisher(&recordSink{}), source.Microphone, Options{
		OutputDir:      t.TempDir(),
		StatusInterval: 20 * time.Millisecond, // every 2nd chunk
		Status:         &out,
	})
	sess.Run(context.Background())

	got := out.String()
	if n := strings.Count(got, "\rrec"); n != 2 {
		t.Errorf("status redrawn %d times, want 2: %q", n, got)
	}
	if !strings.Contains(got, "KB") {
		t.Errorf("status line missing byte counter: %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("status line left unterminated: %q", got)
	}
}

func TestCadence(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		chunkDur time.Duration
		want     int
	}{
		{"level default", 20 * time.Millisecond, 10 * time.Millisecond, 2},
		{"status default", 250 * time.Millisecond, 10 * time.Millisecond, 25},
		{"every chunk", 10 * time.Millisecond, 10 * time.Millisecond, 1},
		{"shorter than a chunk", 5 * time.Millisecond, 10 * time.Millisecond, 1},
		{"zero interval", 0, 10 * time.Millisecond, 1},
		{"one second", time.Second, 10 * time.Millisecond, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cadence(tt.interval, tt.chunkDur); got != tt.want {
				t.Errorf("cadence(%v, %v) = %d, want %d", tt.interval, tt.chunkDur, got, tt.want)
			}
		})
	}
}

func TestChunkDuration(t *testing.T) {
	if got := chunkDuration(320, 16000); got != 10*time.Millisecond {
		t.Errorf("chunkDuration(320, 16000) = %v, want 10ms", got)
	}
	if got := chunkDuration(640, 16000); got != 20*time.Millisecond {
		t.Errorf("chunkDuration(640, 16000) = %v, want 20ms", got)
	}
}

func TestArtifactName(t *testing.T) {
	at := time.Date(2026, 8, 26, 14, 30, 5, 0, time.UTC)
	if got := artifactName(source.Microphone, at); got != "microphone_20260826_143005.wav" {
		t.Errorf("artifactName = %q", got)
	}
	if got := artifactName(source.SystemAudio, at); got != "system_audio_20260826_143005.wav" {
		t.Errorf("artifactName = %q", got)
	}
}
