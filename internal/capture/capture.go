// Package capture runs one recording session: a synchronous loop that
// pulls fixed-size PCM chunks from a source, grows the session sample
// buffer, publishes loudness and transcript state, and leaves a WAV
// artifact behind when the stream ends.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/oneoblomov/speech2text/internal/audio"
	"github.com/oneoblomov/speech2text/internal/recognizer"
	"github.com/oneoblomov/speech2text/internal/source"
	"github.com/oneoblomov/speech2text/internal/state"
)

const (
	// DefaultChunkSize is 10ms of 16 kHz mono s16le.
	DefaultChunkSize = 320

	DefaultLevelInterval  = 20 * time.Millisecond
	DefaultStatusInterval = 250 * time.Millisecond
)

// Options tune a session. Zero values fall back to the defaults.
type Options struct {
	ChunkSize      int           // bytes per read
	SampleRate     int           // samples per second
	LevelInterval  time.Duration // loudness publish cadence
	StatusInterval time.Duration // status line cadence
	OutputDir      string        // WAV artifact directory
	Status         io.Writer     // status line target; nil disables it
}

func (o Options) withDefaults() Options {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.SampleRate <= 0 {
		o.SampleRate = audio.SampleRate
	}
	if o.LevelInterval <= 0 {
		o.LevelInterval = DefaultLevelInterval
	}
	if o.StatusInterval <= 0 {
		o.StatusInterval = DefaultStatusInterval
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	return o
}

// Summary reports what a finished session produced.
type Summary struct {
	OutputFile string // empty when nothing was captured or the write failed
	Samples    int
	Bytes      int
	Duration   time.Duration
	Transcript string
	WriteErr   error // artifact write failure; the session itself succeeded
}

// Session owns one capture run. It is not reusable.
type Session struct {
	src  io.Reader
	rec  recognizer.Session // nil runs capture-only
	pub  *state.Publisher
	kind source.Kind
	opts Options

	samples       []int16
	bytes         int
	printedStatus bool
	lastPubLog    time.Time
}

// New wires a session. rec may be nil: the loop then skips recognition
// entirely and still captures.
func New(src io.Reader, rec recognizer.Session, pub *state.Publisher, kind source.Kind, opts Options) *Session {
	return &Session{src: src, rec: rec, pub: pub, kind: kind, opts: opts.withDefaults()}
}

// Run drives the loop until the stream ends or ctx is cancelled. The stop
// check sits at the top of each iteration, so an in-flight chunk is always
// processed completely before the loop exits. Read and publish failures
// never abort a session; they are logged and the capture carries on.
func (s *Session) Run(ctx context.Context) *Summary {
	start := time.Now()
	outName := artifactName(s.kind, start)

	if err := s.pub.Reset(ctx); err != nil {
		log.Printf("Capture: reset state: %v", err)
	}

	chunkDur := chunkDuration(s.opts.ChunkSize, s.opts.SampleRate)
	levelEvery := cadence(s.opts.LevelInterval, chunkDur)
	statusEvery := cadence(s.opts.StatusInterval, chunkDur)

	buf := make([]byte, s.opts.ChunkSize)
	chunks := 0

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		default:
		}

		n, readErr := io.ReadFull(s.src, buf)
		if n > 0 {
			// A dangling byte cannot form a sample; drop it.
			chunk := buf[:n-n%2]
			if len(chunk) > 0 {
				chunkSamples := audio.BytesToSamples(chunk)
				s.samples = append(s.samples, chunkSamples...)
				s.bytes += len(chunk)
				chunks++

				if chunks%levelEvery == 0 {
					if err := s.pub.PublishLevel(ctx, audio.Level(chunkSamples)); err != nil {
						s.logPublish(err)
					}
				}

				if s.rec != nil {
					if s.rec.Accept(chunk) {
						if err := s.pub.PublishFinal(ctx, recognizer.ExtractText(s.rec.Result())); err != nil {
							s.logPublish(err)
						}
					}
					if err := s.pub.PublishPartial(ctx, recognizer.ExtractText(s.rec.Partial())); err != nil {
						s.logPublish(err)
					}
				}

				if s.opts.Status != nil && chunks%statusEvery == 0 {
					s.printStatus(start, audio.Level(chunkSamples))
				}
			}
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) && !errors.Is(readErr, io.ErrUnexpectedEOF) {
				log.Printf("Capture: read: %v", readErr)
			}
			break
		}
	}

	return s.finish(outName, start)
}

// finish runs the end-of-session steps. They execute no matter how the
// loop exited, against a fresh context: a cancelled session context must
// not suppress the closing publishes.
func (s *Session) finish(outName string, start time.Time) *Summary {
	ctx := context.Background()

	if s.printedStatus {
		fmt.Fprintln(s.opts.Status)
	}

	if s.rec != nil {
		if err := s.pub.PublishFinal(ctx, recognizer.ExtractText(s.rec.Final())); err != nil {
			log.Printf("Capture: publish final: %v", err)
		}
	}

	sum := &Summary{
		Samples:    len(s.samples),
		Bytes:      s.bytes,
		Duration:   time.Since(start),
		Transcript: s.pub.Transcript(),
	}

	if len(s.samples) > 0 {
		path := filepath.Join(s.opts.OutputDir, outName)
		if err := audio.WriteFile(path, s.samples); err != nil {
			log.Printf("Capture: write artifact: %v", err)
			sum.WriteErr = err
		} else {
			sum.OutputFile = path
		}
	}

	if err := s.pub.PublishLevel(ctx, 0); err != nil {
		log.Printf("Capture: publish level: %v", err)
	}

	return sum
}

// printStatus redraws the in-place progress line: elapsed seconds, a
// ten-cell loudness bar and the bytes captured so far.
func (s *Session) printStatus(start time.Time, level int) {
	bar := strings.Repeat("=", level) + strings.Repeat(" ", audio.MaxLevel-level)
	fmt.Fprintf(s.opts.Status, "\rrec %3ds [%s] %d KB",
		int(time.Since(start).Seconds()), bar, s.bytes/1024)
	s.printedStatus = true
}

// logPublish rate-limits publish failure logs; a broken sink would
// otherwise flood the log at chunk frequency.
func (s *Session) logPublish(err error) {
	if time.Since(s.lastPubLog) > time.Second {
		log.Printf("Capture: publish: %v", err)
		s.lastPubLog = time.Now()
	}
}

// chunkDuration is the wall-clock span one chunk covers.
func chunkDuration(chunkBytes, sampleRate int) time.Duration {
	samples := chunkBytes / audio.BytesPerSample
	return time.Duration(samples) * time.Second / time.Duration(sampleRate)
}

// cadence converts a publish interval into a chunk counter, at least 1.
func cadence(interval, chunkDur time.Duration) int {
	if chunkDur <= 0 {
		return 1
	}
	n := int(interval / chunkDur)
	if n < 1 {
		n = 1
	}
	return n
}

// artifactName is <source-prefix>_<timestamp>.wav, stamped at session
// start.
func artifactName(kind source.Kind, start time.Time) string {
	return fmt.Sprintf("%s_%s.wav", kind.FilePrefix(), start.Format("20060102_150405"))
}
