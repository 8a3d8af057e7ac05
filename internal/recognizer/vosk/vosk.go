// Package vosk adapts the Vosk engine, through its CGo binding, to the
// recognizer boundary. It sits in its own package so the rest of the tree
// builds and tests without libvosk installed.
package vosk

import (
	"context"
	"fmt"
	"sync"

	voskapi "github.com/alphacep/vosk-api/go"

	"github.com/oneoblomov/speech2text/internal/recognizer"
)

var silenceOnce sync.Once

// Open loads the model directory and returns an engine bound to it.
func Open(modelPath string) (*Engine, error) {
	silenceOnce.Do(func() { voskapi.SetLogLevel(-1) })

	model, err := voskapi.NewModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", modelPath, err)
	}
	return &Engine{model: model}, nil
}

type Engine struct {
	model *voskapi.VoskModel
}

func (e *Engine) NewSession(_ context.Context, sampleRate int) (recognizer.Session, error) {
	rec, err := voskapi.NewRecognizer(e.model, float64(sampleRate))
	if err != nil {
		return nil, fmt.Errorf("create recognizer: %w", err)
	}
	return &session{rec: rec}, nil
}

func (e *Engine) Close() error {
	e.model.Free()
	return nil
}

type session struct {
	rec *voskapi.VoskRecognizer
}

// Accept feeds one chunk. The binding returns 1 when a segment finalized,
// 0 while one is open and -1 on engine failure; only 1 means a result is
// ready.
func (s *session) Accept(chunk []byte) bool {
	return s.rec.AcceptWaveform(chunk) > 0
}

func (s *session) Partial() string {
	return recognizer.NormalizePartial(s.rec.PartialResult())
}

func (s *session) Result() string {
	return s.rec.Result()
}

func (s *session) Final() string {
	return s.rec.FinalResult()
}

func (s *session) Close() error {
	s.rec.Free()
	return nil
}
