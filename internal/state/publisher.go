package state

import (
	"context"
	"strings"
)

// Publisher owns the session transcript and pushes observable values to a
// sink. Partial hypotheses preview into the text slot; finalized segments
// accumulate space-joined and the full transcript is republished after
// each one.
type Publisher struct {
	sink     Sink
	segments []string
}

func NewPublisher(sink Sink) *Publisher {
	return &Publisher{sink: sink}
}

// Reset clears the transcript and blanks the text and level slots. The
// model slot is owned by configuration, not the session, and is left
// alone.
func (p *Publisher) Reset(ctx context.Context) error {
	p.segments = nil
	if err := p.sink.SetText(ctx, ""); err != nil {
		return err
	}
	return p.sink.SetLevel(ctx, 0)
}

// PublishPartial previews an in-progress hypothesis. Empty partials are
// dropped so the finalized transcript is not blanked between segments.
func (p *Publisher) PublishPartial(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	return p.sink.SetText(ctx, text)
}

// PublishFinal appends a finalized segment and republishes the whole
// transcript. Empty segments are dropped.
func (p *Publisher) PublishFinal(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	p.segments = append(p.segments, text)
	return p.sink.SetText(ctx, p.Transcript())
}

// PublishLevel pushes the current loudness level.
func (p *Publisher) PublishLevel(ctx context.Context, level int) error {
	return p.sink.SetLevel(ctx, level)
}

// SetTranscript replaces the accumulated transcript wholesale, for
// post-session cleanup passes.
func (p *Publisher) SetTranscript(ctx context.Context, text string) error {
	if text == "" {
		p.segments = nil
	} else {
		p.segments = []string{text}
	}
	return p.sink.SetText(ctx, text)
}

// Transcript returns the finalized segments joined by single spaces.
func (p *Publisher) Transcript() string {
	return strings.Join(p.segments, " ")
}
