package renderer2d

import "errors"

var (
	// ErrInvalidSequence is returned by the Render methods outside BeginBatch/EndBatch.
	ErrInvalidSequence = errors.New("renderer2d: BeginBatch must be called before rendering")
	// ErrNilArgument reports a missing texture, font or collaborator.
	ErrNilArgument = errors.New("renderer2d: nil argument")
	// ErrInvalidArgument reports a source rectangle without area.
	ErrInvalidArgument = errors.New("renderer2d: invalid argument")
)
