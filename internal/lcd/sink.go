package lcd

// Blitter accepts a complete exported buffer (page-major, column-packed,
// already flipped) and transfers it to a display. Implementations own the
// timing of the transfer; the slice must not be retained after Blit returns.
type Blitter interface {
	Blit(frame []byte) error
}

// BlitterFunc adapts a function to the Blitter interface.
type BlitterFunc func(frame []byte) error

// Blit calls f(frame).
func (f BlitterFunc) Blit(frame []byte) error {
	return f(frame)
}

// TextSink draws a line of text. Lines are 8-pixel pages numbered from the
// top of the screen.
type TextSink interface {
	DrawLine(text string, line int)
}

// Recorder is a Blitter that keeps the most recent frame.
type Recorder struct {
	last   Frame
	frames int
}

// Blit stores a copy of the frame.
func (r *Recorder) Blit(frame []byte) error {
	f, err := DecodeFrame(frame)
	if err != nil {
		return err
	}
	r.last = f
	r.frames++
	return nil
}

// Last returns the most recently blitted frame.
func (r *Recorder) Last() Frame {
	return r.last
}

// Frames returns how many frames have been received.
func (r *Recorder) Frames() int {
	return r.frames
}
