package pinfield

// TextAcceptor receives the host's full text value after every edit.
type TextAcceptor interface {
	OnTextChanged(text string) (stored string, clamped bool)
}

// FocusReporter receives focus changes from the host.
type FocusReporter interface {
	SetFocused(focused bool)
	Focused() bool
}

// IntrinsicSizer reports the size the field needs, independent of any
// constraints the host layout would offer.
type IntrinsicSizer interface {
	IntrinsicSize() (width, height float32)
}

// TextHost is implemented by hosts that keep their own text buffer. The
// field calls it whenever it stores something other than what the host sent,
// so both sides agree on text and cursor.
type TextHost interface {
	ReplaceText(text string)
	SetCursor(pos int)
}

// RedrawRequester asks the host for a new frame.
type RedrawRequester interface {
	RequestRedraw()
}

// RedrawFunc adapts a function to RedrawRequester.
type RedrawFunc func()

func (f RedrawFunc) RequestRedraw() { f() }

var (
	_ TextAcceptor   = (*Field)(nil)
	_ FocusReporter  = (*Field)(nil)
	_ IntrinsicSizer = (*Field)(nil)
)
