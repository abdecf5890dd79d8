package pinfield

import (
	"fmt"
	"log"
	"unicode"
	"unicode/utf8"

	"github.com/agiangrant/pinfield/draw"
	"github.com/agiangrant/pinfield/tw"
)

// Field is a fixed-length segmented text input. It is not safe for
// concurrent use: every method must be called from the host's UI thread,
// including the scheduler callbacks, which the Scheduler is expected to hand
// over to that thread.
type Field struct {
	base   Config // as configured, before class styles
	cfg    Config // effective
	styles *tw.ComputedStyles
	dark   bool

	slots    []Slot
	input    *InputState
	clock    *BlinkClock
	renderer Renderer

	focused  bool
	attached bool

	host          TextHost
	redraw        RedrawRequester
	onConfigError func(err error)
	onChange      func(text string)
	onComplete    func(text string)
}

// NewField creates a detached, unfocused, empty field.
func NewField(cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pinfield: %w", err)
	}

	f := &Field{
		base:  cfg,
		cfg:   cfg,
		input: NewInputState(cfg.SlotCount),
		slots: ComputeSlots(cfg.SlotCount, cfg.SlotWidth, cfg.SlotGap, cfg.Height),
	}
	f.clock = NewBlinkClock(nil, cfg.BlinkInterval, f.onBlink)
	return f, nil
}

// ============================================================================
// Host wiring
// ============================================================================

// SetScheduler sets the periodic callback source for the caret. Changing it
// on an attached field restarts the blink clock.
func (f *Field) SetScheduler(s Scheduler) *Field {
	restart := f.clock.Running()
	f.clock.Stop()
	f.clock.scheduler = s
	if restart {
		if err := f.startClock(); err != nil {
			f.reportConfigError(err)
		}
	}
	return f
}

// SetHost registers the host text buffer that clamps are pushed back to.
func (f *Field) SetHost(h TextHost) *Field {
	f.host = h
	return f
}

// SetRedrawRequester registers who to ask for a new frame.
func (f *Field) SetRedrawRequester(r RedrawRequester) *Field {
	f.redraw = r
	return f
}

// OnConfigError registers the validation-failed signal.
func (f *Field) OnConfigError(fn func(err error)) *Field {
	f.onConfigError = fn
	return f
}

// OnChange registers a callback for every change of the stored text.
func (f *Field) OnChange(fn func(text string)) *Field {
	f.onChange = fn
	return f
}

// OnComplete registers a callback fired when the last slot gets filled.
func (f *Field) OnComplete(fn func(text string)) *Field {
	f.onComplete = fn
	return f
}

// SetFilter restricts which characters are accepted. See Digits.
func (f *Field) SetFilter(fn func(char string) bool) *Field {
	f.input.SetFilter(fn)
	return f
}

// Digits accepts single decimal digits.
func Digits(char string) bool {
	r, size := utf8.DecodeRuneInString(char)
	return size == len(char) && unicode.IsDigit(r)
}

// ============================================================================
// Lifecycle
// ============================================================================

// Attach starts the caret blink clock. If the clock cannot start, the field
// stays detached and no ticker is left behind.
func (f *Field) Attach() error {
	if f.attached {
		return ErrAlreadyAttached
	}
	if err := f.startClock(); err != nil {
		f.clock.Stop()
		return fmt.Errorf("attach: %w", err)
	}
	f.attached = true
	f.requestRedraw()
	return nil
}

// Detach stops the blink clock. No redraw is requested by the clock after
// Detach returns. Detaching a detached field does nothing.
func (f *Field) Detach() {
	f.clock.Stop()
	f.attached = false
}

// Attached reports whether the field is between Attach and Detach.
func (f *Field) Attached() bool {
	return f.attached
}

func (f *Field) startClock() error {
	if !f.cfg.CaretEnabled || f.cfg.BlinkInterval == 0 {
		return nil
	}
	return f.clock.Start()
}

func (f *Field) onBlink() {
	if !f.attached {
		return
	}
	f.requestRedraw()
}

func (f *Field) requestRedraw() {
	if f.redraw != nil {
		f.redraw.RequestRedraw()
	}
}

// ============================================================================
// Text
// ============================================================================

// OnTextChanged stores the host's new text, clamped to the slot count.
func (f *Field) OnTextChanged(text string) (stored string, clamped bool) {
	prev := f.input.Text()
	stored, _, clamped = f.input.SetText(text)
	return stored, f.afterEdit(prev, clamped)
}

// TypeText appends text, as a key press would.
func (f *Field) TypeText(text string) (stored string, clamped bool) {
	prev := f.input.Text()
	stored, _, clamped = f.input.Append(text)
	return stored, f.afterEdit(prev, clamped)
}

// DeleteBackward removes the last character.
func (f *Field) DeleteBackward() bool {
	prev := f.input.Text()
	if !f.input.Backspace() {
		return false
	}
	f.afterEdit(prev, false)
	f.syncHost()
	return true
}

// Clear empties the field.
func (f *Field) Clear() {
	f.OnTextChanged("")
	f.syncHost()
}

func (f *Field) afterEdit(prev string, clamped bool) bool {
	if clamped {
		f.syncHost()
	}
	if text := f.input.Text(); text != prev {
		if f.onChange != nil {
			f.onChange(text)
		}
		if f.input.Full() && f.onComplete != nil {
			f.onComplete(text)
		}
	}
	f.requestRedraw()
	return clamped
}

func (f *Field) syncHost() {
	if f.host == nil {
		return
	}
	f.host.ReplaceText(f.input.Text())
	f.host.SetCursor(f.input.Len())
}

// SetSelection normalizes a selection request from the host. The result is
// always a collapsed caret at the end of the text.
func (f *Field) SetSelection(start, end int) (int, int) {
	s, e := f.input.NormalizeSelection(start, end)
	if (s != start || e != end) && f.host != nil {
		f.host.SetCursor(s)
	}
	return s, e
}

// Text returns the stored text.
func (f *Field) Text() string {
	return f.input.Text()
}

// Len returns the number of stored characters.
func (f *Field) Len() int {
	return f.input.Len()
}

// ============================================================================
// Focus and style
// ============================================================================

// SetFocused updates the focus flag. Focus variants of the field's classes
// are applied while focused.
func (f *Field) SetFocused(focused bool) {
	if f.focused == focused {
		return
	}
	f.focused = focused
	f.restyle()
	f.requestRedraw()
}

// Focused reports the focus flag.
func (f *Field) Focused() bool {
	return f.focused
}

// SetDarkMode switches to the dark variants of the field's classes.
func (f *Field) SetDarkMode(dark bool) {
	if f.dark == dark {
		return
	}
	f.dark = dark
	f.restyle()
}

// SetClasses styles the field from a class string such as
// "boxed underline w-[35px] gap-[5px] focus:border-blue-500".
func (f *Field) SetClasses(classes string) error {
	prev := f.styles
	f.styles = resolveStyles(classes)
	if err := f.reconfigure(f.base); err != nil {
		f.styles = prev
		return err
	}
	return nil
}

func (f *Field) restyle() {
	if f.styles == nil {
		return
	}
	// A variant that fails validation leaves the previous look in place
	_ = f.reconfigure(f.base)
}

func (f *Field) resolve(base Config) Config {
	if f.styles == nil {
		return base
	}
	return base.ApplyStyle(f.styles.Resolve(f.focused, f.dark))
}

// ============================================================================
// Configuration
// ============================================================================

// Config returns the effective configuration.
func (f *Field) Config() Config {
	return f.cfg
}

// SetConfig replaces the configuration. An invalid configuration is
// rejected, reported through OnConfigError, and the previous one kept.
func (f *Field) SetConfig(cfg Config) error {
	return f.reconfigure(cfg)
}

// SetSlotCount changes the number of slots. Text longer than n is truncated
// and pushed back to the host. A non-positive n is rejected.
func (f *Field) SetSlotCount(n int) error {
	base := f.base
	base.SlotCount = n
	return f.reconfigure(base)
}

// SetSlotSize changes slot width and gap.
func (f *Field) SetSlotSize(width, gap float32) error {
	base := f.base
	base.SlotWidth, base.SlotGap = width, gap
	return f.reconfigure(base)
}

// SetHeight changes the fixed view height.
func (f *Field) SetHeight(height float32) error {
	base := f.base
	base.Height = height
	return f.reconfigure(base)
}

// SetCaretEnabled shows or hides the caret. Enabling a blinking caret on an
// attached field fails with ErrNoScheduler when no scheduler is set.
func (f *Field) SetCaretEnabled(enabled bool) error {
	base := f.base
	base.CaretEnabled = enabled
	return f.reconfigure(base)
}

// SetUnderlineEnabled toggles the per-slot underline.
func (f *Field) SetUnderlineEnabled(enabled bool) error {
	base := f.base
	base.UnderlineEnabled = enabled
	return f.reconfigure(base)
}

// SetRectEnabled toggles the per-slot rounded rect.
func (f *Field) SetRectEnabled(enabled bool) error {
	base := f.base
	base.RectEnabled = enabled
	return f.reconfigure(base)
}

func (f *Field) reconfigure(base Config) error {
	next := f.resolve(base)
	if err := next.Validate(); err != nil {
		err = fmt.Errorf("pinfield: %w", err)
		f.reportConfigError(err)
		return err
	}
	if f.attached && f.clock.scheduler == nil && next.CaretEnabled && next.BlinkInterval > 0 {
		err := fmt.Errorf("pinfield: %w", ErrNoScheduler)
		f.reportConfigError(err)
		return err
	}
	f.base = base
	f.install(next)
	return nil
}

// install switches to next: geometry first, then text capacity, then the
// blink clock, then a redraw.
func (f *Field) install(next Config) {
	prev := f.cfg
	f.cfg = next

	if prev.geometryChanged(next) {
		f.slots = ComputeSlots(next.SlotCount, next.SlotWidth, next.SlotGap, next.Height)
	}

	if prev.SlotCount != next.SlotCount {
		before := f.input.Text()
		if f.input.SetCapacity(next.SlotCount) {
			f.syncHost()
			f.afterEdit(before, false)
		}
	}

	if prev.CaretEnabled != next.CaretEnabled || prev.BlinkInterval != next.BlinkInterval {
		f.clock.Stop()
		if next.BlinkInterval > 0 {
			// stopped, so this only records the period
			_ = f.clock.SetInterval(next.BlinkInterval)
		}
		if f.attached {
			if err := f.startClock(); err != nil {
				f.reportConfigError(err)
			}
		}
	}

	f.requestRedraw()
}

func (f *Field) reportConfigError(err error) {
	log.Printf("[pinfield] configuration rejected: %v", err)
	if f.onConfigError != nil {
		f.onConfigError(err)
	}
}

// ============================================================================
// Layout and drawing
// ============================================================================

// IntrinsicSize returns the content width of all slots and the fixed height.
func (f *Field) IntrinsicSize() (width, height float32) {
	return ContentWidth(f.cfg.SlotCount, f.cfg.SlotWidth, f.cfg.SlotGap), f.cfg.Height
}

// Slots returns a copy of the current slot geometry.
func (f *Field) Slots() []Slot {
	out := make([]Slot, len(f.slots))
	copy(out, f.slots)
	return out
}

// CaretVisible reports whether the next frame draws the caret.
func (f *Field) CaretVisible() bool {
	return ShouldDrawCaret(f.cfg.CaretEnabled, f.caretPhase(), f.focused, f.input.Len(), len(f.slots))
}

func (f *Field) caretPhase() bool {
	if f.cfg.BlinkInterval == 0 {
		return true
	}
	return f.clock.CaretPhase()
}

// Render builds the display list for one frame. The slice is reused by the
// next call.
func (f *Field) Render() []draw.Command {
	return f.renderer.Render(&f.cfg, Frame{
		Slots:      f.slots,
		Input:      f.input,
		Focused:    f.focused,
		CaretPhase: f.caretPhase(),
	})
}

// Draw renders one frame onto s.
func (f *Field) Draw(s draw.Surface) {
	draw.Replay(s, f.Render())
}
