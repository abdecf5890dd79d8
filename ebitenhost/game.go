package ebitenhost

import (
	"fmt"
	"image/color"
	"log"

	"github.com/agiangrant/pinfield"
	"github.com/agiangrant/pinfield/draw"
	"github.com/agiangrant/pinfield/internal/uithread"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Options configures the window around the field.
type Options struct {
	Title  string
	Margin int    // space around the field, in pixels
	Clear  uint32 // window background, packed RGBA
}

func DefaultOptions() Options {
	return Options{
		Title:  "pinfield",
		Margin: 24,
		Clear:  draw.HexColor(0x2b2d31),
	}
}

// Game is an ebiten.Game hosting one field. It is the field's redraw
// requester; blink ticks arrive through the queue and run in Update.
type Game struct {
	field   *pinfield.Field
	queue   *uithread.Queue
	surface *Surface
	opts    Options
	clear   color.NRGBA

	chars []rune
	dirty bool
}

var _ pinfield.RedrawRequester = (*Game)(nil)

func NewGame(field *pinfield.Field, queue *uithread.Queue, source *text.GoTextFaceSource, opts Options) *Game {
	g := &Game{
		field:   field,
		queue:   queue,
		surface: NewSurface(source),
		opts:    opts,
		clear:   draw.NRGBA(opts.Clear),
		dirty:   true,
	}
	g.surface.OffsetX = float32(opts.Margin)
	g.surface.OffsetY = float32(opts.Margin)
	return g
}

func (g *Game) RequestRedraw() {
	g.dirty = true
}

func (g *Game) Update() error {
	g.queue.Drain()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.field.SetFocused(g.contains(float32(mx), float32(my)))
	}
	if !g.field.Focused() {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || repeating(ebiten.KeyBackspace) {
		g.field.DeleteBackward()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		g.field.Clear()
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if len(g.chars) > 0 {
		g.field.TypeText(string(g.chars))
	}
	return nil
}

// repeating reports key auto-repeat after the key has been held briefly.
func repeating(key ebiten.Key) bool {
	const delay, interval = 30, 3
	d := inpututil.KeyPressDuration(key)
	return d >= delay && (d-delay)%interval == 0
}

func (g *Game) contains(x, y float32) bool {
	w, h := g.field.IntrinsicSize()
	x -= g.surface.OffsetX
	y -= g.surface.OffsetY
	return x >= 0 && y >= 0 && x < w && y < h+g.field.Config().PaddingTop
}

// Draw repaints only after a redraw request; the screen keeps the previous
// frame otherwise.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false

	screen.Fill(g.clear)
	g.surface.Screen = screen
	g.field.Draw(g.surface)
}

// Layout sizes the screen to the field plus margins.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size()
}

func (g *Game) size() (int, int) {
	w, h := g.field.IntrinsicSize()
	h += g.field.Config().PaddingTop
	m := 2 * g.opts.Margin
	return int(w+0.5) + m, int(h+0.5) + m
}

// Run opens a window and blocks until it is closed. The field is attached
// for the lifetime of the window.
func Run(field *pinfield.Field, opts Options) error {
	source, err := DefaultFontSource()
	if err != nil {
		return err
	}

	queue := uithread.New(0)
	g := NewGame(field, queue, source, opts)
	field.SetScheduler(pinfield.TimerScheduler{Dispatch: queue}).SetRedrawRequester(g)

	if err := field.Attach(); err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	defer field.Detach()
	field.SetFocused(true)

	w, h := g.size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetScreenClearedEveryFrame(false)

	log.Printf("[ebitenhost] window %dx%d, %d slots", w, h, field.Config().SlotCount)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}
