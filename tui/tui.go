// Package tui is the interactive terminal front end: it shows the fitted
// image, lets the mouse draw a selection and exports thumbnails.
package tui

import (
	"context"
	"image"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/srlehn/thumbcrop/export"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/internal/logx"
	"github.com/srlehn/thumbcrop/tui/tcellimg"
	"github.com/srlehn/thumbcrop/view"
)

const helpText = `n:next r:rotate c:clear s:save q:quit`

// Viewer runs the event loop of the terminal front end.
type Viewer struct {
	scr    tcell.Screen
	ctrl   *view.Controller
	target export.Target
	logger *slog.Logger
	onSave func(export.Target)

	cols, rows int
	dragFrom   *image.Point
	drag       *image.Rectangle
	message    string
}

var _ logx.LoggerProvider = (*Viewer)(nil)

// New returns a viewer on an initialized screen. Exports go to target.
func New(scr tcell.Screen, ctrl *view.Controller, target export.Target, opts ...Option) (*Viewer, error) {
	if err := errors.NilParam(scr, ctrl); err != nil {
		return nil, err
	}
	v := &Viewer{scr: scr, ctrl: ctrl, target: target, message: helpText}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(v); err != nil {
			return nil, errors.New(err)
		}
	}
	return v, nil
}

// Logger ...
func (v *Viewer) Logger() *slog.Logger {
	if v == nil {
		return nil
	}
	return v.logger
}

// Message is the text currently shown after the status.
func (v *Viewer) Message() string { return v.message }

// Run handles events until the user quits, the screen is finalized or ctx
// is done.
func (v *Viewer) Run(ctx context.Context) error {
	if err := errors.NilReceiver(v); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	v.scr.EnableMouse(tcell.MouseDragEvents)
	defer v.scr.DisableMouse()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = v.scr.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
		case <-done:
		}
	}()

	v.HandleEvent(tcell.NewEventResize(v.scr.Size()))
	for {
		ev := v.scr.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			return errors.New(ctx.Err())
		}
		if v.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent applies ev and repaints. It reports whether the viewer
// should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.cols, v.rows = ev.Size()
		v.dragFrom, v.drag = nil, nil
		v.report(v.ctrl.Resize(v.canvas().PixelSize()), ``)
	case *tcell.EventKey:
		if quit = v.handleKey(ev); quit {
			return true
		}
	case *tcell.EventMouse:
		v.handleMouse(ev)
	default:
		return false
	}
	v.Draw()
	return false
}

func (v *Viewer) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case 'n':
		v.drag = nil
		wrapped, err := v.ctrl.Next()
		msg := ``
		if wrapped {
			msg = `End of file list, restarting`
		}
		v.report(err, msg)
	case 'r':
		v.drag = nil
		v.report(v.ctrl.RotateRight(), ``)
	case 'c':
		v.drag = nil
		v.ctrl.ClearSelection()
		v.message = helpText
	case 's':
		v.save()
	}
	return false
}

func (v *Viewer) save() {
	path, err := v.ctrl.Export(context.Background(), v.target)
	if err != nil {
		v.report(err, ``)
		return
	}
	v.target.Path = path
	if v.onSave != nil {
		v.onSave(v.target)
	}
	v.message = `saved ` + path
}

// handleMouse tracks a button 1 drag. The selection is committed on
// release and spans all pixels of the start and end cells.
func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	if ev.Buttons()&tcell.Button1 != 0 {
		if v.dragFrom == nil {
			v.dragFrom = &image.Point{X: col, Y: row}
		}
		r := tcellimg.CellRect(v.dragFrom.X, v.dragFrom.Y).Union(tcellimg.CellRect(col, row))
		v.drag = &r
		return
	}
	if v.dragFrom == nil || v.drag == nil {
		return
	}
	v.ctrl.Select(*v.drag)
	logx.Debug(`selection`, v, `rect`, v.drag.String())
	v.dragFrom, v.drag = nil, nil
}

// Draw repaints the image, the selection and the status line.
func (v *Viewer) Draw() {
	if v == nil {
		return
	}
	st := v.ctrl.Snapshot()
	v.scr.Clear()
	sel := st.Selection
	if v.drag != nil {
		sel = v.drag
	}
	v.canvas().Draw(st.Display, st.Placement.Origin, sel)
	if v.rows > 0 {
		v.drawStatus(v.rows-1, st)
	}
	v.scr.Show()
}

func (v *Viewer) drawStatus(row int, st view.State) {
	parts := []string{v.ctrl.Status(), v.ctrl.ZoomText(), v.message}
	if !st.Loaded {
		parts = parts[1:]
	}
	line := []rune(strings.Join(parts, `  `))
	style := tcell.StyleDefault.Reverse(true)
	for col := 0; col < v.cols; col++ {
		r := ' '
		if col < len(line) {
			r = line[col]
		}
		v.scr.SetContent(col, row, r, nil, style)
	}
}

func (v *Viewer) canvas() *tcellimg.Canvas {
	return tcellimg.NewCanvas(v.scr, v.cols, v.rows-1)
}

// report shows err in the status bar or msg when there is none.
func (v *Viewer) report(err error, msg string) {
	if logx.IsErr(err, v, slog.LevelWarn) {
		v.message = err.Error()
		return
	}
	if len(msg) > 0 {
		v.message = msg
	}
}
