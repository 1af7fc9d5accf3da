package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/dshills/bindkit/internal/app"
	"github.com/dshills/bindkit/internal/control"
	"github.com/dshills/bindkit/internal/platform/ebitenpad"
)

const (
	windowWidth  = 640
	windowHeight = 360
)

// inputTester is an ebiten game that shows the state of every control and
// the prompt of every action.
type inputTester struct {
	pad  *ebitenpad.Pad
	app  *app.Application
	text string
	err  error
}

func runWindow(opts app.Options) int {
	pad := ebitenpad.New(nil)
	application, err := app.New(opts, pad, pad)
	if err != nil {
		return initError(err)
	}
	defer application.Shutdown()

	ebiten.SetWindowSize(windowWidth*2, windowHeight*2)
	ebiten.SetWindowTitle("bindkit")

	game := &inputTester{pad: pad, app: application}
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		application.Logger().Error("window: %v", err)
		return 1
	}
	return 0
}

func (g *inputTester) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pad.Update()
	if err := g.app.Frame(time.Now()); err != nil {
		g.err = err
	} else if g.app.Watching() {
		g.err = nil
	}
	g.text = g.status()
	g.app.EndFrame()
	return nil
}

func (g *inputTester) status() string {
	var sb strings.Builder
	controls := g.app.Controls()
	r := g.app.Resolver()

	fmt.Fprintf(&sb, "Prompts: %s\n\n", r.Family())
	for _, a := range control.Actions() {
		b := controls.Button(a)
		state := "  "
		switch {
		case b.Pressed():
			state = "P "
		case b.Down():
			state = "D "
		case b.Buffered():
			state = "B "
		}
		key, _ := r.PromptKey(a)
		fmt.Fprintf(&sb, "%s%-8s %s\n", state, a, key)
	}
	sb.WriteString("\n")
	for _, id := range control.Sticks() {
		x, y := controls.Stick(id).Value()
		fmt.Fprintf(&sb, "%-8s %+.2f %+.2f\n", id, x, y)
	}
	if g.err != nil {
		fmt.Fprintf(&sb, "\nreload failed: %v\n", g.err)
	}
	return sb.String()
}

func (g *inputTester) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, g.text)
}

func (g *inputTester) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}
