package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dshills/bindkit/internal/app"
	"github.com/dshills/bindkit/internal/control"
	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/input/source"
	"github.com/dshills/bindkit/internal/virtual"
)

func runReport(opts app.Options) int {
	if err := report(os.Stdout, opts); err != nil {
		return initError(err)
	}
	return 0
}

// report loads the controls and prints, for every prompt family, the single
// and the full prompt of each action.
func report(w io.Writer, opts app.Options) error {
	devices := device.NewStatic(false, device.GamepadNone)
	application, err := app.New(opts, devices, idlePoller{devices: devices})
	if err != nil {
		return err
	}
	defer application.Shutdown()

	origin := "defaults"
	if application.Coordinator().Config() != nil {
		origin = "file"
	}
	fmt.Fprintf(w, "Controls: %s (%s)\n", application.ConfigPath(), origin)

	r := application.Resolver()
	for _, f := range device.Families() {
		g, connected := gamepadFor(f)
		devices.Set(connected, g)

		fmt.Fprintf(w, "\n%s\n", f)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, a := range control.Actions() {
			single, ok := r.PromptKey(a)
			if !ok {
				single = "-"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", a, single, strings.Join(r.PromptKeys(a), ", "))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	stats := r.Stats()
	application.Logger().Debug("prompt cache: %d entries, %d hits, %d misses", stats.Entries, stats.Hits, stats.Misses)
	return nil
}

// idlePoller reports no physical input. Its gamepad follows devices.
type idlePoller struct {
	devices device.Provider
}

func (idlePoller) KeyDown(k source.Key) bool           { return false }
func (idlePoller) MouseDown(m source.MouseButton) bool { return false }
func (idlePoller) ButtonDown(b source.Button) bool     { return false }
func (idlePoller) AxisValue(a source.Axis) float64     { return 0 }

func (p idlePoller) Gamepad() device.Gamepad {
	if !p.devices.Connected() {
		return device.GamepadNone
	}
	return p.devices.Gamepad()
}

var _ virtual.Poller = idlePoller{}
