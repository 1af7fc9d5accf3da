package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dshills/bindkit/internal/app"
	"github.com/dshills/bindkit/internal/control"
	"github.com/dshills/bindkit/internal/platform/sdlpad"
)

const probeInterval = 50 * time.Millisecond

// runProbe watches controller connections through SDL and prints the
// prompts every time the displayed family changes.
func runProbe(opts app.Options, limit time.Duration) int {
	provider := sdlpad.New(nil)
	if err := provider.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer provider.Close()

	application, err := app.New(opts, provider, idlePoller{devices: provider})
	if err != nil {
		return initError(err)
	}
	defer application.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	var deadline <-chan time.Time
	if limit > 0 {
		timer := time.NewTimer(limit)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()

	r := application.Resolver()
	shown := false
	var last string
	for {
		select {
		case <-signals:
			return 0
		case <-deadline:
			return 0
		case now := <-ticker.C:
			provider.Poll()
			if err := application.Frame(now); err != nil {
				fmt.Fprintf(os.Stderr, "reload failed: %v\n", err)
			}
			application.EndFrame()

			family := r.Family().String()
			if shown && family == last {
				continue
			}
			shown, last = true, family

			fmt.Printf("%s  %d controller(s)\n", family, provider.Len())
			for _, a := range control.Actions() {
				key, _ := r.PromptKey(a)
				fmt.Printf("  %-8s %-32s %s\n", a, key, strings.Join(r.PromptKeys(a), ", "))
			}
		}
	}
}
