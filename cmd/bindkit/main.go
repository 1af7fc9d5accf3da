// Package main is the entry point for the bindkit controls tool.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dshills/bindkit/internal/app"
	"github.com/dshills/bindkit/internal/binding"
	"github.com/dshills/bindkit/internal/config"
	"github.com/dshills/bindkit/internal/config/loader"
	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type cliOptions struct {
	app          app.Options
	dumpDefaults bool
	format       string
	window       bool
	probe        bool
	probeFor     time.Duration
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.dumpDefaults {
		if err := config.Write(os.Stdout, opts.format, binding.Defaults()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	switch {
	case opts.window:
		return runWindow(opts.app)
	case opts.probe:
		return runProbe(opts.app, opts.probeFor)
	default:
		return runReport(opts.app)
	}
}

func parseFlags() cliOptions {
	var opts cliOptions
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.app.ConfigPath, "config", "", "Path to controls file")
	flag.StringVar(&opts.app.ConfigPath, "c", "", "Path to controls file (shorthand)")
	flag.StringVar(&opts.app.AssetsDir, "assets", "", "Prompt icon directory")
	flag.StringVar(&opts.app.AssetsDir, "a", "", "Prompt icon directory (shorthand)")
	flag.StringVar(&opts.app.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.app.Watch, "watch", false, "Reload the controls file when it changes")
	flag.BoolVar(&opts.dumpDefaults, "dump-defaults", false, "Write the default bindings to stdout")
	flag.StringVar(&opts.format, "format", "toml", "Format for -dump-defaults (toml, yaml, json)")
	flag.BoolVar(&opts.window, "window", false, "Open an input test window")
	flag.BoolVar(&opts.probe, "probe", false, "Report controller connections through SDL")
	flag.DurationVar(&opts.probeFor, "probe-for", 0, "Stop probing after this long (0 waits for a signal)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bindkit - input bindings and controller prompts\n\n")
		fmt.Fprintf(os.Stderr, "Usage: bindkit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bindkit                          Show prompts for every controller family\n")
		fmt.Fprintf(os.Stderr, "  bindkit -c controls.toml         Check a controls file\n")
		fmt.Fprintf(os.Stderr, "  bindkit -dump-defaults > c.toml  Start a controls file from the defaults\n")
		fmt.Fprintf(os.Stderr, "  bindkit -window -watch           Try bindings live while editing them\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("bindkit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.app.LogLevel != "" && !logging.ValidLevel(opts.app.LogLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.app.LogLevel)
		os.Exit(1)
	}

	if _, err := loader.ParseFormat(opts.format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (must be toml, yaml, or json)\n", opts.format)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	return opts
}

// initError prints an initialization failure. A missing binding names the
// control that could not be resolved.
func initError(err error) int {
	var missing *binding.MissingBindingError
	if errors.As(err, &missing) {
		fmt.Fprintf(os.Stderr, "Error: %v (add it to the controls file or restore the default)\n", missing)
		return 1
	}
	fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
	return 1
}

// gamepadFor returns a gamepad kind displayed with family f.
func gamepadFor(f device.Family) (device.Gamepad, bool) {
	switch f {
	case device.FamilyXbox:
		return device.GamepadXbox, true
	case device.FamilyDualShock4:
		return device.GamepadDualShock4, true
	case device.FamilyDualSense:
		return device.GamepadDualSense, true
	case device.FamilyNintendo:
		return device.GamepadNintendo, true
	default:
		return device.GamepadNone, false
	}
}
