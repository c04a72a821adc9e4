package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/quirks/internal/app"
	"github.com/atomicstack/quirks/internal/config"
	"github.com/atomicstack/quirks/internal/logging"
	"github.com/atomicstack/quirks/internal/logging/events"
	"github.com/atomicstack/quirks/internal/terminal"
	"github.com/atomicstack/quirks/internal/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitConfig      = 2
	exitInterrupted = 130
)

// configError marks failures that happen before the menu starts.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func main() {
	os.Exit(execute(os.Args[1:], os.Environ(), os.Stderr, runApp))
}

type runner func(cfg config.Config) error

func runApp(cfg config.Config) error {
	if err := terminal.RequireInteractive(os.Stdin); err != nil {
		return err
	}
	terminal.StyleOutput(os.Stderr)
	return app.Run(cfg.App, app.StdStreams(), nil)
}

func newRootCmd(args, environ []string, run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quirks",
		Short: "Interactive quiz of surprising Go behaviour",
		Args: func(cmd *cobra.Command, rest []string) error {
			if err := cobra.NoArgs(cmd, rest); err != nil {
				return configError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError{err}
	})
	config.BindFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(cmd.Flags(), environ)
		if err != nil {
			return configError{err}
		}
		cfg.Args = append([]string(nil), args...)
		if err := config.Validate(cfg); err != nil {
			return configError{err}
		}
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		if err := logging.SetLevel(cfg.Logging.Level); err != nil {
			return configError{err}
		}
		traceStartup(cfg)
		return run(cfg)
	}
	return cmd
}

// execute runs the root command and maps its outcome to a process exit code.
func execute(args, environ []string, stderr io.Writer, run runner) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(args, environ, run)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	code := exitCode(err)
	events.App.Exit(code, err)
	defer logging.Close()

	switch code {
	case exitOK, exitInterrupted:
	case exitConfig:
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
	default:
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return code
}

func exitCode(err error) int {
	var cfgErr configError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ui.ErrInterrupted), errors.Is(err, terminal.ErrInterrupted):
		return exitInterrupted
	case errors.As(err, &cfgErr):
		return exitConfig
	default:
		return exitFailure
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails probes stdin, stdout and stderr for a terminal and its size.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.file.Fd())
		if term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
