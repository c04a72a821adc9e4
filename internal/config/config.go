package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/quirks/internal/app"
	"github.com/atomicstack/quirks/internal/logging"
	"github.com/atomicstack/quirks/internal/terminal"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// Logging holds the log destination, trace toggle and level.
type Logging struct {
	FilePath string
	Trace    bool
	Level    string
}

const (
	keyLogFile      = "log-file"
	keyTrace        = "trace"
	keyLogLevel     = "log-level"
	keyHeight       = "height"
	keyFooter       = "footer"
	keySnippetStyle = "snippet-style"
	keyMenu         = "menu"

	defaultLogFile = "quirks.log"
	defaultHeight  = 10
)

// envKeys maps each setting to its environment fallback.
var envKeys = []struct {
	key string
	env string
}{
	{keyLogFile, "QUIRKS_LOG_FILE"},
	{keyTrace, "QUIRKS_TRACE"},
	{keyLogLevel, "QUIRKS_LOG_LEVEL"},
	{keyHeight, "QUIRKS_HEIGHT"},
	{keyFooter, "QUIRKS_FOOTER"},
	{keySnippetStyle, "QUIRKS_SNIPPET_STYLE"},
	{keyMenu, "QUIRKS_MENU"},
}

// BindFlags declares the command-line flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(keyLogFile, defaultLogFile, "path to the log file")
	fs.Bool(keyTrace, false, "enable JSON trace logging")
	fs.String(keyLogLevel, "info", "minimum log level (trace, debug, info, warn, error)")
	fs.Int(keyHeight, defaultHeight, "maximum visible menu rows (0 uses terminal height)")
	fs.Bool(keyFooter, false, "show the key hint row under menus")
	fs.String(keySnippetStyle, terminal.StyleAuto, "snippet style: "+strings.Join(terminal.SnippetStyles, ", "))
	fs.String(keyMenu, "", "open the category or puzzle with this ID (e.g. sort or sort:sort-int) before the main menu")
}

// LoadArgs parses args on a fresh flag set, for tests and simple callers.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("quirks", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.WithStack(err)
	}
	cfg, err := Load(fs, environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// Load merges the parsed flags in fs with environ. A flag given on the
// command line wins over the environment, which wins over the flag default.
func Load(fs *pflag.FlagSet, environ []string) (Config, error) {
	env := parseEnv(environ)
	v := viper.New()
	for _, k := range envKeys {
		if value, ok := env[k.env]; ok && strings.TrimSpace(value) != "" {
			v.SetDefault(k.key, value)
		}
	}
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, errors.Wrap(err, "bind flags")
	}

	trace, err := boolSetting(v, keyTrace)
	if err != nil {
		return Config{}, err
	}
	footer, err := boolSetting(v, keyFooter)
	if err != nil {
		return Config{}, err
	}
	height, err := strconv.Atoi(strings.TrimSpace(v.GetString(keyHeight)))
	if err != nil {
		return Config{}, errors.Errorf("%s must be an integer (got %q)", keyHeight, v.GetString(keyHeight))
	}

	cfg := Config{
		App: app.Config{
			MaxVisible:   height,
			ShowFooter:   footer,
			SnippetStyle: strings.ToLower(strings.TrimSpace(v.GetString(keySnippetStyle))),
			RootMenu:     strings.TrimSpace(v.GetString(keyMenu)),
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    trace,
			Level:    v.GetString(keyLogLevel),
		},
		Flags: make(map[string]string, len(envKeys)),
		Args:  fs.Args(),
	}
	for _, k := range envKeys {
		cfg.Flags[k.key] = v.GetString(k.key)
	}
	return cfg, nil
}

func boolSetting(v *viper.Viper, key string) (bool, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Errorf("%s must be a boolean (got %q)", key, raw)
	}
	return parsed, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// Validate checks values that parse but make no sense.
func Validate(cfg Config) error {
	if cfg.App.MaxVisible < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.MaxVisible)
	}
	if !terminal.ValidSnippetStyle(cfg.App.SnippetStyle) {
		return fmt.Errorf("snippet-style must be one of %s (got %q)",
			strings.Join(terminal.SnippetStyles, ", "), cfg.App.SnippetStyle)
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	return nil
}
