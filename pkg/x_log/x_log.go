// Package x_log configures zerolog for console and file output, with
// lipgloss-styled console rendering and lumberjack rotation for files.
package x_log

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the global logger from the default config path.
func Init() {
	cfg, err := LoadConfig("")
	if err != nil {
		cfg = &defaultConfig
	}
	InitWithConfig(cfg, "")
}

// InitWithConfig configures the global logger for the given module and
// returns it.
func InitWithConfig(cfg *Config, module string) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	if cfg.ToConsole {
		writers = append(writers, consoleWriter(cfg))
	}
	if cfg.ToFile {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if module != "" {
		ctx = ctx.Str("module", module)
	}
	log.Logger = ctx.Logger()
	return log.Logger
}

// New returns a child of the global logger scoped to module.
func New(module string) zerolog.Logger {
	return log.Logger.With().Str("module", module).Logger()
}

// consoleWriter styles output for terminals and stays plain when
// stderr is redirected.
func consoleWriter(cfg *Config) io.Writer {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		styles := DefaultStylesByName(cfg.Style)
		styles.Out = os.Stderr
		return ConsoleWriterWithStyles(styles)
	}
	return zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
}

//---------------------
// Log File Tail
//---------------------

// GetLogs reads and returns the last n lines from a log file.
func GetLogs(filename string, n int) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, string(data[start:i]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, string(data[start:]))
	}

	if len(lines) > n {
		return lines[len(lines)-n:], nil
	}
	return lines, nil
}
