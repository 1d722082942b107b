package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	infoTxtColor  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor  = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor = lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
	idTxtColor    = lipgloss.AdaptiveColor{Light: "#0A7EA4", Dark: "#61AFEF"}
)

// ledgerStyles builds the level glyphs and key colours used on the console.
func ledgerStyles() *log.Styles {
	styles := log.DefaultStyles()

	level := func(glyph string, color lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(glyph).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
	}
	styles.Levels[log.ErrorLevel] = level("❌", errorTxtColor)
	styles.Levels[log.InfoLevel] = level("ℹ️", infoTxtColor)
	styles.Levels[log.WarnLevel] = level("⚠️", warnTxtColor)
	styles.Levels[log.DebugLevel] = level("🐛", debugTxtColor)

	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":             errorTxtColor,
		"kind":              warnTxtColor,
		"prefix":            debugTxtColor,
		"caller":            debugTxtColor,
		"time":              debugTxtColor,
		"account_id":        idTxtColor,
		"source_account_id": idTxtColor,
		"target_account_id": idTxtColor,
		"transaction_id":    idTxtColor,
		"amount":            infoTxtColor,
		"balance":           infoTxtColor,
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}

// NewLogger returns a slog.Logger backed by a charmbracelet handler writing
// to w. Format is "json" or "text"; anything else falls back to text.
func NewLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text", TimeFormat: "2006-01-02 15:04:05"}
	}
	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(ledgerStyles())

	return slog.New(logger)
}

func setupLogger(cfg *config.Log) *slog.Logger {
	slogger := NewLogger(cfg, os.Stdout)
	slog.SetDefault(slogger)
	return slogger
}
