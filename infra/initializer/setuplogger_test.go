package initializer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&config.Log{Format: "json", Prefix: "[ledger]"}, &buf)

	logger.Info("Transfer successful", "transaction_id", 7)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Transfer successful", line["msg"])
	assert.EqualValues(t, 7, line["transaction_id"])
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	// charmbracelet/log: 4 is WarnLevel.
	logger := NewLogger(&config.Log{Format: "text", Level: 4}, &buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown", "kind", "conflict")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_NilConfig(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(nil, &buf).Info("hello")
	assert.Contains(t, buf.String(), "hello")
}
