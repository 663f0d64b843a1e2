package main

import (
	"bytes"
	"encoding/json"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hnbex/config"
	"strings"
	"testing"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "error", Format: "logfmt"})

	level.Debug(logger).Log("msg", "hidden")
	level.Info(logger).Log("msg", "hidden")
	level.Error(logger).Log("msg", "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "caller=main_test.go")
	assert.Contains(t, buf.String(), "ts=")
}

func TestNewLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "debug", Format: "logfmt"})

	level.Debug(logger).Log("msg", "shown")

	assert.Contains(t, buf.String(), "level=debug")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "info", Format: "json"})

	level.Info(logger).Log("msg", "hello", "component", "hnb")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "hnb", line["component"])
}
