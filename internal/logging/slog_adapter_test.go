// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSlogHandlerEmitsThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Output: &buf})

	logger := NewSlogLogger()
	logger.Info("supervisor started", "layer", "pipeline")

	out := buf.String()
	if !strings.Contains(out, `"message":"supervisor started"`) {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, `"level":"info"`) {
		t.Errorf("output missing level: %s", out)
	}
	if !strings.Contains(out, `"layer":"pipeline"`) {
		t.Errorf("output missing attribute: %s", out)
	}
}

func TestSlogHandlerLevelMapping(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Output: &buf})

	logger := NewSlogLogger()
	logger.Debug("d")
	logger.Warn("w")
	logger.Error("e")

	out := buf.String()
	for _, level := range []string{`"level":"debug"`, `"level":"warn"`, `"level":"error"`} {
		if !strings.Contains(out, level) {
			t.Errorf("output missing %s: %s", level, out)
		}
	}
}

func TestSlogHandlerGroupsPrefixKeys(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Output: &buf})

	logger := NewSlogLogger().WithGroup("suture").With("service", "ingest-manager")
	logger.Info("service restarting")

	out := buf.String()
	if !strings.Contains(out, `"suture.service":"ingest-manager"`) {
		t.Errorf("output missing grouped attribute: %s", out)
	}
}

func TestSlogHandlerRespectsGlobalLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})

	logger := NewSlogLogger()
	logger.Info("below threshold")

	if strings.Contains(buf.String(), "below threshold") {
		t.Errorf("info record emitted at warn level: %s", buf.String())
	}
}
