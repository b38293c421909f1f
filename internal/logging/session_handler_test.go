package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSessionIDHandlerTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	handler := newSessionIDHandler(slog.NewJSONHandler(&buf, nil), "session-abc")

	slog.New(handler).With("extra", "value").WithGroup("round").Info("presented view", "slots", 5)

	output := buf.String()
	if !strings.Contains(output, `"session_id":"session-abc"`) {
		t.Errorf("expected session_id in output, got: %s", output)
	}
	if !strings.Contains(output, `"extra":"value"`) {
		t.Errorf("expected extra attr in output, got: %s", output)
	}
}

func TestSessionIDHandlerNilBase(t *testing.T) {
	if _, ok := newSessionIDHandler(nil, "session-123").(NoopHandler); !ok {
		t.Error("expected NoopHandler when base is nil")
	}
}

func TestConsoleHandlerFormatsComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl, false)).With(FieldComponent, "recommend")

	logger.Info("ranked catalog", "matches", 3, "genre", "Sci-Fi Drama")
	logger.Debug("hidden")

	line := buf.String()
	if !strings.Contains(line, " INFO recommend: ranked catalog") {
		t.Fatalf("unexpected header: %q", line)
	}
	if !strings.Contains(line, "matches=3") || !strings.Contains(line, `genre="Sci-Fi Drama"`) {
		t.Fatalf("unexpected attrs: %q", line)
	}
	if strings.Contains(line, "hidden") {
		t.Fatalf("debug record should be filtered at info level: %q", line)
	}
}
