package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPetsHandler_Handle(t *testing.T) {
	ts := time.Date(2024, 6, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name    string
		level   slog.Level
		message string
		attrs   []slog.Attr
		want    string
	}{
		{
			name:    "info message",
			level:   slog.LevelInfo,
			message: "pet added",
			want:    "2024-06-15T14:30:45Z\tINFO\ts-1\tpet added\n",
		},
		{
			name:    "error level",
			level:   slog.LevelError,
			message: "failed to load pets",
			want:    "2024-06-15T14:30:45Z\tERROR\ts-1\tfailed to load pets\n",
		},
		{
			name:    "with record attrs",
			level:   slog.LevelInfo,
			message: "snapshot pushed",
			attrs:   []slog.Attr{slog.String("host", "h1"), slog.Int64("version", 42)},
			want:    "2024-06-15T14:30:45Z\tINFO\ts-1\tsnapshot pushed\thost=h1\tversion=42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &petsHandler{w: &buf, session: "s-1"}

			r := slog.NewRecord(ts, tt.level, tt.message, 0)
			r.AddAttrs(tt.attrs...)

			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Handle() output =\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestPetsHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := &petsHandler{w: &buf, session: "s-1", attrs: []slog.Attr{slog.String("a", "1")}}

	h2 := h.WithAttrs([]slog.Attr{slog.String("component", "vault")}).(*petsHandler)
	if len(h.attrs) != 1 {
		t.Errorf("original handler attrs modified: got %d, want 1", len(h.attrs))
	}

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "upload", 0)
	r.AddAttrs(slog.String("key", "abc"))
	if err := h2.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{"a=1", "component=vault", "key=abc"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestPetsHandler_Enabled(t *testing.T) {
	tests := []struct {
		name  string
		min   slog.Leveler
		level slog.Level
		want  bool
	}{
		{"no minimum", nil, slog.LevelDebug, true},
		{"below minimum", slog.LevelInfo, slog.LevelDebug, false},
		{"at minimum", slog.LevelWarn, slog.LevelWarn, true},
		{"above minimum", slog.LevelInfo, slog.LevelError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &petsHandler{level: tt.min}
			if got := h.Enabled(context.Background(), tt.level); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")

	logger, f, err := newLogger(dir, "test-session", "warn")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept", "id", 7)
	f.Close()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	got := string(data)
	if strings.Contains(got, "dropped") {
		t.Errorf("info record written below warn level: %q", got)
	}
	if !strings.Contains(got, "WARN\ttest-session\tkept\tid=7") {
		t.Errorf("log file = %q, want the warn record", got)
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, _, err := newLogger(t.TempDir(), "s", "verbose"); err == nil {
		t.Fatal("newLogger() expected error for unknown level")
	}
}
