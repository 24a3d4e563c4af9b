package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, env(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPrecedence(t *testing.T) {
	cfg, err := Load(
		[]string{"-addr", ":9000", "-ws-read-buffer", "2048"},
		env(map[string]string{
			"CHESS_ADDR":        ":8000",
			"CHESS_LOG_LEVEL":   "debug",
			"CHESS_DEBUG_BOARD": "true",
		}),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Addr = ":9000"
	want.LogLevel = "debug"
	want.DebugBoard = true
	want.ReadBufferSize = 2048
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown level", []string{"-log-level", "loud"}, nil},
		{"empty addr", []string{"-addr", ""}, nil},
		{"zero buffer", []string{"-ws-write-buffer", "0"}, nil},
		{"bad bool env", nil, map[string]string{"CHESS_DEBUG_BOARD": "maybe"}},
		{"unknown flag", []string{"-nope"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, env(tt.env))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load error = %v; want ErrInvalidConfig", err)
			}
		})
	}
}
