package logger

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerDiscards(t *testing.T) {
	// Must not panic before Init.
	Logger.Infow("ignored", "k", "v")
	With("k", "v").Debug("ignored")
}

func TestInitFormats(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop().Sugar() })

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"human", Config{Format: "human"}, false},
		{"empty format", Config{}, false},
		{"json debug", Config{Format: "json", Debug: true}, false},
		{"file output", Config{Format: "json", File: filepath.Join(t.TempDir(), "asm.log")}, false},
		{"unknown", Config{Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Init(%+v) error = %v, wantErr %v", tt.cfg, err, tt.wantErr)
			}
		})
	}
}

func TestInitDebugLevel(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop().Sugar() })

	if err := Init(Config{Format: "json"}); err != nil {
		t.Fatal(err)
	}
	if Logger.Desugar().Core().Enabled(zap.DebugLevel) {
		t.Error("debug should be disabled by default")
	}
	if err := Init(Config{Format: "json", Debug: true}); err != nil {
		t.Fatal(err)
	}
	if !Logger.Desugar().Core().Enabled(zap.DebugLevel) {
		t.Error("debug should be enabled")
	}
}

func TestSetAndWith(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop().Sugar() })

	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core))
	With("record", "kb_SPAdes.SPAdesParams").Infow("checked", "passed", true)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["record"] != "kb_SPAdes.SPAdesParams" || ctx["passed"] != true {
		t.Errorf("context = %v", ctx)
	}
}
