package obslog

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
)

func TestModuleConsultedWritesDebugEvent(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	ModuleConsulted(log, "kaboot_pursuit", true, 0.85, "KABOOT_MASTER_FIRST")

	out := buf.String()
	if out == "" {
		t.Fatalf("expected a logged event, got nothing")
	}
	if !bytes.Contains(buf.Bytes(), []byte("module_consulted")) {
		t.Errorf("expected the module_consulted event name in output, got %s", out)
	}
}

func TestNopLoggerWritesNothing(t *testing.T) {
	log := Nop()
	// Nop loggers silently discard; this just documents the contract
	// the brain cascade relies on by default.
	log.Debug().Msg("should be discarded")
}
