package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: EnvProduction, Level: "debug", Out: &buf})

	log.Debug().Str("cereal", "RICE").Msg("container opened")

	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), `"cereal":"RICE"`)
}

func TestNew_DevelopmentWritesConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: EnvDevelopment, Level: "info", Out: &buf})

	log.Info().Msg("ready")
	log.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "ready")
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, `"level"`)
}
