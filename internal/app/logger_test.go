//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/order-service/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	tests := []struct {
		cfg  config.LogConfig
		want zerolog.Level
	}{
		{config.LogConfig{Level: "debug"}, zerolog.DebugLevel},
		{config.LogConfig{Level: "error", Pretty: true}, zerolog.ErrorLevel},
		{config.LogConfig{}, zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			InitializeLogger(tt.cfg)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
