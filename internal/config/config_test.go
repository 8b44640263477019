package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Memory(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("EVENT_SINK", "none")
	t.Setenv("SPEED_KM_PER_MINUTE", "0.5")
	t.Setenv("SIMULATION_ENABLED", "true")
	t.Setenv("SIMULATION_INTERVAL", "500ms")
	t.Setenv("API_KEYS", " key1 , key2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, 0.5, cfg.SpeedKmPerMinute)
	assert.True(t, cfg.SimulationEnabled)
	assert.Equal(t, 500*time.Millisecond, cfg.SimulationInterval)
	assert.Equal(t, []string{"key1", "key2"}, cfg.APIKeys)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Equal(t, "dispatch.occurrences", cfg.NATSSubject)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("Postgres without DATABASE_URL", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("Unknown sink", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("EVENT_SINK", "kafka")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("Non-positive speed", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("EVENT_SINK", "none")
		t.Setenv("SPEED_KM_PER_MINUTE", "0")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
