package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("Strips scheme from endpoint", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
		}

		client, err := NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Invalid endpoint", func(t *testing.T) {
		cfg := Config{
			Endpoint: "not a valid endpoint!",
		}

		_, err := NewClient(cfg)
		assert.Error(t, err)
	})
}
