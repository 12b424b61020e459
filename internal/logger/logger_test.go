package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_ValidLevels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		log, err := New(lvl)
		assert.NoError(t, err, "level %s", lvl)
		assert.NotNil(t, log)
		assert.Equal(t, log, Log)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	log, err := New("not-a-level")
	assert.Error(t, err)
	assert.Nil(t, log)
}
