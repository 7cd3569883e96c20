package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultClientPath(t *testing.T) {
	assert.Contains(t, DefaultClientPath("darwin"), "EVE Online.app")
	assert.Equal(t, `C:\Program Files\CCP\EVE`, DefaultClientPath("windows"))
	assert.Contains(t, DefaultClientPath("linux"), "CCP")
}

func TestConfig_Path(t *testing.T) {
	assert.Equal(t, "/opt/eve", Config{ClientPath: "/opt/eve"}.Path())
	assert.NotEmpty(t, Config{}.Path())
}
