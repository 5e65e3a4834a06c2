package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meenmo/swapleg/swap/config"
)

// Not parallel: mutates package state.
func TestSetConfig(t *testing.T) {
	orig := config.GetConfig()
	t.Cleanup(func() { config.SetConfig(orig) })

	config.SetConfig(config.Config{MaxSchedulePeriods: 12})
	assert.Equal(t, 12, config.GetConfig().MaxSchedulePeriods)

	config.SetConfig(config.Config{})
	assert.Equal(t, config.DefaultConfig.MaxSchedulePeriods, config.GetConfig().MaxSchedulePeriods)
}
