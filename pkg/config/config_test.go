package config_test

import (
	"testing"
	"time"

	"github.com/limbo/missions/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	cfg := config.New()
	t.Setenv("MISSIONS_TEST_INT", "8")
	t.Setenv("MISSIONS_TEST_BAD_INT", "eight")
	t.Setenv("MISSIONS_TEST_BOOL", "true")
	t.Setenv("MISSIONS_TEST_DURATION", "3s")
	t.Setenv("MISSIONS_TEST_STRING", "memory")

	assert.Equal(t, 8, cfg.GetInt("MISSIONS_TEST_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("MISSIONS_TEST_BAD_INT", 1))
	assert.Equal(t, 4, cfg.GetInt("MISSIONS_TEST_MISSING", 4))
	assert.True(t, cfg.GetBool("MISSIONS_TEST_BOOL", false))
	assert.False(t, cfg.GetBool("MISSIONS_TEST_MISSING", false))
	assert.Equal(t, 3*time.Second, cfg.GetDuration("MISSIONS_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("MISSIONS_TEST_MISSING", time.Second))
	assert.Equal(t, "memory", cfg.GetStringOr("MISSIONS_TEST_STRING", "postgres"))
	assert.Equal(t, "postgres", cfg.GetStringOr("MISSIONS_TEST_MISSING", "postgres"))
	assert.Equal(t, "", cfg.GetString("MISSIONS_TEST_MISSING"))
}
