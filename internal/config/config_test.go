package config_test

import (
	"path/filepath"
	"testing"

	"PackShop/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestMustLoadFallsBackToEnv(t *testing.T) {
	t.Setenv("PORT", "4321")
	t.Setenv("USER_DB", "pack")
	t.Setenv("USER_PASS", "hunter2")

	conf := config.MustLoad(filepath.Join(t.TempDir(), "missing.yml"))

	assert.Equal(t, "4321", conf.Listen.Port)
	assert.Equal(t, "pack", conf.Mongo.User)
	assert.Equal(t, "hunter2", conf.Mongo.Password)
	assert.Equal(t, "local", conf.Env)
	assert.Equal(t, "serviceAccountKey.json", conf.Firebase.CredentialsFile)
}
