// SPDX-License-Identifier: MIT

package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/posecare/statusd/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolderReloadSwapsConfig(t *testing.T) {
	path := writeConfigFile(t, `log_level: info`)
	loader := config.NewLoader(path, "test")
	initial, err := loader.Load()
	require.NoError(t, err)

	holder := config.NewHolder(initial, loader, path)
	require.NoError(t, os.WriteFile(path, []byte(`log_level: debug`), 0o600))

	require.NoError(t, holder.Reload(context.Background()))
	assert.Equal(t, "debug", holder.Get().LogLevel)
}

func TestHolderReloadKeepsOldConfigOnError(t *testing.T) {
	path := writeConfigFile(t, `log_level: info`)
	loader := config.NewLoader(path, "test")
	initial, err := loader.Load()
	require.NoError(t, err)

	holder := config.NewHolder(initial, loader, path)
	require.NoError(t, os.WriteFile(path, []byte(`log_level: chatty`), 0o600))

	require.Error(t, holder.Reload(context.Background()))
	assert.Equal(t, "info", holder.Get().LogLevel, "previous configuration must stay in effect")
}

func TestHolderNotifiesSubscribers(t *testing.T) {
	path := writeConfigFile(t, `log_level: info`)
	loader := config.NewLoader(path, "test")
	initial, err := loader.Load()
	require.NoError(t, err)

	holder := config.NewHolder(initial, loader, path)
	updates := make(chan config.Config, 1)
	holder.Subscribe(updates)

	require.NoError(t, os.WriteFile(path, []byte(`log_level: warn`), 0o600))
	require.NoError(t, holder.Reload(context.Background()))

	select {
	case cfg := <-updates:
		assert.Equal(t, "warn", cfg.LogLevel)
	default:
		t.Fatal("expected a config update notification")
	}
}

func TestHolderWatchWithoutPathIsNoop(t *testing.T) {
	holder := config.NewHolder(config.Defaults(), config.NewLoader("", "test"), "")
	assert.NoError(t, holder.Watch(context.Background()))
}
