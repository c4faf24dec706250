package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devgenius/devgenius/internal/registry"
)

type fakeConfig struct{}

func (fakeConfig) GetAppEnv() string                { return "test" }
func (fakeConfig) GetAppPort() string               { return "0" }
func (fakeConfig) GetAppBaseURL() string            { return "http://localhost" }
func (fakeConfig) GetLogFormat() string             { return "text" }
func (fakeConfig) GetAssetSource() string           { return "embed" }
func (fakeConfig) GetStaticDir() string             { return "web/static" }
func (fakeConfig) GetStatusInterval() time.Duration { return time.Second }

type greeter interface {
	Greet() string
}

type englishGreeter struct{}

func (englishGreeter) Greet() string { return "hello" }

func TestSetAndGet(t *testing.T) {
	reg := registry.New(fakeConfig{})

	key := registry.Key[greeter]("test.greeter")
	registry.Set(reg, key, greeter(englishGreeter{}))

	got, ok := registry.Get(reg, key)
	require.True(t, ok)
	assert.Equal(t, "hello", got.Greet())
}

func TestGetMissingKey(t *testing.T) {
	reg := registry.New(fakeConfig{})

	_, ok := registry.Get(reg, registry.Key[greeter]("test.missing"))
	assert.False(t, ok)
}

func TestMustGetPanicsWhenMissing(t *testing.T) {
	reg := registry.New(fakeConfig{})

	assert.Panics(t, func() {
		registry.MustGet(reg, registry.Key[greeter]("test.missing"))
	})
}

func TestConfigIsAvailable(t *testing.T) {
	reg := registry.New(fakeConfig{})
	assert.Equal(t, "test", reg.Config().GetAppEnv())
}
