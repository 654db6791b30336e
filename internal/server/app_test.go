package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/server/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.Storage = config.StorageMemory
	c.HTTPAddr = "127.0.0.1:0"
	c.GinMode = gin.TestMode
	c.LogLevel = "error"
	c.ShutdownTimeout = time.Second
	return c
}

func TestNewApp_Memory(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	assert.Nil(t, app.db)
	assert.NotNil(t, app.userService)
	assert.NotNil(t, app.postService)
}

func TestNewApp_UnknownStorage(t *testing.T) {
	c := memoryConfig()
	c.Storage = "mongo"

	_, err := NewApp(context.Background(), c)
	assert.ErrorContains(t, err, "unknown storage")
}

func TestRun_ReturnsWhenContextDone(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}
}
