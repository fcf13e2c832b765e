package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.BcryptCost = 4
	c.ShutdownTimeout = time.Second
	return c
}

func TestNewApp_InMemory(t *testing.T) {
	app, err := NewApp(testConfig(), logging.NewDiscardLogger())
	require.NoError(t, err)

	assert.IsType(t, &repomanager.InMemoryRepositoryManager{}, app.repos)
	assert.NotNil(t, app.authService)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(testConfig(), logging.NewDiscardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestApp_RunListenError(t *testing.T) {
	c := testConfig()
	c.EndpointAddrGRPC = "127.0.0.1:notaport"

	app, err := NewApp(c, logging.NewDiscardLogger())
	require.NoError(t, err)

	assert.Error(t, app.Run(context.Background()))
}
