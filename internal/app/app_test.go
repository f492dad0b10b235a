package app

import (
	"context"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/sm8ta/webike_maintenance_tracker/internal/adapter/handler/http"
	"github.com/sm8ta/webike_maintenance_tracker/internal/adapter/logger"
	"github.com/sm8ta/webike_maintenance_tracker/internal/config"
)

func newTestApp(t *testing.T, port string) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	httpCfg := &config.HTTP{URL: "127.0.0.1", Port: port, AllowedOrigins: "*"}
	router, err := httphandler.NewRouter(httpCfg, &httphandler.Handler{}, nil)
	require.NoError(t, err)
	return &App{
		Config:     &config.Container{HTTP: httpCfg},
		Logger:     logger.New(io.Discard, "test"),
		HTTPRouter: router,
	}
}

func TestRun_PortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { busy.Close() })
	port := strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)

	a := newTestApp(t, port)
	err = a.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestRunAndStop(t *testing.T) {
	a := newTestApp(t, "0")
	require.NoError(t, a.Run())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, a.Stop(ctx))
}
