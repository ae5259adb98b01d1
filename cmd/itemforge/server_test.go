package main

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/itemforge/internal/config"
	"github.com/KirkDiggler/itemforge/internal/metrics"
	forgemock "github.com/KirkDiggler/itemforge/internal/orchestrators/forge/mock"
)

func TestNewHTTPServerDisabled(t *testing.T) {
	srv, err := newHTTPServer(&config.Config{HTTPPort: 0}, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, srv)
}

func TestNewHTTPServerFailsBeforeAnythingListens(t *testing.T) {
	srv, err := newHTTPServer(&config.Config{HTTPPort: 8080}, nil, nil)
	require.Error(t, err)
	assert.Nil(t, srv)
	assert.Contains(t, err.Error(), "failed to create http router")
}

func TestNewHTTPServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := metrics.New(prometheus.NewRegistry())

	srv, err := newHTTPServer(&config.Config{HTTPPort: 8081}, forgemock.NewMockService(ctrl), m)
	require.NoError(t, err)
	require.NotNil(t, srv)
	assert.Equal(t, ":8081", srv.Addr)
	assert.NotNil(t, srv.Handler)
}
