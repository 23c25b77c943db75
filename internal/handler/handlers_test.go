package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-cred-auth/internal/config"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(httpAddr, grpcAddr string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App:     config.App{TokenDuration: time.Hour},
		Session: config.Session{CookieName: "session_token"},
		Server: config.Server{
			HTTPAddress:         httpAddr,
			GRPCAddress:         grpcAddr,
			SignInRatePerMinute: 10,
			SignInBurst:         5,
		},
	}
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		httpAddr string
		grpcAddr string
		wantHTTP bool
		wantGRPC bool
		wantErr  bool
	}{
		{name: "both", httpAddr: ":8080", grpcAddr: ":9090", wantHTTP: true, wantGRPC: true},
		{name: "only http", httpAddr: ":8080", wantHTTP: true},
		{name: "only grpc", grpcAddr: ":9090", wantGRPC: true},
		{name: "none", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, newTestConfig(tt.httpAddr, tt.grpcAddr), prometheus.NewRegistry(), logger.Nop())
			if tt.wantErr {
				require.ErrorIs(t, err, errNoHandlersAreCreated)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			t.Cleanup(h.Close)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestHandlers_CloseWithoutHTTP(t *testing.T) {
	h := &Handlers{}
	assert.NotPanics(t, h.Close)
}
