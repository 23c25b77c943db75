package service

import (
	"github.com/MKhiriev/go-cred-auth/internal/adapter"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
)

// ClientServices groups the services used by the terminal client.
type ClientServices struct {
	AuthService ClientAuthService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, logger),
	}
}
