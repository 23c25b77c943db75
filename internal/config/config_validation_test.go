package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validServerConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "users.db"}},
	}
	cfg.applyDefaults()
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Minute },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too low",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 2 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 32 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero sign-in rate",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.SignInRatePerMinute = -1 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDB_DriverName(t *testing.T) {
	tests := []struct {
		name string
		db   DB
		want string
	}{
		{name: "explicit driver", db: DB{DSN: "postgres://x", Driver: DriverSQLite}, want: DriverSQLite},
		{name: "postgres url", db: DB{DSN: "postgres://user@localhost/db"}, want: DriverPostgres},
		{name: "postgresql url", db: DB{DSN: "PostgreSQL://user@localhost/db"}, want: DriverPostgres},
		{name: "file path", db: DB{DSN: "users.db"}, want: DriverSQLite},
		{name: "memory", db: DB{DSN: ":memory:"}, want: DriverSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.db.DriverName())
		})
	}
}

func TestApp_IsDevelopment(t *testing.T) {
	assert.True(t, App{Environment: "development"}.IsDevelopment())
	assert.True(t, App{Environment: " Development "}.IsDevelopment())
	assert.False(t, App{Environment: "production"}.IsDevelopment())
	assert.False(t, App{}.IsDevelopment())
}

func TestClientConfig(t *testing.T) {
	cfg := &StructuredConfig{App: App{Environment: "development", Version: "1.0.0"}}
	cfg.applyDefaults()

	clientCfg := newClientConfig(cfg)
	require.NoError(t, clientCfg.validate())
	assert.True(t, clientCfg.App.Development)
	assert.Equal(t, "1.0.0", clientCfg.App.Version)
	assert.Equal(t, DefaultAdapterAddress, clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAdapterTimeout, clientCfg.Adapter.RequestTimeout)

	clientCfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, clientCfg.validate(), ErrInvalidAdapterConfigs)
}
