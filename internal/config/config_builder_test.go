package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without defaults produces a
// config that fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier config
// is not overwritten by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{Port: 9090}},
		Default(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

// TestBuild_InvalidPortFailsValidation verifies that an out-of-range port
// that reaches build is rejected.
func TestBuild_InvalidPortFailsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{Host: DefaultHost, Port: 70000},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantPort  int
		wantGRPC  string
		wantLevel string
	}{
		{
			name:      "port unset",
			env:       nil,
			wantPort:  8000,
			wantLevel: "info",
		},
		{
			name:      "port set",
			env:       map[string]string{"PORT": "9090"},
			wantPort:  9090,
			wantLevel: "info",
		},
		{
			name:      "port non-numeric",
			env:       map[string]string{"PORT": "not-a-port"},
			wantPort:  8000,
			wantLevel: "info",
		},
		{
			name:      "port empty",
			env:       map[string]string{"PORT": ""},
			wantPort:  8000,
			wantLevel: "info",
		},
		{
			name:      "port out of range",
			env:       map[string]string{"PORT": "123456"},
			wantPort:  8000,
			wantLevel: "info",
		},
		{
			name: "everything set",
			env: map[string]string{
				"PORT":         "3000",
				"GRPC_ADDRESS": "0.0.0.0:50051",
				"LOG_LEVEL":    "debug",
			},
			wantPort:  3000,
			wantGRPC:  "0.0.0.0:50051",
			wantLevel: "debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.env)

			cfg, err := GetStructuredConfig()

			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, DefaultHost, cfg.Server.Host)
			assert.Equal(t, tt.wantPort, cfg.Server.Port)
			assert.Equal(t, tt.wantGRPC, cfg.Server.GRPCAddress)
			assert.Equal(t, tt.wantLevel, cfg.Log.Level)
		})
	}
}

func TestServer_HTTPAddress(t *testing.T) {
	tests := []struct {
		name string
		srv  Server
		want string
	}{
		{name: "defaults", srv: Default().Server, want: "0.0.0.0:8000"},
		{name: "loopback", srv: Server{Host: "127.0.0.1", Port: 9090}, want: "127.0.0.1:9090"},
		{name: "ipv6", srv: Server{Host: "::1", Port: 8080}, want: "[::1]:8080"},
		{name: "ephemeral", srv: Server{Host: "127.0.0.1", Port: 0}, want: "127.0.0.1:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.srv.HTTPAddress())
		})
	}
}
