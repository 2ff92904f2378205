package mifosx

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validOptions() []Option {
	return []Option{
		WithBaseURL("https://demo.openmf.org/mifosng-provider/api/v1"),
		WithTenant("default"),
		WithCredentials("mifos", "password"),
	}
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(validOptions()...)
	require.NoError(t, err)

	require.Equal(t, "default", cfg.Tenant())
	require.Equal(t, "https://demo.openmf.org/mifosng-provider/api/v1/", cfg.BaseURL().String())
	require.Equal(t, "bWlmb3M6cGFzc3dvcmQ=", cfg.AuthenticationKey())
	require.Same(t, http.DefaultClient, cfg.HTTPClient())
}

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{
			name: "missing base URL",
			opts: []Option{
				WithTenant("default"),
				WithCredentials("mifos", "password"),
			},
			wantErr: "base URL is required",
		},
		{
			name: "relative base URL",
			opts: []Option{
				WithBaseURL("mifosng-provider/api/v1"),
				WithTenant("default"),
				WithCredentials("mifos", "password"),
			},
			wantErr: "base URL must be absolute",
		},
		{
			name: "missing tenant",
			opts: []Option{
				WithBaseURL("https://demo.openmf.org/mifosng-provider/api/v1"),
				WithCredentials("mifos", "password"),
			},
			wantErr: "tenant is required",
		},
		{
			name: "missing credentials",
			opts: []Option{
				WithBaseURL("https://demo.openmf.org/mifosng-provider/api/v1"),
				WithTenant("default"),
			},
			wantErr: "username and password are required",
		},
		{
			name: "empty password",
			opts: []Option{
				WithBaseURL("https://demo.openmf.org/mifosng-provider/api/v1"),
				WithTenant("default"),
				WithCredentials("mifos", ""),
			},
			wantErr: "username and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opts...)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewConfigCustomHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	cfg, err := NewConfig(append(validOptions(), WithHTTPClient(custom))...)
	require.NoError(t, err)
	require.Same(t, custom, cfg.HTTPClient())
}

func TestConfigBaseURLReturnsCopy(t *testing.T) {
	cfg, err := NewConfig(validOptions()...)
	require.NoError(t, err)

	u := cfg.BaseURL()
	u.Path = "/changed"
	require.Equal(t, "https://demo.openmf.org/mifosng-provider/api/v1/", cfg.BaseURL().String())
}

func TestNewConfigPreservesTrailingSlash(t *testing.T) {
	cfg, err := NewConfig(
		WithBaseURL("https://demo.openmf.org/api/v1/"),
		WithTenant("default"),
		WithCredentials("mifos", "password"),
	)
	require.NoError(t, err)
	require.Equal(t, "https://demo.openmf.org/api/v1/", cfg.BaseURL().String())
}
