package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	t.Setenv("SAVR_TEST_STRING", "value")
	t.Setenv("SAVR_TEST_INT", "42")
	t.Setenv("SAVR_TEST_BAD_INT", "forty-two")
	t.Setenv("SAVR_TEST_BOOL", "true")
	t.Setenv("SAVR_TEST_DURATION", "850ms")
	t.Setenv("SAVR_TEST_SLICE", "a:1, b:2 ,,")

	assert.Equal(t, "value", GetString("SAVR_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetString("SAVR_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, GetInt("SAVR_TEST_INT", 1))
	assert.Equal(t, 1, GetInt("SAVR_TEST_BAD_INT", 1))
	assert.True(t, GetBool("SAVR_TEST_BOOL", false))
	assert.Equal(t, 850*time.Millisecond, GetDuration("SAVR_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, GetDuration("SAVR_TEST_MISSING", time.Second))
	assert.Equal(t, []string{"a:1", "b:2"}, GetSlice("SAVR_TEST_SLICE", nil))
	assert.Equal(t, []string{"x"}, GetSlice("SAVR_TEST_MISSING", []string{"x"}))
}

func TestService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		service Service
		wantErr bool
	}{
		{
			name:    "valid",
			service: Service{Name: "order-svc", Addr: ":8081", PublicBaseURL: "http://localhost:8080"},
		},
		{
			name:    "host and port",
			service: Service{Name: "order-svc", Addr: "0.0.0.0:9000", PublicBaseURL: "http://x"},
		},
		{
			name:    "missing port",
			service: Service{Name: "order-svc", Addr: "localhost", PublicBaseURL: "http://x"},
			wantErr: true,
		},
		{
			name:    "port out of range",
			service: Service{Name: "order-svc", Addr: ":70000", PublicBaseURL: "http://x"},
			wantErr: true,
		},
		{
			name:    "missing name",
			service: Service{Addr: ":8081", PublicBaseURL: "http://x"},
			wantErr: true,
		},
		{
			name:    "missing base url",
			service: Service{Name: "order-svc", Addr: ":8081"},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.service.Validate()
			if testCase.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("ENV", "")
	t.Setenv("PUBLIC_BASE_URL", "")

	svc := Load("menu-svc", ":8082")

	assert.Equal(t, "menu-svc", svc.Name)
	assert.Equal(t, ":8082", svc.Addr)
	assert.Equal(t, "development", svc.Env)
	assert.Equal(t, "http://localhost:8080", svc.PublicBaseURL)
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger("development", "order-svc"))
	assert.NotNil(t, NewLogger("production", "order-svc"))
}
