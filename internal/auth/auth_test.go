package auth

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/d1ctl/d1ctl/internal/api"
	httpmock "github.com/d1ctl/d1ctl/internal/http/mock"
)

func TestCredentials_IsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		expected  bool
	}{
		{
			name:     "no expiry",
			expected: false,
		},
		{
			name:      "expires in an hour",
			expiresAt: time.Now().Add(time.Hour),
			expected:  false,
		},
		{
			name:      "expires within clock skew",
			expiresAt: time.Now().Add(30 * time.Second),
			expected:  true,
		},
		{
			name:      "expired",
			expiresAt: time.Now().Add(-time.Hour),
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := &Credentials{AccessToken: "token", ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expected, creds.IsExpired())
		})
	}
}

func TestTokenDoer_Do(t *testing.T) {
	tests := []struct {
		name       string
		creds      *Credentials
		header     http.Header
		expectAuth string
	}{
		{
			name:       "default token type",
			creds:      &Credentials{AccessToken: "abc"},
			header:     make(http.Header),
			expectAuth: "Bearer abc",
		},
		{
			name:       "explicit token type",
			creds:      &Credentials{AccessToken: "abc", TokenType: "Token"},
			header:     make(http.Header),
			expectAuth: "Token abc",
		},
		{
			name:       "nil header",
			creds:      &Credentials{AccessToken: "abc"},
			expectAuth: "Bearer abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDoer := httpmock.NewMockHTTPDoer(ctrl)
			mockDoer.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, tt.expectAuth, req.Header.Get("Authorization"))
				return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(""))}, nil
			})

			req := &http.Request{Method: http.MethodGet, Header: tt.header}
			resp, err := NewTokenDoer(tt.creds, mockDoer).Do(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestError(t *testing.T) {
	cause := errors.New("yaml: line 3: bad indentation")
	err := newCredentialsError(cause)

	assert.Equal(t, "unable to load stored credentials: yaml: line 3: bad indentation", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Help(), "CLOUDFLARE_API_TOKEN")

	multi := newMultipleAccountsError([]api.Account{{ID: "a1", Name: "Personal"}, {ID: "a2", Name: "Work"}})
	assert.Contains(t, multi.Help(), "Personal: a1")
	assert.Contains(t, multi.Help(), "Work: a2")
}
