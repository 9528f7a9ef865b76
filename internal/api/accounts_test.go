package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/d1ctl/d1ctl/internal/http/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestClient_ListAccounts(t *testing.T) {
	tests := []struct {
		name           string
		responseStatus int
		responseBody   string
		httpError      error
		expectedError  string
		expectedResult []Account
	}{
		{
			name:           "successful list",
			responseStatus: 200,
			responseBody:   `{"success":true,"result":[{"id":"acc-1","name":"Personal"},{"id":"acc-2","name":"Work"}]}`,
			expectedResult: []Account{
				{ID: "acc-1", Name: "Personal"},
				{ID: "acc-2", Name: "Work"},
			},
		},
		{
			name:           "empty list",
			responseStatus: 200,
			responseBody:   `{"success":true,"result":[]}`,
			expectedResult: []Account{},
		},
		{
			name:           "unauthorized",
			responseStatus: 403,
			responseBody:   `{"success":false,"errors":[{"code":10000,"message":"Authentication error"}]}`,
			expectedError:  "Authentication error [code: 10000]",
		},
		{
			name:          "http client error",
			httpError:     errors.New("network error"),
			expectedError: "request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDoer := mock.NewMockHTTPDoer(ctrl)
			call := mockDoer.EXPECT().Do(gomock.Any()).Do(func(req *http.Request) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Equal(t, "/accounts", req.URL.Path)
				assert.Equal(t, "50", req.URL.Query().Get("per_page"))
			})
			if tt.httpError != nil {
				call.Return(nil, tt.httpError)
			} else {
				call.Return(&http.Response{
					StatusCode: tt.responseStatus,
					Body:       io.NopCloser(strings.NewReader(tt.responseBody)),
				}, nil)
			}

			client := NewClient(mockDoer)
			result, err := client.ListAccounts(context.Background())

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}
