package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtService := NewMockJWTServiceInterface(ctrl)
	userID := uuid.New()

	tests := []struct {
		name         string
		header       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:         "Missing header",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			header:       "Basic Zm9vOmJhcg==",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Invalid token",
			header: "Bearer broken",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("broken").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Valid token",
			header: "Bearer good",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("good").Return(&Claims{UserID: userID.String(), Role: "admin"}, nil)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			var gotID uuid.UUID
			var gotRole string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, _ = UserIDFromContext(r.Context())
				gotRole = RoleFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			Middleware(jwtService)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, userID, gotID)
				assert.Equal(t, "admin", gotRole)
			}
		})
	}
}
