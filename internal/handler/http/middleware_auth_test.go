package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-trust-keeper/internal/service"
	"github.com/MKhiriev/go-trust-keeper/internal/utils"
	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def", want: "abc.def"},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer ", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// subjectEcho writes the subject id found in the context, or "-".
var subjectEcho = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := utils.GetSubjectIDFromContext(r.Context())
	if !ok {
		subjectID = "-"
	}
	w.Write([]byte(subjectID))
})

func TestAuth_Middleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(d testDeps)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token puts subject into context",
			header:     "Bearer " + testToken,
			setup:      func(d testDeps) { d.expectSession("s-1") },
			wantStatus: http.StatusOK,
			wantBody:   "s-1",
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer " + testToken,
			setup: func(d testDeps) {
				d.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(deps)
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(subjectEcho).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestOptionalAuth_Middleware(t *testing.T) {
	t.Run("no header passes anonymously", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec := httptest.NewRecorder()

		h.optionalAuth(subjectEcho).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "-", rec.Body.String())
	})

	t.Run("valid header authenticates", func(t *testing.T) {
		h, deps := newTestHandler(t)
		deps.expectSession("s-1")
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+testToken)
		rec := httptest.NewRecorder()

		h.optionalAuth(subjectEcho).ServeHTTP(rec, req)

		assert.Equal(t, "s-1", rec.Body.String())
	})

	t.Run("invalid header is rejected", func(t *testing.T) {
		h, deps := newTestHandler(t)
		deps.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+testToken)
		rec := httptest.NewRecorder()

		h.optionalAuth(subjectEcho).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
