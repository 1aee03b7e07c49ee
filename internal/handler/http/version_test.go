package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "release", version: "1.2.3"},
		{name: "pre-release", version: "v2.0.0-rc.1+build.7"},
		{name: "empty", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			rec := serve(t, h, http.MethodGet, "/api/version/", "", false)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}

func TestGetServerVersion_NoSessionNeeded(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rec := serve(t, h, http.MethodGet, "/api/version/", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestGetServerVersion_WrongMethod(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, http.MethodPost, "/api/version/", "", false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
