package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/storynest/storynest-api/internal/config"
	"github.com/storynest/storynest-api/internal/testutils"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBuildRouter(t *testing.T) {
	client, _ := testutils.CreateTestRedisClient(t)

	cfg := &config.Config{
		Port:         "8080",
		OpenAIAPIKey: "sk-test",
		OpenAIModel:  "gpt-4o-mini",
		CommerceURL:  "https://commerce.example.com",
		CommerceKey:  "ck-test",
	}

	router, err := buildRouter(cfg, client, zap.NewNop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ok")
}

func TestBuildRouterRejectsIncompleteConfig(t *testing.T) {
	client, _ := testutils.CreateTestRedisClient(t)

	_, err := buildRouter(&config.Config{}, client, zap.NewNop())
	require.Error(t, err)
}
