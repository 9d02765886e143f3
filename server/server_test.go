package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketmood/moodscope/pkg/domain"
	"github.com/marketmood/moodscope/pkg/store"
	"github.com/marketmood/moodscope/server/mocks"
)

func TestServer_Run(t *testing.T) {
	port := 40000 + time.Now().Nanosecond()%10000
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}
	srv := New(cfg, &mocks.StoreMock{}, &mocks.TriggerMock{}, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for the listener to come up
	var resp *http.Response
	var err error
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	require.NoError(t, <-done)
}

func TestServer_PingMiddleware(t *testing.T) {
	srv := newTestServer(&mocks.StoreMock{}, &mocks.TriggerMock{})

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestServer_AppInfoHeaders(t *testing.T) {
	st := &mocks.StoreMock{
		LatestFunc: func(ctx context.Context) ([]domain.AnalyzedArticle, *domain.DaySummary, error) {
			return nil, nil, store.ErrSlotNotFound
		},
	}
	srv := newTestServer(st, &mocks.TriggerMock{})

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "moodscope", rec.Header().Get("App-Name"))
	assert.Equal(t, "test", rec.Header().Get("App-Version"))
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(&mocks.StoreMock{}, &mocks.TriggerMock{})

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", http.NoBody))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
