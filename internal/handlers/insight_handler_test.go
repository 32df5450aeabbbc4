package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrends(t *testing.T) {
	t.Parallel()
	srv := newServer(t, testConfig())
	user := srv.register(t, "ada@example.com", "secret1")

	status, raw := srv.do(t, http.MethodGet, "/api/insights/trends", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(decode[envelope](t, raw).Data), "Not enough data")

	srv.createCheckin(t, user.Token, 4, 2, 4)
	status, raw = srv.do(t, http.MethodGet, "/api/insights/trends?period=month", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	trends := decode[struct {
		Period        string `json:"period"`
		TotalCheckins int    `json:"totalCheckins"`
	}](t, decode[envelope](t, raw).Data)
	assert.Equal(t, "month", trends.Period)
	assert.Equal(t, 1, trends.TotalCheckins)
}

func TestStreak(t *testing.T) {
	t.Parallel()
	srv := newServer(t, testConfig())
	user := srv.register(t, "ada@example.com", "secret1")
	srv.createCheckin(t, user.Token, 3, 3, 3)

	status, raw := srv.do(t, http.MethodGet, "/api/insights/streak", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	streak := decode[struct {
		CurrentStreak int  `json:"currentStreak"`
		IsActive      bool `json:"isActive"`
	}](t, decode[envelope](t, raw).Data)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.True(t, streak.IsActive)
}

func TestCompare(t *testing.T) {
	t.Parallel()
	srv := newServer(t, testConfig())
	user := srv.register(t, "ada@example.com", "secret1")

	status, raw := srv.do(t, http.MethodGet, "/api/insights/compare?period1Start=2026-01-01", user.Token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	missing := decode[envelope](t, raw)
	assert.False(t, missing.Success)
	assert.Contains(t, missing.Message, "period2End are required")

	status, raw = srv.do(t, http.MethodGet,
		"/api/insights/compare?period1Start=2026-01-01&period1End=2026-01-07&period2Start=2026-01-08&period2End=2026-01-14",
		user.Token, nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	cmp := decode[struct {
		OverallTrend string `json:"overallTrend"`
		Summary      string `json:"summary"`
	}](t, decode[envelope](t, raw).Data)
	assert.Equal(t, "worse", cmp.OverallTrend)
	assert.Contains(t, cmp.Summary, "minimal changes")

	status, _ = srv.do(t, http.MethodGet,
		"/api/insights/compare?period1Start=2026-01-07&period1End=2026-01-01&period2Start=2026-01-08&period2End=2026-01-14",
		user.Token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRecommendedTips(t *testing.T) {
	t.Parallel()
	srv := newServer(t, testConfig())
	user := srv.register(t, "ada@example.com", "secret1")
	for i := 0; i < 5; i++ {
		srv.createCheckin(t, user.Token, 4, 5, 4)
	}

	status, raw := srv.do(t, http.MethodGet, "/api/insights/recommended-tips", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	rec := decode[struct {
		Categories []string `json:"categories"`
		Tips       []struct {
			Title string `json:"title"`
		} `json:"tips"`
	}](t, decode[envelope](t, raw).Data)
	assert.Equal(t, []string{"Stress"}, rec.Categories)
	assert.Len(t, rec.Tips, 5)
}
