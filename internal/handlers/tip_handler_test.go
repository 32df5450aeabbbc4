package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tip struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

func TestTipCatalog(t *testing.T) {
	t.Parallel()
	srv := newServer(t, testConfig())
	user := srv.register(t, "ada@example.com", "secret1")

	status, raw := srv.do(t, http.MethodGet, "/api/tips/categories", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var categories []string
	require.NoError(t, json.Unmarshal(decode[envelope](t, raw).Data, &categories))
	assert.Equal(t, []string{"Sleep", "Mood", "Stress", "Wellness"}, categories)

	status, raw = srv.do(t, http.MethodGet, "/api/tips?category=Sleep&pageSize=3", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	page := decode[pageEnvelope](t, raw)
	assert.Equal(t, int64(4), page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	require.NotNil(t, page.Links.Next)
	assert.Contains(t, *page.Links.Next, "category=Sleep")

	var tips []tip
	require.NoError(t, json.Unmarshal(page.Data, &tips))
	require.Len(t, tips, 3)
	for _, tp := range tips {
		assert.Equal(t, "Sleep", tp.Category)
	}

	status, raw = srv.do(t, http.MethodGet, "/api/tips/"+tips[0].ID, user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, tips[0].Title, decode[tip](t, decode[envelope](t, raw).Data).Title)

	status, _ = srv.do(t, http.MethodGet, "/api/tips?category=Diet", user.Token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTipWrites(t *testing.T) {
	t.Parallel()
	srv := newServer(t, testConfig())
	user := srv.register(t, "ada@example.com", "secret1")

	status, raw := srv.do(t, http.MethodPost, "/api/tips", user.Token, map[string]string{
		"title": "Stretch", "description": "Stretch for five minutes", "category": "Wellness",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	created := decode[tip](t, decode[envelope](t, raw).Data)

	status, raw = srv.do(t, http.MethodPut, "/api/tips/"+created.ID, user.Token, map[string]string{
		"title": "Stretch more", "description": "Ten minutes", "category": "Stress",
	})
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, "Stress", decode[tip](t, decode[envelope](t, raw).Data).Category)

	status, raw = srv.do(t, http.MethodPost, "/api/tips", user.Token, map[string]string{
		"title": "Bad", "description": "Bad", "category": "Diet",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, decode[envelope](t, raw).Errors, "category")

	status, _ = srv.do(t, http.MethodDelete, "/api/tips/"+created.ID, user.Token, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = srv.do(t, http.MethodGet, "/api/tips/"+created.ID, user.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTipWrites_AdminOnly(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.TipWritesAdminOnly = true
	cfg.AdminEmails = "Admin@Example.com"
	srv := newServer(t, cfg)

	user := srv.register(t, "ada@example.com", "secret1")
	admin := srv.register(t, "admin@example.com", "secret1")
	body := map[string]string{"title": "Stretch", "description": "Five minutes"}

	status, _ := srv.do(t, http.MethodPost, "/api/tips", user.Token, body)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = srv.do(t, http.MethodPost, "/api/tips", admin.Token, body)
	assert.Equal(t, http.StatusCreated, status)

	// reads stay open to everyone
	status, _ = srv.do(t, http.MethodGet, "/api/tips", user.Token, nil)
	assert.Equal(t, http.StatusOK, status)
}
