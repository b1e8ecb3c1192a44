package steam

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cother/cother/config"
)

func newTestServer(t *testing.T, status int, body string) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/featuredcategories/", r.URL.Path)
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return New(&config.SteamConfig{URL: server.URL})
}

const featuredBody = `{
	"specials": {"items": [
		{"id": 10, "name": "Half-Life", "discounted": true, "discount_percent": 50, "final_price": 499, "currency": "EUR"}
	]},
	"new_releases": {"items": [
		{"id": 20, "name": "Portal"},
		{"id": 30, "name": "Portal 2"}
	]}
}`

func TestGetSpecialOffers(t *testing.T) {
	client := newTestServer(t, http.StatusOK, featuredBody)

	items, err := client.GetSpecialOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Half-Life", items[0].Name)
	assert.True(t, items[0].Discounted)
	assert.Equal(t, 50, items[0].DiscountPercent)
}

func TestGetNewReleases(t *testing.T) {
	client := newTestServer(t, http.StatusOK, featuredBody)

	items, err := client.GetNewReleases(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Portal", items[0].Name)
}

func TestGetSpecialOffers_UpstreamError(t *testing.T) {
	client := newTestServer(t, http.StatusBadGateway, "upstream down")

	_, err := client.GetSpecialOffers(context.Background())
	assert.Error(t, err)
}

func TestGetSpecialOffers_InvalidJSON(t *testing.T) {
	client := newTestServer(t, http.StatusOK, "not json")

	_, err := client.GetSpecialOffers(context.Background())
	assert.Error(t, err)
}
