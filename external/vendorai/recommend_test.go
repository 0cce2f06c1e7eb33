package vendorai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowRecommender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cat toy", body["searchQuery"])

		w.Write([]byte(`{"vendorRecommendations": ["Animal World", "Central Pet Shop"]}`))
	}))
	defer srv.Close()

	rec, err := NewFlowRecommender(srv.URL)
	require.NoError(t, err)

	vendors, err := rec.Recommend(context.Background(), "cat toy")

	require.NoError(t, err)
	assert.Equal(t, []string{"Animal World", "Central Pet Shop"}, vendors)
}

func TestFlowRecommenderMissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	rec, err := NewFlowRecommender(srv.URL)
	require.NoError(t, err)

	_, err = rec.Recommend(context.Background(), "cat toy")
	assert.Error(t, err)
}

func TestFlowRecommenderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	rec, err := NewFlowRecommender(srv.URL)
	require.NoError(t, err)

	_, err = rec.Recommend(context.Background(), "cat toy")
	assert.Error(t, err)
}

func TestFlowRecommenderRequiresEndpoint(t *testing.T) {
	_, err := NewFlowRecommender("")
	assert.Error(t, err)
}

func TestKeywordRecommenderOrdersByRelevance(t *testing.T) {
	rec := NewKeywordRecommender()

	vendors, err := rec.Recommend(context.Background(), "leather dog collar")

	require.NoError(t, err)
	require.NotEmpty(t, vendors)
	assert.Equal(t, "Leather Craft Pets", vendors[0])
	assert.Contains(t, vendors, "Central Pet Shop")
}

func TestKeywordRecommenderNoMatch(t *testing.T) {
	rec := NewKeywordRecommender()

	vendors, err := rec.Recommend(context.Background(), "xyzzy")

	require.NoError(t, err)
	assert.Empty(t, vendors)
}
