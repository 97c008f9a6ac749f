package spoonacular

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FindByIngredients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/findByIngredients", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "egg,cheese", q.Get("ingredients"))
		assert.Equal(t, "5", q.Get("number"))
		assert.Equal(t, "test-key", q.Get("apiKey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "title": "Omelette", "image": "https://img/1.jpg", "usedIngredientCount": 2, "missedIngredientCount": 1, "likes": 40},
			{"id": 2, "title": "Fondue", "usedIngredientCount": 1, "missedIngredientCount": 3, "likes": 7}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second)
	recipes, err := c.FindByIngredients(context.Background(), "egg,cheese", 5)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, int64(1), recipes[0].ID)
	assert.Equal(t, "Omelette", recipes[0].Title)
	assert.Equal(t, 2, recipes[0].UsedIngredientCount)
	assert.Nil(t, recipes[0].ReadyInMinutes)
}

func TestClient_Information(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/42/information", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("includeNutrition"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 42, "readyInMinutes": 25, "vegan": false, "vegetarian": true,
			"glutenFree": true, "dairyFree": false,
			"dishTypes": ["lunch", "main course"], "diets": ["lacto ovo vegetarian"]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second)
	detail, err := c.Information(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 25, detail.ReadyInMinutes)
	assert.True(t, detail.Vegetarian)
	assert.Equal(t, []string{"lunch", "main course"}, detail.DishTypes)
}

func TestClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"message": "quota exceeded"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second)
	_, err := c.FindByIngredients(context.Background(), "egg", 5)
	require.Error(t, err)
	// The error must not echo the query string with the API key.
	assert.NotContains(t, err.Error(), "test-key")
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.FindByIngredients(ctx, "egg", 5)
	require.Error(t, err)
}
