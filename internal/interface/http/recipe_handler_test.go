package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
)

type stubRecipeAPI struct {
	recipes    []entity.Recipe
	searchErr  error
	details    map[int64]*entity.RecipeDetail
	detailErrs map[int64]error
}

func (s *stubRecipeAPI) FindByIngredients(ctx context.Context, ingredients string, number int) ([]entity.Recipe, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	if len(s.recipes) > number {
		return s.recipes[:number], nil
	}
	return s.recipes, nil
}

func (s *stubRecipeAPI) Information(ctx context.Context, id int64) (*entity.RecipeDetail, error) {
	if err, ok := s.detailErrs[id]; ok {
		return nil, err
	}
	return s.details[id], nil
}

func TestRecipes_Search(t *testing.T) {
	api := &stubRecipeAPI{
		recipes: []entity.Recipe{
			{ID: 1, Title: "Soup", UsedIngredientCount: 2},
			{ID: 2, Title: "Stew", UsedIngredientCount: 1},
		},
		details: map[int64]*entity.RecipeDetail{
			1: {ID: 1, ReadyInMinutes: 30, Vegan: true},
		},
		detailErrs: map[int64]error{
			2: errors.New("upstream timeout"),
		},
	}
	r, _ := newTestRouter(api)

	w := doRequest(r, http.MethodGet, "/api/recipes?ingredients=carrot,onion", "")
	require.Equal(t, http.StatusOK, w.Code)

	var recipes []entity.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	require.Len(t, recipes, 2)

	// The recipe whose detail lookup succeeded is enriched.
	require.NotNil(t, recipes[0].ReadyInMinutes)
	assert.Equal(t, 30, *recipes[0].ReadyInMinutes)
	require.NotNil(t, recipes[0].Vegan)
	assert.True(t, *recipes[0].Vegan)

	// The failed lookup leaves base fields only.
	assert.Equal(t, "Stew", recipes[1].Title)
	assert.Nil(t, recipes[1].ReadyInMinutes)
	assert.Nil(t, recipes[1].Vegan)
}

func TestRecipes_MissingIngredients(t *testing.T) {
	r, _ := newTestRouter(&stubRecipeAPI{})

	for _, path := range []string{"/api/recipes", "/api/recipes?ingredients=", "/api/recipes?ingredients=%20%20"} {
		w := doRequest(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
	}
}

func TestRecipes_UpstreamFailure(t *testing.T) {
	r, _ := newTestRouter(&stubRecipeAPI{searchErr: errors.New("503 from upstream")})

	w := doRequest(r, http.MethodGet, "/api/recipes?ingredients=carrot", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var msg map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.NotContains(t, msg["message"], "503")
}
