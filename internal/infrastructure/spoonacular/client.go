// Package spoonacular is a thin client for the external recipe-search
// API. It is consumed as a black box: lookups here are passthroughs
// and carry no business rules.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a client with a bounded per-call timeout so a stuck
// upstream cannot hang a request indefinitely.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// FindByIngredients searches recipes matching a comma-separated
// ingredient list, capped at number results.
func (c *Client) FindByIngredients(ctx context.Context, ingredients string, number int) ([]entity.Recipe, error) {
	q := url.Values{}
	q.Set("ingredients", ingredients)
	q.Set("number", strconv.Itoa(number))
	q.Set("apiKey", c.apiKey)

	var recipes []entity.Recipe
	if err := c.getJSON(ctx, "/recipes/findByIngredients", q, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Information fetches per-recipe detail used to enrich a summary.
func (c *Client) Information(ctx context.Context, id int64) (*entity.RecipeDetail, error) {
	q := url.Values{}
	q.Set("includeNutrition", "false")
	q.Set("apiKey", c.apiKey)

	detail := &entity.RecipeDetail{}
	path := fmt.Sprintf("/recipes/%d/information", id)
	if err := c.getJSON(ctx, path, q, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Path only; the query string carries the API key.
		return fmt.Errorf("spoonacular: GET %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
