package entity

// Recipe is a recipe summary returned by the upstream search API.
// The base fields come from the by-ingredients search; the pointer
// fields are filled in by a secondary detail lookup and stay nil when
// that lookup fails for a particular recipe.
type Recipe struct {
	ID                    int64    `json:"id"`
	Title                 string   `json:"title"`
	Image                 string   `json:"image,omitempty"`
	UsedIngredientCount   int      `json:"usedIngredientCount"`
	MissedIngredientCount int      `json:"missedIngredientCount"`
	Likes                 int      `json:"likes"`
	ReadyInMinutes        *int     `json:"readyInMinutes,omitempty"`
	Vegan                 *bool    `json:"vegan,omitempty"`
	Vegetarian            *bool    `json:"vegetarian,omitempty"`
	GlutenFree            *bool    `json:"glutenFree,omitempty"`
	DairyFree             *bool    `json:"dairyFree,omitempty"`
	DishTypes             []string `json:"dishTypes,omitempty"`
	Diets                 []string `json:"diets,omitempty"`
}

// RecipeDetail is the subset of the upstream per-recipe information
// endpoint used to enrich a Recipe summary.
type RecipeDetail struct {
	ID             int64    `json:"id"`
	ReadyInMinutes int      `json:"readyInMinutes"`
	Vegan          bool     `json:"vegan"`
	Vegetarian     bool     `json:"vegetarian"`
	GlutenFree     bool     `json:"glutenFree"`
	DairyFree      bool     `json:"dairyFree"`
	DishTypes      []string `json:"dishTypes"`
	Diets          []string `json:"diets"`
}

// Enrich copies detail fields onto the summary.
func (r *Recipe) Enrich(d *RecipeDetail) {
	r.ReadyInMinutes = &d.ReadyInMinutes
	r.Vegan = &d.Vegan
	r.Vegetarian = &d.Vegetarian
	r.GlutenFree = &d.GlutenFree
	r.DairyFree = &d.DairyFree
	r.DishTypes = d.DishTypes
	r.Diets = d.Diets
}
