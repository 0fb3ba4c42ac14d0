package access

import "github.com/five82/foodie/internal/cookbook"

// RecipeList mirrors GET /api/recipes.
type RecipeList struct {
	Recipes []cookbook.Recipe `json:"recipes"`
}

// StatusResponse mirrors GET /api/status.
type StatusResponse struct {
	Recipes   int    `json:"recipes"`
	Favorites int    `json:"favorites"`
	Backend   string `json:"backend"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
