package search

import (
	"net/http"

	"portal/core/logger"
	"portal/core/router"
)

type SearchController struct {
	Service      Searcher
	Logger       logger.Logger
	QueryOptions QueryOptions
}

func NewSearchController(service Searcher, logger logger.Logger, opts QueryOptions) *SearchController {
	return &SearchController{
		Service:      service,
		Logger:       logger,
		QueryOptions: opts,
	}
}

func (c *SearchController) Routes(router *router.RouterGroup) {
	// Global search endpoint
	router.GET("/search", c.Search)
}

// Search godoc
// @Summary Global search across the portal
// @Description Case-insensitive substring search over products, SOPs, knowledge, quality trainings, users and agents
// @Tags Global/Search
// @Accept json
// @Produce json
// @Param q query string false "Search term; blank returns no results" example("cream")
// @Param limit query int false "Results per source (default: 50)" example(20)
// @Success 200 {object} search.SearchResponse
// @Failure 500 {object} search.SearchErrorResponse
// @Router /search [get]
func (c *SearchController) Search(ctx *router.Context) error {
	query := NewQuery(ctx.Query("q"), ctx.Query("limit"), c.QueryOptions)

	response, err := c.Service.Search(ctx.Context(), query)
	if err != nil {
		c.Logger.Error("Search failed",
			logger.String("query", query.Term),
			logger.String("error", err.Error()))
		return ctx.JSON(http.StatusInternalServerError, NewErrorResponse("Search failed: "+err.Error()))
	}

	return ctx.JSON(http.StatusOK, response)
}
