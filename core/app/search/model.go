package search

// SearchResult is the uniform shape every source maps its hits into
type SearchResult struct {
	Type        string         `json:"type"`
	Id          string         `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Link        string         `json:"link"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// SearchResponse is the envelope returned for every successful search
type SearchResponse struct {
	Results []SearchResult `json:"results"`         // Results in registry order
	Total   int            `json:"total"`           // Always len(Results)
	Query   string         `json:"query,omitempty"` // Trimmed query, omitted when empty
}

// SearchErrorResponse is returned when the search could not run at all
type SearchErrorResponse struct {
	Error   string         `json:"error"`
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

// NewErrorResponse builds the error envelope with an empty, non-null result list
func NewErrorResponse(message string) SearchErrorResponse {
	return SearchErrorResponse{
		Error:   message,
		Results: []SearchResult{},
		Total:   0,
	}
}

// NewDescription returns a pointer for SearchResult.Description, nil for empty text
func NewDescription(text string) *string {
	if text == "" {
		return nil
	}
	return &text
}
