package dto

// FileResponse carries the platform reference of an uploaded file.
type FileResponse struct {
	Ref string `json:"ref"`
}

// AutocompleteResponse lists address suggestions for a partial query.
type AutocompleteResponse struct {
	Suggestions []string `json:"suggestions"`
}
