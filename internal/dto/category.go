package dto

type CreateCategoryRequest struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}

type UpdateCategoryRequest struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}

type CategoryResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Title  string `json:"title"`
	Type   string `json:"type"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Skip       int                `json:"skip"`
	Limit      int                `json:"limit"`
}
