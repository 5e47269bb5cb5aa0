package dto

// CreateCategoryRequest is the JSON body for POST /category/create.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AllCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
