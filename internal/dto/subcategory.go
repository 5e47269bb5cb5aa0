package dto

// CreateSubCategoryRequest is the JSON body for POST /subcategory/create.
type CreateSubCategoryRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID int64  `json:"category_id" binding:"required"`
}

type SubCategoryResponse struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
}

type AllSubCategoriesResponse struct {
	SubCategories []SubCategoryResponse `json:"sub_categories"`
}
