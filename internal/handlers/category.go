package handlers

import (
	"net/http"

	dom "Shop/internal/domain"
	"Shop/internal/dto"
	"Shop/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	svc *service.CategoryService
}

// NewCategoryHandler returns a new CategoryHandler.
func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Create godoc
// @Summary      Create a category
// @Tags         category
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCategoryRequest  true  "Category body"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /category/create [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	cat, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoryToResponse(cat))
}

// GetByID godoc
// @Summary      Get a category by ID
// @Tags         category
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /category/get-by-id/{id} [get]
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cat, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoryToResponse(cat))
}

// GetAll godoc
// @Summary      List all categories
// @Tags         category
// @Produce      json
// @Success      200  {object}  dto.AllCategoriesResponse
// @Failure      404  {object}  map[string]string
// @Router       /category/get-all [get]
func (h *CategoryHandler) GetAll(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		domainError(c, err)
		return
	}
	// Empty catalog answers 404, matching the subcategory surface.
	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "no categories found"})
		return
	}
	c.JSON(http.StatusOK, dto.AllCategoriesResponse{Categories: categoriesToResponses(list)})
}

// Delete godoc
// @Summary      Delete a category
// @Tags         category
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /category/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cat, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoryToResponse(cat))
}

func categoryToResponse(cat dom.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: cat.ID, Name: cat.Name}
}

func categoriesToResponses(list []dom.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, len(list))
	for i := range list {
		out[i] = categoryToResponse(list[i])
	}
	return out
}
