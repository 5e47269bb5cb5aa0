package handlers

import (
	"net/http"

	"Shop/internal/auth"
	dom "Shop/internal/domain"
	"Shop/internal/dto"
	"Shop/internal/permissions"
	"Shop/internal/service"

	"github.com/gin-gonic/gin"
)

// Permission names checked per endpoint; each endpoint declares its own
// minimal set.
const (
	permCreateSubCategory = "create_subcategory"
	permReadSubCategory   = "read_subcategory"
	permDeleteSubCategory = "delete_subcategory"
)

// SubCategoryHandler serves the subcategory endpoints. Every operation is
// gated by a permission check before any repository call.
type SubCategoryHandler struct {
	svc     *service.SubCategoryService
	checker permissions.Checker
}

// NewSubCategoryHandler returns a new SubCategoryHandler.
func NewSubCategoryHandler(svc *service.SubCategoryService, checker permissions.Checker) *SubCategoryHandler {
	return &SubCategoryHandler{svc: svc, checker: checker}
}

// Create godoc
// @Summary      Create a subcategory
// @Tags         subcategory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateSubCategoryRequest  true  "SubCategory body"
// @Success      201   {object}  dto.SubCategoryResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /subcategory/create [post]
func (h *SubCategoryHandler) Create(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	if err := h.checker.Check(c.Request.Context(), userID, permCreateSubCategory); err != nil {
		domainError(c, err)
		return
	}
	var req dto.CreateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	sc, err := h.svc.Create(c.Request.Context(), req.CategoryID, req.Name)
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subCategoryToResponse(sc))
}

// GetByID godoc
// @Summary      Get a subcategory by ID
// @Tags         subcategory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "SubCategory ID"
// @Success      200  {object}  dto.SubCategoryResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /subcategory/get-by-id/{id} [get]
func (h *SubCategoryHandler) GetByID(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	if err := h.checker.Check(c.Request.Context(), userID, permReadSubCategory); err != nil {
		domainError(c, err)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	sc, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, subCategoryToResponse(sc))
}

// GetAll godoc
// @Summary      List all subcategories
// @Tags         subcategory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AllSubCategoriesResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /subcategory/get-all [get]
func (h *SubCategoryHandler) GetAll(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	if err := h.checker.Check(c.Request.Context(), userID, permReadSubCategory); err != nil {
		domainError(c, err)
		return
	}
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		domainError(c, err)
		return
	}
	// An empty result answers 404, not 200-with-empty-list. Known quirk of
	// this API's contract; kept deliberately.
	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "no sub-categories found"})
		return
	}
	c.JSON(http.StatusOK, dto.AllSubCategoriesResponse{SubCategories: subCategoriesToResponses(list)})
}

// Delete godoc
// @Summary      Delete a subcategory
// @Tags         subcategory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "SubCategory ID"
// @Success      200  {object}  dto.SubCategoryResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /subcategory/{id} [delete]
func (h *SubCategoryHandler) Delete(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	if err := h.checker.Check(c.Request.Context(), userID, permDeleteSubCategory); err != nil {
		domainError(c, err)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	sc, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, subCategoryToResponse(sc))
}

func subCategoryToResponse(sc dom.SubCategory) dto.SubCategoryResponse {
	return dto.SubCategoryResponse{ID: sc.ID, CategoryID: sc.CategoryID, Name: sc.Name}
}

func subCategoriesToResponses(list []dom.SubCategory) []dto.SubCategoryResponse {
	out := make([]dto.SubCategoryResponse, len(list))
	for i := range list {
		out[i] = subCategoryToResponse(list[i])
	}
	return out
}
