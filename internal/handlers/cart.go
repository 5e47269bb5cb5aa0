package handlers

import (
	"net/http"

	"Shop/internal/auth"
	dom "Shop/internal/domain"
	"Shop/internal/dto"
	"Shop/internal/service"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the cart endpoints. All of them require a bearer token;
// none require a separate permission.
type CartHandler struct {
	svc *service.CartService
}

// NewCartHandler returns a new CartHandler.
func NewCartHandler(svc *service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// Create godoc
// @Summary      Create a cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateCartRequest  true  "Cart body"
// @Success      201   {object}  dto.CreateCartResponse
// @Failure      422   {object}  map[string]string
// @Router       /cart/create [post]
func (h *CartHandler) Create(c *gin.Context) {
	var req dto.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID := auth.UserIDFromContext(c)
	cart, err := h.svc.Create(c.Request.Context(), userID, req.Name, req.RemainderDate.Ptr())
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateCartResponse{ID: cart.ID})
}

// GetByID godoc
// @Summary      Get a cart with its items
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Cart ID"
// @Success      200  {object}  dto.SingleCartResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /cart/get-by-id/{id} [get]
func (h *CartHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	cart, items, err := h.svc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SingleCartResponse{
		CartResponse: cartToResponse(cart),
		Items:        cartItemsToResponses(items),
	})
}

// GetAll godoc
// @Summary      List the user's carts
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AllCartsResponse
// @Failure      404  {object}  map[string]string
// @Router       /cart/get-all [get]
func (h *CartHandler) GetAll(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.GetAll(c.Request.Context(), userID)
	if err != nil {
		domainError(c, err)
		return
	}
	// Same contract quirk as the catalog surface: empty means 404.
	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "no carts found"})
		return
	}
	c.JSON(http.StatusOK, dto.AllCartsResponse{Carts: cartsToResponses(list)})
}

// AddToCart godoc
// @Summary      Add a product to a cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Cart ID"
// @Param        body  body      dto.AddToCartRequest  true  "Item body"
// @Success      201   {object}  dto.CartItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /cart/add-to-cart/{id} [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID := auth.UserIDFromContext(c)
	item, err := h.svc.AddItem(c.Request.Context(), userID, id, req.ProductID, req.Quantity)
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cartItemToResponse(item))
}

// Delete godoc
// @Summary      Delete a cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Cart ID"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /cart/{id} [delete]
func (h *CartHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	cart, err := h.svc.Delete(c.Request.Context(), userID, id)
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartToResponse(cart))
}

func cartToResponse(cart dom.Cart) dto.CartResponse {
	return dto.CartResponse{
		ID:            cart.ID,
		Name:          cart.Name,
		RemainderDate: cart.ReminderDate,
		Status:        cart.Status,
	}
}

func cartsToResponses(list []dom.Cart) []dto.CartResponse {
	out := make([]dto.CartResponse, len(list))
	for i := range list {
		out[i] = cartToResponse(list[i])
	}
	return out
}

func cartItemToResponse(it dom.CartItem) dto.CartItemResponse {
	return dto.CartItemResponse{ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity}
}

func cartItemsToResponses(items []dom.CartItem) []dto.CartItemResponse {
	out := make([]dto.CartItemResponse, len(items))
	for i := range items {
		out[i] = cartItemToResponse(items[i])
	}
	return out
}
