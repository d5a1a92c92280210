package delivery

import (
	"net/http"

	authdelivery "crockpot-backend/internal/auth/delivery"
	authdomain "crockpot-backend/internal/auth/domain"
	"crockpot-backend/internal/shoppinglist/usecase"
	"crockpot-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ShoppingListHandler handles the authenticated user's shopping list.
type ShoppingListHandler struct {
	listUsecase usecase.ShoppingListUsecase
}

func NewShoppingListHandler(listUsecase usecase.ShoppingListUsecase) *ShoppingListHandler {
	return &ShoppingListHandler{listUsecase: listUsecase}
}

// GetList returns the caller's list, creating an empty one on first
// access.
// GET /shopping-lists
func (h *ShoppingListHandler) GetList(c *gin.Context) {
	user := mustCurrentUser(c)
	if user == nil {
		return
	}

	list, err := h.listUsecase.GetOrCreate(user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddItem adds an extra item to the caller's list.
// POST /shopping-lists/items
func (h *ShoppingListHandler) AddItem(c *gin.Context) {
	user := mustCurrentUser(c)
	if user == nil {
		return
	}

	var req usecase.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	list, err := h.listUsecase.AddExtraItem(user.ID, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// ToggleObtained flips the obtained flag on a list item.
// PATCH /shopping-lists/items/:id/obtained
func (h *ShoppingListHandler) ToggleObtained(c *gin.Context) {
	user := mustCurrentUser(c)
	if user == nil {
		return
	}

	item, err := h.listUsecase.ToggleObtained(user.ID, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveItem deletes a single list item.
// DELETE /shopping-lists/items/:id
func (h *ShoppingListHandler) RemoveItem(c *gin.Context) {
	user := mustCurrentUser(c)
	if user == nil {
		return
	}

	if err := h.listUsecase.RemoveItem(user.ID, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// Clear empties the caller's list.
// DELETE /shopping-lists
func (h *ShoppingListHandler) Clear(c *gin.Context) {
	user := mustCurrentUser(c)
	if user == nil {
		return
	}

	if err := h.listUsecase.Clear(user.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shopping list cleared"})
}

func mustCurrentUser(c *gin.Context) *authdomain.User {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		abortWithError(c, apperrors.NewUnauthorized("No token provided", "TOKEN_MISSING"))
		return nil
	}
	return user
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
