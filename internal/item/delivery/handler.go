package delivery

import (
	"net/http"

	itemdomain "crockpot-backend/internal/item/domain"
	"crockpot-backend/internal/item/repository"
	"crockpot-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles item catalog requests.
type ItemHandler struct {
	itemRepo repository.ItemRepository
}

func NewItemHandler(itemRepo repository.ItemRepository) *ItemHandler {
	return &ItemHandler{itemRepo: itemRepo}
}

type createItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	ValidUnits  []string `json:"validUnits" binding:"required,min=1"`
	DefaultUnit string   `json:"defaultUnit" binding:"required"`
	Density     *float64 `json:"density"`
}

type createItemCategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	FaIcon string `json:"faIcon" binding:"required"`
}

// GetItems lists the item catalog.
// GET /items
func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.itemRepo.FindAll()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemByID returns a single item.
// GET /items/:id
func (h *ItemHandler) GetItemByID(c *gin.Context) {
	item, err := h.itemRepo.FindByID(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if item == nil {
		abortWithError(c, apperrors.NewNotFound("Item not found"))
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem adds an item to the catalog.
// POST /items (admin)
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	item := &itemdomain.Item{
		Name:         req.Name,
		CategoryID:   req.Category,
		ValidUnitIDs: req.ValidUnits,
		DefaultUnit:  req.DefaultUnit,
		Density:      req.Density,
	}

	if err := h.itemRepo.Create(item); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetItemCategories lists the item categories.
// GET /items/categories
func (h *ItemHandler) GetItemCategories(c *gin.Context) {
	categories, err := h.itemRepo.FindAllCategories()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateItemCategory adds an item category.
// POST /items/category (admin)
func (h *ItemHandler) CreateItemCategory(c *gin.Context) {
	var req createItemCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	existing, err := h.itemRepo.FindCategoryByName(req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if existing != nil {
		abortWithError(c, apperrors.NewConflict("Item category already exists"))
		return
	}

	category := &itemdomain.ItemCategory{Name: req.Name, FaIcon: req.FaIcon}
	if err := h.itemRepo.CreateCategory(category); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
