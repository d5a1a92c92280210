package repository

import (
	"errors"
	"time"

	listdomain "crockpot-backend/internal/shoppinglist/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingListRepository defines the interface for shopping list data access
type ShoppingListRepository interface {
	FindByUser(userID string) (*listdomain.ShoppingList, error)
	Create(list *listdomain.ShoppingList) error
	AddItem(item *listdomain.ShoppingListItem) error
	UpdateItem(item *listdomain.ShoppingListItem) error
	FindItem(listID, itemID string) (*listdomain.ShoppingListItem, error)
	DeleteItem(listID, itemID string) error
	ClearItems(listID string) error
}

type shoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) FindByUser(userID string) (*listdomain.ShoppingList, error) {
	var list listdomain.ShoppingList
	err := r.db.Preload("Items").Where("user_id = ?", userID).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

func (r *shoppingListRepository) Create(list *listdomain.ShoppingList) error {
	list.ID = uuid.New().String()
	list.CreatedAt = time.Now()
	list.UpdatedAt = time.Now()
	return r.db.Create(list).Error
}

func (r *shoppingListRepository) AddItem(item *listdomain.ShoppingListItem) error {
	item.ID = uuid.New().String()
	return r.db.Create(item).Error
}

func (r *shoppingListRepository) UpdateItem(item *listdomain.ShoppingListItem) error {
	return r.db.Save(item).Error
}

func (r *shoppingListRepository) FindItem(listID, itemID string) (*listdomain.ShoppingListItem, error) {
	var item listdomain.ShoppingListItem
	err := r.db.Where("list_id = ? AND id = ?", listID, itemID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *shoppingListRepository) DeleteItem(listID, itemID string) error {
	return r.db.Where("list_id = ? AND id = ?", listID, itemID).Delete(&listdomain.ShoppingListItem{}).Error
}

func (r *shoppingListRepository) ClearItems(listID string) error {
	return r.db.Where("list_id = ?", listID).Delete(&listdomain.ShoppingListItem{}).Error
}
