package repository

import (
	"errors"

	itemdomain "crockpot-backend/internal/item/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository defines the interface for item and item-category data access
type ItemRepository interface {
	Create(item *itemdomain.Item) error
	FindAll() ([]itemdomain.Item, error)
	FindByID(id string) (*itemdomain.Item, error)
	CreateCategory(category *itemdomain.ItemCategory) error
	FindAllCategories() ([]itemdomain.ItemCategory, error)
	FindCategoryByName(name string) (*itemdomain.ItemCategory, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(item *itemdomain.Item) error {
	item.ID = uuid.New().String()
	return r.db.Create(item).Error
}

func (r *itemRepository) FindAll() ([]itemdomain.Item, error) {
	var items []itemdomain.Item
	if err := r.db.Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindByID(id string) (*itemdomain.Item, error) {
	var item itemdomain.Item
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) CreateCategory(category *itemdomain.ItemCategory) error {
	category.ID = uuid.New().String()
	return r.db.Create(category).Error
}

func (r *itemRepository) FindAllCategories() ([]itemdomain.ItemCategory, error) {
	var categories []itemdomain.ItemCategory
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *itemRepository) FindCategoryByName(name string) (*itemdomain.ItemCategory, error) {
	var category itemdomain.ItemCategory
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
