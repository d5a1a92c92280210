package usecase

import (
	listdomain "crockpot-backend/internal/shoppinglist/domain"
	"crockpot-backend/internal/shoppinglist/repository"
	"crockpot-backend/pkg/apperrors"
)

// AddItemRequest adds an extra (non-recipe) item to the list.
type AddItemRequest struct {
	Item     string  `json:"item" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required"`
}

// ShoppingListUsecase manages the single active list per user.
type ShoppingListUsecase interface {
	GetOrCreate(userID string) (*listdomain.ShoppingList, error)
	AddExtraItem(userID string, req *AddItemRequest) (*listdomain.ShoppingList, error)
	ToggleObtained(userID, itemID string) (*listdomain.ShoppingListItem, error)
	RemoveItem(userID, itemID string) error
	Clear(userID string) error
}

type shoppingListUsecase struct {
	listRepo repository.ShoppingListRepository
}

func NewShoppingListUsecase(listRepo repository.ShoppingListRepository) ShoppingListUsecase {
	return &shoppingListUsecase{listRepo: listRepo}
}

func (u *shoppingListUsecase) GetOrCreate(userID string) (*listdomain.ShoppingList, error) {
	list, err := u.listRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if list != nil {
		return list, nil
	}

	list = &listdomain.ShoppingList{UserID: userID, Items: []listdomain.ShoppingListItem{}}
	if err := u.listRepo.Create(list); err != nil {
		return nil, err
	}
	return list, nil
}

// AddExtraItem merges into an existing line when the same item and
// unit are already on the list, otherwise appends a new line.
func (u *shoppingListUsecase) AddExtraItem(userID string, req *AddItemRequest) (*listdomain.ShoppingList, error) {
	list, err := u.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	for i := range list.Items {
		existing := &list.Items[i]
		if existing.ItemID == req.Item && existing.UnitID == req.Unit {
			existing.Quantity += req.Quantity
			if err := u.listRepo.UpdateItem(existing); err != nil {
				return nil, err
			}
			return list, nil
		}
	}

	item := &listdomain.ShoppingListItem{
		ListID:   list.ID,
		ItemID:   req.Item,
		Quantity: req.Quantity,
		UnitID:   req.Unit,
		Source:   listdomain.SourceExtra,
	}
	if err := u.listRepo.AddItem(item); err != nil {
		return nil, err
	}

	list.Items = append(list.Items, *item)
	return list, nil
}

func (u *shoppingListUsecase) ToggleObtained(userID, itemID string) (*listdomain.ShoppingListItem, error) {
	item, err := u.findOwnItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Obtained = !item.Obtained
	if err := u.listRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (u *shoppingListUsecase) RemoveItem(userID, itemID string) error {
	item, err := u.findOwnItem(userID, itemID)
	if err != nil {
		return err
	}
	return u.listRepo.DeleteItem(item.ListID, item.ID)
}

func (u *shoppingListUsecase) Clear(userID string) error {
	list, err := u.GetOrCreate(userID)
	if err != nil {
		return err
	}
	return u.listRepo.ClearItems(list.ID)
}

// findOwnItem resolves an item id within the caller's own list; items
// on other users' lists are indistinguishable from missing ones.
func (u *shoppingListUsecase) findOwnItem(userID, itemID string) (*listdomain.ShoppingListItem, error) {
	list, err := u.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	item, err := u.listRepo.FindItem(list.ID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFound("Shopping list item not found")
	}
	return item, nil
}
