package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	listdomain "crockpot-backend/internal/shoppinglist/domain"
	"crockpot-backend/internal/shoppinglist/usecase"
	"crockpot-backend/pkg/apperrors"
)

type stubListRepo struct {
	lists  map[string]*listdomain.ShoppingList
	nextID int
}

func newStubListRepo() *stubListRepo {
	return &stubListRepo{lists: make(map[string]*listdomain.ShoppingList)}
}

// FindByUser returns a detached copy, matching the behavior of the
// gorm repository.
func (s *stubListRepo) FindByUser(userID string) (*listdomain.ShoppingList, error) {
	for _, list := range s.lists {
		if list.UserID == userID {
			copied := *list
			copied.Items = append([]listdomain.ShoppingListItem(nil), list.Items...)
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubListRepo) Create(list *listdomain.ShoppingList) error {
	s.nextID++
	list.ID = listID(s.nextID)
	copied := *list
	copied.Items = append([]listdomain.ShoppingListItem(nil), list.Items...)
	s.lists[list.ID] = &copied
	return nil
}

func (s *stubListRepo) AddItem(item *listdomain.ShoppingListItem) error {
	s.nextID++
	item.ID = listID(s.nextID)
	list := s.lists[item.ListID]
	list.Items = append(list.Items, *item)
	return nil
}

func (s *stubListRepo) UpdateItem(item *listdomain.ShoppingListItem) error {
	list := s.lists[item.ListID]
	for i := range list.Items {
		if list.Items[i].ID == item.ID {
			list.Items[i] = *item
			return nil
		}
	}
	return errors.New("item not in list")
}

func (s *stubListRepo) FindItem(listID, itemID string) (*listdomain.ShoppingListItem, error) {
	list, ok := s.lists[listID]
	if !ok {
		return nil, nil
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			item := list.Items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (s *stubListRepo) DeleteItem(listID, itemID string) error {
	list := s.lists[listID]
	kept := list.Items[:0]
	for _, item := range list.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	list.Items = kept
	return nil
}

func (s *stubListRepo) ClearItems(listID string) error {
	s.lists[listID].Items = nil
	return nil
}

func listID(n int) string {
	return string(rune('a' + n))
}

func TestGetOrCreateReturnsSameListPerUser(t *testing.T) {
	uc := usecase.NewShoppingListUsecase(newStubListRepo())

	first, err := uc.GetOrCreate("u1")
	require.NoError(t, err)
	require.Equal(t, "u1", first.UserID)
	require.Empty(t, first.Items)

	second, err := uc.GetOrCreate("u1")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
}

func TestAddExtraItemMergesSameItemAndUnit(t *testing.T) {
	uc := usecase.NewShoppingListUsecase(newStubListRepo())

	list, err := uc.AddExtraItem("u1", &usecase.AddItemRequest{Item: "carrot", Quantity: 2, Unit: "kg"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	list, err = uc.AddExtraItem("u1", &usecase.AddItemRequest{Item: "carrot", Quantity: 3, Unit: "kg"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.Equal(t, 5.0, list.Items[0].Quantity)
	require.Equal(t, listdomain.SourceExtra, list.Items[0].Source)

	// A different unit gets its own line.
	list, err = uc.AddExtraItem("u1", &usecase.AddItemRequest{Item: "carrot", Quantity: 1, Unit: "piece"})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
}

func TestToggleObtained(t *testing.T) {
	uc := usecase.NewShoppingListUsecase(newStubListRepo())

	list, err := uc.AddExtraItem("u1", &usecase.AddItemRequest{Item: "carrot", Quantity: 2, Unit: "kg"})
	require.NoError(t, err)
	itemID := list.Items[0].ID

	item, err := uc.ToggleObtained("u1", itemID)
	require.NoError(t, err)
	require.True(t, item.Obtained)

	item, err = uc.ToggleObtained("u1", itemID)
	require.NoError(t, err)
	require.False(t, item.Obtained)
}

func TestToggleObtainedUnknownItem(t *testing.T) {
	uc := usecase.NewShoppingListUsecase(newStubListRepo())

	_, err := uc.ToggleObtained("u1", "missing")

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, 404, appErr.Status)
}

func TestOtherUsersItemsAreInvisible(t *testing.T) {
	uc := usecase.NewShoppingListUsecase(newStubListRepo())

	list, err := uc.AddExtraItem("u1", &usecase.AddItemRequest{Item: "carrot", Quantity: 2, Unit: "kg"})
	require.NoError(t, err)

	_, err = uc.ToggleObtained("u2", list.Items[0].ID)
	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, 404, appErr.Status)
}

func TestRemoveAndClear(t *testing.T) {
	uc := usecase.NewShoppingListUsecase(newStubListRepo())

	list, err := uc.AddExtraItem("u1", &usecase.AddItemRequest{Item: "carrot", Quantity: 2, Unit: "kg"})
	require.NoError(t, err)
	_, err = uc.AddExtraItem("u1", &usecase.AddItemRequest{Item: "onion", Quantity: 1, Unit: "kg"})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveItem("u1", list.Items[0].ID))
	current, err := uc.GetOrCreate("u1")
	require.NoError(t, err)
	require.Len(t, current.Items, 1)

	require.NoError(t, uc.Clear("u1"))
	current, err = uc.GetOrCreate("u1")
	require.NoError(t, err)
	require.Empty(t, current.Items)
}
