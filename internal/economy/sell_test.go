package economy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GEON1999/PomoFarm/internal/catalog"
	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/utils"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewService(cat)
}

func TestSellPrice_Priority(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		itemID string
		want   int
		wantOK bool
	}{
		{"tomato", 25, true},
		{"egg", 15, true},
		{"milk", 40, true},
		{"tomato_seed", 10, true},
		{"lucky_charm", 37, true},
		{"rock", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.itemID, func(t *testing.T) {
			got, ok := svc.SellPrice(tt.itemID)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSell_LastUnitsRemoveEntry(t *testing.T) {
	svc := newTestService(t)
	user := domain.UserLedger{Gold: 100, Level: 1}
	inv := domain.Inventory{Slots: []domain.InventorySlot{{ItemID: "egg", Quantity: 3}}}

	result, err := svc.Sell(context.Background(), NewLedger(&user), &inv, "egg", 3)

	require.NoError(t, err)
	assert.Equal(t, 45, result.TotalValue)
	assert.Equal(t, 15, result.UnitPrice)
	assert.Equal(t, 145, user.Gold)
	idx, _ := utils.FindSlot(&inv, "egg")
	assert.Equal(t, -1, idx)
}

func TestSell_BulkAbovePurchaseCap(t *testing.T) {
	svc := newTestService(t)
	user := domain.UserLedger{Level: 1}
	inv := domain.Inventory{Slots: []domain.InventorySlot{{ItemID: "tomato", Quantity: 150}}}

	result, err := svc.Sell(context.Background(), NewLedger(&user), &inv, "tomato", 150)

	require.NoError(t, err)
	assert.Equal(t, 150*25, result.TotalValue)
	assert.Equal(t, 150*25, user.Gold)
	assert.Equal(t, 0, utils.QuantityOf(&inv, "tomato"))
}

func TestSell_Partial(t *testing.T) {
	svc := newTestService(t)
	user := domain.UserLedger{Level: 1}
	inv := domain.Inventory{Slots: []domain.InventorySlot{{ItemID: "pumpkin", Quantity: 5}}}

	_, err := svc.Sell(context.Background(), NewLedger(&user), &inv, "pumpkin", 2)

	require.NoError(t, err)
	assert.Equal(t, 200, user.Gold)
	assert.Equal(t, 3, utils.QuantityOf(&inv, "pumpkin"))
}

func TestSell_FailuresMutateNothing(t *testing.T) {
	tests := []struct {
		name     string
		itemID   string
		quantity int
		wantErr  error
	}{
		{"more than held", "egg", 4, domain.ErrInsufficientQuantity},
		{"not held at all", "milk", 1, domain.ErrInsufficientQuantity},
		{"no price", "rock", 1, domain.ErrNotSellable},
		{"zero quantity", "egg", 0, domain.ErrInvalidQuantity},
		{"negative quantity", "egg", -2, domain.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			user := domain.UserLedger{Gold: 10, Level: 1}
			inv := domain.Inventory{Slots: []domain.InventorySlot{
				{ItemID: "egg", Quantity: 3},
				{ItemID: "rock", Quantity: 9},
			}}
			beforeUser := user
			beforeInv := inv.Clone()

			result, err := svc.Sell(context.Background(), NewLedger(&user), &inv, tt.itemID, tt.quantity)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			assert.Equal(t, beforeUser, user)
			assert.Equal(t, beforeInv, inv)
		})
	}
}

type fakeGrantor struct {
	inventory domain.Inventory
	animals   []domain.Animal
}

func (g *fakeGrantor) Inventory() *domain.Inventory { return &g.inventory }

func (g *fakeGrantor) AddItems(itemID string, quantity int) {
	utils.AddItem(&g.inventory, itemID, quantity)
}

func (g *fakeGrantor) AcquireAnimal(animalType string, now time.Time) (domain.Animal, bool) {
	a := domain.Animal{ID: "animal_" + animalType, Type: animalType, LastFedAt: now}
	g.animals = append(g.animals, a)
	return a, true
}
