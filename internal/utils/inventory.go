package utils

import "github.com/GEON1999/PomoFarm/internal/domain"

// FindSlot finds the slot holding itemID.
// Returns the index of the slot and the quantity found.
// Returns -1, 0 if not found.
func FindSlot(inventory *domain.Inventory, itemID string) (int, int) {
	for i, slot := range inventory.Slots {
		if slot.ItemID == itemID {
			return i, slot.Quantity
		}
	}
	return -1, 0
}

// QuantityOf returns how many units of itemID the inventory holds
func QuantityOf(inventory *domain.Inventory, itemID string) int {
	_, qty := FindSlot(inventory, itemID)
	return qty
}

// AddItem increments the slot for itemID, creating it on first acquisition.
// Non-positive quantities are ignored.
func AddItem(inventory *domain.Inventory, itemID string, quantity int) {
	if quantity <= 0 || itemID == "" {
		return
	}
	if idx, _ := FindSlot(inventory, itemID); idx >= 0 {
		inventory.Slots[idx].Quantity += quantity
		return
	}
	inventory.Slots = append(inventory.Slots, domain.InventorySlot{ItemID: itemID, Quantity: quantity})
}

// RemoveItem decrements the slot for itemID and drops the slot when it reaches 0.
// It returns false, leaving the inventory untouched, when fewer than quantity units are held.
func RemoveItem(inventory *domain.Inventory, itemID string, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	idx, held := FindSlot(inventory, itemID)
	if idx < 0 || held < quantity {
		return false
	}
	if held == quantity {
		inventory.Slots = append(inventory.Slots[:idx], inventory.Slots[idx+1:]...)
		return true
	}
	inventory.Slots[idx].Quantity -= quantity
	return true
}
