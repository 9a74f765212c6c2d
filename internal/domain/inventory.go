package domain

// InventorySlot is the quantity held of a single item.
// An inventory never holds two slots for the same item, and never a slot with quantity 0.
type InventorySlot struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Inventory is the keyed quantity store shared by the farm and the shop
type Inventory struct {
	Slots []InventorySlot `json:"slots"`
}

// Clone returns a deep copy of the inventory
func (inv Inventory) Clone() Inventory {
	slots := make([]InventorySlot, len(inv.Slots))
	copy(slots, inv.Slots)
	return Inventory{Slots: slots}
}
