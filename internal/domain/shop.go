package domain

import "time"

// ShopState holds the rotation metadata of the shop
type ShopState struct {
	LastRefresh     time.Time `json:"lastRefresh"`
	FeaturedItemIDs []string  `json:"featuredItems"`
}

// DefaultShopState returns a shop that has never been rotated
func DefaultShopState() ShopState {
	return ShopState{FeaturedItemIDs: []string{}}
}

// Clone returns a deep copy of the shop state
func (s ShopState) Clone() ShopState {
	ids := make([]string, len(s.FeaturedItemIDs))
	copy(ids, s.FeaturedItemIDs)
	s.FeaturedItemIDs = ids
	return s
}
