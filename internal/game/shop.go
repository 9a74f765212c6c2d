package game

import (
	"context"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/economy"
	"github.com/GEON1999/PomoFarm/internal/gacha"
)

// Sell converts inventory items into gold
func (g *Game) Sell(ctx context.Context, itemID string, quantity int) (*economy.SellResult, error) {
	var result *economy.SellResult
	err := g.apply(ctx, CmdLedgerSell, func(st *step) error {
		var err error
		result, err = g.economy.Sell(ctx, g.ledger(), g.farm.Inventory(), itemID, quantity)
		if err != nil {
			return err
		}
		st.emit(domain.EventTypeItemSold, domain.ItemSoldPayload{
			ItemID:     result.ItemID,
			Quantity:   result.Quantity,
			TotalValue: result.TotalValue,
			Timestamp:  st.now.Unix(),
		})
		st.changed = true
		return nil
	})
	return result, err
}

// Buy purchases shop items with gold
func (g *Game) Buy(ctx context.Context, itemID string, quantity int) (*economy.BuyResult, error) {
	var result *economy.BuyResult
	err := g.apply(ctx, CmdShopBuy, func(st *step) error {
		var err error
		result, err = g.economy.Buy(ctx, g.ledger(), g.farm, itemID, quantity, st.now)
		if err != nil {
			return err
		}
		st.emit(domain.EventTypeItemBought, domain.ItemBoughtPayload{
			ItemID:    result.ItemID,
			Quantity:  result.Quantity,
			TotalCost: result.TotalCost,
			Timestamp: st.now.Unix(),
		})
		st.changed = true
		return nil
	})
	return result, err
}

// Pull performs a gacha pull
func (g *Game) Pull(ctx context.Context, req gacha.Request) (*gacha.Result, error) {
	var result *gacha.Result
	err := g.apply(ctx, CmdGachaPull, func(st *step) error {
		var err error
		result, err = g.gacha.Pull(ctx, g.ledger(), g.farm, req, st.now)
		if err != nil {
			return err
		}
		st.emit(domain.EventTypeGachaPulled, domain.GachaPulledPayload{
			Pool:     req.Pool,
			PullType: req.PullType,
			Currency: result.Currency,
			Cost:     result.Cost,
			Items:    result.Items,
		})
		st.changed = true
		return nil
	})
	return result, err
}

// RefreshShop picks a new set of featured items
func (g *Game) RefreshShop(ctx context.Context) domain.ShopState {
	var shop domain.ShopState
	_ = g.apply(ctx, CmdShopRefresh, func(st *step) error {
		g.shop = domain.ShopState{
			LastRefresh:     st.now,
			FeaturedItemIDs: pickFeatured(g.catalog.ShopItems(), domain.FeaturedItemCount, g.rng),
		}
		shop = g.shop.Clone()
		st.changed = true
		return nil
	})
	return shop
}

// pickFeatured draws up to n distinct item ids uniformly at random
func pickFeatured(items []domain.ShopItem, n int, rng gacha.Source) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	if n > len(ids) {
		n = len(ids)
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids[:n]
}
