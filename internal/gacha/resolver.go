// Package gacha resolves paid randomized pulls over category-scoped item pools.
package gacha

import (
	"context"
	"fmt"
	"time"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/economy"
	"github.com/GEON1999/PomoFarm/internal/logger"
)

// Source is the random source used for rolls. *rand.Rand from math/rand/v2
// satisfies it; tests pass a seeded or scripted source.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Catalog provides the item pools
type Catalog interface {
	ItemsByCategory(category domain.Category) []domain.ShopItem
}

// Request describes one pull command
type Request struct {
	Pool     domain.GachaPool `json:"pool" validate:"required,oneof=plant animal"`
	PullType domain.PullType  `json:"pullType" validate:"required,oneof=single multi"`
	Currency domain.Currency  `json:"currency" validate:"required,oneof=gold diamond"`
}

// Result is the outcome of a successful pull
type Result struct {
	Items    []domain.ShopItem `json:"items"`
	Cost     int               `json:"cost"`
	Currency domain.Currency   `json:"currency"`
}

// Resolver performs gacha pulls
type Resolver struct {
	catalog Catalog
	rng     Source
}

// NewResolver creates a resolver drawing from rng
func NewResolver(catalog Catalog, rng Source) *Resolver {
	return &Resolver{catalog: catalog, rng: rng}
}

// Cost returns the price of a pull
func Cost(pullType domain.PullType, currency domain.Currency) (int, error) {
	multi := false
	switch pullType {
	case domain.PullSingle:
	case domain.PullMulti:
		multi = true
	default:
		return 0, fmt.Errorf(ErrMsgUnknownPullTypeFmt, domain.ErrUnknownPullType, pullType)
	}

	switch currency {
	case domain.CurrencyGold:
		if multi {
			return MultiGoldCost, nil
		}
		return SingleGoldCost, nil
	case domain.CurrencyDiamond:
		if multi {
			return MultiDiamondCost, nil
		}
		return SingleDiamondCost, nil
	default:
		return 0, fmt.Errorf(ErrMsgUnknownCurrencyFmt, domain.ErrUnknownCurrency, currency)
	}
}

// PullCount returns how many independent draws a pull type resolves
func PullCount(pullType domain.PullType) (int, error) {
	switch pullType {
	case domain.PullSingle:
		return domain.SinglePullCount, nil
	case domain.PullMulti:
		return domain.MultiPullCount, nil
	default:
		return 0, fmt.Errorf(ErrMsgUnknownPullTypeFmt, domain.ErrUnknownPullType, pullType)
	}
}

// PoolCategory maps a gacha pool to the shop category it draws from
func PoolCategory(pool domain.GachaPool) (domain.Category, error) {
	switch pool {
	case domain.PoolPlant:
		return domain.CategorySeed, nil
	case domain.PoolAnimal:
		return domain.CategoryAnimal, nil
	default:
		return "", fmt.Errorf(ErrMsgUnknownPoolFmt, domain.ErrUnknownPool, pool)
	}
}

// RollRarity maps a roll in [0, 100) to a rarity tier
func RollRarity(roll float64) domain.Rarity {
	switch {
	case roll > LegendaryThreshold:
		return domain.RarityLegendary
	case roll > EpicThreshold:
		return domain.RarityEpic
	case roll > RareThreshold:
		return domain.RarityRare
	case roll > UncommonThreshold:
		return domain.RarityUncommon
	default:
		return domain.RarityCommon
	}
}

// Pull debits the pull cost and resolves and grants every draw. Either the debit
// fails and nothing changes, or every draw is resolved and granted.
func (r *Resolver) Pull(ctx context.Context, ledger *economy.Ledger, grantor economy.Grantor, req Request, now time.Time) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgPullCalled, "pool", req.Pool, "pull_type", req.PullType, "currency", req.Currency)

	category, err := PoolCategory(req.Pool)
	if err != nil {
		return nil, err
	}
	count, err := PullCount(req.PullType)
	if err != nil {
		return nil, err
	}
	cost, err := Cost(req.PullType, req.Currency)
	if err != nil {
		return nil, err
	}
	pool := r.catalog.ItemsByCategory(category)
	if len(pool) == 0 {
		return nil, fmt.Errorf(ErrMsgEmptyPoolFmt, domain.ErrEmptyPool, req.Pool)
	}

	if !ledger.Debit(req.Currency, cost) {
		balance, _ := ledger.Balance(req.Currency)
		log.Info(LogMsgPullDeclined, "pool", req.Pool, "cost", cost, "currency", req.Currency, "balance", balance)
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, domain.ErrInsufficientFunds, req.PullType, cost, req.Currency, balance)
	}

	items := make([]domain.ShopItem, 0, count)
	for i := 0; i < count; i++ {
		item := r.draw(ctx, pool)
		grant(grantor, item, now)
		items = append(items, item)
	}

	log.Info(LogMsgPullResolved, "pool", req.Pool, "pull_type", req.PullType, "cost", cost, "currency", req.Currency, "items", len(items))
	return &Result{Items: items, Cost: cost, Currency: req.Currency}, nil
}

// draw resolves one independent pull over a non-empty pool
func (r *Resolver) draw(ctx context.Context, pool []domain.ShopItem) domain.ShopItem {
	rarity := RollRarity(r.rng.Float64() * RollScale)

	matching := make([]domain.ShopItem, 0, len(pool))
	for _, item := range pool {
		if item.Rarity == rarity {
			matching = append(matching, item)
		}
	}
	if len(matching) == 0 {
		logger.FromContext(ctx).Debug(LogMsgRarityMissed, "rarity", rarity)
		matching = pool
	}
	return matching[r.rng.IntN(len(matching))]
}

// grant hands a won item to the farm. Only seeds and animals are granted.
func grant(grantor economy.Grantor, item domain.ShopItem, now time.Time) {
	switch item.Category {
	case domain.CategorySeed:
		grantor.AddItems(item.ID, 1)
	case domain.CategoryAnimal:
		grantor.AcquireAnimal(item.ID, now)
	case domain.CategoryBooster, domain.CategoryDecoration:
	}
}
