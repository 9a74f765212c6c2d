package handler

import (
	"context"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/economy"
	"github.com/GEON1999/PomoFarm/internal/gacha"
	"github.com/GEON1999/PomoFarm/internal/timer"
)

// GameService is the command surface the HTTP layer drives
type GameService interface {
	Snapshot() domain.Snapshot
	Restore(ctx context.Context, snapshot *domain.Snapshot)
	Autosave(ctx context.Context)

	StartTimer(ctx context.Context) bool
	PauseTimer(ctx context.Context) bool
	ResetTimer(ctx context.Context)
	SetTimerMode(ctx context.Context, mode domain.TimerMode) error
	UpdateDurations(ctx context.Context, u timer.DurationUpdate) error
	ResetAccumulated(ctx context.Context)

	Plant(ctx context.Context, plotID, seedID string) bool
	Harvest(ctx context.Context, plotID string) bool
	CollectProduct(ctx context.Context, animalID string) bool
	Feed(ctx context.Context, animalID string) bool
	UpdateFarmState(ctx context.Context)

	Sell(ctx context.Context, itemID string, quantity int) (*economy.SellResult, error)
	Buy(ctx context.Context, itemID string, quantity int) (*economy.BuyResult, error)
	Pull(ctx context.Context, req gacha.Request) (*gacha.Result, error)
	RefreshShop(ctx context.Context) domain.ShopState

	UpdateSettings(ctx context.Context, u domain.SettingsUpdate) domain.Settings
	ResetAll(ctx context.Context)
}

// ShopItemLister exposes the purchasable catalog
type ShopItemLister interface {
	ShopItems() []domain.ShopItem
}

// GameHandler handles all game command endpoints
type GameHandler struct {
	game    GameService
	catalog ShopItemLister
}

// NewGameHandler creates a new game handler
func NewGameHandler(game GameService, catalog ShopItemLister) *GameHandler {
	return &GameHandler{
		game:    game,
		catalog: catalog,
	}
}

// ActionResponse reports whether a validated command changed the game.
// Declined commands are not errors: the state is simply left untouched.
type ActionResponse struct {
	Applied bool   `json:"applied"`
	Message string `json:"message,omitempty"`
}

func actionResponse(applied bool, declined string) ActionResponse {
	if applied {
		return ActionResponse{Applied: true}
	}
	return ActionResponse{Applied: false, Message: declined}
}
