package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/economy"
	"github.com/GEON1999/PomoFarm/internal/gacha"
	"github.com/GEON1999/PomoFarm/internal/timer"
)

// MockGameService is a testify mock of handler.GameService
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) Snapshot() domain.Snapshot {
	args := m.Called()
	return args.Get(0).(domain.Snapshot)
}

func (m *MockGameService) Restore(ctx context.Context, snapshot *domain.Snapshot) {
	m.Called(ctx, snapshot)
}

func (m *MockGameService) Autosave(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockGameService) StartTimer(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockGameService) PauseTimer(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockGameService) ResetTimer(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockGameService) SetTimerMode(ctx context.Context, mode domain.TimerMode) error {
	return m.Called(ctx, mode).Error(0)
}

func (m *MockGameService) UpdateDurations(ctx context.Context, u timer.DurationUpdate) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockGameService) ResetAccumulated(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockGameService) Plant(ctx context.Context, plotID, seedID string) bool {
	return m.Called(ctx, plotID, seedID).Bool(0)
}

func (m *MockGameService) Harvest(ctx context.Context, plotID string) bool {
	return m.Called(ctx, plotID).Bool(0)
}

func (m *MockGameService) CollectProduct(ctx context.Context, animalID string) bool {
	return m.Called(ctx, animalID).Bool(0)
}

func (m *MockGameService) Feed(ctx context.Context, animalID string) bool {
	return m.Called(ctx, animalID).Bool(0)
}

func (m *MockGameService) UpdateFarmState(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockGameService) Sell(ctx context.Context, itemID string, quantity int) (*economy.SellResult, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SellResult), args.Error(1)
}

func (m *MockGameService) Buy(ctx context.Context, itemID string, quantity int) (*economy.BuyResult, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.BuyResult), args.Error(1)
}

func (m *MockGameService) Pull(ctx context.Context, req gacha.Request) (*gacha.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gacha.Result), args.Error(1)
}

func (m *MockGameService) RefreshShop(ctx context.Context) domain.ShopState {
	return m.Called(ctx).Get(0).(domain.ShopState)
}

func (m *MockGameService) UpdateSettings(ctx context.Context, u domain.SettingsUpdate) domain.Settings {
	return m.Called(ctx, u).Get(0).(domain.Settings)
}

func (m *MockGameService) ResetAll(ctx context.Context) {
	m.Called(ctx)
}

type staticCatalog []domain.ShopItem

func (c staticCatalog) ShopItems() []domain.ShopItem { return c }

// newRequest builds a request with optional chi URL params given as name/value pairs
func newRequest(method, target, body string, params ...string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if len(params) == 0 {
		return req
	}
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rctx.URLParams.Add(params[i], params[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
