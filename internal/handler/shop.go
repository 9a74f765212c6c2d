package handler

import (
	"net/http"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/gacha"
	"github.com/GEON1999/PomoFarm/internal/logger"
)

// SellRequest converts inventory items into gold
type SellRequest struct {
	ItemID   string `json:"itemId" validate:"required,catalogid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// BuyRequest purchases shop items with gold
type BuyRequest struct {
	ItemID   string `json:"itemId" validate:"required,catalogid"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=99"`
}

// ShopResponse lists the catalog together with the current rotation
type ShopResponse struct {
	Items []domain.ShopItem `json:"items"`
	Shop  domain.ShopState  `json:"shop"`
}

// HandleGetShop returns the purchasable catalog and featured items
// @Summary Get shop
// @Tags shop
// @Produce json
// @Success 200 {object} ShopResponse
// @Router /api/v1/shop [get]
// @Security ApiKeyAuth
func (h *GameHandler) HandleGetShop(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ShopResponse{
		Items: h.catalog.ShopItems(),
		Shop:  h.game.Snapshot().Shop,
	})
}

// HandleSell sells inventory items
// @Summary Sell items
// @Description Sells held items for gold. Inventory and gold change together or not at all.
// @Tags shop
// @Accept json
// @Produce json
// @Param request body SellRequest true "Item and quantity"
// @Success 200 {object} economy.SellResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/shop/sell [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req SellRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
		return
	}

	logger.FromContext(r.Context()).Info("Sell item request", "item_id", req.ItemID, "quantity", req.Quantity)

	result, err := h.game.Sell(r.Context(), req.ItemID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Sell item", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleBuy buys shop items
// @Summary Buy items
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyRequest true "Item and quantity"
// @Success 200 {object} economy.BuyResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/shop/buy [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	var req BuyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
		return
	}

	logger.FromContext(r.Context()).Info("Buy item request", "item_id", req.ItemID, "quantity", req.Quantity)

	result, err := h.game.Buy(r.Context(), req.ItemID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Buy item", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleRefreshShop rolls a new featured rotation
// @Summary Refresh featured items
// @Tags shop
// @Produce json
// @Success 200 {object} domain.ShopState
// @Router /api/v1/shop/refresh [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleRefreshShop(w http.ResponseWriter, r *http.Request) {
	shop := h.game.RefreshShop(r.Context())
	respondJSON(w, http.StatusOK, shop)
}

// HandlePull performs a gacha pull
// @Summary Gacha pull
// @Description Single pulls return one item and multi pulls ten. Nothing is granted when the debit fails.
// @Tags gacha
// @Accept json
// @Produce json
// @Param request body gacha.Request true "Pool, pull type and currency"
// @Success 200 {object} gacha.Result
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gacha/pull [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandlePull(w http.ResponseWriter, r *http.Request) {
	var req gacha.Request
	if err := DecodeAndValidateRequest(r, w, &req, "Gacha pull"); err != nil {
		return
	}

	logger.FromContext(r.Context()).Info("Gacha pull request",
		"pool", req.Pool, "pull_type", req.PullType, "currency", req.Currency)

	result, err := h.game.Pull(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, "Gacha pull", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
