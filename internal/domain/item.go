package domain

import "strings"

// Category is the closed set of shop item kinds
type Category string

const (
	CategorySeed       Category = "seed"
	CategoryAnimal     Category = "animal"
	CategoryBooster    Category = "booster"
	CategoryDecoration Category = "decoration"
)

// Rarity tiers, from most to least common
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// ParseCategory converts a loosely-cased category name
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategorySeed, CategoryAnimal, CategoryBooster, CategoryDecoration:
		return c, true
	default:
		return "", false
	}
}

// ParseRarity converts a loosely-cased rarity name
func ParseRarity(s string) (Rarity, bool) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return r, true
	default:
		return "", false
	}
}

// BoosterEffect describes what a booster does once used
type BoosterEffect struct {
	GrowthSpeedMultiplier float64 `json:"growthSpeed,omitempty" yaml:"growth_speed,omitempty"`
	LuckBoostPercent      int     `json:"luckBoost,omitempty" yaml:"luck_boost,omitempty"`
	DurationSeconds       int     `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// ShopItem is immutable catalog data for something the shop sells
type ShopItem struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category Category       `json:"category"`
	Rarity   Rarity         `json:"rarity"`
	Price    int            `json:"price"`
	Emoji    string         `json:"emoji,omitempty"`
	Effect   *BoosterEffect `json:"effect,omitempty"`
}

// CropDefinition describes a plantable crop
type CropDefinition struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SeedID        string `json:"seedId"`
	GrowthSeconds int    `json:"growthTime"`
	SellPrice     int    `json:"sellPrice"`
	Emoji         string `json:"emoji,omitempty"`
}

// AnimalDefinition describes an animal type and the product it yields
type AnimalDefinition struct {
	Type              string `json:"type"`
	Name              string `json:"name"`
	ProductID         string `json:"productId"`
	ProductName       string `json:"productName"`
	ProductionSeconds int    `json:"productionTime"`
	ProductSellPrice  int    `json:"productSellPrice"`
	Emoji             string `json:"emoji,omitempty"`
}
