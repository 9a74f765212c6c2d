package catalog

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/GEON1999/PomoFarm/internal/domain"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

type fileFormat struct {
	Version string        `yaml:"version"`
	Crops   []cropEntry   `yaml:"crops"`
	Animals []animalEntry `yaml:"animals"`
	Shop    []shopEntry   `yaml:"shop"`
}

type cropEntry struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	SeedID        string `yaml:"seed_id"`
	GrowthSeconds int    `yaml:"growth_seconds"`
	SellPrice     int    `yaml:"sell_price"`
	Emoji         string `yaml:"emoji"`
}

type animalEntry struct {
	Type              string `yaml:"type"`
	Name              string `yaml:"name"`
	ProductID         string `yaml:"product_id"`
	ProductName       string `yaml:"product_name"`
	ProductionSeconds int    `yaml:"production_seconds"`
	ProductSellPrice  int    `yaml:"product_sell_price"`
	Emoji             string `yaml:"emoji"`
}

type shopEntry struct {
	ID       string                `yaml:"id"`
	Name     string                `yaml:"name"`
	Category string                `yaml:"category"`
	Rarity   string                `yaml:"rarity"`
	Price    int                   `yaml:"price"`
	Emoji    string                `yaml:"emoji"`
	Effect   *domain.BoosterEffect `yaml:"effect"`
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Load reads a catalog file, falling back to the embedded catalog when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		slog.Debug(LogMsgUsingEmbeddedCatalog)
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToReadCatalog, path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgCatalogLoaded, "path", path, "crops", len(c.crops), "animals", len(c.animals), "shop_items", len(c.shopItems))
	return c, nil
}

// Parse decodes and validates catalog YAML
func Parse(data []byte) (*Catalog, error) {
	var raw fileFormat
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseCatalog, err)
	}
	if raw.Version != CatalogVersion {
		return nil, fmt.Errorf("%s: unsupported version %q (expected %s)", ErrContextInvalidCatalog, raw.Version, CatalogVersion)
	}

	c := newCatalog()

	for _, e := range raw.Crops {
		if e.ID == "" || e.SeedID == "" || e.GrowthSeconds <= 0 || e.SellPrice < 0 {
			return nil, fmt.Errorf("%s: crop %q is incomplete", ErrContextInvalidCatalog, e.ID)
		}
		if _, dup := c.crops[e.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate crop %q", ErrContextInvalidCatalog, e.ID)
		}
		crop := domain.CropDefinition{
			ID:            e.ID,
			Name:          orDisplayName(e.Name, e.ID),
			SeedID:        e.SeedID,
			GrowthSeconds: e.GrowthSeconds,
			SellPrice:     e.SellPrice,
			Emoji:         e.Emoji,
		}
		c.crops[crop.ID] = crop
		c.cropsBySeed[crop.SeedID] = crop
		c.cropOrder = append(c.cropOrder, crop.ID)
	}

	for _, e := range raw.Animals {
		if e.Type == "" || e.ProductID == "" || e.ProductionSeconds <= 0 || e.ProductSellPrice < 0 {
			return nil, fmt.Errorf("%s: animal %q is incomplete", ErrContextInvalidCatalog, e.Type)
		}
		if _, dup := c.animals[e.Type]; dup {
			return nil, fmt.Errorf("%s: duplicate animal %q", ErrContextInvalidCatalog, e.Type)
		}
		animal := domain.AnimalDefinition{
			Type:              e.Type,
			Name:              orDisplayName(e.Name, e.Type),
			ProductID:         e.ProductID,
			ProductName:       orDisplayName(e.ProductName, e.ProductID),
			ProductionSeconds: e.ProductionSeconds,
			ProductSellPrice:  e.ProductSellPrice,
			Emoji:             e.Emoji,
		}
		c.animals[animal.Type] = animal
		c.animalsByProduct[animal.ProductID] = animal
		c.animalOrder = append(c.animalOrder, animal.Type)
	}

	for _, e := range raw.Shop {
		category, ok := domain.ParseCategory(e.Category)
		if !ok {
			return nil, fmt.Errorf("%s: shop item %q has unknown category %q", ErrContextInvalidCatalog, e.ID, e.Category)
		}
		rarity, ok := domain.ParseRarity(e.Rarity)
		if !ok {
			return nil, fmt.Errorf("%s: shop item %q has unknown rarity %q", ErrContextInvalidCatalog, e.ID, e.Rarity)
		}
		if e.ID == "" || e.Price < 0 {
			return nil, fmt.Errorf("%s: shop item %q is incomplete", ErrContextInvalidCatalog, e.ID)
		}
		if _, dup := c.shopIndex[e.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate shop item %q", ErrContextInvalidCatalog, e.ID)
		}
		if category == domain.CategoryAnimal {
			if _, known := c.animals[e.ID]; !known {
				return nil, fmt.Errorf("%s: shop animal %q has no animal definition", ErrContextInvalidCatalog, e.ID)
			}
		}
		if category == domain.CategorySeed {
			if _, known := c.cropsBySeed[e.ID]; !known {
				return nil, fmt.Errorf("%s: shop seed %q grows no crop", ErrContextInvalidCatalog, e.ID)
			}
		}
		c.shopIndex[e.ID] = len(c.shopItems)
		c.shopItems = append(c.shopItems, domain.ShopItem{
			ID:       e.ID,
			Name:     orDisplayName(e.Name, e.ID),
			Category: category,
			Rarity:   rarity,
			Price:    e.Price,
			Emoji:    e.Emoji,
			Effect:   e.Effect,
		})
	}

	return c, nil
}

var titleCaser = cases.Title(language.English)

// DisplayName turns an identifier such as "tomato_seed" into "Tomato Seed"
func DisplayName(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

func orDisplayName(name, id string) string {
	if name != "" {
		return name
	}
	return DisplayName(id)
}
