package bootstrap

import (
	"fmt"

	"github.com/GEON1999/PomoFarm/internal/catalog"
	"github.com/GEON1999/PomoFarm/internal/config"
	"github.com/GEON1999/PomoFarm/internal/logger"
)

// LoadCatalog reads the catalog file named by CATALOG_PATH, or the built-in one when unset
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	source := cfg.CatalogPath
	if source == "" {
		source = "embedded"
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(cfg.CatalogPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	logger.Info(LogMsgCatalogLoaded,
		"source", source,
		"crops", len(cat.Crops()),
		"animals", len(cat.Animals()),
		"shop_items", len(cat.ShopItems()))
	return cat, nil
}
