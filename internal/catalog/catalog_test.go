package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GEON1999/PomoFarm/internal/domain"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tomato, ok := c.CropBySeed("tomato_seed")
	require.True(t, ok)
	assert.Equal(t, "tomato", tomato.ID)
	assert.Equal(t, "Tomato", tomato.Name)
	assert.Equal(t, 3000, tomato.GrowthSeconds)
	assert.Equal(t, 25, tomato.SellPrice)

	chicken, ok := c.AnimalByProduct("egg")
	require.True(t, ok)
	assert.Equal(t, "chicken", chicken.Type)
	assert.Equal(t, 7200, chicken.ProductionSeconds)
	assert.Equal(t, 15, chicken.ProductSellPrice)

	booster, ok := c.ShopItem("growth_booster")
	require.True(t, ok)
	assert.Equal(t, domain.CategoryBooster, booster.Category)
	assert.Equal(t, domain.RarityRare, booster.Rarity)
	assert.Equal(t, "Growth Booster", booster.Name)
	require.NotNil(t, booster.Effect)
	assert.Equal(t, 2.0, booster.Effect.GrowthSpeedMultiplier)

	assert.Len(t, c.ItemsByCategory(domain.CategorySeed), 3)
	assert.Len(t, c.ItemsByCategory(domain.CategoryAnimal), 2)
	assert.Empty(t, c.ItemsByCategory(domain.CategoryDecoration))
	assert.Len(t, c.Crops(), 3)
	assert.Len(t, c.Animals(), 2)
}

func TestShopItems_ReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	items := c.ShopItems()
	items[0].Price = 99999

	first, _ := c.ShopItem(items[0].ID)
	assert.NotEqual(t, 99999, first.Price)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Tomato Seed", DisplayName("tomato_seed"))
	assert.Equal(t, "Egg", DisplayName("egg"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "version: [",
			wantErr: ErrContextFailedToParseCatalog,
		},
		{
			name:    "wrong version",
			yaml:    "version: \"9.9\"\n",
			wantErr: "unsupported version",
		},
		{
			name: "unknown category",
			yaml: `version: "1.0"
shop:
  - id: gnome
    category: garden
    rarity: common
    price: 5
`,
			wantErr: "unknown category",
		},
		{
			name: "seed without crop",
			yaml: `version: "1.0"
shop:
  - id: mystery_seed
    category: seed
    rarity: common
    price: 5
`,
			wantErr: "grows no crop",
		},
		{
			name: "crop with zero growth time",
			yaml: `version: "1.0"
crops:
  - id: weed
    seed_id: weed_seed
    growth_seconds: 0
    sell_price: 1
`,
			wantErr: "incomplete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded catalog", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		_, ok := c.Crop("pumpkin")
		assert.True(t, ok)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		content := `version: "1.0"
crops:
  - id: beet
    name: Golden Beet
    seed_id: beet_seed
    growth_seconds: 60
    sell_price: 3
shop:
  - id: beet_seed
    category: seed
    rarity: legendary
    price: 1
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		c, err := Load(path)
		require.NoError(t, err)
		beet, ok := c.Crop("beet")
		require.True(t, ok)
		assert.Equal(t, "Golden Beet", beet.Name)
		seed, ok := c.ShopItem("beet_seed")
		require.True(t, ok)
		assert.Equal(t, domain.RarityLegendary, seed.Rarity)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextFailedToReadCatalog)
	})
}
