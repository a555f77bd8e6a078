package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/shopping-cart-widget/internal/platform/money"
	"github.com/ridloal/shopping-cart-widget/internal/product/domain"
)

func TestMemoryProductRepository_FindByID(t *testing.T) {
	repo, err := NewMemoryProductRepository(domain.DefaultSeeds())
	require.NoError(t, err)

	t.Run("Known id", func(t *testing.T) {
		p, err := repo.FindByID(2)
		require.NoError(t, err)
		assert.Equal(t, "Jeans Bleu", p.Name)
		assert.Equal(t, money.FromMinor(2500), p.Price)
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := repo.FindByID(99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestMemoryProductRepository_ListProductsKeepsSeedOrder(t *testing.T) {
	seeds := []domain.ProductSeed{
		{ID: 3, Name: "C", Price: decimal.NewFromInt(3)},
		{ID: 1, Name: "A", Price: decimal.NewFromInt(1)},
	}
	repo, err := NewMemoryProductRepository(seeds)
	require.NoError(t, err)

	products := repo.ListProducts()
	require.Len(t, products, 2)
	assert.Equal(t, 3, products[0].ID)
	assert.Equal(t, 1, products[1].ID)

	// Mengubah slice hasil tidak boleh mengubah katalog
	products[0].Name = "changed"
	p, _ := repo.FindByID(3)
	assert.Equal(t, "C", p.Name)
}

func TestNewMemoryProductRepository_InvalidSeeds(t *testing.T) {
	t.Run("Duplicate id", func(t *testing.T) {
		_, err := NewMemoryProductRepository([]domain.ProductSeed{
			{ID: 1, Name: "A", Price: decimal.NewFromInt(1)},
			{ID: 1, Name: "B", Price: decimal.NewFromInt(2)},
		})
		assert.ErrorIs(t, err, ErrDuplicateProductID)
	})

	t.Run("Negative price", func(t *testing.T) {
		_, err := NewMemoryProductRepository([]domain.ProductSeed{
			{ID: 1, Name: "A", Price: decimal.NewFromInt(-5)},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidProductSeed)
		assert.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("Empty name", func(t *testing.T) {
		_, err := NewMemoryProductRepository([]domain.ProductSeed{
			{ID: 1, Price: decimal.NewFromInt(5)},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidProductSeed)
	})
}
