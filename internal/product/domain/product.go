package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ridloal/shopping-cart-widget/internal/platform/money"
)

var ErrInvalidProductSeed = errors.New("invalid product seed")

// Product adalah entri katalog yang tidak pernah berubah selama sesi.
type Product struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	Price money.Amount `json:"price_cents"`
}

// ProductSeed is one catalog entry as it appears in configuration.
type ProductSeed struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (s ProductSeed) ToProduct() (Product, error) {
	if s.Name == "" {
		return Product{}, fmt.Errorf("%w: product %d has empty name", ErrInvalidProductSeed, s.ID)
	}
	price, err := money.FromDecimal(s.Price)
	if err != nil {
		return Product{}, fmt.Errorf("%w: product %d price: %w", ErrInvalidProductSeed, s.ID, err)
	}
	return Product{ID: s.ID, Name: s.Name, Price: price}, nil
}

// DefaultSeeds adalah katalog bawaan widget.
func DefaultSeeds() []ProductSeed {
	return []ProductSeed{
		{ID: 1, Name: "T-shirt Rouge", Price: decimal.NewFromInt(15)},
		{ID: 2, Name: "Jeans Bleu", Price: decimal.NewFromInt(25)},
		{ID: 3, Name: "Basket Noir", Price: decimal.NewFromInt(45)},
		{ID: 4, Name: "Sweat à Capuche", Price: decimal.NewFromInt(35)},
		{ID: 5, Name: "Montre en Cuir", Price: decimal.NewFromInt(60)},
		{ID: 6, Name: "Sac à Dos", Price: decimal.NewFromInt(50)},
		{ID: 7, Name: "Chapeau de Paille", Price: decimal.NewFromInt(20)},
	}
}
