package repository

import (
	"errors"
	"fmt"

	"github.com/ridloal/shopping-cart-widget/internal/product/domain"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrDuplicateProductID = errors.New("duplicate product id")
)

type ProductRepository interface {
	FindByID(id int) (domain.Product, error)
	ListProducts() []domain.Product
}

// memoryProductRepository menyimpan katalog statis di memori, urutan seed
// dipertahankan untuk tampilan.
type memoryProductRepository struct {
	products []domain.Product
	byID     map[int]int // id -> index di products
}

func NewMemoryProductRepository(seeds []domain.ProductSeed) (ProductRepository, error) {
	r := &memoryProductRepository{
		products: make([]domain.Product, 0, len(seeds)),
		byID:     make(map[int]int, len(seeds)),
	}
	for _, seed := range seeds {
		if _, exists := r.byID[seed.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProductID, seed.ID)
		}
		p, err := seed.ToProduct()
		if err != nil {
			return nil, err
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}
	return r, nil
}

func (r *memoryProductRepository) FindByID(id int) (domain.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	return r.products[idx], nil
}

func (r *memoryProductRepository) ListProducts() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}
