package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ridloal/shopping-cart-widget/internal/product/domain"
)

// LoadSeedFile reads a JSON array of {"id", "name", "price"} entries.
func LoadSeedFile(path string) ([]domain.ProductSeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	var seeds []domain.ProductSeed
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seeds); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}
	return seeds, nil
}
