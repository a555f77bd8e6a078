package service

import (
	"context"
	"fmt"

	"github.com/ridloal/shopping-cart-widget/internal/platform/config"
	"github.com/ridloal/shopping-cart-widget/internal/platform/database"
	"github.com/ridloal/shopping-cart-widget/internal/platform/logger"
	"github.com/ridloal/shopping-cart-widget/internal/product/domain"
	"github.com/ridloal/shopping-cart-widget/internal/product/repository"
)

type ProductService interface {
	ListProducts() []domain.Product
	GetProductDetails(productID int) (domain.Product, error)
}

type productServiceImpl struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productServiceImpl{repo: repo}
}

func (s *productServiceImpl) ListProducts() []domain.Product {
	return s.repo.ListProducts()
}

func (s *productServiceImpl) GetProductDetails(productID int) (domain.Product, error) {
	return s.repo.FindByID(productID)
}

// Sumber seed katalog, urutan prioritas: database, file, bawaan.
const (
	SourceDatabase = "database"
	SourceFile     = "file"
	SourceDefault  = "default"
)

// LoadCatalog memilih sumber seed dari konfigurasi lalu membangun katalog
// in-memory. Seed yang tidak valid menggagalkan startup.
func LoadCatalog(ctx context.Context, cfg config.CatalogConfig) (repository.ProductRepository, string, error) {
	seeds, source, err := loadSeeds(ctx, cfg)
	if err != nil {
		return nil, source, err
	}
	repo, err := repository.NewMemoryProductRepository(seeds)
	if err != nil {
		return nil, source, fmt.Errorf("invalid catalog from %s source: %w", source, err)
	}
	logger.Info("Catalog loaded from %s source with %d products", source, len(seeds))
	return repo, source, nil
}

func loadSeeds(ctx context.Context, cfg config.CatalogConfig) ([]domain.ProductSeed, string, error) {
	switch {
	case cfg.DSN != "":
		db, err := database.Connect(ctx, cfg.DSN)
		if err != nil {
			return nil, SourceDatabase, err
		}
		defer db.Close()
		seeds, err := repository.LoadSeedsFromDB(ctx, database.NewQuerier(db))
		return seeds, SourceDatabase, err
	case cfg.File != "":
		seeds, err := repository.LoadSeedFile(cfg.File)
		return seeds, SourceFile, err
	default:
		return domain.DefaultSeeds(), SourceDefault, nil
	}
}
