package repository

import (
	"context"

	"github.com/ridloal/shopping-cart-widget/internal/platform/database"
	"github.com/ridloal/shopping-cart-widget/internal/platform/logger"
	"github.com/ridloal/shopping-cart-widget/internal/product/domain"
)

const listSeedsQuery = `SELECT id, name, price FROM products ORDER BY id ASC`

// LoadSeedsFromDB membaca tabel products sekali saat startup. Tabel tidak
// pernah ditulis oleh widget. Kolom price (NUMERIC) di-scan ke decimal.
func LoadSeedsFromDB(ctx context.Context, db database.Querier) ([]domain.ProductSeed, error) {
	rows, err := db.QueryContext(ctx, listSeedsQuery)
	if err != nil {
		logger.Error("LoadSeedsFromDB: query failed", err)
		return nil, err
	}
	defer rows.Close()

	seeds := []domain.ProductSeed{}
	for rows.Next() {
		var s domain.ProductSeed
		if err := rows.Scan(&s.ID, &s.Name, &s.Price); err != nil {
			logger.Error("LoadSeedsFromDB: scan failed", err)
			return nil, err
		}
		seeds = append(seeds, s)
	}
	if err := rows.Err(); err != nil {
		logger.Error("LoadSeedsFromDB: rows iteration error", err)
		return nil, err
	}
	return seeds, nil
}
