package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laptopMart/domain"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

// catalogRow is the join projection of product_variations with products.
type catalogRow struct {
	VariationID  uint64
	ProductID    uint64
	ProductName  string
	SKU          string
	Slug         string
	Processor    string
	RAM          string
	Storage      string
	GraphicsCard string
	Price        float64
	TS           time.Time
}

const catalogColumns = `product_variations.variation_id,
	product_variations.product_id,
	products.product_name,
	product_variations.sku,
	products.slug,
	product_variations.processor,
	product_variations.ram AS ram,
	product_variations.storage,
	product_variations.graphics_card,
	product_variations.price,
	GREATEST(product_variations.updated_at, product_variations.created_at) AS ts`

func (r *CatalogRepository) FindVariation(ctx context.Context, variationID uint64) (domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.CatalogItem{}, fmt.Errorf("context error: %w", err)
	}

	var row catalogRow
	err := r.DB.WithContext(ctx).
		Model(&domain.ProductVariation{}).
		Select(catalogColumns).
		Joins("JOIN products ON products.product_id = product_variations.product_id").
		Where("product_variations.is_available = true AND product_variations.variation_id = ?", variationID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CatalogItem{}, domain.ErrVariationNotFound
		}
		return domain.CatalogItem{}, fmt.Errorf("failed to find variation: %w", err)
	}

	return row.toItem(), nil
}

func (r *CatalogRepository) FindFresh(ctx context.Context, windowDays, limit int, exclude []uint64) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	q := r.DB.WithContext(ctx).
		Model(&domain.ProductVariation{}).
		Select(catalogColumns).
		Joins("JOIN products ON products.product_id = product_variations.product_id").
		Where("product_variations.is_available = true").
		Where("GREATEST(product_variations.updated_at, product_variations.created_at) >= ?",
			time.Now().AddDate(0, 0, -windowDays)).
		Order("ts DESC").
		Limit(limit)

	if len(exclude) > 0 {
		q = q.Where("product_variations.variation_id NOT IN ?", exclude)
	}

	var rows []catalogRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find fresh variations: %w", err)
	}

	return toItems(rows), nil
}

func (r *CatalogRepository) FindAllAvailable(ctx context.Context) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []catalogRow
	err := r.DB.WithContext(ctx).
		Model(&domain.ProductVariation{}).
		Select(catalogColumns).
		Joins("JOIN products ON products.product_id = product_variations.product_id").
		Where("product_variations.is_available = true").
		Order("product_variations.variation_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find available variations: %w", err)
	}

	return toItems(rows), nil
}

func (row catalogRow) toItem() domain.CatalogItem {
	return domain.CatalogItem{
		VariationID:  row.VariationID,
		ProductID:    row.ProductID,
		ProductName:  row.ProductName,
		SKU:          row.SKU,
		Slug:         row.Slug,
		Processor:    row.Processor,
		RAM:          row.RAM,
		Storage:      row.Storage,
		GraphicsCard: row.GraphicsCard,
		Price:        row.Price,
		LastModified: row.TS,
	}
}

func toItems(rows []catalogRow) []domain.CatalogItem {
	items := make([]domain.CatalogItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toItem())
	}
	return items
}
