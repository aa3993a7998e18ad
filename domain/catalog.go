package domain

import (
	"time"
)

// CREATE TABLE public.product_variations (
//     variation_id    BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id      BIGINT NOT NULL REFERENCES products(product_id),
//     sku             VARCHAR(100) UNIQUE,
//     processor       VARCHAR(100),
//     ram             VARCHAR(50),
//     storage         VARCHAR(50),
//     graphics_card   VARCHAR(100),
//     screen_size     VARCHAR(50),
//     color           VARCHAR(50),
//     price           NUMERIC(10,2) NOT NULL,
//     stock_quantity  INTEGER DEFAULT 0,
//     is_available    BOOLEAN DEFAULT true,
//     created_at      TIMESTAMPTZ DEFAULT NOW(),
//     updated_at      TIMESTAMPTZ DEFAULT NOW()
// );

type ProductVariation struct {
	VariationID   uint64    `gorm:"column:variation_id;primaryKey;autoIncrement" json:"variation_id"`
	ProductID     uint64    `gorm:"column:product_id;not null" json:"product_id"`
	SKU           string    `gorm:"column:sku;type:varchar(100)" json:"sku"`
	Processor     string    `gorm:"column:processor;type:varchar(100)" json:"processor"`
	RAM           string    `gorm:"column:ram;type:varchar(50)" json:"ram"`
	Storage       string    `gorm:"column:storage;type:varchar(50)" json:"storage"`
	GraphicsCard  string    `gorm:"column:graphics_card;type:varchar(100)" json:"graphics_card"`
	ScreenSize    string    `gorm:"column:screen_size;type:varchar(50)" json:"screen_size"`
	Color         string    `gorm:"column:color;type:varchar(50)" json:"color"`
	Price         float64   `gorm:"column:price;type:numeric" json:"price"`
	StockQuantity int       `gorm:"column:stock_quantity;default:0" json:"stock_quantity"`
	IsAvailable   bool      `gorm:"column:is_available;default:true" json:"is_available"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ProductVariation) TableName() string {
	return "product_variations"
}

type Product struct {
	ProductID   uint64 `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	ProductName string `gorm:"column:product_name;type:text" json:"product_name"`
	Slug        string `gorm:"column:slug;type:text" json:"slug"`
	BrandID     uint64 `gorm:"column:brand_id" json:"brand_id"`
}

func (Product) TableName() string {
	return "products"
}

// CatalogItem is a read-only snapshot of one variation joined with its
// product, the shape every scoring component consumes. LastModified is the
// greater of created_at/updated_at; zero means the store did not report one.
type CatalogItem struct {
	VariationID  uint64    `json:"variation_id"`
	ProductID    uint64    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	SKU          string    `json:"sku"`
	Slug         string    `json:"slug"`
	Processor    string    `json:"processor"`
	RAM          string    `json:"ram"`
	Storage      string    `json:"storage"`
	GraphicsCard string    `json:"graphics_card"`
	Price        float64   `json:"price"`
	LastModified time.Time `json:"last_modified"`
}
