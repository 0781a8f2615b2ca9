package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Enumerations
// ═══════════════════════════════════════════════════════════

// Platform is the console a game runs on.
type Platform string

const (
	PlatformPS4        Platform = "PS4"
	PlatformPS5        Platform = "PS5"
	PlatformXboxOne    Platform = "Xbox One"
	PlatformXboxSeries Platform = "Xbox Series X/S"
)

var Platforms = []Platform{PlatformPS4, PlatformPS5, PlatformXboxOne, PlatformXboxSeries}

func (p Platform) IsValid() bool {
	for _, v := range Platforms {
		if p == v {
			return true
		}
	}
	return false
}

// Category is the game genre shown in the storefront filters.
type Category string

const (
	CategoryAction    Category = "Action"
	CategoryAdventure Category = "Adventure"
	CategoryRPG       Category = "RPG"
	CategorySports    Category = "Sports"
	CategoryRacing    Category = "Racing"
	CategoryShooter   Category = "Shooter"
	CategoryStrategy  Category = "Strategy"
	CategoryFighting  Category = "Fighting"
)

var Categories = []Category{
	CategoryAction, CategoryAdventure, CategoryRPG, CategorySports,
	CategoryRacing, CategoryShooter, CategoryStrategy, CategoryFighting,
}

func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// StringList is a JSONB-backed ordered list of strings (image URLs, feature bullets).
type StringList []string

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string     `json:"title" gorm:"not null;index"`
	Description   string     `json:"description" gorm:"not null"`
	Price         float64    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	OriginalPrice *float64   `json:"originalPrice,omitempty" gorm:"type:numeric(12,2)"`
	Platform      Platform   `json:"platform" gorm:"type:varchar(50);not null;index"`
	Category      Category   `json:"category" gorm:"type:varchar(50);not null;index"`
	Images        StringList `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Features      StringList `json:"features" gorm:"type:jsonb;not null;default:'[]'"`
	Rating        float64    `json:"rating" gorm:"type:numeric(3,1);default:0;check:rating >= 0 AND rating <= 5"`
	ReviewCount   int        `json:"reviewCount" gorm:"default:0;check:review_count >= 0"`
	InStock       bool       `json:"inStock" gorm:"default:true"`
	StockQuantity int        `json:"stockQuantity" gorm:"default:0;check:stock_quantity >= 0"`
	ReleaseDate   time.Time  `json:"releaseDate"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"autoCreateTime;index:idx_products_created_at,sort:desc"`
	UpdatedAt     time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// AfterFind hook - normalize store timestamps to UTC
func (p *Product) AfterFind(tx *gorm.DB) error {
	p.ReleaseDate = p.ReleaseDate.UTC()
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// HasDiscount reports whether the product carries a meaningful strike-through price.
func (p *Product) HasDiscount() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent returns the rounded discount percentage shown on product
// cards, or 0 when there is no original price above the current one.
func (p *Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Title         string   `json:"title" binding:"required" example:"Speed Racing X"`
	Description   string   `json:"description" binding:"required" example:"High-octane arcade racer"`
	Price         float64  `json:"price" binding:"required,min=0" example:"299.90"`
	OriginalPrice *float64 `json:"originalPrice" binding:"omitempty,min=0" example:"349.90"`
	Platform      Platform `json:"platform" binding:"required" example:"PS5"`
	Category      Category `json:"category" binding:"required" example:"Racing"`
	Images        []string `json:"images"`
	Features      []string `json:"features"`
	Rating        float64  `json:"rating" binding:"min=0,max=5" example:"4.8"`
	ReviewCount   int      `json:"reviewCount" binding:"min=0" example:"127"`
	InStock       bool     `json:"inStock" example:"true"`
	StockQuantity int      `json:"stockQuantity" binding:"min=0" example:"42"`
	ReleaseDate   string   `json:"releaseDate" example:"2025-03-14"`
}

type UpdateProductRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price" binding:"omitempty,min=0"`
	OriginalPrice *float64  `json:"originalPrice" binding:"omitempty,min=0"`
	Platform      *Platform `json:"platform"`
	Category      *Category `json:"category"`
	Images        *[]string `json:"images"`
	Features      *[]string `json:"features"`
	Rating        *float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewCount   *int      `json:"reviewCount" binding:"omitempty,min=0"`
	InStock       *bool     `json:"inStock"`
	StockQuantity *int      `json:"stockQuantity" binding:"omitempty,min=0"`
	ReleaseDate   *string   `json:"releaseDate"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// StorefrontHomeResponse bundles the three derived home-page views.
type StorefrontHomeResponse struct {
	Featured       []Product `json:"featured"`
	NewArrivals    []Product `json:"new_arrivals"`
	LatestReleases []Product `json:"latest_releases"`
}
