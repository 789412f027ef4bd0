// Package interfaces defines core abstractions for the cure calendar API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"time"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
)

// DataStore defines the contract for catalog storage operations.
// It provides thread-safe access to the supplement catalog with atomic
// operations for zero-downtime updates.
type DataStore interface {
	// Data retrieval methods
	GetProducts() []entities.Product
	GetProductsMap() map[int]entities.Product
	GetLastUpdated() time.Time
	IsUpdating() bool
	GetServerStartTime() time.Time

	// Data update methods
	UpdateData(products []entities.Product, productsMap map[int]entities.Product)
	BeginUpdate() bool
	EndUpdate()
}

// CatalogParser defines the contract for loading the supplement catalog
// from its external source.
type CatalogParser interface {
	// ParseCatalog loads and validates the catalog
	ParseCatalog() ([]entities.Product, map[int]entities.Product, error)
}

// Scheduler defines the contract for job scheduling and health monitoring.
// It manages automated catalog reloads and staleness checks.
type Scheduler interface {
	// Lifecycle management
	Start() error
	Stop()
}

// DataValidator defines the contract for data validation operations.
// It ensures catalog integrity and consistency.
type DataValidator interface {
	// ValidateProduct checks if a catalog product is valid
	ValidateProduct(p *entities.Product) error

	// ValidateCatalogIntegrity performs comprehensive catalog validation
	ValidateCatalogIntegrity(products []entities.Product) error

	// ValidateInput validates user input strings
	ValidateInput(input string) error

	// ValidateProductID validates product id path parameters
	ValidateProductID(input string) (int, error)
}
