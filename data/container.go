// Package data provides thread-safe storage for the supplement catalog.
// The DataContainer uses atomic operations so catalog reloads never block
// or tear an in-flight calendar build.
package data

import (
	"sync/atomic"
	"time"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
	"github.com/symplab/cure-calendar-api/interfaces"
	"github.com/symplab/cure-calendar-api/logging"
)

// Compile-time check to ensure DataContainer implements DataStore
var _ interfaces.DataStore = (*DataContainer)(nil)

// DataContainer holds the catalog with atomic pointers for zero-downtime updates
type DataContainer struct {
	products        atomic.Value // []entities.Product
	productsMap     atomic.Value // map[int]entities.Product
	lastUpdated     atomic.Value // time.Time
	updating        atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewDataContainer creates a new DataContainer with empty data
func NewDataContainer() *DataContainer {
	dc := &DataContainer{}
	dc.products.Store(make([]entities.Product, 0))
	dc.productsMap.Store(make(map[int]entities.Product))
	dc.lastUpdated.Store(time.Time{})
	dc.serverStartTime.Store(time.Time{})
	return dc
}

// Thread-safe getters with type check

// GetProducts returns the catalog product list
func (dc *DataContainer) GetProducts() []entities.Product {
	if v := dc.products.Load(); v != nil {
		if products, ok := v.([]entities.Product); ok {
			return products
		}
	}

	logging.Warn("Products list is empty or invalid")
	return []entities.Product{}
}

// GetProductsMap returns the products map for O(1) lookups
func (dc *DataContainer) GetProductsMap() map[int]entities.Product {
	if v := dc.productsMap.Load(); v != nil {
		if productsMap, ok := v.(map[int]entities.Product); ok {
			return productsMap
		}
	}

	logging.Warn("ProductsMap is empty or invalid")
	return make(map[int]entities.Product)
}

// GetLastUpdated returns the timestamp of the last catalog update
func (dc *DataContainer) GetLastUpdated() time.Time {
	if v := dc.lastUpdated.Load(); v != nil {
		if lastUpdated, ok := v.(time.Time); ok {
			return lastUpdated
		}
	}

	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// IsUpdating returns true if a catalog update is currently in progress
func (dc *DataContainer) IsUpdating() bool {
	return dc.updating.Load()
}

// SetServerStartTime sets the server start time
func (dc *DataContainer) SetServerStartTime(startTime time.Time) {
	dc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time
func (dc *DataContainer) GetServerStartTime() time.Time {
	if v := dc.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// UpdateData atomically replaces the catalog in the container
func (dc *DataContainer) UpdateData(products []entities.Product, productsMap map[int]entities.Product) {
	// Atomic swap (zero downtime replacement)
	dc.products.Store(products)
	dc.productsMap.Store(productsMap)
	dc.lastUpdated.Store(time.Now())
}

// BeginUpdate marks the start of a catalog update operation
// Returns true if update can proceed, false if another update is in progress
func (dc *DataContainer) BeginUpdate() bool {
	return dc.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the end of a catalog update operation
func (dc *DataContainer) EndUpdate() {
	dc.updating.Store(false)
}
