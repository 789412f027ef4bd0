// Package catalogparser loads and validates the supplement catalog used to
// build cure calendars.
package catalogparser

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
	"github.com/symplab/cure-calendar-api/interfaces"
	"github.com/symplab/cure-calendar-api/logging"
)

// Compile-time check to ensure Parser implements CatalogParser
var _ interfaces.CatalogParser = (*Parser)(nil)

// Parser reads the catalog from a JSON file exported by the back office.
type Parser struct {
	path      string
	validator interfaces.DataValidator
}

// NewParser creates a parser for the catalog file at path.
func NewParser(path string, validator interfaces.DataValidator) *Parser {
	return &Parser{path: path, validator: validator}
}

// ParseCatalog loads the catalog, skipping invalid products with a warning.
// An empty resulting catalog is an error: the previous catalog stays live.
func (p *Parser) ParseCatalog() ([]entities.Product, map[int]entities.Product, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read catalog file %s: %w", p.path, err)
	}

	var catalog []entities.Product
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, nil, fmt.Errorf("could not parse catalog file %s: %w", p.path, err)
	}

	products := make([]entities.Product, 0, len(catalog))
	productsMap := make(map[int]entities.Product, len(catalog))

	for _, product := range catalog {
		if err := p.validator.ValidateProduct(&product); err != nil {
			logging.Warn("Skipping invalid catalog product",
				"product_id", product.ID,
				"error", err,
			)
			continue
		}
		if _, exists := productsMap[product.ID]; exists {
			logging.Warn("Skipping duplicate catalog product", "product_id", product.ID)
			continue
		}
		products = append(products, product)
		productsMap[product.ID] = product
	}

	if len(products) == 0 {
		return nil, nil, fmt.Errorf("catalog file %s contains no valid products", p.path)
	}

	logging.Info("Catalog parsed",
		"path", p.path,
		"products", len(products),
		"skipped", len(catalog)-len(products),
	)

	return products, productsMap, nil
}
