// Package validation provides data validation functionality for the cure calendar API.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
	"github.com/symplab/cure-calendar-api/interfaces"
	"github.com/symplab/cure-calendar-api/logging"
)

// Pre-compiled regex patterns for performance optimization
// Compiled once at package initialization and reused for all validations
var (
	// Input validation: alphanumeric + French accents + safe punctuation
	inputRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\+'àâäéèêëïîôöùûüÿç]+$`)

	// Dangerous patterns as strings (faster than regex for simple substring matching)
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"onclick=", "onmouseover=", "onfocus=", "onblur=", "onchange=", "onsubmit=",
		"eval(", "expression(", "url(", "import ", "@import", "binding(", "behavior(",
		// SQL injection patterns
		"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
		"update set", "--", "/*", "*/", "xp_", "sp_", "exec(", "execute(",
		// Command injection patterns
		"; ", "| ", "& ", "`", "$(", "${",
		// Path traversal patterns
		"../", "..\\", "%2e%2e", "file://",
		// LDAP injection patterns
		"*)(", "*|(", "*)%",
		// NoSQL injection patterns
		"{$ne:", "{$gt:", "{$where:", "{$or:", "{$regex:", "{$expr:",
	}
)

// DataValidatorImpl implements the interfaces.DataValidator interface
type DataValidatorImpl struct{}

// NewDataValidator creates a new data validator
func NewDataValidator() interfaces.DataValidator {
	return &DataValidatorImpl{}
}

// ValidateProduct checks if a catalog product is valid
func (v *DataValidatorImpl) ValidateProduct(p *entities.Product) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}

	if p.ID <= 0 {
		return fmt.Errorf("invalid product id: %d", p.ID)
	}

	if strings.TrimSpace(p.Label) == "" {
		return fmt.Errorf("empty label for product %d", p.ID)
	}

	if len(p.Label) > 200 {
		return fmt.Errorf("label too long for product %d: %d characters", p.ID, len(p.Label))
	}

	if p.Phase != 1 && p.Phase != 2 {
		return fmt.Errorf("invalid phase for product %d: %d", p.ID, p.Phase)
	}

	if p.Servings <= 0 {
		return fmt.Errorf("invalid servings for product %d: %d", p.ID, p.Servings)
	}

	if len(p.Schemes) == 0 {
		return fmt.Errorf("no posology scheme for product %d", p.ID)
	}

	for _, scheme := range p.Schemes {
		if scheme.DurationValue <= 0 {
			return fmt.Errorf("invalid scheme duration for product %d: %d", p.ID, scheme.DurationValue)
		}
		if len(scheme.Intakes) == 0 {
			return fmt.Errorf("scheme without intakes for product %d", p.ID)
		}
		for _, intake := range scheme.Intakes {
			if intake.Quantity < 0.1 {
				return fmt.Errorf("invalid intake quantity for product %d: %v", p.ID, intake.Quantity)
			}
			if intake.Frequency < 1 {
				return fmt.Errorf("invalid intake frequency for product %d: %d", p.ID, intake.Frequency)
			}
		}
	}

	return nil
}

// ValidateCatalogIntegrity performs comprehensive catalog validation
func (v *DataValidatorImpl) ValidateCatalogIntegrity(products []entities.Product) error {
	if len(products) == 0 {
		return fmt.Errorf("no products found")
	}

	// Check for duplicate product ids
	idMap := make(map[int]bool)
	shopifyMap := make(map[int64]bool)
	for _, p := range products {
		if idMap[p.ID] {
			return fmt.Errorf("duplicate product id found: %d", p.ID)
		}
		idMap[p.ID] = true

		if err := v.ValidateProduct(&p); err != nil {
			return fmt.Errorf("invalid product %d: %w", p.ID, err)
		}

		if p.ShopifyID != 0 {
			if shopifyMap[p.ShopifyID] {
				logging.Warn("Duplicate shopify id in catalog",
					"product_id", p.ID,
					"shopify_id", p.ShopifyID,
				)
			}
			shopifyMap[p.ShopifyID] = true
		}
	}

	return nil
}

// ValidateInput validates user input strings with enhanced security
func (v *DataValidatorImpl) ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(input) < 3 {
		return fmt.Errorf("input too short: minimum 3 characters")
	}

	if len(input) > 50 {
		return fmt.Errorf("input too long: maximum 50 characters")
	}

	// Word count validation to prevent DoS attacks with many short words
	words := strings.Fields(input)
	if len(words) > 6 {
		return fmt.Errorf("search query too complex: maximum 6 words allowed")
	}

	// Check for potentially dangerous patterns using string matching (5-10x faster than regex)
	lowerInput := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerInput, pattern) {
			return fmt.Errorf("input contains potentially dangerous content")
		}
	}

	// Allow only alphanumeric characters, spaces, and safe punctuation
	if !inputRegex.MatchString(input) {
		return fmt.Errorf("input contains invalid characters. Only letters, numbers, spaces, hyphens, apostrophes, periods, plus sign, and common French accented characters are allowed")
	}

	// Additional checks for repeated characters (potential DoS)
	if v.hasExcessiveRepetition(input) {
		return fmt.Errorf("input contains excessive character repetition")
	}

	return nil
}

// ValidateProductID validates product id path parameters
// No regex used - strconv.Atoi() validates numeric format for free
func (v *DataValidatorImpl) ValidateProductID(input string) (int, error) {
	trimmedInput := strings.TrimSpace(input)
	if trimmedInput == "" {
		return -1, fmt.Errorf("input cannot be empty")
	}

	// Reject if original input contained whitespace (spaces, tabs, etc.)
	if len(input) != len(trimmedInput) {
		return -1, fmt.Errorf("input contains invalid characters. Only numeric characters are allowed")
	}

	if len(trimmedInput) > 6 {
		return -1, fmt.Errorf("product id should have at most 6 digits")
	}

	id, err := strconv.Atoi(trimmedInput)
	if err != nil {
		return -1, fmt.Errorf("input contains invalid characters. Only numeric characters are allowed")
	}

	if id <= 0 {
		return -1, fmt.Errorf("product id must be positive")
	}

	return id, nil
}

// hasExcessiveRepetition checks for potential DoS patterns with excessive character repetition
func (v *DataValidatorImpl) hasExcessiveRepetition(input string) bool {
	// Check for the same character repeated more than 10 times consecutively
	for i := 0; i < len(input)-10; i++ {
		allSame := true
		for j := 1; j <= 10; j++ {
			if input[i] != input[i+j] {
				allSame = false
				break
			}
		}
		if allSame {
			return true
		}
	}
	return false
}
