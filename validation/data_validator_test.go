package validation

import (
	"strings"
	"testing"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
	"github.com/symplab/cure-calendar-api/logging"
)

func validProduct(id int) entities.Product {
	return entities.Product{
		ID:       id,
		Label:    "Magnésium",
		Phase:    1,
		Servings: 60,
		Schemes: []entities.PosologyScheme{
			{
				DurationValue: 1,
				Intakes: []entities.PosologyIntake{
					{Quantity: 2, Frequency: 1},
				},
			},
		},
	}
}

func TestValidateProduct(t *testing.T) {
	v := NewDataValidator()

	product := validProduct(1)
	if err := v.ValidateProduct(&product); err != nil {
		t.Errorf("Valid product rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(p *entities.Product)
	}{
		{"nil schemes", func(p *entities.Product) { p.Schemes = nil }},
		{"invalid id", func(p *entities.Product) { p.ID = 0 }},
		{"empty label", func(p *entities.Product) { p.Label = "  " }},
		{"label too long", func(p *entities.Product) { p.Label = strings.Repeat("a", 201) }},
		{"invalid phase", func(p *entities.Product) { p.Phase = 3 }},
		{"invalid servings", func(p *entities.Product) { p.Servings = 0 }},
		{"invalid scheme duration", func(p *entities.Product) { p.Schemes[0].DurationValue = 0 }},
		{"scheme without intakes", func(p *entities.Product) { p.Schemes[0].Intakes = nil }},
		{"invalid intake quantity", func(p *entities.Product) { p.Schemes[0].Intakes[0].Quantity = 0 }},
		{"invalid intake frequency", func(p *entities.Product) { p.Schemes[0].Intakes[0].Frequency = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := validProduct(1)
			tt.mutate(&product)
			if err := v.ValidateProduct(&product); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}

	if err := v.ValidateProduct(nil); err == nil {
		t.Error("Expected an error for a nil product")
	}
}

func TestValidateCatalogIntegrity(t *testing.T) {
	logging.InitLogger("")
	v := NewDataValidator()

	if err := v.ValidateCatalogIntegrity([]entities.Product{validProduct(1), validProduct(2)}); err != nil {
		t.Errorf("Valid catalog rejected: %v", err)
	}

	if err := v.ValidateCatalogIntegrity(nil); err == nil {
		t.Error("Expected an error for an empty catalog")
	}

	if err := v.ValidateCatalogIntegrity([]entities.Product{validProduct(1), validProduct(1)}); err == nil {
		t.Error("Expected an error for duplicate product ids")
	}
}

func TestValidateInput(t *testing.T) {
	v := NewDataValidator()

	valid := []string{
		"magnésium",
		"omega 3",
		"vitamine d3",
		"l-glutamine",
	}
	for _, input := range valid {
		if err := v.ValidateInput(input); err != nil {
			t.Errorf("Valid input %q rejected: %v", input, err)
		}
	}

	invalid := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "ab"},
		{"too long", strings.Repeat("a", 51)},
		{"too many words", "a b c d e f g"},
		{"script tag", "<script>alert(1)</script>"},
		{"sql injection", "' or 1=1"},
		{"path traversal", "../etc/passwd"},
		{"command injection", "zinc; rm"},
		{"forbidden characters", "zinc_%"},
		{"excessive repetition", "aaaaaaaaaaaaaaa"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.ValidateInput(tt.input); err == nil {
				t.Errorf("Invalid input %q accepted", tt.input)
			}
		})
	}
}

func TestValidateProductID(t *testing.T) {
	v := NewDataValidator()

	id, err := v.ValidateProductID("42")
	if err != nil {
		t.Errorf("Valid id rejected: %v", err)
	}
	if id != 42 {
		t.Errorf("Expected id 42, got %d", id)
	}

	invalid := []string{"", " 42", "42 ", "abc", "-1", "0", "1234567", "4.2"}
	for _, input := range invalid {
		if _, err := v.ValidateProductID(input); err == nil {
			t.Errorf("Invalid id %q accepted", input)
		}
	}
}
