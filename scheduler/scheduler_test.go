package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
	"github.com/symplab/cure-calendar-api/data"
	"github.com/symplab/cure-calendar-api/logging"
)

// stubParser returns a fixed catalog, or an error when products is nil.
type stubParser struct {
	products []entities.Product
	calls    int
}

func (p *stubParser) ParseCatalog() ([]entities.Product, map[int]entities.Product, error) {
	p.calls++
	if p.products == nil {
		return nil, nil, fmt.Errorf("stub parser failure")
	}

	productsMap := make(map[int]entities.Product, len(p.products))
	for _, product := range p.products {
		productsMap[product.ID] = product
	}
	return p.products, productsMap, nil
}

func TestCalculateNextUpdate(t *testing.T) {
	next := CalculateNextUpdate()
	now := time.Now()

	if !next.After(now) {
		t.Errorf("Next update %v should be in the future", next)
	}
	if next.Hour() != 6 || next.Minute() != 0 {
		t.Errorf("Next update should be at 06:00, got %v", next)
	}
	if next.Sub(now) > 24*time.Hour {
		t.Errorf("Next update %v should be within 24 hours", next)
	}
}

func TestReloadCatalog(t *testing.T) {
	logging.InitLogger("")

	dc := data.NewDataContainer()
	parser := &stubParser{products: []entities.Product{{ID: 1, Label: "Magnésium"}}}
	s := NewCatalogScheduler(dc, parser)

	if err := s.reloadCatalog(); err != nil {
		t.Fatalf("reloadCatalog failed: %v", err)
	}

	if len(dc.GetProducts()) != 1 {
		t.Errorf("Expected 1 product after reload, got %d", len(dc.GetProducts()))
	}
	if dc.GetLastUpdated().IsZero() {
		t.Error("Reload should update the timestamp")
	}
	if dc.IsUpdating() {
		t.Error("Reload should release the update lock")
	}
}

func TestReloadCatalogKeepsPreviousDataOnFailure(t *testing.T) {
	logging.InitLogger("")

	dc := data.NewDataContainer()
	good := &stubParser{products: []entities.Product{{ID: 1, Label: "Magnésium"}}}
	s := NewCatalogScheduler(dc, good)
	if err := s.reloadCatalog(); err != nil {
		t.Fatalf("Initial reload failed: %v", err)
	}

	bad := &stubParser{}
	s = NewCatalogScheduler(dc, bad)
	if err := s.reloadCatalog(); err == nil {
		t.Error("Expected the failed reload to report an error")
	}

	if len(dc.GetProducts()) != 1 {
		t.Errorf("Previous catalog should stay live after a failed reload, got %d products", len(dc.GetProducts()))
	}
	if dc.IsUpdating() {
		t.Error("Failed reload should release the update lock")
	}
}

func TestReloadCatalogSkipsWhenUpdating(t *testing.T) {
	logging.InitLogger("")

	dc := data.NewDataContainer()
	parser := &stubParser{products: []entities.Product{{ID: 1, Label: "Magnésium"}}}
	s := NewCatalogScheduler(dc, parser)

	dc.BeginUpdate()
	defer dc.EndUpdate()

	if err := s.reloadCatalog(); err != nil {
		t.Errorf("Skipped reload should not report an error: %v", err)
	}
	if parser.calls != 0 {
		t.Errorf("Parser should not run while another update is in progress, got %d calls", parser.calls)
	}
}
