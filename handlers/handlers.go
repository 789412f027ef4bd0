// Package handlers provides HTTP request handlers for the cure calendar API
// endpoints. It includes handlers for catalog browsing, product search,
// calendar building, health checks, and response formatting with proper
// input validation and error handling.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/symplab/cure-calendar-api/calendar"
	"github.com/symplab/cure-calendar-api/cart"
	"github.com/symplab/cure-calendar-api/catalogparser/entities"
	"github.com/symplab/cure-calendar-api/data"
	"github.com/symplab/cure-calendar-api/interfaces"
	"github.com/symplab/cure-calendar-api/logging"
	"github.com/symplab/cure-calendar-api/metrics"
	"github.com/symplab/cure-calendar-api/posology"
	"github.com/symplab/cure-calendar-api/scheduler"
)

var serverStartTime = time.Now()

// foldAccents removes diacritics so "Magnésium" matches "magnesium"
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	w.Write(data)
}

// respondWithError writes a JSON error body with a consistent shape
func respondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

// normalizeSearchTerm lowercases and strips accents for catalog search
func normalizeSearchTerm(s string) string {
	folded, _, err := transform.String(foldAccents, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// ServeCatalog returns the full supplement catalog
func ServeCatalog(dataContainer *data.DataContainer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := dataContainer.GetProducts()
		RespondWithJSON(w, http.StatusOK, products)
	}
}

// ServePagedCatalog returns the catalog paginated
func ServePagedCatalog(dataContainer *data.DataContainer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageNumber := chi.URLParam(r, "pageNumber")
		page, err := strconv.Atoi(pageNumber)
		if err != nil || page < 1 {
			logging.Warn("Unusual user input", "pageNumber", pageNumber)
			respondWithError(w, http.StatusBadRequest, "Invalid page number")
			return
		}

		products := dataContainer.GetProducts()
		pageSize := 10
		start := (page - 1) * pageSize
		end := start + pageSize

		if start >= len(products) {
			respondWithError(w, http.StatusNotFound, "Page not found")
			return
		}

		if end > len(products) {
			end = len(products)
		}

		pagedProducts := products[start:end]
		totalItems := len(products)
		maxPage := (totalItems + pageSize - 1) / pageSize

		response := map[string]interface{}{
			"data":       pagedProducts,
			"page":       page,
			"pageSize":   pageSize,
			"totalItems": totalItems,
			"maxPage":    maxPage,
		}

		RespondWithJSON(w, http.StatusOK, response)
	}
}

// FindProduct finds a product by id, or by label when the path element is not
// numeric. Label search is accent-insensitive.
func FindProduct(dataContainer *data.DataContainer, validator interfaces.DataValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		element := chi.URLParam(r, "element")
		if element == "" {
			respondWithError(w, http.StatusBadRequest, "Missing search term")
			return
		}

		if id, err := validator.ValidateProductID(element); err == nil {
			product, exists := dataContainer.GetProductsMap()[id]
			if !exists {
				respondWithError(w, http.StatusNotFound, "Product not found")
				return
			}
			RespondWithJSON(w, http.StatusOK, product)
			return
		}

		if err := validator.ValidateInput(element); err != nil {
			logging.Warn("Rejected search input", "element", element, "error", err)
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		term := normalizeSearchTerm(element)
		var results []entities.Product
		for _, product := range dataContainer.GetProducts() {
			if strings.Contains(normalizeSearchTerm(product.Label), term) {
				results = append(results, product)
			}
		}

		if len(results) == 0 {
			respondWithError(w, http.StatusNotFound, "No products found")
			return
		}

		RespondWithJSON(w, http.StatusOK, results)
	}
}

// CalendarRequest is the body of POST /calendar
type CalendarRequest struct {
	ProductIDs    []int       `json:"product_ids"`
	Delays        map[int]int `json:"delays"`
	CortisolPhase bool        `json:"cortisol_phase"`
	SecondPhase   bool        `json:"second_phase"`
}

// CalendarResponse pairs the render context with the batch it was built from
type CalendarResponse struct {
	Calendar *entities.CalendarContext    `json:"calendar"`
	Products []entities.NormalizedProduct `json:"products"`
	CartURL  string                       `json:"cart_url,omitempty"`
}

// BuildCalendar builds an intake calendar for the requested products
func BuildCalendar(dataContainer *data.DataContainer, cartBaseURL, cartClientID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CalendarRequest
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
			return
		}

		if len(req.ProductIDs) == 0 {
			respondWithError(w, http.StatusBadRequest, "No products selected")
			return
		}

		productsMap := dataContainer.GetProductsMap()
		batch := &entities.BatchInput{
			Products:      make([]entities.Product, 0, len(req.ProductIDs)),
			Delays:        req.Delays,
			CortisolPhase: req.CortisolPhase,
		}
		if batch.Delays == nil {
			batch.Delays = make(map[int]int)
		}
		for _, id := range req.ProductIDs {
			product, exists := productsMap[id]
			if !exists {
				respondWithError(w, http.StatusNotFound, fmt.Sprintf("Unknown product id: %d", id))
				return
			}
			batch.Products = append(batch.Products, product)
		}

		start := time.Now()
		normalized, err := posology.NormalizeProducts(batch, posology.DefaultExceptionRules())
		if err != nil {
			metrics.CalendarBuildsTotal.WithLabelValues("validation_error").Inc()
			var validationErr *posology.ProductValidationError
			if errors.As(err, &validationErr) {
				logging.Warn("Calendar batch rejected",
					"product", validationErr.Label,
					"reason", validationErr.Reason,
				)
				respondWithError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Calendar computation failed")
			return
		}

		calculator, err := posology.NewCalculator(normalized, req.CortisolPhase)
		if err != nil {
			metrics.CalendarBuildsTotal.WithLabelValues("validation_error").Inc()
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		cartURL := cart.GenerateURLAt(cartBaseURL, cartClientID, normalized, req.SecondPhase)

		builder := calendar.CalendarContextBuilder{
			Calculator: calculator,
			Products:   normalized,
			CartURL:    cartURL,
		}
		context := builder.Build()

		metrics.CalendarBuildsTotal.WithLabelValues("success").Inc()
		metrics.CalendarBuildDuration.Observe(time.Since(start).Seconds())

		RespondWithJSON(w, http.StatusOK, CalendarResponse{
			Calendar: context,
			Products: normalized,
			CartURL:  cartURL,
		})
	}
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status        string                 `json:"status"`
	LastUpdate    string                 `json:"last_update"`
	NextUpdate    string                 `json:"next_update"`
	DataAgeHours  float64                `json:"data_age_hours"`
	UptimeSeconds float64                `json:"uptime_seconds"`
	Data          map[string]interface{} `json:"data"`
	System        map[string]interface{} `json:"system"`
}

// HealthCheck returns server health information
func HealthCheck(dataContainer *data.DataContainer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		uptime := time.Since(serverStartTime)

		products := dataContainer.GetProducts()
		lastUpdate := dataContainer.GetLastUpdated()
		isUpdating := dataContainer.IsUpdating()
		dataAge := time.Since(lastUpdate)

		// Health follows catalog availability and age
		var healthStatus string
		var httpStatus int
		switch {
		case len(products) == 0:
			healthStatus = "unhealthy"
			httpStatus = http.StatusServiceUnavailable
		case dataAge > 48*time.Hour:
			healthStatus = "degraded"
			httpStatus = http.StatusOK
		default:
			healthStatus = "healthy"
			httpStatus = http.StatusOK
		}

		response := HealthResponse{
			Status:        healthStatus,
			LastUpdate:    lastUpdate.Format(time.RFC3339),
			NextUpdate:    scheduler.CalculateNextUpdate().Format(time.RFC3339),
			DataAgeHours:  dataAge.Hours(),
			UptimeSeconds: uptime.Seconds(),
			Data: map[string]interface{}{
				"api_version": "1.0",
				"products":    len(products),
				"is_updating": isUpdating,
			},
			System: map[string]interface{}{
				"goroutines": runtime.NumGoroutine(),
				"memory": map[string]interface{}{
					"alloc_mb":       int(m.Alloc / 1024 / 1024),
					"total_alloc_mb": int(m.TotalAlloc / 1024 / 1024),
					"sys_mb":         int(m.Sys / 1024 / 1024),
					"num_gc":         m.NumGC,
				},
			},
		}

		RespondWithJSON(w, httpStatus, response)
	}
}
