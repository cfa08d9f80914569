package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/fieldcraft/cinequote/internal/deliverable"
	"github.com/fieldcraft/cinequote/internal/export"
	"github.com/fieldcraft/cinequote/internal/pricing"
)

// handleQuoteCalc runs the role engine against the stored catalogs. An
// optional deliverable selection block is priced first so its aggregate
// quantity can feed per-5-minute editing roles.
func (s *server) handleQuoteCalc(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Form                  pricing.FormData        `json:"form"`
		DeliverableSelections *deliverable.Selections `json:"deliverable_selections,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	dayRates, gearCosts, settings, err := s.loadPricingInputs()
	if err != nil {
		log.Printf("load pricing inputs: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}

	var estimate *pricing.DeliverableEstimate
	if req.DeliverableSelections != nil {
		catalog, err := s.getCatalog()
		if err != nil {
			log.Printf("get deliverable catalog: %v", err)
			writeError(w, http.StatusInternalServerError, "storage_error")
			return
		}
		result := deliverable.CalculateDeliverableQuote(*req.DeliverableSelections, catalog)
		if !result.Failed() {
			estimate = &pricing.DeliverableEstimate{TotalQuantity: result.DeliverableQuantity()}
		}
	}

	quote := pricing.CalculateQuote(req.Form, dayRates, gearCosts, settings, estimate)
	writeJSON(w, http.StatusOK, map[string]any{
		"quote":             quote,
		"negotiation_range": pricing.DeriveNegotiationRange(quote, settings),
	})
}

func (s *server) handleDeliverableCalc(w http.ResponseWriter, r *http.Request) {
	var selections deliverable.Selections
	if err := json.NewDecoder(r.Body).Decode(&selections); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	catalog, err := s.getCatalog()
	if err != nil {
		log.Printf("get deliverable catalog: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}

	writeJSON(w, http.StatusOK, deliverable.CalculateDeliverableQuote(selections, catalog))
}

// buildDocument prices a quote request body into an export document. The
// body carries exactly one engine payload; a failed deliverable result comes
// back as validations instead of a document.
func (s *server) buildDocument(body []byte) (*export.Document, string, []deliverable.Validation, error) {
	var req struct {
		Title                 string                  `json:"title"`
		Notes                 string                  `json:"notes,omitempty"`
		Form                  *pricing.FormData       `json:"form,omitempty"`
		DeliverableSelections *deliverable.Selections `json:"deliverable_selections,omitempty"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, "", nil, fmt.Errorf("decode quote request: %w", err)
	}

	title := req.Title
	if title == "" {
		title = "Estimate"
	}

	switch {
	case req.Form != nil:
		dayRates, gearCosts, settings, err := s.loadPricingInputs()
		if err != nil {
			return nil, "", nil, err
		}
		quote := pricing.CalculateQuote(*req.Form, dayRates, gearCosts, settings, nil)
		doc := export.FromQuote(quote, title)
		if doc == nil {
			return nil, "", nil, fmt.Errorf("role engine produced no quote")
		}
		return doc, "role", nil, nil

	case req.DeliverableSelections != nil:
		catalog, err := s.getCatalog()
		if err != nil {
			return nil, "", nil, err
		}
		settings, err := s.getSettings()
		if err != nil {
			return nil, "", nil, err
		}
		result := deliverable.CalculateDeliverableQuote(*req.DeliverableSelections, catalog)
		if result.Failed() {
			return nil, "", result.Validations, nil
		}
		return export.FromDeliverableQuote(result, title, settings.DepositPercent), "deliverable", nil, nil

	default:
		return nil, "", nil, fmt.Errorf("quote request carries no engine payload")
	}
}

func (s *server) handleQuoteSave(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	var meta struct {
		Title string `json:"title"`
		Notes string `json:"notes"`
	}
	_ = json.Unmarshal(body, &meta)

	doc, engine, validations, err := s.buildDocument(body)
	if err != nil {
		log.Printf("save quote: %v", err)
		writeError(w, http.StatusBadRequest, "calculation_failed")
		return
	}
	if len(validations) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validations": validations})
		return
	}

	id := uuid.NewString()
	doc.Number = id[:8]
	if err := s.insertQuote(id, meta.Title, meta.Notes, engine, doc); err != nil {
		log.Printf("insert quote: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": id, "document": doc})
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.listQuotes(r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("list quotes: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"quotes": quotes})
}

func (s *server) handleQuotePDF(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	doc, _, validations, err := s.buildDocument(body)
	if err != nil {
		log.Printf("export quote pdf: %v", err)
		writeError(w, http.StatusBadRequest, "calculation_failed")
		return
	}
	if len(validations) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validations": validations})
		return
	}

	pdfBytes, err := export.PDF(doc, s.studioName)
	if err != nil {
		log.Printf("render quote pdf: %v", err)
		writeError(w, http.StatusInternalServerError, "render_error")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="estimate.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

func (s *server) loadPricingInputs() ([]pricing.RateDefinition, []pricing.GearItem, *pricing.Settings, error) {
	dayRates, err := s.listDayRates()
	if err != nil {
		return nil, nil, nil, err
	}
	gearCosts, err := s.listGear()
	if err != nil {
		return nil, nil, nil, err
	}
	settings, err := s.getSettings()
	if err != nil {
		return nil, nil, nil, err
	}
	return dayRates, gearCosts, settings, nil
}
