package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/fieldcraft/cinequote/internal/deliverable"
	"github.com/fieldcraft/cinequote/internal/pricing"
)

func (s *server) handleRatesList(w http.ResponseWriter, r *http.Request) {
	rates, err := s.listDayRates()
	if err != nil {
		log.Printf("list day rates: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rates": rates})
}

func (s *server) handleRateUpsert(w http.ResponseWriter, r *http.Request) {
	var rate pricing.RateDefinition
	if err := json.NewDecoder(r.Body).Decode(&rate); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if rate.ID == "" || rate.Role == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	if err := s.upsertDayRate(rate); err != nil {
		log.Printf("upsert day rate: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleGearList(w http.ResponseWriter, r *http.Request) {
	items, err := s.listGear()
	if err != nil {
		log.Printf("list gear items: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"gear": items})
}

func (s *server) handleGearUpsert(w http.ResponseWriter, r *http.Request) {
	var item pricing.GearItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if item.ID == "" || item.Name == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	if err := s.upsertGear(item); err != nil {
		log.Printf("upsert gear item: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleSettingsGet(w http.ResponseWriter, r *http.Request) {
	settings, err := s.getSettings()
	if err != nil {
		log.Printf("get settings: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *server) handleSettingsUpdate(w http.ResponseWriter, r *http.Request) {
	var settings pricing.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := s.updateSettings(settings); err != nil {
		log.Printf("update settings: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleCatalogGet(w http.ResponseWriter, r *http.Request) {
	catalog, err := s.getCatalog()
	if err != nil {
		log.Printf("get deliverable catalog: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

func (s *server) handleCatalogUpdate(w http.ResponseWriter, r *http.Request) {
	var catalog deliverable.Catalog
	if err := json.NewDecoder(r.Body).Decode(&catalog); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := s.updateCatalog(catalog); err != nil {
		log.Printf("update deliverable catalog: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
