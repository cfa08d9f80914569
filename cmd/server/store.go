package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fieldcraft/cinequote/internal/deliverable"
	"github.com/fieldcraft/cinequote/internal/export"
	"github.com/fieldcraft/cinequote/internal/pricing"
)

func (s *server) listDayRates() ([]pricing.RateDefinition, error) {
	rows, err := s.db.Query(`
		SELECT id, role, unit_type, category, half_day_rate, full_day_rate, active
		FROM day_rates
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query day rates: %w", err)
	}
	defer rows.Close()

	rates := make([]pricing.RateDefinition, 0)
	for rows.Next() {
		var r pricing.RateDefinition
		var unitType, category string
		if err := rows.Scan(&r.ID, &r.Role, &unitType, &category, &r.HalfDayRate, &r.FullDayRate, &r.Active); err != nil {
			return nil, fmt.Errorf("scan day rate: %w", err)
		}
		r.UnitType = pricing.UnitType(unitType)
		r.Category = pricing.RoleCategory(category)
		rates = append(rates, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day rates: %w", err)
	}

	return rates, nil
}

func (s *server) upsertDayRate(r pricing.RateDefinition) error {
	_, err := s.db.Exec(`
		INSERT INTO day_rates (id, role, unit_type, category, half_day_rate, full_day_rate, active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			role = excluded.role,
			unit_type = excluded.unit_type,
			category = excluded.category,
			half_day_rate = excluded.half_day_rate,
			full_day_rate = excluded.full_day_rate,
			active = excluded.active,
			updated_at = CURRENT_TIMESTAMP
	`, r.ID, r.Role, string(r.UnitType), string(r.Category), r.HalfDayRate, r.FullDayRate, r.Active)
	if err != nil {
		return fmt.Errorf("upsert day rate: %w", err)
	}
	return nil
}

func (s *server) listGear() ([]pricing.GearItem, error) {
	rows, err := s.db.Query(`
		SELECT id, name, total_investment, include_by_default
		FROM gear_items
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query gear items: %w", err)
	}
	defer rows.Close()

	items := make([]pricing.GearItem, 0)
	for rows.Next() {
		var g pricing.GearItem
		if err := rows.Scan(&g.ID, &g.Name, &g.TotalInvestment, &g.IncludeByDefault); err != nil {
			return nil, fmt.Errorf("scan gear item: %w", err)
		}
		items = append(items, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gear items: %w", err)
	}

	return items, nil
}

func (s *server) upsertGear(g pricing.GearItem) error {
	_, err := s.db.Exec(`
		INSERT INTO gear_items (id, name, total_investment, include_by_default)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			total_investment = excluded.total_investment,
			include_by_default = excluded.include_by_default,
			updated_at = CURRENT_TIMESTAMP
	`, g.ID, g.Name, g.TotalInvestment, g.IncludeByDefault)
	if err != nil {
		return fmt.Errorf("upsert gear item: %w", err)
	}
	return nil
}

func (s *server) getSettings() (*pricing.Settings, error) {
	var body string
	err := s.db.QueryRow(`SELECT body_json FROM settings WHERE id = 1`).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("settings singleton not found")
	}
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}

	var settings pricing.Settings
	if err := json.Unmarshal([]byte(body), &settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &settings, nil
}

func (s *server) updateSettings(settings pricing.Settings) error {
	body, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE settings SET body_json = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1
	`, string(body))
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

func (s *server) getCatalog() (deliverable.Catalog, error) {
	var body string
	err := s.db.QueryRow(`SELECT body_json FROM deliverable_catalog WHERE id = 1`).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return deliverable.Catalog{}, fmt.Errorf("deliverable catalog singleton not found")
	}
	if err != nil {
		return deliverable.Catalog{}, fmt.Errorf("query deliverable catalog: %w", err)
	}

	var catalog deliverable.Catalog
	if err := json.Unmarshal([]byte(body), &catalog); err != nil {
		return deliverable.Catalog{}, fmt.Errorf("decode deliverable catalog: %w", err)
	}
	return catalog, nil
}

func (s *server) updateCatalog(catalog deliverable.Catalog) error {
	body, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("encode deliverable catalog: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE deliverable_catalog SET body_json = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1
	`, string(body))
	if err != nil {
		return fmt.Errorf("update deliverable catalog: %w", err)
	}
	return nil
}

func (s *server) insertQuote(id, title, notes, engine string, doc *export.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode quote document: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO quotes (id, title, notes, engine, document_json, total)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, title, notes, engine, string(body), doc.Total)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

type quoteListItem struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"created_at"`
	Title     string  `json:"title"`
	Engine    string  `json:"engine"`
	Total     float64 `json:"total"`
}

func (s *server) listQuotes(query string) ([]quoteListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT id, created_at, COALESCE(title, ''), engine, total
		FROM quotes
		WHERE (? = '' OR COALESCE(title, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]quoteListItem, 0)
	for rows.Next() {
		var item quoteListItem
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.Title, &item.Engine, &item.Total); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}

	return quotes, nil
}
