// Package lookup caches the reference enumerations backing select fields
// and resolves raw ids to display labels. Options are stable within a
// working session; the cache loads once and answers locally after that.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
)

// Option is one normalized lookup entry.
type Option struct {
	ID    int64
	Label string
}

// Source fetches the raw option maps of one category. The API client
// satisfies this.
type Source interface {
	ListLookupOptions(ctx context.Context, category string) ([]map[string]any, error)
}

// booleanFields render as Yes/No regardless of registered tables.
var booleanFields = map[string]bool{
	"profile_highlighter": true,
	"account_status":      true,
	"profile_verified":    true,
}

// fieldCategories maps select field names to their lookup category.
var fieldCategories = map[string]string{
	"package_name":              "package_name",
	"payment_status":            "payment_status",
	"payment_method":            "payment_method",
	"payment_admin_approval":    "admin_approval",
	"agreement_status":          "agreement_status",
	"admin_agreement_approval":  "admin_approval",
	"settlement_status":         "settlement_status",
	"settlement_type":           "settlement_type",
	"settlement_admin_approval": "admin_approval",
}

// labelKeys are the synonym keys tried, in order, when normalizing a raw
// option map.
var labelKeys = []string{"name", "label", "display", "value"}

// Cache holds the per-category option tables for one working session.
type Cache struct {
	source Source
	logger *slog.Logger
	tables map[string][]Option
}

// NewCache builds an empty cache backed by the given source.
func NewCache(source Source, logger *slog.Logger) *Cache {
	return &Cache{
		source: source,
		logger: logger,
		tables: make(map[string][]Option),
	}
}

// Load fetches and registers the named categories. A category that comes
// back malformed registers as empty and is logged; Load only fails on
// transport errors.
func (c *Cache) Load(ctx context.Context, categories []string) error {
	for _, category := range categories {
		raw, err := c.source.ListLookupOptions(ctx, category)
		if err != nil {
			return err
		}

		options := make([]Option, 0, len(raw))
		for _, entry := range raw {
			option, ok := normalizeOption(entry)
			if !ok {
				c.logger.Warn("skipping malformed lookup option",
					slog.String("category", category),
				)

				continue
			}
			options = append(options, option)
		}

		c.tables[category] = options
	}

	return nil
}

// Register installs a table directly, replacing any loaded one.
func (c *Cache) Register(category string, options []Option) {
	c.tables[category] = options
}

// Options returns the registered table for one category, in load order.
func (c *Cache) Options(category string) []Option {
	return c.tables[category]
}

// ResolveLabel maps a raw field value to its display label. Boolean fields
// always render Yes/No. A nil or empty value is "N/A", as is an id absent
// from its loaded table. An id whose field has no registered table falls
// back to the stringified id. Total: partially loaded lookup data must not
// break list rendering.
func (c *Cache) ResolveLabel(field string, value any) string {
	if booleanFields[field] {
		if truthy(value) {
			return "Yes"
		}

		return "No"
	}

	if value == nil {
		return "N/A"
	}
	if s, ok := value.(string); ok && s == "" {
		return "N/A"
	}

	id, ok := asID(value)
	if !ok {
		return fmt.Sprintf("%v", value)
	}

	category, hasCategory := fieldCategories[field]
	if hasCategory {
		if options, registered := c.tables[category]; registered {
			for _, option := range options {
				if option.ID == id {
					return option.Label
				}
			}

			return "N/A"
		}
	}

	return strconv.FormatInt(id, 10)
}

// OptionLabel extracts a display label from a raw option map, trying the
// synonym keys in fixed priority order.
func OptionLabel(option map[string]any) string {
	for _, key := range labelKeys {
		if raw, ok := option[key]; ok {
			if label, ok := raw.(string); ok && label != "" {
				return label
			}
		}
	}

	return ""
}

// normalizeOption converts one raw map into an Option. The id may arrive
// as a JSON number or a numeric string.
func normalizeOption(entry map[string]any) (Option, bool) {
	raw, ok := entry["id"]
	if !ok {
		return Option{}, false
	}

	id, ok := asID(raw)
	if !ok {
		return Option{}, false
	}

	label := OptionLabel(entry)
	if label == "" {
		return Option{}, false
	}

	return Option{ID: id, Label: label}, true
}

func asID(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case json.Number:
		id, err := v.Int64()

		return id, err == nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)

		return id, err == nil
	default:
		return 0, false
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "True" || v == "1"
	case float64:
		return v != 0
	case int64:
		return v != 0
	default:
		return false
	}
}
