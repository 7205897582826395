package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetEntityDirectoryQueryHandler lists a directory kind straight from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetEntityDirectoryQueryHandler struct {
	db *gorm.DB
}

// NewGetEntityDirectoryQueryHandler creates a handler for directory queries.
// Requires a GORM database connection for query execution.
func NewGetEntityDirectoryQueryHandler(db *gorm.DB) GetEntityDirectoryQueryHandler {
	return GetEntityDirectoryQueryHandler{db: db}
}

// Handle executes the directory listing, sorted by name.
func (h GetEntityDirectoryQueryHandler) Handle(
	ctx context.Context,
	query GetEntityDirectoryQuery,
) ([]GetEntityDirectoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	switch query.Kind() {
	case DirectoryKindDriver:
		return h.listPool(ctx, "drivers")
	case DirectoryKindLabour:
		return h.listPool(ctx, "labours")
	default:
		return h.listEntities(ctx, query.Kind())
	}
}

func (h GetEntityDirectoryQueryHandler) listEntities(
	ctx context.Context,
	kind string,
) ([]GetEntityDirectoryQueryResponse, error) {
	entries := make([]GetEntityDirectoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address
		FROM supply_entities
		WHERE kind = ?
		ORDER BY name
	`, kind).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetEntityDirectoryQueryResponse
		if err = rows.Scan(&entry.ID, &entry.Name, &entry.Address); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h GetEntityDirectoryQueryHandler) listPool(
	ctx context.Context,
	table string,
) ([]GetEntityDirectoryQueryResponse, error) {
	entries := make([]GetEntityDirectoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT id, name FROM " + table + " ORDER BY name").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetEntityDirectoryQueryResponse
		if err = rows.Scan(&entry.ID, &entry.Name); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
