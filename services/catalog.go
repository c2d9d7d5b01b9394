package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"food-webhook/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NormalizeItemName lowercases and trims a name for catalog and line lookups.
// No fuzzy or partial matching beyond that.
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Catalog is a point-in-time snapshot of the menu keyed by normalized name.
// Each mutation loads a fresh one, so price changes apply on the next
// request, never retroactively.
type Catalog map[string]models.MenuItem

// PriceOf resolves the unit price for name, case-insensitively.
func (c Catalog) PriceOf(name string) (int64, error) {
	item, ok := c[NormalizeItemName(name)]
	if !ok {
		return 0, &ItemNotAvailableError{Name: strings.TrimSpace(name)}
	}
	return item.Price, nil
}

// MenuStore reads the menu catalog.
type MenuStore interface {
	LoadCatalog(ctx context.Context) (Catalog, error)
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
}

type PostgresMenuStore struct {
	pool *pgxpool.Pool
}

func NewPostgresMenuStore(pool *pgxpool.Pool) *PostgresMenuStore {
	return &PostgresMenuStore{pool: pool}
}

func (s *PostgresMenuStore) LoadCatalog(ctx context.Context) (Catalog, error) {
	items, err := s.ListMenu(ctx)
	if err != nil {
		return nil, err
	}
	return buildCatalog(items), nil
}

func (s *PostgresMenuStore) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, category, name, price FROM menu_items
		ORDER BY category, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var id int64
		var cat, name string
		var price int64
		if err := rows.Scan(&id, &cat, &name, &price); err != nil {
			return nil, err
		}
		items = append(items, models.MenuItem{
			ID:       strconv.FormatInt(id, 10),
			Category: cat,
			Name:     name,
			Price:    price,
		})
	}
	return items, rows.Err()
}

// AddMenuItem inserts a catalog entry. Normal seeding goes through the
// migrations; this backs ad-hoc additions.
func (s *PostgresMenuStore) AddMenuItem(ctx context.Context, category, name string, price int64) (int64, error) {
	if category != models.CategoryFood && category != models.CategoryDrink && category != models.CategoryDessert {
		return 0, fmt.Errorf("invalid category: %s", category)
	}
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("name is required")
	}
	if price <= 0 {
		return 0, fmt.Errorf("price must be > 0")
	}

	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO menu_items (category, name, price) VALUES ($1, $2, $3)
		RETURNING id`,
		category, strings.TrimSpace(name), price,
	).Scan(&id)
	return id, err
}

// MemoryMenuStore is an in-memory MenuStore for tests.
type MemoryMenuStore struct {
	items []models.MenuItem
}

func NewMemoryMenuStore(items ...models.MenuItem) *MemoryMenuStore {
	return &MemoryMenuStore{items: items}
}

func (s *MemoryMenuStore) LoadCatalog(ctx context.Context) (Catalog, error) {
	return buildCatalog(s.items), nil
}

func (s *MemoryMenuStore) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	return append([]models.MenuItem(nil), s.items...), nil
}

func buildCatalog(items []models.MenuItem) Catalog {
	c := make(Catalog, len(items))
	for _, item := range items {
		c[NormalizeItemName(item.Name)] = item
	}
	return c
}
