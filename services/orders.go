package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"food-webhook/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderStore persists orders. Update is conditional on the version the
// caller read: a concurrent writer surfaces as ErrVersionConflict so the
// caller can reload and retry instead of overwriting.
type OrderStore interface {
	Get(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, o *models.Order) error
	Update(ctx context.Context, o *models.Order) error
}

type PostgresOrderStore struct {
	pool *pgxpool.Pool
}

func NewPostgresOrderStore(pool *pgxpool.Pool) *PostgresOrderStore {
	return &PostgresOrderStore{pool: pool}
}

func (s *PostgresOrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	var linesJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT id, lines, items_total, status, version, created_at
		FROM orders WHERE id = $1`,
		id,
	).Scan(&o.ID, &linesJSON, &o.ItemsTotal, &o.Status, &o.Version, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if len(linesJSON) > 0 {
		if err := json.Unmarshal(linesJSON, &o.Lines); err != nil {
			return nil, fmt.Errorf("unmarshal order lines: %w", err)
		}
	}
	return &o, nil
}

func (s *PostgresOrderStore) Create(ctx context.Context, o *models.Order) error {
	linesJSON, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("marshal order lines: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO orders (id, lines, items_total, status, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID, linesJSON, o.ItemsTotal, o.Status, o.Version, o.CreatedAt,
	)
	return err
}

func (s *PostgresOrderStore) Update(ctx context.Context, o *models.Order) error {
	linesJSON, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("marshal order lines: %w", err)
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE orders SET
			lines = $1,
			items_total = $2,
			status = $3,
			version = version + 1,
			updated_at = now()
		WHERE id = $4 AND version = $5`,
		linesJSON, o.ItemsTotal, o.Status, o.ID, o.Version,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Row is gone or a concurrent writer already bumped the version.
		if _, getErr := s.Get(ctx, o.ID); errors.Is(getErr, ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return ErrVersionConflict
	}
	o.Version++
	return nil
}

// MemoryOrderStore is an in-memory OrderStore with the same version
// semantics as the postgres one, for tests.
type MemoryOrderStore struct {
	mu     sync.Mutex
	orders map[string]*models.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: make(map[string]*models.Order)}
}

func (s *MemoryOrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (s *MemoryOrderStore) Create(ctx context.Context, o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; ok {
		return fmt.Errorf("order %s already exists", o.ID)
	}
	s.orders[o.ID] = cloneOrder(o)
	return nil
}

func (s *MemoryOrderStore) Update(ctx context.Context, o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.orders[o.ID]
	if !ok {
		return ErrOrderNotFound
	}
	if cur.Version != o.Version {
		return ErrVersionConflict
	}
	o.Version++
	s.orders[o.ID] = cloneOrder(o)
	return nil
}

// Len reports how many orders are stored.
func (s *MemoryOrderStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func cloneOrder(o *models.Order) *models.Order {
	c := *o
	c.Lines = append([]models.OrderLine(nil), o.Lines...)
	return &c
}
