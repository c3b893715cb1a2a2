package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/amansinghakash/legacy-battery/internal/domain"
)

// SQLiteRepository persists the catalog in a sqlite database. Features,
// specs and applications are stored as JSON columns since they are only
// ever read back whole.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the database at dbPath.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps writes serialized and makes :memory:
	// databases work; each pooled connection would otherwise get its own.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// RunMigrations applies the schema migrations found at migrationsPath.
func (r *SQLiteRepository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Seed inserts products into an empty catalog. A non-empty catalog is left
// untouched so restarts are idempotent.
func (r *SQLiteRepository) Seed(ctx context.Context, products []domain.Product) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `
		INSERT INTO products (
			id, name, category, capacity, voltage, price, original_price,
			description, features, specs, applications, in_stock, is_new, discount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	for _, p := range products {
		features, err := json.Marshal(p.Features)
		if err != nil {
			return fmt.Errorf("failed to marshal features for %s: %w", p.ID, err)
		}
		specs, err := json.Marshal(p.Specs)
		if err != nil {
			return fmt.Errorf("failed to marshal specs for %s: %w", p.ID, err)
		}
		applications, err := json.Marshal(p.Applications)
		if err != nil {
			return fmt.Errorf("failed to marshal applications for %s: %w", p.ID, err)
		}

		_, err = r.db.ExecContext(ctx, query,
			p.ID, p.Name, p.Category.String(), p.Capacity, p.Voltage,
			p.Price, p.OriginalPrice, p.Description,
			string(features), string(specs), string(applications),
			p.InStock, p.IsNew, p.Discount,
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	return nil
}

func (r *SQLiteRepository) GetAllProducts(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT id, name, category, capacity, voltage, price, original_price,
		       description, features, specs, applications, in_stock, is_new, discount
		FROM products
		ORDER BY rowid
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (r *SQLiteRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT id, name, category, capacity, voltage, price, original_price,
		       description, features, specs, applications, in_stock, is_new, discount
		FROM products
		WHERE id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	defer rows.Close()

	var product *domain.Product
	for rows.Next() {
		product, err = scanProduct(rows)
		if err != nil {
			return nil, err
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanProduct(rows *sql.Rows) (*domain.Product, error) {
	p := &domain.Product{}
	var category, features, specs, applications string

	err := rows.Scan(
		&p.ID,
		&p.Name,
		&category,
		&p.Capacity,
		&p.Voltage,
		&p.Price,
		&p.OriginalPrice,
		&p.Description,
		&features,
		&specs,
		&applications,
		&p.InStock,
		&p.IsNew,
		&p.Discount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	p.Category = domain.ProductCategory(category)
	if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
		return nil, fmt.Errorf("failed to unmarshal features for %s: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(specs), &p.Specs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal specs for %s: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(applications), &p.Applications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal applications for %s: %w", p.ID, err)
	}

	return p, nil
}
