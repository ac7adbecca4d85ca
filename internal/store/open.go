package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"mercadito/internal/config"
	applog "mercadito/internal/log"
)

// Store wires every collection to one backend. Backends are never mixed
// within a single Store.
type Store struct {
	Products       Collection
	Categories     Collection
	Sellers        Collection
	Images         Collection
	PriceHistory   Collection
	PaymentMethods Collection
	Comments       Collection
	Purchases      Collection

	db *sqlx.DB // nil on the file backend
}

// Open selects the backend from configuration, once at startup.
func Open(cfg config.Config) (*Store, error) {
	switch cfg.Backend {
	case "sql":
		return openSQL(cfg)
	case "file", "":
		return openFile(cfg.DataDir), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func openFile(dir string) *Store {
	col := func(name string) Collection { return newFileCollection(dir, name) }
	return &Store{
		Products:       col("products"),
		Categories:     col("categories"),
		Sellers:        col("sellers"),
		Images:         col("images"),
		PriceHistory:   col("priceHistory"),
		PaymentMethods: col("paymentMethods"),
		Comments:       col("comments"),
		Purchases:      col("purchases"),
	}
}

func openSQL(cfg config.Config) (*Store, error) {
	db, err := sqlx.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := seedIfEmpty(db, cfg.DataDir); err != nil {
		db.Close()
		return nil, err
	}
	col := func(name string) Collection { return newSQLCollection(db, tables[name]) }
	return &Store{
		Products:       col("products"),
		Categories:     col("categories"),
		Sellers:        col("sellers"),
		Images:         col("images"),
		PriceHistory:   col("priceHistory"),
		PaymentMethods: col("paymentMethods"),
		Comments:       col("comments"),
		Purchases:      col("purchases"),
		db:             db,
	}, nil
}

func ensureSchema(db *sqlx.DB) error {
	for _, t := range tables {
		if _, err := db.Exec(t.ddl()); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	return nil
}

// seedIfEmpty loads the JSON seed files into any table that is still
// empty, so both backends expose the same catalog out of the box. Safe to
// run on every startup.
func seedIfEmpty(db *sqlx.DB, dataDir string) error {
	ctx := context.Background()
	for name, t := range tables {
		var n int
		if err := db.Get(&n, "SELECT COUNT(*) FROM "+quoteIdent(t.name)); err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		path := filepath.Join(dataDir, name+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		var recs []Record
		if err := json.Unmarshal(data, &recs); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
		col := newSQLCollection(db, t)
		for _, rec := range recs {
			if _, err := col.Insert(ctx, rec); err != nil {
				return fmt.Errorf("seed %s: %w", name, err)
			}
		}
		if len(recs) > 0 {
			applog.Info(nil, "store.seed", map[string]any{"table": name, "rows": len(recs)})
		}
	}
	return nil
}
