package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"mercadito/internal/domain"
)

// sqlCollection serves one collection from a relational table, translating
// the generic filter map into a WHERE clause of equality/IN conjunctions.
type sqlCollection struct {
	db *sqlx.DB
	t  table
}

func newSQLCollection(db *sqlx.DB, t table) *sqlCollection {
	return &sqlCollection{db: db, t: t}
}

// coerceID brings a loosely-typed id into the column's type. A non-numeric
// id against an INTEGER column can never match.
func (c *sqlCollection) coerceID(id any) (any, bool) {
	s := domain.IDString(id)
	if s == "" {
		return nil, false
	}
	if c.t.stringID {
		return s, true
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, false
	}
	return n, true
}

// coerceValue aligns a filter or patch value with its column: composites
// are serialized, bools become 0/1, numeric columns accept string forms.
func (c *sqlCollection) coerceValue(col string, v any) (any, error) {
	k, ok := c.t.kindOf(col)
	if !ok {
		return nil, fmt.Errorf("%s: unknown field %q", c.t.name, col)
	}
	switch k {
	case kindJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(data), nil
	case kindBool:
		switch b := v.(type) {
		case bool:
			if b {
				return int64(1), nil
			}
			return int64(0), nil
		}
		return v, nil
	case kindInt:
		switch n := v.(type) {
		case float64:
			if n == math.Trunc(n) {
				return int64(n), nil
			}
		case string:
			if p, err := strconv.ParseInt(n, 10, 64); err == nil {
				return p, nil
			}
		}
		return v, nil
	case kindReal:
		if s, ok := v.(string); ok {
			if p, err := strconv.ParseFloat(s, 64); err == nil {
				return p, nil
			}
		}
		return v, nil
	}
	return v, nil
}

// decodeRow turns a scanned row back into the JSON-shaped Record the rest
// of the system works with.
func (c *sqlCollection) decodeRow(row map[string]any) Record {
	rec := Record{}
	for col, v := range row {
		if v == nil {
			continue
		}
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		k, _ := c.t.kindOf(col)
		switch k {
		case kindBool:
			switch n := v.(type) {
			case int64:
				v = n != 0
			case bool:
				// already a bool (Postgres)
			}
		case kindJSON:
			if s, ok := v.(string); ok {
				var decoded any
				if err := json.Unmarshal([]byte(s), &decoded); err == nil {
					v = decoded
				}
			}
		}
		rec[col] = v
	}
	return rec
}

func (c *sqlCollection) selectWhere(ctx context.Context, clause string, args ...any) ([]Record, error) {
	q := "SELECT * FROM " + quoteIdent(c.t.name)
	if clause != "" {
		q += " WHERE " + clause
	}
	rows, err := c.db.QueryxContext(ctx, c.db.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		out = append(out, c.decodeRow(row))
	}
	return out, rows.Err()
}

func (c *sqlCollection) All(ctx context.Context) ([]Record, error) {
	return c.selectWhere(ctx, "")
}

func (c *sqlCollection) Get(ctx context.Context, id any) (Record, error) {
	cid, ok := c.coerceID(id)
	if !ok {
		return nil, nil
	}
	recs, err := c.selectWhere(ctx, quoteIdent("id")+" = ?", cid)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0], nil
}

func (c *sqlCollection) Find(ctx context.Context, filters Filters) ([]Record, error) {
	var clauses []string
	var args []any
	for field, want := range filters {
		rv := reflect.ValueOf(want)
		if want != nil && rv.Kind() == reflect.Slice {
			if rv.Len() == 0 {
				// member-of-empty-list matches nothing
				return []Record{}, nil
			}
			marks := make([]string, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				v, err := c.coerceValue(field, rv.Index(i).Interface())
				if err != nil {
					return nil, err
				}
				marks[i] = "?"
				args = append(args, v)
			}
			clauses = append(clauses, quoteIdent(field)+" IN ("+strings.Join(marks, ", ")+")")
			continue
		}
		v, err := c.coerceValue(field, want)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, quoteIdent(field)+" = ?")
		args = append(args, v)
	}
	return c.selectWhere(ctx, strings.Join(clauses, " AND "), args...)
}

func (c *sqlCollection) Insert(ctx context.Context, rec Record) (Record, error) {
	stored := Record{}
	for k, v := range rec {
		stored[k] = v
	}
	if stored["id"] == nil && !c.t.stringID {
		var next int64
		q := "SELECT COALESCE(MAX(" + quoteIdent("id") + "), 0) + 1 FROM " + quoteIdent(c.t.name)
		if err := c.db.GetContext(ctx, &next, q); err != nil {
			return nil, err
		}
		stored["id"] = next
	}
	now := time.Now().UTC().Format(time.RFC3339)
	stored["createdAt"] = now
	stored["updatedAt"] = now

	var cols, marks []string
	var args []any
	for _, col := range c.t.columns {
		v, present := stored[col.name]
		if !present {
			continue
		}
		cv, err := c.coerceValue(col.name, v)
		if err != nil {
			return nil, err
		}
		cols = append(cols, quoteIdent(col.name))
		marks = append(marks, "?")
		args = append(args, cv)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(c.t.name), strings.Join(cols, ", "), strings.Join(marks, ", "))
	if _, err := c.db.ExecContext(ctx, c.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return stored, nil
}

func (c *sqlCollection) Update(ctx context.Context, id any, patch Record) (Record, error) {
	existing, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%s %v: %w", c.t.name, id, ErrNotFound)
	}

	merged := Record{}
	for k, v := range existing {
		merged[k] = v
	}
	var sets []string
	var args []any
	apply := func(col string, v any) error {
		cv, err := c.coerceValue(col, v)
		if err != nil {
			return err
		}
		sets = append(sets, quoteIdent(col)+" = ?")
		args = append(args, cv)
		merged[col] = v
		return nil
	}
	for col, v := range patch {
		if col == "id" {
			continue
		}
		if err := apply(col, v); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if err := apply("updatedAt", now); err != nil {
		return nil, err
	}

	cid, _ := c.coerceID(id)
	args = append(args, cid)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		quoteIdent(c.t.name), strings.Join(sets, ", "), quoteIdent("id"))
	if _, err := c.db.ExecContext(ctx, c.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return merged, nil
}

func (c *sqlCollection) Delete(ctx context.Context, id any) error {
	cid, ok := c.coerceID(id)
	if !ok {
		return fmt.Errorf("%s %v: %w", c.t.name, id, ErrNotFound)
	}
	q := "DELETE FROM " + quoteIdent(c.t.name) + " WHERE " + quoteIdent("id") + " = ?"
	res, err := c.db.ExecContext(ctx, c.db.Rebind(q), cid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s %v: %w", c.t.name, id, ErrNotFound)
	}
	return nil
}
