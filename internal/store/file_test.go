package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeSeed(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

const seedProducts = `[
  {"id": 1, "title": "Game Boy Color", "price": 129.99, "availableQuantity": 5},
  {"id": 2, "title": "NES Console", "price": 199.0, "availableQuantity": 0},
  {"id": 7, "title": "SNES Console", "price": 249.0, "availableQuantity": 3}
]`

func TestFileCollectionMissingFileIsEmpty(t *testing.T) {
	c := newFileCollection(t.TempDir(), "products")
	recs, err := c.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Fatalf("want empty collection, got %d records", len(recs))
	}
}

func TestFileCollectionCorruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "products", `{"not": "an array"`)
	c := newFileCollection(dir, "products")
	recs, err := c.All(context.Background())
	if err != nil {
		t.Fatalf("corrupt file must not error reads: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("want empty collection, got %d records", len(recs))
	}
}

func TestFileCollectionReadsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "products", seedProducts)
	c := newFileCollection(dir, "products")

	first, err := c.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two reads without a write differ:\n%v\n%v", first, second)
	}
}

func TestFileCollectionLooseIDLookup(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "products", seedProducts)
	c := newFileCollection(dir, "products")
	ctx := context.Background()

	byNumber, err := c.Get(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	byString, err := c.Get(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	if byNumber == nil || byString == nil {
		t.Fatal("both lookups must find the record")
	}
	if !reflect.DeepEqual(byNumber, byString) {
		t.Fatalf("numeric and string id lookups disagree: %v vs %v", byNumber, byString)
	}

	missing, err := c.Get(ctx, 999)
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatalf("absent id must yield nil, got %v", missing)
	}
}

func TestFileCollectionFindFilters(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "products", seedProducts)
	c := newFileCollection(dir, "products")
	ctx := context.Background()

	// scalar equality, loosely typed
	got, err := c.Find(ctx, Filters{"availableQuantity": "0"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0]["title"] != "NES Console" {
		t.Fatalf("scalar filter: got %v", got)
	}

	// list membership
	got, err = c.Find(ctx, Filters{"id": []any{1, "7"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("membership filter: want 2, got %d", len(got))
	}

	// empty filter matches everything
	got, err = c.Find(ctx, Filters{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("empty filter: want 3, got %d", len(got))
	}
}

func TestFileCollectionInsertAssignsNextID(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "products", seedProducts)
	c := newFileCollection(dir, "products")
	ctx := context.Background()

	rec, err := c.Insert(ctx, Record{"title": "Philco 1939"})
	if err != nil {
		t.Fatal(err)
	}
	if rec["id"] != int64(8) {
		t.Fatalf("want id 8 (1 + max), got %v", rec["id"])
	}
	if rec["createdAt"] == nil || rec["updatedAt"] == nil {
		t.Fatalf("timestamps not stamped: %v", rec)
	}

	// persisted: a fresh handle sees it
	again := newFileCollection(dir, "products")
	got, err := again.Get(ctx, 8)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got["title"] != "Philco 1939" {
		t.Fatalf("insert not persisted: %v", got)
	}
}

func TestFileCollectionInsertIntoEmptyStartsAtOne(t *testing.T) {
	c := newFileCollection(t.TempDir(), "products")
	rec, err := c.Insert(context.Background(), Record{"title": "first"})
	if err != nil {
		t.Fatal(err)
	}
	if rec["id"] != int64(1) {
		t.Fatalf("want id 1 on empty collection, got %v", rec["id"])
	}
}

func TestFileCollectionUpdateMergesAndPersists(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "products", seedProducts)
	c := newFileCollection(dir, "products")
	ctx := context.Background()

	rec, err := c.Update(ctx, "1", Record{"availableQuantity": 3})
	if err != nil {
		t.Fatal(err)
	}
	if rec["title"] != "Game Boy Color" {
		t.Fatalf("merge lost untouched fields: %v", rec)
	}
	if rec["availableQuantity"] != 3 {
		t.Fatalf("patch not applied: %v", rec)
	}

	if _, err := c.Update(ctx, 999, Record{"title": "x"}); err == nil {
		t.Fatal("update of missing id must fail")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestFileCollectionDelete(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "products", seedProducts)
	c := newFileCollection(dir, "products")
	ctx := context.Background()

	if err := c.Delete(ctx, 2); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, 2); err == nil {
		t.Fatal("second delete must fail with not found")
	}
	recs, _ := c.All(ctx)
	if len(recs) != 2 {
		t.Fatalf("want 2 records after delete, got %d", len(recs))
	}
}

func TestFileCollectionWritesPrettyJSON(t *testing.T) {
	dir := t.TempDir()
	c := newFileCollection(dir, "products")
	if _, err := c.Insert(context.Background(), Record{"title": "x"}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "products.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Fatalf("expected 2-space indented output, got %q", data)
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
}
