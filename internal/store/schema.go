package store

import (
	"fmt"
	"strings"
)

type kind int

const (
	kindInt kind = iota
	kindReal
	kindText
	kindBool // stored as INTEGER 0/1 on both drivers
	kindJSON // composite value stored as serialized JSON text
)

type column struct {
	name string
	kind kind
}

// table describes one relational collection: the column list drives the
// DDL, the bool/JSON round-tripping on scan, and filter-value coercion.
type table struct {
	name     string
	stringID bool // id is TEXT (payment methods, purchase receipts)
	columns  []column
}

func (t table) kindOf(col string) (kind, bool) {
	for _, c := range t.columns {
		if c.name == col {
			return c.kind, true
		}
	}
	return kindText, false
}

// tables lists every collection the relational backend serves. Column
// names match the JSON field names of the flat-file backend exactly so the
// same filter maps work against either; identifiers are quoted everywhere
// to keep the camelCase names intact on both sqlite and Postgres.
var tables = map[string]table{
	"products": {name: "products", columns: []column{
		{"id", kindInt}, {"title", kindText}, {"description", kindText},
		{"brand", kindText}, {"model", kindText}, {"condition", kindText},
		{"price", kindReal}, {"currency", kindText}, {"installments", kindJSON},
		{"availableQuantity", kindInt}, {"soldQuantity", kindInt},
		{"categories", kindJSON}, {"sellerId", kindInt},
		{"paymentMethodIds", kindJSON}, {"attributes", kindJSON},
		{"variants", kindJSON}, {"createdAt", kindText}, {"updatedAt", kindText},
	}},
	"categories": {name: "categories", columns: []column{
		{"id", kindInt}, {"name", kindText}, {"path", kindJSON},
		{"createdAt", kindText}, {"updatedAt", kindText},
	}},
	"sellers": {name: "sellers", columns: []column{
		{"id", kindInt}, {"name", kindText}, {"reputation", kindText},
		{"level", kindInt}, {"salesCount", kindInt}, {"isOfficialStore", kindBool},
		{"createdAt", kindText}, {"updatedAt", kindText},
	}},
	"images": {name: "images", columns: []column{
		{"id", kindInt}, {"productId", kindInt}, {"url", kindText},
		{"alt", kindText}, {"order", kindInt}, {"isMain", kindBool},
		{"createdAt", kindText}, {"updatedAt", kindText},
	}},
	"priceHistory": {name: "priceHistory", columns: []column{
		{"id", kindInt}, {"productId", kindInt}, {"price", kindReal},
		{"currency", kindText}, {"date", kindText}, {"type", kindText},
		{"createdAt", kindText}, {"updatedAt", kindText},
	}},
	"paymentMethods": {name: "paymentMethods", stringID: true, columns: []column{
		{"id", kindText}, {"name", kindText}, {"type", kindText},
		{"category", kindText}, {"icon", kindText}, {"enabled", kindBool},
		{"priority", kindInt}, {"createdAt", kindText}, {"updatedAt", kindText},
	}},
	"comments": {name: "comments", columns: []column{
		{"id", kindInt}, {"productId", kindInt}, {"userName", kindText},
		{"rating", kindInt}, {"comment", kindText}, {"date", kindText},
		{"createdAt", kindText}, {"updatedAt", kindText},
	}},
	"purchases": {name: "purchases", stringID: true, columns: []column{
		{"id", kindText}, {"productId", kindInt}, {"quantity", kindInt},
		{"unitPrice", kindReal}, {"total", kindReal}, {"date", kindText},
		{"createdAt", kindText}, {"updatedAt", kindText},
	}},
}

func quoteIdent(name string) string {
	return `"` + name + `"`
}

func (t table) ddl() string {
	var cols []string
	for _, c := range t.columns {
		typ := "TEXT"
		switch c.kind {
		case kindInt, kindBool:
			typ = "INTEGER"
		case kindReal:
			typ = "REAL"
		}
		def := quoteIdent(c.name) + " " + typ
		if c.name == "id" {
			def += " PRIMARY KEY"
		}
		cols = append(cols, def)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n);",
		quoteIdent(t.name), strings.Join(cols, ",\n  "))
}
