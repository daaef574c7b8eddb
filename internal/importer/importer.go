package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ravio-storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates products. Expected
// columns: key, name, description, price_cents, currency, category, sizes
// (semicolon separated), image. Unknown columns are ignored.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts one product per row, keyed by product key.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, ok := parseRow(record, index)
		if !ok {
			continue
		}
		if _, err := i.productRepo.Upsert(ctx, product); err != nil {
			return imported, fmt.Errorf("upsert %s: %w", product.Key, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (domain.Product, bool) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	key := field("key")
	name := field("name")
	if key == "" || name == "" {
		return domain.Product{}, false
	}

	cents, err := strconv.ParseInt(field("price_cents"), 10, 64)
	if err != nil || cents < 0 {
		return domain.Product{}, false
	}

	currency := field("currency")
	if currency == "" {
		currency = "USD"
	}

	var sizes []string
	for _, s := range strings.Split(field("sizes"), ";") {
		if s = strings.TrimSpace(s); s != "" {
			sizes = append(sizes, s)
		}
	}

	return domain.Product{
		Key:         key,
		Name:        name,
		Description: field("description"),
		PriceCents:  cents,
		Currency:    currency,
		Category:    field("category"),
		Sizes:       sizes,
		Image:       field("image"),
	}, true
}
