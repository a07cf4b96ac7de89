// Package ingest turns CSV and JSON sources into datasets and registers
// them in a session store.
package ingest

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/logger"
	"go-property-analyzer/internal/model"
	"go-property-analyzer/internal/store"
	"go-property-analyzer/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// Format names a source encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// DetectFormat picks the format from a file extension; anything that is
// not .json is read as CSV.
func DetectFormat(pathOrURL string) Format {
	if strings.EqualFold(filepath.Ext(pathOrURL), ".json") {
		return FormatJSON
	}
	return FormatCSV
}

// ParseFormat validates a user-supplied format name. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", apperr.InvalidArgumentf("unknown source format %q", s)
	}
}

// Read parses r in the given format into a dataset called name.
func Read(name string, format Format, r io.Reader) (*model.Dataset, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(name, r)
	default:
		return ReadCSV(name, r)
	}
}

// ReadCSV parses CSV with a header row. Column kinds are inferred from
// the non-empty cells: all numbers gives Number, all ISO dates gives Date,
// anything else Text. Empty cells become Missing. Short rows are padded
// and long rows truncated to the header width.
func ReadCSV(name string, r io.Reader) (*model.Dataset, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err == io.EOF {
		return nil, apperr.InvalidArgumentf("source %s is empty", name)
	}
	if err != nil {
		return nil, apperr.Wrapf(err, "read CSV header of %s", name)
	}
	for i := range headers {
		headers[i] = utils.CleanHeader(headers[i])
	}

	var rows [][]string
	skipped := 0
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			logger.Warnw("skipping malformed CSV row", "source", name, "error", err)
			continue
		}
		rows = append(rows, record)
	}

	ds, err := build(name, headers, rows)
	if err != nil {
		return nil, err
	}
	logger.Infow("CSV ingested", "source", name, "rows", ds.Len(), "columns", len(ds.Columns), "skipped", skipped)
	return ds, nil
}

// ReadJSON parses an array of objects (or a single object). Columns are
// the union of object keys in first-seen order. Scalars are inferred the
// same way as CSV cells; nested values are kept as compact JSON text.
func ReadJSON(name string, r io.Reader) (*model.Dataset, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, apperr.Wrapf(err, "decode JSON %s", name)
	}

	var objects []map[string]string
	var headers []string
	seen := make(map[string]bool)

	readObject := func() error {
		obj := make(map[string]string)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key := utils.CleanHeader(fmt.Sprint(keyTok))
			var raw interface{}
			if err := dec.Decode(&raw); err != nil {
				return err
			}
			if !seen[key] {
				seen[key] = true
				headers = append(headers, key)
			}
			obj[key] = jsonCell(raw)
		}
		// closing '}'
		if _, err := dec.Token(); err != nil {
			return err
		}
		objects = append(objects, obj)
		return nil
	}

	switch tok {
	case json.Delim('['):
		for dec.More() {
			open, err := dec.Token()
			if err != nil {
				return nil, apperr.Wrapf(err, "decode JSON %s", name)
			}
			if open != json.Delim('{') {
				return nil, apperr.InvalidArgumentf("JSON %s: array elements must be objects", name)
			}
			if err := readObject(); err != nil {
				return nil, apperr.Wrapf(err, "decode JSON %s", name)
			}
		}
	case json.Delim('{'):
		if err := readObject(); err != nil {
			return nil, apperr.Wrapf(err, "decode JSON %s", name)
		}
	default:
		return nil, apperr.InvalidArgumentf("JSON %s: unexpected structure", name)
	}

	rows := make([][]string, len(objects))
	for i, obj := range objects {
		row := make([]string, len(headers))
		for j, h := range headers {
			row[j] = obj[h]
		}
		rows[i] = row
	}

	ds, err := build(name, headers, rows)
	if err != nil {
		return nil, err
	}
	logger.Infow("JSON ingested", "source", name, "rows", ds.Len(), "columns", len(ds.Columns))
	return ds, nil
}

func jsonCell(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// build infers column kinds and converts raw cells into a dataset.
func build(name string, headers []string, rows [][]string) (*model.Dataset, error) {
	headers = uniqueHeaders(headers)
	width := len(headers)

	for i, row := range rows {
		if len(row) > width {
			row = row[:width]
		}
		for len(row) < width {
			row = append(row, "")
		}
		for j := range row {
			row[j] = strings.TrimSpace(row[j])
		}
		rows[i] = row
	}

	columns := make([]model.Column, width)
	for j, h := range headers {
		columns[j] = model.Column{Name: h, Kind: inferKind(rows, j)}
	}

	records := make([]model.Record, len(rows))
	for i, row := range rows {
		rec := make(model.Record, width)
		for j, cell := range row {
			rec[j] = toValue(cell, columns[j].Kind)
		}
		records[i] = rec
	}
	return model.NewDataset(name, columns, records)
}

func inferKind(rows [][]string, col int) model.Kind {
	numeric, dates, filled := true, true, 0
	for _, row := range rows {
		cell := row[col]
		if cell == "" {
			continue
		}
		filled++
		if numeric {
			_, numeric = utils.ParseNumber(cell)
		}
		if dates {
			dates = utils.IsISODate(cell)
		}
		if !numeric && !dates {
			return model.KindText
		}
	}
	switch {
	case filled == 0:
		return model.KindText
	case numeric:
		return model.KindNumber
	case dates:
		return model.KindDate
	default:
		return model.KindText
	}
}

func toValue(cell string, kind model.Kind) model.Value {
	if cell == "" {
		return model.Missing()
	}
	switch kind {
	case model.KindNumber:
		f, _ := utils.ParseNumber(cell)
		return model.Number(f)
	case model.KindDate:
		return model.Date(cell)
	default:
		return model.Text(cell)
	}
}

// uniqueHeaders names blank headers column_N and suffixes repeats.
func uniqueHeaders(headers []string) []string {
	out := make([]string, len(headers))
	used := make(map[string]int, len(headers))
	for i, h := range headers {
		if h == "" {
			h = fmt.Sprintf("column_%d", i+1)
		}
		base := h
		for used[h] > 0 {
			used[base]++
			h = fmt.Sprintf("%s_%d", base, used[base])
		}
		used[h]++
		out[i] = h
	}
	return out
}

// LoadFiles reads every source concurrently and returns the datasets in
// argument order. Sources may be local paths or http(s) URLs; each
// dataset is named after the base name of its source.
func LoadFiles(ctx context.Context, sources ...string) ([]*model.Dataset, error) {
	return LoadFilesWithRetry(ctx, DefaultRetryPolicy, sources...)
}

// LoadFilesWithRetry is LoadFiles with an explicit retry policy for URL
// sources.
func LoadFilesWithRetry(ctx context.Context, policy RetryPolicy, sources ...string) ([]*model.Dataset, error) {
	out := make([]*model.Dataset, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			ds, err := loadSource(ctx, src, policy)
			if err != nil {
				return err
			}
			out[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func loadSource(ctx context.Context, src string, policy RetryPolicy) (*model.Dataset, error) {
	var reader io.Reader
	name := filepath.Base(src)

	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		u, err := url.Parse(src)
		if err != nil {
			return nil, apperr.InvalidArgumentf("invalid source URL %q", src)
		}
		body, err := fetch(ctx, src, policy)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		name = path.Base(u.Path)
		reader = body
	} else {
		file, err := os.Open(src)
		if err != nil {
			return nil, apperr.Wrapf(err, "open %s", src)
		}
		defer file.Close()
		reader = file
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Read(name, DetectFormat(src), reader)
}

// Loader reads sources and registers the resulting datasets.
type Loader struct {
	datasets *store.Datasets
	retry    RetryPolicy
}

// NewLoader returns a Loader registering into datasets.
func NewLoader(datasets *store.Datasets) *Loader {
	return &Loader{datasets: datasets, retry: DefaultRetryPolicy}
}

// WithRetry sets the retry policy used for URL sources.
func (l *Loader) WithRetry(policy RetryPolicy) *Loader {
	l.retry = policy
	return l
}

// Load reads all sources and registers them in argument order. Nothing is
// registered if any source fails.
func (l *Loader) Load(ctx context.Context, sources ...string) ([]string, error) {
	sets, err := LoadFilesWithRetry(ctx, l.retry, sources...)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(sets))
	for i, ds := range sets {
		l.datasets.Register(ds)
		names[i] = ds.Name
	}
	logger.Infow("datasets loaded", "names", names)
	return names, nil
}

// LoadReader reads one source from r and registers it under name.
func (l *Loader) LoadReader(name string, format Format, r io.Reader) (*model.Dataset, error) {
	ds, err := Read(name, format, r)
	if err != nil {
		return nil, err
	}
	l.datasets.Register(ds)
	return ds, nil
}
