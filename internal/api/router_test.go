package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-property-analyzer/internal/api/handler"
	"go-property-analyzer/internal/config"
	"go-property-analyzer/internal/model"
	"go-property-analyzer/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingsCSV = `id,suburb,date,price,comments
1,Bondi,2018-12-01,100,Very clean and tidy
2,Manly,2018-12-10,150,Great view
3,Bondi,2019-01-05,200,Hygiene could be better
`

type testServer struct {
	handler http.Handler
	history *store.History
	cfg     config.Config
}

func newTestServer(t *testing.T, withHistory bool) *testServer {
	t.Helper()
	cfg := config.Config{
		Server:    config.ServerConfig{Addr: ":0"},
		Export:    config.ExportConfig{Dir: t.TempDir()},
		Histogram: config.HistogramConfig{Bins: 2},
		Classify:  config.ClassifyConfig{Column: "comments", Keywords: []string{"clean", "tidy", "hygiene", "neat"}},
	}

	ts := &testServer{cfg: cfg}
	var queryLog handler.QueryLog
	if withHistory {
		h, err := store.OpenHistory(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { h.Close() })
		ts.history = h
		queryLog = h
	}

	ts.handler = NewRouter(cfg, store.NewDatasets(), queryLog).Handler()
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func (ts *testServer) load(t *testing.T) {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/datasets?name=listings.csv", listingsCSV)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

type resultEntry struct {
	Name    string        `json:"name"`
	Dataset model.Dataset `json:"dataset"`
}

type resultsResponse struct {
	QueryID string        `json:"queryId"`
	Total   int           `json:"total"`
	Results []resultEntry `json:"results"`
}

func TestDatasetLifecycle(t *testing.T) {
	ts := newTestServer(t, false)
	ts.load(t)

	var summaries []model.DatasetSummary
	decode(t, ts.do(t, http.MethodGet, "/api/v1/datasets", ""), &summaries)
	require.Len(t, summaries, 1)
	assert.Equal(t, "listings.csv", summaries[0].Name)
	assert.Equal(t, 3, summaries[0].Records)
	assert.Equal(t, model.KindDate, summaries[0].Columns[2].Kind)

	rec := ts.do(t, http.MethodGet, "/api/v1/datasets/listings.csv", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, "/api/v1/datasets/listings.csv", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/v1/datasets/listings.csv", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodDelete, "/api/v1/datasets/listings.csv", "").Code)
}

func TestLoadDatasetValidation(t *testing.T) {
	ts := newTestServer(t, false)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/v1/datasets", listingsCSV).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/v1/datasets?name=x&format=xml", listingsCSV).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/v1/datasets?name=x.json", `42`).Code)

	rec := ts.do(t, http.MethodPost, "/api/v1/datasets?name=hosts&format=json", `[{"host":"Ann","since":"2015-03-01"}]`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var summary model.DatasetSummary
	decode(t, rec, &summary)
	assert.Equal(t, 1, summary.Records)
}

func TestSearchEndpoint(t *testing.T) {
	ts := newTestServer(t, true)
	ts.load(t)

	var resp resultsResponse
	decode(t, ts.do(t, http.MethodGet, "/api/v1/search?q=BONDI", ""), &resp)
	assert.NotEmpty(t, resp.QueryID)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "listings.csv", resp.Results[0].Name)

	var empty resultsResponse
	decode(t, ts.do(t, http.MethodGet, "/api/v1/search?q=nowhere", ""), &empty)
	assert.Equal(t, 0, empty.Total)
	require.Len(t, empty.Results, 1)
	assert.Empty(t, empty.Results[0].Dataset.Records)
}

func TestKeywordEndpoint(t *testing.T) {
	ts := newTestServer(t, false)
	ts.load(t)

	var resp resultsResponse
	decode(t, ts.do(t, http.MethodGet, "/api/v1/keyword?keyword=view", ""), &resp)
	assert.Equal(t, 1, resp.Total)
	assert.Empty(t, resp.QueryID)

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/api/v1/keyword", "").Code)
}

func TestClassifyEndpoint(t *testing.T) {
	ts := newTestServer(t, false)
	ts.load(t)

	var resp resultsResponse
	decode(t, ts.do(t, http.MethodPost, "/api/v1/classify", `{}`), &resp)
	assert.Equal(t, 2, resp.Total)

	var counts struct {
		Total   int                 `json:"total"`
		Results model.CountResponse `json:"results"`
	}
	decode(t, ts.do(t, http.MethodPost, "/api/v1/classify", `{"keywords":["view"],"countOnly":true}`), &counts)
	assert.Equal(t, 1, counts.Total)
	assert.Equal(t, []model.DatasetCount{{Dataset: "listings.csv", Count: 1}}, counts.Results.Counts)

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/v1/classify", `{`).Code)
}

func TestHistogramEndpoint(t *testing.T) {
	ts := newTestServer(t, false)
	ts.load(t)

	var hist model.Histogram
	decode(t, ts.do(t, http.MethodGet, "/api/v1/histogram?dataset=listings.csv&column=price", ""), &hist)
	assert.Equal(t, []model.Bin{{Lower: 100, Upper: 150, Count: 1}, {Lower: 150, Upper: 200, Count: 2}}, hist.Bins)

	decode(t, ts.do(t, http.MethodGet, "/api/v1/histogram?dataset=listings.csv&column=price&bins=5&categoryColumn=suburb&categoryValue=Bondi", ""), &hist)
	assert.Equal(t, 2, hist.Total())

	tests := []struct {
		name string
		path string
		want int
	}{
		{"missing params", "/api/v1/histogram?dataset=listings.csv", http.StatusBadRequest},
		{"bad bins", "/api/v1/histogram?dataset=listings.csv&column=price&bins=x", http.StatusBadRequest},
		{"zero bins", "/api/v1/histogram?dataset=listings.csv&column=price&bins=0", http.StatusBadRequest},
		{"text column", "/api/v1/histogram?dataset=listings.csv&column=suburb", http.StatusBadRequest},
		{"unknown dataset", "/api/v1/histogram?dataset=nope&column=price", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ts.do(t, http.MethodGet, tt.path, "").Code)
		})
	}
}

func TestReportEndpoint(t *testing.T) {
	ts := newTestServer(t, true)
	ts.load(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/reports",
		`{"dataset":"listings.csv","startDate":"2018-12-01","endDate":"2018-12-31","categoryColumn":"suburb","categoryValue":"Bondi"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result struct {
		QueryID string        `json:"queryId"`
		Dataset model.Dataset `json:"dataset"`
	}
	decode(t, rec, &result)
	assert.Equal(t, "listings.csv report", result.Dataset.Name)
	require.Len(t, result.Dataset.Records, 1)

	var run model.QueryRun
	decode(t, ts.do(t, http.MethodGet, "/api/v1/queries/"+result.QueryID, ""), &run)
	assert.Equal(t, model.OpReport, run.Operation)
	assert.Equal(t, 1, run.ResultCount)

	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodPost, "/api/v1/reports", `{"dataset":"nope"}`).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/v1/reports", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/v1/reports",
		`{"dataset":"listings.csv","categoryColumn":"room_type","categoryValue":"x"}`).Code)
}

func TestExportEndpoint(t *testing.T) {
	ts := newTestServer(t, false)
	ts.load(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/exports", `{"dataset":"listings.csv","format":"csv"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var result model.ExportResult
	decode(t, rec, &result)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.RecordCount)

	download := ts.do(t, http.MethodGet, result.DownloadURL, "")
	require.Equal(t, http.StatusOK, download.Code)
	assert.Equal(t, "text/csv", download.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(download.Body.String(), "id,suburb,date,price,comments\n"))

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/v1/exports", `{"dataset":"listings.csv","format":"xlsx"}`).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodPost, "/api/v1/exports", `{"dataset":"nope"}`).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/v1/exports/nope/file.csv", "").Code)
}

func TestQueryHistoryEndpoints(t *testing.T) {
	ts := newTestServer(t, true)
	ts.load(t)

	ts.do(t, http.MethodGet, "/api/v1/search?q=bondi", "")
	ts.do(t, http.MethodGet, "/api/v1/histogram?dataset=listings.csv&column=suburb", "")

	rec := ts.do(t, http.MethodGet, "/api/v1/queries", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []model.QueryRun
	decode(t, rec, &runs)
	require.Len(t, runs, 2)
	assert.Equal(t, "2", rec.Header().Get("X-Total-Count"))

	ops := map[string]string{}
	for _, run := range runs {
		ops[run.Operation] = run.Status
	}
	assert.Equal(t, model.StatusCompleted, ops[model.OpSearch])
	assert.Equal(t, model.StatusFailed, ops[model.OpHistogram])

	decode(t, ts.do(t, http.MethodGet, "/api/v1/queries?limit=1", ""), &runs)
	assert.Len(t, runs, 1)

	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/v1/queries/missing", "").Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/api/v1/queries?limit=many", "").Code)
}

func TestQueryHistoryDisabled(t *testing.T) {
	ts := newTestServer(t, false)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/v1/queries", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/v1/queries/abc", "").Code)
}

func TestSwaggerRoute(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/histogram")
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, false)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/v2/things", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, ts.do(t, http.MethodPut, "/api/v1/search", "").Code)
}
