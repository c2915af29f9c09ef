package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/generator"
	"svw.info/nonogram/internal/infrastructure/storage"
	"svw.info/nonogram/internal/ports"
	"svw.info/nonogram/internal/solver"
	"svw.info/nonogram/internal/usecase"
	"svw.info/nonogram/internal/validator"
)

func testServer(t *testing.T) *httptest.Server {
	return testServerWithDefaults(t, ports.SolveOptions{})
}

func testServerWithDefaults(t *testing.T, def ports.SolveOptions) *httptest.Server {
	t.Helper()
	st := storage.NewFS(filepath.Join(t.TempDir(), "levels.json"))
	uc := usecase.NewService(solver.NewBacktracking(), validator.New(), generator.New(), st)
	h := New(uc)
	h.Defaults = def
	mux := http.NewServeMux()
	h.Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path string, body any, out any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func TestSolveEndpoint(t *testing.T) {
	srv := testServer(t)
	var out solveResp
	resp := post(t, srv, "/api/solve", solveReq{
		RowText: []string{"1,1", "4", "1 1 1", "3", "1"},
		ColText: []string{"2", "2,1", "3", "2,1", "1,1"},
	}, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, out.Error)
	assert.Equal(t, "solved", out.Outcome)
	assert.Equal(t, []string{
		".#.#.",
		"####.",
		"#.#.#",
		".###.",
		"....#",
	}, out.Board)
	assert.Greater(t, out.Nodes, 0)
}

func TestSolveEndpointParseError(t *testing.T) {
	srv := testServer(t)
	var out solveResp
	resp := post(t, srv, "/api/solve", solveReq{
		RowText: []string{"1,x"},
		ColText: []string{"1"},
	}, &out)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, out.Error, "invalid token")
}

func TestSolveEndpointStrictMode(t *testing.T) {
	srv := testServer(t)
	var out solveResp
	resp := post(t, srv, "/api/solve", solveReq{
		Rows: [][]int{{5}},
		Cols: [][]int{{}, {}, {}},
		Mode: "strict",
	}, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "unsatisfiable", out.Outcome)
	assert.Zero(t, out.Nodes)
	assert.Empty(t, out.Board)
}

// Configured defaults must reach the engine when the request omits
// budgetMs and mode; request fields still win when present.
func TestSolveUsesConfiguredDefaults(t *testing.T) {
	srv := testServerWithDefaults(t, ports.SolveOptions{Mode: domain.ModeStrict})

	var out solveResp
	post(t, srv, "/api/solve", solveReq{
		Rows: [][]int{{5}},
		Cols: [][]int{{}, {}, {}},
	}, &out)
	assert.Equal(t, "unsatisfiable", out.Outcome)
	assert.Zero(t, out.Nodes, "strict default must fail before the search starts")

	// An explicit mode overrides the default.
	post(t, srv, "/api/solve", solveReq{
		Rows: [][]int{{5}},
		Cols: [][]int{{}, {}, {}},
		Mode: "permissive",
	}, &out)
	assert.Equal(t, "unsatisfiable", out.Outcome)
	assert.Greater(t, out.Nodes, 0, "permissive request must enter the search")
}

func TestSolveUsesConfiguredBudget(t *testing.T) {
	srv := testServerWithDefaults(t, ports.SolveOptions{Budget: time.Nanosecond})

	var out solveResp
	post(t, srv, "/api/solve", solveReq{
		Rows: [][]int{{1}},
		Cols: [][]int{{1}},
	}, &out)
	assert.Equal(t, "timed-out", out.Outcome)

	// An explicit budget overrides the default.
	post(t, srv, "/api/solve", solveReq{
		Rows:     [][]int{{1}},
		Cols:     [][]int{{1}},
		BudgetMs: 5000,
	}, &out)
	assert.Equal(t, "solved", out.Outcome)
	assert.Equal(t, []string{"#"}, out.Board)
}

func TestSolveMethodGuard(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/solve")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestLevelLifecycle(t *testing.T) {
	srv := testServer(t)

	var saved saveResp
	post(t, srv, "/api/levels/save", saveReq{
		Name: "tiny",
		Rows: [][]int{{1}},
		Cols: [][]int{{1}},
	}, &saved)
	require.Empty(t, saved.Error)

	resp, err := http.Get(srv.URL + "/api/levels/list")
	require.NoError(t, err)
	defer resp.Body.Close()
	var list listResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, []string{"tiny"}, list.Names)

	var loaded loadResp
	post(t, srv, "/api/levels/load", loadReq{Name: "tiny"}, &loaded)
	require.Empty(t, loaded.Error)
	assert.Equal(t, [][]int{{1}}, loaded.Level.Rows)

	// Solving by stored name uses the document.
	var out solveResp
	post(t, srv, "/api/solve", solveReq{Level: "tiny"}, &out)
	assert.Equal(t, []string{"#"}, out.Board)

	var del deleteResp
	post(t, srv, "/api/levels/delete", deleteReq{Name: "tiny"}, &del)
	assert.Empty(t, del.Error)

	var missing loadResp
	r2 := post(t, srv, "/api/levels/load", loadReq{Name: "tiny"}, &missing)
	assert.Equal(t, http.StatusNotFound, r2.StatusCode)
}

func TestValidateEndpoint(t *testing.T) {
	srv := testServer(t)
	var out validateResp
	post(t, srv, "/api/validate", validateReq{
		Board: []string{"#.", ".#"},
		Rows:  [][]int{{1}, {1}},
		Cols:  [][]int{{1}, {1}},
	}, &out)
	assert.True(t, out.OK)

	post(t, srv, "/api/validate", validateReq{
		Board: []string{"##", ".#"},
		Rows:  [][]int{{1}, {1}},
		Cols:  [][]int{{1}, {1}},
	}, &out)
	assert.False(t, out.OK)
	assert.NotEmpty(t, out.Conflicts)
}

func TestGenerateEndpoint(t *testing.T) {
	srv := testServer(t)
	var out generateResp
	post(t, srv, "/api/generate", generateReq{Rows: 4, Cols: 6, Seed: 7, Density: 0.4}, &out)
	require.Empty(t, out.Error)
	require.NotNil(t, out.Level)
	assert.Len(t, out.Level.Rows, 4)
	assert.Len(t, out.Level.Cols, 6)
	require.Len(t, out.Picture, 4)
	for _, row := range out.Picture {
		assert.Len(t, row, 6)
	}

	// Same seed, same level.
	var again generateResp
	post(t, srv, "/api/generate", generateReq{Rows: 4, Cols: 6, Seed: 7, Density: 0.4}, &again)
	assert.Equal(t, out.Picture, again.Picture)
}
