package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"svw.info/nonogram/internal/clue"
	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
	"svw.info/nonogram/internal/usecase"
)

// solveOptions starts from the handler's configured defaults; request
// fields override them.
func (h *Handler) solveOptions(budgetMs int64, mode string) ports.SolveOptions {
	opt := h.Defaults
	if budgetMs > 0 {
		opt.Budget = time.Duration(budgetMs) * time.Millisecond
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "strict":
		opt.Mode = domain.ModeStrict
	case "permissive":
		opt.Mode = domain.ModePermissive
	}
	return opt
}

type Handler struct {
	UC *usecase.Service

	// Defaults apply to solve requests that omit budgetMs or mode.
	Defaults ports.SolveOptions
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/levels/save", h.handleSave)
	mux.HandleFunc("/api/levels/load", h.handleLoad)
	mux.HandleFunc("/api/levels/list", h.handleList)
	mux.HandleFunc("/api/levels/delete", h.handleDelete)
}

// renderBoard encodes a board one string per row: '#' filled, '.' empty,
// '?' unknown.
func renderBoard(b *domain.Board) []string {
	out := make([]string, b.Rows)
	for r := 0; r < b.Rows; r++ {
		var sb strings.Builder
		for c := 0; c < b.Cols; c++ {
			switch b.Cells[r][c] {
			case domain.Filled:
				sb.WriteByte('#')
			case domain.Empty:
				sb.WriteByte('.')
			default:
				sb.WriteByte('?')
			}
		}
		out[r] = sb.String()
	}
	return out
}

func parseBoard(rows []string) (*domain.Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty board")
	}
	b := domain.NewBoard(len(rows), len(rows[0]))
	for r, line := range rows {
		if len(line) != b.Cols {
			return nil, fmt.Errorf("row %d: want %d cells, got %d", r, b.Cols, len(line))
		}
		for c := 0; c < b.Cols; c++ {
			switch line[c] {
			case '#':
				b.Cells[r][c] = domain.Filled
			case '.':
				b.Cells[r][c] = domain.Empty
			case '?':
				b.Cells[r][c] = domain.Unknown
			default:
				return nil, fmt.Errorf("row %d: bad cell %q", r, line[c])
			}
		}
	}
	return b, nil
}

// ---- Solve ----

type solveReq struct {
	Level    string   `json:"level,omitempty"` // stored level name
	Rows     [][]int  `json:"rows,omitempty"`  // or inline clues
	Cols     [][]int  `json:"cols,omitempty"`
	RowText  []string `json:"rowText,omitempty"` // or clue text, one line each
	ColText  []string `json:"colText,omitempty"`
	BudgetMs int64    `json:"budgetMs,omitempty"`
	Mode     string   `json:"mode,omitempty"` // permissive|strict
}

type solveResp struct {
	Board      []string `json:"board,omitempty"`
	Outcome    string   `json:"outcome,omitempty"`
	Nodes      int      `json:"nodes"`
	DurationMs int64    `json:"durationMs"`
	Error      string   `json:"error,omitempty"`
}

func (h *Handler) resolveLevel(r *http.Request, req solveReq) (domain.Level, error) {
	if req.Level != "" {
		return h.UC.Load(r.Context(), req.Level)
	}
	if req.RowText != nil || req.ColText != nil {
		rows, err := clue.ParseLines(req.RowText)
		if err != nil {
			return domain.Level{}, fmt.Errorf("row clues: %w", err)
		}
		cols, err := clue.ParseLines(req.ColText)
		if err != nil {
			return domain.Level{}, fmt.Errorf("col clues: %w", err)
		}
		return domain.Level{Rows: rows, Cols: cols}, nil
	}
	if len(req.Rows) == 0 || len(req.Cols) == 0 {
		return domain.Level{}, fmt.Errorf("need a level name or row and column clues")
	}
	return domain.Level{Rows: req.Rows, Cols: req.Cols}, nil
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	level, err := h.resolveLevel(r, req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	opt := h.solveOptions(req.BudgetMs, req.Mode)
	b, st, err := h.UC.Solve(r.Context(), level, opt)
	resp := solveResp{
		Outcome:    st.Outcome.String(),
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	}
	if err != nil {
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}
	resp.Board = renderBoard(b)
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Validate ----

type validateReq struct {
	Board []string `json:"board"`
	Rows  [][]int  `json:"rows"`
	Cols  [][]int  `json:"cols"`
}
type validateResp struct {
	OK        bool             `json:"ok"`
	Conflicts []domain.LineRef `json:"conflicts,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := parseBoard(req.Board)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), b, domain.Level{Rows: req.Rows, Cols: req.Cols})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Generate ----

type generateReq struct {
	Rows    int     `json:"rows"`
	Cols    int     `json:"cols"`
	Seed    int64   `json:"seed,omitempty"`
	Density float64 `json:"density,omitempty"`
	Save    string  `json:"save,omitempty"` // optional level name to persist
}
type generateResp struct {
	Level   *domain.Level `json:"level,omitempty"`
	Picture []string      `json:"picture,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Rows <= 0 || req.Cols <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "rows and cols must be positive"})
		return
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}
	if req.Density == 0 {
		req.Density = 0.5
	}
	level, cells, err := h.UC.Generate(req.Seed, req.Rows, req.Cols, req.Density)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	if req.Save != "" {
		if err := h.UC.Save(r.Context(), req.Save, level); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
			return
		}
	}
	picture := make([]string, len(cells))
	for i, row := range cells {
		var sb strings.Builder
		for _, v := range row {
			if v {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		picture[i] = sb.String()
	}
	_ = json.NewEncoder(w).Encode(generateResp{Level: &level, Picture: picture})
}

// ---- Levels ----

type saveReq struct {
	Name string  `json:"name"`
	Rows [][]int `json:"rows"`
	Cols [][]int `json:"cols"`
}
type saveResp struct {
	Name  string `json:"name,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req saveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON or missing name"})
		return
	}
	if err := h.UC.Save(r.Context(), req.Name, domain.Level{Rows: req.Rows, Cols: req.Cols}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{Name: req.Name})
}

type loadReq struct {
	Name string `json:"name"`
}
type loadResp struct {
	Level *domain.Level `json:"level,omitempty"`
	Error string        `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing name"})
		return
	}
	l, err := h.UC.Load(r.Context(), req.Name)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Level: &l})
}

type listResp struct {
	Names []string `json:"names"`
	Error string   `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	names, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	if names == nil {
		names = []string{}
	}
	_ = json.NewEncoder(w).Encode(listResp{Names: names})
}

type deleteReq struct {
	Name string `json:"name"`
}
type deleteResp struct {
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req deleteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(deleteResp{Error: "invalid JSON or missing name"})
		return
	}
	if err := h.UC.Delete(r.Context(), req.Name); err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(deleteResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(deleteResp{})
}
