package web

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jaminalder/xo-tic-tac-toe/internal/app"
	"github.com/jaminalder/xo-tic-tac-toe/internal/domain"
	"github.com/jaminalder/xo-tic-tac-toe/internal/match"
)

type handlers struct {
	svc       *app.Service
	tpl       *templates
	heartbeat time.Duration
}

type cellView struct {
	Pos    int
	Symbol string
	Empty  bool
}

type boardData struct {
	ID     string
	Player string
	Engine string
	Cells  []cellView
	Status string
	Result string
	Over   bool
	Error  string
}

func statusLine(gs app.GameState) string {
	var parts []string
	if gs.LastPlayer > 0 {
		parts = append(parts, fmt.Sprintf("You placed %v at position %d", gs.Match.Player, gs.LastPlayer))
	}
	if gs.LastEngine > 0 {
		parts = append(parts, fmt.Sprintf("AI placed %v at position %d", gs.Match.Engine, gs.LastEngine))
	}
	return strings.Join(parts, ". ")
}

func resultLine(r domain.Result) string {
	switch r {
	case domain.PlayerWins:
		return "Congratulations! You win!"
	case domain.EngineWins:
		return "Game over - AI wins! Better luck next time!"
	case domain.Draw:
		return "It's a draw! Great game! Well played!"
	}
	return ""
}

func (h *handlers) renderBoard(gs app.GameState, errMsg string) []byte {
	res := gs.Result()
	data := boardData{
		ID:     gs.ID,
		Player: gs.Match.Player.String(),
		Engine: gs.Match.Engine.String(),
		Cells:  make([]cellView, 0, 9),
		Status: statusLine(gs),
		Result: resultLine(res),
		Over:   res.Over(),
		Error:  errMsg,
	}
	for i, c := range gs.Match.Game.Board {
		data.Cells = append(data.Cells, cellView{Pos: i + 1, Symbol: c.String(), Empty: c == domain.Empty})
	}
	return renderTemplate(h.tpl.board, "", data)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(renderTemplate(h.tpl.index, "", nil))
}

func parseSymbol(s string) (domain.Cell, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X", "1", "":
		return domain.X, true
	case "O", "2":
		return domain.O, true
	}
	return domain.Empty, false
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	pid := ensurePlayerCookie(w, r)
	_ = r.ParseForm()
	symbol, ok := parseSymbol(r.Form.Get("symbol"))
	if !ok {
		http.Error(w, "symbol must be X or O", http.StatusBadRequest)
		return
	}
	gs, err := h.svc.CreateGame(pid, symbol)
	if err != nil {
		log.Printf("create game failed: %v", err)
		http.Error(w, "failed to create", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ensurePlayerCookie(w, r)
	gs, ok := h.svc.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	data := struct {
		ID        string
		BoardHTML template.HTML
	}{ID: gs.ID}
	data.BoardHTML = template.HTML(h.renderBoard(*gs, ""))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(renderTemplate(h.tpl.game, "", data))
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, app.ErrNotAPlayer):
		return "You are a spectator"
	case errors.Is(err, match.ErrNotYourTurn):
		return "Not your turn"
	case errors.Is(err, domain.ErrOccupied):
		return "That position is already taken! Choose another."
	case errors.Is(err, domain.ErrOutOfBounds):
		return "Please enter a number between 1 and 9."
	case errors.Is(err, match.ErrEnded), errors.Is(err, domain.ErrGameOver):
		return "Game is over"
	}
	return "Invalid move"
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pid := ensurePlayerCookie(w, r)
	_ = r.ParseForm()
	pos, err := strconv.Atoi(strings.TrimSpace(r.Form.Get("pos")))
	if err != nil {
		pos = 0
	}
	gs, err := h.svc.Play(id, pid, pos)
	var errMsg string
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		errMsg = errorMessage(err)
		g, ok := h.svc.Get(id)
		if !ok {
			http.NotFound(w, r)
			return
		}
		gs = g
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.renderBoard(*gs, errMsg))
}

// writeEvent emits one SSE event; every payload line gets its own data field.
func writeEvent(w io.Writer, event string, payload []byte) {
	_, _ = fmt.Fprintf(w, "event: %s\n", event)
	for _, line := range strings.Split(string(payload), "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = io.WriteString(w, "\n")
}

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.svc.Get(id); !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	// non-EventSource requests just get the headers
	if !strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		w.WriteHeader(http.StatusOK)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx := r.Context()
	ch, unsub := h.svc.Subscribe(ctx, id)
	defer unsub()
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	flusher.Flush()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case b, ok := <-ch:
			if !ok {
				return
			}
			writeEvent(w, "board", b)
			flusher.Flush()
		}
	}
}
