package web

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/google/uuid"
)

type templates struct {
	base  *template.Template
	game  *template.Template
	board *template.Template
	index *template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"rows": func(cells []cellView) [][]cellView {
			return [][]cellView{cells[0:3], cells[3:6], cells[6:9]}
		},
	}
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>XO Game</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org/dist/ext/sse.js"></script>
</head><body>{{template "content" .}}</body></html>`))
	index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>XO Game</h1>
<p>Battle against an unbeatable AI powered by the Minimax algorithm!</p>
<form action="/game" method="post">
  <label><input type="radio" name="symbol" value="X" checked> X (you go first)</label>
  <label><input type="radio" name="symbol" value="O"> O (AI goes first)</label>
  <button>Start</button>
</form>`))
	game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<h1>XO Game</h1>
<div hx-ext="sse" hx-sse="connect:/game/{{.ID}}/events">
  <div hx-sse="swap:board">{{.BoardHTML}}</div>
</div>
<form action="/" method="get"><button>Play again</button></form>`))
	// Standalone board template used for fragment rendering
	board := template.Must(template.New("board_only").Funcs(funcs()).Parse(boardTemplate))
	return &templates{base: base, game: game, board: board, index: index}
}

func renderTemplate(t *template.Template, name string, data any) []byte {
	var buf bytes.Buffer
	if name == "" {
		_ = t.Execute(&buf, data)
	} else {
		_ = t.ExecuteTemplate(&buf, name, data)
	}
	return buf.Bytes()
}

const boardTemplate = `
<div id="board">
  <p class="symbols">You: {{.Player}} | AI: {{.Engine}}</p>
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{end}}
  {{if .Status}}
  <div class="status">{{.Status}}</div>
  {{end}}
  {{range rows .Cells}}
  <div class="row">
    {{range .}}
      {{if .Empty}}
      <form hx-post="/game/{{$.ID}}/play" hx-target="#board" hx-swap="outerHTML" method="post">
        <input type="hidden" name="pos" value="{{.Pos}}">
        <button type="submit"{{if $.Over}} disabled{{end}}>{{.Pos}}</button>
      </form>
      {{else}}
      <button class="mark" disabled>{{.Symbol}}</button>
      {{end}}
    {{end}}
  </div>
  {{end}}
  {{if .Result}}
  <div class="result">{{.Result}}</div>
  {{end}}
</div>
`

// Helper to set cookie
func ensurePlayerCookie(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie("player_id"); err == nil && c.Value != "" {
		return c.Value
	}
	// Generate UUIDv4 for player ID
	v := uuid.NewString()
	http.SetCookie(w, &http.Cookie{Name: "player_id", Value: v, Path: "/"})
	return v
}
