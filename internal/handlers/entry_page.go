package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"devdiary/internal/contextutil"
	"devdiary/internal/service"
)

// EntryPageHandler serves an entry as a rendered HTML page.
type EntryPageHandler struct {
	entryService service.EntryService
	markdown     goldmark.Markdown
	template     *template.Template
}

// entryPageData holds template data for rendered entry pages.
type entryPageData struct {
	Title        string
	Date         string
	Mood         *int
	FocusScore   *int
	Project      string
	Tags         []string
	Body         template.HTML
	LookingAhead template.HTML
	Attachments  []attachmentLink
}

type attachmentLink struct {
	Type  string
	Title string
	URL   string
}

var entryPageTemplate = template.Must(template.New("entry").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} &middot; {{.Date}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 820px;
      line-height: 1.7;
      color: #1f2937;
    }
    header { border-bottom: 1px solid #e5e7eb; margin-bottom: 1.5rem; }
    .meta { color: #6b7280; font-size: 0.95rem; }
    .tag {
      display: inline-block;
      background: #eef2ff;
      color: #4338ca;
      border-radius: 999px;
      padding: 0 0.6rem;
      margin-right: 0.3rem;
    }
    pre { background: #f3f4f6; padding: 1rem; overflow-x: auto; border-radius: 8px; }
    section.ahead { border-left: 4px solid #60a5fa; padding-left: 1rem; }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">
      {{.Date}}{{if .Project}} &middot; {{.Project}}{{end}}
      {{if .Mood}} &middot; mood {{.Mood}}/5{{end}}{{if .FocusScore}} &middot; focus {{.FocusScore}}/5{{end}}
    </p>
    {{if .Tags}}<p>{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</p>{{end}}
  </header>
  <article>{{.Body}}</article>
  {{if .LookingAhead}}<section class="ahead"><h2>Looking ahead</h2>{{.LookingAhead}}</section>{{end}}
  {{if .Attachments}}<section><h2>Attachments</h2><ul>
    {{range .Attachments}}<li>{{.Type}}: <a href="{{.URL}}">{{.Title}}</a></li>{{end}}
  </ul></section>{{end}}
</body>
</html>`))

// NewEntryPageHandler creates a new EntryPageHandler.
func NewEntryPageHandler(entryService service.EntryService) *EntryPageHandler {
	return &EntryPageHandler{
		entryService: entryService,
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: entryPageTemplate,
	}
}

// ServeHTTP renders the entry's markdown fields as HTML.
func (h *EntryPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	entry, err := h.entryService.Get(ctx, contextutil.SessionFromContext(ctx), id)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load entry")
		return
	}

	page := entryPageData{
		Title:      "Untitled entry",
		Date:       entry.Date,
		Mood:       entry.Mood,
		FocusScore: entry.FocusScore,
	}
	if entry.Title != nil && *entry.Title != "" {
		page.Title = *entry.Title
	}
	if entry.Project != nil {
		page.Project = entry.Project.Name
	}
	for _, t := range entry.Tags {
		page.Tags = append(page.Tags, t.Name)
	}
	for _, a := range entry.Attachments {
		page.Attachments = append(page.Attachments, attachmentLink{Type: a.Type, Title: a.Title, URL: a.URL})
	}

	if page.Body, err = h.render(entry.Body); err == nil {
		page.LookingAhead, err = h.render(entry.LookingAhead)
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "entry_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render entry")
		return
	}

	var buf bytes.Buffer
	if err := h.template.Execute(&buf, page); err != nil {
		logger.ErrorContext(ctx, "failed to execute entry template", "entry_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render entry")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// render converts markdown to HTML. Raw HTML in the source is not passed through.
func (h *EntryPageHandler) render(src *string) (template.HTML, error) {
	if src == nil || *src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(*src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
