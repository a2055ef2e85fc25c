package dashboard

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	pageTemplates *template.Template
	templatesOnce sync.Once
	errTemplates  error
)

func getTemplates() (*template.Template, error) {
	templatesOnce.Do(func() {
		var parseErr error

		pageTemplates, parseErr = template.New("").ParseFS(templateFS, "templates/*.html")
		if parseErr != nil {
			errTemplates = fmt.Errorf("parsing templates: %w", parseErr)
		}
	})

	return pageTemplates, errTemplates
}

// Renderable is the interface chart components implement.
type Renderable interface {
	Render(w io.Writer) error
}

// Card is one headline number shown above the charts.
type Card struct {
	Label string
	Value string
}

// Section is one chart section of the page.
type Section struct {
	Title    string
	Subtitle string
	Chart    Renderable
}

// Page is a complete dashboard page.
type Page struct {
	Title       string
	Description string
	Theme       Theme
	Cards       []Card
	Sections    []Section
}

// NewPage creates a dashboard page with the given heading.
func NewPage(title, description string, theme Theme) *Page {
	return &Page{
		Title:       title,
		Description: description,
		Theme:       theme,
	}
}

// Add appends sections to the page.
func (p *Page) Add(sections ...Section) {
	p.Sections = append(p.Sections, sections...)
}

type sectionData struct {
	Title    string
	Subtitle string
	Chart    template.HTML
}

type pageData struct {
	Title       string
	Description string
	Theme       ThemeConfig
	Cards       []Card
	Sections    []sectionData
}

// Render writes the page as a self-contained HTML document.
func (p *Page) Render(w io.Writer) error {
	tmpl, err := getTemplates()
	if err != nil {
		return err
	}

	sections := make([]sectionData, 0, len(p.Sections))

	for _, section := range p.Sections {
		chartHTML, chartErr := renderChart(section.Chart)
		if chartErr != nil {
			return fmt.Errorf("render section %q: %w", section.Title, chartErr)
		}

		sections = append(sections, sectionData{
			Title:    section.Title,
			Subtitle: section.Subtitle,
			Chart:    template.HTML(chartHTML),
		})
	}

	data := pageData{
		Title:       p.Title,
		Description: p.Description,
		Theme:       ConfigFor(p.Theme),
		Cards:       p.Cards,
		Sections:    sections,
	}

	execErr := tmpl.ExecuteTemplate(w, "page.html", data)
	if execErr != nil {
		return fmt.Errorf("executing page template: %w", execErr)
	}

	return nil
}

// renderChart renders an echarts chart and strips it down to the embeddable
// div and script. Echarts emits a full standalone HTML page; only the chart
// container is wanted inside a section.
func renderChart(chart Renderable) (string, error) {
	if chart == nil {
		return "", nil
	}

	var buf bytes.Buffer

	err := chart.Render(&buf)
	if err != nil {
		return "", fmt.Errorf("rendering chart: %w", err)
	}

	return extractChartContent(buf.String()), nil
}

func extractChartContent(html string) string {
	trimmed := strings.TrimSpace(html)
	if !strings.HasPrefix(trimmed, "<!DOCTYPE") && !strings.HasPrefix(trimmed, "<html") {
		return html
	}

	start := strings.Index(html, `<div class="container">`)
	if start == -1 {
		return html
	}

	end := strings.Index(html, `</body>`)
	if end == -1 {
		return html
	}

	content := html[start:end]
	content = strings.ReplaceAll(content, `class="container"`, `class="chart-box"`)

	return content
}
