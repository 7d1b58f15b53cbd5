package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/janwedde/product-widget/internal/review"
	"github.com/janwedde/product-widget/internal/tabs"
	"github.com/janwedde/product-widget/internal/widget"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer turns widget snapshots into HTML pages.
type Renderer struct {
	tmpl     *template.Template
	markdown goldmark.Markdown
	ugc      *bluemonday.Policy
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("widget").Funcs(template.FuncMap{
		"ratings": func() []int { return []int{5, 4, 3, 2, 1} },
	}).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{
		tmpl:     tmpl,
		markdown: goldmark.New(),
		ugc:      newDescriptionPolicy(),
	}, nil
}

func newDescriptionPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	return policy
}

type VariantSwatch struct {
	Index    int
	Color    string
	Selected bool
}

type ReviewItem struct {
	Name           string
	Rating         int
	Text           string
	Recommendation string
}

// Page is everything the page template needs.
type Page struct {
	Title       string
	Description template.HTML
	AltText     string
	Link        string
	Image       string
	InStock     bool
	OnSale      bool
	SaleMessage string
	Variants    []VariantSwatch
	CartCount   int

	Details        tabs.DetailsView
	ReviewsTabs    []string
	ReviewsTab     string
	Reviews        []ReviewItem
	NoReviews      string
	ShowReviewForm bool

	Errors []string
	Form   review.Fields
}

// Build derives a Page from a snapshot. Description markdown is rendered and
// sanitised. Review fields are kept verbatim and escaped by the template.
func (r *Renderer) Build(s widget.Snapshot) (Page, error) {
	desc, err := r.renderMarkdown(s.Description)
	if err != nil {
		return Page{}, err
	}

	p := Page{
		Title:          s.Title,
		Description:    desc,
		AltText:        s.AltText,
		Link:           s.Link,
		Image:          s.Image,
		InStock:        s.InStock,
		OnSale:         s.OnSale,
		SaleMessage:    s.SaleMessage,
		CartCount:      len(s.Cart),
		Details:        s.Details,
		ReviewsTabs:    s.Reviews.Tabs,
		ReviewsTab:     s.Reviews.Selected,
		ShowReviewForm: s.Reviews.ShowForm,
		Errors:         s.ReviewErrors,
		Form:           s.Form,
	}
	for i, v := range s.Variants {
		p.Variants = append(p.Variants, VariantSwatch{Index: i, Color: v.Color, Selected: i == s.Selected})
	}
	if s.Reviews.Empty {
		p.NoReviews = tabs.NoReviewsMessage
	}
	for _, rv := range s.Reviews.Reviews {
		p.Reviews = append(p.Reviews, ReviewItem{
			Name:           rv.ReviewerName,
			Rating:         rv.Rating,
			Text:           rv.ReviewText,
			Recommendation: string(rv.Recommendation),
		})
	}
	return p, nil
}

func (r *Renderer) renderMarkdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render description: %w", err)
	}
	return template.HTML(r.ugc.SanitizeBytes(buf.Bytes())), nil
}

// Render writes the full page for s.
func (r *Renderer) Render(w io.Writer, s widget.Snapshot) error {
	page, err := r.Build(s)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", page); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}
