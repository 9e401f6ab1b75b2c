package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gtdialog/gtdialog/internal/domain"
)

// Styler renders help and error text in the theme loaded by Init.
type Styler struct {
	enabled bool
	info    lipgloss.Style
	muted   lipgloss.Style
	header  lipgloss.Style
	err     lipgloss.Style
}

// NewStyler captures the current theme. Call it after Init.
func NewStyler() *Styler {
	return newStyler(Enabled(), GetColors())
}

func newStyler(enabled bool, c ColorConfig) *Styler {
	return &Styler{
		enabled: enabled,
		info:    makeStyle(c.Info),
		muted:   makeStyle(c.Muted),
		header:  makeStyle(c.Header).Bold(true),
		err:     makeStyle(c.Error),
	}
}

func (s *Styler) Enabled() bool { return s.enabled }

func (s *Styler) Info(text string) string { return s.render(s.info, text) }
func (s *Styler) Muted(text string) string { return s.render(s.muted, text) }
func (s *Styler) Header(text string) string { return s.render(s.header, text) }
func (s *Styler) Error(text string) string { return s.render(s.err, text) }

func (s *Styler) render(st lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return st.Render(text)
}

// NopStyler leaves text unchanged.
type NopStyler struct{}

func (NopStyler) Enabled() bool { return false }
func (NopStyler) Info(text string) string { return text }
func (NopStyler) Muted(text string) string { return text }
func (NopStyler) Header(text string) string { return text }
func (NopStyler) Error(text string) string { return text }

var (
	_ domain.Styler = (*Styler)(nil)
	_ domain.Styler = NopStyler{}
)
