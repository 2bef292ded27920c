// Package output печатает ответы агента в stdout в формате "Agent: {response}".
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Printer пишет ответы и служебные списки в один io.Writer.
type Printer struct {
	w       io.Writer
	noColor bool
	wrap    int

	label  lipgloss.Style
	name   lipgloss.Style
	dimmed lipgloss.Style
}

// Option настраивает Printer.
type Option func(*Printer)

// WithNoColor отключает стили целиком.
func WithNoColor(noColor bool) Option {
	return func(p *Printer) {
		p.noColor = noColor
	}
}

// WithWrap включает перенос ответа по словам на ширину n. 0 — без переноса.
func WithWrap(n int) Option {
	return func(p *Printer) {
		if n > 0 {
			p.wrap = n
		}
	}
}

// NewPrinter создаёт Printer. Цветовой профиль определяется по w:
// в пайп или файл escape-последовательности не попадают.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	r := lipgloss.NewRenderer(w)

	p := &Printer{
		w:      w,
		label:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		name:   r.NewStyle().Bold(true),
		dimmed: r.NewStyle().Faint(true),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PresentResponse печатает "Agent: {response}". Текст ответа не меняется,
// если не включён перенос.
func (p *Printer) PresentResponse(response string) error {
	if p.wrap > 0 {
		response = wordwrap.String(response, p.wrap)
	}

	_, err := fmt.Fprintf(p.w, "%s %s\n", p.style(p.label, "Agent:"), response)
	return err
}

// PresentTool печатает одну строку списка бэкендов; выбранный помечен "*".
func (p *Printer) PresentTool(name, baseURL string, selected bool) error {
	marker := " "
	if selected {
		marker = "*"
	}

	_, err := fmt.Fprintf(p.w, "%s %s %s\n", marker, p.style(p.name, fmt.Sprintf("%-10s", name)), p.style(p.dimmed, baseURL))
	return err
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if p.noColor {
		return text
	}
	return s.Render(text)
}
