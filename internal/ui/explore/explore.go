// Package explore provides an interactive digit-swap explorer. It shows
// two equal-length numbers as columns of paired digits; toggling a swap
// at a column rebuilds C, D, and their product live, next to the greedy
// extremal pairings for reference.
package explore

import (
	"fmt"
	"strings"

	"github.com/zjrosen/digitduel/internal/bignum"
	"github.com/zjrosen/digitduel/internal/puzzle"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#54A0FF"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#BBBBBB")).Width(12)
	digitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")).Underline(true)
	swappedSty  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8787"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")).Italic(true).MarginTop(1)
	matchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F"))
)

// Model holds the explorer state. C and D start as clones of A and B;
// swap toggles mutate them in place via SwapDigit, so the original inputs
// are never touched.
type Model struct {
	a, b    *bignum.Int
	c, d    *bignum.Int
	product *bignum.Int
	swapped []bool
	cursor  int // display column, 0 = most significant
	width   int
	height  int

	refMax puzzle.Result
	refMin puzzle.Result
}

// New creates an explorer for a and b, which must have equal digit
// counts.
func New(a, b *bignum.Int) (Model, error) {
	refMax, err := puzzle.MaxProduct(a, b)
	if err != nil {
		return Model{}, err
	}
	refMin, err := puzzle.MinProduct(a, b)
	if err != nil {
		return Model{}, err
	}

	c, d := a.Clone(), b.Clone()
	product, err := c.Mul(d)
	if err != nil {
		return Model{}, err
	}

	return Model{
		a:       a,
		b:       b,
		c:       c,
		d:       d,
		product: product,
		swapped: make([]bool, a.Len()),
		refMax:  refMax,
		refMin:  refMin,
	}, nil
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < m.c.Len()-1 {
				m.cursor++
			}
		case " ", "enter":
			return m.toggle(), nil
		case "r":
			return m.reset(), nil
		}
	}
	return m, nil
}

// toggle swaps the digits under the cursor between C and D and
// recomputes the product.
func (m Model) toggle() Model {
	if m.c.Len() == 0 {
		return m
	}
	idx := m.c.Len() - 1 - m.cursor
	if err := m.c.SwapDigit(idx, m.d); err != nil {
		return m
	}
	m.swapped = append([]bool(nil), m.swapped...)
	m.swapped[m.cursor] = !m.swapped[m.cursor]
	if p, err := m.c.Mul(m.d); err == nil {
		m.product = p
	}
	return m
}

// reset restores C and D to the original inputs.
func (m Model) reset() Model {
	m.c = m.a.Clone()
	m.d = m.b.Clone()
	m.swapped = make([]bool, m.a.Len())
	if p, err := m.c.Mul(m.d); err == nil {
		m.product = p
	}
	return m
}

// View renders the explorer.
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("digitduel explorer"))
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("C") + m.digitRow(m.c))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("D") + m.digitRow(m.d))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("") + m.markerRow())
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("C × D") + digitStyle.Render(m.product.String()))
	if m.product.Equal(m.refMax.Product) {
		content.WriteString(matchStyle.Render("  ← greedy max"))
	}
	if m.product.Equal(m.refMin.Product) {
		content.WriteString(matchStyle.Render("  ← greedy min"))
	}
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("greedy max") +
		digitStyle.Render(fmt.Sprintf("%s × %s = %s", m.refMax.C, m.refMax.D, m.refMax.Product)))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("greedy min") +
		digitStyle.Render(fmt.Sprintf("%s × %s = %s", m.refMin.C, m.refMin.D, m.refMin.Product)))
	content.WriteString("\n")
	content.WriteString(hintStyle.Render("←/→ move · space swap · r reset · q quit"))

	if m.width == 0 || m.height == 0 {
		return content.String()
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content.String())
}

// digitRow renders one value's digits most-significant first, with the
// cursor column highlighted and swapped columns tinted.
func (m Model) digitRow(x *bignum.Int) string {
	var row strings.Builder
	n := x.Len()
	for col := 0; col < n; col++ {
		d, err := x.Digit(n - 1 - col)
		if err != nil {
			continue
		}
		cell := fmt.Sprintf("%d ", d)
		switch {
		case col == m.cursor:
			row.WriteString(cursorStyle.Render(cell))
		case m.swapped[col]:
			row.WriteString(swappedSty.Render(cell))
		default:
			row.WriteString(digitStyle.Render(cell))
		}
	}
	return row.String()
}

// markerRow renders the cursor position indicator under the digit rows.
func (m Model) markerRow() string {
	var row strings.Builder
	for col := 0; col < m.c.Len(); col++ {
		if col == m.cursor {
			row.WriteString(cursorStyle.Render("^ "))
		} else {
			row.WriteString("  ")
		}
	}
	return row.String()
}

// SetSize updates the view dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}
