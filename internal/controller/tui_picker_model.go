package controller

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/fribbit/swayscale/internal/model"
)

// scaleTolerance mirrors the comparison tolerance used by the domain layer.
const scaleTolerance = 1e-6

// scaleItem is one declared scale option, in declaration order.
type scaleItem struct {
	index  int
	value  float64
	active bool
}

func (i scaleItem) FilterValue() string {
	return m.FormatScale(i.value)
}

// Simple delegate for scale list items.
type scaleDelegate struct{}

func (d scaleDelegate) Height() int  { return 1 }
func (d scaleDelegate) Spacing() int { return 0 }
func (d scaleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d scaleDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	scale, ok := item.(scaleItem)
	if !ok {
		return
	}

	isSelected := index == l.Index()

	var style lipgloss.Style

	if isSelected {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	} else {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	}

	label := fmt.Sprintf("%d. %s", scale.index+1, m.FormatScale(scale.value))
	if scale.active {
		label += " (active)"
	}

	_, _ = fmt.Fprint(w, style.Render(label))
}

// pickerModel presents the declared scale values and records the tagged
// outcome of the user's choice.
type pickerModel struct {
	width     int
	height    int
	scaleList list.Model
	current   float64
	selection m.Selection
}

func newPickerModel(opts m.ScaleOptions, current float64) pickerModel {
	items := make([]list.Item, 0, len(opts.ScaleValues))
	activeIndex := -1

	for i, v := range opts.ScaleValues {
		active := math.Abs(v-current) < scaleTolerance
		if active && activeIndex < 0 {
			activeIndex = i
		}

		items = append(items, scaleItem{index: i, value: v, active: active})
	}

	scaleList := list.New(items, scaleDelegate{}, 40, len(items)+2)
	scaleList.SetShowPagination(false)
	scaleList.SetShowFilter(false)
	scaleList.SetShowHelp(false)
	scaleList.SetShowTitle(false)
	scaleList.SetShowStatusBar(false)

	if activeIndex >= 0 {
		scaleList.Select(activeIndex)
	}

	return pickerModel{
		scaleList: scaleList,
		current:   current,
		selection: m.Aborted(),
	}
}

func (p pickerModel) Init() tea.Cmd {
	return nil
}

func (p pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.scaleList.SetWidth(p.width)

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			p.selection = m.Aborted()

			return p, tea.Quit

		case "enter":
			if item, ok := p.scaleList.SelectedItem().(scaleItem); ok {
				p.selection = m.Selected(item.value)
			}

			return p, tea.Quit

		default:
			// Digit shortcuts pick an option directly; everything else
			// drives the list.
			if choice, err := strconv.Atoi(key); err == nil {
				if choice >= 1 && choice <= len(p.scaleList.Items()) {
					if item, ok := p.scaleList.Items()[choice-1].(scaleItem); ok {
						p.selection = m.Selected(item.value)

						return p, tea.Quit
					}
				}

				return p, nil
			}

			var newList list.Model

			newList, cmd = p.scaleList.Update(msg)
			p.scaleList = newList

			return p, cmd
		}
	}

	return p, cmd
}

func (p pickerModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(1, 0, 0, 2)

	title := titleStyle.Render("swayscale")
	summary := summaryStyle.Render(fmt.Sprintf(
		"Current active scale: %s",
		accentStyle.Render(m.FormatScale(p.current)),
	))
	footer := footerStyle.Render("↑/k up • ↓/j down • 1-9 pick • enter apply • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		p.scaleList.View(),
		footer,
	)
}
