// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tui implements the interactive etymology lookup terminal UI.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ianlewis/go-etymology"
	"github.com/ianlewis/go-etymology/markup"
)

const copyFailed = "Failed to copy to clipboard"

// LookupFunc looks up words in order.
type LookupFunc func(ctx context.Context, words []string) []etymology.Result

// CopyFunc copies text to the clipboard.
type CopyFunc func(text string) error

// Options configures the UI.
type Options struct {
	// Lookup looks up the submitted words.
	Lookup LookupFunc

	// Copy copies the results table.
	Copy CopyFunc

	// Terminal renders etymology markup. A default Terminal is used if nil.
	Terminal *markup.Terminal
}

// State is the UI state that is not owned by a component.
type State struct {
	// Results are the results of the last submission.
	Results []etymology.Result

	// Loading is true while a submission is being looked up.
	Loading bool

	// Err is a page-level error message.
	Err string
}

type resultsMsg []etymology.Result

type copiedMsg struct {
	err error
}

type styles struct {
	title    lipgloss.Style
	word     lipgloss.Style
	label    lipgloss.Style
	errorMsg lipgloss.Style
	help     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		word:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		errorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Model is the UI model.
type Model struct {
	ctx context.Context

	input    textarea.Model
	spinner  spinner.Model
	viewport viewport.Model
	styles   styles

	lookup LookupFunc
	copy   CopyFunc
	term   *markup.Terminal

	state State
	width int
}

// New returns a new Model.
func New(ctx context.Context, opts Options) Model {
	input := textarea.New()
	input.Placeholder = "Enter words to look up their etymologies..."
	input.ShowLineNumbers = false
	input.SetHeight(4)
	input.Focus()

	term := opts.Terminal
	if term == nil {
		term = markup.NewTerminal()
	}

	return Model{
		ctx:      ctx,
		input:    input,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport: viewport.New(0, 0),
		styles:   defaultStyles(),
		lookup:   opts.Lookup,
		copy:     opts.Copy,
		term:     term,
	}
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Init implements [tea.Model.Init].
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements [tea.Model.Update].
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(msg.Width)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-m.input.Height()-6, 3)
		m.viewport.SetContent(m.renderResults())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			return m.submit()
		case "ctrl+y":
			return m, m.copyTable()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case resultsMsg:
		m.state.Results = msg
		m.state.Loading = false
		m.viewport.SetContent(m.renderResults())
		m.viewport.GotoTop()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.state.Err = copyFailed
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.state.Loading || m.lookup == nil {
		return m, nil
	}

	words := etymology.Words(m.input.Value())
	if len(words) == 0 {
		return m, nil
	}

	m.state.Loading = true
	m.state.Err = ""

	lookup, ctx := m.lookup, m.ctx
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return resultsMsg(lookup(ctx, words))
		},
	)
}

func (m Model) copyTable() tea.Cmd {
	if len(m.state.Results) == 0 || m.copy == nil {
		return nil
	}

	table := etymology.Table(m.state.Results)
	copyFn := m.copy
	return func() tea.Msg {
		return copiedMsg{err: copyFn(table)}
	}
}

func (m Model) renderResults() string {
	blocks := make([]string, 0, len(m.state.Results))
	for _, r := range m.state.Results {
		word := r.Query()

		lines := []string{
			m.styles.word.Render(word),
			m.styles.label.Render("Stem: " + etymology.Stem(word)),
		}

		switch r := r.(type) {
		case *etymology.Found:
			if r.ExpandedForm != "" {
				lines = append(lines, m.styles.label.Render("Expanded form: "+r.ExpandedForm))
			}
			lines = append(lines, m.wrap(m.term.String(r.Etymology)))
		case *etymology.NotFound:
			lines = append(lines, m.styles.errorMsg.Render(r.Message()))
			if len(r.Suggestions) > 0 {
				lines = append(lines, m.styles.label.Render("Did you mean: "+strings.Join(r.Suggestions, ", ")))
			}
		}

		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) wrap(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(m.width).Render(s)
}

// View implements [tea.Model.View].
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Word Etymology Lookup"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.state.Loading {
		fmt.Fprintf(&b, "%s Looking up...\n", m.spinner.View())
	} else {
		help := "ctrl+s look up etymologies • esc quit"
		if len(m.state.Results) > 0 {
			help = "ctrl+s look up etymologies • ctrl+y copy table • pgup/pgdown scroll • esc quit"
		}
		b.WriteString(m.styles.help.Render(help))
		b.WriteString("\n")
	}

	if m.state.Err != "" {
		b.WriteString(m.styles.errorMsg.Render(m.state.Err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	return b.String()
}

// Run runs the UI until the user quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(
		New(ctx, opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
