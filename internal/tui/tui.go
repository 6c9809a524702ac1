// Copyright 2025 The textkit Authors
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

// Package tui is an interactive diff: two editors and a live comparison below them.
package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/textkit-dev/textkit/diff"
	"github.com/textkit-dev/textkit/internal/render"
	"github.com/textkit-dev/textkit/textdiff"
)

// Recomputation waits until there were no edits for this long.
const debounce = 150 * time.Millisecond

// Options are the initial settings of the comparison.
type Options struct {
	Granularity      textdiff.Granularity
	IgnoreCase       bool
	IgnoreWhitespace bool
	Color            bool
}

type keyMap struct {
	Next             key.Binding
	Granularity      key.Binding
	IgnoreCase       key.Binding
	IgnoreWhitespace key.Binding
	Quit             key.Binding
}

var keys = keyMap{
	Next:             key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch editor")),
	Granularity:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "granularity")),
	IgnoreCase:       key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "ignore case")),
	IgnoreWhitespace: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "ignore whitespace")),
	Quit:             key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

// recomputeMsg is scheduled after every edit. Only the message carrying the latest sequence
// number triggers a recomputation; older ones are dropped.
type recomputeMsg struct {
	seq int
}

// Model is the bubbletea model of the interactive diff.
type Model struct {
	editors [2]textarea.Model
	focus   int
	result  viewport.Model
	r       *render.Renderer
	opts    Options

	seq   int
	parts []textdiff.Part
	stats textdiff.Stats

	width, height int
	ready         bool
}

// New returns a model comparing original and modified. Output is rendered for w.
func New(w io.Writer, original, modified string, opts Options) *Model {
	m := &Model{
		r:    render.New(w, opts.Color),
		opts: opts,
	}
	for i, text := range []string{original, modified} {
		ta := textarea.New()
		ta.CharLimit = 0
		ta.MaxHeight = 0
		ta.ShowLineNumbers = false
		ta.Placeholder = [...]string{"original text", "modified text"}[i]
		ta.SetValue(text)
		m.editors[i] = ta
	}
	m.editors[0].Focus()
	m.result = viewport.New(0, 0)
	m.recompute()
	return m
}

// Run starts the interactive diff on the terminal and blocks until the user quits.
func Run(original, modified string, opts Options) error {
	p := tea.NewProgram(New(os.Stdout, original, modified, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case recomputeMsg:
		if msg.seq == m.seq {
			m.recompute()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.editors[m.focus].Blur()
			m.focus = 1 - m.focus
			return m, m.editors[m.focus].Focus()
		case key.Matches(msg, keys.Granularity):
			m.opts.Granularity = (m.opts.Granularity + 1) % 3
			return m, m.schedule()
		case key.Matches(msg, keys.IgnoreCase):
			m.opts.IgnoreCase = !m.opts.IgnoreCase
			return m, m.schedule()
		case key.Matches(msg, keys.IgnoreWhitespace):
			m.opts.IgnoreWhitespace = !m.opts.IgnoreWhitespace
			return m, m.schedule()
		case msg.String() == "pgup" || msg.String() == "pgdown":
			var cmd tea.Cmd
			m.result, cmd = m.result.Update(msg)
			return m, cmd
		}
	}

	before := m.editors[m.focus].Value()
	var cmd tea.Cmd
	m.editors[m.focus], cmd = m.editors[m.focus].Update(msg)
	if m.editors[m.focus].Value() != before {
		return m, tea.Batch(cmd, m.schedule())
	}
	return m, cmd
}

// schedule starts a new debounce period and returns the command that ends it.
func (m *Model) schedule() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(debounce, func(time.Time) tea.Msg {
		return recomputeMsg{seq: seq}
	})
}

func (m *Model) recompute() {
	var opts []diff.Option
	if m.opts.IgnoreCase {
		opts = append(opts, textdiff.IgnoreCase())
	}
	if m.opts.IgnoreWhitespace {
		opts = append(opts, textdiff.IgnoreWhitespace())
	}
	m.parts = textdiff.Compare(m.editors[0].Value(), m.editors[1].Value(), m.opts.Granularity, opts...)
	m.stats = textdiff.ComputeStats(m.parts, m.opts.Granularity)
	m.result.SetContent(m.r.Inline(m.parts))
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	editorHeight := max(3, (height-4)/2)
	for i := range m.editors {
		m.editors[i].SetWidth(max(10, width/2-1))
		m.editors[i].SetHeight(editorHeight)
	}
	m.result.Width = width
	m.result.Height = max(1, height-editorHeight-3)
	m.ready = true
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

func (m *Model) View() string {
	if !m.ready {
		return "initializing"
	}
	editors := lipgloss.JoinHorizontal(lipgloss.Top, m.editors[0].View(), " ", m.editors[1].View())
	return lipgloss.JoinVertical(lipgloss.Left,
		editors,
		m.status(),
		m.result.View(),
		helpStyle.Render(m.help()),
	)
}

func (m *Model) status() string {
	flags := ""
	if m.opts.IgnoreCase {
		flags += " ignore-case"
	}
	if m.opts.IgnoreWhitespace {
		flags += " ignore-whitespace"
	}
	return statusStyle.Render(m.opts.Granularity.String()+flags) + "  " + m.r.Stats(m.stats)
}

func (m *Model) help() string {
	var s string
	for i, b := range []key.Binding{keys.Next, keys.Granularity, keys.IgnoreCase, keys.IgnoreWhitespace, keys.Quit} {
		if i > 0 {
			s += " • "
		}
		s += fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc)
	}
	return s
}
