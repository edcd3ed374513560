package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slabwalk/slabwalk/pkg/arena"
	"github.com/slabwalk/slabwalk/pkg/graph"
	"github.com/slabwalk/slabwalk/pkg/graph/traverse"
	graphio "github.com/slabwalk/slabwalk/pkg/io"
)

// errVisitAborted signals that the user quit the interactive traversal.
var errVisitAborted = errors.New("traversal aborted")

// visitEvent describes a node the traversal is waiting on.
type visitEvent struct {
	key      arena.Key
	name     string
	children int
}

// decision is the user's answer for the current node.
type decision struct {
	directive traverse.Directive
	quit      bool
}

// visitReadyMsg is emitted when the traversal reaches the next node.
type visitReadyMsg visitEvent

// visitDoneMsg is emitted when the traversal finishes.
type visitDoneMsg struct {
	err error
}

// visitModel is the bubbletea model for the interactive visit stepper.
// The traversal runs in its own goroutine; the model exchanges one
// event and one decision per node over the two channels.
type visitModel struct {
	events    chan visitEvent
	decisions chan decision
	result    chan error

	current *visitEvent
	log     []string
	visited int
	err     error
	done    bool
}

// maxLogLines bounds the scrollback shown above the prompt.
const maxLogLines = 12

func (m visitModel) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent blocks until the traversal produces the next node or
// finishes.
func (m visitModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return visitDoneMsg{err: <-m.result}
		}
		return visitReadyMsg(ev)
	}
}

func (m visitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case visitReadyMsg:
		ev := visitEvent(msg)
		m.current = &ev
		return m, nil

	case visitDoneMsg:
		m.err = msg.err
		m.done = true
		m.current = nil
		return m, tea.Quit

	case tea.KeyMsg:
		if m.current == nil {
			if s := msg.String(); s == "q" || s == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "enter", "v":
			return m.decide(traverse.VisitChildren)
		case "t":
			return m.decide(traverse.TerminateBranch)
		case "p":
			return m.decide(traverse.Postpone)
		case "q", "ctrl+c":
			m.decisions <- decision{quit: true}
			return m, m.waitForEvent()
		}
	}
	return m, nil
}

// decide answers the traversal for the current node and waits for the
// next one.
func (m visitModel) decide(d traverse.Directive) (tea.Model, tea.Cmd) {
	ev := *m.current
	m.current = nil

	var line string
	switch d {
	case traverse.VisitChildren:
		m.visited++
		line = fmt.Sprintf("%s %s", styleIconSuccess.Render(iconSuccess), ev.name)
	case traverse.TerminateBranch:
		line = fmt.Sprintf("%s %s", styleIconError.Render(iconError), StyleDim.Render(ev.name+" (branch terminated)"))
	case traverse.Postpone:
		line = fmt.Sprintf("%s %s", styleIconWarning.Render(iconWarning), StyleDim.Render(ev.name+" (postponed)"))
	}
	m.log = append(m.log, line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}

	m.decisions <- decision{directive: d}
	return m, m.waitForEvent()
}

func (m visitModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Interactive Visit"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("⏎/v visit children  t terminate branch  p postpone  q quit"))
	b.WriteString("\n\n")

	for _, line := range m.log {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.current != nil {
		b.WriteString("\n")
		b.WriteString(StyleHighlight.Render("▸ " + m.current.name))
		b.WriteString(StyleDim.Render(fmt.Sprintf("  %s · %d child(ren)", m.current.key, m.current.children)))
		b.WriteString("\n")
	} else if !m.done {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("…"))
		b.WriteString("\n")
	}

	return b.String()
}

// runVisitTUI runs a breadth-first traversal where the user picks the
// directive for each node.
func (c *CLI) runVisitTUI(ctx context.Context, lg *loadedGraph, start arena.Key) error {
	m := visitModel{
		events:    make(chan visitEvent),
		decisions: make(chan decision),
		result:    make(chan error, 1),
	}

	go func() {
		visitor := func(g *graph.Graph[*graphio.Node], key arena.Key) (traverse.Directive, error) {
			children := 0
			if n, ok := g.Node(key); ok {
				children = len(n.Children())
			}

			select {
			case m.events <- visitEvent{key: key, name: lg.name(key), children: children}:
			case <-ctx.Done():
				return 0, ctx.Err()
			}

			select {
			case d := <-m.decisions:
				if d.quit {
					return 0, errVisitAborted
				}
				return d.directive, nil
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		}

		err := traverse.BreadthFirst(lg.graph, start, visitor)
		close(m.events)
		m.result <- err
	}()

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	fm, ok := final.(visitModel)
	if !ok {
		return nil
	}
	if !fm.done || errors.Is(fm.err, errVisitAborted) {
		printInfo("Traversal aborted after %d node(s)", fm.visited)
		return nil
	}
	if fm.err != nil {
		return fm.err
	}
	printSuccess("Visited %d node(s)", fm.visited)
	return nil
}
