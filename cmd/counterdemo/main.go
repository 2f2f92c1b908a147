// Command counterdemo is a terminal front-end for the counter view model.
// It renders the current state, forwards every replacement into the UI
// loop, and drives the view model exclusively through its action handle.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidroman0O/vessel-go/counter"
)

// stateMsg carries a state replacement from the observer callback into the
// bubbletea update loop.
type stateMsg counter.State

type model struct {
	actions  counter.Actions
	state    counter.State
	entering bool
	input    string
	note     string
}

// dispatch wraps an action call in a command so it runs off the event
// loop goroutine. The observer forwards every replacement through
// Program.Send, and the loop is the only receiver of that channel; a
// publish from inside Update would block Send forever.
func dispatch(action func()) tea.Cmd {
	return func() tea.Msg {
		action()
		return nil
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = counter.State(msg)
		return m, nil
	case tea.KeyMsg:
		if m.entering {
			return m.updateEntry(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "i":
			return m, dispatch(func() { m.actions.Increment() })
		case "b":
			return m, dispatch(func() { m.actions.IncrementBatch() })
		case "r":
			return m, dispatch(func() { m.actions.Reset() })
		case "s":
			m.entering = true
			m.input = ""
			m.note = ""
		}
	}
	return m, nil
}

// updateEntry handles the set-count entry mode. Parsing happens here, in
// the presentation layer: a value that is not a number never reaches the
// view model. Negative numbers are passed through so the view model's own
// error message can be seen.
func (m model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(m.input)
		m.entering = false
		m.input = ""
		value, err := strconv.Atoi(raw)
		if err != nil {
			m.note = fmt.Sprintf("%q is not a number", raw)
			return m, nil
		}
		return m, dispatch(func() { m.actions.SetCount(value) })
	case "esc":
		m.entering = false
		m.input = ""
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '-') {
			m.input += s
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("\n  counter\n\n")
	fmt.Fprintf(&b, "  count:   %d\n", m.state.Count)
	fmt.Fprintf(&b, "  status:  %s\n", m.state.Message)
	if m.state.Loading {
		b.WriteString("  working...\n")
	} else {
		b.WriteString("\n")
	}
	if m.entering {
		fmt.Fprintf(&b, "\n  set count to: %s_\n", m.input)
	} else if m.note != "" {
		fmt.Fprintf(&b, "\n  %s\n", m.note)
	}
	b.WriteString("\n  i increment, b +10, r reset, s set count, q quit\n")
	return b.String()
}

func main() {
	configPath := flag.String("config", "", "optional YAML file overriding the action delays")
	flag.Parse()

	cfg := counter.DefaultConfig()
	if *configPath != "" {
		loaded, err := counter.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "counterdemo: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	vm := counter.NewViewModelWithConfig(cfg)
	defer vm.Dispose()

	p := tea.NewProgram(model{
		actions: vm.Actions(),
		state:   vm.CurrentState(),
	})

	stop := vm.Observe(func(s counter.State) {
		p.Send(stateMsg(s))
	})
	defer stop()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "counterdemo: %v\n", err)
		os.Exit(1)
	}
}
