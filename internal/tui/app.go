package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CompProgTools/Algoview/internal/config"
	"github.com/CompProgTools/Algoview/internal/input"
	"github.com/CompProgTools/Algoview/internal/playback"
	"github.com/CompProgTools/Algoview/internal/search"
	"github.com/CompProgTools/Algoview/internal/telemetry"
	"github.com/CompProgTools/Algoview/internal/viz"
)

type Options struct {
	// Kind, Sequence and Target seed the first visualizer. The other
	// algorithm starts from its classic preset.
	Kind     search.Kind
	Sequence []int
	Target   int
	Theme    string
	Interval time.Duration
	// OpenVisualizer skips the catalog screen.
	OpenVisualizer bool
	Scheduler      playback.Scheduler
	Logger         *slog.Logger
}

type screen int

const (
	screenMenu screen = iota
	screenVisualizer
)

type editField int

const (
	editNone editField = iota
	editTarget
	editSequence
)

type snapshotMsg playback.Snapshot

type model struct {
	screen screen

	cursor    int
	filter    textinput.Model
	filtering bool
	category  int
	notice    string

	kind    search.Kind
	seqs    map[search.Kind][]int
	targets map[search.Kind]int
	trace   search.Trace
	ctrl    *playback.Controller
	updates chan playback.Snapshot

	editing  editField
	input    textinput.Model
	inputErr string

	renderer *viz.Renderer
	keys     keyMap
	help     help.Model
	logger   *slog.Logger

	width  int
	height int
}

func New(opts Options) model {
	if opts.Scheduler == nil {
		opts.Scheduler = playback.NewTickerScheduler()
	}
	if opts.Logger == nil {
		opts.Logger = telemetry.Discard()
	}

	updates := make(chan playback.Snapshot, 16)
	ctrl := playback.New(opts.Scheduler,
		playback.WithInterval(opts.Interval),
		playback.WithLogger(opts.Logger),
		playback.WithObserver(func(s playback.Snapshot) {
			select {
			case updates <- s:
			default:
			}
		}),
	)

	m := model{
		screen:   screenMenu,
		seqs:     make(map[search.Kind][]int),
		targets:  make(map[search.Kind]int),
		ctrl:     ctrl,
		updates:  updates,
		filter:   textinput.New(),
		input:    textinput.New(),
		renderer: viz.NewRenderer(viz.GetTheme(opts.Theme)),
		keys:     defaultKeys(),
		help:     help.New(),
		logger:   opts.Logger,
		width:    80,
		height:   24,
	}
	m.filter.Placeholder = "Search algorithms..."
	m.filter.Prompt = "/ "

	for _, k := range search.Kinds() {
		p := config.GetPreset(k.String(), "classic")
		m.seqs[k] = input.Prepare(k, p.Sequence)
		m.targets[k] = p.Target
	}
	if opts.Sequence != nil {
		m.seqs[opts.Kind] = input.Prepare(opts.Kind, opts.Sequence)
		m.targets[opts.Kind] = opts.Target
	}

	m.kind = opts.Kind
	m.regenerate()
	if opts.OpenVisualizer {
		m.screen = screenVisualizer
	}
	return m
}

func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return waitForSnapshot(m.updates) }

func waitForSnapshot(ch <-chan playback.Snapshot) tea.Cmd {
	return func() tea.Msg { return snapshotMsg(<-ch) }
}

// regenerate rebuilds the trace from the current inputs and resets
// playback onto it.
func (m *model) regenerate() {
	seq := input.Prepare(m.kind, m.seqs[m.kind])
	m.seqs[m.kind] = seq
	m.trace = m.kind.Generate(seq, m.targets[m.kind])
	m.ctrl.Reset(m.trace)
	m.logger.Debug("trace generated", "algorithm", m.kind.String(), "steps", m.trace.Len())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case snapshotMsg:
		return m, waitForSnapshot(m.updates)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.ctrl.Pause()
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.menuKey(msg)
		case screenVisualizer:
			return m.visualizerKey(msg)
		}
	}
	return m, nil
}

func (m model) entries() []search.Algorithm {
	return search.FilterCatalog(m.filter.Value(), m.categoryName())
}

// categoryName is the selected entry of search.Categories; index 0 is "All".
func (m model) categoryName() string {
	return search.Categories()[m.category]
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.filtering {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.filtering = false
			m.filter.Blur()
			m.cursor = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	entries := m.entries()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Category):
		m.category = (m.category + 1) % len(search.Categories())
		m.cursor = 0
		m.notice = ""
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if len(entries) == 0 {
			return m, nil
		}
		alg := entries[m.cursor]
		k, ok := alg.Kind()
		if !ok {
			m.notice = alg.Name + " is coming soon"
			return m, nil
		}
		m.notice = ""
		m.kind = k
		m.regenerate()
		m.screen = screenVisualizer
	}
	return m, nil
}

func (m model) visualizerKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing != editNone {
		return m.editKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Pause()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.ctrl.Pause()
		m.screen = screenMenu
	case key.Matches(msg, m.keys.Play):
		m.ctrl.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.regenerate()
	case key.Matches(msg, m.keys.Switch):
		m.kind = (m.kind + 1) % search.Kind(len(search.Kinds()))
		m.regenerate()
	case key.Matches(msg, m.keys.Theme):
		m.renderer.SetTheme(m.renderer.Theme().Next())
	case key.Matches(msg, m.keys.Target):
		return m.startEdit(editTarget, fmt.Sprint(m.targets[m.kind]))
	case key.Matches(msg, m.keys.Sequence):
		return m.startEdit(editSequence, input.Format(m.seqs[m.kind]))
	}
	return m, nil
}

func (m model) startEdit(field editField, value string) (model, tea.Cmd) {
	m.ctrl.Pause()
	m.editing = field
	m.inputErr = ""
	m.input.SetValue(value)
	m.input.CursorEnd()
	if field == editTarget {
		m.input.Prompt = "Target: "
	} else {
		m.input.Prompt = "Array (comma-separated): "
	}
	return m, m.input.Focus()
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = editNone
		m.inputErr = ""
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		return m.applyEdit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) applyEdit() (model, tea.Cmd) {
	switch m.editing {
	case editTarget:
		t, err := input.ParseTarget(m.input.Value())
		if err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.targets[m.kind] = t
	case editSequence:
		m.seqs[m.kind] = input.ParseSequence(m.input.Value())
	}
	m.editing = editNone
	m.inputErr = ""
	m.input.Blur()
	m.regenerate()
	return m, nil
}

func (m model) View() string {
	switch m.screen {
	case screenVisualizer:
		return m.viewVisualizer()
	default:
		return m.viewMenu()
	}
}

func (m model) viewMenu() string {
	r := m.renderer
	var b strings.Builder

	b.WriteString("\n  " + r.Title("algoview") + "  " + r.KeyHint("step-by-step algorithm visualizer") + "\n\n")
	b.WriteString("  " + m.filter.View() + "\n")
	b.WriteString("  " + r.KeyHint("category: "+m.categoryName()) + "\n\n")

	entries := m.entries()
	if len(entries) == 0 {
		b.WriteString("  " + r.KeyHint("no algorithms match") + "\n")
	}
	for i, a := range entries {
		prefix := "  "
		if i == m.cursor {
			prefix = "▸ "
		}
		status := ""
		if !a.Implemented {
			status = r.KeyHint(" (coming soon)")
		}
		line := fmt.Sprintf("%s%-22s %-15s %s", prefix, a.Name, a.Category, a.Description)
		if i == m.cursor {
			line = r.Title(line)
		}
		b.WriteString("  " + line + status + "\n")
	}

	if m.notice != "" {
		b.WriteString("\n  " + r.KeyHint(m.notice) + "\n")
	}
	b.WriteString("\n  " + m.help.View(menuKeys(m.keys)) + "\n")
	return b.String()
}

func (m model) viewVisualizer() string {
	r := m.renderer
	snap := m.ctrl.Snapshot()
	alg := search.Lookup(m.kind)
	var b strings.Builder

	b.WriteString("\n  " + r.Title(alg.Name+" Visualization") + "  " + r.KeyHint(alg.Description) + "\n")
	b.WriteString("  " + r.Separator(max(m.width-4, 8)) + "\n\n")

	b.WriteString(fmt.Sprintf("  target %d   %s\n\n", m.targets[m.kind], r.Status(snap)))
	b.WriteString(indent(r.Cells(m.trace.Sequence(), snap.Step)) + "\n")

	if p := r.Progress(m.trace.Sequence(), snap.Step, 30); p != "" {
		b.WriteString("  " + p + "\n")
	}
	if snap.Step != nil {
		b.WriteString("\n" + indent(r.Panel(r.Detail(snap.Step))) + "\n")
	} else {
		b.WriteString("\n  " + r.KeyHint("press space to start") + "\n")
	}
	if s := r.Summary(m.trace, snap); s != "" {
		b.WriteString("\n" + indent(r.Panel(s)) + "\n")
	}

	if m.editing != editNone {
		b.WriteString("\n  " + m.input.View() + "\n")
		if m.inputErr != "" {
			b.WriteString("  " + r.KeyHint(m.inputErr) + "\n")
		}
	}

	b.WriteString("\n" + indent(r.Info(alg)) + "\n")
	b.WriteString("\n  " + m.help.View(visualizerKeys(m.keys)) + "\n")
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
