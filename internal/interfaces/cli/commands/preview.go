package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rulemd/rulemd/internal/app/provider/theme"
	"github.com/rulemd/rulemd/internal/app/service/discover"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/internal/interfaces/cli/output"
	"github.com/rulemd/rulemd/pkg/rulemd"
)

// NewPreviewCommand builds the `preview` command: a Bubble Tea TUI that
// shows the live-rendered document for one or more Markdown files,
// switching files with tab/shift+tab and re-rendering automatically
// whenever the active file changes on disk.
func NewPreviewCommand() *cobra.Command {
	var themeName string

	cmd := &cobra.Command{
		Use:   "preview [files...]",
		Short: "Interactively preview rendered Markdown in the terminal",
		Long: `Launch an interactive terminal preview of one or more rendered Markdown
documents. Switch between files, scroll, and watch the preview update
whenever the active file is saved.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := newPreviewModel(cmd.Context(), args, themeName)
			if err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			defer model.close()

			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "default", "ANSI theme to render with")
	return cmd
}

type previewModel struct {
	ctx context.Context

	files   []string
	current int

	theme    value.Theme
	renderer *output.TermRenderer

	content string
	status  string

	width, height int
	scroll        int

	watcher *fsnotify.Watcher
}

func newPreviewModel(ctx context.Context, args []string, themeName string) (*previewModel, error) {
	files, err := discover.Files(afero.NewOsFs(), args, discover.Options{})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no markdown files found")
	}

	manager := theme.NewManager()
	themeResult := manager.CreateTheme(ctx, value.ThemeConfig{ThemeName: themeName})
	if themeResult.IsErr() {
		return nil, themeResult.Error()
	}
	th := themeResult.Unwrap()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting file watcher: %w", err)
	}
	for _, f := range files {
		_ = watcher.Add(f)
	}

	m := &previewModel{
		ctx:      ctx,
		files:    files,
		theme:    th,
		renderer: output.NewTermRenderer(th, 0),
		watcher:  watcher,
		status:   "ready",
	}
	m.reload()
	return m, nil
}

func (m *previewModel) close() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}

func (m *previewModel) reload() {
	path := m.files[m.current]
	data, err := os.ReadFile(path)
	if err != nil {
		m.content = fmt.Sprintf("error reading %s: %v", path, err)
		return
	}
	nodes, err := rulemd.Parse(string(data), nil)
	if err != nil {
		m.content = fmt.Sprintf("parse error in %s: %v", path, err)
		return
	}
	m.content = m.renderer.Render(nodes)
	m.scroll = 0
}

func (m *previewModel) Init() tea.Cmd {
	return waitForWatcherEvent(m.watcher)
}

type watcherEventMsg struct{ event fsnotify.Event }
type watcherClosedMsg struct{}

func waitForWatcherEvent(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-w.Events
		if !ok {
			return watcherClosedMsg{}
		}
		return watcherEventMsg{event: event}
	}
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case watcherEventMsg:
		if msg.event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
			m.status = fmt.Sprintf("reloaded at %s", time.Now().Format("15:04:05"))
			m.reload()
		}
		return m, waitForWatcherEvent(m.watcher)

	case watcherClosedMsg:
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.current = (m.current + 1) % len(m.files)
			m.reload()
			return m, nil
		case "shift+tab":
			m.current = (m.current - 1 + len(m.files)) % len(m.files)
			m.reload()
			return m, nil
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
			return m, nil
		case "down", "j":
			m.scroll++
			return m, nil
		case "r":
			m.reload()
			return m, nil
		}
	}
	return m, nil
}

func (m *previewModel) View() string {
	if m.width == 0 {
		return "initializing..."
	}

	header := m.theme.Accent().Render(fmt.Sprintf("%s  (%d/%d)", m.files[m.current], m.current+1, len(m.files)))
	footer := lipgloss.NewStyle().Faint(true).Render(
		fmt.Sprintf("tab: next file • ↑/↓: scroll • r: reload • q: quit  [%s]", m.status))

	lines := strings.Split(m.content, "\n")
	bodyHeight := m.height - 4
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	if m.scroll > len(lines) {
		m.scroll = len(lines)
	}
	end := m.scroll + bodyHeight
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[m.scroll:end], "\n")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}
