package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"prezo/internal/core/domain"
	"prezo/pkg/ui"
)

// studioCmd represents the studio command
var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Interactive video studio",
	Long: `Launch a full-screen session over the global video collection.

Keyboard Shortcuts:
  ↑/k, ↓/j    Move selection
  r           Refresh the list
  d           Delete selected video
  m           Merge all videos
  F           Finish (clear the collection)
  ?           Toggle help
  q, Ctrl+C   Quit`,
	Args: cobra.NoArgs,
	RunE: runStudio,
}

func runStudio(cmd *cobra.Command, args []string) error {
	m := newStudioModel(getContext())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running studio: %w", err)
	}
	return nil
}

type studioKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Delete  key.Binding
	Merge   key.Binding
	Finish  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k studioKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Delete, k.Merge, k.Finish, k.Help, k.Quit}
}

func (k studioKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refresh, k.Delete},
		{k.Merge, k.Finish},
		{k.Help, k.Quit},
	}
}

var studioKeys = studioKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Merge:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "merge")),
	Finish:  key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "finish")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type videosLoadedMsg struct {
	videos []domain.VideoAsset
	err    error
}

type actionDoneMsg struct {
	feedback string
	err      error
}

type studioModel struct {
	ctx     context.Context
	videos  []domain.VideoAsset
	cursor  int
	busy    bool
	status  string
	help    help.Model
	width   int
	height  int
}

func newStudioModel(ctx context.Context) studioModel {
	return studioModel{
		ctx:    ctx,
		busy:   true,
		status: "Loading...",
		help:   help.New(),
	}
}

func (m studioModel) Init() tea.Cmd {
	return m.loadVideos(false)
}

func (m studioModel) loadVideos(bustCache bool) tea.Cmd {
	return func() tea.Msg {
		if bustCache {
			queryCache.Invalidate("videos")
		}
		videos, err := mediaService.ListVideos(m.ctx)
		return videosLoadedMsg{videos: videos, err: err}
	}
}

func (m studioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case videosLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = ui.FormatError(msg.err.Error())
			return m, nil
		}
		m.videos = msg.videos
		if m.cursor >= len(m.videos) {
			m.cursor = len(m.videos) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.status = fmt.Sprintf("%d video(s) in the collection", len(m.videos))
		return m, nil

	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = ui.FormatError(msg.err.Error())
			return m, nil
		}
		m.status = ui.FormatSuccess(msg.feedback)
		m.busy = true
		return m, m.loadVideos(true)

	case tea.KeyMsg:
		if m.busy {
			if key.Matches(msg, studioKeys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, studioKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, studioKeys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, studioKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, studioKeys.Down):
			if m.cursor < len(m.videos)-1 {
				m.cursor++
			}
		case key.Matches(msg, studioKeys.Refresh):
			m.busy = true
			m.status = "Refreshing..."
			return m, m.loadVideos(true)
		case key.Matches(msg, studioKeys.Delete):
			if len(m.videos) == 0 {
				m.status = ui.FormatWarning("Nothing to delete")
				return m, nil
			}
			name := m.videos[m.cursor].Name
			m.busy = true
			m.status = "Deleting " + name + "..."
			return m, func() tea.Msg {
				err := mediaService.DeleteVideo(m.ctx, name)
				return actionDoneMsg{feedback: "Deleted " + name, err: err}
			}
		case key.Matches(msg, studioKeys.Merge):
			if len(m.videos) == 0 {
				m.status = ui.FormatWarning("No videos to merge")
				return m, nil
			}
			m.busy = true
			m.status = "Merging videos..."
			return m, func() tea.Msg {
				result, err := videoService.Merge(m.ctx)
				if err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{feedback: result.Message}
			}
		case key.Matches(msg, studioKeys.Finish):
			m.busy = true
			m.status = "Clearing the collection..."
			return m, func() tea.Msg {
				err := videoService.Finish(m.ctx)
				return actionDoneMsg{feedback: "Video collection cleared", err: err}
			}
		}
	}
	return m, nil
}

func (m studioModel) View() string {
	var b strings.Builder

	b.WriteString(ui.StyleTitle.Render("Video Studio"))
	b.WriteString("\n\n")

	if len(m.videos) == 0 {
		b.WriteString(ui.FormatMuted("The collection is empty. Upload videos with 'prezo videos upload'."))
		b.WriteString("\n")
	} else {
		for i, v := range m.videos {
			line := fmt.Sprintf("%3d. %s", i+1, v.Name)
			if v.Path != "" {
				line += ui.StyleMuted.Render("  " + v.Path)
			}
			if i == m.cursor {
				b.WriteString(lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n\n")
	b.WriteString(m.help.View(studioKeys))
	return b.String()
}
