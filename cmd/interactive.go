package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/j0taaa/tp1-CD/logger"
	"github.com/j0taaa/tp1-CD/node"
)

var (
	clusterSize     int
	clusterAutoJobs bool
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run a whole cluster with an interactive console",
	Long: `Run the printer and N client nodes in one process, with a terminal UI
showing every node's clock, state and logs.

Keyboard shortcuts:
  1-9 - Trigger a print job on that client
  Q   - Quit (stops the whole cluster)

Examples:
  tp1cd interactive --nodes=3
  tp1cd interactive --nodes=5 --auto=false`,
	Run: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().IntVarP(&clusterSize, "nodes", "n", 3, "Number of client nodes to run")
	interactiveCmd.Flags().BoolVar(&clusterAutoJobs, "auto", true, "Generate print jobs automatically")
}

type model struct {
	manager   *node.Manager
	nodes     []*node.Node
	err       error
	logBuffer *logger.LogBuffer
	logScroll int
	width     int
	height    int
	quitting  bool
}

func initialModel(manager *node.Manager) model {
	return model{
		manager:   manager,
		nodes:     manager.GetNodes(),
		logBuffer: logger.GetGlobalLogBuffer(),
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

type tickMsg struct{}

type shutdownCompleteMsg struct {
	err error
}

// shutdownCluster stops all nodes and the printer, then reports back.
func shutdownCluster(manager *node.Manager) tea.Cmd {
	return func() tea.Msg {
		err := manager.StopAll()
		return shutdownCompleteMsg{err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.quitting {
			return m, nil
		}

		switch key := msg.String(); key {
		case "q", "Q", "ctrl+c":
			m.quitting = true
			return m, shutdownCluster(m.manager)

		case "up", "k":
			allEntries := m.logBuffer.GetAll()
			maxScroll := len(allEntries) - logWindow
			if maxScroll < 0 {
				maxScroll = 0
			}
			if m.logScroll < maxScroll {
				m.logScroll++
			}
			return m, nil

		case "down", "j":
			if m.logScroll > 0 {
				m.logScroll--
			}
			return m, nil

		default:
			// Digits trigger a job on that client.
			if len(key) == 1 && key >= "1" && key <= "9" {
				index, _ := strconv.Atoi(key)
				if err := m.manager.TriggerJob(index - 1); err != nil {
					m.err = err
				} else {
					m.err = nil
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.nodes = m.manager.GetNodes()
		return m, tick()

	case shutdownCompleteMsg:
		if msg.err != nil {
			logger.Errorf("error stopping cluster during shutdown: %v", msg.err)
		}
		return m, tea.Quit
	}

	return m, nil
}

const logWindow = 15

func (m model) View() string {
	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		Padding(1, 2)
	s.WriteString(titleStyle.Render("Distributed Printing Cluster"))
	s.WriteString("\n\n")

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n\n")
	}

	s.WriteString(fmt.Sprintf("Printer: %s\n\n", m.manager.PrinterAddr()))

	if len(m.nodes) == 0 {
		s.WriteString("No clients running.\n\n")
	} else {
		s.WriteString("Clients:\n\n")
		for i, n := range m.nodes {
			config := n.GetConfig()
			snap := n.Snapshot()
			s.WriteString(fmt.Sprintf("  [%d]  client %d @ %s  clock=%d  state=%s  deferred=%d\n",
				i+1, config.NodeID, n.Addr(), n.Clock().Peek(), snap.State, snap.Deferred))
		}
		s.WriteString("\n")
	}

	s.WriteString(m.renderLogs())
	s.WriteString("\n\n")

	instructionsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		PaddingTop(1)
	if m.quitting {
		s.WriteString(instructionsStyle.Render("Stopping cluster..."))
	} else {
		s.WriteString(instructionsStyle.Render(
			fmt.Sprintf("Press 1-%d to trigger a print job | ↑/↓/j/k to scroll logs | Q to quit", len(m.nodes))))
	}

	return s.String()
}

// renderLogs draws the bordered log box, newest entries first.
func (m model) renderLogs() string {
	allEntries := m.logBuffer.GetAll()
	totalCount := len(allEntries)

	var logLines []string
	if totalCount == 0 {
		logLines = []string{"(no logs yet)"}
	} else {
		end := totalCount - m.logScroll
		if end < 0 {
			end = 0
		}
		start := end - logWindow
		if start < 0 {
			start = 0
		}
		for i := end - 1; i >= start; i-- {
			logLines = append(logLines, logger.FormatLogEntry(allEntries[i]))
		}
	}

	boxWidth := 100
	if m.width > 0 {
		boxWidth = m.width - 4
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Height(logWindow + 1).
		Width(boxWidth)

	return logStyle.Render("Logs:\n" + strings.Join(logLines, "\n"))
}

func runInteractive(cmd *cobra.Command, args []string) {
	// Logs go to the TUI buffer only; stdout belongs to bubbletea.
	logger.Init(false)
	logger.AddOutput(logger.NewLogBufferWriter(logger.GetGlobalLogBuffer()))

	manager := node.NewManager()
	opts := node.DefaultClusterOptions()
	opts.Size = clusterSize
	opts.AutoJobs = clusterAutoJobs
	if err := manager.StartCluster(opts); err != nil {
		fmt.Printf("Error starting cluster: %v\n", err)
		return
	}

	p := tea.NewProgram(initialModel(manager))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running interactive mode: %v\n", err)
	}
}
