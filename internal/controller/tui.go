package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI implements UI using Bubble Tea. Output that fits the terminal is printed
// directly; longer output opens a scrollable pager.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayBaseline shows the active statements table.
func (t *TUI) DisplayBaseline(ctx context.Context, baseline *m.Baseline) error {
	return t.show(ctx, renderBaseline(baseline))
}

// DisplayExceptionRegions shows the regions of every statement.
func (t *TUI) DisplayExceptionRegions(ctx context.Context, baseline *m.Baseline, regions map[int]m.ExceptionRegions) error {
	return t.show(ctx, renderExceptionRegions(baseline, regions))
}

// DisplayUpdates shows the update records, the new ledger and its diff.
func (t *TUI) DisplayUpdates(ctx context.Context, result m.UpdateResult, ledgerDiff string) error {
	return t.show(ctx, renderUpdates(result, ledgerDiff))
}

// DisplayLedger shows the persisted ledger.
func (t *TUI) DisplayLedger(ctx context.Context, ledger m.Ledger) error {
	return t.show(ctx, renderLedger(ledger))
}

// DisplayJournal shows the applied edits.
func (t *TUI) DisplayJournal(ctx context.Context, records []m.EditRecord) error {
	return t.show(ctx, renderJournal(records))
}

func (t *TUI) show(ctx context.Context, sections []section) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := styledContent(sections)
	model := newPagerModel(content)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func styledContent(sections []section) string {
	var b strings.Builder

	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(sec.title))
		b.WriteString("\n\n")
		b.WriteString(sec.body)
	}

	return b.String()
}

// pagerModel is the Bubble Tea model scrolling over rendered sections.
type pagerModel struct {
	content  string
	viewport viewport.Model
	height   int
	width    int
	ready    bool
	quitting bool
}

func newPagerModel(content string) pagerModel {
	return pagerModel{content: content}
}

func (pm pagerModel) resize(width, height int) pagerModel {
	pm.width = width
	pm.height = height

	if !pm.ready {
		pm.viewport = viewport.New(width, max(height-1, 1))
		pm.ready = true
	} else {
		pm.viewport.Width = width
		pm.viewport.Height = max(height-1, 1)
	}

	pm.viewport.SetContent(pm.content)

	return pm
}

func (pm pagerModel) needsPagination() bool {
	if pm.height <= 0 {
		return false
	}

	return strings.Count(pm.content, "\n")+1 > pm.height
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	if !pm.ready {
		return pm.content
	}

	footer := footerStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", pm.viewport.ScrollPercent()*100))

	return pm.viewport.View() + "\n" + footer
}
