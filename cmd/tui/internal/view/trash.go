package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pndiaye/xaalis/internal/record"
)

type trashState int

const (
	trashStateBrowse trashState = iota
	trashStateConfirmPurge
)

type TrashModel struct {
	CommonModel
	recordService *record.Service
	retention     time.Duration

	state trashState
	table table.Model
	recs  []*record.Record
	form  *huh.Form

	loading bool
	err     error
	status  string

	formConfirm bool
}

func NewTrashModel(recSvc *record.Service, retention time.Duration) TrashModel {
	columns := []table.Column{
		{Title: "Deleted", Width: 17},
		{Title: "Received", Width: 17},
		{Title: "Provider", Width: 14},
		{Title: "Amount", Width: 14},
		{Title: "Counterparty", Width: 28},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TrashModel{
		recordService: recSvc,
		retention:     retention,
		table:         t,
	}
}

func (m TrashModel) Title() string { return "Trash" }
func (m TrashModel) ShortHelp() string {
	if m.state == trashStateConfirmPurge {
		return "Confirm | Esc: cancel"
	}
	return "Esc: back | enter: restore | x: purge expired | r: refresh"
}

func (m TrashModel) Init() tea.Cmd {
	return m.loadRecsCmd()
}

func (m TrashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trashLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.recs = msg.recs
		m.refreshTable()
		return m, nil

	case trashActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		m.state = trashStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadRecsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case trashStateBrowse:
		return m.updateBrowse(msg)
	case trashStateConfirmPurge:
		return m.updateConfirm(msg)
	}

	return m, nil
}

func (m TrashModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadRecsCmd()
		case "enter":
			return m, m.restoreCmd()
		case "x":
			return m.enterConfirmMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TrashModel) enterConfirmMode() (tea.Model, tea.Cmd) {
	m.formConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Permanently delete records trashed more than %s ago?", m.retention)).
				Value(&m.formConfirm),
		),
	).WithWidth(60).WithShowHelp(false)

	m.state = trashStateConfirmPurge
	m.table.Blur()
	return m, m.form.Init()
}

func (m TrashModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = trashStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.form.GetBool("confirm") {
		m.state = trashStateBrowse
		m.form = nil
		m.table.Focus()
		return m, nil
	}

	return m, m.purgeCmd()
}

func (m TrashModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading trash...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == trashStateConfirmPurge && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(64).
			Render("Purge Trash\n\n" + m.form.View())

		content = lipgloss.JoinVertical(lipgloss.Left, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TrashModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.recs))
	for _, rec := range m.recs {
		deleted := ""
		if rec.DeletedAt != nil {
			deleted = FormatDate(*rec.DeletedAt)
		}

		rows = append(rows, table.Row{
			deleted,
			FormatDate(rec.ReceivedAt),
			rec.Provider.DisplayName(),
			FormatAmount(rec),
			rec.Counterparty,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type trashLoadMsg struct {
	recs []*record.Record
	err  error
}

func (m TrashModel) loadRecsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		recs, err := m.recordService.List(ctx, record.ListFilter{Trashed: true})
		return trashLoadMsg{recs: recs, err: err}
	}
}

type trashActionMsg struct {
	status string
	err    error
}

func (m TrashModel) restoreCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.recs) {
		return nil
	}

	rec := m.recs[idx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.recordService.Restore(ctx, rec.ID); err != nil {
			return trashActionMsg{err: err}
		}

		return trashActionMsg{status: "Record restored"}
	}
}

func (m TrashModel) purgeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		purged, err := m.recordService.PurgeTrash(ctx, m.retention)
		if err != nil {
			return trashActionMsg{err: err}
		}

		return trashActionMsg{status: fmt.Sprintf("Purged %d records", purged)}
	}
}
