package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pndiaye/xaalis/internal/alias"
	"github.com/pndiaye/xaalis/internal/engine"
	"github.com/pndiaye/xaalis/internal/record"
)

type inboxState int

const (
	inboxStateBrowse inboxState = iota
	inboxStateAlias
)

var providerFilters = []*engine.Provider{
	nil,
	new(engine.ProviderWave),
	new(engine.ProviderWaveBusiness),
	new(engine.ProviderOrangeMoney),
	new(engine.ProviderMixx),
}

type InboxModel struct {
	CommonModel
	recordService *record.Service
	aliasService  *alias.Service

	state inboxState
	table table.Model
	recs  []*record.Record
	form  *huh.Form

	providerFilterIdx int
	unreadOnly        bool

	loading bool
	err     error
	status  string

	// Form bindings
	formPattern string
	formLabel   string
}

func NewInboxModel(recSvc *record.Service, aliasSvc *alias.Service) InboxModel {
	columns := []table.Column{
		{Title: "Received", Width: 17},
		{Title: "Provider", Width: 14},
		{Title: "Dir", Width: 4},
		{Title: "Amount", Width: 14},
		{Title: "Counterparty", Width: 28},
		{Title: "Template", Width: 22},
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

	return InboxModel{
		recordService: recSvc,
		aliasService:  aliasSvc,
		table:         t,
	}
}

func (m InboxModel) Title() string { return "Inbox" }
func (m InboxModel) ShortHelp() string {
	if m.state == inboxStateAlias {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | m: mark read | d: trash | a: alias | p: provider filter | u: unread | r: refresh"
}

func (m InboxModel) Init() tea.Cmd {
	return m.loadRecsCmd()
}

func (m InboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inboxLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.recs = msg.recs
		m.refreshTable()
		return m, nil

	case inboxActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		m.state = inboxStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadRecsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case inboxStateBrowse:
		return m.updateBrowse(msg)
	case inboxStateAlias:
		return m.updateAlias(msg)
	}

	return m, nil
}

func (m InboxModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadRecsCmd()
		case "m":
			return m, m.markReadCmd()
		case "d":
			return m, m.trashCmd()
		case "a":
			return m.enterAliasMode()
		case "p":
			m.providerFilterIdx = (m.providerFilterIdx + 1) % len(providerFilters)
			return m, m.loadRecsCmd()
		case "u":
			m.unreadOnly = !m.unreadOnly
			return m, m.loadRecsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m InboxModel) enterAliasMode() (tea.Model, tea.Cmd) {
	rec := m.selected()
	if rec == nil || rec.Counterparty == "" {
		m.status = "No counterparty to alias"
		return m, nil
	}

	m.formPattern = rec.Counterparty
	m.formLabel = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("pattern").
				Title("Pattern").
				Value(&m.formPattern).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("pattern cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("label").
				Title("Display name").
				Placeholder("Maman").
				Value(&m.formLabel).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("display name cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = inboxStateAlias
	m.table.Blur()
	return m, m.form.Init()
}

func (m InboxModel) updateAlias(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = inboxStateBrowse
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

	return m, m.learnAliasCmd()
}

func (m InboxModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading records...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	providerLabel := "All"
	if p := providerFilters[m.providerFilterIdx]; p != nil {
		providerLabel = p.DisplayName()
	}

	unreadLabel := "All"
	if m.unreadOnly {
		unreadLabel = "Unread"
	}

	header := fmt.Sprintf(
		"Filter: [p] Provider: %s | [u] %s",
		activeStyle(providerLabel),
		activeStyle(unreadLabel),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if rec := m.selected(); rec != nil && m.state == inboxStateBrowse {
		body := lipgloss.NewStyle().Faint(true).Width(90).Render(rec.Body)
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", body)
	}

	if m.state == inboxStateAlias && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Learn Alias\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m InboxModel) selected() *record.Record {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.recs) {
		return nil
	}

	return m.recs[idx]
}

func (m *InboxModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.recs))
	for _, rec := range m.recs {
		counterparty := rec.Counterparty
		if !rec.Read {
			counterparty = "● " + counterparty
		}

		rows = append(rows, table.Row{
			FormatDate(rec.ReceivedAt),
			rec.Provider.DisplayName(),
			FormatDirection(rec),
			FormatAmount(rec),
			counterparty,
			string(rec.Template),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type inboxLoadMsg struct {
	recs []*record.Record
	err  error
}

func (m InboxModel) loadRecsCmd() tea.Cmd {
	filter := record.ListFilter{
		Provider: providerFilters[m.providerFilterIdx],
	}
	if m.unreadOnly {
		filter.Unread = new(true)
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		recs, err := m.recordService.List(ctx, filter)
		return inboxLoadMsg{recs: recs, err: err}
	}
}

type inboxActionMsg struct {
	status string
	err    error
}

func (m InboxModel) markReadCmd() tea.Cmd {
	rec := m.selected()
	if rec == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.recordService.MarkRead(ctx, rec.ID); err != nil {
			return inboxActionMsg{err: err}
		}

		return inboxActionMsg{status: "Marked as read"}
	}
}

func (m InboxModel) trashCmd() tea.Cmd {
	rec := m.selected()
	if rec == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.recordService.Trash(ctx, rec.ID); err != nil {
			return inboxActionMsg{err: err}
		}

		return inboxActionMsg{status: "Moved to trash"}
	}
}

func (m InboxModel) learnAliasCmd() tea.Cmd {
	pattern := m.form.GetString("pattern")
	label := m.form.GetString("label")

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.aliasService.Learn(ctx, pattern, label); err != nil {
			return inboxActionMsg{err: err}
		}

		return inboxActionMsg{status: fmt.Sprintf("Learned alias %q", label)}
	}
}
