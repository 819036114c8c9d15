package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pndiaye/xaalis/internal/record"
)

type repairState int

const (
	repairStateConfirm repairState = iota
	repairStateRunning
	repairStateDone
)

// RepairModel re-runs extraction over stored aggregator records and
// fixes amounts captured before the decimal handling was corrected.
type RepairModel struct {
	CommonModel
	recordService *record.Service

	state  repairState
	form   *huh.Form
	result *record.RepairResult
	err    error

	formConfirm bool
}

func NewRepairModel(recSvc *record.Service) RepairModel {
	m := RepairModel{recordService: recSvc}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Re-extract amounts for all aggregator records?").
				Description("Records whose stored amount no longer matches a fresh extraction will be updated.").
				Value(&m.formConfirm),
		),
	).WithWidth(60).WithShowHelp(false)

	return m
}

func (m RepairModel) Title() string { return "Repair" }
func (m RepairModel) ShortHelp() string {
	switch m.state {
	case repairStateConfirm:
		return "Confirm | Esc: back"
	case repairStateRunning:
		return "Running..."
	default:
		return "Esc: back"
	}
}

func (m RepairModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m RepairModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	switch msg := msg.(type) {
	case repairDoneMsg:
		m.state = repairStateDone
		m.result = msg.result
		m.err = msg.err
		return m, nil
	}

	if m.state != repairStateConfirm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.form.GetBool("confirm") {
		return m, Back
	}

	m.state = repairStateRunning
	return m, m.repairCmd()
}

func (m RepairModel) View() string {
	style := lipgloss.NewStyle().Padding(1, 2)

	switch m.state {
	case repairStateRunning:
		return style.Render("Repairing records...")
	case repairStateDone:
		if m.err != nil {
			return style.Render(fmt.Sprintf("Repair failed: %v", m.err))
		}

		return style.Render(fmt.Sprintf(
			"Repair complete\n\nScanned: %d\nUpdated: %d",
			m.result.Scanned, m.result.Updated,
		))
	}

	return style.Render("Repair Records\n\n" + m.form.View())
}

// Messages

type repairDoneMsg struct {
	result *record.RepairResult
	err    error
}

func (m RepairModel) repairCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.recordService.Repair(ctx)
		return repairDoneMsg{result: result, err: err}
	}
}
