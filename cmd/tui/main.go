package main

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/pndiaye/xaalis/cmd/tui/internal/view"
	"github.com/pndiaye/xaalis/internal/alias"
	aliasStore "github.com/pndiaye/xaalis/internal/alias/store"
	"github.com/pndiaye/xaalis/internal/config"
	"github.com/pndiaye/xaalis/internal/database"
	"github.com/pndiaye/xaalis/internal/engine"
	"github.com/pndiaye/xaalis/internal/record"
	recordStore "github.com/pndiaye/xaalis/internal/record/store"
)

type model struct {
	recordService *record.Service
	aliasService  *alias.Service
	retention     time.Duration

	currentView View

	inboxView  view.InboxModel
	trashView  view.TrashModel
	repairView view.RepairModel
}

type View int

const (
	ViewMenu   View = 0
	ViewInbox  View = 1
	ViewTrash  View = 2
	ViewRepair View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	aliasSvc := alias.NewService(aliasStore.New(db))
	recSvc := record.NewService(
		recordStore.New(db),
		engine.New(),
		aliasSvc,
		cfg.Engine.DuplicateWindow,
	)

	return model{
		recordService: recSvc,
		aliasService:  aliasSvc,
		retention:     cfg.Trash.Retention,
		currentView:   ViewMenu,
		inboxView:     view.NewInboxModel(recSvc, aliasSvc),
		trashView:     view.NewTrashModel(recSvc, cfg.Trash.Retention),
		repairView:    view.NewRepairModel(recSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewInbox
				m.inboxView = view.NewInboxModel(m.recordService, m.aliasService)

				return m, m.inboxView.Init()
			case "2":
				m.currentView = ViewTrash
				m.trashView = view.NewTrashModel(m.recordService, m.retention)

				return m, m.trashView.Init()
			case "3":
				m.currentView = ViewRepair
				m.repairView = view.NewRepairModel(m.recordService)

				return m, m.repairView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewInbox:
		var newModel tea.Model
		newModel, cmd = m.inboxView.Update(msg)
		m.inboxView = newModel.(view.InboxModel)
	case ViewTrash:
		var newModel tea.Model
		newModel, cmd = m.trashView.Update(msg)
		m.trashView = newModel.(view.TrashModel)
	case ViewRepair:
		var newModel tea.Model
		newModel, cmd = m.repairView.Update(msg)
		m.repairView = newModel.(view.RepairModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Xaalis TUI\n\n" +
				"1. Inbox\n" +
				"2. Trash\n" +
				"3. Repair Amounts\n\n" +
				"q. Quit",
		)
	case ViewInbox:
		return m.inboxView.View()
	case ViewTrash:
		return m.trashView.View()
	case ViewRepair:
		return m.repairView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
