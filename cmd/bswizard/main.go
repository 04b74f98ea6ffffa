package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"bswizard/core"
	"bswizard/internal/config"
	"bswizard/internal/database"
	"bswizard/internal/database/repository"
	"bswizard/internal/service"
	"bswizard/screens"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "bswizard",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", "err", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		logger.Fatal("mkdir db dir", "err", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("open db", "err", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("migrate", "err", err)
	}

	profiles, err := service.LoadFormats(cfg.Ingest.FormatsPath)
	if err != nil {
		logger.Fatal("formats", "err", err)
	}

	tz := time.Local
	if cfg.UI.Timezone != "" && cfg.UI.Timezone != "Local" {
		tz, err = time.LoadLocation(cfg.UI.Timezone)
		if err != nil {
			logger.Fatal("timezone", "err", err)
		}
	}

	stmtRepo := repository.NewStatementRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	model := &service.Service{
		DB:           db,
		Statements:   stmtRepo,
		Transactions: txRepo,
		Profiles:     profiles,
		Timezone:     tz,
	}

	browseDir := cfg.Ingest.BrowseDir
	if browseDir == "" {
		browseDir, _ = os.Getwd()
	}

	flow, err := screens.NewStatementsFlow(model, browseDir)
	if err != nil {
		logger.Fatal("statements flow", "err", err)
	}

	shortcuts, err := core.NewShortcutTable([]core.Shortcut{
		{Key: "f2", Label: "Statements", Action: flow.Open},
		{Key: "f3", Label: "Filter"},
		{Key: "f4", Label: "Plot"},
		{Key: "f5", Label: "Export"},
		{Key: "f6", Label: "Search"},
		{Key: "f7", Label: "Go To..."},
		{Key: "f8", Label: "Done", Action: closeTop},
	})
	if err != nil {
		logger.Fatal("shortcuts", "err", err)
	}

	loadData := loadDataCmd(stmtRepo, txRepo)
	program := tea.NewProgram(core.NewModel(shortcuts, loadData), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Fatal("run", "err", err)
	}
}

func closeTop(m *core.Model) tea.Cmd {
	m.CloseTopScreen()
	return nil
}

func loadDataCmd(stmts *repository.StatementRepo, txs *repository.TransactionRepo) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		summaries, err := stmts.ListSummaries(ctx)
		if err != nil {
			return core.DataLoadedMsg{Err: err}
		}
		monthly, err := txs.MonthlyNet(ctx)
		if err != nil {
			return core.DataLoadedMsg{Err: err}
		}
		msg := core.DataLoadedMsg{}
		for _, s := range summaries {
			msg.Statements = append(msg.Statements, core.StatementRow{
				ID:         s.ID,
				Name:       s.Name,
				ImportedOn: s.ImportedAt,
				TxCount:    s.TxCount,
				NetCents:   s.NetCents,
			})
		}
		for _, m := range monthly {
			msg.Monthly = append(msg.Monthly, core.MonthlyPoint{Month: m.Month, NetCents: m.NetCents})
		}
		return msg
	}
}
