package main

import (
	"time"

	"github.com/terraincognita07/eczema-tracker/internal/cli"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

type exportCmd struct {
	Format string `help:"Export format." enum:"csv,json" default:"csv"`
	Output string `short:"o" help:"Write to this file (or directory ending in /) instead of stdout."`
}

func (cmd *exportCmd) Run(app *appContext) error {
	documents, closeDocuments, err := openDocuments(app.cfg)
	if err != nil {
		return err
	}
	defer closeDocuments()

	return cli.RunExportCommand(services.NewJournalService(documents, nil), cli.ExportOptions{
		Format:   cmd.Format,
		Output:   cmd.Output,
		Now:      time.Now(),
		Location: app.location,
	}, app.stdout)
}

type statusCmd struct{}

func (cmd *statusCmd) Run(app *appContext) error {
	documents, closeDocuments, err := openDocuments(app.cfg)
	if err != nil {
		return err
	}
	defer closeDocuments()

	return cli.RunStatusCommand(services.NewJournalService(documents, nil), time.Now(), app.location, app.stdout)
}
