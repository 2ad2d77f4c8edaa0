package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/terraincognita07/eczema-tracker/internal/models"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

func RunStatusCommand(documents services.DocumentReader, now time.Time, location *time.Location, stdout io.Writer) error {
	progress := services.BuildProgress(documents.LoadDocument(), now, location)

	if progress.StartDate == nil {
		fmt.Fprintln(stdout, "Protocol not started. Set a start date to begin day 1.")
		fmt.Fprintf(stdout, "Logged days: %d/%d\n", progress.CompletedDays, models.LastProtocolDay)
		return nil
	}

	fmt.Fprintf(stdout, "Protocol day %d of %d (%s)\n", progress.CurrentDay, models.LastProtocolDay, progress.Protocol.Phase)
	fmt.Fprintf(stdout, "Started: %s (%d hours ago)\n", *progress.StartDate, progress.HoursOnProtocol)
	fmt.Fprintf(stdout, "Logged days: %d/%d\n", progress.CompletedDays, models.LastProtocolDay)
	if progress.AverageItch != nil {
		fmt.Fprintf(stdout, "Average itch: %.1f\n", *progress.AverageItch)
	}
	if progress.AverageCompliance != nil {
		fmt.Fprintf(stdout, "Average compliance: %.0f%%\n", *progress.AverageCompliance)
	}
	fmt.Fprintf(stdout, "Expected today: %s\n", progress.Protocol.Expected)
	return nil
}
