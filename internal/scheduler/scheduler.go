package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tanq16/sheetgrab/internal/downloaders/attachment"
	"github.com/tanq16/sheetgrab/internal/output"
	"github.com/tanq16/sheetgrab/internal/utils"
)

// downloaderRegistry maps job types to their respective downloader implementations
var downloaderRegistry = map[string]utils.Downloader{
	"attachment": attachment.New(),
}

type Result struct {
	Job     utils.SheetJob
	Err     error
	Skipped bool
}

// Run processes jobs one after another and reports each outcome.
// A job without a matching link is skipped, not failed.
func Run(ctx context.Context, jobs []utils.SheetJob) ([]Result, error) {
	return runWith(ctx, jobs, downloaderRegistry)
}

func runWith(ctx context.Context, jobs []utils.SheetJob, registry map[string]utils.Downloader) ([]Result, error) {
	var results []Result
	failed := 0
	for _, job := range jobs {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		if job.JobType == "" {
			job.JobType = "attachment"
		}
		if job.Metadata == nil {
			job.Metadata = make(map[string]any)
		}
		err := processJob(ctx, &job, registry)
		result := Result{Job: job, Err: err}
		switch {
		case errors.Is(err, utils.ErrNoLinkFound):
			result.Skipped = true
			output.PrintWarning(fmt.Sprintf("No spreadsheet link found in %s", job.PostURL))
		case err != nil:
			failed++
			output.PrintError(fmt.Sprintf("Failed %s: %v", job.PostURL, err))
		default:
			size, _ := job.Metadata["size"].(int64)
			output.PrintSuccess(fmt.Sprintf("Saved %s (%s)", job.OutputPath, output.FormatBytes(uint64(size))))
			if location, ok := job.Metadata["location"].(string); ok && location != "" {
				output.PrintInfo(fmt.Sprintf("Uploaded to %s", location))
			}
		}
		results = append(results, result)
	}
	if failed > 0 {
		return results, fmt.Errorf("%d of %d job(s) failed", failed, len(jobs))
	}
	return results, nil
}

func processJob(ctx context.Context, job *utils.SheetJob, registry map[string]utils.Downloader) error {
	logger := log.With().Str("op", "scheduler").Str("job", job.ID).Logger()
	downloader, exists := registry[job.JobType]
	if !exists {
		return fmt.Errorf("unknown job type: %s", job.JobType)
	}
	logger.Debug().Msgf("Validating %s job", job.JobType)
	if err := downloader.ValidateJob(job); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	logger.Debug().Msgf("Building %s job", job.JobType)
	if err := downloader.BuildJob(ctx, job); err != nil {
		if errors.Is(err, utils.ErrNoLinkFound) {
			return err
		}
		return fmt.Errorf("build failed: %w", err)
	}
	if err := downloader.Download(ctx, job); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	logger.Info().Msgf("Completed %s", job.OutputPath)
	return nil
}
