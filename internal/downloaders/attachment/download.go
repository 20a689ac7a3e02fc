package attachment

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	s3up "github.com/tanq16/sheetgrab/internal/downloaders/s3"
	"github.com/tanq16/sheetgrab/internal/utils"
)

func (d *AttachmentDownloader) Download(ctx context.Context, job *utils.SheetJob) error {
	fileURL, ok := job.Metadata["fileURL"].(string)
	if !ok || fileURL == "" {
		return fmt.Errorf("job has no resolved file URL")
	}
	log.Info().Str("op", "attachment/download").Msgf("Downloading %s", fileURL)
	written, err := Fetch(ctx, jobSession(job), fileURL, job.OutputPath)
	if err != nil {
		return err
	}
	job.Metadata["size"] = written
	if job.UploadURI == "" {
		return nil
	}
	if d.NewUploader == nil {
		return fmt.Errorf("no uploader configured for %s", job.UploadURI)
	}
	up, err := d.NewUploader(ctx, job.AWSProfile)
	if err != nil {
		return err
	}
	bucket, _ := job.Metadata["bucket"].(string)
	key, _ := job.Metadata["key"].(string)
	location, err := s3up.UploadFile(ctx, up, bucket, key, job.OutputPath)
	if err != nil {
		return err
	}
	job.Metadata["location"] = location
	return nil
}

// Fetch performs one GET and writes the body to outputPath, replacing any existing
// file. Nothing is written at outputPath when the request or the status fails.
func Fetch(ctx context.Context, session *utils.Session, fileURL, outputPath string) (int64, error) {
	resp, err := session.Get(ctx, fileURL)
	if err != nil {
		return 0, fmt.Errorf("error executing GET request: %w", err)
	}
	defer resp.Body.Close()
	if err := utils.CheckStatus(resp); err != nil {
		return 0, err
	}

	tempOutputPath := utils.TempPartPath(outputPath)
	if err := os.MkdirAll(filepath.Dir(tempOutputPath), 0755); err != nil {
		return 0, fmt.Errorf("error creating temp directory: %w", err)
	}
	outFile, err := os.OpenFile(tempOutputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("error creating output file: %w", err)
	}
	buffer := make([]byte, utils.DefaultBufferSize)
	written, err := io.CopyBuffer(outFile, resp.Body, buffer)
	if err == nil {
		err = outFile.Sync()
	}
	if closeErr := outFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempOutputPath)
		return 0, fmt.Errorf("error writing output file: %w", err)
	}
	if err := os.Rename(tempOutputPath, outputPath); err != nil {
		os.Remove(tempOutputPath)
		return 0, fmt.Errorf("error renaming (finalizing) output file: %w", err)
	}
	if err := utils.Clean(filepath.Dir(outputPath)); err != nil {
		log.Warn().Str("op", "attachment/download").Err(err).Msg("Could not clean temporary files")
	}
	log.Info().Str("op", "attachment/download").Msgf("Download successful for %s (%d bytes)", outputPath, written)
	return written, nil
}

// SavePage dumps a fetched page body to path.
func SavePage(path, html string) error {
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("error saving page: %w", err)
	}
	return nil
}
