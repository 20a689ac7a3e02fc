package attachment

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	s3up "github.com/tanq16/sheetgrab/internal/downloaders/s3"
	"github.com/tanq16/sheetgrab/internal/scraper"
	"github.com/tanq16/sheetgrab/internal/utils"
)

// AttachmentDownloader finds the spreadsheet linked from a post and saves it.
type AttachmentDownloader struct {
	Patterns    []scraper.Pattern
	NewUploader func(ctx context.Context, profile string) (s3up.Uploader, error)
}

func New() *AttachmentDownloader {
	return &AttachmentDownloader{
		Patterns:    scraper.AttachmentPatterns,
		NewUploader: s3up.NewUploader,
	}
}

func (d *AttachmentDownloader) ValidateJob(job *utils.SheetJob) error {
	parsedURL, err := url.Parse(job.PostURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("unsupported scheme: %q", parsedURL.Scheme)
	}
	if job.OutputPath == "" {
		job.OutputPath = utils.DefaultOutputPath
	}
	if job.UploadURI != "" {
		bucket, key, err := s3up.ParseS3URI(job.UploadURI, job.OutputPath)
		if err != nil {
			return err
		}
		job.Metadata["bucket"] = bucket
		job.Metadata["key"] = key
	}
	log.Debug().Str("op", "attachment/initial").Msgf("job validated for %s", job.PostURL)
	return nil
}

// BuildJob fetches the post and resolves the first candidate link into Metadata["fileURL"].
func (d *AttachmentDownloader) BuildJob(ctx context.Context, job *utils.SheetJob) error {
	html, err := scraper.FetchPage(ctx, jobSession(job), job.PostURL)
	if err != nil {
		return err
	}
	links := scraper.ExtractLinks(html, d.patterns())
	if len(links) == 0 {
		return utils.ErrNoLinkFound
	}
	log.Info().Str("op", "attachment/initial").Msgf("Found spreadsheet link(s): %v", links)
	fileURL, err := scraper.ResolveLink(job.PostURL, links[0])
	if err != nil {
		return err
	}
	job.Metadata["links"] = links
	job.Metadata["fileURL"] = fileURL
	return nil
}

// jobSession returns the job's session, creating it on first use so the file
// request carries cookies set while serving the post.
func jobSession(job *utils.SheetJob) *utils.Session {
	if job.Session == nil {
		job.Session = utils.NewSession(job.HTTPClientConfig)
	}
	return job.Session
}

func (d *AttachmentDownloader) patterns() []scraper.Pattern {
	if len(d.Patterns) == 0 {
		return scraper.AttachmentPatterns
	}
	return d.Patterns
}
