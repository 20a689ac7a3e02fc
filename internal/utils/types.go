package utils

import (
	"context"
	"fmt"
)

type Downloader interface {
	ValidateJob(job *SheetJob) error
	BuildJob(ctx context.Context, job *SheetJob) error
	Download(ctx context.Context, job *SheetJob) error
}

type SheetJob struct {
	ID               string
	JobType          string
	PostURL          string
	OutputPath       string
	UploadURI        string
	AWSProfile       string
	Metadata         map[string]any
	HTTPClientConfig HTTPClientConfig
	// Session is shared by every request of the job once created.
	Session *Session
}

type DownloadEntry struct {
	URL        string `yaml:"link"`
	OutputPath string `yaml:"op,omitempty"`
	Cookies    string `yaml:"cookies,omitempty"`
	Upload     string `yaml:"upload,omitempty"`
}

// HTTPError is returned when a server answers outside the 2xx range.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s", e.StatusCode, e.URL)
}
