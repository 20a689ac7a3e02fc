package scheduler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanq16/sheetgrab/internal/utils"
)

type stubDownloader struct {
	buildErr error
	built    []string
}

func (s *stubDownloader) ValidateJob(job *utils.SheetJob) error { return nil }

func (s *stubDownloader) BuildJob(ctx context.Context, job *utils.SheetJob) error {
	s.built = append(s.built, job.ID)
	return s.buildErr
}

func (s *stubDownloader) Download(ctx context.Context, job *utils.SheetJob) error {
	job.Metadata["size"] = int64(10)
	return nil
}

func TestRunAssignsIDsAndDefaults(t *testing.T) {
	stub := &stubDownloader{}
	results, err := runWith(context.Background(), []utils.SheetJob{{PostURL: "a"}, {PostURL: "b"}}, map[string]utils.Downloader{"attachment": stub})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Len(t, stub.built, 2)
	assert.NotEqual(t, stub.built[0], stub.built[1])
	for _, r := range results {
		assert.Equal(t, "attachment", r.Job.JobType)
		assert.NotEmpty(t, r.Job.ID)
	}
}

func TestRunNoLinkIsSkipped(t *testing.T) {
	stub := &stubDownloader{buildErr: utils.ErrNoLinkFound}
	results, err := runWith(context.Background(), []utils.SheetJob{{PostURL: "a"}}, map[string]utils.Downloader{"attachment": stub})
	require.NoError(t, err)
	assert.True(t, results[0].Skipped)
}

func TestRunReportsFailures(t *testing.T) {
	stub := &stubDownloader{buildErr: errors.New("boom")}
	results, err := runWith(context.Background(), []utils.SheetJob{{PostURL: "a"}, {PostURL: "b", JobType: "ftp"}}, map[string]utils.Downloader{"attachment": stub})
	require.EqualError(t, err, "2 of 2 job(s) failed")
	assert.ErrorContains(t, results[0].Err, "build failed: boom")
	assert.ErrorContains(t, results[1].Err, "unknown job type: ftp")
}

func TestRunDownloadsAttachment(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/post", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<a href="/attach/sheet.xlsx">sheet</a>`))
	})
	mux.HandleFunc("/attach/sheet.xlsx", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("sheet-bytes"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "sheet.xlsx")
	results, err := Run(context.Background(), []utils.SheetJob{{PostURL: srv.URL + "/post", OutputPath: out}})
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "sheet-bytes", string(data))
}
