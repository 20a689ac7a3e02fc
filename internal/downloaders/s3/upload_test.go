package s3

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseS3URI(t *testing.T) {
	cases := []struct {
		uri         string
		expectBuck  string
		expectKey   string
		expectError bool
	}{
		{uri: "s3://bucket/path/file.xlsx", expectBuck: "bucket", expectKey: "path/file.xlsx"},
		{uri: "bucket/path/", expectBuck: "bucket", expectKey: "path/sheet.xlsx"},
		{uri: "s3://bucket", expectBuck: "bucket", expectKey: "sheet.xlsx"},
		{uri: "s3://", expectError: true},
		{uri: "/key-only", expectError: true},
	}
	for _, test := range cases {
		bucket, key, err := ParseS3URI(test.uri, "out/sheet.xlsx")
		if test.expectError {
			require.Error(t, err, test.uri)
			continue
		}
		require.NoError(t, err, test.uri)
		assert.Equal(t, test.expectBuck, bucket)
		assert.Equal(t, test.expectKey, key)
	}
}

type recordingUploader struct {
	input *s3.PutObjectInput
	err   error
}

func (r *recordingUploader) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	r.input = input
	if r.err != nil {
		return nil, r.err
	}
	return &manager.UploadOutput{Location: "s3://" + *input.Bucket + "/" + *input.Key}, nil
}

func TestUploadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("workbook"), 0644))

	up := &recordingUploader{}
	location, err := UploadFile(context.Background(), up, "bucket", "k/sheet.xlsx", path)
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/k/sheet.xlsx", location)
	assert.Equal(t, spreadsheetContentType, *up.input.ContentType)

	up.err = errors.New("access denied")
	_, err = UploadFile(context.Background(), up, "bucket", "k/sheet.xlsx", path)
	assert.ErrorContains(t, err, "access denied")

	_, err = UploadFile(context.Background(), up, "bucket", "k", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
