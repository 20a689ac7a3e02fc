package s3

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParseS3URI splits "s3://bucket/key" (or "bucket/key") and falls back to the
// artifact's base name when the key is empty or ends in "/".
func ParseS3URI(uri, artifactPath string) (string, string, error) {
	uri = strings.TrimPrefix(strings.TrimSpace(uri), "s3://")
	bucket, key, _ := strings.Cut(uri, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("invalid S3 URI format: %q", uri)
	}
	if key == "" || strings.HasSuffix(key, "/") {
		key += filepath.Base(artifactPath)
	}
	return bucket, key, nil
}
