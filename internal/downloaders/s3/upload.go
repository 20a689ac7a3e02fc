package s3

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	spreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	legacyExcelContentType = "application/vnd.ms-excel"
)

func contentTypeFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return legacyExcelContentType
	}
	return spreadsheetContentType
}

// UploadFile copies the artifact at path to bucket/key and returns the object location.
func UploadFile(ctx context.Context, up Uploader, bucket, key, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening artifact: %w", err)
	}
	defer file.Close()
	out, err := up.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentTypeFor(path)),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading to s3://%s/%s: %w", bucket, key, err)
	}
	log.Info().Str("op", "s3/upload").Msgf("Uploaded %s to s3://%s/%s", path, bucket, key)
	return out.Location, nil
}
