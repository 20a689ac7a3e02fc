package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func GetRandomUserAgent() string {
	return userAgents[time.Now().UnixNano()%int64(len(userAgents))]
}

// ParseCookieString turns a browser "Cookie" header value ("a=1; b=2") into a map.
func ParseCookieString(raw string) map[string]string {
	cookies := make(map[string]string)
	for _, item := range strings.Split(raw, ";") {
		if !strings.Contains(item, "=") {
			continue
		}
		key, value, _ := strings.Cut(strings.TrimSpace(item), "=")
		cookies[key] = value
	}
	return cookies
}

func ParseHeaderArgs(headers []string) map[string]string {
	result := make(map[string]string)
	for _, header := range headers {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			result[key] = value
		}
	}
	return result
}

func ReadDownloadList(path string) ([]DownloadEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading list file: %w", err)
	}
	var entries []DownloadEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing list file: %w", err)
	}
	var valid []DownloadEntry
	for _, entry := range entries {
		if entry.URL == "" {
			continue
		}
		if entry.OutputPath == "" {
			entry.OutputPath = DefaultOutputPath
		}
		valid = append(valid, entry)
	}
	return valid, nil
}

func TempPartPath(outputPath string) string {
	tempDir := filepath.Join(filepath.Dir(outputPath), TempDirName)
	return filepath.Join(tempDir, filepath.Base(outputPath)+".part")
}

// Clean removes leftover part files under dir and the temp directory once empty.
func Clean(dir string) error {
	tempDir := filepath.Join(dir, TempDirName)
	files, err := os.ReadDir(tempDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".part") {
			continue
		}
		if err := os.Remove(filepath.Join(tempDir, file.Name())); err != nil {
			return err
		}
	}
	remainingFiles, err := os.ReadDir(tempDir)
	if err != nil {
		return err
	}
	if len(remainingFiles) == 0 {
		if err := os.Remove(tempDir); err != nil {
			return err
		}
	}
	return nil
}
