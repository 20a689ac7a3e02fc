package output

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FormatBytes converts bytes to human-readable format
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// Truncate cuts text to at most width runes, appending "..." when shortened.
func Truncate(text string, width int) string {
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	runes := []rune(text)
	return string(runes[:width]) + "..."
}

func PrintList(title string, items []string) {
	PrintDetail(title)
	for i, item := range items {
		fmt.Printf("  %s %s\n", FDebug(fmt.Sprintf("%d.", i+1)), item)
	}
}

func PrintRule(text string) {
	line := strings.Repeat("=", 50)
	PrintHeader(line)
	if text != "" {
		PrintHeader(text)
		PrintHeader(line)
	}
}
