// Package util provides common utility functions used across the converter.
package util

import "strings"

var fileNameReplacer = strings.NewReplacer(
	" ", "_",
	":", "_",
	"/", "_",
	`\`, "_",
	"*", "_",
	"?", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeFileName replaces characters that are unsafe in file names on
// common filesystems. An empty or dot-only result yields fallback.
func SanitizeFileName(name, fallback string) string {
	s := fileNameReplacer.Replace(strings.TrimSpace(name))
	if strings.Trim(s, ".") == "" {
		return fallback
	}
	return s
}

