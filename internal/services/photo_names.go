package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var ErrInvalidPhotoName = errors.New("invalid photo filename")

var photoExtensionPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// PhotoFilename builds day-<day>-<millis><ext>.
func PhotoFilename(day int, millis int64, ext string) string {
	return fmt.Sprintf("day-%d-%d%s", day, millis, NormalizePhotoExtension(ext))
}

func NormalizePhotoExtension(ext string) string {
	normalized := strings.ToLower(strings.TrimSpace(ext))
	if normalized == "" {
		return ""
	}
	if !strings.HasPrefix(normalized, ".") {
		normalized = "." + normalized
	}
	if !photoExtensionPattern.MatchString(normalized) {
		return ""
	}
	return normalized
}

// ValidatePhotoFilename accepts bare file names only.
func ValidatePhotoFilename(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed != name {
		return ErrInvalidPhotoName
	}
	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return ErrInvalidPhotoName
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return ErrInvalidPhotoName
	}
	if filepath.Base(name) != name {
		return ErrInvalidPhotoName
	}
	return nil
}

func RemoveString(values []string, needle string) []string {
	filtered := make([]string, 0, len(values))
	for _, value := range values {
		if value != needle {
			filtered = append(filtered, value)
		}
	}
	return filtered
}
