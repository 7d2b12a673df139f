package util

import (
	"errors"
	"path/filepath"
	"strings"
)

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// ResumeObjectName derives the stable object name for a user's résumé:
// the hashed user key plus the upload's extension. Re-uploads overwrite.
func ResumeObjectName(userID, fileName string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("user id is required")
	}
	sanitized, err := SanitizeFileName(fileName)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(sanitized))
	return HashUserKey(userID) + ext, nil
}
