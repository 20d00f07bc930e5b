// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxContentSize bounds letter content read from a file or stdin.
const MaxContentSize = 1 << 20

// ErrContentTooLarge indicates the input exceeded MaxContentSize.
var ErrContentTooLarge = errors.New("content exceeds maximum size")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "letterbox" -> false (name)
//   - "./letterbox.yaml" -> true (relative path)
//   - "/etc/letterbox/prod.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like an http(s) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ReadLimited reads all of r, failing with ErrContentTooLarge past MaxContentSize.
func ReadLimited(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxContentSize+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxContentSize {
		return "", fmt.Errorf("%w: max %d bytes", ErrContentTooLarge, MaxContentSize)
	}
	return string(data), nil
}

// ReadFile reads a content file, bounded like ReadLimited.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ReadLimited(f)
}
