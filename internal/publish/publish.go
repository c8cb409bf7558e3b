package publish

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind labels an artifact for logs and metrics
type Kind string

const (
	KindEmail    Kind = "email"
	KindSignage  Kind = "signage"
	KindCalendar Kind = "calendar"
)

// Artifact is one rendered output file
type Artifact struct {
	Kind Kind   `json:"kind"`
	Path string `json:"path"` // relative to the publisher's root unless absolute
	Data []byte `json:"-"`
}

// Publisher defines the interface for delivering artifacts
type Publisher interface {
	// Publish delivers a and returns the location it was written to
	Publish(a Artifact) (string, error)
}

// ExpandHome replaces a leading "~/" with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
