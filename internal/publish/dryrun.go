package publish

import (
	"fmt"
	"io"
	"os"
)

// DryRun prints what would be written without touching the filesystem
type DryRun struct {
	w io.Writer
}

// NewDryRun creates a dry-run publisher writing to w; nil means stdout
func NewDryRun(w io.Writer) *DryRun {
	if w == nil {
		w = os.Stdout
	}
	return &DryRun{w: w}
}

// Publish prints the artifact with a header naming its path
func (p *DryRun) Publish(a Artifact) (string, error) {
	if _, err := fmt.Fprintf(p.w, "--- %s (%s, %d bytes) ---\n", a.Path, a.Kind, len(a.Data)); err != nil {
		return "", fmt.Errorf("printing %s: %w", a.Path, err)
	}
	if _, err := p.w.Write(a.Data); err != nil {
		return "", fmt.Errorf("printing %s: %w", a.Path, err)
	}
	fmt.Fprintln(p.w)
	return a.Path, nil
}
