package orchestrator

import "fmt"

// Job names the input files one batch iteration consumes. Unused paths stay
// empty; each driver fills in what it needs.
type Job struct {
	FileID     string // base name without extension
	Name       string // original file name, used in summary rows
	Audio      string
	Reference  string
	Hypothesis string
	Transcript string
}

// MissingFileError marks an absent paired input. Batch drivers skip the
// affected file pair and continue.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing paired file %s", e.Path)
}
