package embedgen

import "fmt"

// ScanError reports a source tree that could not be read. It aborts
// generation.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// EmitError reports a generated artifact that could not be written. It aborts
// generation.
type EmitError struct {
	Path string
	Err  error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit %s: %v", e.Path, e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }
