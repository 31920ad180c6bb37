// Package archive reads an unpacked Slack export: workspace metadata
// (users.json, channels.json) and the per-conversation folders of
// date-partitioned event files.
package archive

import "fmt"

// NotFoundError reports a missing metadata file or archive path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("archive: %s not found", e.Path)
}

// ParseError reports a file that is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("archive: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MalformedArchiveError reports a file that parses as JSON but does not
// have the expected shape, or a declared conversation folder that does
// not exist. Structural errors abort the enclosing build: a partial
// table would silently under-count downstream aggregates.
type MalformedArchiveError struct {
	Path   string
	Reason string
}

func (e *MalformedArchiveError) Error() string {
	return fmt.Sprintf("archive: malformed %s: %s", e.Path, e.Reason)
}
