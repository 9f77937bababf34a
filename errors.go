package tiffdir

import (
	"errors"
	"fmt"
)

// ErrAlreadyParsed is returned by Parse when called a second time on the
// same Directory.
var ErrAlreadyParsed = errors.New("tiffdir: directory already parsed")

// ErrLoop is returned by ParseTree when an IFD offset is visited twice.
var ErrLoop = errors.New("tiffdir: IFD reference loop detected")

// ReadError is a failed read against the byte source. It carries the byte
// offset that was being read.
type ReadError struct {
	Offset int64
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("tiffdir: read failed at %#x: %v", e.Offset, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// DirectoryError is a fatal, directory-aborting condition: a truncated
// entry block, an implausible entry count, or a misaligned value offset in
// strict mode. Directories already parsed remain valid.
type DirectoryError struct {
	Offset int64
	Msg    string
	Err    error
}

func (e *DirectoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tiffdir: directory at %#x: %s: %v", e.Offset, e.Msg, e.Err)
	}
	return fmt.Sprintf("tiffdir: directory at %#x: %s", e.Offset, e.Msg)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// tagError is a tag-local violation (wrong type, wrong count). The walker
// catches it, records a message and moves to the next entry; it never
// escapes Parse.
type tagError struct {
	tag uint16
	msg string
}

func (e *tagError) Error() string {
	return fmt.Sprintf("tag %d: %s", e.tag, e.msg)
}

func typeMismatch(tag uint16, got Type, want ...Type) *tagError {
	names := ""
	for i, w := range want {
		if i > 0 {
			names += " or "
		}
		names += w.Name()
	}
	return &tagError{tag: tag, msg: fmt.Sprintf("type %s where %s expected", got.Name(), names)}
}

func countMismatch(tag uint16, got, min uint32, exact bool) *tagError {
	if exact {
		return &tagError{tag: tag, msg: fmt.Sprintf("count %d where exactly %d expected", got, min)}
	}
	return &tagError{tag: tag, msg: fmt.Sprintf("count %d where at least %d expected", got, min)}
}
