// Package capi implements the C boundary of filesense: opaque session
// handles, null-checked invocation, and the ownership protocol for the
// strings returned to C callers.
//
// # Ownership
//
// A handle returned by SessionNew is owned by the caller until it is passed
// to SessionFree exactly once. A string returned by IdentifyPathJSON or
// IdentifyContentJSON is owned by the caller until it is passed to
// StringFree exactly once. Zero handles and nil pointers are accepted by
// both release functions and ignored.
//
// Freeing a handle or string twice, or using it after release, is not
// detected. The runtime aborts on an invalid handle.
//
// # Concurrency
//
// A session must not be used by two calls at the same time. Different
// sessions are independent.
package capi

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"io"
	"runtime/cgo"
	"strings"
	"unsafe"

	"github.com/gobeaver/filesense"
	"github.com/gobeaver/filesense/record"
	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// SetLogger installs the logger used for boundary failures. It must be
// called before the first session is created.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// ConfigureLogging installs a JSON logger writing to w at cfg's log level
func ConfigureLogging(w io.Writer, cfg filesense.Config) error {
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	SetLogger(zerolog.New(w).Level(lvl).With().Timestamp().Str("component", "libfilesense").Logger())
	return nil
}

// newSession constructs the engine behind a handle
var newSession = func() (*filesense.Session, error) {
	return filesense.NewSession(filesense.WithLogger(logger))
}

// SessionNew creates a session and returns its handle, or 0 on failure
func SessionNew() (h uintptr) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("session construction panicked")
			h = 0
		}
	}()

	s, err := newSession()
	if err != nil {
		logger.Error().Err(err).Msg("session construction failed")
		return 0
	}
	return uintptr(cgo.NewHandle(s))
}

// SessionFree closes the session behind h and invalidates the handle.
// A zero handle is ignored.
func SessionFree(h uintptr) {
	if h == 0 {
		return
	}
	handle := cgo.Handle(h)
	if s, ok := handle.Value().(*filesense.Session); ok {
		_ = s.Close()
	}
	handle.Delete()
}

func session(h uintptr) *filesense.Session {
	s, _ := cgo.Handle(h).Value().(*filesense.Session)
	return s
}

// IdentifyPathJSON classifies the file named by the nul-terminated path and
// returns an owned JSON record. Invalid UTF-8 in path is replaced with
// U+FFFD. Returns nil if h or path is nil, or if the record cannot be
// represented as a C string.
func IdentifyPathJSON(h uintptr, path unsafe.Pointer) unsafe.Pointer {
	if h == 0 || path == nil {
		return nil
	}
	s := session(h)
	name := decodePath(path)
	return respond(invoke(func() (filesense.FileType, error) {
		return s.IdentifyFile(name)
	}))
}

// IdentifyContentJSON classifies length bytes at data and returns an owned
// JSON record. The bytes are read in place and not retained. Returns nil if
// h or data is nil, or if the record cannot be represented as a C string.
func IdentifyContentJSON(h uintptr, data unsafe.Pointer, length uintptr) unsafe.Pointer {
	if h == 0 || data == nil {
		return nil
	}
	s := session(h)
	return respond(invoke(func() (filesense.FileType, error) {
		return s.IdentifyContent(unsafe.Slice((*byte)(data), length))
	}))
}

// decodePath copies a C path into Go, replacing invalid UTF-8
func decodePath(path unsafe.Pointer) string {
	return strings.ToValidUTF8(C.GoString((*C.char)(path)), "\uFFFD")
}

// invoke runs one engine call. A panic in the engine is reported as a
// failure so it never unwinds into C.
func invoke(fn func() (filesense.FileType, error)) (ft filesense.FileType, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("classification panicked")
			ft, err = nil, fmt.Errorf("%w: %v", filesense.ErrInternal, r)
		}
	}()
	return fn()
}

func respond(ft filesense.FileType, err error) unsafe.Pointer {
	if err != nil {
		return toCString(record.EncodeError(err))
	}
	return toCString(record.Encode(ft))
}
