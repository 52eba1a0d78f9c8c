package capi

/*
#include <stdlib.h>
*/
import "C"

import (
	"strings"
	"unsafe"
)

// toCString copies s into a C-allocated, nul-terminated buffer owned by the
// caller. Returns nil if s contains a nul byte.
func toCString(s string) unsafe.Pointer {
	if strings.IndexByte(s, 0) >= 0 {
		return nil
	}
	return unsafe.Pointer(C.CString(s))
}

// StringFree releases a string returned by this package. Nil is ignored.
func StringFree(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.free(p)
}

// cString copies s into C memory the way a C caller would own it. The
// result must be released with StringFree.
func cString(s string) unsafe.Pointer {
	return unsafe.Pointer(C.CString(s))
}

// cBytes copies b into C memory. A non-nil pointer is returned even for an
// empty slice. The result must be released with StringFree.
func cBytes(b []byte) unsafe.Pointer {
	p := C.malloc(C.size_t(len(b) + 1))
	if len(b) > 0 {
		copy(unsafe.Slice((*byte)(p), len(b)), b)
	}
	return p
}

// goString copies a nul-terminated C string into Go. Nil yields "".
func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	return C.GoString((*C.char)(p))
}
