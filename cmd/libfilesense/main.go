// Command libfilesense builds the filesense C library:
//
//	go build -buildmode=c-shared -o libfilesense.so ./cmd/libfilesense
//
// The generated libfilesense.h declares:
//
//	uintptr_t filesense_session_new(void);
//	void      filesense_session_free(uintptr_t session);
//	char*     filesense_identify_path_json(uintptr_t session, char* path);
//	char*     filesense_identify_content_json(uintptr_t session, unsigned char* data, size_t len);
//	void      filesense_string_free(char* s);
//
// A session of 0 means creation failed. Every non-NULL string returned by an
// identify function must be released with filesense_string_free, never with
// free(3). Sessions must be released with filesense_session_free. Both release
// functions ignore 0 and NULL.
//
// The library logs to stderr at BEAVER_FILESENSE_LOG_LEVEL (default
// disabled). Classification always uses the built-in defaults.
package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/gobeaver/filesense"
	"github.com/gobeaver/filesense/internal/capi"
)

func init() {
	cfg, err := filesense.GetConfig()
	if err == nil {
		err = capi.ConfigureLogging(os.Stderr, *cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "libfilesense: logging disabled: %v\n", err)
	}
}

//export filesense_session_new
func filesense_session_new() C.uintptr_t {
	return C.uintptr_t(capi.SessionNew())
}

//export filesense_session_free
func filesense_session_free(session C.uintptr_t) {
	capi.SessionFree(uintptr(session))
}

//export filesense_identify_path_json
func filesense_identify_path_json(session C.uintptr_t, path *C.char) *C.char {
	return (*C.char)(capi.IdentifyPathJSON(uintptr(session), unsafe.Pointer(path)))
}

//export filesense_identify_content_json
func filesense_identify_content_json(session C.uintptr_t, data *C.uchar, length C.size_t) *C.char {
	return (*C.char)(capi.IdentifyContentJSON(uintptr(session), unsafe.Pointer(data), uintptr(length)))
}

//export filesense_string_free
func filesense_string_free(s *C.char) {
	capi.StringFree(unsafe.Pointer(s))
}

// main is required by -buildmode=c-shared and never runs
func main() {}
