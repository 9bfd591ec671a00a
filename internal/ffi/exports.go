//go:build cgo && !windows

package ffi

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/presswerk/presswerk-go/internal/threadid"
	"github.com/presswerk/presswerk-go/pkg/presswerk"
)

//export presswerk_init
func presswerk_init() C.uintptr_t {
	h, err := presswerk.Initialize()
	if err != nil {
		return 0
	}
	return C.uintptr_t(h)
}

//export presswerk_free
func presswerk_free(h C.uintptr_t) {
	presswerk.Free(presswerk.Handle(h))
}

//export presswerk_is_initialized
func presswerk_is_initialized(h C.uintptr_t) C.int32_t {
	if presswerk.IsInitialized(presswerk.Handle(h)) {
		return 1
	}
	return 0
}

//export presswerk_validate_transition
func presswerk_validate_transition(from, to C.uint32_t) C.int32_t {
	r := presswerk.ValidateTransition(
		presswerk.StatusFromCode(uint32(from)),
		presswerk.StatusFromCode(uint32(to)),
	)
	return C.int32_t(r.Code())
}

//export presswerk_hash
func presswerk_hash(data *C.uint8_t, n C.size_t, out *C.uint8_t) C.int32_t {
	// A null data pointer stays nil regardless of n, so the core rejects it
	// as a null input rather than treating it as an empty buffer.
	var in []byte
	if data != nil {
		in = unsafe.Slice((*byte)(unsafe.Pointer(data)), int(n))
	}
	var digest *[presswerk.HashSize]byte
	if out != nil {
		digest = (*[presswerk.HashSize]byte)(unsafe.Pointer(out))
	}
	return C.int32_t(presswerk.HashContent(in, digest).Code())
}

// Each thread owns one C string slot for its last error. The slot is freed
// and reallocated on every query so the pointer handed out stays valid until
// the same thread asks again.
var (
	lastErrMu sync.Mutex
	lastErrs  = map[int]*C.char{}
)

//export presswerk_last_error
func presswerk_last_error() *C.char {
	msg := presswerk.LastError()
	tid := threadid.Current()

	lastErrMu.Lock()
	defer lastErrMu.Unlock()
	if prev, ok := lastErrs[tid]; ok {
		C.free(unsafe.Pointer(prev))
		delete(lastErrs, tid)
	}
	if msg == "" {
		return nil
	}
	cs := C.CString(msg)
	lastErrs[tid] = cs
	return cs
}

// Static strings live for the process lifetime; allocate once.
var (
	versionOnce sync.Once
	versionC    *C.char
	buildInfoC  *C.char
)

func staticStrings() {
	versionC = C.CString(presswerk.Version())
	buildInfoC = C.CString(presswerk.BuildInfo())
}

//export presswerk_version
func presswerk_version() *C.char {
	versionOnce.Do(staticStrings)
	return versionC
}

//export presswerk_build_info
func presswerk_build_info() *C.char {
	versionOnce.Do(staticStrings)
	return buildInfoC
}
