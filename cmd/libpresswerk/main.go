// Command libpresswerk is the c-shared build target. Building it with
//
//	go build -buildmode=c-shared -o libpresswerk.so ./cmd/libpresswerk
//
// produces the shared library whose exported symbols are declared in
// internal/ffi. The main function never runs in library mode.
package main

import (
	_ "github.com/presswerk/presswerk-go/internal/ffi"
)

func main() {}
