// Package internalcheck holds static-analysis tests over the presswerk
// source tree. They load the module's packages with go/packages and fail
// when a structural rule is violated: enum registries must stay complete,
// and unsafe stays confined to the C boundary shim.
//
// Nothing here is part of the public API.
package internalcheck
