//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by the repository:
// - github.com/matryer/moq (go:generate mocks in service packages)
// - github.com/pressly/goose/v3/cmd/goose (manual migration runs against a diary database)
