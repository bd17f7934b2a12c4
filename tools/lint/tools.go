//go:build tools

// Package lint pins the linters used on go-lwjgl. It lives in its own
// module so the library's go.mod carries no tool dependencies.
//
// Run from the repository root:
//
//	go run -modfile=tools/lint/go.mod github.com/golangci/golangci-lint/v2/cmd/golangci-lint run ./...
//	go run -modfile=tools/lint/go.mod honnef.co/go/tools/cmd/staticcheck ./...
package lint
