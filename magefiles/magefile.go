// Package main provides build targets for the persist project using Mage.
//
// Usage:
//
//	mage build      Compile the persist binary to bin/
//	mage test       Run all tests with the default (JSON) backend
//	mage testToml   Run tests with the TOML backend (-tags persist_toml)
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install persist to GOPATH/bin

//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "persist"
	binaryDir  = "bin"
	cmdDir     = "./cmd/persist"
)

// Build compiles the persist binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the default JSON backend.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// TestToml runs all tests with the TOML backend linked in.
func TestToml() error {
	return sh.RunV(binGo, "test", "-tags", "persist_toml", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
