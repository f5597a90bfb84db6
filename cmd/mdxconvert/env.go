package main

import (
	"io"
	"os"
)

// Environment holds output writers, injectable for tests.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
}

// newEnvironment returns the process environment.
func newEnvironment() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
