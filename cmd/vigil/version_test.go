package main

import (
	"runtime"
	"testing"
)

func TestVersionDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if GitCommit == "" || BuildDate == "" {
		t.Error("build metadata should have default values")
	}
	if runtime.Version() == "" {
		t.Error("runtime version should be available")
	}
}
