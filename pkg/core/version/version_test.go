// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     version
// Description: Tests for build information
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if !strings.Contains(info.Platform, runtime.GOOS) {
		t.Errorf("Platform = %q", info.Platform)
	}
}

func TestString(t *testing.T) {
	out := Info{Version: "1.2.3", GitCommit: "abc", BuildDate: "today", GoVersion: "go", Platform: "x/y"}.String()
	for _, want := range []string{"sptext v1.2.3", "Git Commit: abc", "OS/Arch:    x/y"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}
