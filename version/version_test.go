package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	if got := Version(); strings.HasPrefix(got, "v") || got == "" {
		t.Errorf("Version() = %q, want a non-empty version without prefix", got)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %v, want %v", info.GoVersion, runtime.Version())
	}
	if info.String() != gitVersion {
		t.Errorf("String() = %v, want %v", info.String(), gitVersion)
	}
	if !strings.Contains(info.Platform, runtime.GOOS) {
		t.Errorf("Platform = %v, want it to contain %v", info.Platform, runtime.GOOS)
	}
}
