package buildinfo

import (
	"strings"
	"testing"
)

func TestGetUsesLdflags(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	info := Get()
	if info.Version != "v1.2.3" {
		t.Errorf("Version = %q, want v1.2.3", info.Version)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion should be set")
	}
	if !strings.Contains(String(), "version: v1.2.3") {
		t.Errorf("String() = %q", String())
	}
	if !strings.HasPrefix(Template(), "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", Template())
	}
}

func TestGetDevFallback(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("Version should never be empty")
	}
	if info.Commit != Commit || info.Date != Date {
		t.Errorf("Get() = %+v, want commit %q date %q", info, Commit, Date)
	}
}
