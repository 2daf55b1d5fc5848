package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version, GitCommit, BuildDate = "dev", "abc123", "2026-01-01"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion() = %q, want dev", got)
	}

	Version, GitCommit = "v1.0.0", "unknown"
	if got := GetFullVersion(); got != "v1.0.0" {
		t.Errorf("GetFullVersion() = %q, want v1.0.0", got)
	}

	GitCommit = "abc123"
	if got := GetFullVersion(); got != "v1.0.0 (abc123, 2026-01-01)" {
		t.Errorf("GetFullVersion() = %q", got)
	}
}
