package buildinfo

import (
	"encoding/json"
	"strings"
	"testing"
)

func stamp(t *testing.T, version, commit, date string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
}

func TestGet(t *testing.T) {
	stamp(t, "v1.2.0", "abc123", "2026-01-02T03:04:05Z")

	data, err := json.Marshal(Get())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"version":"v1.2.0","commit":"abc123","built":"2026-01-02T03:04:05Z"}`
	if string(data) != want {
		t.Errorf("Get() = %s, want %s", data, want)
	}
}

func TestTemplate(t *testing.T) {
	stamp(t, "v1.2.0", "abc123", "today")

	got := Template()
	for _, w := range []string{"{{.Name}} v1.2.0", "commit: abc123", "built:  today"} {
		if !strings.Contains(got, w) {
			t.Errorf("Template() = %q, missing %q", got, w)
		}
	}
}
