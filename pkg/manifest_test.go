package versync

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// recordingReporter captures status lines for assertions.
type recordingReporter struct {
	successes []string
	warnings  []string
	failures  []string
}

func (r *recordingReporter) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recordingReporter) Warning(msg string) { r.warnings = append(r.warnings, msg) }
func (r *recordingReporter) Failure(msg string) { r.failures = append(r.failures, msg) }

func newTestSyncer(t *testing.T, manifests ...string) (*Syncer, *recordingReporter, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Root = dir
	cfg.Manifests = manifests
	rep := &recordingReporter{}
	return NewSyncer(cfg, rep, nil), rep, dir
}

func TestSetManifestVersion(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
		previous string
	}{
		{
			name: "package.json keeps key order",
			content: `{
  "name": "my-app",
  "version": "1.2.3",
  "description": "Test app"
}`,
			expected: `{
  "name": "my-app",
  "version": "2.0.0",
  "description": "Test app"
}
`,
			previous: "1.2.3",
		},
		{
			name:     "compact input is re-indented",
			content:  `{"b":1,"version":"0.0.1","a":[1,2]}`,
			expected: "{\n  \"b\": 1,\n  \"version\": \"2.0.0\",\n  \"a\": [\n    1,\n    2\n  ]\n}\n",
			previous: "0.0.1",
		},
		{
			name: "nested versions untouched",
			content: `{
  "name": "app",
  "dependencies": {"lib": {"version": "1.0.0"}},
  "version": "1.0.0"
}`,
			expected: `{
  "name": "app",
  "dependencies": {
    "lib": {
      "version": "1.0.0"
    }
  },
  "version": "2.0.0"
}
`,
			previous: "1.0.0",
		},
		{
			name:     "missing version key is appended",
			content:  `{"name": "app"}`,
			expected: "{\n  \"name\": \"app\",\n  \"version\": \"2.0.0\"\n}\n",
		},
		{
			name:     "tab indented input",
			content:  "{\n\t\"version\": \"1.0.0\",\n\t\"private\": true\n}\n",
			expected: "{\n  \"version\": \"2.0.0\",\n  \"private\": true\n}\n",
			previous: "1.0.0",
		},
		{
			name:     "strings kept verbatim",
			content:  `{"description": "café <b>", "version": "1.0.0"}`,
			expected: "{\n  \"description\": \"café <b>\",\n  \"version\": \"2.0.0\"\n}\n",
			previous: "1.0.0",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, prev, err := setManifestVersion([]byte(tc.content), MustParseVersion("2.0.0"))
			if err != nil {
				t.Fatalf("setManifestVersion returned error: %v", err)
			}
			if string(out) != tc.expected {
				t.Errorf("output =\n%s\nexpected:\n%s", out, tc.expected)
			}
			if prev != tc.previous {
				t.Errorf("previous = %q, expected %q", prev, tc.previous)
			}
		})
	}
}

func TestSetManifestVersionMalformed(t *testing.T) {
	for _, content := range []string{``, `{`, `{"version": }`, `[1, 2]`, `"1.0.0"`, `null`} {
		if _, _, err := setManifestVersion([]byte(content), MustParseVersion("1.0.0")); !errors.Is(err, ErrManifestMalformed) {
			t.Errorf("setManifestVersion(%q) error = %v, expected ErrManifestMalformed", content, err)
		}
	}
}

func TestUpdateOne(t *testing.T) {
	s, rep, dir := newTestSyncer(t, "pkg/package.json")
	path := filepath.Join(dir, "pkg", "package.json")
	writeTestFile(t, path, `{"name": "pkg", "version": "0.1.0"}`)

	res := s.UpdateOne("pkg/package.json", MustParseVersion("0.2.0"))
	if res.Status != ManifestUpdated || res.Err != nil {
		t.Fatalf("UpdateOne = %+v", res)
	}
	if res.Previous != "0.1.0" {
		t.Errorf("Previous = %q, expected 0.1.0", res.Previous)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"version": "0.2.0"`) || !strings.HasSuffix(string(data), "}\n") {
		t.Errorf("unexpected manifest contents:\n%s", data)
	}
	if len(rep.successes) != 1 || rep.successes[0] != "Updated pkg/package.json to version 0.2.0" {
		t.Errorf("successes = %q", rep.successes)
	}
}

func TestUpdateOneMissing(t *testing.T) {
	s, rep, _ := newTestSyncer(t, "nope/package.json")
	res := s.UpdateOne("nope/package.json", MustParseVersion("1.0.0"))
	if res.Status != ManifestMissing {
		t.Errorf("Status = %q, expected %q", res.Status, ManifestMissing)
	}
	if !errors.Is(res.Err, ErrManifestNotFound) {
		t.Errorf("Err = %v, expected ErrManifestNotFound", res.Err)
	}
	if len(rep.warnings) != 1 || rep.warnings[0] != "nope/package.json not found" {
		t.Errorf("warnings = %q", rep.warnings)
	}
	if len(rep.failures) != 0 {
		t.Errorf("a missing manifest should not be reported as a failure: %q", rep.failures)
	}
}

func TestUpdateOneMalformedLeavesFile(t *testing.T) {
	s, rep, dir := newTestSyncer(t, "bad.json")
	path := filepath.Join(dir, "bad.json")
	writeTestFile(t, path, `{"version": "1.0.0",,}`)

	res := s.UpdateOne("bad.json", MustParseVersion("2.0.0"))
	if res.Status != ManifestFailed || !errors.Is(res.Err, ErrManifestMalformed) {
		t.Errorf("UpdateOne = %+v", res)
	}
	if len(rep.failures) != 1 || !strings.HasPrefix(rep.failures[0], "Error updating bad.json:") {
		t.Errorf("failures = %q", rep.failures)
	}
	data, _ := os.ReadFile(path)
	if string(data) != `{"version": "1.0.0",,}` {
		t.Errorf("malformed manifest was modified: %q", data)
	}
}

func TestSyncAllIndependent(t *testing.T) {
	s, rep, dir := newTestSyncer(t, "missing.json", "bad.json", "good.json")
	writeTestFile(t, filepath.Join(dir, "bad.json"), `not json`)
	writeTestFile(t, filepath.Join(dir, "good.json"), `{"version": "1.0.0"}`)

	results := s.SyncAll(MustParseVersion("1.1.0"))
	if len(results) != 3 {
		t.Fatalf("got %d results, expected 3", len(results))
	}
	wantStatus := []ManifestStatus{ManifestMissing, ManifestFailed, ManifestUpdated}
	for i, r := range results {
		if r.Status != wantStatus[i] {
			t.Errorf("results[%d].Status = %q, expected %q", i, r.Status, wantStatus[i])
		}
	}
	if len(rep.warnings) != 1 || len(rep.failures) != 1 || len(rep.successes) != 1 {
		t.Errorf("reporter = %+v", rep)
	}

	err := SyncError(results)
	if !errors.Is(err, ErrManifestNotFound) || !errors.Is(err, ErrManifestMalformed) {
		t.Errorf("SyncError = %v, expected both missing and malformed", err)
	}
}

func TestSyncErrorNil(t *testing.T) {
	results := []ManifestResult{{Path: "a.json", Status: ManifestUpdated}}
	if err := SyncError(results); err != nil {
		t.Errorf("SyncError = %v, expected nil", err)
	}
}

func TestUpdateOneDryRun(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Root = dir
	cfg.DryRun = true
	rep := &recordingReporter{}
	s := NewSyncer(cfg, rep, nil)

	path := filepath.Join(dir, "package.json")
	writeTestFile(t, path, `{"version":"1.0.0"}`)
	res := s.UpdateOne("package.json", MustParseVersion("1.0.1"))
	if res.Status != ManifestWouldUpdate {
		t.Errorf("Status = %q, expected %q", res.Status, ManifestWouldUpdate)
	}
	data, _ := os.ReadFile(path)
	if string(data) != `{"version":"1.0.0"}` {
		t.Errorf("dry run modified manifest: %q", data)
	}
}
