package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n")
	writeFile(t, filepath.Join(dir, "pkg", "lib.rs"), "fn a() {}\n")
	writeFile(t, filepath.Join(dir, "web", "app.js"), "function f() {}\n")
	writeFile(t, filepath.Join(dir, "vendor", "dep.go"), "package dep\n")
	writeFile(t, filepath.Join(dir, ".git", "hook.py"), "pass\n")
	writeFile(t, filepath.Join(dir, "README.md"), "# readme\n")
	writeFile(t, filepath.Join(dir, "big.c"), string(make([]byte, 64)))

	tests := []struct {
		name string
		cfg  Config
		want map[string]string
	}{
		{
			name: "every grammar",
			cfg:  Config{Root: dir},
			want: map[string]string{
				"big.c":      "c",
				"main.go":    "go",
				"pkg/lib.rs": "rust",
				"web/app.js": "javascript",
			},
		},
		{
			name: "accept filter",
			cfg:  Config{Root: dir, Accept: func(l string) bool { return l == "rust" }},
			want: map[string]string{"pkg/lib.rs": "rust"},
		},
		{
			name: "size limit",
			cfg:  Config{Root: dir, MaxBytes: 32},
			want: map[string]string{
				"main.go":    "go",
				"pkg/lib.rs": "rust",
				"web/app.js": "javascript",
			},
		},
		{
			name: "custom ignore list",
			cfg:  Config{Root: dir, IgnoreDirs: map[string]struct{}{"web": {}, ".git": {}}},
			want: map[string]string{
				"big.c":         "c",
				"main.go":       "go",
				"pkg/lib.rs":    "rust",
				"vendor/dep.go": "go",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := New(tt.cfg).Collect()
			require.NoError(t, err)

			got := make(map[string]string, len(jobs))
			for _, j := range jobs {
				require.True(t, filepath.IsAbs(j.AbsPath))
				got[j.DisplayPath] = j.Language
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCollectSingle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.rs")
	writeFile(t, path, "fn a() {}\n")

	s := New(Config{})

	job, err := s.CollectSingle(path, "")
	require.NoError(t, err)
	require.Equal(t, "rust", job.Language)
	require.Equal(t, "lib.rs", job.DisplayPath)

	job, err = s.CollectSingle(path, "c")
	require.NoError(t, err)
	require.Equal(t, "c", job.Language)

	_, err = s.CollectSingle(filepath.Join(dir, "notes"), "")
	require.Error(t, err)
}
