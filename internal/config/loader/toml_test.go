package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
	err   error
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[ui]
backend = "ansi"
placeholder = "."

[logging]
level = "debug"

[keymap]
quit = ["Ctrl+Q", "Esc"]
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	ui, ok := config["ui"].(map[string]any)
	if !ok {
		t.Fatal("expected ui to be a map")
	}
	if ui["backend"] != "ansi" {
		t.Errorf("backend = %v, want ansi", ui["backend"])
	}

	quit, ok := config["keymap"].(map[string]any)["quit"].([]any)
	if !ok || len(quit) != 2 || quit[1] != "Esc" {
		t.Errorf("keymap.quit = %#v", config["keymap"])
	}
}

func TestTOMLLoader_MissingFile(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/missing.toml").Load()
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if config != nil {
		t.Errorf("expected nil config, got %v", config)
	}
}

func TestTOMLLoader_ReadError(t *testing.T) {
	memfs := NewMemFS()
	memfs.err = fs.ErrPermission

	_, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected permission error, got %v", err)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[ui]\nbackend = \n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Path != "/bad.toml" {
		t.Errorf("Path = %q, want /bad.toml", pe.Path)
	}
	if pe.Line == 0 {
		t.Error("expected a line number for a TOML decode error")
	}
}

func TestTOMLLoader_EmptyFile(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/empty.toml", "")

	config, err := NewTOMLLoaderWithFS(memfs, "/empty.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config == nil || len(config) != 0 {
		t.Errorf("expected empty non-nil map, got %v", config)
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader(`[ui]
product = "viewer"`))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if v, _ := GetByPath(config, "ui.product"); v != "viewer" {
		t.Errorf("ui.product = %v, want viewer", v)
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"config.toml", "*loader.TOMLLoader", false},
		{"CONFIG.TOML", "*loader.TOMLLoader", false},
		{"config.yaml", "*loader.YAMLLoader", false},
		{"config.yml", "*loader.YAMLLoader", false},
		{"config.json", "", true},
		{"config", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForPath(NewMemFS(), tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForPath failed: %v", err)
			}
			switch l.(type) {
			case *TOMLLoader:
				if tt.want != "*loader.TOMLLoader" {
					t.Errorf("got TOML loader, want %s", tt.want)
				}
			case *YAMLLoader:
				if tt.want != "*loader.YAMLLoader" {
					t.Errorf("got YAML loader, want %s", tt.want)
				}
			}
		})
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"ui": map[string]any{
			"backend":     "tcell",
			"placeholder": "~",
		},
		"logging": map[string]any{"level": "info"},
	}
	src := map[string]any{
		"ui":     map[string]any{"backend": "ansi"},
		"keymap": map[string]any{"quit": "Esc"},
	}

	result := DeepMerge(dst, src)

	if v, _ := GetByPath(result, "ui.backend"); v != "ansi" {
		t.Errorf("ui.backend = %v, want ansi", v)
	}
	if v, _ := GetByPath(result, "ui.placeholder"); v != "~" {
		t.Errorf("ui.placeholder = %v, want ~", v)
	}
	if v, _ := GetByPath(result, "keymap.quit"); v != "Esc" {
		t.Errorf("keymap.quit = %v, want Esc", v)
	}

	// Merged-in maps must not alias the source
	src["keymap"].(map[string]any)["quit"] = "q"
	if v, _ := GetByPath(result, "keymap.quit"); v != "Esc" {
		t.Errorf("result aliases src: keymap.quit = %v", v)
	}
}

func TestDeepMerge_ScalarReplacesMap(t *testing.T) {
	result := DeepMerge(
		map[string]any{"ui": map[string]any{"backend": "tcell"}},
		map[string]any{"ui": "flat"},
	)
	if result["ui"] != "flat" {
		t.Errorf("ui = %v, want flat", result["ui"])
	}
}

func TestClone(t *testing.T) {
	src := map[string]any{
		"keymap": map[string]any{"quit": []any{"Ctrl+Q"}},
	}
	c := Clone(src)
	c["keymap"].(map[string]any)["quit"].([]any)[0] = "Esc"

	if v, _ := GetByPath(src, "keymap.quit"); v.([]any)[0] != "Ctrl+Q" {
		t.Error("Clone shares nested slices with source")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}
