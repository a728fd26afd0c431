package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadBuiltinShaders(t *testing.T) {
	m := NewManager(nil)

	for _, name := range []string{"shader/default.vert", "shader/default.frag"} {
		src, err := m.LoadString(name)
		if err != nil {
			t.Fatalf("loading %s: %v", name, err)
		}
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s: unexpected header %q", name, strings.SplitN(src, "\n", 2)[0])
		}
	}

	frag, _ := m.LoadString("shader/default.frag")
	for _, uniform := range []string{"uColor", "checkerboard", "uSunDir", "uAmbient"} {
		if !strings.Contains(frag, uniform) {
			t.Errorf("fragment shader missing %s", uniform)
		}
	}
}

func TestLoadSearchOrder(t *testing.T) {
	m := NewManager(nil)
	m.AddFS("low", fstest.MapFS{
		"scene.yaml":          {Data: []byte("low")},
		"only-low.yaml":       {Data: []byte("only low")},
		"shader/default.vert": {Data: []byte("override")},
	})
	m.AddFS("high", fstest.MapFS{
		"scene.yaml": {Data: []byte("high")},
	})

	tests := []struct {
		path string
		want string
	}{
		{"scene.yaml", "high"},
		{"only-low.yaml", "only low"},
		{"./shader/../shader/default.vert", "override"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := m.LoadString(tt.path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	m := NewManager(nil)
	if _, err := m.Load("nope.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := m.Load("../escape.yaml"); err == nil {
		t.Error("expected error for path outside the search dirs")
	}
}

func TestLoadAbsolutePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("abs"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(nil)
	got, err := m.LoadString(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "abs" {
		t.Errorf("got %q", got)
	}
}

func TestAddDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "crate.yaml"), []byte("crate"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(nil)
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir: %v", err)
	}
	got, err := m.LoadString("crate.yaml")
	if err != nil || got != "crate" {
		t.Errorf("got %q, %v", got, err)
	}

	if err := m.AddDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing dir")
	}
	if err := m.AddDir(filepath.Join(dir, "crate.yaml")); err == nil {
		t.Error("expected error for a file")
	}
}

func TestLoadIsCached(t *testing.T) {
	fsys := fstest.MapFS{"a.txt": {Data: []byte("one")}}
	m := NewManager(nil)
	m.AddFS("mem", fsys)

	if _, err := m.Load("a.txt"); err != nil {
		t.Fatal(err)
	}
	fsys["a.txt"] = &fstest.MapFile{Data: []byte("two")}

	got, _ := m.LoadString("a.txt")
	if got != "one" {
		t.Errorf("expected cached contents, got %q", got)
	}
	hits, misses := m.cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d and %d", hits, misses)
	}

	m.Close()
	if m.cache.Len() != 0 {
		t.Error("Close should clear the cache")
	}
}

func TestCache(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("x"); ok {
		t.Error("empty cache should miss")
	}
	c.Set("x", []byte("y"))
	if data, ok := c.Get("x"); !ok || string(data) != "y" {
		t.Errorf("got %q, %v", data, ok)
	}
	c.Clear()
	if hits, misses := c.Stats(); hits != 0 || misses != 0 {
		t.Error("Clear should reset stats")
	}
}
