package wallpaperlib

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.White)
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestGetAllOriginals(t *testing.T) {
	defer func() { conf = nil }()

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"))
	writePNG(t, filepath.Join(dir, "nested", "B.PNG"))
	writePNG(t, filepath.Join(dir, "nested", "deeper", "c.jpg"))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	conf = &Config{
		OriginalsDirectory:  dir,
		ImageFileExtensions: []string{".png", ".jpg"},
	}

	originals, err := GetAllOriginals()
	if err != nil {
		t.Fatalf("GetAllOriginals returned %v", err)
	}
	sort.Strings(originals)

	want := []RelativePath{"a.png", "nested/B.PNG", "nested/deeper/c.jpg"}
	if diff := cmp.Diff(want, originals); diff != "" {
		t.Errorf("originals mismatch (-want +got):\n%s", diff)
	}

	full, err := GetFullInputPath("nested/B.PNG")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "nested", "B.PNG"); full != want {
		t.Errorf("GetFullInputPath = %q, want %q", full, want)
	}
}

func TestCheckImage(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.png")
	writePNG(t, good)
	if err := CheckImage(good); err != nil {
		t.Errorf("CheckImage(good) returned %v", err)
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("definitely not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CheckImage(bad); err == nil {
		t.Error("CheckImage accepted a text file")
	}

	if err := CheckImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("CheckImage accepted a missing file")
	}
	if err := CheckImage(dir); err == nil {
		t.Error("CheckImage accepted a directory")
	}
}
