package gallery

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".png":
		err = png.Encode(f, img)
	default:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
}

func TestDisplayDimensions(t *testing.T) {
	for tag := 1; tag <= 8; tag++ {
		w, h := displayDimensions(40, 30, tag)
		if tag >= 5 {
			if w != 30 || h != 40 {
				t.Fatalf("tag %d: expected swapped 30x40, got %dx%d", tag, w, h)
			}
		} else if w != 40 || h != 30 {
			t.Fatalf("tag %d: expected 40x30, got %dx%d", tag, w, h)
		}
	}
}

func TestClassify(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "portrait.png"), 2, 3)
	writeImage(t, filepath.Join(dir, "landscape.jpg"), 3, 2)
	writeImage(t, filepath.Join(dir, "square.png"), 2, 2)

	cases := []struct {
		file                        string
		portrait, landscape, square bool
	}{
		{"portrait.png", true, false, false},
		{"landscape.jpg", false, true, false},
		{"square.png", false, false, true},
	}
	for _, tc := range cases {
		d, err := Classify(filepath.Join(dir, tc.file))
		if err != nil {
			t.Fatalf("failed to classify %s: %v", tc.file, err)
		}
		if d.IsPortrait() != tc.portrait || d.IsLandscape() != tc.landscape || d.IsSquare() != tc.square {
			t.Fatalf("%s: got portrait=%v landscape=%v square=%v", tc.file, d.IsPortrait(), d.IsLandscape(), d.IsSquare())
		}
		if d.Tag != identityOrientation {
			t.Fatalf("%s: expected identity tag, got %d", tc.file, d.Tag)
		}
	}
}

func TestClassifyUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Classify(path); err == nil {
		t.Fatalf("expected error for undecodable image")
	}
}

func TestClassifyFolderSkipsBroken(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "ok.png"), 3, 2)
	if err := os.WriteFile(filepath.Join(dir, "bad.jpg"), []byte("junk"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	descs := ClassifyFolder(dir, []string{"bad.jpg", "ok.png"})
	if len(descs) != 1 || descs[0].File != "ok.png" {
		t.Fatalf("expected only ok.png, got %+v", descs)
	}
}

func desc(w, h int) Descriptor {
	return Descriptor{Width: w, Height: h, Tag: identityOrientation}
}

func TestDecideTieResolvesLandscape(t *testing.T) {
	v := Decide([]Descriptor{desc(2, 3), desc(3, 2), desc(2, 2)})
	if v.Majority != Landscape {
		t.Fatalf("expected landscape on tie, got %s", v.Majority)
	}
	if v.PortraitCount != 1 || v.LandscapeCount != 1 || v.SquareCount != 1 {
		t.Fatalf("unexpected counts: %+v", v)
	}
	if len(v.Candidates) != 1 || !v.Candidates[0].IsPortrait() {
		t.Fatalf("expected the portrait image as sole candidate, got %+v", v.Candidates)
	}
}

func TestDecideStrictPortraitMajority(t *testing.T) {
	v := Decide([]Descriptor{desc(2, 3), desc(2, 3), desc(3, 2)})
	if v.Majority != Portrait {
		t.Fatalf("expected portrait majority, got %s", v.Majority)
	}
	if len(v.Candidates) != 1 || !v.Candidates[0].IsLandscape() {
		t.Fatalf("expected the landscape image as candidate, got %+v", v.Candidates)
	}
}

func TestDecideAllSquare(t *testing.T) {
	v := Decide([]Descriptor{desc(2, 2), desc(3, 3)})
	if !v.NoAction() {
		t.Fatalf("expected no action for all-square folder")
	}
}

func TestDecideUnanimous(t *testing.T) {
	v := Decide([]Descriptor{desc(3, 2), desc(4, 3)})
	if !v.NoAction() {
		t.Fatalf("expected no action when all images match the majority")
	}
}

func TestCandidatesForExcludesSquares(t *testing.T) {
	descs := []Descriptor{desc(2, 2), desc(2, 3), desc(3, 2)}
	got := CandidatesFor(descs, Portrait)
	if len(got) != 1 || !got[0].IsLandscape() {
		t.Fatalf("expected only the landscape image, got %+v", got)
	}
}
