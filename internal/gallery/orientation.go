package gallery

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/rwcarlsen/goexif/exif"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Orientation names the displayed orientation of an image.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// identityOrientation is the neutral EXIF orientation tag value.
const identityOrientation = 1

// Descriptor holds the display-oriented dimensions of one image. Width and
// Height already account for the stored rotation tag, so they describe what
// a viewer sees, not the raw pixel buffer.
type Descriptor struct {
	Path   string
	File   string
	Width  int
	Height int
	Tag    int // EXIF orientation tag as stored, 1 when absent
}

func (d Descriptor) IsPortrait() bool  { return d.Height > d.Width }
func (d Descriptor) IsLandscape() bool { return d.Width > d.Height }
func (d Descriptor) IsSquare() bool    { return d.Width == d.Height }

// Classify reads an image's pixel dimensions and stored rotation tag and
// returns its display-oriented descriptor. Callers batching over a folder
// should skip images that fail to classify rather than abort.
func Classify(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	tag := readOrientationTag(path)
	w, h := displayDimensions(cfg.Width, cfg.Height, tag)

	return &Descriptor{
		Path:   path,
		File:   filepath.Base(path),
		Width:  w,
		Height: h,
		Tag:    tag,
	}, nil
}

// ClassifyFolder classifies every listed image in folder, skipping files
// that cannot be decoded.
func ClassifyFolder(folder string, files []string) []Descriptor {
	var descs []Descriptor
	for _, file := range files {
		d, err := Classify(filepath.Join(folder, file))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		descs = append(descs, *d)
	}
	return descs
}

// readOrientationTag returns the stored EXIF orientation, or the identity
// value when the file carries no readable EXIF block (PNG, GIF, WebP and
// most screenshots land here).
func readOrientationTag(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return identityOrientation
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return identityOrientation
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return identityOrientation
	}
	v, err := tag.Int(0)
	if err != nil || v < 1 || v > 8 {
		return identityOrientation
	}
	return v
}

// displayDimensions maps raw pixel-buffer dimensions to displayed ones.
// Orientation tags 5 through 8 encode a 90 or 270 degree rotation, so the
// axes swap.
func displayDimensions(width, height, tag int) (int, int) {
	if tag >= 5 && tag <= 8 {
		return height, width
	}
	return width, height
}

// Vote is the outcome of a majority-orientation poll over one folder.
type Vote struct {
	PortraitCount  int
	LandscapeCount int
	SquareCount    int
	Majority       Orientation
	Candidates     []Descriptor // images whose orientation differs from Majority
}

// NoAction reports whether there is nothing to rotate: either every image
// is square or every non-square image already matches the majority.
func (v Vote) NoAction() bool {
	return len(v.Candidates) == 0
}

// Decide polls the descriptors and picks the majority orientation. Squares
// never vote and are never candidates. A tie resolves to landscape: portrait
// wins only a strict majority.
func Decide(descs []Descriptor) Vote {
	var v Vote
	for _, d := range descs {
		switch {
		case d.IsSquare():
			v.SquareCount++
		case d.IsPortrait():
			v.PortraitCount++
		default:
			v.LandscapeCount++
		}
	}

	v.Majority = Landscape
	if v.PortraitCount > v.LandscapeCount {
		v.Majority = Portrait
	}
	v.Candidates = CandidatesFor(descs, v.Majority)
	return v
}

// CandidatesFor returns the images that would need rotating to match the
// target orientation. Squares are excluded.
func CandidatesFor(descs []Descriptor, target Orientation) []Descriptor {
	var out []Descriptor
	for _, d := range descs {
		if d.IsSquare() {
			continue
		}
		if target == Portrait && d.IsLandscape() {
			out = append(out, d)
		}
		if target == Landscape && d.IsPortrait() {
			out = append(out, d)
		}
	}
	return out
}
