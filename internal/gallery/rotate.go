package gallery

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	exifv3 "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
	pngstructure "github.com/dsoprea/go-png-image-structure/v2"
)

// ErrUnsupportedFormat signals that the image library cannot re-encode the
// file, so rotation is unavailable for it.
var ErrUnsupportedFormat = errors.New("rotation not supported for this image format")

// DegreesToward returns the rotation applied to bring an image to the
// target orientation: +90 (clockwise) toward portrait, -90 toward
// landscape. Fixed convention; near-square content can come out the wrong
// way around, the aspect ratio is all we look at.
func DegreesToward(target Orientation) int {
	if target == Portrait {
		return 90
	}
	return -90
}

// Rotate physically rotates the image at path by degrees (+90 clockwise,
// -90 counter-clockwise), measured against its displayed orientation: the
// stored rotation tag is applied first, then the extra turn, then the tag
// is reset to identity so declared and physical orientation agree. The
// rotated bytes go to a sibling temp file which then replaces the
// original; on failure the temp file is removed and the original is left
// untouched.
func Rotate(path string, degrees int) error {
	if degrees != 90 && degrees != -90 {
		return fmt.Errorf("rotate %s: unsupported angle %d", path, degrees)
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("rotate %s: %w", path, ErrUnsupportedFormat)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("rotate %s: %w", path, err)
	}

	// imaging rotates counter-clockwise, so clockwise 90 is Rotate270.
	var rotated *image.NRGBA
	if degrees > 0 {
		rotated = imaging.Rotate270(img)
	} else {
		rotated = imaging.Rotate90(img)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, rotated, format); err != nil {
		return fmt.Errorf("rotate %s: %w", path, err)
	}

	data := buf.Bytes()
	switch format {
	case imaging.JPEG:
		data = writeIdentityOrientation(data)
	case imaging.PNG:
		data = stripPNGMetadata(data)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rotate %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rotate %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rotate %s: %w", path, err)
	}
	return nil
}

// BatchResult counts the outcome of a folder rotation pass.
type BatchResult struct {
	Attempted int
	Rotated   int
}

// RotateAll rotates every candidate by degrees, one at a time. Per-image
// failures are reported and do not stop the batch.
func RotateAll(candidates []Descriptor, degrees int, progress func(file string)) BatchResult {
	result := BatchResult{Attempted: len(candidates)}
	for _, d := range candidates {
		if progress != nil {
			progress(d.File)
		}
		if err := Rotate(d.Path, degrees); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		result.Rotated++
	}
	return result
}

// writeIdentityOrientation splices a minimal EXIF block holding only
// Orientation=1 into freshly encoded JPEG bytes. Re-encoding already
// dropped the source EXIF; the explicit tag keeps viewers that cache
// orientation from double-rotating. Falls back to the plain bytes when the
// splice fails.
func writeIdentityOrientation(data []byte) []byte {
	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseBytes(data)
	if err != nil {
		return data
	}
	sl, ok := intfc.(*jpegstructure.SegmentList)
	if !ok {
		return data
	}

	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return data
	}
	ti := exifv3.NewTagIndex()
	rootIb := exifv3.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder)
	if err := rootIb.AddStandardWithName("Orientation", []uint16{identityOrientation}); err != nil {
		return data
	}
	if err := sl.SetExif(rootIb); err != nil {
		return data
	}

	var b bytes.Buffer
	if err := sl.Write(&b); err != nil {
		return data
	}
	return b.Bytes()
}

// stripPNGMetadata drops metadata chunks from freshly encoded PNG bytes so
// no stale orientation or text survives the rotation.
func stripPNGMetadata(data []byte) []byte {
	pmp := pngstructure.NewPngMediaParser()
	intfc, err := pmp.ParseBytes(data)
	if err != nil {
		return data
	}
	cs, ok := intfc.(*pngstructure.ChunkSlice)
	if !ok {
		return data
	}

	chunks := cs.Chunks()
	filtered := make([]*pngstructure.Chunk, 0, len(chunks))
	for _, chunk := range chunks {
		switch chunk.Type {
		case "eXIf", "tEXt", "iTXt", "zTXt":
			continue
		default:
			filtered = append(filtered, chunk)
		}
	}

	var b bytes.Buffer
	if err := pngstructure.NewChunkSlice(filtered).WriteTo(&b); err != nil {
		return data
	}
	return b.Bytes()
}
