package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// imageExtensions lists the recognized image file extensions. The set is
// deliberately literal: only the all-lower and all-upper spellings count,
// mixed case does not.
var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	".JPG": true, ".JPEG": true, ".PNG": true, ".GIF": true, ".WEBP": true,
}

// IsImageFile reports whether the filename carries a recognized extension.
func IsImageFile(name string) bool {
	return imageExtensions[filepath.Ext(name)]
}

// ListImages returns the image filenames in folder, sorted alphabetically.
// A missing or unreadable folder yields an empty list; use ScanImages when
// the folder is required to exist.
func ListImages(folder string) []string {
	files, err := ScanImages(folder)
	if err != nil {
		return nil
	}
	return files
}

// ScanImages returns the image filenames in folder, sorted alphabetically,
// or an error when the folder cannot be read.
func ScanImages(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", folder, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsImageFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// HasImages reports whether folder contains at least one recognized image.
func HasImages(folder string) bool {
	return len(ListImages(folder)) > 0
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug derives a gallery id from a folder name: lowercase, whitespace runs
// replaced with hyphens.
func Slug(folderName string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(folderName), "-")
}

// TitleFromFolder derives a display title from a folder name: hyphens become
// spaces and each word is capitalized.
func TitleFromFolder(folderName string) string {
	words := strings.Split(strings.ReplaceAll(folderName, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NewFolder describes a folder that holds images but is not yet listed in a
// collection.
type NewFolder struct {
	Name       string // folder name on disk
	BaseDir    string // collection base directory, e.g. "photography"
	Path       string // BaseDir/Name, relative to the site root
	ImageCount int
}

// FindNewFolders scans root/baseDir for directories that contain at least
// one recognized image and whose derived id is not in existingIDs. A missing
// base directory yields an empty result.
func FindNewFolders(root, baseDir string, existingIDs []string) []NewFolder {
	known := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		known[id] = true
	}

	entries, err := os.ReadDir(filepath.Join(root, baseDir))
	if err != nil {
		return nil
	}

	var found []NewFolder
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if known[Slug(entry.Name())] {
			continue
		}
		images := ListImages(filepath.Join(root, baseDir, entry.Name()))
		if len(images) == 0 {
			continue
		}
		found = append(found, NewFolder{
			Name:       entry.Name(),
			BaseDir:    baseDir,
			Path:       baseDir + "/" + entry.Name(),
			ImageCount: len(images),
		})
	}
	return found
}
