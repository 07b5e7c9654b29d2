package wallpaperlib

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrNoImages = errors.New("No wallpapers present in OriginalsDirectory")

// RelativePath is a slash separated path relative to OriginalsDirectory
type RelativePath = string

// GetAllOriginals walks OriginalsDirectory for files matching
// ImageFileExtensions.
func GetAllOriginals() ([]RelativePath, error) {
	c, err := GetConfig()
	if err != nil {
		return nil, err
	}

	root := filepath.Clean(c.OriginalsDirectory)
	var originals []RelativePath

	err = filepath.Walk(root, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !f.Mode().IsRegular() {
			return nil
		}

		pathLower := strings.ToLower(path)
		for _, ext := range c.ImageFileExtensions {
			if strings.HasSuffix(pathLower, ext) {
				rel, err := filepath.Rel(root, path)
				if err != nil {
					return err
				}
				originals = append(originals, filepath.ToSlash(rel))
				break
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return originals, nil
}

func GetFullInputPath(relPath RelativePath) (string, error) {
	c, err := GetConfig()
	if err != nil {
		return "", err
	}

	return filepath.Abs(filepath.Join(c.OriginalsDirectory, filepath.FromSlash(relPath)))
}

// CheckImage makes sure the file is a regular file Go can at least read the
// header of. The shell gives no feedback when it can't load a wallpaper, so
// this catches truncated or mislabeled files before they're applied.
func CheckImage(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("Input image [%s] is not a regular file", path)
	}

	// DecodeConfig only reads the header
	if _, _, err = image.DecodeConfig(in); err != nil {
		return fmt.Errorf("Unreadable image [%s]: %w", path, err)
	}
	return nil
}
