package frame

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"
)

// Load decodes a single image file (PNG, JPEG, TIFF, BMP or GIF) into a
// frame.
func Load(path string) (*Frame, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return FromImage(img), nil
}

// LoadStack loads a frame sequence. If path is a directory, every image file
// in it is loaded in lexical filename order, one frame per file. If path is a
// regular file, the result is a single-frame stack.
func LoadStack(path string) ([]*Frame, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		f, err := Load(path)
		if err != nil {
			return nil, err
		}
		return []*Frame{f}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".png", ".tif", ".tiff", ".jpg", ".jpeg", ".bmp", ".gif":
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no image files in %s", path)
	}
	sort.Strings(names)

	frames := make([]*Frame, 0, len(names))
	for _, name := range names {
		f, err := Load(filepath.Join(path, name))
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}
