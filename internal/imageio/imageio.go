// Package imageio handles the file edges of the pipeline: finding
// inputs, decoding them into pixel buffers, and naming outputs.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Source is a resolved input image file.
type Source struct {
	// Path is the path as given or discovered.
	Path string
	// Format is the normalized source format (png, jpeg, webp, ...).
	Format string
	// Size is the file size in bytes.
	Size int64
}

// imageExtensions lists recognized image file extensions.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// normalizeFormat maps a file extension to a format name.
func normalizeFormat(ext string) string {
	f := strings.TrimPrefix(strings.ToLower(ext), ".")
	switch f {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return f
}

// ResolveInputs expands the command-line arguments into image sources.
// Plain files are taken as-is; directories are walked for image files,
// skipping hidden subdirectories.
func ResolveInputs(args []string) ([]Source, error) {
	var sources []Source

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			sources = append(sources, Source{
				Path:   arg,
				Format: normalizeFormat(filepath.Ext(arg)),
				Size:   info.Size(),
			})
			continue
		}

		err = filepath.Walk(arg, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				if strings.HasPrefix(fi.Name(), ".") && fi.Name() != "." {
					return filepath.SkipDir
				}
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if !imageExtensions[ext] {
				return nil
			}
			sources = append(sources, Source{
				Path:   path,
				Format: normalizeFormat(ext),
				Size:   fi.Size(),
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", arg, err)
		}
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no image files among inputs")
	}
	return sources, nil
}

// Load decodes an image file into an NRGBA buffer.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// OutputPath builds the output filename for one variant:
// <dir>/<base>_out<N>.<ext>. Existing files with the same name are
// overwritten without warning.
func OutputPath(input string, outDir string, index int, ext string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	return filepath.Join(outDir, fmt.Sprintf("%s_out%d.%s", base, index, ext))
}
