package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Formats are the image formats written for every figure, vector first.
var Formats = []string{"svg", "eps"}

// Render draws the figure in the given format.
func (f *Figure) Render(format string) ([]byte, error) {
	if f.limits != nil {
		f.plot.X.Min, f.plot.X.Max = f.limits.xmin, f.limits.xmax
		f.plot.Y.Min, f.plot.Y.Max = f.limits.ymin, f.limits.ymax
	}
	wt, err := f.plot.WriterTo(f.width, f.height, format)
	if err != nil {
		return nil, fmt.Errorf("could not render %s: %w", format, err)
	}
	var buf bytes.Buffer
	_, err = wt.WriteTo(&buf)
	if err != nil {
		return nil, fmt.Errorf("could not render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Export writes '<base>.<format>' in dir for every format.
// All formats are rendered before anything is written,
// and written files are removed again if a later one fails.
func (f *Figure) Export(dir, base string) ([]string, error) {
	rendered := make([][]byte, len(Formats))
	for i, format := range Formats {
		b, err := f.Render(format)
		if err != nil {
			return nil, err
		}
		rendered[i] = b
	}

	paths := make([]string, 0, len(Formats))
	for i, format := range Formats {
		p := filepath.Join(dir, fmt.Sprintf("%s.%s", base, format))
		err := os.WriteFile(p, rendered[i], 0644)
		if err != nil {
			for _, written := range paths {
				if rmErr := os.Remove(written); rmErr != nil {
					log.Error().Err(rmErr).Str("file", written).Msg("could not remove partial export")
				}
			}
			return nil, fmt.Errorf("could not write '%s': %w", p, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
