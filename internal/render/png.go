package render

import (
	"fmt"
	"image/png"
	"io"
	"os"
)

// WritePNG encodes f as PNG.
func WritePNG(w io.Writer, f Frame) error {
	if err := png.Encode(w, f.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNGSink writes every presented frame to Path, replacing the previous one.
type PNGSink struct {
	Path string
}

// Present implements Sink.
func (s PNGSink) Present(f Frame) error {
	file, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.Path, err)
	}
	if err := WritePNG(file, f); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.Path, err)
	}
	return nil
}
