package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hyperdisc/face"
	"github.com/katalvlaran/hyperdisc/svg"
)

func writeSVG(path string, faces []*face.Face) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := svg.Write(f, faces, svg.DefaultOptions()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
