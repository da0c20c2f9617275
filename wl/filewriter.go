// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import (
	"bufio"
	"fmt"
	"os"
	"path"
)

// FileWriter is the on-disk Writer: each array is written as one
// plain-text value per line under outDir, using a buffered writer
// over os.Create.
type FileWriter struct {
	outDir string
}

// NewFileWriter builds a Writer that places every array under outDir,
// creating it if necessary.
func NewFileWriter(outDir string) (*FileWriter, error) {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return nil, err
	}
	return &FileWriter{outDir: outDir}, nil
}

// WriteArray1D writes array as one value per line to
// outDir/filename, overwriting any prior contents. status is
// ignored and does not affect the written bytes.
func (w *FileWriter) WriteArray1D(filename, status string, array []float64) error {
	fid, err := os.Create(path.Join(w.outDir, filename))
	if err != nil {
		return err
	}
	defer fid.Close()

	bw := bufio.NewWriter(fid)
	for _, v := range array {
		if _, err := fmt.Fprintf(bw, "%.10g\n", v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
