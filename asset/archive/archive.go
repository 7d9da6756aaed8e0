// Package archive stores compiled collision hulls on disk as zip files
// holding the two raw engine buffers plus a gob-encoded manifest with the
// element counts the container format records next to them. The archive is
// a staging format: the engine-facing container serializer embeds the
// buffers verbatim.
package archive

import (
	"archive/zip"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/KaikoClanworth1/igbhull/asset/hull"
	"github.com/KaikoClanworth1/igbhull/log"
)

const (
	triangleFile = "triangles.bin"
	treeFile     = "tree.bin"
	manifestFile = "manifest.bin"
)

type manifest struct {
	TriangleCount         int
	TreeNodeCountMinusOne int
}

// Write a compiled hull to filename.
func WriteHull(h *hull.EncodedHull, filename string) error {
	return newZipHullWriter(filename).Write(h)
}

// Read a compiled hull from filename.
func ReadHull(filename string) (*hull.EncodedHull, error) {
	return newZipHullReader(filename).Read()
}

type zipHullWriter struct {
	logger   log.Logger
	hullFile string
}

// Create a new zip hull writer.
func newZipHullWriter(hullFile string) *zipHullWriter {
	return &zipHullWriter{
		logger:   log.New("zip hull writer"),
		hullFile: hullFile,
	}
}

// Write hull buffers to zip file.
func (w *zipHullWriter) Write(h *hull.EncodedHull) error {
	w.logger.Noticef("writing compiled hull to %s", w.hullFile)
	start := time.Now()

	zipFile, err := os.Create(w.hullFile)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	zw := zip.NewWriter(zipFile)
	defer zw.Close()

	// Write manifest
	cw, err := zw.Create(manifestFile)
	if err != nil {
		return err
	}
	err = gob.NewEncoder(cw).Encode(manifest{
		TriangleCount:         h.TriangleCount,
		TreeNodeCountMinusOne: h.TreeNodeCountMinusOne,
	})
	if err != nil {
		return err
	}

	// Write raw triangle buffer
	cw, err = zw.Create(triangleFile)
	if err != nil {
		return err
	}
	if _, err = cw.Write(h.TriangleData); err != nil {
		return err
	}

	// Write raw tree buffer
	cw, err = zw.Create(treeFile)
	if err != nil {
		return err
	}
	if _, err = cw.Write(h.TreeData); err != nil {
		return err
	}

	w.logger.Noticef("compressed hull in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}

type zipHullReader struct {
	logger   log.Logger
	hullFile string
}

// Create a new zip hull reader.
func newZipHullReader(hullFile string) *zipHullReader {
	return &zipHullReader{
		logger:   log.New("zip hull reader"),
		hullFile: hullFile,
	}
}

// Read hull buffers from zip file.
func (p *zipHullReader) Read() (*hull.EncodedHull, error) {
	p.logger.Noticef("parsing compiled hull from %s", p.hullFile)
	start := time.Now()

	zr, err := zip.OpenReader(p.hullFile)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	h := &hull.EncodedHull{}
	var man manifest
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}

		switch f.Name {
		case manifestFile:
			err = gob.NewDecoder(rc).Decode(&man)
		case triangleFile:
			h.TriangleData, err = io.ReadAll(rc)
		case treeFile:
			h.TreeData, err = io.ReadAll(rc)
		default:
			p.logger.Warningf("unknown file %s in hull archive; skipping", f.Name)
		}
		rc.Close()

		if err != nil {
			return nil, err
		}
	}

	h.TriangleCount = man.TriangleCount
	h.TreeNodeCountMinusOne = man.TreeNodeCountMinusOne

	if len(h.TriangleData) != h.TriangleCount*hull.TriangleRecordSize {
		return nil, fmt.Errorf("archive: triangle buffer is %d bytes; manifest expects %d triangles", len(h.TriangleData), h.TriangleCount)
	}
	if len(h.TreeData) != (h.TreeNodeCountMinusOne+1)*hull.NodeRecordSize {
		return nil, fmt.Errorf("archive: tree buffer is %d bytes; manifest expects %d records", len(h.TreeData), h.TreeNodeCountMinusOne+1)
	}

	p.logger.Noticef("parsed hull in %d ms", time.Since(start).Nanoseconds()/1e6)
	return h, nil
}
