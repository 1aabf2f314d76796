package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ralt/pkginfo/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"
)

// Stdin is the path that selects standard input
const Stdin = "-"

// Open opens a capture for reading, decompressing it when needed.
// An empty path or "-" reads standard input.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == Stdin {
		return NewReader(io.NopCloser(os.Stdin))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &models.PkgInfoError{
			Type: models.ErrFileOp,
			Path: path,
			Err:  err,
		}
	}

	rc, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, &models.PkgInfoError{
			Type: models.ErrFileOp,
			Path: path,
			Err:  err,
		}
	}
	return rc, nil
}

// NewReader wraps r with the decompressor matching its magic bytes.
// Closing the returned reader closes r.
func NewReader(r io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(r)

	header, err := br.Peek(magicLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	comp := DetectCompression(header)
	logrus.Debugf("Capture compression: %s", comp)

	switch comp {
	case CompressionGzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return &decodedReader{Reader: gr, closers: []func() error{gr.Close, r.Close}}, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return &decodedReader{Reader: zr, closers: []func() error{closeZstd(zr), r.Close}}, nil
	case CompressionXz:
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open xz stream: %w", err)
		}
		return &decodedReader{Reader: xr, closers: []func() error{r.Close}}, nil
	default:
		return &decodedReader{Reader: br, closers: []func() error{r.Close}}, nil
	}
}

// ReadAll reads and decodes a whole capture
func ReadAll(path string) (string, error) {
	rc, err := Open(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", &models.PkgInfoError{
			Type: models.ErrFileOp,
			Path: path,
			Err:  fmt.Errorf("failed to read capture: %w", err),
		}
	}
	return string(data), nil
}

type decodedReader struct {
	io.Reader
	closers []func() error
}

func (d *decodedReader) Close() error {
	var first error
	for _, c := range d.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func closeZstd(zr *zstd.Decoder) func() error {
	return func() error {
		zr.Close()
		return nil
	}
}
