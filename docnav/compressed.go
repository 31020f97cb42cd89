package docnav

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// CompressionType identifies a detected compression envelope, grounded
// on goripgrep's compression.go CompressionType/magic-byte detection.
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionGzip
	CompressionBzip2
)

func detectCompression(f *os.File) (CompressionType, error) {
	var magic [3]byte
	n, err := f.Read(magic[:])
	if _, serr := f.Seek(0, io.SeekStart); serr != nil {
		return CompressionNone, fmt.Errorf("docnav: seek after magic sniff: %w", serr)
	}
	if err != nil && err != io.EOF {
		return CompressionNone, fmt.Errorf("docnav: sniff compression: %w", err)
	}
	if n >= 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		return CompressionGzip, nil
	}
	if n >= 3 && magic[0] == 'B' && magic[1] == 'Z' && magic[2] == 'h' {
		return CompressionBzip2, nil
	}
	return CompressionNone, nil
}

// OpenForViewing opens path for the pager, transparently decompressing
// gzip/bzip2 input (goripgrep's compression.go detection technique) and
// optionally transliterating a named legacy encoding to UTF-8
// (DecodeToUTF8) before Document ever sees it, since byte offsets must
// be stable once a Document starts indexing them. The returned cleanup
// removes any temp file created along the way and must be called once
// the returned reader is no longer needed.
func OpenForViewing(path string, sourceEncoding string) (io.ReadSeeker, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("docnav: open %s: %w", path, err)
	}

	ctype, err := detectCompression(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	var src io.Reader = f
	cleanupFile := f
	switch ctype {
	case CompressionGzip:
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("docnav: gzip open %s: %w", path, err)
		}
		src = gr
	case CompressionBzip2:
		src = bzip2.NewReader(f)
	}

	if ctype == CompressionNone && sourceEncoding == "" {
		return f, func() { f.Close() }, nil
	}

	if sourceEncoding != "" {
		decoded, err := DecodeToUTF8(src, sourceEncoding)
		if err != nil {
			cleanupFile.Close()
			return nil, nil, err
		}
		src = decoded
	}

	tmp, err := os.CreateTemp("", "loss-decoded-*")
	if err != nil {
		cleanupFile.Close()
		return nil, nil, fmt.Errorf("docnav: create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		cleanupFile.Close()
		return nil, nil, fmt.Errorf("docnav: materialize decoded/decompressed input: %w", err)
	}
	cleanupFile.Close()
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, nil, fmt.Errorf("docnav: rewind temp file: %w", err)
	}

	name := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(name)
	}
	return tmp, cleanup, nil
}
