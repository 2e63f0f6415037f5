// Package pdbio reads PDB file content into memory. PDB archives serve
// entries both plain and gzip-compressed, and the text encoding is
// Latin-1; this package hides both concerns and always hands the parser
// UTF-8 text.
package pdbio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/pgzip"
	"golang.org/x/text/encoding/charmap"
)

// gzip member header magic.
var gzipMagic = []byte{0x1f, 0x8b}

// Reader wraps r so the returned reader yields UTF-8 text: gzip input is
// detected by its magic bytes and decompressed, and Latin-1 bytes are
// transcoded. Plain ASCII passes through unchanged.
func Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniffing input: %w", err)
	}
	var text io.Reader = br
	if len(head) == len(gzipMagic) && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		zr, err := pgzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		text = zr
	}
	return charmap.ISO8859_1.NewDecoder().Reader(text), nil
}

// ReadAll drains r through Reader and returns the decoded text.
func ReadAll(r io.Reader) (string, error) {
	tr, err := Reader(r)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(tr)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// ReadFile reads path, decompressing and transcoding as needed.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	text, err := ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}
