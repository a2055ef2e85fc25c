package eventlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// lz4Ext is the file extension that triggers transparent decompression.
const lz4Ext = ".lz4"

// Load reads an event-log document from path. Files ending in ".lz4" are
// decompressed on the fly (LZ4 frame format); everything else is read as
// plain JSON.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}

	defer file.Close()

	var reader io.Reader = file
	if strings.EqualFold(filepath.Ext(path), lz4Ext) {
		reader = lz4.NewReader(file)
	}

	doc, parseErr := Parse(reader)
	if parseErr != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), parseErr)
	}

	return doc, nil
}

// Parse decodes an event-log document from r. Missing optional fields decode
// to their zero values; a document without repositories is valid and yields
// empty aggregations.
func Parse(r io.Reader) (*Document, error) {
	var doc Document

	dec := json.NewDecoder(r)

	err := dec.Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	if doc.Repositories == nil {
		doc.Repositories = map[string][]PullRequest{}
	}

	return &doc, nil
}
