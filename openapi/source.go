package openapi

import (
	"context"
	"fmt"
	"io"
	"os"
)

const maxDocumentSize = 16 << 20

// ReadDocument reads an OpenAPI document from a local file.
func ReadDocument(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("document %s is larger than %d bytes", path, maxDocumentSize)
	}
	return data, nil
}
