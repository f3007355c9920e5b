package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// FileReader returns the contents of a local file. Filesystem errors
// (missing file, permission denied) surface unchanged to the caller.
type FileReader struct{}

func (f *FileReader) Name() string { return "file_reader" }

func (f *FileReader) Description() string {
	return "Read a local file and return its contents with size and line count"
}

func (f *FileReader) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": "Path of the file to read",
			},
		},
		"required":             []string{"path"},
		"additionalProperties": false,
	}
}

func (f *FileReader) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing file_reader input: %w", err)
	}

	path := expandHome(args.Path)
	slog.Debug("file_reader: reading", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	content := string(data)
	return marshalResult(map[string]any{
		"path":    path,
		"content": truncate(content),
		"size":    len(content),
		"lines":   len(strings.Split(content, "\n")),
	})
}
