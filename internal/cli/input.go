package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KimNorgaard/go-recipe"
	"github.com/KimNorgaard/go-recipe/export"
)

// stdinPath names standard input on the command line.
const stdinPath = "-"

func (a *app) readInput(cmd *cobra.Command, path string) ([]byte, error) {
	a.logger.Debug("reading input", zap.String("file", path))
	if path == stdinPath {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// load reads path and decodes every recipe in it.
func (a *app) load(cmd *cobra.Command, path string) ([]export.Item, error) {
	data, err := a.readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	items, err := decodeAll(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("decoded input", zap.String("file", path), zap.Int("recipes", len(items)))
	return items, nil
}

func decodeAll(data []byte) ([]export.Item, error) {
	var items []export.Item
	dec := recipe.NewDecoder(bytes.NewReader(data))
	for {
		var r recipe.Recipe
		err := dec.Decode(&r)
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return nil, err
		}
		items = append(items, export.Item{Name: dec.Name(), Recipe: r})
	}
}

// canonicalize encodes items back to text under their original node
// names.
func canonicalize(items []export.Item, opts ...recipe.Option) ([]byte, error) {
	var buf bytes.Buffer
	enc := recipe.NewEncoder(&buf, opts...)
	for _, it := range items {
		if err := enc.Encode(it.Name, it.Recipe); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
