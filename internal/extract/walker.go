package extract

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"bridgegen/internal/diagnostic"
	"bridgegen/internal/model"
)

// Walker feeds a platform's source files to its extractor.
type Walker struct {
	log *zap.Logger
}

// NewWalker creates a Walker. A nil logger disables logging.
func NewWalker(log *zap.Logger) *Walker {
	if log == nil {
		log = zap.NewNop()
	}

	return &Walker{log: log}
}

// Dir recursively visits every file under root with the extractor's
// extension, in lexical order, and concatenates the extracted entities.
// Each file's extraction is a pure function of its own text, so the
// traversal order only determines result order, never result content.
func (w *Walker) Dir(root string, x Extractor) ([]model.Entity, diagnostic.Diagnostics, error) {
	var (
		entities []model.Entity
		diags    diagnostic.Diagnostics
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), x.Ext()) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		found, fileDiags := x.Extract(string(data))

		for i := range fileDiags.Warnings {
			fileDiags.Warnings[i].File = path
		}

		diags.Merge(fileDiags)
		entities = append(entities, found...)

		w.log.Debug("scanned file",
			zap.String("path", path),
			zap.String("platform", x.Origin().String()),
			zap.Int("entities", len(found)))

		return nil
	})
	if err != nil {
		return nil, diags, fmt.Errorf("walking %s: %w", root, err)
	}

	return entities, diags, nil
}
