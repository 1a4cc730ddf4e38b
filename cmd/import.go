package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"storefront/core/catalog"
	"storefront/core/variant"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCmd loads product documents into the configured source.
var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import products into the configured source",
	Long: `Imports product documents into the configured source. The path may be a JSON
file holding one product or an array of products, or a directory of such files.
With --from, every product of a mirror source is copied instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		from, _ := cmd.Flags().GetString("from")
		if (from == "") == (len(args) == 0) {
			return fmt.Errorf("pass either a path or --from")
		}

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.close(ctx)

		target := rt.primary()
		if err := rt.migrate(ctx, target); err != nil {
			return err
		}

		startTime := time.Now()
		var docs []variant.Document
		if from != "" {
			docs, err = readSource(ctx, rt.sources, from)
		} else {
			docs, err = readDocuments(args[0])
		}
		if err != nil {
			return err
		}

		imported, skipped := 0, 0
		for _, doc := range docs {
			id := variant.NormalizeString(firstNonNil(doc["id"], doc["_id"]))
			if id == "" {
				skipped++
				rt.logger.Warn("Skipping product without id")
				continue
			}
			if err := target.SaveProduct(ctx, id, doc); err != nil {
				return err
			}
			imported++
		}

		rt.logger.Info("Import completed",
			zap.String("target", target.Name()),
			zap.Int("imported", imported),
			zap.Int("skipped", skipped),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(importCmd)
	importCmd.Flags().String("from", "", "Copy every product from this mirror source (storage, database, mongo)")
}

func readSource(ctx context.Context, srcs []catalog.Source, kind string) ([]variant.Document, error) {
	var from catalog.Source
	for _, src := range srcs[1:] {
		if src.Name() == kind {
			from = src
		}
	}
	if from == nil {
		return nil, fmt.Errorf("source %s is not a connected mirror", kind)
	}

	ids, err := from.ListProductIDs(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]variant.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := from.FetchProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		if _, ok := doc["id"]; !ok {
			doc["id"] = id
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// readDocuments reads one JSON file or every .json file of a directory.
func readDocuments(path string) ([]variant.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	files := []string{path}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		files = files[:0]
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
				files = append(files, filepath.Join(path, e.Name()))
			}
		}
		sort.Strings(files)
	}

	var docs []variant.Document
	for _, file := range files {
		parsed, err := parseDocuments(file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, parsed...)
	}
	return docs, nil
}

func parseDocuments(file string) ([]variant.Document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var docs []variant.Document
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", file, err)
		}
		return docs, nil
	}
	var doc variant.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file, err)
	}
	return []variant.Document{doc}, nil
}

func firstNonNil(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
