package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ssargent/yxdb/pkg/format"
	"github.com/ssargent/yxdb/pkg/storage"
	"github.com/ssargent/yxdb/pkg/store"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <file.yxdb> <record>",
	Short: "Get a single record by index",
	Long: `Get one record from a YXDB file by zero-based index. Records go
through a local cache; a hit reads only the file's schema, not its block
region.

Example:
  yxdb get sales.yxdb 1047`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd)

		index, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad record index %q", args[1])
		}
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		noCache, _ := cmd.Flags().GetBool("no-cache")
		var values []format.Value
		if noCache {
			values, err = readRecordDirect(path, index)
		} else {
			values, err = readRecordCached(cfg.CacheDir, path, index)
		}
		if err != nil {
			return err
		}

		_, meta, err := store.ReadSchema(path)
		if err != nil {
			return err
		}
		for i, v := range values {
			fmt.Printf("%-24s %s\n", meta.Records[0].Fields[i].Name+":", formatValue(v))
		}
		return nil
	},
}

func readRecordDirect(path string, index uint64) ([]format.Value, error) {
	r, err := store.NewReader(store.ReaderConfig{FilePath: path})
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Record(index)
}

func readRecordCached(cacheDir, path string, index uint64) ([]format.Value, error) {
	cache, err := storage.OpenRecordCache(filepath.Join(cacheDir, "records"))
	if err != nil {
		return nil, err
	}
	defer cache.Close()

	ns, err := cache.Namespace(path)
	if err != nil {
		return nil, err
	}

	if raw, ok, err := cache.Get(ns, index); err != nil {
		return nil, err
	} else if ok {
		_, meta, err := store.ReadSchema(path)
		if err != nil {
			return nil, err
		}
		if len(meta.Records) == 0 {
			return nil, store.ErrSchemaRequired
		}
		return store.DecodeRecordWith(&meta.Records[0], raw)
	}

	r, err := store.NewReader(store.ReaderConfig{FilePath: path})
	if err != nil {
		return nil, err
	}
	defer r.Close()

	raw, err := r.RawRecord(index)
	if err != nil {
		return nil, err
	}
	if err := cache.Put(ns, index, raw); err != nil {
		return nil, err
	}
	return r.DecodeRecord(raw)
}

func init() {
	getCmd.Flags().Bool("no-cache", false, "Bypass the record cache")
	rootCmd.AddCommand(getCmd)
}
