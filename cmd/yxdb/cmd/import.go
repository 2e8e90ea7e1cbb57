package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/yxdb/pkg/format"
	"github.com/ssargent/yxdb/pkg/store"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a CSV file into a new YXDB file",
	Long: `Import CSV rows into a new YXDB file. The schema is given as a
comma-separated list of name:type pairs; the CSV's first row is treated
as a header and skipped. Empty cells import as nulls.

Example:
  yxdb import sales.csv -o sales.yxdb --schema "amount:Double,tax:Double"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd)

		spec, _ := cmd.Flags().GetString("schema")
		metadata, err := parseSchemaSpec(spec)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		description, _ := cmd.Flags().GetString("description")

		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		reader := csv.NewReader(in)
		reader.Comma = rune(cfg.CSV.Delimiter[0])

		w, err := store.NewWriter(store.WriterConfig{
			FilePath:    output,
			Metadata:    *metadata,
			Description: description,
			BlockSize:   cfg.Writer.BlockSize,
		})
		if err != nil {
			return err
		}

		fields := metadata.Records[0].Fields
		header := true
		rows := 0
		for {
			cells, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			if header {
				header = false
				continue
			}
			if len(cells) != len(fields) {
				return fmt.Errorf("row %d has %d cells, schema has %d fields", rows+1, len(cells), len(fields))
			}
			values := make([]format.Value, 0, len(fields))
			for i, cell := range cells {
				v, err := parseValue(fields[i], cell)
				if err != nil {
					return fmt.Errorf("row %d: %w", rows+1, err)
				}
				values = append(values, v)
			}
			if err := w.Append(values); err != nil {
				return err
			}
			rows++
		}
		if err := w.Close(); err != nil {
			return err
		}
		fmt.Printf("Imported %d records into %s\n", rows, output)
		return nil
	},
}

// parseSchemaSpec builds a single-record metadata out of a
// "name:type,name:type" specification.
func parseSchemaSpec(spec string) (*format.Metadata, error) {
	if spec == "" {
		return nil, fmt.Errorf("--schema is required")
	}
	var ri format.RecordInfo
	for _, part := range strings.Split(spec, ",") {
		name, typeName, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("bad schema entry %q, want name:type", part)
		}
		ft := format.FieldTypeByName(typeName)
		if ft == format.Unknown && typeName != "Unknown" {
			return nil, fmt.Errorf("unknown field type %q", typeName)
		}
		ri.Fields = append(ri.Fields, format.Field{Name: name, Type: ft})
	}
	return &format.Metadata{Records: []format.RecordInfo{ri}}, nil
}

func parseValue(f format.Field, cell string) (format.Value, error) {
	if cell == "" {
		return format.NullValue(f.Type), nil
	}
	switch f.Type {
	case format.Double:
		x, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return format.Value{}, fmt.Errorf("field %q: %q is not a number", f.Name, cell)
		}
		return format.DoubleValue(x), nil
	default:
		return format.Value{}, &format.UnimplementedError{Kind: f.Type}
	}
}

func init() {
	importCmd.Flags().StringP("output", "o", "", "Output YXDB file (required)")
	importCmd.Flags().String("schema", "", `Record schema as "name:type,..." (required)`)
	importCmd.Flags().String("description", "", "Header description label")
	importCmd.MarkFlagRequired("output")
	importCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(importCmd)
}
