package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/yxdb/pkg/store"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema <file.yxdb>",
	Short: "Show the record schemas of a YXDB file",
	Long: `Show every record schema a YXDB file declares, one field per
line with its type and optional size and scale.

Example:
  yxdb schema sales.yxdb`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, meta, err := store.ReadSchema(args[0])
		if err != nil {
			return err
		}

		for i, ri := range meta.Records {
			fmt.Printf("record schema %d (%d fields)\n", i, len(ri.Fields))
			for _, f := range ri.Fields {
				line := fmt.Sprintf("  %-24s %s", f.Name, f.Type)
				if f.Size != 0 {
					line += fmt.Sprintf(" size=%d", f.Size)
				}
				if f.Scale != 0 {
					line += fmt.Sprintf(" scale=%d", f.Scale)
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
