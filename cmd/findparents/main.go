package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kinhub/kinhub/registry"
)

func main() {
	var root string

	rootCmd := &cobra.Command{
		Use:   "findparents <child name>",
		Short: "Search household files for a child's parents",
		Long:  "Walk a directory of JSON, YAML and XML household files and print every parent listing the named child.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New(root)
			parents, err := reg.FindParents(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("registry search failed: %w", err)
			}
			if len(parents) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no parents found")
				return nil
			}
			for _, parent := range parents {
				fmt.Fprintln(cmd.OutOrStdout(), parent)
			}
			return nil
		},
	}
	rootCmd.Flags().StringVar(&root, "root", "./files", "household files directory")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
