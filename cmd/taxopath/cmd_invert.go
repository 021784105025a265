package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taxopath/taxopath/hierarchy"
)

var (
	invertIn  string
	invertOut string

	invertCmd = &cobra.Command{
		Use:   "invert",
		Short: "Invert a child→parents mapping into parent→children",
		RunE:  runInvert,
	}
)

func init() {
	f := invertCmd.Flags()
	f.StringVar(&invertIn, "in", "child_to_parents.json", "child→parents mapping file to invert")
	f.StringVar(&invertOut, "out", "parent_to_children.json", "where to write the inverted mapping")
	rootCmd.AddCommand(invertCmd)
}

func runInvert(cmd *cobra.Command, _ []string) error {
	m, err := hierarchy.LoadMapping(invertIn)
	if err != nil {
		return fmt.Errorf("taxopath: %w", err)
	}
	inv := hierarchy.Invert(m)
	if err = hierarchy.SaveMapping(invertOut, inv); err != nil {
		return fmt.Errorf("taxopath: %w", err)
	}
	log.Info("mapping inverted",
		"in", invertIn,
		"out", invertOut,
		"children", len(m),
		"parents", len(inv))
	return nil
}
