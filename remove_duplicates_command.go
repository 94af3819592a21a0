package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garry/songmatch/match"
	"github.com/garry/songmatch/songfile"
)

func newRemoveDuplicatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-duplicates <input-file>",
		Short: "Remove duplicate lines from a song list file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			return removeDuplicates(args[0], output)
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (defaults to rewriting the input file)")

	return cmd
}

// removeDuplicates drops lines that normalize to an already-seen key,
// keeping the first occurrence and the original order. Runs entirely
// offline.
func removeDuplicates(inputFile, outputFile string) error {
	if outputFile == "" {
		outputFile = inputFile
	}

	lines, err := songfile.ReadLines(inputFile)
	if err != nil {
		return err
	}

	unique := match.DeduplicateLines(lines)

	if err := songfile.WriteLines(outputFile, unique); err != nil {
		return err
	}

	fmt.Printf("Removed %d duplicate lines, kept %d\n", len(lines)-len(unique), len(unique))
	return nil
}
