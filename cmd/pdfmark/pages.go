// Copyright Colosal Media S.L., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colosal/pdfmark/internal/assemble"
)

var pagesCmd = &cobra.Command{
	Use:   "pages [input.pdf]",
	Short: "Print the page count of a PDF",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPages,
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}

func runPages(cmd *cobra.Command, args []string) error {
	input := viper.GetString("input")
	if len(args) == 1 {
		input = args[0]
	}

	n, err := assemble.PageCount(input)
	if err != nil {
		return err
	}
	fmt.Println(n)
	return nil
}
