package main

import (
	"io"

	"github.com/govalues/calculator"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var cmdDomains = &cobra.Command{
	Use:   "domains",
	Short: "List the numeric domains",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printDomains(cmd.OutOrStdout())
	},
}

// domainNotes describes the failure modes of each class of domain.
func domainNotes(k calculator.Kind) (extra, errs string) {
	switch {
	case k.IsFloat():
		return ".", "none (IEEE 754)"
	case k.IsInteger():
		return "", "underflow, division by zero, negative power"
	default:
		return "/", "overflow, division by zero, fractional power"
	}
}

func printDomains(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Domain", "C name", "Extra key", "Errors"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	for _, k := range calculator.Kinds() {
		extra, errs := domainNotes(k)
		table.Append([]string{k.String(), k.CName(), extra, errs})
	}
	table.Render()
}
