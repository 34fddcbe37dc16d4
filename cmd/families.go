package cmd

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/waterpark-sim/waterpark/sim/distribution"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List supported delay distributions and their parameters",
	Run: func(cmd *cobra.Command, args []string) {
		printFamilies(os.Stdout)
	},
}

func printFamilies(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Distribution", "Arity", "Parameters"})
	table.SetBorder(false)
	for _, name := range distribution.Families() {
		arity, _ := distribution.Arity(name)
		table.Append([]string{name, strconv.Itoa(arity), strings.TrimSpace(distribution.Usage(name))})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(familiesCmd)
}
