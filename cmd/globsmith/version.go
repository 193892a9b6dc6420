package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of globsmith",
	Long: `Print the version of globsmith.

Flags:
  --long    Print the long version including commit hash and build date`,
	Run: func(cmd *cobra.Command, args []string) {
		long, _ := cmd.Flags().GetBool("long")
		if long {
			fmt.Println("Version: " + Version)
			fmt.Println("Commit: " + Commit)
			fmt.Println("Date: " + Date)
			return
		}
		fmt.Println(Version)
	},
}

func init() {
	versionCmd.Flags().Bool("long", false, "print the long version including commit hash and build date")
}
