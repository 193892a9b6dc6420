package main

import (
	"fmt"

	"github.com/globsmith/globsmith"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find [patterns...]",
	Short: "Find paths matching one or more glob patterns",
	Long: `Find paths matching one or more glob patterns, with optional
gitignore-style exclusion.

Examples:
  globsmith find "**/*.go"
  globsmith find "src/**/*.ts" "!**/*.test.ts" --gitignore`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger(cmd)

		dot, _ := cmd.Flags().GetBool("dot")
		absolute, _ := cmd.Flags().GetBool("absolute")
		gitignore, _ := cmd.Flags().GetBool("gitignore")
		onlyDirs, _ := cmd.Flags().GetBool("only-directories")
		markDirs, _ := cmd.Flags().GetBool("mark-directories")
		caseInsensitive, _ := cmd.Flags().GetBool("ignore-case")
		deep, _ := cmd.Flags().GetInt("deep")

		opts := []glob.Option{
			glob.WithDot(dot),
			glob.WithAbsolute(absolute),
			glob.WithGitignore(gitignore),
			glob.WithMarkDirectories(markDirs),
			glob.WithCaseSensitiveMatch(!caseInsensitive),
			glob.WithLogger(log),
		}
		if onlyDirs {
			opts = append(opts, glob.WithOnlyDirectories(true))
		}
		if cmd.Flags().Changed("deep") {
			opts = append(opts, glob.WithDeep(deep))
		}

		results, err := glob.Glob(args, glob.NewOptions(opts...))
		if err != nil {
			log.Error("glob failed: %s", err)
			return
		}
		for _, r := range results {
			fmt.Println(r)
		}
	},
}

func init() {
	findCmd.Flags().Bool("dot", false, "include dotfile entries")
	findCmd.Flags().Bool("absolute", false, "emit absolute paths")
	findCmd.Flags().Bool("gitignore", false, "exclude paths ignored by the surrounding .gitignore files")
	findCmd.Flags().Bool("only-directories", false, "keep only directories")
	findCmd.Flags().Bool("mark-directories", false, "append a trailing separator to directory paths")
	findCmd.Flags().Bool("ignore-case", false, "match patterns case-insensitively")
	findCmd.Flags().Int("deep", 0, "maximum recursion depth for ** patterns")
}
