/*
Copyright © 2025 Agentuity, Inc.

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/agentuity/go-common/env"
	"github.com/agentuity/go-common/logger"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcozac/go-jsonc"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version string = "dev"
	Commit  string = "dev"
	Date    string
)

var cfgFile string

var logoColor = lipgloss.AdaptiveColor{Light: "#11c7b9", Dark: "#00FFFF"}
var logoStyle = lipgloss.NewStyle().Foreground(logoColor)
var logoBox = lipgloss.NewStyle().
	Width(52).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(logoColor).
	Padding(0, 1).
	AlignVertical(lipgloss.Top).
	AlignHorizontal(lipgloss.Left).
	Foreground(logoColor)

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd())

var rootCmd = &cobra.Command{
	Use:   "globsmith",
	Short: "globsmith matches glob patterns against a filesystem with gitignore-style exclusion",
	PreRun: func(cmd *cobra.Command, args []string) {
		cmd.Long = render(fmt.Sprintf(`%s

Version: %s`, logoStyle.Render("⨯ globsmith"), Version))
	},
	Run: func(cmd *cobra.Command, args []string) {
		if version, _ := cmd.Flags().GetBool("version"); version {
			fmt.Println(Version)
			return
		}
		cmd.Help()
	},
}

func render(s string) string {
	if !colorEnabled {
		return s
	}
	return logoBox.Render(s)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the console logger the way every teacher command does
// via env.NewLogger(cmd), which reads the bound --log-level flag itself.
func newLogger(cmd *cobra.Command) logger.Logger {
	return env.NewLogger(cmd)
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "print out the version")
	rootCmd.Flags().MarkHidden("version")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .globsmithrc.jsonc in the working directory)")
	rootCmd.PersistentFlags().String("log-level", "info", "the log level to use")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads .globsmithrc.jsonc from the working directory (or the
// file named by --config) using go-jsonc so comments are permitted, the
// same tolerant-config idiom the teacher applies to tsconfig.json via
// jsonc.Unmarshal in internal/provider/utils.go. A missing file is not an
// error; a malformed one is.
func initConfig() {
	path := cfgFile
	if path == "" {
		path = ".globsmithrc.jsonc"
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	content, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		log.Fatalf("failed to read config file %s: %s", abs, err)
	}
	var decoded map[string]any
	if err := jsonc.Unmarshal(content, &decoded); err != nil {
		log.Fatalf("failed to parse config file %s: %s", abs, err)
	}
	for k, v := range decoded {
		viper.Set(k, v)
	}
}
