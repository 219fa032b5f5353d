/*
Copyright © 2020 Mars Galactic <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xoviat/kparts/lib"
)

var (
	standard bool
	noEnrich bool
	prefix   string
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install <part> <project-dir>",
	Short: "Convert a catalog part and install it into a project.",
	Long: `Convert an LCSC catalog part into KiCad library files and install
them into a project directory.

		Example:
			kparts install C25725 ./myboard

	The symbol lands in the accumulating library for its category, the
	footprint in the matching .pretty directory, and both library
	tables are updated. Installing the same part twice is a no-op.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		opts := lib.InstallOptions{
			Destination:   args[1],
			LibraryPrefix: prefix,
			UseStandard:   standard,
		}
		if !noEnrich {
			opts.Enrich = lib.NewJLC()
		}

		result, err := lib.Install(lib.NewEasyEDA(), args[0], opts)
		if err != nil {
			fmt.Printf("failed to install %s: %s\n", args[0], err)
			return
		}

		fmt.Printf("%s -> %s (%s)\n", args[0], result.Library, result.SymbolResult)
		if result.FootprintPath != "" {
			fmt.Printf("footprint: %s\n", result.FootprintPath)
		} else {
			fmt.Printf("footprint: %s (standard)\n", result.FootprintRef)
		}

		fmt.Printf("pins: %d, pads: %d", result.Summary.PinCount, result.Summary.PadCount)
		if !result.Summary.Match {
			fmt.Printf(" (counts differ)")
		}
		if result.Summary.PowerPins {
			fmt.Printf(", power pins present")
		}
		fmt.Println()

		if result.Skipped > 0 {
			fmt.Printf("skipped %d malformed shape records\n", result.Skipped)
		}
		if result.Summary.PadCount == 0 && result.FootprintPath != "" {
			fmt.Println("warning: footprint has no pads")
		}
	},
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().BoolVarP(&standard, "standard", "s", false, "Reference standard KiCad footprints for recognized packages.")
	installCmd.Flags().BoolVar(&noEnrich, "no-enrich", false, "Skip the JLC metadata lookup.")
	installCmd.Flags().StringVarP(&prefix, "prefix", "p", "kparts", "Library name prefix inside the project.")
}
