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
	"github.com/spf13/viper"
	"github.com/xoviat/kparts/lib"
)

// kicadCmd represents the kicad command
var kicadCmd = &cobra.Command{
	Use:   "kicad [args...]",
	Short: "Run kicad-cli against the current directory.",
	Long: `Run kicad-cli against the current directory, locating the binary
from the configured path, PATH, or the newest installed version.

		Example:
			kparts kicad sym upgrade kparts/kparts-resistors.kicad_sym`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ki, err := lib.NewKicadInterface(viper.GetString("kicad-cli"))
		if err != nil {
			fmt.Printf("failed to locate kicad-cli: %s\n", err)
			return
		}

		if err := ki.ExecuteCommand(args, "."); err != nil {
			fmt.Printf("kicad-cli failed: %s\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(kicadCmd)
}
