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

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import the LCSC parts spreadsheet into the local cache.",
	Long: `Import the LCSC parts spreadsheet into the local cache.

		- The parts library in the xlsx format.
		- The same sheet inside the zip archive JLC distributes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]
		if !lib.Exists(src) {
			fmt.Printf("failed to stat file: %s\n", src)
			return
		}

		library, err := lib.NewLibrary(viper.GetString("root"))
		if err != nil {
			fmt.Printf("failed to open or create default library: %s\n", err)
			return
		}
		defer library.Close()

		if err := library.Import(src); err != nil {
			fmt.Printf("failed to import library: %s\n", err)
			return
		}

		n, err := library.IndexPending()
		if err != nil {
			fmt.Printf("failed to index imported components: %s\n", err)
			return
		}

		fmt.Printf("indexed %d components\n", n)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
