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

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the basic parts list",
	Long:  `Load the basic parts list from the JLCPCB website into the local cache.`,
	Run: func(cmd *cobra.Command, args []string) {
		library, err := lib.NewLibrary(viper.GetString("root"))
		if err != nil {
			fmt.Printf("failed to open or create default library: %s\n", err)
			return
		}
		defer library.Close()

		fmt.Println("loading basic components from JLCPCB")
		client := lib.NewJLC()

		components, errs := client.SelectBaseComponentList()

		if err := library.ImportBasic(components, errs); err != nil {
			fmt.Println("failed to load basic component list")
			return
		}

		n, err := library.IndexPending()
		if err != nil {
			fmt.Printf("failed to index loaded components: %s\n", err)
			return
		}

		fmt.Printf("indexed %d components\n", n)
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
