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

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xoviat/kparts/lib"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the local parts cache.",
	Long: `Search the local parts cache.

	With a query argument the matches are printed once; without one an
	interactive prompt suggests part codes as you type.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		library, err := lib.NewLibrary(viper.GetString("root"))
		if err != nil {
			fmt.Printf("failed to open or create default library: %s\n", err)
			return
		}
		defer library.Close()

		if len(args) == 1 {
			for _, component := range library.Find(args[0]) {
				fmt.Printf("%s\t%s\t%s\t%s\n",
					component.ID, component.MFRPart, component.Package, component.Description)
			}

			return
		}

		fmt.Println("Enter a search query:")
		id := prompt.Input("> ", func(d prompt.Document) []prompt.Suggest {
			suggestions := []prompt.Suggest{}
			for _, component := range library.Find(d.Text) {
				suggestions = append(suggestions, prompt.Suggest{
					Text:        component.ID,
					Description: component.Description,
				})
			}

			return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
		})

		if id == "" {
			return
		}

		if component := library.Get(id); component != nil {
			fmt.Printf("%s\t%s\t%s\t%s\n",
				component.ID, component.MFRPart, component.Package, component.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
