package cmd

import (
	"fmt"

	"github.com/okreppe/hoard/pkg/store"
	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get the value stored for a key",
	Long: `Get the value stored for a key in the selected namespace.

Example:
  hoard get session:41 -n sessions`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := []byte(args[0])

		cacheStore, ok := cmd.Context().Value("store").(*store.Store)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		value, found, err := cacheStore.Fetch(key)
		if err != nil {
			fmt.Printf("Error getting value: %v\n", err)
			return
		}
		if !found {
			fmt.Printf("Key '%s' not found\n", string(key))
			return
		}

		fmt.Printf("%s\n", string(value))
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
