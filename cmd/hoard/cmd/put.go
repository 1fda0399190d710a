package cmd

import (
	"fmt"

	"github.com/okreppe/hoard/pkg/store"
	"github.com/spf13/cobra"
)

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put <key> <value>",
	Short: "Store a key-value pair",
	Long: `Store a key-value pair in the selected namespace. An existing value
for the key is overwritten.

Example:
  hoard put session:41 '{"user":7}' -n sessions`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key := []byte(args[0])
		value := []byte(args[1])

		cacheStore, ok := cmd.Context().Value("store").(*store.Store)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		if err := cacheStore.Store(key, value); err != nil {
			fmt.Printf("Error storing key-value: %v\n", err)
			return
		}

		fmt.Printf("Successfully stored key '%s'\n", string(key))
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
}
