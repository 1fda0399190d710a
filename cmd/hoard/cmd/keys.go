package cmd

import (
	"fmt"

	"github.com/okreppe/hoard/pkg/store"
	"github.com/spf13/cobra"
)

// keysCmd represents the keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all keys in a namespace",
	Long: `List every key currently stored in the selected namespace, one per
line. Output order is engine-defined.

Example:
  hoard keys -n sessions`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cacheStore, ok := cmd.Context().Value("store").(*store.Store)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		keys, err := cacheStore.Keys()
		if err != nil {
			fmt.Printf("Error listing keys: %v\n", err)
			return
		}

		for _, key := range keys {
			fmt.Printf("%s\n", string(key))
		}
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
