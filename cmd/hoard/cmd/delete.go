package cmd

import (
	"fmt"

	"github.com/okreppe/hoard/pkg/store"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a key-value pair",
	Long: `Delete a key-value pair from the selected namespace. Deleting a key
that does not exist succeeds without error.

Example:
  hoard delete session:41 -n sessions`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := []byte(args[0])

		cacheStore, ok := cmd.Context().Value("store").(*store.Store)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		if err := cacheStore.Remove(key); err != nil {
			fmt.Printf("Error deleting key: %v\n", err)
			return
		}

		fmt.Printf("Successfully deleted key '%s'\n", string(key))
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
