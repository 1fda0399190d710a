package cmd

import (
	"fmt"

	"github.com/okreppe/hoard/pkg/store"
	"github.com/spf13/cobra"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all records from a namespace",
	Long: `Remove every record from the selected namespace. The database file
stays in place and usable.

Example:
  hoard clear -n sessions`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cacheStore, ok := cmd.Context().Value("store").(*store.Store)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		if err := cacheStore.Clear(); err != nil {
			fmt.Printf("Error clearing namespace: %v\n", err)
			return
		}

		fmt.Printf("Successfully cleared namespace\n")
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
