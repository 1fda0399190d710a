package cmd

import (
	"fmt"

	"github.com/okreppe/hoard/pkg/store"
	"github.com/spf13/cobra"
)

// namespacesCmd represents the namespaces command
var namespacesCmd = &cobra.Command{
	Use:   "namespaces",
	Short: "List namespaces under the root directory",
	Long: `List every namespace that has a database file under the root
directory, one per line.

Example:
  hoard namespaces -d /var/cache/hoard`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cacheStore, ok := cmd.Context().Value("store").(*store.Store)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		namespaces, err := cacheStore.Namespaces()
		if err != nil {
			fmt.Printf("Error listing namespaces: %v\n", err)
			return
		}

		for _, ns := range namespaces {
			fmt.Printf("%s\n", ns)
		}
	},
}

func init() {
	rootCmd.AddCommand(namespacesCmd)
}
