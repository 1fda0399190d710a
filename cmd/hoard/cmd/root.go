/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/okreppe/hoard/pkg/config"
	"github.com/okreppe/hoard/pkg/store"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hoard",
	Short: "Hoard - namespaced cache storage",
	Long: `Hoard is a cache-storage backend that keeps one LMDB database file
per namespace under a shared root directory. Keys and values are raw bytes;
expiration and encoding belong to the caller.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var cfg *config.Config
		if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}

		rootDir, _ := cmd.Flags().GetString("root-dir")
		namespace, _ := cmd.Flags().GetString("namespace")
		opts := resolveOptions(cfg, rootDir, namespace,
			cmd.Flags().Changed("root-dir"), cmd.Flags().Changed("namespace"))

		// Opening is lazy; the store touches the filesystem on first use.
		cacheStore := store.New(opts)
		cmd.SetContext(context.WithValue(cmd.Context(), "store", cacheStore))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cacheStore, ok := cmd.Context().Value("store").(*store.Store); ok {
			cacheStore.Close()
		}
	},
}

// resolveOptions merges the optional config file with command-line flags.
// Explicitly set flags win over the config file; the config file wins over
// flag defaults.
func resolveOptions(cfg *config.Config, rootDir, namespace string, rootDirSet, namespaceSet bool) store.Options {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	opts := cfg.StoreOptions()
	if rootDirSet || opts.RootDir == "" {
		opts.RootDir = rootDir
	}
	if namespaceSet || opts.Namespace == "" {
		opts.Namespace = namespace
	}
	return opts
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("root-dir", "d", "./data", "Root directory holding the namespace files")
	rootCmd.PersistentFlags().StringP("namespace", "n", "default", "Namespace to operate on")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a hoard config file")
}
