// @title Glutivia API
// @version 1.0
// @description Gluten-free storefront: catalog, cart, checkout, community board and AI kitchen.
// @BasePath /api/v1
// @securityDefinitions.apikey CustomerToken
// @in header
// @name Authorization
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "glutivia/docs"
)

var Version = "dev"

func main() {
	var configPath string
	rootCmd := &cobra.Command{
		Use:     "glutivia",
		Short:   "Glutivia gluten-free storefront service",
		Version: Version,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(communityCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
