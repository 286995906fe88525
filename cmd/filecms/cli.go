package main

import (
	"github.com/spf13/cobra"
)

type cli struct {
	root *cobra.Command

	configPath string
}

func newCLI() *cli {
	c := &cli{}
	c.root = &cobra.Command{
		Use:   "filecms",
		Short: "File based content manager",
		Long: `filecms serves every .txt and .md file of a data directory, renders
markdown to HTML and lets signed-in users create, edit and delete documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./filecms.yaml when present)")

	c.root.AddCommand(c.newServeCmd())
	c.root.AddCommand(c.newHashPasswordCmd())
	return c
}
