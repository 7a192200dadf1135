package cmd

import (
	"deepcheck_api/config"
	"deepcheck_api/service/api"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "api",
	Short: "Deepcheck detection API service.",
	Long:  `Deepcheck detection API service.`,
	Run: func(cmd *cobra.Command, args []string) {
		config.MustLoad(cfgFile)
		api.Run()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
