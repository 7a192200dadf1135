package cmd

import (
	"deepcheck_api/config"
	"deepcheck_api/service/worker"

	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Deepcheck background worker.",
	Long:  `Runs webhook delivery and detection cache maintenance tasks.`,
	Run: func(cmd *cobra.Command, args []string) {
		config.MustLoad(cfgFile)
		worker.Run()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
