package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Run a single assistant cycle",
	Long:  `Processes one natural-language query and prints the answer.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		agent, logg, err := buildAgent()
		if err != nil {
			return err
		}
		defer logg.Sync()

		answer, err := agent.RunCycle(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Println(answer)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(askCmd)
}
