package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"storage-assistant/core/config"
	"storage-assistant/core/llm"
	"storage-assistant/core/logger"
	"storage-assistant/core/storage"
	"storage-assistant/feature/assistant"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive assistant prompt",
	Long:  `Starts a line-based prompt. Each line is processed as one assistant cycle; type 'exit' to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		agent, logg, err := buildAgent()
		if err != nil {
			return err
		}
		defer logg.Sync()

		fmt.Println("Welcome to the Storage Assistant. You can ask me about your buckets or objects.")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("Ask me anything about your storage (or type 'exit' to quit): ")
			if !scanner.Scan() {
				break
			}

			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			if strings.EqualFold(input, "exit") {
				fmt.Println("Exiting... Goodbye!")
				break
			}

			answer, err := agent.RunCycle(cmd.Context(), input)
			if err != nil {
				logg.Error("Cycle failed", zap.Error(err))
				fmt.Println("Sorry, I could not process that request. Please try again.")
				continue
			}
			fmt.Println(answer)
			fmt.Println()
		}
		return scanner.Err()
	},
}

// buildAgent constructs the gateways and the agent shared by the chat and
// ask commands. Both gateways fail fast when credentials are missing.
func buildAgent() (*assistant.Agent, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logg)

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	model, err := llm.NewClient(cfg.Model)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create model client: %w", err)
	}

	agent, err := assistant.NewDefaultAgent(model, store, logg)
	if err != nil {
		return nil, nil, err
	}
	return agent, logg, nil
}

func init() {
	RootCmd.AddCommand(chatCmd)
}
