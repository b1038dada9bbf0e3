package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jon4hz/feedback/internal/config"
	"github.com/jon4hz/feedback/internal/database"
)

var resetCmdFlags struct {
	Yes bool
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop all data and recreate the database schema",
	Long:  `This command drops the users and feedbacks tables and recreates an empty schema. All accounts and feedback records are lost.`,
	Run:   reset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetCmdFlags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(resetCmd)
}

func reset(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if !resetCmdFlags.Yes {
		fmt.Printf("This deletes all users and feedback in %s. Continue? [y/N] ", cfg.Database.Path)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return
		}
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close() //nolint:errcheck

	if err := db.Reset(); err != nil {
		log.Fatalf("failed to reset database: %v", err)
	}

	log.Info("database reset completed", "path", cfg.Database.Path)
}
