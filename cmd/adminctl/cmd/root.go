// Package cmd wires the adminctl command tree.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/contactdesk/contacts-system/internal/client/config"
	"github.com/contactdesk/contacts-system/internal/client/rest"
	"github.com/contactdesk/contacts-system/internal/client/session"
	"github.com/contactdesk/contacts-system/pkg/logger"
)

var (
	serverURL string
	assumeYes bool

	app *appContext
)

// appContext holds the wired client dependencies every subcommand uses.
type appContext struct {
	cfg     *config.Config
	log     zerolog.Logger
	api     *rest.Client
	session *session.Manager
}

var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Administrative client for the contacts system",
	Long: `adminctl manages contacts and users against a contacts-system backend:
login, list/create/edit/delete contacts, and (for administrators) the same
for user accounts.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if serverURL != "" {
		cfg.BaseURL = serverURL
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr})

	store := session.NewStore(cfg.StateFile)
	api := rest.NewClient(cfg.BaseURL, store)
	mgr := session.NewManager(store, api, nil, log)

	app = &appContext{cfg: cfg, log: log, api: api, session: mgr}
	return nil
}

// confirm asks on stdin before a destructive action; --yes skips the prompt.
func confirm(prompt string) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL (overrides CONTACTS_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to confirmation prompts")
}
