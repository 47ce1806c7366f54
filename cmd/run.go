package cmd

import (
	"fmt"
	"os"

	"github.com/chidera/unipal/internal/app"
	"github.com/chidera/unipal/internal/llm"
	"github.com/chidera/unipal/internal/profile"
	"github.com/chidera/unipal/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Profiles: profile.NewStore(st.ProfileRepo()),
		Events:   eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The Guru and AI quizzes will be unavailable.")
	} else {
		opts.Provider = provider
	}

	return app.Run(opts)
}
