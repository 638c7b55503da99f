package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"caesar/internal/ctxlog"
	"caesar/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past transforms",
	Long: `Lists every journaled transform, oldest first: when it ran, whether it
encrypted or decrypted, the method, the rotation distance and the number of
characters processed.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	config, err := LoadConfig(ctx, configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if config.History == "" {
		return errors.New("the transform journal is disabled in the config")
	}

	history.Open(history.Config{File: config.History})
	defer ctxlog.Close(ctx, "history", history.Closer())

	n := 0
	for r := range history.All() {
		cmd.Printf("%s  %-7s  method=%-7s  rotate=%-4d  chars=%d\n",
			r.Time.Local().Format(time.DateTime), r.Action, r.Method, r.Rotation, r.Chars)
		n++
	}
	if n == 0 {
		cmd.Println("No transforms recorded yet.")
	}
	return nil
}
