// Package cli implements the caesar command surface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"caesar/internal/ctxlog"
	"caesar/internal/history"
	"caesar/internal/rot"
	"caesar/internal/store"
)

var (
	configPath string
	inputFile  string
	method     string
	rotation   int
	encrypt    bool
	decrypt    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "caesar [MESSAGE]",
	Short: "Encrypt or decrypt text with a 27-symbol Caesar cipher",
	Long: `Provide either a file or a MESSAGE to encrypt. Decrypt the most recent
ciphertext stored in "encrypted.txt".

Encrypted text is saved in "encrypted.txt" and decrypted text is saved in
"decrypted.txt". Encryption and decryption must use the same --rotate
value: to decrypt a message encrypted with anything other than the default
of 3, pass the same --rotate again along with --decrypt.`,
	Example: `  caesar -r 15 "The boats launch at midnight."
  caesar -r 15 -d`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		if verbose {
			ctxlog.SetLevel(slog.LevelInfo)
		}
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigFile, "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "file to encrypt")
	rootCmd.Flags().StringVarP(&method, "method", "m", string(rot.Table), "encryption method: table or modular")
	rootCmd.Flags().IntVarP(&rotation, "rotate", "r", 3, `"distance" to rotate`)
	rootCmd.Flags().BoolVarP(&encrypt, "encrypt", "e", false, "encrypt MESSAGE")
	rootCmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt the stored ciphertext")
	rootCmd.MarkFlagsMutuallyExclusive("encrypt", "decrypt")
}

// Execute runs the command surface. Errors come back to the caller instead
// of being printed by cobra, so main can log and exit.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	config, err := LoadConfig(ctx, configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Explicit flags win over the config file.
	if !cmd.Flags().Changed("rotate") {
		rotation = config.Rotate
	}
	if !cmd.Flags().Changed("method") {
		method = config.Method
	}

	m := rot.Method(method)
	if !m.Valid() {
		return fmt.Errorf("unknown method %q: must be %q or %q", method, rot.Table, rot.Modular)
	}

	files := store.Store{
		Encrypted: config.Encrypted,
		Decrypted: config.Decrypted,
	}

	if config.History != "" {
		history.Open(history.Config{File: config.History})
		defer ctxlog.Close(ctx, "history", history.Closer())
	}

	// Encrypt unless decryption was asked for explicitly.
	if decrypt {
		return runDecrypt(ctx, files, rotation, m)
	}
	return runEncrypt(ctx, args, files, rotation, m)
}

func runEncrypt(ctx context.Context, args []string, files store.Store, rotation int, m rot.Method) error {
	logger := ctxlog.Get(ctx)

	var message string
	if len(args) > 0 {
		message = args[0]
	}
	if inputFile != "" {
		var err error
		message, err = store.ReadText(inputFile)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("could not find %s", inputFile)
			}
			return err
		}
	}
	if message == "" {
		return errors.New("there is no text to encrypt")
	}

	logger.Info("encrypting", "method", m, "rotate", rotation, "chars", len(message))

	err := files.WriteCiphertext(rot.Transform(message, rotation, m))
	if err != nil {
		return err
	}

	record(ctx, "encrypt", m, rotation, len(message))
	logger.Info("ciphertext saved", "file", files.Encrypted)
	return nil
}

func runDecrypt(ctx context.Context, files store.Store, rotation int, m rot.Method) error {
	logger := ctxlog.Get(ctx)

	ciphertext, err := files.ReadCiphertext()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not find %s", files.Encrypted)
		}
		return err
	}

	logger.Info("decrypting", "method", m, "rotate", rotation, "chars", len(ciphertext))

	err = files.WritePlaintext(rot.Transform(ciphertext, -rotation, m))
	if err != nil {
		return err
	}

	record(ctx, "decrypt", m, rotation, len(ciphertext))
	logger.Info("plaintext saved", "file", files.Decrypted)
	return nil
}

// record journals a completed transform. Journal failures never fail the
// transform itself.
func record(ctx context.Context, action string, m rot.Method, rotation, chars int) {
	if !history.Enabled() {
		return
	}

	err := history.Append(history.Record{
		Time:     time.Now(),
		Action:   action,
		Method:   string(m),
		Rotation: rotation,
		Chars:    chars,
	})
	if err != nil {
		ctxlog.Get(ctx).Warn("journal append failed", "error", err)
	}
}
