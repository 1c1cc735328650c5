package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"codeberg.org/ashren/forvault/internal/cli"
	"codeberg.org/ashren/forvault/internal/history"
	"codeberg.org/ashren/forvault/internal/language"
	"codeberg.org/ashren/forvault/internal/phonetic"
	"codeberg.org/ashren/forvault/internal/pronounce"
	"codeberg.org/ashren/forvault/internal/vault"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// errReported marks failures the notifier already surfaced, so they are not
// printed a second time.
var errReported = errors.New("failure already reported")

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Pull config file values into flags not set on the command line
	flags.ApplyConfig()

	// Handle --languages flag
	if flags.ListLanguages {
		for _, name := range language.Names() {
			code, _ := language.Code(name)
			fmt.Printf("%-20s %s\n", name, code)
		}
		return nil
	}

	// Handle --history flag
	if flags.History {
		return printHistory(flags.HistoryLimit)
	}

	if len(args) == 0 {
		return fmt.Errorf("please provide a word to look up")
	}
	word := args[0]

	apiKey := cli.GetForvoKey()
	if apiKey == "" {
		return fmt.Errorf("Forvo API key is required (set FORVO_API_KEY or forvo.api_key in the config)")
	}

	// Resolve a language name to the service code; unknown values are sent
	// raw, code validation is the server's job.
	if flags.Language != "" {
		if code, ok := language.Code(flags.Language); ok {
			flags.Language = code
		}
	}

	opts, err := flags.SearchOptions()
	if err != nil {
		return err
	}

	var editor pronounce.Editor
	if flags.NoteFile != "" {
		note, err := vault.OpenNote(flags.NoteFile)
		if err != nil {
			return err
		}
		editor = note
	}

	store := openHistory()
	if store != nil {
		defer store.Close()
	}

	downloader := pronounce.New(pronounce.Config{
		APIKey:   apiKey,
		BasePath: flags.OutputDir,
		Storage:  vault.NewDir(flags.VaultDir),
		Editor:   editor,
		Notifier: pronounce.NotifierFunc(func(message string) {
			fmt.Println(message)
		}),
		History: store,
	})

	ctx := context.Background()
	result, err := downloader.Download(ctx, word, opts)
	if err != nil {
		if errors.Is(err, pronounce.ErrEmptyWord) {
			return fmt.Errorf("please select a word first")
		}
		// The notifier already surfaced the failure; exit non-zero quietly.
		return errReported
	}

	if flags.IPA && result.Found {
		fetchIPA(ctx, word, flags.Language, editor)
	}

	return nil
}

// fetchIPA fetches an IPA transcription and inserts it under the embed
// reference. Failures are warnings, never a failed download.
func fetchIPA(ctx context.Context, word, langCode string, editor pronounce.Editor) {
	apiKey := cli.GetOpenAIKey()
	if apiKey == "" {
		fmt.Fprintf(os.Stderr, "Warning: --ipa requires an OpenAI API key (set OPENAI_API_KEY or phonetic.openai_key)\n")
		return
	}

	langName := ""
	for _, l := range language.Supported {
		if l.Code == langCode {
			langName = l.Name
			break
		}
	}

	ipa, err := phonetic.NewFetcher(apiKey).Fetch(ctx, word, langName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to fetch IPA transcription: %v\n", err)
		return
	}

	fmt.Printf("IPA: %s\n", ipa)
	if editor != nil {
		if err := editor.InsertAtCursor(ipa + "\n"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to insert IPA transcription: %v\n", err)
		}
	}
}

func printHistory(limit int) error {
	store := openHistory()
	if store == nil {
		return fmt.Errorf("failed to open download history")
	}
	defer store.Close()

	entries, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No downloads recorded yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-15s %s\n", e.DownloadedAt.Format("2006-01-02 15:04"), e.Word, e.Path)
	}
	return nil
}

// openHistory opens the download log in the XDG state directory. A missing
// history store degrades to not recording, never to a failed download.
func openHistory() *history.Store {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	stateDir := filepath.Join(home, ".local", "state", "forvault")
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create state directory: %v\n", err)
		return nil
	}

	store, err := history.Open(filepath.Join(stateDir, "history.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open download history: %v\n", err)
		return nil
	}
	return store
}
