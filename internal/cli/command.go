package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/ashren/forvault/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forvault [word]",
		Short: "Forvo pronunciation downloader for markdown vaults",
		Long: `forvault looks a word up on Forvo, downloads the first pronunciation's
MP3 into your vault and can insert an embed reference into a note.

Examples:
  forvault hello                        # Download the English pronunciation of "hello"
  forvault -l French bonjour            # Pick a language by name or service code
  forvault --note daily.md hello        # Also insert ![[...]] into the note
  forvault --history                    # Show recent downloads`,
		Args:          cobra.MaximumNArgs(1),
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.forvault.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.VaultDir, "vault", flags.VaultDir, "Vault root directory")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Base path for audio files, relative to the vault")
	cmd.Flags().StringVar(&flags.NoteFile, "note", "", "Note file to insert the embed reference into")

	// Lookup filters
	cmd.Flags().StringVarP(&flags.Language, "language", "l", "", "Language name or service code (see --languages)")
	cmd.Flags().StringVar(&flags.Country, "country", "", "Limit results to contributors from a country")
	cmd.Flags().StringVar(&flags.Username, "username", "", "Limit results to one contributor")
	cmd.Flags().StringVar(&flags.Sex, "sex", "", "Voice sex filter (m or f)")
	cmd.Flags().IntVar(&flags.MinRating, "min-rating", 0, "Minimum pronunciation rating")
	cmd.Flags().StringVar(&flags.Order, "order", "", "Result order: date-desc, date-asc, rate-desc, rate-asc")
	cmd.Flags().IntVar(&flags.Limit, "limit", 0, "Maximum number of results the server returns")

	// Side features
	cmd.Flags().BoolVar(&flags.IPA, "ipa", false, "Also fetch an IPA transcription (requires an OpenAI API key)")
	cmd.Flags().BoolVar(&flags.History, "history", false, "List recent downloads and exit")
	cmd.Flags().IntVar(&flags.HistoryLimit, "history-limit", flags.HistoryLimit, "Number of history entries to list")
	cmd.Flags().BoolVar(&flags.ListLanguages, "languages", false, "List supported languages and exit")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("vault.directory", cmd.Flags().Lookup("vault"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("forvo.language", cmd.Flags().Lookup("language"))
	viper.BindPFlag("forvo.country", cmd.Flags().Lookup("country"))
	viper.BindPFlag("forvo.username", cmd.Flags().Lookup("username"))
	viper.BindPFlag("forvo.sex", cmd.Flags().Lookup("sex"))
	viper.BindPFlag("forvo.min_rating", cmd.Flags().Lookup("min-rating"))
	viper.BindPFlag("forvo.order", cmd.Flags().Lookup("order"))
	viper.BindPFlag("forvo.limit", cmd.Flags().Lookup("limit"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".forvault" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".forvault")
	}

	// Environment variables
	viper.SetEnvPrefix("FORVAULT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetForvoKey retrieves the Forvo API key from environment or config
func GetForvoKey() string {
	// First check environment variable
	if key := os.Getenv("FORVO_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("forvo.api_key")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("phonetic.openai_key")
}
