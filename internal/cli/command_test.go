package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "forvault [word]" {
		t.Errorf("Expected Use to be 'forvault [word]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "pronunciation downloader") {
		t.Errorf("Expected Short description to contain 'pronunciation downloader'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"vault", true},
		{"output", true},
		{"note", true},
		{"language", true},
		{"country", true},
		{"username", true},
		{"sex", true},
		{"min-rating", true},
		{"order", true},
		{"limit", true},
		{"ipa", true},
		{"history", true},
		{"history-limit", true},
		{"languages", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test default values
	outputFlag := cmd.Flags().Lookup("output")
	if outputFlag == nil {
		t.Fatal("output flag not found")
	}
	if outputFlag.DefValue != "pronunciations" {
		t.Errorf("Expected default output dir to be 'pronunciations', got %s", outputFlag.DefValue)
	}

	vaultFlag := cmd.Flags().Lookup("vault")
	if vaultFlag == nil {
		t.Fatal("vault flag not found")
	}
	if vaultFlag.DefValue != "." {
		t.Errorf("Expected default vault dir to be '.', got %s", vaultFlag.DefValue)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	InitConfig("")

	// Test environment variable prefix
	os.Setenv("FORVAULT_TEST_VAR", "test-value")
	defer os.Unsetenv("FORVAULT_TEST_VAR")

	if viper.GetString("test_var") != "test-value" {
		t.Error("Environment variable not properly loaded")
	}
}

func TestGetForvoKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:      "from environment",
			envKey:    "env-test-key",
			configKey: "config-test-key",
			expected:  "env-test-key",
		},
		{
			name:      "from config when no env",
			envKey:    "",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:      "empty when neither set",
			envKey:    "",
			configKey: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper
			viper.Reset()

			// Set up environment
			if tt.envKey != "" {
				os.Setenv("FORVO_API_KEY", tt.envKey)
				defer os.Unsetenv("FORVO_API_KEY")
			} else {
				os.Unsetenv("FORVO_API_KEY")
			}

			// Set up config
			if tt.configKey != "" {
				viper.Set("forvo.api_key", tt.configKey)
			}

			got := GetForvoKey()
			if got != tt.expected {
				t.Errorf("GetForvoKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestApplyConfigReadsConfigFile(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Config file sets a vault dir, a language and an output dir
	cfgFile := filepath.Join(t.TempDir(), ".forvault.yaml")
	cfg := "vault:\n  directory: /data/vault\noutput:\n  directory: from-config\nforvo:\n  language: \"41\"\n"
	if err := os.WriteFile(cfgFile, []byte(cfg), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() failed: %v", err)
	}

	// The output flag is set explicitly and must win over the config file
	cmd.Flags().Set("output", "from-flag")

	flags.ApplyConfig()

	if flags.VaultDir != "/data/vault" {
		t.Errorf("Expected vault dir '/data/vault' from config, got %q", flags.VaultDir)
	}
	if flags.Language != "41" {
		t.Errorf("Expected language '41' from config, got %q", flags.Language)
	}
	if flags.OutputDir != "from-flag" {
		t.Errorf("Expected explicit flag to win, got %q", flags.OutputDir)
	}
}

func TestApplyConfigKeepsDefaults(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// No config file, no flags set: the defaults survive the round trip
	flags.ApplyConfig()

	if flags.VaultDir != "." {
		t.Errorf("Expected default vault dir '.', got %q", flags.VaultDir)
	}
	if flags.OutputDir != "pronunciations" {
		t.Errorf("Expected default output dir 'pronunciations', got %q", flags.OutputDir)
	}
	if flags.Language != "" || flags.MinRating != 0 || flags.Limit != 0 {
		t.Error("Expected filter flags to stay at their zero values")
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("output", "audio/forvo")
	cmd.Flags().Set("language", "39")
	cmd.Flags().Set("order", "rate-desc")

	bindFlagsToViper(cmd)

	// Test that values are bound
	if viper.GetString("output.directory") != "audio/forvo" {
		t.Errorf("Expected output.directory to be audio/forvo, got %s", viper.GetString("output.directory"))
	}

	if viper.GetString("forvo.language") != "39" {
		t.Errorf("Expected forvo.language to be 39, got %s", viper.GetString("forvo.language"))
	}

	if viper.GetString("forvo.order") != "rate-desc" {
		t.Errorf("Expected forvo.order to be rate-desc, got %s", viper.GetString("forvo.order"))
	}
}
