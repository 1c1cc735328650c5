package cli

import (
	"github.com/spf13/viper"

	"codeberg.org/ashren/forvault/internal/forvo"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	VaultDir  string
	OutputDir string // base path for audio files, relative to the vault
	NoteFile  string // note receiving the embed reference

	// Lookup filters
	Language  string
	Country   string
	Username  string
	Sex       string
	MinRating int
	Order     string
	Limit     int

	// Side features
	IPA           bool
	History       bool
	HistoryLimit  int
	ListLanguages bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		VaultDir:     ".",
		OutputDir:    "pronunciations",
		HistoryLimit: 20,
	}
}

// ApplyConfig reads the bound viper keys back into the flag values, so
// config file entries take effect for flags not set on the command line. A
// flag set explicitly still wins over the config file.
func (f *Flags) ApplyConfig() {
	f.VaultDir = viper.GetString("vault.directory")
	f.OutputDir = viper.GetString("output.directory")
	f.Language = viper.GetString("forvo.language")
	f.Country = viper.GetString("forvo.country")
	f.Username = viper.GetString("forvo.username")
	f.Sex = viper.GetString("forvo.sex")
	f.MinRating = viper.GetInt("forvo.min_rating")
	f.Order = viper.GetString("forvo.order")
	f.Limit = viper.GetInt("forvo.limit")
}

// SearchOptions converts the flag values into lookup filters. The language
// value is expected to be resolved to a service code by the caller.
func (f *Flags) SearchOptions() (forvo.SearchOptions, error) {
	sex, err := forvo.ParseSex(f.Sex)
	if err != nil {
		return forvo.SearchOptions{}, err
	}
	order, err := forvo.ParseOrder(f.Order)
	if err != nil {
		return forvo.SearchOptions{}, err
	}

	return forvo.SearchOptions{
		Language:  f.Language,
		Country:   f.Country,
		Username:  f.Username,
		Sex:       sex,
		MinRating: f.MinRating,
		Order:     order,
		Limit:     f.Limit,
	}, nil
}
