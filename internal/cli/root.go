package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds global flags for all commands. Flag values win over
// the config file, which wins over MEASURA_* environment variables'
// defaults.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Locale     string // BCP 47 tag for number rendering
	Precision  int    // fraction digits; 0 means as many as needed
	Catalog    string // site catalog directory layered over the built-ins
	ConfigFile string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the measura CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "measura",
		Short: "measura - quantities and units on exact arithmetic",
		Long:  "Convert, validate and check physical quantities against unit catalogs.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, opts); err != nil {
				return err
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "en", "locale for rendered numbers")
	cmd.PersistentFlags().IntVar(&opts.Precision, "precision", 0, "fraction digits in rendered numbers")
	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", "", "site catalog directory layered over the built-ins")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default $HOME/.measura.yaml)")

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// loadConfig fills unset flags from a viper-backed config file and the
// MEASURA_* environment.
func loadConfig(cmd *cobra.Command, opts *RootOptions) error {
	v := viper.New()
	v.SetEnvPrefix("MEASURA")
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", opts.ConfigFile, err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
			v.SetConfigName(".measura")
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return fmt.Errorf("reading config: %w", err)
				}
			}
		}
	}

	flags := cmd.Root().PersistentFlags()
	if !flags.Changed("format") && v.IsSet("format") {
		opts.Format = v.GetString("format")
	}
	if !flags.Changed("locale") && v.IsSet("locale") {
		opts.Locale = v.GetString("locale")
	}
	if !flags.Changed("precision") && v.IsSet("precision") {
		opts.Precision = v.GetInt("precision")
	}
	if !flags.Changed("catalog") && v.IsSet("catalog") {
		opts.Catalog = v.GetString("catalog")
	}
	if !flags.Changed("verbose") && v.IsSet("verbose") {
		opts.Verbose = v.GetBool("verbose")
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
