// Package main is the joko-pdf CLI. It renders CSV, JSON or XLSX tables into
// landscape PDF reports with an attribution line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "joko-pdf",
		Short: "Render tables into PDF reports",
		Long: `joko-pdf renders a table (CSV, TSV, JSON array of arrays, or an XLSX sheet)
into a landscape A4 PDF. The first row is the header. A trailing line records
who generated the report, when, and how many records it holds.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return initConfig(v, cfgFile, cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().String("config", "", "config file (default: ./joko-pdf.yaml or ~/.config/joko-pdf/config.yaml)")
	root.PersistentFlags().Bool("verbose", false, "log progress to stderr")
	_ = v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newRenderCmd(v))
	root.AddCommand(newVersionCmd())
	return root
}

func initConfig(v *viper.Viper, cfgFile string, stderr io.Writer) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("joko-pdf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "joko-pdf"))
		}
	}

	v.SetEnvPrefix("JOKO_PDF")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if v.GetBool("verbose") {
		fmt.Fprintln(stderr, "Using config file:", v.ConfigFileUsed())
	}
	return nil
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
