package main

import (
	"fmt"
	"os/user"
	"strings"

	"github.com/fintechservicios/joko-utils/command"
	"github.com/fintechservicios/joko-utils/pdfgen"
	"github.com/fintechservicios/joko-utils/sources/tabular"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a table file into a PDF report",
		Long: `render reads --input and writes the PDF to --output. Without --output a
random base-32 name ending in .pdf is created in the working directory. The
resolved path is printed on stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, v)
		},
	}

	cmd.Flags().StringP("input", "i", "", "table file (.csv, .tsv, .json, .xlsx)")
	cmd.Flags().StringP("output", "o", "", "destination PDF (default: random name in the working directory)")
	cmd.Flags().StringP("user", "u", "", "user named in the attribution line (default: current OS user)")
	cmd.Flags().String("format", "", "input format override: csv, json or xlsx")
	cmd.Flags().String("delimiter", "", "CSV field delimiter; \"tab\" for tabs (default ',')")
	cmd.Flags().String("sheet", "", "XLSX worksheet (default: first sheet)")
	cmd.Flags().String("date-format", pdfgen.DefaultDateTimeFormat, "strftime pattern for the generation timestamp")
	cmd.Flags().String("locale", "", "locale for month and day names, e.g. es_ES")
	cmd.Flags().String("page-size", "A4", "page size: A3, A4, A5, Letter, Legal, Tabloid")
	cmd.Flags().Bool("portrait", false, "use portrait orientation")

	for _, name := range []string{"user", "format", "delimiter", "sheet", "date-format", "locale", "page-size", "portrait"} {
		_ = v.BindPFlag(strings.ReplaceAll(name, "-", "_"), cmd.Flags().Lookup(name))
	}
	return cmd
}

func runRender(cmd *cobra.Command, v *viper.Viper) error {
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		return fmt.Errorf("--input is required")
	}
	output, _ := cmd.Flags().GetString("output")

	cfg := pdfgen.DefaultConfig()
	cfg.DateTimeFormat = v.GetString("date_format")
	cfg.Locale = v.GetString("locale")
	if size := v.GetString("page_size"); size != "" {
		cfg.PageSize = size
	}
	cfg.Landscape = !v.GetBool("portrait")
	if err := cfg.Validate(); err != nil {
		return err
	}

	delimiter, err := parseDelimiter(v.GetString("delimiter"))
	if err != nil {
		return err
	}

	handler := command.NewGenerateTablePDFFromFileHandler(pdfgen.NewGenerator(cfg))
	handler.Logger = stderrLogger{w: cmd.ErrOrStderr(), verbose: v.GetBool("verbose")}

	var file pdfgen.RenderedFile
	err = handler.Execute(cmd.Context(), command.GenerateTablePDFFromFile{
		Input: input,
		Source: tabular.Options{
			Format:    tabular.Format(v.GetString("format")),
			Delimiter: delimiter,
			Sheet:     v.GetString("sheet"),
		},
		Destination: output,
		User:        resolveUser(v.GetString("user")),
		Result:      &file,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), file.Path)
	return nil
}

func parseDelimiter(raw string) (rune, error) {
	switch raw {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	runes := []rune(raw)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", raw)
	}
	return runes[0], nil
}

func resolveUser(name string) string {
	if name != "" {
		return name
	}
	if current, err := user.Current(); err == nil {
		return current.Username
	}
	return ""
}
