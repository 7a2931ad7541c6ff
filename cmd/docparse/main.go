// Package main provides the CLI entry point for DocParse.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/docparse/docparse/internal/client"
	"github.com/docparse/docparse/internal/config"
	"github.com/docparse/docparse/internal/document"
	"github.com/docparse/docparse/internal/export"
	"github.com/docparse/docparse/internal/history"
	"github.com/docparse/docparse/internal/logging"
	"github.com/docparse/docparse/internal/render"
	"github.com/docparse/docparse/internal/submit"
	"github.com/docparse/docparse/internal/tui"
)

var (
	// Version information (set at build time)
	version = "dev"

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

var configPath string

// loadConfig reads the config file given by --config, or the default path.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// newController wires the API client and controller from configuration.
func newController(cfg *config.Config, logger *logging.Logger) *submit.Controller {
	c := client.New(cfg.API.BaseURL, cfg.API.Timeout)
	return submit.New(c, logger.Logger)
}

// openStore opens the history store, or returns nil when history is
// disabled.
func openStore(cfg *config.Config) (history.Store, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}
	return history.NewSQLiteStore(cfg.History.Path)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "docparse",
		Short: "DocParse - terminal panel for a document parsing service",
		Long: titleStyle.Render("DocParse") + `

Upload PDF and Markdown documents to a parsing service and inspect the
structured result: text blocks, pages, sections, tables and image
descriptions.

` + dimStyle.Render("Use 'docparse [command] --help' for more information."),
		Version: version,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.docparse/config.yaml)")

	// tui command - launch the interactive panel
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive panel",
		Long:  "Launch the interactive terminal panel: pick a file, choose options, parse and browse the result.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := logging.NewWithConfig(cfg.Logging)
			defer logger.Close()

			store, err := openStore(cfg)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			if store != nil {
				defer store.Close()
			}

			return tui.Run(newController(cfg, logger), store)
		},
	}

	// parse command - one-shot submission
	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse one document and render the result",
		Long:  "Submit a PDF or Markdown file to the parsing service and print the structured result.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, _ := cmd.Flags().GetString("method")
			option, _ := cmd.Flags().GetString("option")
			jsonOut, _ := cmd.Flags().GetString("json")
			xlsxOut, _ := cmd.Flags().GetString("xlsx")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := logging.NewWithConfig(cfg.Logging)
			defer logger.Close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			ctrl := newController(cfg, logger)
			ctrl.SelectFile(filepath.Base(args[0]), data)
			ctrl.SetLoadingMethod(method)
			ctrl.SetParsingOption(option)

			if err := ctrl.Submit(cmd.Context()); err != nil {
				return err
			}

			if store, err := openStore(cfg); err == nil && store != nil {
				record := history.NewRecord(filepath.Base(args[0]), string(ctrl.FileType()), method, option)
				if doc := ctrl.Result(); doc != nil {
					record.Succeeded(doc.Metadata.TotalPages, ctrl.Status())
				} else {
					record.Failed(ctrl.Status())
				}
				_ = store.Save(record)
				store.Close()
			}

			doc := ctrl.Result()
			if doc == nil {
				return fmt.Errorf("%s", strings.TrimPrefix(ctrl.Status(), "Error: "))
			}

			fmt.Println(successStyle.Render("✓ " + ctrl.Status()))
			fmt.Println()
			fmt.Println(render.Document(doc))

			if jsonOut != "" {
				data, err := json.MarshalIndent(doc, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(jsonOut, data, 0644); err != nil {
					return fmt.Errorf("write json: %w", err)
				}
				fmt.Println(dimStyle.Render("Result written to " + jsonOut))
			}
			if xlsxOut != "" {
				data, err := export.XLSX(doc)
				if err != nil {
					return err
				}
				if err := os.WriteFile(xlsxOut, data, 0644); err != nil {
					return fmt.Errorf("write xlsx: %w", err)
				}
				fmt.Println(dimStyle.Render("Workbook written to " + xlsxOut))
			}

			return nil
		},
	}
	parseCmd.Flags().String("method", document.MethodAuto, "loading method (see 'docparse methods')")
	parseCmd.Flags().String("option", document.ParseAllText, "parsing option (see 'docparse options')")
	parseCmd.Flags().String("json", "", "write the parsed result to a JSON file")
	parseCmd.Flags().String("xlsx", "", "write the parsed result to an XLSX workbook")

	// methods command - list loading methods per file type
	methodsCmd := &cobra.Command{
		Use:   "methods [pdf|markdown]",
		Short: "List loading methods",
		Long:  "List the loading methods valid for a file type. Defaults to both types.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := []document.FileType{document.FileTypePDF, document.FileTypeMarkdown}
			if len(args) == 1 {
				switch args[0] {
				case "pdf":
					types = types[:1]
				case "markdown":
					types = types[1:]
				default:
					return fmt.Errorf("unknown file type: %s", args[0])
				}
			}

			for _, ft := range types {
				fmt.Println(titleStyle.Render(string(ft)))
				for _, opt := range document.LoadingMethods(ft) {
					line := fmt.Sprintf("  %-14s %s", opt.Value, opt.Label)
					fmt.Println(line)
					if opt.Value == document.MethodAuto {
						fmt.Println(dimStyle.Render("                 " + document.AutoDescription(ft)))
					}
				}
				fmt.Println()
			}
			return nil
		},
	}

	// options command - list parsing options
	optionsCmd := &cobra.Command{
		Use:   "options",
		Short: "List parsing options",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(titleStyle.Render("Parsing Options"))
			for _, opt := range document.ParsingOptions() {
				fmt.Printf("  %-16s %s\n", opt.Value, dimStyle.Render(document.OptionDescription(opt.Value)))
			}
			return nil
		},
	}

	// history command - list past submissions
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List past submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Println(dimStyle.Render("History is disabled in the configuration."))
				return nil
			}

			store, err := history.NewSQLiteStore(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			records, err := store.List(limit)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}

			if len(records) == 0 {
				fmt.Println(dimStyle.Render("No submissions yet. Parse something with 'docparse parse [file]'."))
				return nil
			}

			fmt.Println(titleStyle.Render("Submissions"))
			fmt.Println()
			for _, r := range records {
				status := successStyle.Render("●")
				if r.Outcome == history.OutcomeFailed {
					status = errorStyle.Render("●")
				}
				fmt.Printf("%s %s\n", status, r.Filename)
				fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf("%s | %s/%s | %s",
					r.CreatedAt.Format("2006-01-02 15:04"), r.LoadingMethod, r.ParsingOption, r.Message)))
				fmt.Println()
			}
			return nil
		},
	}
	historyCmd.Flags().Int("limit", 20, "maximum number of records to show")

	// export command - convert a saved JSON result to XLSX
	exportCmd := &cobra.Command{
		Use:   "export [result.json] [output.xlsx]",
		Short: "Convert a saved parse result to an XLSX workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read result: %w", err)
			}

			var doc document.ParsedDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parse result: %w", err)
			}

			out, err := export.XLSX(&doc)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], out, 0644); err != nil {
				return fmt.Errorf("write xlsx: %w", err)
			}

			fmt.Println(successStyle.Render("✓ Workbook written to " + args[1]))
			return nil
		},
	}

	// Add commands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
