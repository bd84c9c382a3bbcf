package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hatchan/smellcop/internal/ast"
	"github.com/hatchan/smellcop/internal/config"
	"github.com/hatchan/smellcop/internal/detect"
	"github.com/hatchan/smellcop/internal/examiner"
)

const defaultConfigName = ".smellcop.yml"

var (
	examineConfigPath string
	examineShowAll    bool
	examineFormat     string
)

var examineCmd = &cobra.Command{
	Use:   "examine [ast.json]",
	Short: "Examine a classified AST and report code smells",
	Long: `Examine reads a JSON-encoded AST (as produced by the parser front
end, one ast.RawNode tree per file) and reports the code smells found.

If no file is given, the AST is read from stdin. Project configuration is
loaded from .smellcop.yml in the current directory unless --config points
elsewhere; a missing file is not an error, defaults apply.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExamine,
}

func init() {
	rootCmd.AddCommand(examineCmd)

	examineCmd.Flags().StringVar(&examineConfigPath, "config", "", "path to a .smellcop.yml configuration file")
	examineCmd.Flags().BoolVar(&examineShowAll, "show-all", false, "run every detector regardless of its enabled flag")
	examineCmd.Flags().StringVar(&examineFormat, "format", "text", "output format: text or json")
}

func runExamine(cmd *cobra.Command, args []string) error {
	sourceName, data, err := readAST(args)
	if err != nil {
		return err
	}

	var raw ast.RawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding AST: %w", err)
	}

	resolver, err := loadResolver()
	if err != nil {
		return err
	}

	strategy := detect.ActiveSmellsOnly
	if examineShowAll {
		strategy = detect.ShowAll
	}

	result, err := examiner.Examine(sourceName, &raw, string(data), resolver, examiner.WithStrategy(strategy))
	if err != nil {
		exitWithError("%v", err)
		return nil
	}

	return reportSmells(cmd, result)
}

func readAST(args []string) (sourceName string, data []byte, err error) {
	if len(args) == 0 {
		data, err = io.ReadAll(os.Stdin)
		return "<stdin>", data, err
	}
	data, err = os.ReadFile(args[0])
	return filepath.Base(args[0]), data, err
}

func loadResolver() (*config.Resolver, error) {
	path := examineConfigPath
	if path == "" {
		if _, err := os.Stat(defaultConfigName); err != nil {
			return config.NewResolver(), nil
		}
		path = defaultConfigName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	layer, err := config.LoadLayer(data)
	if err != nil {
		return nil, err
	}
	return config.NewResolver(layer), nil
}

func reportSmells(cmd *cobra.Command, result *examiner.Examiner) error {
	smells := result.SortedByContext()

	if examineFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(smells); err != nil {
			return err
		}
	} else {
		for _, w := range smells {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s [%s] %s\n", w.Context, w.Message, w.SmellClass, w.Source)
		}
	}

	if result.Smelly() {
		os.Exit(2)
	}
	return nil
}
