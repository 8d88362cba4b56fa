package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/carbonscope/carbonscope/internal/engine"
)

// calculateParams holds the flag values for the calculate command.
type calculateParams struct {
	Input      string
	Facilities string
	Format     string
}

func newCalculateCmd(cfgPath *string) *cobra.Command {
	var params calculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate emissions for one source or a batch",
		Long: `Calculate reads emission sources as JSON and prints scope totals.

The input may be a single source object or an array of sources. With an
array, results are aggregated across sources; pass --facilities to apply
equity-share weighting per facility.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			return runCalculate(cmd.OutOrStdout(), cmd.InOrStdin(), params, engine.NewCalculator(nil, cfg.EnginePolicy()))
		},
	}

	cmd.Flags().StringVarP(&params.Input, "input", "i", "-", "path to sources JSON, or - for stdin")
	cmd.Flags().StringVar(&params.Facilities, "facilities", "", "path to facilities JSON (id -> facility)")
	cmd.Flags().StringVarP(&params.Format, "format", "f", "json", "output format: json or table")

	return cmd
}

func runCalculate(out io.Writer, stdin io.Reader, params calculateParams, calc *engine.Calculator) error {
	raw, err := readInput(params.Input, stdin)
	if err != nil {
		return err
	}

	var facilities map[string]engine.Facility
	if params.Facilities != "" {
		fraw, err := os.ReadFile(params.Facilities)
		if err != nil {
			return fmt.Errorf("reading facilities file: %w", err)
		}
		if err := json.Unmarshal(fraw, &facilities); err != nil {
			return fmt.Errorf("parsing facilities file: %w", err)
		}
	}

	sources, err := decodeSources(raw)
	if err != nil {
		return err
	}
	totals := calc.Aggregate(sources, facilities)

	switch params.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(totals)
	case "table":
		return renderTotalsTable(out, totals)
	default:
		return fmt.Errorf("unknown output format %q (want json or table)", params.Format)
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return raw, nil
}

// decodeSources accepts either a single source object or an array of
// sources.
func decodeSources(raw []byte) ([]engine.Source, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var src engine.Source
		if err := json.Unmarshal(raw, &src); err != nil {
			return nil, fmt.Errorf("parsing source: %w", err)
		}
		return []engine.Source{src}, nil
	}
	var sources []engine.Source
	if err := json.Unmarshal(raw, &sources); err != nil {
		return nil, fmt.Errorf("parsing sources: %w", err)
	}
	return sources, nil
}

func renderTotalsTable(out io.Writer, totals engine.Totals) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Scope 1\t%.2f kgCO2e\n", totals.Scope1)
	fmt.Fprintf(w, "Scope 2 (location)\t%.2f kgCO2e\n", totals.Scope2Location)
	fmt.Fprintf(w, "Scope 2 (market)\t%.2f kgCO2e\n", totals.Scope2Market)
	fmt.Fprintf(w, "Scope 3\t%.2f kgCO2e\n", totals.Scope3)
	fmt.Fprintf(w, "Total (market)\t%.2f kgCO2e\n", totals.Scope1+totals.Scope2Market+totals.Scope3)

	if len(totals.ByCategory) > 0 {
		fmt.Fprintln(w, "\nBy category\t")
		categories := make([]string, 0, len(totals.ByCategory))
		for c := range totals.ByCategory {
			categories = append(categories, string(c))
		}
		sort.Strings(categories)
		for _, c := range categories {
			fmt.Fprintf(w, "  %s\t%.2f kgCO2e\n", c, totals.ByCategory[engine.Category(c)])
		}
	}

	if totals.DQIRating != "" {
		fmt.Fprintf(w, "\nData quality\t%.2f (%s)\n", totals.DQIScore, totals.DQIRating)
	}
	for _, warning := range totals.Warnings {
		fmt.Fprintf(w, "warning\t%s\t%s\n", warning.Kind, warning.Detail)
	}

	return w.Flush()
}
