package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Keystone/internal/calc/batch"
	"Keystone/internal/calc/importer"
	"Keystone/internal/engine"
)

type batchOutput struct {
	Sheet        string              `json:"sheet"`
	ImportErrors []importer.RowError `json:"import_errors,omitempty"`
	batch.Result
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		file        string
		sheet       string
		format      string
		workers     int
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every request in an .xlsx sheet",
		Long: `Run every request in an .xlsx sheet. The header row names the columns:
"kind" is required, "id" is optional, and any other header is a request
field by its JSON name (width, deadLoad, axialLoadKN, params.soilType ...).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			imported, err := importer.ReadFile(file, sheet)
			if err != nil {
				return err
			}
			if err := a.setup(); err != nil {
				return err
			}
			defer a.close()
			for _, e := range imported.Errors {
				a.log.Warn("skipping row", zap.String("sheet", imported.Sheet), zap.Int("row", e.Row), zap.String("error", e.Err))
			}
			if len(imported.Items) == 0 {
				return fmt.Errorf("no usable rows in sheet %q", imported.Sheet)
			}

			runner := batch.New(a.engine, engine.Domain, workers, a.log)
			res, err := runner.Run(cmd.Context(), imported.Items)
			if err != nil {
				return err
			}
			if metricsFile != "" {
				if err := runner.WriteMetrics(metricsFile); err != nil {
					return err
				}
			}

			out := batchOutput{Sheet: imported.Sheet, ImportErrors: imported.Errors, Result: res}
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			renderBatch(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", ".xlsx workbook with one request per row")
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name (default: first sheet)")
	cmd.Flags().StringVar(&format, "format", formatTable, "output format: json or table")
	cmd.Flags().IntVar(&workers, "workers", batch.DefaultWorkers, "number of concurrent workers")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func renderBatch(w io.Writer, out batchOutput) {
	fmt.Fprintf(w, "%s  %s\n", titleStyle.Render("batch "+out.RunID), dimStyle.Render(out.Sheet))
	fmt.Fprintf(w, "  %d total, %d ok, %d invalid, %d failed in %s\n",
		out.Total, out.Succeeded, out.Invalid, out.Failed, out.Duration)

	heading(w, "Items")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, o := range out.Outcomes {
		detail := o.Error
		if o.Report != nil {
			switch {
			case !o.Report.Valid:
				detail = fmt.Sprintf("%d validation errors", len(o.Report.Errors))
			case o.Report.Compliance != nil && !o.Report.Compliance.Compliant:
				detail = "not compliant"
			}
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", o.ID, o.Kind, status(o.Status == batch.StatusOK, o.Status, o.Status), detail)
	}
	tw.Flush()

	if len(out.ImportErrors) > 0 {
		errs := make([]string, len(out.ImportErrors))
		for i, e := range out.ImportErrors {
			errs[i] = e.Error()
		}
		list(w, "Skipped rows", errs)
	}
}
