package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"Keystone/internal/engine"
	"Keystone/internal/models"
)

// errInvalidRequest is returned after an invalid report has been printed so
// the process exits non-zero.
var errInvalidRequest = errors.New("request failed validation")

func newCalcCmd(a *app) *cobra.Command {
	var (
		file       string
		format     string
		standard   string
		compliance bool
		strict     bool
	)
	cmd := &cobra.Command{
		Use:   "calc <kind>",
		Short: "Run one calculation from a YAML or JSON request",
		Long: `Run one calculation. The request file holds structureType, material,
dimensions, loads, params and options; use "-" to read it from stdin.
Run "keystone kinds" for the list of kinds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			req, err := readRequest(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if compliance {
				req.Options.CheckCompliance = true
			}
			if standard != "" {
				req.Options.Standard = standard
			}
			if strict {
				req.Options.Strict = true
			}

			if err := a.setup(); err != nil {
				return err
			}
			defer a.close()

			rep, err := a.engine.Calculate(cmd.Context(), engine.Domain, models.Kind(args[0]), req)
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), format, rep); err != nil {
				return err
			}
			if !rep.Valid {
				return errInvalidRequest
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (YAML or JSON), - for stdin")
	cmd.Flags().StringVar(&format, "format", formatTable, "output format: json or table")
	cmd.Flags().StringVar(&standard, "standard", "", "governing standard (EC or UBBL)")
	cmd.Flags().BoolVar(&compliance, "compliance", false, "attach a compliance summary")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unknown soil type or exposure class instead of using defaults")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// readRequest decodes a request document. JSON is read by the YAML decoder
// since the field names are the same.
func readRequest(stdin io.Reader, path string) (models.Request, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return models.Request{}, fmt.Errorf("reading request: %w", err)
	}
	var req models.Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return models.Request{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return req, nil
}
