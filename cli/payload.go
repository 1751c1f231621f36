package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jakenesler/mailschema/mailapi"
	"github.com/jakenesler/mailschema/validate"
)

// errInvalid is returned after the violations have been printed.
var errInvalid = errors.New("payload is invalid")

func newValidateCmd(a *app) *cobra.Command {
	var (
		params []string
		body   string
	)
	cmd := &cobra.Command{
		Use:   "validate OPERATION",
		Short: "Validate the parameters and body of a request",
		Example: `  mailschema validate CreateList --param brand_id=7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51 --body list.json
  echo '{"name":"Newsletter"}' | mailschema validate CreateList --param brand_id=... --body -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(params))
			for _, p := range params {
				k, v, ok := strings.Cut(p, "=")
				if !ok {
					return fmt.Errorf("invalid --param %q: want name=value", p)
				}
				values[k] = v
			}
			data, err := readInput(cmd, body)
			if err != nil {
				return err
			}

			if _, err := a.validator(nil).Request(args[0], values, data); err != nil {
				return printViolations(cmd, err)
			}
			cmd.Println("valid")
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "path or query parameter as name=value, repeatable")
	cmd.Flags().StringVarP(&body, "body", "b", "", "file holding the JSON body, or - for stdin")
	return cmd
}

func newInterpretCmd(a *app) *cobra.Command {
	var (
		status int
		body   string
	)
	cmd := &cobra.Command{
		Use:   "interpret OPERATION",
		Short: "Validate a response and classify it when it is an error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if status == 0 {
				return errors.New("--status is required")
			}
			data, err := readInput(cmd, body)
			if err != nil {
				return err
			}

			resp, err := a.validator(nil).Response(args[0], status, data)
			var apiErr *mailapi.Error
			switch {
			case errors.As(err, &apiErr):
				tw := newTable()
				tw.AppendHeader(table.Row{"STATUS", "TYPE", "CODE", "PARAM", "TEMPORARY", "MESSAGE"})
				tw.AppendRow(table.Row{apiErr.Status, apiErr.Type, apiErr.Code, apiErr.Param, apiErr.Temporary(), apiErr.Message})
				cmd.Printf("%s\n", tw.Render())
				return nil
			case err != nil:
				return printViolations(cmd, err)
			}

			out, err := json.MarshalIndent(resp.Payload, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal JSON: %w", err)
			}
			cmd.Println(string(out))
			return nil
		},
	}
	cmd.Flags().IntVarP(&status, "status", "s", 0, "HTTP status of the response")
	cmd.Flags().StringVarP(&body, "body", "b", "-", "file holding the JSON response, or - for stdin")
	return cmd
}

// printViolations prints the violations of a payload error and returns
// errInvalid; other errors are returned unchanged.
func printViolations(cmd *cobra.Command, err error) error {
	var perr *validate.PayloadError
	if !errors.As(err, &perr) {
		return err
	}

	tw := newTable()
	tw.AppendHeader(table.Row{"PATH", "RULE", "REASON"})
	for _, v := range perr.Violations {
		tw.AppendRow(table.Row{v.Path, v.Rule, v.Reason})
	}
	cmd.Printf("%s %s\n%s\n", perr.Operation, perr.Part, tw.Render())
	return errInvalid
}
