package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jakenesler/mailschema/openapi"
)

func newOpsCmd(a *app) *cobra.Command {
	var tag, method string
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List the operations of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := a.catalog.Filter(tag, method)
			if len(ops) == 0 {
				return fmt.Errorf("no operations match tag %q and method %q", tag, method)
			}

			tw := newTable()
			tw.AppendHeader(table.Row{"NAME", "METHOD", "PATH", "SUMMARY"})
			for _, op := range ops {
				tw.AppendRow(table.Row{op.Name, op.Method, op.Path, op.Summary})
			}
			cmd.Printf("%s\n", tw.Render())
			return nil
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only operations with this tag, one of: "+strings.Join(openapi.Default().Tags(), ", "))
	cmd.Flags().StringVar(&method, "method", "", "only operations with this HTTP method")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var spec string
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search operations of the catalog and the configured documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := a.store(cmd.Context()).Search(args[0], spec)
			if len(results) == 0 {
				cmd.Println("No results found.")
				return nil
			}

			tw := newTable()
			tw.AppendHeader(table.Row{"SPEC", "OPERATION", "METHOD", "PATH", "SUMMARY"})
			for _, r := range results {
				tw.AppendRow(table.Row{r.Spec, r.Operation, r.Method, r.Path, r.Summary})
			}
			cmd.Printf("%s\n", tw.Render())
			return nil
		},
	}
	cmd.Flags().StringVar(&spec, "spec", "", "limit the search to one document")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show OPERATION",
		Short: "Show the parameters, body and responses of an operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.catalog.Index().Operation(args[0])
			if err != nil {
				return err
			}
			return printDetail(cmd, output, detail)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: json or yaml (default: tables)")
	return cmd
}

func printDetail(cmd *cobra.Command, output string, detail *openapi.EndpointDetail) error {
	switch output {
	case "":
		cmd.Printf("%s %s %s\n%s\n\n", detail.Operation, detail.Method, detail.Path, detail.Summary)

		if len(detail.Parameters) > 0 {
			tw := newTable()
			tw.AppendHeader(table.Row{"PARAMETER", "IN", "REQUIRED", "TYPE", "FORMAT", "DESCRIPTION"})
			for _, p := range detail.Parameters {
				tw.AppendRow(table.Row{p.Name, p.In, p.Required, p.Type, p.Format, p.Description})
			}
			cmd.Printf("%s\n\n", tw.Render())
		}

		if body := detail.RequestBody; body != nil {
			required := make(map[string]bool, len(body.Required))
			for _, r := range body.Required {
				required[r] = true
			}
			names := make([]string, 0, len(body.Properties))
			for name := range body.Properties {
				names = append(names, name)
			}
			sort.Strings(names)

			tw := newTable()
			tw.AppendHeader(table.Row{"BODY (" + body.ContentType + ")", "REQUIRED", "TYPE", "FORMAT", "DESCRIPTION"})
			for _, name := range names {
				p := body.Properties[name]
				tw.AppendRow(table.Row{name, required[name], p.Type, p.Format, p.Description})
			}
			cmd.Printf("%s\n\n", tw.Render())
		}

		codes := make([]string, 0, len(detail.Responses))
		for code := range detail.Responses {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		tw := newTable()
		tw.AppendHeader(table.Row{"STATUS", "DESCRIPTION"})
		for _, code := range codes {
			tw.AppendRow(table.Row{code, detail.Responses[code]})
		}
		cmd.Printf("%s\n", tw.Render())
	case "json":
		out, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		cmd.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(detail)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		cmd.Println(string(out))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
	return nil
}

func newExampleCmd(a *app) *cobra.Command {
	var (
		kind   string
		status int
	)
	cmd := &cobra.Command{
		Use:   "example OPERATION",
		Short: "Print an example payload that satisfies an operation's schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := a.catalog.Get(args[0])
			if err != nil {
				return err
			}

			var example any
			switch kind {
			case "body":
				if op.Body == nil {
					return fmt.Errorf("%s takes no request body", op.Name)
				}
				example, err = a.catalog.ExampleBody(op.Name)
			case "params":
				example, err = a.catalog.ExampleParams(op.Name, true)
			case "response":
				if status == 0 {
					status = op.SuccessStatus()
				}
				example, err = a.catalog.ExampleResponse(op.Name, status)
			default:
				return fmt.Errorf("unknown kind %q: want body, params or response", kind)
			}
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(example, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal JSON: %w", err)
			}
			cmd.Println(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "body", "what to print: body, params or response")
	cmd.Flags().IntVar(&status, "status", 0, "response status for --kind response (default: the success status)")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as an OpenAPI 3 document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.catalog.Export(format)
			if err != nil {
				return err
			}
			if out == "" {
				cmd.Print(string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", openapi.FormatYAML, "document format: json or yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write (default: stdout)")
	return cmd
}

func newSpecsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "specs",
		Short: "List the built-in catalog and the configured documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.store(cmd.Context())

			tw := newTable()
			tw.AppendHeader(table.Row{"NAME", "BUILTIN", "ENDPOINTS", "SOURCE"})
			for _, name := range store.Names() {
				source := a.cfg.Specs[name]
				if name == openapi.BuiltinSpec {
					source = "-"
				}
				tw.AppendRow(table.Row{name, name == openapi.BuiltinSpec, store.GetIndex(name).Count(), source})
			}
			cmd.Printf("%s\n", tw.Render())
			return nil
		},
	}
}
