// Command valz validates JSON documents against a JSON Schema file and
// inspects schemas after a round trip through the validator tree.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	valz "github.com/soracane/valz"
	"github.com/soracane/valz/bridge"
	"github.com/soracane/valz/jsonschema"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "valz:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "valz",
		Short:         "Validate JSON documents against JSON Schema files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCheckCmd(), newShowCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	var schemaPath string
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate JSON files against a schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}
			failed := false
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if _, err := valz.ParseJSON(s, data); err != nil {
					failed = true
					printIssues(cmd, path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if failed {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema file (.json, .yaml or .yml)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <schema>",
		Short: "Print a schema after a round trip through the validator tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchema(args[0])
			if err != nil {
				return err
			}
			out, err := bridge.ExportJSON(s, bridge.Options{IncludeSchemaVersion: true})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	return cmd
}

func loadSchema(path string) (valz.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc *jsonschema.Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = jsonschema.ParseYAML(data)
	default:
		doc, err = jsonschema.Unmarshal(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", path, err)
	}
	return bridge.Import(doc)
}

func printIssues(cmd *cobra.Command, path string, err error) {
	iss, ok := valz.AsIssues(err)
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		return
	}
	for _, i := range iss {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s %s: %s\n", path, i.Code, i.Pointer(), i.Message)
	}
}
