package main

import (
	"encoding/json"
	"io"
	"net/http/httputil"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/next-trace/scg-httperror/config"
	"github.com/next-trace/scg-httperror/httperror"
	"github.com/next-trace/scg-httperror/stack"
)

type renderFlags struct {
	status  int
	message string
	format  string
	noStack bool
	context []string
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "httperr",
		Short:         "Render normalized HTTP errors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding httperror.yaml")

	loadSettings := func() (*httperror.Settings, error) {
		var paths []string
		if configDir != "" {
			paths = append(paths, configDir)
		}

		cfg, err := config.Load(paths...)
		if err != nil {
			return nil, err
		}

		return cfg.Settings(), nil
	}

	root.AddCommand(newRenderCmd(loadSettings), newFramesCmd())

	return root
}

func newRenderCmd(loadSettings func() (*httperror.Settings, error)) *cobra.Command {
	f := renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print an error as json, response or string",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}

			if f.noStack {
				s.SetIncludeStack(false)
			}

			ctx, err := parseContext(f.context)
			if err != nil {
				return err
			}

			e := s.New(f.status, f.message, httperror.WithContext(ctx))

			return render(cmd.OutOrStdout(), e, f.format)
		},
	}

	cmd.Flags().IntVar(&f.status, "status", 500, "HTTP status, clamped to 400..599")
	cmd.Flags().StringVar(&f.message, "message", "", "error message (default per status)")
	cmd.Flags().StringVar(&f.format, "format", "json", "output format: json, response or string")
	cmd.Flags().BoolVar(&f.noStack, "no-stack", false, "omit stack frames")
	cmd.Flags().StringArrayVar(&f.context, "context", nil, "context entry as key=value, repeatable")

	return cmd
}

func newFramesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frames",
		Short: "Parse stack text from stdin into JSON frames",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "read stdin")
			}

			return writeJSON(cmd.OutOrStdout(), stack.Parse(string(raw)))
		},
	}
}

func render(w io.Writer, e *httperror.Error, format string) error {
	switch format {
	case "json":
		return writeJSON(w, e.ToJSON())
	case "string":
		_, err := io.WriteString(w, e.String()+"\n")
		return err
	case "response":
		res := e.ToResponse()
		defer res.Body.Close()

		dump, err := httputil.DumpResponse(res, true)
		if err != nil {
			return errors.Wrap(err, "dump response")
		}

		_, err = w.Write(dump)

		return err
	}

	return errors.Errorf("unknown format %q", format)
}

func parseContext(entries []string) (map[string]any, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	ctx := make(map[string]any, len(entries))
	for _, kv := range entries {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("invalid context entry %q, want key=value", kv)
		}

		ctx[k] = v
	}

	return ctx, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
