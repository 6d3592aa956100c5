package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akyairhashvil/seodesk/internal/api"
	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/database"
	"github.com/akyairhashvil/seodesk/internal/models"
	"github.com/akyairhashvil/seodesk/internal/report"
	"github.com/akyairhashvil/seodesk/internal/seo"
	"github.com/akyairhashvil/seodesk/internal/util"
)

func newServeCmd(opts *cliOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve SEO tags over HTTP",
		Long: `Serve the /api/seo/ endpoints until interrupted.

Reads are public. Writes need "Authorization: Bearer <token>" matching
api.admin_token_hash; create the hash with hash-token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()
			if addr == "" {
				addr = e.cfg.API.Addr
			}
			if e.cfg.API.AdminTokenHash == "" {
				e.log.Warn("no admin token hash configured; writes are disabled")
			}
			srv, err := api.NewServer(e.db, e.cfg, e.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s/api/seo/\n", addr)
			return srv.Serve(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from api.addr)")
	return cmd
}

func newImportCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json|file.jsonc>",
		Short: "Create or update tags from an export file",
		Long: `Import upserts every tag by page_id and replaces the site-wide settings when
the file has them. Comments and trailing commas are allowed. Nothing is
written if any tag fails validation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			export, err := database.DecodeExport(data)
			if err != nil {
				return err
			}

			e, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if err := prepareAll(export.SEOTags, e.cfg.BaseURL()); err != nil {
				return err
			}
			res, err := e.db.Import(cmd.Context(), export, config.DefaultCLIActor)
			if err != nil {
				return err
			}
			e.log.Info("import finished",
				zap.String("file", args[0]),
				zap.Int("created", res.Created),
				zap.Int("updated", res.Updated),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tags (%d created, %d updated)", res.Created+res.Updated, res.Created, res.Updated)
			if res.Advanced {
				fmt.Fprint(cmd.OutOrStdout(), " and site settings")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

// prepareAll populates and validates tags in place, reporting every failing
// page at once.
func prepareAll(tags []models.SEOTag, siteURL string) error {
	var failures []string
	for i := range tags {
		if err := seo.Prepare(&tags[i], siteURL); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", tags[i].PageID, err))
		}
	}
	if len(failures) == 0 {
		return nil
	}
	sort.Strings(failures)
	return fmt.Errorf("%d tag(s) failed validation:\n  %s", len(failures), strings.Join(failures, "\n  "))
}

func newExportCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.json|->",
		Short: "Write every tag and the site settings as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			export, err := e.db.Export(cmd.Context())
			if err != nil {
				return err
			}
			data, err := database.EncodeExport(export)
			if err != nil {
				return err
			}
			if args[0] == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(args[0]), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tags to %s\n", len(export.SEOTags), args[0])
			return nil
		},
	}
}

func newReportCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report [file.pdf]",
		Short: "Write a PDF audit of title and description lengths",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			loc, err := e.cfg.Location()
			if err != nil {
				return err
			}
			now := time.Now().In(loc)
			path := util.ReportPath(config.AppName, now)
			if len(args) == 1 {
				path = args[0]
			}

			tags, err := e.db.ListTags(cmd.Context(), database.TagFilter{})
			if err != nil {
				return err
			}
			rows := report.Audit(tags)
			if err := report.WriteFile(path, rows, now); err != nil {
				return err
			}
			sum := report.Summarize(rows)
			fmt.Fprintf(cmd.OutOrStdout(), "Audited %d tags (%d with issues): %s\n", sum.Total, sum.WithIssues, path)
			return nil
		},
	}
}

func newHashTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-token",
		Short: "Hash an admin token for api.admin_token_hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := readSecret("Admin token: ")
			if err != nil {
				return err
			}
			confirm, err := readSecret("Repeat token: ")
			if err != nil {
				return err
			}
			if token != confirm {
				return fmt.Errorf("tokens do not match")
			}
			hash, err := util.HashToken(token)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
