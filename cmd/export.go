package cmd

import (
	"context"
	"fmt"

	"github.com/jdlms/operadoras-dashboard/internal/api"
	"github.com/jdlms/operadoras-dashboard/internal/export"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export <cnpj>",
	Short: "Export the expenses of an operadora to an XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, closer, client, err := setup()
		if err != nil {
			return err
		}
		defer closer.Close()

		dir := cfg.ExportDir
		if exportDir != "" {
			dir = exportDir
		}

		cnpj := api.CNPJ(args[0])
		path, err := exportOperadora(cmd.Context(), client, cnpj, dir)
		if err != nil {
			log.WithError(err).WithField("cnpj", cnpj).Error("export failed")
			return err
		}

		log.WithField("path", path).Info("despesas exported")
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", "", "output directory (overrides DASHBOARD_EXPORT_DIR)")
	rootCmd.AddCommand(exportCmd)
}

// exportSource is the subset of the API client the export command needs
type exportSource interface {
	GetOperadora(ctx context.Context, cnpj api.CNPJ) (*api.Operadora, error)
	Despesas(ctx context.Context, cnpj api.CNPJ) ([]api.Despesa, error)
}

// exportOperadora fetches the operadora and its expenses concurrently and
// writes them to dir
func exportOperadora(ctx context.Context, src exportSource, cnpj api.CNPJ, dir string) (string, error) {
	var (
		op       *api.Operadora
		despesas []api.Despesa
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		op, err = src.GetOperadora(ctx, cnpj)
		if api.IsNotFound(err) {
			return fmt.Errorf("operadora %s not found: %w", cnpj, err)
		}
		if err != nil {
			return fmt.Errorf("get operadora %s: %w", cnpj, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		despesas, err = src.Despesas(ctx, cnpj)
		if err != nil {
			return fmt.Errorf("get despesas %s: %w", cnpj, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	return export.SaveDespesas(dir, *op, despesas)
}
