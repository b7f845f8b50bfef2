package app

import (
	"fmt"

	"github.com/jdlms/operadoras-dashboard/internal/dashboard"
	"github.com/jdlms/operadoras-dashboard/internal/export"
	"github.com/jdlms/operadoras-dashboard/internal/types"

	"github.com/rivo/tview"
)

// exportDetails saves the open expense list to the export directory and
// reports the outcome on the status line
func exportDetails(state *types.AppState, d dashboard.DetailState) {
	if d.Selected == nil || d.LoadingDetails {
		return
	}
	op := *d.Selected
	despesas := d.Despesas

	go func() {
		log := state.Log.WithField("cnpj", op.CNPJ)
		path, err := export.SaveDespesas(state.Config.ExportDir, op, despesas)

		var msg string
		if err != nil {
			log.WithError(err).Error("export failed")
			msg = "[red]Falha ao exportar despesas[-]"
		} else {
			log.WithField("path", path).Info("despesas exported")
			msg = fmt.Sprintf("[green]Despesas exportadas para %s[-]", tview.Escape(path))
		}

		state.App.QueueUpdateDraw(func() {
			state.Status.SetText(msg)
		})
	}()
}
