package app

import (
	"github.com/jdlms/operadoras-dashboard/internal/dashboard"
	"github.com/jdlms/operadoras-dashboard/internal/types"

	"github.com/gdamore/tcell/v2"
)

// SetupKeyBindings configures keyboard input handling. Blocking controller
// actions run in their own goroutine so the event loop stays responsive.
func SetupKeyBindings(state *types.AppState) {
	state.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		return handleKey(state, event)
	})
}

func handleKey(state *types.AppState, event *tcell.EventKey) *tcell.EventKey {
	// The search field handles its own keys, Enter and Esc included
	if state.App.GetFocus() == state.Search {
		return event
	}

	c := state.Controller
	ctx := state.Ctx
	s := c.State()
	detailsOpen := s.Selected != nil
	paging := s.Tab == dashboard.TabList && !detailsOpen

	switch event.Key() {
	case tcell.KeyEscape:
		if detailsOpen {
			c.CloseDetails()
			return nil
		}
	case tcell.KeyPgDn:
		if paging {
			go c.NextPage(ctx)
		}
		return nil
	case tcell.KeyPgUp:
		if paging {
			go c.PrevPage(ctx)
		}
		return nil
	}

	if event.Key() != tcell.KeyRune {
		return event
	}

	switch event.Rune() {
	case 'q':
		Stop(state)
		return nil
	case '1':
		c.CloseDetails()
		c.ShowList()
		return nil
	case '2':
		c.CloseDetails()
		go c.LoadStats(ctx)
		return nil
	case '/':
		if s.Tab == dashboard.TabList && !detailsOpen {
			state.App.SetFocus(state.Search)
		}
		return nil
	case 'c':
		if s.Tab == dashboard.TabList {
			go c.ClearSearch(ctx)
		}
		return nil
	case 'n':
		if paging {
			go c.NextPage(ctx)
		}
		return nil
	case 'p':
		if paging {
			go c.PrevPage(ctx)
		}
		return nil
	case 'r':
		if s.Tab == dashboard.TabStats {
			go c.LoadStats(ctx)
		} else {
			go c.Refresh(ctx)
		}
		return nil
	case 'x':
		if detailsOpen {
			exportDetails(state, s.DetailState)
		}
		return nil
	}

	return event
}
