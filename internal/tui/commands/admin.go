package commands

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aula-dev/aula/internal/admin"
	"github.com/aula-dev/aula/internal/tui"
)

// LoadAccountsCmd fetches both admin listings. A 401 has already cleared
// the local session by the time the message arrives.
func LoadAccountsCmd(svc *admin.Service) tea.Cmd {
	return func() tea.Msg {
		listing, err := svc.Accounts(context.Background())
		if errors.Is(err, admin.ErrUnauthorized) {
			return tui.AccountsMsg{Unauthorized: true}
		}
		if err != nil {
			return tui.AccountsMsg{Err: err}
		}
		return tui.AccountsMsg{Listing: listing}
	}
}

// ToggleAccountCmd flips an account's active status and reports the
// patched listing.
func ToggleAccountCmd(svc *admin.Service, students bool, accounts []admin.Account, id int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var patched []admin.Account
		var err error
		if students {
			patched, err = svc.ToggleStudent(ctx, accounts, id)
		} else {
			patched, err = svc.ToggleTeacher(ctx, accounts, id)
		}
		return tui.AccountsPatchedMsg{Students: students, Accounts: patched, Err: err}
	}
}
