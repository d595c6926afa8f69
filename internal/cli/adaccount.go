package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/adcreativex/adcreativex/internal/adlink"
	"github.com/adcreativex/adcreativex/internal/common"
)

// LinkAccount prompts for an ad account id and runs the link handshake.
// An empty answer links the bundled demo account.
func (a *App) LinkAccount(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return common.ErrNotLoggedIn
	}

	accountID, err := getSimpleText(a.reader, fmt.Sprintf("Ad account id (empty for demo account %s)", DemoAdAccountID), os.Stdout)
	if err != nil {
		return err
	}
	if accountID == "" {
		accountID = DemoAdAccountID
	}

	if err := a.link.Connect(ctx, accountID); err != nil {
		printlnFn(fmt.Sprintf("Link failed: %s", err.Error()))
		return err
	}

	printlnFn(fmt.Sprintf("Connected to ad account %s", accountID))
	return nil
}

// UnlinkAccount disconnects the linked ad account.
func (a *App) UnlinkAccount(ctx context.Context) error {
	if err := a.link.Disconnect(ctx); err != nil {
		printlnFn(fmt.Sprintf("Unlink failed: %s", err.Error()))
		return err
	}
	printlnFn("Ad account disconnected")
	return nil
}

// LinkStatus prints the current link state.
func (a *App) LinkStatus(ctx context.Context) error {
	state := a.link.State()
	if state == adlink.StateConnected {
		printlnFn(fmt.Sprintf("Link state: %s (account %s)", state, a.link.AccountID()))
	} else {
		printlnFn(fmt.Sprintf("Link state: %s", state))
	}
	return nil
}
