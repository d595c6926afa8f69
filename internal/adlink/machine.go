// Package adlink tracks the connect/disconnect lifecycle of a third-party
// ad-account integration. The link state is ephemeral UI state: it is never
// persisted and resets with the process.
package adlink

import (
	"context"
	"fmt"
	"sync"

	"github.com/adcreativex/adcreativex/internal/common"
	"github.com/adcreativex/adcreativex/internal/logging"
)

// State of the ad-account link.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
)

// Connector is the external linking collaborator. RequestLink performs the
// handshake with the ad platform and returns an access token for the linked
// account; RevokeLink tears the link down.
type Connector interface {
	RequestLink(ctx context.Context, adAccountID string) (string, error)
	RevokeLink(ctx context.Context) error
}

// Machine sequences link states around the Connector. It starts
// disconnected and refuses re-entrant connects so the external handshake
// never runs twice concurrently.
type Machine struct {
	connector Connector
	log       logging.Logger

	mu        sync.Mutex
	state     State
	accountID string
	token     string
}

// NewMachine returns a Machine in the disconnected state.
func NewMachine(c Connector, log logging.Logger) *Machine {
	return &Machine{connector: c, log: log, state: StateDisconnected}
}

// State returns the current link state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// AccountID returns the linked ad-account id, or "" when not connected.
func (m *Machine) AccountID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accountID
}

// Token returns the access token of the active link, or "" when not
// connected.
func (m *Machine) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Connect runs the external linking exchange for adAccountID.
//
// Valid only from disconnected: a connect during an in-flight handshake
// fails with common.ErrLinkInProgress, and one against an established link
// with common.ErrAlreadyConnected. A collaborator failure rolls the state
// back to disconnected and is surfaced wrapped in common.ErrLinkFailed.
func (m *Machine) Connect(ctx context.Context, adAccountID string) error {
	m.mu.Lock()
	switch m.state {
	case StateConnecting:
		m.mu.Unlock()
		return common.ErrLinkInProgress
	case StateConnected:
		m.mu.Unlock()
		return common.ErrAlreadyConnected
	}
	m.state = StateConnecting
	m.mu.Unlock()

	token, err := m.connector.RequestLink(ctx, adAccountID)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = StateDisconnected
		m.log.Warn(ctx, "ad account link failed", "ad_account_id", adAccountID, "error", err)
		return fmt.Errorf("%w: %v", common.ErrLinkFailed, err)
	}

	m.state = StateConnected
	m.accountID = adAccountID
	m.token = token
	m.log.Info(ctx, "ad account linked", "ad_account_id", adAccountID)
	return nil
}

// Disconnect revokes the active link. Valid only from connected
// (common.ErrNotConnected otherwise). The state always transitions to
// disconnected; a failed revoke is reported but does not keep the link.
func (m *Machine) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateConnected {
		m.mu.Unlock()
		return common.ErrNotConnected
	}
	accountID := m.accountID
	m.state = StateDisconnected
	m.accountID = ""
	m.token = ""
	m.mu.Unlock()

	if err := m.connector.RevokeLink(ctx); err != nil {
		m.log.Warn(ctx, "ad account revoke failed", "ad_account_id", accountID, "error", err)
		return err
	}

	m.log.Info(ctx, "ad account unlinked", "ad_account_id", accountID)
	return nil
}
