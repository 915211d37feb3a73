package simsdk

import (
	"context"
	"net/http"
	"net/url"
)

// simPath returns sims/{iccid}{suffix} with the ICCID path-escaped.
func simPath(iccid, suffix string) (string, error) {
	if iccid == "" {
		return "", ErrEmptyICCID
	}
	return "sims/" + url.PathEscape(iccid) + suffix, nil
}

// ============================================================================
// SIM Queries
// ============================================================================

// ListSims returns every SIM of the account, as the API pages them.
func (c *Client) ListSims(ctx context.Context) ([]Object, error) {
	return c.getList(ctx, "list_sims", "sims")
}

// GetSim returns the details of a single SIM.
func (c *Client) GetSim(ctx context.Context, iccid string) (Object, error) {
	return c.getSimObject(ctx, "get_sim", iccid, "")
}

// GetSimStatus returns the connection status of a SIM.
func (c *Client) GetSimStatus(ctx context.Context, iccid string) (Object, error) {
	return c.getSimObject(ctx, "get_sim_status", iccid, "/status")
}

// GetSimConnectivity returns the network reachability of a SIM.
func (c *Client) GetSimConnectivity(ctx context.Context, iccid string) (Object, error) {
	return c.getSimObject(ctx, "get_sim_connectivity", iccid, "/connectivity_info")
}

// GetSimUsage returns the data and SMS usage of a SIM.
func (c *Client) GetSimUsage(ctx context.Context, iccid string) (Object, error) {
	return c.getSimObject(ctx, "get_sim_usage", iccid, "/usage")
}

// GetSimDataQuota returns the remaining data volume of a SIM.
func (c *Client) GetSimDataQuota(ctx context.Context, iccid string) (Object, error) {
	return c.getSimObject(ctx, "get_sim_data_quota", iccid, "/quota/data")
}

// GetSimSMSQuota returns the remaining SMS volume of a SIM.
func (c *Client) GetSimSMSQuota(ctx context.Context, iccid string) (Object, error) {
	return c.getSimObject(ctx, "get_sim_sms_quota", iccid, "/quota/sms")
}

// ListSimEvents returns the event log of a SIM.
func (c *Client) ListSimEvents(ctx context.Context, iccid string) ([]Object, error) {
	path, err := simPath(iccid, "/events")
	if err != nil {
		return nil, err
	}
	return c.getList(ctx, "list_sim_events", path)
}

func (c *Client) getSimObject(ctx context.Context, op, iccid, suffix string) (Object, error) {
	path, err := simPath(iccid, suffix)
	if err != nil {
		return nil, err
	}
	return c.getObject(ctx, op, path)
}

// ============================================================================
// SIM Mutations
// ============================================================================

// StateOption customises a ChangeSimState call.
type StateOption func(*SimStateChange)

// WithLabel sets the SIM label. Defaults to empty.
func WithLabel(label string) StateOption {
	return func(s *SimStateChange) { s.Label = label }
}

// WithIMEILock sets whether the SIM is locked to its current IMEI. Defaults to true.
func WithIMEILock(lock bool) StateOption {
	return func(s *SimStateChange) { s.IMEILock = lock }
}

// ResetSim triggers a network reset of a SIM and returns the HTTP status code.
func (c *Client) ResetSim(ctx context.Context, iccid string) (int, error) {
	path, err := simPath(iccid, "/reset")
	if err != nil {
		return 0, err
	}
	return c.mutate(ctx, "reset_sim", http.MethodPost, path, nil)
}

// ChangeSimState activates or disables a SIM and returns the HTTP status code.
// The label is reset to empty and the IMEI lock enabled unless overridden.
func (c *Client) ChangeSimState(ctx context.Context, iccid string, status SimStatus, opts ...StateOption) (int, error) {
	path, err := simPath(iccid, "")
	if err != nil {
		return 0, err
	}
	if !status.Valid() {
		return 0, ErrInvalidStatus
	}

	change := SimStateChange{
		ICCID:    iccid,
		Label:    "",
		IMEILock: true,
		Status:   status,
	}
	for _, opt := range opts {
		opt(&change)
	}

	return c.mutate(ctx, "change_sim_state", http.MethodPut, path, change)
}
