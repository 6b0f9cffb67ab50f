package arkd

import (
	"context"
	"fmt"
	"net/http"
)

// Name implements ports.HealthChecker.
func (c *Client) Name() string { return "arkd" }

// Check probes the daemon's info endpoint.
func (c *Client) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.arkURL+"/v1/info", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("arkd info: status %d", resp.StatusCode)
	}
	return nil
}
