package api

import "context"

// Estatisticas fetches the aggregate expense statistics
func (c *Client) Estatisticas(ctx context.Context) (*Estatisticas, error) {
	var stats Estatisticas
	if err := c.getJSON(ctx, []string{"estatisticas"}, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
