package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// FetchChannel retrieves a channel by id from the API.
func (c *Client) FetchChannel(ctx context.Context, channelId Snowflake) (*Channel, error) {
	channel := new(Channel)
	if err := c.do(ctx, http.MethodGet, "/channels/"+string(channelId), nil, channel); err != nil {
		return nil, errors.Wrap(err, "fetch channel")
	}
	return channel, nil
}
