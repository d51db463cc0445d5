package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

type Message struct {
	ID         Snowflake    `json:"id"`
	ChannelID  Snowflake    `json:"channel_id"`
	GuildID    *Snowflake   `json:"guild_id,omitempty"`
	Author     *User        `json:"author,omitempty"`
	Content    string       `json:"content"`
	Timestamp  string       `json:"timestamp,omitempty"` // ISO8601
	Components []*ActionRow `json:"components,omitempty"`
}

// MessageSend is the body of a create-message request.
type MessageSend struct {
	Content    string       `json:"content,omitempty"`
	Components []*ActionRow `json:"components,omitempty"`
}

// SendMessage posts a message to a channel and returns the created message.
func (c *Client) SendMessage(ctx context.Context, channelId Snowflake, send *MessageSend) (*Message, error) {
	message := new(Message)
	if err := c.do(ctx, http.MethodPost, "/channels/"+string(channelId)+"/messages", send, message); err != nil {
		return nil, errors.Wrap(err, "send message")
	}
	return message, nil
}
