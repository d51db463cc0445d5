package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

type InteractionType int

const (
	InteractionTypePing InteractionType = iota + 1
	InteractionTypeApplicationCommand
	InteractionTypeMessageComponent
)

type InteractionResponseType int

const (
	InteractionResponsePong                   InteractionResponseType = 1
	InteractionResponseChannelMessage         InteractionResponseType = 4
	InteractionResponseDeferredChannelMessage InteractionResponseType = 5
	InteractionResponseDeferredUpdateMessage  InteractionResponseType = 6
	InteractionResponseUpdateMessage          InteractionResponseType = 7
)

// Interaction is an INTERACTION_CREATE event. This client only dispatches
// message component interactions.
type Interaction struct {
	ID        Snowflake        `json:"id"`
	Type      InteractionType  `json:"type"`
	GuildID   *Snowflake       `json:"guild_id,omitempty"`
	ChannelID *Snowflake       `json:"channel_id,omitempty"`
	Token     string           `json:"token"`
	Message   *Message         `json:"message,omitempty"`
	Member    *Member          `json:"member,omitempty"`
	Data      *InteractionData `json:"data,omitempty"`

	c *Client
}

type InteractionData struct {
	CustomID      string        `json:"custom_id"`
	ComponentType ComponentType `json:"component_type"`
}

type Member struct {
	User *User  `json:"user,omitempty"`
	Nick string `json:"nick,omitempty"`
}

type InteractionResponse struct {
	Type InteractionResponseType  `json:"type"`
	Data *InteractionResponseData `json:"data,omitempty"`
}

type InteractionResponseData struct {
	Content    string       `json:"content,omitempty"`
	Components []*ActionRow `json:"components,omitempty"`
	Flags      int          `json:"flags,omitempty"`
}

// Respond acknowledges the interaction with the given response. Each
// interaction can be responded to exactly once, within three seconds.
func (i *Interaction) Respond(ctx context.Context, response *InteractionResponse) error {
	path := "/interactions/" + string(i.ID) + "/" + i.Token + "/callback"
	if err := i.c.do(ctx, http.MethodPost, path, response, nil); err != nil {
		return errors.Wrap(err, "respond to interaction")
	}
	return nil
}

// UpdateMessage responds by editing the message the component is attached to.
func (i *Interaction) UpdateMessage(ctx context.Context, content string, components []*ActionRow) error {
	return i.Respond(ctx, &InteractionResponse{
		Type: InteractionResponseUpdateMessage,
		Data: &InteractionResponseData{
			Content:    content,
			Components: components,
		},
	})
}
