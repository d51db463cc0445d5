package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// Guild feature flags this library cares about. The API carries features as
// plain strings, so any flag not listed here still round-trips untouched.
const (
	FeatureCommunity            = "COMMUNITY"
	FeatureWelcomeScreenEnabled = "WELCOME_SCREEN_ENABLED"
)

type Guild struct {
	ID          Snowflake  `json:"id"`
	Name        string     `json:"name"`
	Icon        *string    `json:"icon"`
	OwnerID     Snowflake  `json:"owner_id"`
	Features    []string   `json:"features"`
	Emojis      []*Emoji   `json:"emojis,omitempty"`
	Channels    []*Channel `json:"channels,omitempty"`
	MemberCount *int       `json:"member_count,omitempty"`
	PremiumTier *int       `json:"premium_tier,omitempty"`

	c *Client
}

// GetChannel returns the guild channel with the given id, or nil if the
// guild has no such channel.
func (g *Guild) GetChannel(channelId Snowflake) *Channel {
	for _, ch := range g.Channels {
		if ch.ID == channelId {
			return ch
		}
	}
	return nil
}

// GetEmoji returns the custom emoji with the given id, or nil if the guild
// has no such emoji.
func (g *Guild) GetEmoji(emojiId Snowflake) *Emoji {
	for _, e := range g.Emojis {
		if e.ID == emojiId {
			return e
		}
	}
	return nil
}

// GetEmojiByName returns the first custom emoji with the given name, or nil.
func (g *Guild) GetEmojiByName(name string) *Emoji {
	for _, e := range g.Emojis {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// HasFeature reports whether the flag is present in the guild's feature set.
func (g *Guild) HasFeature(feature string) bool {
	for _, f := range g.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// WelcomeScreen fetches the guild's welcome screen from the API. Requires the
// MANAGE_GUILD permission when the screen is not enabled.
func (g *Guild) WelcomeScreen(ctx context.Context) (*WelcomeScreen, error) {
	data := new(WelcomeScreenPayload)
	if err := g.c.do(ctx, http.MethodGet, "/guilds/"+string(g.ID)+"/welcome-screen", nil, data); err != nil {
		return nil, errors.Wrap(err, "fetch welcome screen")
	}
	return newWelcomeScreen(data, g), nil
}

// FetchGuild retrieves a guild by id from the API and stores it in the
// client's guild cache.
func (c *Client) FetchGuild(ctx context.Context, guildId Snowflake) (*Guild, error) {
	guild := new(Guild)
	if err := c.do(ctx, http.MethodGet, "/guilds/"+string(guildId), nil, guild); err != nil {
		return nil, errors.Wrap(err, "fetch guild")
	}
	guild.c = c

	c.mu.Lock()
	if c.guilds == nil {
		c.guilds = make(map[Snowflake]*Guild)
	}
	c.guilds[guild.ID] = guild
	c.mu.Unlock()

	return guild, nil
}
