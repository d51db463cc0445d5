package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// WelcomeScreenChannelPayload is the wire shape of one welcome screen row.
// On the wire a custom emoji is carried as an id+name pair; a literal unicode
// emoji (or no emoji) is carried in emoji_name alone with emoji_id null. The
// emoji fields are deliberately not omitempty: serialization always emits all
// four fields, with explicit nulls for the unused ones.
type WelcomeScreenChannelPayload struct {
	ChannelID   Snowflake  `json:"channel_id"`
	Description string     `json:"description"`
	EmojiID     *Snowflake `json:"emoji_id"`
	EmojiName   *string    `json:"emoji_name"`
}

// WelcomeScreenPayload is the wire shape of a guild's welcome screen.
type WelcomeScreenPayload struct {
	Description     string                         `json:"description"`
	WelcomeChannels []*WelcomeScreenChannelPayload `json:"welcome_channels,omitempty"`
}

// WelcomeEmoji is the emoji shown beside a welcome channel. Exactly one of
// Custom and Unicode is set; a nil *WelcomeEmoji means no emoji at all.
type WelcomeEmoji struct {
	Custom  *Emoji
	Unicode string
}

// UnicodeEmoji wraps a literal unicode emoji for use on a WelcomeChannel.
func UnicodeEmoji(emoji string) *WelcomeEmoji {
	return &WelcomeEmoji{Unicode: emoji}
}

// GuildEmoji wraps a guild custom emoji for use on a WelcomeChannel.
func GuildEmoji(emoji *Emoji) *WelcomeEmoji {
	return &WelcomeEmoji{Custom: emoji}
}

// String returns the emoji as it appears in message content.
func (we *WelcomeEmoji) String() string {
	if we == nil {
		return ""
	}
	if we.Custom != nil {
		return we.Custom.Mention()
	}
	return we.Unicode
}

// WelcomeChannel is one row of a guild's welcome screen.
//
// Channel is the resolved guild channel and may be nil when the channel has
// been deleted since the screen was configured; ChannelID is always set, so a
// row stays serializable either way.
type WelcomeChannel struct {
	ChannelID   Snowflake
	Channel     *Channel
	Description string
	Emoji       *WelcomeEmoji
}

// NewWelcomeChannel builds a row for WelcomeScreen.Edit. emoji may be nil.
func NewWelcomeChannel(channel *Channel, description string, emoji *WelcomeEmoji) *WelcomeChannel {
	wc := &WelcomeChannel{
		Channel:     channel,
		Description: description,
		Emoji:       emoji,
	}
	if channel != nil {
		wc.ChannelID = channel.ID
	}
	return wc
}

func (wc *WelcomeChannel) String() string {
	return fmt.Sprintf("WelcomeChannel(channel_id=%s, description=%q, emoji=%v)", wc.ChannelID, wc.Description, wc.Emoji)
}

func newWelcomeChannelFromPayload(data *WelcomeScreenChannelPayload, guild *Guild) *WelcomeChannel {
	wc := &WelcomeChannel{
		ChannelID:   data.ChannelID,
		Channel:     guild.GetChannel(data.ChannelID),
		Description: data.Description,
	}
	switch {
	case data.EmojiID != nil:
		// Custom emoji. An id no longer present in the guild's registry
		// resolves to no emoji; it never falls back to the name field.
		if emoji := guild.GetEmoji(*data.EmojiID); emoji != nil {
			wc.Emoji = GuildEmoji(emoji)
		}
	case data.EmojiName != nil:
		wc.Emoji = UnicodeEmoji(*data.EmojiName)
	}
	return wc
}

// payload serializes the row. A custom emoji keeps whatever id/name the
// reference carries, whether or not it still exists in the guild.
func (wc *WelcomeChannel) payload() *WelcomeScreenChannelPayload {
	data := &WelcomeScreenChannelPayload{
		ChannelID:   wc.ChannelID,
		Description: wc.Description,
	}
	switch {
	case wc.Emoji == nil:
	case wc.Emoji.Custom != nil:
		data.EmojiID = &wc.Emoji.Custom.ID
		data.EmojiName = &wc.Emoji.Custom.Name
	default:
		data.EmojiName = &wc.Emoji.Unicode
	}
	return data
}

// WelcomeScreen is the onboarding panel shown to new members of a guild. It
// is owned by the guild it was fetched for and must not outlive it.
type WelcomeScreen struct {
	Description     string
	WelcomeChannels []*WelcomeChannel

	guild *Guild
	c     *Client
}

func newWelcomeScreen(data *WelcomeScreenPayload, guild *Guild) *WelcomeScreen {
	s := &WelcomeScreen{
		guild: guild,
		c:     guild.c,
	}
	s.hydrate(data)
	return s
}

// hydrate overwrites the screen's fields in place so callers holding a
// reference across an edit observe the update.
func (s *WelcomeScreen) hydrate(data *WelcomeScreenPayload) {
	s.Description = data.Description
	s.WelcomeChannels = make([]*WelcomeChannel, 0, len(data.WelcomeChannels))
	for _, wc := range data.WelcomeChannels {
		s.WelcomeChannels = append(s.WelcomeChannels, newWelcomeChannelFromPayload(wc, s.guild))
	}
}

func (s *WelcomeScreen) String() string {
	return fmt.Sprintf("WelcomeScreen(description=%q, channels=%d, enabled=%v)", s.Description, len(s.WelcomeChannels), s.Enabled())
}

// Guild returns the guild this welcome screen belongs to.
func (s *WelcomeScreen) Guild() *Guild {
	return s.guild
}

// Enabled reports whether the welcome screen is shown to new members. It is
// derived from the guild's live feature set on every call, never cached.
func (s *WelcomeScreen) Enabled() bool {
	return s.guild.HasFeature(FeatureWelcomeScreenEnabled)
}

// WelcomeScreenEdit holds the changes for WelcomeScreen.Edit. Nil fields are
// omitted from the request and left untouched server-side. A non-nil empty
// WelcomeChannels slice clears the channel list.
type WelcomeScreenEdit struct {
	Description     *string
	WelcomeChannels []*WelcomeChannel
	Enabled         *bool
}

// Edit sends a partial update of the welcome screen and re-hydrates the
// screen from the server's canonical response. Requires the MANAGE_GUILD
// permission.
//
// If no field of edit is set, Edit is a no-op and performs no request. A nil
// entry in WelcomeChannels fails with ErrInvalidArgument before any request
// is made. On any error local state is left as it was.
func (s *WelcomeScreen) Edit(ctx context.Context, edit WelcomeScreenEdit) error {
	body := make(map[string]any, 3)
	if edit.Description != nil {
		body["description"] = *edit.Description
	}
	if edit.WelcomeChannels != nil {
		channels := make([]*WelcomeScreenChannelPayload, 0, len(edit.WelcomeChannels))
		for _, wc := range edit.WelcomeChannels {
			if wc == nil {
				return errors.Wrap(ErrInvalidArgument, "welcome channels must not contain nil entries")
			}
			channels = append(channels, wc.payload())
		}
		body["welcome_channels"] = channels
	}
	if edit.Enabled != nil {
		body["enabled"] = *edit.Enabled
	}

	if len(body) == 0 {
		return nil
	}

	data := new(WelcomeScreenPayload)
	if err := s.c.do(ctx, http.MethodPatch, "/guilds/"+string(s.guild.ID)+"/welcome-screen", body, data); err != nil {
		return err
	}
	s.hydrate(data)
	return nil
}
