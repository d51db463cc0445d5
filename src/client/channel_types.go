package client

// Channel types.
const (
	ChannelTypeGuildText     = 0
	ChannelTypeDM            = 1
	ChannelTypeGuildVoice    = 2
	ChannelTypeGroupDM       = 3
	ChannelTypeGuildCategory = 4
	ChannelTypeGuildNews     = 5
)

type Overwrite struct {
	ID    Snowflake `json:"id"`
	Type  int       `json:"type"`
	Allow string    `json:"allow"`
	Deny  string    `json:"deny"`
}

type User struct {
	ID            Snowflake `json:"id"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator"`
	Avatar        *string   `json:"avatar"`
	Bot           *bool     `json:"bot,omitempty"`
	System        *bool     `json:"system,omitempty"`
	Banner        *string   `json:"banner,omitempty"`
	AccentColor   *int      `json:"accent_color,omitempty"`
	Locale        *string   `json:"locale,omitempty"`
	Flags         *int      `json:"flags,omitempty"`
	PremiumType   *int      `json:"premium_type,omitempty"`
	PublicFlags   *int      `json:"public_flags,omitempty"`
}

type Channel struct {
	ID                   Snowflake   `json:"id"`
	Type                 int         `json:"type"`
	GuildID              *Snowflake  `json:"guild_id,omitempty"`
	Position             *int        `json:"position,omitempty"`
	PermissionOverwrites []Overwrite `json:"permission_overwrites,omitempty"`
	Name                 *string     `json:"name,omitempty"`
	Topic                *string     `json:"topic,omitempty"`
	NSFW                 *bool       `json:"nsfw,omitempty"`
	LastMessageID        *Snowflake  `json:"last_message_id,omitempty"`
	Bitrate              *int        `json:"bitrate,omitempty"`
	UserLimit            *int        `json:"user_limit,omitempty"`
	RateLimitPerUser     *int        `json:"rate_limit_per_user,omitempty"`
	Recipients           []User      `json:"recipients,omitempty"`
	Icon                 *string     `json:"icon,omitempty"`
	OwnerID              *Snowflake  `json:"owner_id,omitempty"`
	ParentID             *Snowflake  `json:"parent_id,omitempty"`
	LastPinTimestamp     *string     `json:"last_pin_timestamp,omitempty"` // ISO8601
	RTCRegion            *string     `json:"rtc_region,omitempty"`
	Permissions          *string     `json:"permissions,omitempty"`
	Flags                *int        `json:"flags,omitempty"`
}

// Mention returns the channel reference as it appears in message content.
func (ch *Channel) Mention() string {
	return "<#" + string(ch.ID) + ">"
}
