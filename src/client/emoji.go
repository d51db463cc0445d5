package client

// Emoji is a custom emoji owned by a guild.
type Emoji struct {
	ID            Snowflake   `json:"id"`
	Name          string      `json:"name"`
	Roles         []Snowflake `json:"roles,omitempty"`
	User          *User       `json:"user,omitempty"`
	RequireColons bool        `json:"require_colons,omitempty"`
	Managed       bool        `json:"managed,omitempty"`
	Animated      bool        `json:"animated,omitempty"`
	Available     bool        `json:"available,omitempty"`
}

// Mention returns the emoji as it appears in message content.
func (e *Emoji) Mention() string {
	if e.Animated {
		return "<a:" + e.Name + ":" + string(e.ID) + ">"
	}
	return "<:" + e.Name + ":" + string(e.ID) + ">"
}
