package client

import (
	"github.com/google/uuid"
)

type ComponentType int

const (
	ComponentTypeActionRow ComponentType = 1
	ComponentTypeButton    ComponentType = 2
)

type ButtonStyle int

const (
	ButtonStylePrimary ButtonStyle = iota + 1
	ButtonStyleSecondary
	ButtonStyleSuccess
	ButtonStyleDanger
	ButtonStyleLink
)

// ActionRow is a top-level container for message components.
type ActionRow struct {
	Type       ComponentType `json:"type"`
	Components []*Button     `json:"components"`
}

func NewActionRow(buttons ...*Button) *ActionRow {
	return &ActionRow{
		Type:       ComponentTypeActionRow,
		Components: buttons,
	}
}

type Button struct {
	Type     ComponentType `json:"type"`
	Style    ButtonStyle   `json:"style"`
	Label    string        `json:"label,omitempty"`
	Emoji    *Emoji        `json:"emoji,omitempty"`
	CustomID string        `json:"custom_id,omitempty"`
	URL      string        `json:"url,omitempty"`
	Disabled bool          `json:"disabled,omitempty"`
}

// NewButton builds a button with a generated custom id. Link buttons should
// be constructed directly with a URL and no custom id.
func NewButton(style ButtonStyle, label string) *Button {
	return &Button{
		Type:     ComponentTypeButton,
		Style:    style,
		Label:    label,
		CustomID: uuid.NewString(),
	}
}
