package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// newTestClient returns a client whose REST requests go to an httptest
// server running the given handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		token:      "test-token",
		httpClient: srv.Client(),
		apiBase:    srv.URL,
		guilds:     make(map[Snowflake]*Guild),
	}
}

// testGuild returns a guild with two channels and one custom emoji, wired to
// the given client.
func testGuild(c *Client) *Guild {
	return &Guild{
		ID:       "41771983423143937",
		Name:     "testing",
		Features: []string{FeatureCommunity, FeatureWelcomeScreenEnabled},
		Channels: []*Channel{
			{ID: "1001", Type: ChannelTypeGuildText, Name: strPtr("rules")},
			{ID: "1002", Type: ChannelTypeGuildText, Name: strPtr("announcements")},
		},
		Emojis: []*Emoji{
			{ID: "2001", Name: "loudspeaker"},
		},
		c: c,
	}
}

func TestOnEventGuildCreateCachesGuild(t *testing.T) {
	c := &Client{}

	c.onEvent("GUILD_CREATE", []byte(`{
		"id": "41771983423143937",
		"name": "testing",
		"features": ["COMMUNITY"],
		"channels": [{"id": "1001", "type": 0, "name": "rules"}]
	}`))

	guild := c.GetGuild("41771983423143937")
	require.NotNil(t, guild)
	assert.Equal(t, "testing", guild.Name)
	assert.True(t, guild.HasFeature(FeatureCommunity))
	require.NotNil(t, guild.GetChannel("1001"))
	assert.Same(t, c, guild.c)
}

func TestOnEventMessageCreateSkipsBots(t *testing.T) {
	c := &Client{}
	var got *Message
	c.OnMessage(func(_ *Client, m *Message) { got = m })

	c.onEvent("MESSAGE_CREATE", []byte(`{
		"id": "1", "channel_id": "2", "content": "hi",
		"author": {"id": "3", "username": "robot", "discriminator": "0", "avatar": null, "bot": true}
	}`))
	assert.Nil(t, got)

	c.onEvent("MESSAGE_CREATE", []byte(`{
		"id": "4", "channel_id": "2", "content": "$counter",
		"author": {"id": "5", "username": "human", "discriminator": "0", "avatar": null}
	}`))
	require.NotNil(t, got)
	assert.Equal(t, "$counter", got.Content)
}

func TestOnEventInteractionCreateDispatchesComponentsOnly(t *testing.T) {
	c := &Client{}
	var got *Interaction
	c.OnComponent(func(_ *Client, i *Interaction) { got = i })

	// application command, not a component
	c.onEvent("INTERACTION_CREATE", []byte(`{"id": "1", "type": 2, "token": "tok"}`))
	assert.Nil(t, got)

	c.onEvent("INTERACTION_CREATE", []byte(`{
		"id": "2", "type": 3, "token": "tok",
		"data": {"custom_id": "press-me", "component_type": 2}
	}`))
	require.NotNil(t, got)
	require.NotNil(t, got.Data)
	assert.Equal(t, "press-me", got.Data.CustomID)
	assert.Same(t, c, got.c)
}
