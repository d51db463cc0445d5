package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"personal/discordkit/src/opcodes"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
)

// Intents requested on identify: guilds, guild messages, message content.
const Intents = 1<<0 | 1<<9 | 1<<15

// MessageHandler is called for every non-bot MESSAGE_CREATE.
type MessageHandler func(c *Client, m *Message)

// ComponentHandler is called for every component INTERACTION_CREATE.
type ComponentHandler func(c *Client, i *Interaction)

type Client struct {
	token      string
	httpClient *http.Client
	prefix     string
	apiBase    string
	logger     Logger

	mu            sync.RWMutex
	gateway       string
	sessionId     string
	resumeGateway string
	guilds        map[Snowflake]*Guild

	heartbeatInterval      atomic.Int64
	lastHeartbeatAcked     atomic.Bool
	lastHeartbeatTimestamp atomic.Int64
	sequence               atomic.Int64
	isResuming             atomic.Bool
	connection             atomic.Pointer[websocket.Conn]

	messageChannel chan []byte

	messageHandler   MessageHandler
	componentHandler ComponentHandler
}

func NewBot(token string, prefix string) (*Client, error) {
	client := &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		prefix: prefix,
		guilds: make(map[Snowflake]*Guild),
	}

	var response GatewayBotResponse
	if err := client.do(context.Background(), http.MethodGet, "/gateway/bot", nil, &response); err != nil {
		return nil, fmt.Errorf("could not fetch gateway url: %w", err)
	}
	client.gateway = response.Url

	client.sequence.Store(-1)
	client.lastHeartbeatAcked.Store(true)

	return client, nil
}

// Prefix returns the command prefix the bot was created with.
func (c *Client) Prefix() string {
	return c.prefix
}

// OnMessage installs the handler for incoming messages. Set it before
// connecting to the gateway.
func (c *Client) OnMessage(h MessageHandler) {
	c.messageHandler = h
}

// OnComponent installs the handler for component interactions. Set it before
// connecting to the gateway.
func (c *Client) OnComponent(h ComponentHandler) {
	c.componentHandler = h
}

// GetGuild returns the cached guild with the given id, or nil if the gateway
// has not delivered it.
func (c *Client) GetGuild(id Snowflake) *Guild {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.guilds[id]
}

// ConnectToGateway establishes a WebSocket connection to Discord's gateway and
// starts the main event loop. It will block until the context is cancelled or
// an error occurs. Returns an error if the connection fails.
func (c *Client) ConnectToGateway(ctx context.Context) error {
	if c.gateway == "" {
		return fmt.Errorf("gateway URL not set")
	}

	conn, _, err := websocket.DefaultDialer.Dial(c.gateway, http.Header{})
	if err != nil {
		return fmt.Errorf("could not connect to WebSocket: %w", err)
	}

	c.connection.Store(conn)

	_, messageBody, err := conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("could not receive hello message: %w", err)
	}

	var message HelloMessage
	err = json.Unmarshal(messageBody, &message)
	if err != nil {
		return fmt.Errorf("could not unmarshal hello message: %w", err)
	}

	if message.Op != opcodes.Hello {
		return fmt.Errorf("invalid handshake: expected Hello (opcode %d), got %d", opcodes.Hello, message.Op)
	}

	interval := time.Duration(message.D.HeartbeatInterval) * time.Millisecond
	c.heartbeatInterval.Store(int64(interval))

	c.info("ConnectToGateway: successfully made handshake; heartbeat interval: %v", interval)

	if err := c.identify(); err != nil {
		return fmt.Errorf("failed to identify: %w", err)
	}

	go c.startHeartbeat(ctx)

	return c.startListening(ctx)
}

func (c *Client) identify() error {
	conn := c.connection.Load()
	if conn == nil {
		return fmt.Errorf("connection is not open")
	}

	identifyMessage := IdentifyMessage{
		Op: opcodes.Identify,
		D: IdentifyData{
			Token: c.token,
			Properties: struct {
				Os      string `json:"$os"`
				Browser string `json:"$browser"`
				Device  string `json:"$device"`
			}{
				Os:      "linux",
				Browser: "discordkit",
				Device:  "discordkit",
			},
			Shard:   []int{0, 1},
			Intents: Intents,
		},
	}

	payload, err := json.Marshal(identifyMessage)
	if err != nil {
		return fmt.Errorf("could not marshal identify message: %w", err)
	}

	err = conn.WriteMessage(websocket.TextMessage, payload)
	if err != nil {
		return fmt.Errorf("could not send identify message: %w", err)
	}

	c.debug("identify: sent identify message")
	return nil
}

func (c *Client) startHeartbeat(ctx context.Context) {
	interval := time.Duration(c.heartbeatInterval.Load())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.debug("startHeartbeat: starting heartbeat with interval %v", interval)

	for {
		select {
		case <-ctx.Done():
			c.debug("startHeartbeat: context cancelled, stopping heartbeat")
			return
		case <-ticker.C:
			if err := c.sendHeartbeat(); err != nil {
				c.warning("startHeartbeat: failed to send heartbeat: %v", err)
			}
		}
	}
}

func (c *Client) sendHeartbeat() error {
	if !c.lastHeartbeatAcked.Load() {
		return fmt.Errorf("last heartbeat was not acknowledged")
	}

	c.lastHeartbeatAcked.Store(false)
	c.lastHeartbeatTimestamp.Store(time.Now().UnixNano() / int64(time.Millisecond))

	seq := c.sequence.Load()
	conn := c.connection.Load()

	if conn == nil {
		return fmt.Errorf("connection is nil")
	}

	heartbeatMessage := HeartbeatMessage{
		Op: opcodes.Heartbeat,
		D:  seq,
	}

	payload, err := json.Marshal(heartbeatMessage)
	if err != nil {
		return fmt.Errorf("could not marshal heartbeat message: %w", err)
	}

	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("could not send heartbeat message: %w", err)
	}

	c.debug("sendHeartbeat: sent heartbeat message")
	return nil
}

func (c *Client) startListening(ctx context.Context) error {
	conn := c.connection.Load()
	if conn == nil {
		return fmt.Errorf("connection is not open")
	}

	c.info("startListening: started listening for messages")

	c.messageChannel = make(chan []byte, 10)
	errCh := make(chan error, 1)

	go func() {
		defer close(c.messageChannel)
		for {
			_, messageBody, err := conn.ReadMessage()
			if err != nil {
				errCh <- fmt.Errorf("could not receive message from WebSocket: %w", err)
				return
			}

			select {
			case c.messageChannel <- messageBody:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			c.info("startListening: context cancelled, closing connection")
			if conn := c.connection.Load(); conn != nil {
				conn.Close()
			}
			return ctx.Err()

		case err := <-errCh:
			return err

		case messageBody, ok := <-c.messageChannel:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			if err := c.handleMessage(messageBody); err != nil {
				c.error("startListening: error handling message: %v", err)
			}
		}
	}
}

func (c *Client) handleMessage(messageBody []byte) error {
	var message Packet
	if err := json.Unmarshal(messageBody, &message); err != nil {
		return fmt.Errorf("could not unmarshal message body: %w (body: %s)", err, string(messageBody))
	}

	switch message.T {
	case "READY":
		c.info("handleMessage: received READY event")
		var data ReadyData
		if err := json.Unmarshal(message.D, &data); err != nil {
			return fmt.Errorf("could not unmarshal READY event data: %w", err)
		}

		c.mu.Lock()
		c.sessionId = data.SessionId
		c.resumeGateway = data.ResumeUrl
		c.mu.Unlock()

		c.lastHeartbeatAcked.Store(true)

		if err := c.sendHeartbeat(); err != nil {
			c.warning("handleMessage: failed to send initial heartbeat: %v", err)
		}

	case "RESUMED":
		c.info("handleMessage: received RESUMED event")
		c.isResuming.Store(false)

	case "":
	default:
		c.debug("handleMessage: received event type: %s", message.T)
	}

	switch message.Op {
	case opcodes.HeartbeatACK:
		c.acknowledgeHeartbeat()

	case opcodes.Heartbeat:
		if err := c.sendHeartbeat(); err != nil {
			return fmt.Errorf("failed to send requested heartbeat: %w", err)
		}

	case opcodes.Reconnect:
		return fmt.Errorf("received reconnect opcode - TODO: implement reconnection")

	case opcodes.Dispatch:
		c.sequence.Store(message.S)
		c.onEvent(message.T, message.D)

	case opcodes.InvalidSession:
		return c.handleInvalidSession(message.D)

	default:
		c.warning("handleMessage: received unknown opcode: %d", message.Op)
	}

	// Update sequence if message has one (lock-free compare-and-swap pattern)
	if message.S > 0 {
		for {
			oldSeq := c.sequence.Load()
			if message.S <= oldSeq {
				break
			}
			if c.sequence.CompareAndSwap(oldSeq, message.S) {
				break
			}
		}
	}

	return nil
}

func (c *Client) acknowledgeHeartbeat() {
	c.debug("acknowledgeHeartbeat: received heartbeat ACK")
	c.lastHeartbeatAcked.Store(true)
	c.lastHeartbeatTimestamp.Store(time.Now().UnixNano() / int64(time.Millisecond))
}

func (c *Client) onEvent(eventType string, data json.RawMessage) {
	switch eventType {
	case "GUILD_CREATE", "GUILD_UPDATE":
		guild := new(Guild)
		if err := json.Unmarshal(data, guild); err != nil {
			c.error("onEvent: could not unmarshal %s data: %v", eventType, err)
			return
		}
		guild.c = c

		c.mu.Lock()
		if c.guilds == nil {
			c.guilds = make(map[Snowflake]*Guild)
		}
		c.guilds[guild.ID] = guild
		c.mu.Unlock()

	case "MESSAGE_CREATE":
		message := new(Message)
		if err := json.Unmarshal(data, message); err != nil {
			c.error("onEvent: could not unmarshal MESSAGE_CREATE data: %v", err)
			return
		}
		if message.Author != nil && message.Author.Bot != nil && *message.Author.Bot {
			return
		}
		if h := c.messageHandler; h != nil {
			h(c, message)
		}

	case "INTERACTION_CREATE":
		// Sniff the interaction type before committing to a full parse.
		if gjson.GetBytes(data, "type").Int() != int64(InteractionTypeMessageComponent) {
			return
		}
		interaction := new(Interaction)
		if err := json.Unmarshal(data, interaction); err != nil {
			c.error("onEvent: could not unmarshal INTERACTION_CREATE data: %v", err)
			return
		}
		interaction.c = c
		if h := c.componentHandler; h != nil {
			h(c, interaction)
		}
	}
}

func (c *Client) handleInvalidSession(data json.RawMessage) error {
	var canResume bool
	if err := json.Unmarshal(data, &canResume); err != nil {
		return fmt.Errorf("could not unmarshal invalid session data: %w", err)
	}

	if canResume {
		return fmt.Errorf("received invalid session (resumable)")
	}

	return fmt.Errorf("received invalid session (not resumable)")
}

func (c *Client) Disconnect() error {
	conn := c.connection.Load()
	if conn == nil {
		return nil
	}

	c.info("Disconnect: closing WebSocket connection")

	err := conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
	if err != nil {
		c.warning("Disconnect: failed to send close message: %v", err)
	}

	if err := conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	c.connection.Store(nil)

	c.info("Disconnect: connection closed successfully")
	return nil
}
