package client

import (
	"encoding/json"
)

// Snowflake is a Discord object id. The API transports them as strings to
// avoid integer precision loss in JSON.
type Snowflake string

// GatewayBotResponse is the shape of GET /gateway/bot.
type GatewayBotResponse struct {
	Url               string `json:"url"`
	Shards            int    `json:"shards"`
	SessionStartLimit struct {
		Total          int `json:"total"`
		Remaining      int `json:"remaining"`
		ResetAfter     int `json:"reset_after"`
		MaxConcurrency int `json:"max_concurrency"`
	} `json:"session_start_limit"`
}

type HelloMessage struct {
	Op int       `json:"op"`
	D  HelloData `json:"d"`
}

type HelloData struct {
	HeartbeatInterval int `json:"heartbeat_interval"`
}

type IdentifyMessage struct {
	Op int          `json:"op"`
	D  IdentifyData `json:"d"`
}

type IdentifyData struct {
	Token      string `json:"token"`
	Properties struct {
		Os      string `json:"$os"`
		Browser string `json:"$browser"`
		Device  string `json:"$device"`
	} `json:"properties"`
	Compress       bool        `json:"compress"`
	LargeThreshold int         `json:"large_threshold"`
	Shard          []int       `json:"shard"`
	Presence       interface{} `json:"presence"`
	Intents        int         `json:"intents"`
}

type ReadyData struct {
	SessionId string `json:"session_id"`
	ResumeUrl string `json:"resume_gateway_url"`
}

type HeartbeatMessage struct {
	Op int   `json:"op"`
	D  int64 `json:"d"`
}

type ResumeMessage struct {
	Op int        `json:"op"`
	D  ResumeData `json:"d"`
}

type ResumeData struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Sequence  int64  `json:"seq"`
}

type Packet struct {
	Op int             `json:"op"`
	T  string          `json:"t"`
	D  json.RawMessage `json:"d"`
	S  int64           `json:"s"`
}
