package client

// Logger receives the client's diagnostic output. No logger is installed by
// default.
type Logger interface {
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
	Debug(format string, args ...any)
}

func (c *Client) SetLogger(logger Logger) {
	c.logger = logger
}

func (c *Client) info(format string, args ...any) {
	if c.logger != nil {
		c.logger.Info(format, args...)
	}
}

func (c *Client) warning(format string, args ...any) {
	if c.logger != nil {
		c.logger.Warning(format, args...)
	}
}

func (c *Client) error(format string, args ...any) {
	if c.logger != nil {
		c.logger.Error(format, args...)
	}
}

func (c *Client) debug(format string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(format, args...)
	}
}
