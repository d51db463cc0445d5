// Example bot: a counter button. The command "$counter" sends a message with
// a red button labelled 0; every press increments the label until it reaches
// 5, at which point the button turns green and disables itself.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"personal/discordkit/src/client"

	"github.com/joho/godotenv"
)

type stdLogger struct{}

func (stdLogger) Info(format string, args ...any)    { log.Printf("INFO  "+format, args...) }
func (stdLogger) Warning(format string, args ...any) { log.Printf("WARN  "+format, args...) }
func (stdLogger) Error(format string, args ...any)   { log.Printf("ERROR "+format, args...) }
func (stdLogger) Debug(format string, args ...any)   { log.Printf("DEBUG "+format, args...) }

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	token := os.Getenv("DISCORD_TOKEN")
	defaultPrefix := os.Getenv("DEFAULT_PREFIX")

	bot, err := client.NewBot(token, defaultPrefix)
	if err != nil {
		log.Fatalf("could not create bot: %v", err)
	}
	bot.SetLogger(stdLogger{})

	bot.OnMessage(func(c *client.Client, m *client.Message) {
		if m.Content != c.Prefix()+"counter" {
			return
		}

		button := client.NewButton(client.ButtonStyleDanger, "0")
		_, err := c.SendMessage(context.Background(), m.ChannelID, &client.MessageSend{
			Content:    "Press!",
			Components: []*client.ActionRow{client.NewActionRow(button)},
		})
		if err != nil {
			log.Printf("could not send counter message: %v", err)
		}
	})

	bot.OnComponent(func(c *client.Client, i *client.Interaction) {
		message := i.Message
		if message == nil || len(message.Components) == 0 || len(message.Components[0].Components) == 0 {
			return
		}
		button := message.Components[0].Components[0]
		if i.Data == nil || i.Data.CustomID != button.CustomID {
			return
		}

		number, _ := strconv.Atoi(button.Label)
		number++
		if number >= 5 {
			button.Style = client.ButtonStyleSuccess
			button.Disabled = true
		}
		button.Label = strconv.Itoa(number)

		if err := i.UpdateMessage(context.Background(), message.Content, message.Components); err != nil {
			log.Printf("could not update counter message: %v", err)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.ConnectToGateway(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("gateway connection closed: %v", err)
	}
}
