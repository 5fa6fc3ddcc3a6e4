package discordnotify

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Notifier manda el resumen del refresh a un canal. Sin intents ni
// handlers: la sesión solo se usa para mandar mensajes salientes.
type Notifier struct {
	s       *discordgo.Session
	channel string
}

func New(token, channelID string) (*Notifier, error) {
	auth := token
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(auth)), "bot ") {
		auth = "Bot " + strings.TrimSpace(auth)
	}
	s, err := discordgo.New(auth)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	return &Notifier{s: s, channel: channelID}, nil
}

func (n *Notifier) Notify(ctx context.Context, msg string) error {
	_, err := n.s.ChannelMessageSend(n.channel, msg, discordgo.WithContext(ctx))
	return err
}

func (n *Notifier) Close() error { return n.s.Close() }
