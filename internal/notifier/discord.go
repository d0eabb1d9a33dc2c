package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/cpalomino/wedding-api/internal/models"
)

type Notifier interface {
	NotifyRSVP(guest models.Guest) error
}

// DiscordNotifier posts each RSVP response to a channel so the couple sees
// answers arrive without watching the admin panel.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(botToken, channelID string) (*DiscordNotifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	if channelID == "" {
		return nil, fmt.Errorf("discord channel ID is empty")
	}

	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}, nil
}

func (n *DiscordNotifier) NotifyRSVP(guest models.Guest) error {
	status := "will attend 🎉"
	if guest.WillAttend == nil || !*guest.WillAttend {
		status = "will not attend 😢"
	}

	msgStr := ""
	if guest.Message != nil && *guest.Message != "" {
		msgStr = fmt.Sprintf("\n**Message:** %s", *guest.Message)
	}

	message := fmt.Sprintf("💌 **RSVP Update**\n**Guest:** %s\n**Status:** %s\n**Party size:** %d%s",
		guest.Name,
		status,
		guest.NumberOfGuests,
		msgStr,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		return fmt.Errorf("send discord message: %w", err)
	}

	return nil
}
