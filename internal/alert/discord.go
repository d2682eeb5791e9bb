package alert

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bwmarrin/discordgo"
)

// WebhookExecutor is the subset of *discordgo.Session used to post alerts
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordAlerter posts alerts to a Discord channel webhook
type DiscordAlerter struct {
	exec      WebhookExecutor
	webhookID string
	token     string
}

// NewDiscordAlerter creates an alerter for the given webhook. Webhooks need no
// bot token, so the session is created without one.
func NewDiscordAlerter(webhookID, token string) (*DiscordAlerter, error) {
	if webhookID == "" || token == "" {
		return nil, fmt.Errorf("discord webhook id and token are required")
	}
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return NewDiscordAlerterWithExecutor(s, webhookID, token), nil
}

// NewDiscordAlerterWithExecutor creates an alerter on an existing executor
func NewDiscordAlerterWithExecutor(exec WebhookExecutor, webhookID, token string) *DiscordAlerter {
	return &DiscordAlerter{exec: exec, webhookID: webhookID, token: token}
}

// Alert posts a as a single embed
func (d *DiscordAlerter) Alert(ctx context.Context, a Alert) error {
	params := &discordgo.WebhookParams{
		Username: DiscordUsername,
		Embeds:   []*discordgo.MessageEmbed{buildEmbed(a)},
	}
	if _, err := d.exec.WebhookExecute(d.webhookID, d.token, false, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to post discord alert %q: %w", a.Key, err)
	}
	return nil
}

func buildEmbed(a Alert) *discordgo.MessageEmbed {
	at := a.At
	if at.IsZero() {
		at = time.Now()
	}

	names := make([]string, 0, len(a.Fields))
	for k := range a.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	fields := make([]*discordgo.MessageEmbedField, 0, len(names))
	for _, k := range names {
		fields = append(fields, &discordgo.MessageEmbedField{Name: k, Value: a.Fields[k], Inline: true})
	}

	return &discordgo.MessageEmbed{
		Title:       a.Title,
		Description: a.Message,
		Color:       severityColor(a.Severity),
		Fields:      fields,
		Timestamp:   at.UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: DiscordUsername,
		},
	}
}

func severityColor(s Severity) int {
	switch s {
	case SeverityError:
		return ColorError
	case SeverityWarning:
		return ColorWarning
	default:
		return ColorInfo
	}
}
