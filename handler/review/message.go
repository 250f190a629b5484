package review

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Paxai/rebot/model"
)

const (
	reviewTitle = "📬 Nowa aplikacja whitelist"
	reviewColor = 0x00AE86
)

// BuildReviewMessage renders a submission into the message posted to the
// review channel: one embed with a field per form entry (in input order) and
// an accept/reject button pair targeting the submitting member.
func BuildReviewMessage(sub model.Submission, refID string) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       reviewTitle,
		Description: fmt.Sprintf("Zgłoszenie od: <@%s> (%s)", sub.UserID, sub.Username),
		Color:       reviewColor,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Zgłoszenie • " + refID,
		},
	}

	for _, field := range sub.Form {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: false,
		})
	}

	accept := model.ReviewAction{Action: model.ActionAccept, UserID: sub.UserID}
	reject := model.ReviewAction{Action: model.ActionReject, UserID: sub.UserID}

	return &discordgo.MessageSend{
		Embed: embed,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "✅ Akceptuj",
						Style:    discordgo.SuccessButton,
						CustomID: accept.CustomID(),
					},
					discordgo.Button{
						Label:    "❌ Odrzuć",
						Style:    discordgo.DangerButton,
						CustomID: reject.CustomID(),
					},
				},
			},
		},
	}
}
