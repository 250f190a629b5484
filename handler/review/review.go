package review

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/Paxai/rebot/config"
	"github.com/Paxai/rebot/gateway"
	"github.com/Paxai/rebot/handler"
	"github.com/Paxai/rebot/model"
)

const (
	acceptedDM = "🎉 Twoja aplikacja whitelist została zaakceptowana! Witamy na serwerze!"
	rejectedDM = "😞 Twoja aplikacja whitelist została odrzucona. Spróbuj ponownie później."

	processingErrorReply = "❌ Wystąpił błąd podczas przetwarzania akcji."
)

// Reviewer handles accept/reject button activations on review messages.
type Reviewer struct {
	gw     gateway.Gateway
	cfg    config.Config
	logger *log.Logger
}

// NewReviewer returns a Reviewer bound to the given gateway and config.
func NewReviewer(cfg config.Config, gw gateway.Gateway, logger *log.Logger) *Reviewer {
	return &Reviewer{gw: gw, cfg: cfg, logger: logger}
}

// Register wires the reviewer into the interaction router.
func Register(r *Reviewer) {
	handler.AddComponentHandler(model.ActionAccept, r.HandleAccept)
	handler.AddComponentHandler(model.ActionReject, r.HandleReject)
}

// HandleAccept grants the approved role, confirms to the reviewer and sends
// the applicant a congratulatory DM.
func (r *Reviewer) HandleAccept(i *discordgo.InteractionCreate, action model.ReviewAction) {
	reply := fmt.Sprintf("✅ Zaakceptowano <@%s>.", action.UserID)
	r.handle(i, action, r.cfg.ApprovedRoleID, reply, acceptedDM)
}

// HandleReject grants the rejected role, confirms to the reviewer and sends
// the applicant a commiseration DM.
func (r *Reviewer) HandleReject(i *discordgo.InteractionCreate, action model.ReviewAction) {
	reply := fmt.Sprintf("❌ Odrzucono <@%s>.", action.UserID)
	r.handle(i, action, r.cfg.RejectedRoleID, reply, rejectedDM)
}

func (r *Reviewer) handle(i *discordgo.InteractionCreate, action model.ReviewAction, roleID, reply, dm string) {
	if _, err := r.gw.Guild(r.cfg.GuildID); err != nil {
		r.logger.Printf("review %s: guild %s lookup failed: %v", action.Action, r.cfg.GuildID, err)
		r.replyError(i)
		return
	}
	if _, err := r.gw.GuildMember(r.cfg.GuildID, action.UserID); err != nil {
		r.logger.Printf("review %s: member %s lookup failed: %v", action.Action, action.UserID, err)
		r.replyError(i)
		return
	}

	if err := r.gw.GuildMemberRoleAdd(r.cfg.GuildID, action.UserID, roleID); err != nil {
		r.logger.Printf("review %s: adding role %s to member %s failed: %v", action.Action, roleID, action.UserID, err)
		r.replyError(i)
		return
	}

	if err := r.reply(i, reply); err != nil {
		r.logger.Printf("review %s: confirmation reply for member %s failed: %v", action.Action, action.UserID, err)
		r.replyError(i)
		return
	}

	// Best effort: a closed-DM user must not fail the review.
	r.sendDM(action.UserID, dm)
}

func (r *Reviewer) reply(i *discordgo.InteractionCreate, content string) error {
	return r.gw.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func (r *Reviewer) replyError(i *discordgo.InteractionCreate) {
	if err := r.reply(i, processingErrorReply); err != nil {
		r.logger.Printf("review: error reply failed: %v", err)
	}
}

// sendDM notifies the applicant of the outcome. Failures are logged and
// swallowed; the member may simply have DMs disabled.
func (r *Reviewer) sendDM(userID, content string) {
	channel, err := r.gw.UserChannelCreate(userID)
	if err != nil {
		r.logger.Printf("warning: could not open DM channel for user %s: %v", userID, err)
		return
	}
	if _, err := r.gw.ChannelMessageSend(channel.ID, content); err != nil {
		r.logger.Printf("warning: could not DM user %s: %v", userID, err)
	}
}
