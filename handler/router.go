package handler

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/Paxai/rebot/model"
)

// ComponentHandler handles one review action. Handlers hold their own
// dependencies, so they only receive the event and the decoded action.
type ComponentHandler func(i *discordgo.InteractionCreate, action model.ReviewAction)

var componentHandlers = make(map[string]ComponentHandler)

// AddComponentHandler registers a handler for a review action.
func AddComponentHandler(action string, handler ComponentHandler) {
	componentHandlers[action] = handler
}

// OnInteractionCreate is the main interaction router. It should be
// registered as the primary interaction handler on the session. Anything
// that is not a message component activation is discarded, not an error.
func OnInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	action, err := model.ParseCustomID(customID)
	if err != nil {
		log.Printf("Ignoring component interaction with %v", err)
		return
	}

	handler, ok := componentHandlers[action.Action]
	if !ok {
		log.Printf("No handler registered for action %q (custom ID %q)", action.Action, customID)
		return
	}

	handler(i, action)
}
