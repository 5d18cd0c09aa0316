package service

import (
	"context"
	"fmt"
	"strings"

	"idea-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=events.go -destination=../mocks/dispatcher_mocks.go -package=mocks

// Event is a committed transition waiting to be turned into notifications
type Event struct {
	Type        models.NotificationType
	IdeaID      *uuid.UUID
	IdeaTitle   string
	Actor       string
	RelatedUser string
	Recipients  []string
	Data        map[string]interface{}
}

// NotificationDispatcher receives events after the transaction that produced them has committed
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, events ...Event) int
}

// outbox collects events inside a unit of work so they are dispatched only after commit
type outbox struct {
	events []Event
}

func (o *outbox) add(event Event) {
	if len(event.Recipients) == 0 {
		return
	}
	o.events = append(o.events, event)
}

func (o *outbox) flush(ctx context.Context, dispatcher NotificationDispatcher) {
	if dispatcher == nil || len(o.events) == 0 {
		return
	}
	dispatcher.Dispatch(ctx, o.events...)
	o.events = nil
}

// uniqueRecipients drops blanks and repeats while keeping first-seen order
func uniqueRecipients(candidates ...string) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		email := normalizeEmail(candidate)
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out
}

// recipientsExcept is uniqueRecipients without the acting user
func recipientsExcept(actor string, candidates ...string) []string {
	actor = normalizeEmail(actor)
	all := uniqueRecipients(candidates...)
	out := all[:0]
	for _, email := range all {
		if email != actor {
			out = append(out, email)
		}
	}
	return out
}

func ideaEvent(eventType models.NotificationType, idea *models.Idea, actor string) Event {
	id := idea.ID
	return Event{
		Type:      eventType,
		IdeaID:    &id,
		IdeaTitle: idea.Title,
		Actor:     actor,
		Data:      map[string]interface{}{},
	}
}

// RenderNotification produces the title and body for one event
func RenderNotification(event Event) (string, string) {
	title := event.IdeaTitle
	if title == "" {
		title = "an idea"
	} else {
		title = fmt.Sprintf("%q", title)
	}
	data := func(key string) string {
		if v, ok := event.Data[key]; ok {
			return fmt.Sprint(v)
		}
		return ""
	}

	switch event.Type {
	case models.NotificationClaimRequest:
		return "New claim request",
			fmt.Sprintf("%s asked to claim %s.", event.RelatedUser, title)
	case models.NotificationClaimApprovalRequired:
		return "Claim approval required",
			fmt.Sprintf("%s asked to claim %s and needs your approval as manager.", event.RelatedUser, title)
	case models.NotificationClaimApproved:
		return "Claim approved",
			fmt.Sprintf("The claim of %s on %s was approved. Work starts in planning.", event.RelatedUser, title)
	case models.NotificationClaimDenied:
		if reason := data("reason"); reason != "" {
			return "Claim denied", fmt.Sprintf("Your claim on %s was denied: %s.", title, reason)
		}
		return "Claim denied", fmt.Sprintf("Your claim on %s was denied by %s.", title, event.Actor)
	case models.NotificationStatusChange:
		return "Status updated",
			fmt.Sprintf("%s moved %s from %s to %s.", event.Actor, title, humanize(data("from")), humanize(data("to")))
	case models.NotificationBountyApproval:
		if decision := data("decision"); decision != "" {
			return "Bounty " + decision,
				fmt.Sprintf("The bounty of %s on %s was %s by %s.", data("amount"), title, decision, event.Actor)
		}
		return "Bounty approval required",
			fmt.Sprintf("A bounty of %s on %s needs expense approval.", data("amount"), title)
	case models.NotificationTeamMemberJoined:
		return "New team member",
			fmt.Sprintf("%s joined team %s.", event.RelatedUser, data("team"))
	case models.NotificationManagerRequestApproved:
		return "Manager request approved",
			fmt.Sprintf("You are now the manager of team %s.", data("team"))
	case models.NotificationManagerRequestDenied:
		return "Manager request denied",
			fmt.Sprintf("Your request to manage team %s was denied.", data("team"))
	default:
		return "Notification", fmt.Sprintf("Update on %s.", title)
	}
}

func humanize(tag string) string {
	if tag == "" {
		return "none"
	}
	return strings.ReplaceAll(tag, "_", " ")
}
