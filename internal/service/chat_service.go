package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/travel-planner/internal/domain"
	"github.com/spec-kit/travel-planner/internal/events"
	"github.com/spec-kit/travel-planner/internal/repository"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

const messagePreviewLength = 80

// MessageView is a message with both participants' profiles attached.
type MessageView struct {
	domain.Message
	Sender   domain.UserSummary `json:"sender"`
	Receiver domain.UserSummary `json:"receiver"`
}

// ChatService owns direct messaging: sending, conversation history, the
// recent-conversations listing, and read receipts.
type ChatService struct {
	messages   repository.MessageRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewChatService builds the service.
func NewChatService(messages repository.MessageRepository, users repository.UserRepository, dispatcher events.Dispatcher) *ChatService {
	return &ChatService{messages: messages, users: users, dispatcher: dispatcher}
}

// SendMessage delivers a message from the actor to the receiver. Self-sends
// are rejected and the receiver must exist.
func (s *ChatService) SendMessage(ctx context.Context, sender *domain.User, receiverID, content string) (*MessageView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("Message content cannot be empty", nil)
	}
	if receiverID == sender.ID.Hex() {
		return nil, apperrors.NewValidationError("Cannot send message to yourself", nil)
	}

	receiver, err := s.users.GetByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Receiver", nil)
		}
		return nil, err
	}

	msg := &domain.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    content,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	preview := content
	if runes := []rune(preview); len(runes) > messagePreviewLength {
		preview = string(runes[:messagePreviewLength])
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventMessageSent,
		ActorID:   sender.ID.Hex(),
		Timestamp: time.Now(),
		Payload: events.MessageSentPayload{
			MessageID:  msg.ID.Hex(),
			ReceiverID: receiver.ID.Hex(),
			Preview:    preview,
		},
	})

	return &MessageView{Message: *msg, Sender: sender.Summary(), Receiver: receiver.Summary()}, nil
}

// Conversation returns the full history between the actor and the other
// user, oldest first. The query shape restricts reads to participants.
func (s *ChatService) Conversation(ctx context.Context, actor *domain.User, otherUserID string) ([]MessageView, error) {
	other, err := s.users.GetByID(ctx, otherUserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("User", nil)
		}
		return nil, err
	}

	msgs, err := s.messages.ListConversation(ctx, actor.ID, other.ID)
	if err != nil {
		return nil, err
	}

	profiles := map[primitive.ObjectID]domain.UserSummary{
		actor.ID: actor.Summary(),
		other.ID: other.Summary(),
	}
	views := make([]MessageView, 0, len(msgs))
	for i := range msgs {
		views = append(views, MessageView{
			Message:  msgs[i],
			Sender:   profiles[msgs[i].SenderID],
			Receiver: profiles[msgs[i].ReceiverID],
		})
	}
	return views, nil
}

// RecentConversations lists the last message per counterpart, most recent
// conversation first.
func (s *ChatService) RecentConversations(ctx context.Context, actorID primitive.ObjectID) ([]repository.ConversationEntry, error) {
	return s.messages.RecentConversations(ctx, actorID)
}

// MarkRead flags unread messages from the partner to the actor as read.
func (s *ChatService) MarkRead(ctx context.Context, actorID primitive.ObjectID, partnerID string) (int64, error) {
	partnerOID, err := primitive.ObjectIDFromHex(partnerID)
	if err != nil {
		return 0, apperrors.NewNotFound("User", nil)
	}
	return s.messages.MarkRead(ctx, partnerOID, actorID)
}
