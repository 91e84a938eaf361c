package messagesvc

import (
	"context"
	"strings"

	"github.com/Saadasw/book-renter/model"
	messagerepo "github.com/Saadasw/book-renter/repository/message"
	"github.com/Saadasw/book-renter/service/authz"
	"github.com/Saadasw/book-renter/util/apperr"
)

type Repo = messagerepo.Repo

type Users interface {
	ByID(ctx context.Context, id string) (*model.User, error)
}

type Service interface {
	Send(ctx context.Context, actorID, senderID, receiverID, content string) (*model.Message, error)
	ForUser(ctx context.Context, userID string) ([]model.Message, error)
}

type service struct {
	r     Repo
	users Users
}

func New(r Repo, users Users) Service { return &service{r: r, users: users} }

func (s *service) Send(ctx context.Context, actorID, senderID, receiverID, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.NewValidation("message content is required")
	}
	actor, err := s.users.ByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, apperr.NewNotFound("user not found")
	}
	if err := authz.CanSendMessageAs(actor, senderID); err != nil {
		return nil, err
	}
	receiver, err := s.users.ByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, apperr.NewNotFound("receiver not found")
	}

	m := &model.Message{SenderID: senderID, ReceiverID: receiverID, Content: content}
	if err := s.r.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) ForUser(ctx context.Context, userID string) ([]model.Message, error) {
	return s.r.ListForUser(ctx, userID)
}
