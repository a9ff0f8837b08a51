package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"tastebook/internal/domain/comment"
	"tastebook/internal/domain/content"
	"tastebook/internal/domain/profile"
)

type CreateCommentInput struct {
	Comment  string
	TargetID uuid.UUID
	Type     content.Kind
}

type CommentUsecase interface {
	Create(ctx context.Context, identity uuid.UUID, in CreateCommentInput) (comment.Comment, error)
	ListForTarget(ctx context.Context, targetID uuid.UUID, kind content.Kind) ([]comment.Comment, error)
	Update(ctx context.Context, identity, id uuid.UUID, text string) (comment.Comment, error)
	Delete(ctx context.Context, identity, id uuid.UUID) error
}

type Comments struct {
	comments comment.Repository
	contents content.Repository
	profiles profile.Repository
	notifier Notifier
}

func NewCommentUsecase(comments comment.Repository, contents content.Repository, profiles profile.Repository, notifier Notifier) *Comments {
	return &Comments{comments: comments, contents: contents, profiles: profiles, notifier: notifier}
}

// Create stores the (target_id, type) pair without checking the target
// exists. Likes verify their target; comments intentionally do not, so a
// comment can be posted against an id that was never valid.
func (s *Comments) Create(ctx context.Context, identity uuid.UUID, in CreateCommentInput) (comment.Comment, error) {
	if !in.Type.Valid() {
		return comment.Comment{}, content.ErrInvalidKind
	}

	text := strings.TrimSpace(in.Comment)
	if text == "" {
		return comment.Comment{}, ErrInvalidInput
	}

	created, err := s.comments.Create(ctx, comment.Comment{
		Comment:  text,
		UserID:   identity,
		TargetID: in.TargetID,
		Type:     in.Type,
	})
	if err != nil {
		return comment.Comment{}, err
	}

	s.notifyOwner(ctx, identity, in.TargetID, in.Type)
	return created, nil
}

// ListForTarget accepts an empty kind, returning comments of both kinds.
func (s *Comments) ListForTarget(ctx context.Context, targetID uuid.UUID, kind content.Kind) ([]comment.Comment, error) {
	if kind != "" && !kind.Valid() {
		return nil, content.ErrInvalidKind
	}
	return s.comments.ListByTarget(ctx, targetID, kind)
}

// Update folds a missing comment and a foreign comment into the same
// ErrForbidden, matching delete.
func (s *Comments) Update(ctx context.Context, identity, id uuid.UUID, text string) (comment.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return comment.Comment{}, ErrInvalidInput
	}

	existing, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, comment.ErrNotFound) {
			return comment.Comment{}, ErrForbidden
		}
		return comment.Comment{}, err
	}
	if err := authorizeOwner(identity, existing.UserID); err != nil {
		return comment.Comment{}, err
	}

	return s.comments.UpdateText(ctx, id, text)
}

func (s *Comments) Delete(ctx context.Context, identity, id uuid.UUID) error {
	existing, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, comment.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	if err := authorizeOwner(identity, existing.UserID); err != nil {
		return err
	}

	return s.comments.Delete(ctx, id)
}

func (s *Comments) notifyOwner(ctx context.Context, identity, targetID uuid.UUID, kind content.Kind) {
	if s.notifier == nil {
		return
	}
	it, err := s.contents.GetByID(ctx, kind, targetID)
	if err != nil || it.UserID == identity {
		return
	}
	actor, err := s.profiles.GetByID(ctx, identity)
	if err != nil {
		return
	}
	notify(s.notifier, it.UserID, eventCommented, actor.Username, string(kind), targetID)
}
