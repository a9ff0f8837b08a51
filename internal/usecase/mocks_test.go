package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tastebook/internal/domain/comment"
	"tastebook/internal/domain/content"
	"tastebook/internal/domain/profile"
	"tastebook/internal/domain/social"
)

type stubProfileRepo struct {
	profiles  []profile.Profile
	createErr error
	updateErr error
}

func (s *stubProfileRepo) Create(_ context.Context, p profile.Profile) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.profiles = append(s.profiles, p)
	return nil
}

func (s *stubProfileRepo) Update(_ context.Context, p profile.Profile) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	for i := range s.profiles {
		if s.profiles[i].ID == p.ID {
			s.profiles[i] = p
			return nil
		}
	}
	return profile.ErrNotFound
}

func (s *stubProfileRepo) GetByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	for _, p := range s.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (s *stubProfileRepo) GetByUsername(_ context.Context, username string) (profile.Profile, error) {
	for _, p := range s.profiles {
		if p.Username == username {
			return p, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

type stubContentRepo struct {
	items     map[uuid.UUID]content.Item
	kinds     map[uuid.UUID]content.Kind
	createErr error
	deleted   []uuid.UUID
}

func newStubContentRepo() *stubContentRepo {
	return &stubContentRepo{
		items: map[uuid.UUID]content.Item{},
		kinds: map[uuid.UUID]content.Kind{},
	}
}

func (s *stubContentRepo) put(kind content.Kind, it content.Item) {
	s.items[it.ID] = it
	s.kinds[it.ID] = kind
}

func (s *stubContentRepo) ListAll(_ context.Context, kind content.Kind) ([]content.Item, error) {
	out := make([]content.Item, 0)
	for id, it := range s.items {
		if s.kinds[id] == kind {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubContentRepo) ListByOwner(_ context.Context, kind content.Kind, ownerID uuid.UUID) ([]content.Item, error) {
	out := make([]content.Item, 0)
	for id, it := range s.items {
		if s.kinds[id] == kind && it.UserID == ownerID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubContentRepo) Create(_ context.Context, kind content.Kind, it content.Item) (content.Item, error) {
	if s.createErr != nil {
		return content.Item{}, s.createErr
	}
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	it.CreatedAt = time.Now().UTC()
	s.put(kind, it)
	return it, nil
}

func (s *stubContentRepo) GetByID(_ context.Context, kind content.Kind, id uuid.UUID) (content.Item, error) {
	it, ok := s.items[id]
	if !ok || s.kinds[id] != kind {
		return content.Item{}, content.ErrNotFound
	}
	return it, nil
}

func (s *stubContentRepo) Exists(_ context.Context, kind content.Kind, id uuid.UUID) (bool, error) {
	_, ok := s.items[id]
	return ok && s.kinds[id] == kind, nil
}

func (s *stubContentRepo) Delete(_ context.Context, kind content.Kind, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok || s.kinds[id] != kind {
		return content.ErrNotFound
	}
	delete(s.items, id)
	delete(s.kinds, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type likeKey struct {
	userID   uuid.UUID
	targetID uuid.UUID
	kind     content.Kind
}

type stubLikeRepo struct {
	likes     map[likeKey]social.Like
	insertErr error
	byUser    []social.LikedTarget
}

func newStubLikeRepo() *stubLikeRepo {
	return &stubLikeRepo{likes: map[likeKey]social.Like{}}
}

func (s *stubLikeRepo) Insert(_ context.Context, l social.Like) (social.Like, error) {
	if s.insertErr != nil {
		return social.Like{}, s.insertErr
	}
	k := likeKey{userID: l.UserID, targetID: l.TargetID, kind: l.Type}
	if _, ok := s.likes[k]; ok {
		return social.Like{}, social.ErrAlreadyLiked
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	l.CreatedAt = time.Now().UTC()
	s.likes[k] = l
	return l, nil
}

func (s *stubLikeRepo) Exists(_ context.Context, userID, targetID uuid.UUID, kind content.Kind) (bool, error) {
	_, ok := s.likes[likeKey{userID: userID, targetID: targetID, kind: kind}]
	return ok, nil
}

func (s *stubLikeRepo) Delete(_ context.Context, userID, targetID uuid.UUID, kind content.Kind) (int64, error) {
	k := likeKey{userID: userID, targetID: targetID, kind: kind}
	if _, ok := s.likes[k]; !ok {
		return 0, nil
	}
	delete(s.likes, k)
	return 1, nil
}

func (s *stubLikeRepo) ListByTarget(_ context.Context, targetID uuid.UUID, kind content.Kind) ([]social.Like, error) {
	out := make([]social.Like, 0)
	for k, l := range s.likes {
		if k.targetID == targetID && k.kind == kind {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLikeRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]social.Like, error) {
	out := make([]social.Like, 0)
	for k, l := range s.likes {
		if k.userID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLikeRepo) ListByUserWithTargets(_ context.Context, _ uuid.UUID) ([]social.LikedTarget, error) {
	return s.byUser, nil
}

type followEdge struct {
	follower  uuid.UUID
	following uuid.UUID
}

type stubFollowRepo struct {
	edges     map[followEdge]struct{}
	insertErr error
	deletes   []followEdge
}

func newStubFollowRepo() *stubFollowRepo {
	return &stubFollowRepo{edges: map[followEdge]struct{}{}}
}

func (s *stubFollowRepo) Insert(_ context.Context, followerID, followingID uuid.UUID) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	e := followEdge{follower: followerID, following: followingID}
	if _, ok := s.edges[e]; ok {
		return social.ErrAlreadyFollowing
	}
	s.edges[e] = struct{}{}
	return nil
}

func (s *stubFollowRepo) Delete(_ context.Context, followerID, followingID uuid.UUID) error {
	e := followEdge{follower: followerID, following: followingID}
	delete(s.edges, e)
	s.deletes = append(s.deletes, e)
	return nil
}

func (s *stubFollowRepo) ListFollowers(_ context.Context, _ uuid.UUID) ([]profile.Public, error) {
	return nil, nil
}

func (s *stubFollowRepo) ListFollowing(_ context.Context, _ uuid.UUID) ([]profile.Public, error) {
	return nil, nil
}

type stubCommentRepo struct {
	comments  map[uuid.UUID]comment.Comment
	createErr error
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: map[uuid.UUID]comment.Comment{}}
}

func (s *stubCommentRepo) Create(_ context.Context, c comment.Comment) (comment.Comment, error) {
	if s.createErr != nil {
		return comment.Comment{}, s.createErr
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now().UTC()
	s.comments[c.ID] = c
	return c, nil
}

func (s *stubCommentRepo) GetByID(_ context.Context, id uuid.UUID) (comment.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return comment.Comment{}, comment.ErrNotFound
	}
	return c, nil
}

func (s *stubCommentRepo) ListByTarget(_ context.Context, targetID uuid.UUID, kind content.Kind) ([]comment.Comment, error) {
	out := make([]comment.Comment, 0)
	for _, c := range s.comments {
		if c.TargetID != targetID {
			continue
		}
		if kind != "" && c.Type != kind {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *stubCommentRepo) UpdateText(_ context.Context, id uuid.UUID, text string) (comment.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return comment.Comment{}, comment.ErrNotFound
	}
	c.Comment = text
	s.comments[id] = c
	return c, nil
}

func (s *stubCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.comments[id]; !ok {
		return comment.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

type notifiedEvent struct {
	ownerID   uuid.UUID
	eventType string
	actor     string
	kind      string
	targetID  uuid.UUID
}

type recordingNotifier struct {
	events []notifiedEvent
}

func (n *recordingNotifier) Notify(ownerID uuid.UUID, eventType, actor, kind string, targetID uuid.UUID) {
	n.events = append(n.events, notifiedEvent{
		ownerID:   ownerID,
		eventType: eventType,
		actor:     actor,
		kind:      kind,
		targetID:  targetID,
	})
}
