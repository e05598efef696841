package forum

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/Azotik83/Eclipse.github.io/internal/forum/model"
	profileModels "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
	"github.com/Azotik83/Eclipse.github.io/internal/realtime"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

var errReplyMissing = errors.New("reply not found")

// threadStore is an in-memory ForumRepository good enough for view tests.
type threadStore struct {
	mu      sync.Mutex
	posts   map[uuid.UUID]*models.ForumPost
	replies map[uuid.UUID]*models.ForumReply
}

func newThreadStore() *threadStore {
	return &threadStore{
		posts:   make(map[uuid.UUID]*models.ForumPost),
		replies: make(map[uuid.UUID]*models.ForumReply),
	}
}

func (s *threadStore) ListPosts(_ context.Context, _ uuid.UUID, _, _ int) ([]*models.ForumPost, error) {
	return nil, nil
}

func (s *threadStore) GetPost(_ context.Context, id uuid.UUID) (*models.ForumPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posts[id], nil
}

func (s *threadStore) InsertPost(_ context.Context, p *models.ForumPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = p
	return nil
}

func (s *threadStore) SetPinned(_ context.Context, _ uuid.UUID, _ bool) error { return nil }

func (s *threadStore) InsertReply(_ context.Context, r *models.ForumReply) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[r.ID] = r
	s.posts[r.PostID].ReplyCount++
	return nil
}

func (s *threadStore) GetReplyPage(_ context.Context, postID uuid.UUID, before time.Time, limit int) ([]*models.ForumReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.ForumReply
	for _, r := range s.replies {
		if r.PostID != postID {
			continue
		}
		if !before.IsZero() && !r.CreatedAt.Before(before) {
			continue
		}
		out = append(out, r)
	}
	// newest first, small sets only
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *threadStore) GetReply(_ context.Context, id uuid.UUID) (*models.ForumReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.replies[id]
	if !ok {
		return nil, errReplyMissing
	}
	return r, nil
}

func TestPostView_ReplyBumpsLocalCount(t *testing.T) {
	store := newThreadStore()
	broker := realtime.NewBroker(16, logger.Logger{})
	defer broker.Close()

	author := &profileModels.Profile{ID: uuid.New(), Username: "replier"}
	post := &models.ForumPost{ID: uuid.New(), Title: "thread", ReplyCount: 0, CreatedAt: time.Now()}
	require.NoError(t, store.InsertPost(context.Background(), post))

	view := NewPostView(store, broker, PostToDTO(post), 20, logger.Logger{})
	require.NoError(t, view.Open(context.Background()))
	defer view.Close()

	reply := &models.ForumReply{
		ID:        uuid.New(),
		PostID:    post.ID,
		AuthorID:  author.ID,
		Author:    author,
		Content:   "first",
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.InsertReply(context.Background(), reply))
	broker.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: TableReplies,
		RowID: reply.ID,
		Scope: map[string]uuid.UUID{"post_id": post.ID},
	})

	require.Eventually(t, func() bool {
		return len(view.Replies.Items()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1, view.Post().ReplyCount)
	assert.Equal(t, "replier", view.Replies.Items()[0].Author.Username)

	// a reply on a different post never reaches this view
	other := &models.ForumReply{
		ID:        uuid.New(),
		PostID:    uuid.New(),
		CreatedAt: time.Now(),
	}
	broker.Publish(realtime.Event{
		Op:    realtime.OpInsert,
		Table: TableReplies,
		RowID: other.ID,
		Scope: map[string]uuid.UUID{"post_id": other.PostID},
	})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, view.Post().ReplyCount)
}
