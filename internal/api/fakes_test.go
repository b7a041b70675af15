// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/videotube/internal/database"
	"github.com/tomtom215/videotube/internal/media"
	"github.com/tomtom215/videotube/internal/models"
)

type edge struct {
	from, to primitive.ObjectID
}

// fakeStore is an in-memory Store. err, when set, fails every call.
type fakeStore struct {
	mu sync.Mutex

	videos    map[primitive.ObjectID]*models.Video
	comments  map[primitive.ObjectID]*models.Comment
	tweets    map[primitive.ObjectID]*models.Tweet
	playlists map[primitive.ObjectID]*models.Playlist
	subs      map[edge]*models.Subscription
	likes     map[edge]bool

	order     []primitive.ObjectID // insertion order of comments and tweets
	err       error
	pingErr   error
	insertErr error
	lastLimit int
	lastQuery database.VideoSearchParams
}

var _ Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		videos:    map[primitive.ObjectID]*models.Video{},
		comments:  map[primitive.ObjectID]*models.Comment{},
		tweets:    map[primitive.ObjectID]*models.Tweet{},
		playlists: map[primitive.ObjectID]*models.Playlist{},
		subs:      map[edge]*models.Subscription{},
		likes:     map[edge]bool{},
	}
}

func notFound(op string) error {
	return fmt.Errorf("%s: %w", op, database.ErrNotFound)
}

func (s *fakeStore) addVideo(owner primitive.ObjectID, title string) *models.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := &models.Video{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: title + " description",
		VideoFile:   "http://media.test/media/videos/" + title + ".mp4",
		Thumbnail:   "http://media.test/media/images/" + title + ".png",
		IsPublished: true,
		Owner:       owner,
	}
	s.videos[v.ID] = v
	return v
}

func (s *fakeStore) Ping(context.Context) error { return s.pingErr }

func (s *fakeStore) InsertVideo(_ context.Context, video *models.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
	video.ID = primitive.NewObjectID()
	s.videos[video.ID] = video
	return nil
}

func (s *fakeStore) GetVideo(_ context.Context, id primitive.ObjectID) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	v, ok := s.videos[id]
	if !ok {
		return nil, notFound("get video")
	}
	cp := *v
	return &cp, nil
}

func (s *fakeStore) VideoExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.videos[id]
	return ok, nil
}

func (s *fakeStore) GetVideoWithOwner(ctx context.Context, id primitive.ObjectID) (*models.VideoWithOwner, error) {
	v, err := s.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.VideoWithOwner{
		ID:          v.ID,
		VideoFile:   v.VideoFile,
		Thumbnail:   v.Thumbnail,
		Title:       v.Title,
		Description: v.Description,
		IsPublished: v.IsPublished,
		Owner:       &models.UserSummary{ID: v.Owner, Username: "owner"},
	}, nil
}

func (s *fakeStore) SearchVideos(_ context.Context, params database.VideoSearchParams) ([]models.VideoSearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.lastQuery = params
	s.lastLimit = params.Limit
	rows := []models.VideoSearchResult{}
	q := strings.ToLower(params.Query)
	for _, v := range s.videos {
		if params.OwnerID != nil && v.Owner != *params.OwnerID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(v.Title), q) && !strings.Contains(strings.ToLower(v.Description), q) {
			continue
		}
		rows = append(rows, models.VideoSearchResult{ID: v.ID, Title: v.Title, Description: v.Description})
	}
	return rows, nil
}

func (s *fakeStore) UpdateVideoDetails(_ context.Context, id, owner primitive.ObjectID, title, description, thumbnail string) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok || v.Owner != owner {
		return nil, notFound("update video")
	}
	v.Title, v.Description, v.Thumbnail = title, description, thumbnail
	cp := *v
	return &cp, nil
}

func (s *fakeStore) SetVideoPublished(_ context.Context, id, owner primitive.ObjectID, published bool) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok || v.Owner != owner {
		return nil, notFound("set published")
	}
	v.IsPublished = published
	cp := *v
	return &cp, nil
}

func (s *fakeStore) DeleteVideo(_ context.Context, id, owner primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok || v.Owner != owner {
		return notFound("delete video")
	}
	delete(s.videos, id)
	return nil
}

func (s *fakeStore) ListChannelVideos(_ context.Context, owner primitive.ObjectID) ([]models.ChannelVideo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []models.ChannelVideo{}
	for _, v := range s.videos {
		if v.Owner == owner {
			rows = append(rows, models.ChannelVideo{ID: v.ID, Title: v.Title, Owner: v.Owner, IsPublished: v.IsPublished})
		}
	}
	return rows, nil
}

func (s *fakeStore) ListComments(_ context.Context, videoID primitive.ObjectID, page, limit int) ([]models.CommentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLimit = limit
	var all []models.CommentView
	for _, id := range s.order {
		if c, ok := s.comments[id]; ok && c.Video == videoID {
			all = append(all, models.CommentView{ID: c.ID, Content: c.Content, CreatedBy: models.UserSummary{ID: c.Owner}})
		}
	}
	return window(all, page, limit), nil
}

func window[T any](all []T, page, limit int) []T {
	out := []T{}
	start := (page - 1) * limit
	if start >= len(all) {
		return out
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return append(out, all[start:end]...)
}

func (s *fakeStore) InsertComment(_ context.Context, c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = primitive.NewObjectID()
	s.comments[c.ID] = c
	s.order = append(s.order, c.ID)
	return nil
}

func (s *fakeStore) GetComment(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, notFound("get comment")
	}
	cp := *c
	return &cp, nil
}

func (s *fakeStore) UpdateCommentContent(_ context.Context, id, owner primitive.ObjectID, content string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok || c.Owner != owner {
		return nil, notFound("update comment")
	}
	c.Content = content
	cp := *c
	return &cp, nil
}

func (s *fakeStore) DeleteComment(_ context.Context, id, owner primitive.ObjectID) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok || c.Owner != owner {
		return nil, notFound("delete comment")
	}
	delete(s.comments, id)
	return c, nil
}

func (s *fakeStore) ListUserTweets(_ context.Context, ownerID primitive.ObjectID, page, limit int) ([]models.TweetView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []models.TweetView
	for i := len(s.order) - 1; i >= 0; i-- {
		if t, ok := s.tweets[s.order[i]]; ok && t.Owner == ownerID {
			all = append(all, models.TweetView{ID: t.ID, Content: t.Content})
		}
	}
	return window(all, page, limit), nil
}

func (s *fakeStore) InsertTweet(_ context.Context, t *models.Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = primitive.NewObjectID()
	s.tweets[t.ID] = t
	s.order = append(s.order, t.ID)
	return nil
}

func (s *fakeStore) GetTweet(_ context.Context, id primitive.ObjectID) (*models.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tweets[id]
	if !ok {
		return nil, notFound("get tweet")
	}
	cp := *t
	return &cp, nil
}

func (s *fakeStore) UpdateTweetContent(_ context.Context, id, owner primitive.ObjectID, content string) (*models.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tweets[id]
	if !ok || t.Owner != owner {
		return nil, notFound("update tweet")
	}
	t.Content = content
	cp := *t
	return &cp, nil
}

func (s *fakeStore) DeleteTweet(_ context.Context, id, owner primitive.ObjectID) (*models.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tweets[id]
	if !ok || t.Owner != owner {
		return nil, notFound("delete tweet")
	}
	delete(s.tweets, id)
	return t, nil
}

func (s *fakeStore) InsertPlaylist(_ context.Context, p *models.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.playlists {
		if existing.Owner == p.Owner && existing.Name == p.Name {
			return fmt.Errorf("insert playlist: %w", database.ErrDuplicateKey)
		}
	}
	p.ID = primitive.NewObjectID()
	if p.Videos == nil {
		p.Videos = []primitive.ObjectID{}
	}
	s.playlists[p.ID] = p
	return nil
}

func (s *fakeStore) GetPlaylist(_ context.Context, id primitive.ObjectID) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok {
		return nil, notFound("get playlist")
	}
	return clonePlaylist(p), nil
}

func clonePlaylist(p *models.Playlist) *models.Playlist {
	cp := *p
	cp.Videos = append([]primitive.ObjectID{}, p.Videos...)
	return &cp
}

func (s *fakeStore) view(p *models.Playlist) models.PlaylistView {
	v := models.PlaylistView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedBy:   &models.UserSummary{ID: p.Owner},
		Videos:      []models.PlaylistVideo{},
	}
	for _, id := range p.Videos {
		if vid, ok := s.videos[id]; ok {
			v.Videos = append(v.Videos, models.PlaylistVideo{ID: vid.ID, Title: vid.Title})
		}
	}
	return v
}

func (s *fakeStore) ListUserPlaylists(_ context.Context, ownerID primitive.ObjectID) ([]models.PlaylistView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []models.PlaylistView{}
	for _, p := range s.playlists {
		if p.Owner == ownerID {
			rows = append(rows, s.view(p))
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (s *fakeStore) GetPlaylistView(_ context.Context, id primitive.ObjectID) (*models.PlaylistView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok {
		return nil, notFound("get playlist view")
	}
	v := s.view(p)
	return &v, nil
}

func (s *fakeStore) AddVideoToPlaylist(_ context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok || p.Owner != owner || containsID(p.Videos, videoID) {
		return nil, fmt.Errorf("add video: %w", database.ErrNotApplied)
	}
	p.Videos = append(p.Videos, videoID)
	return clonePlaylist(p), nil
}

func (s *fakeStore) RemoveVideoFromPlaylist(_ context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok || p.Owner != owner || !containsID(p.Videos, videoID) {
		return nil, fmt.Errorf("remove video: %w", database.ErrNotApplied)
	}
	kept := []primitive.ObjectID{}
	for _, v := range p.Videos {
		if v != videoID {
			kept = append(kept, v)
		}
	}
	p.Videos = kept
	return clonePlaylist(p), nil
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *fakeStore) UpdatePlaylist(_ context.Context, id, owner primitive.ObjectID, upd database.PlaylistUpdate) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok || p.Owner != owner {
		return nil, notFound("update playlist")
	}
	if upd.Name != nil {
		for _, other := range s.playlists {
			if other.ID != id && other.Owner == owner && other.Name == *upd.Name {
				return nil, fmt.Errorf("update playlist: %w", database.ErrDuplicateKey)
			}
		}
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	return clonePlaylist(p), nil
}

func (s *fakeStore) DeletePlaylist(_ context.Context, id, owner primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok || p.Owner != owner {
		return notFound("delete playlist")
	}
	delete(s.playlists, id)
	return nil
}

func (s *fakeStore) ToggleSubscription(_ context.Context, subscriber, channel primitive.ObjectID) (*models.Subscription, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, false, s.err
	}
	key := edge{subscriber, channel}
	if _, ok := s.subs[key]; ok {
		delete(s.subs, key)
		return nil, false, nil
	}
	sub := &models.Subscription{ID: primitive.NewObjectID(), Subscriber: subscriber, Channel: channel}
	s.subs[key] = sub
	return sub, true, nil
}

func (s *fakeStore) CountSubscribers(_ context.Context, channel primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for k := range s.subs {
		if k.to == channel {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) ListSubscribedChannels(_ context.Context, subscriber primitive.ObjectID) ([]models.SubscribedChannel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []models.SubscribedChannel{}
	for k, sub := range s.subs {
		if k.from == subscriber {
			rows = append(rows, models.SubscribedChannel{ID: sub.ID, ChannelDetails: &models.UserSummary{ID: k.to}})
		}
	}
	return rows, nil
}

func (s *fakeStore) ToggleVideoLike(_ context.Context, video, user primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := edge{user, video}
	if s.likes[key] {
		delete(s.likes, key)
		return false, nil
	}
	s.likes[key] = true
	return true, nil
}

func (s *fakeStore) GetChannelStats(_ context.Context, owner primitive.ObjectID) (*models.ChannelStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	stats := &models.ChannelStats{}
	for _, v := range s.videos {
		if v.Owner == owner {
			stats.TotalVideos++
			stats.TotalViews += v.Views
		}
	}
	for k := range s.subs {
		if k.to == owner {
			stats.TotalSubscribers++
		}
	}
	for k := range s.likes {
		if v, ok := s.videos[k.to]; ok && v.Owner == owner {
			stats.TotalLikes++
		}
	}
	return stats, nil
}

// fakeMedia records media store calls. Results default to ok.
type fakeMedia struct {
	mu sync.Mutex

	calls       []string
	uploaded    []media.Blob
	uploadErr   map[media.Kind]error
	deleteVideo func(url string) (*media.DeleteResult, error)
	deleteImage func(url string) (*media.DeleteResult, error)
}

var _ media.Store = (*fakeMedia)(nil)

func newFakeMedia() *fakeMedia {
	return &fakeMedia{uploadErr: map[media.Kind]error{}}
}

func (m *fakeMedia) Upload(_ context.Context, blob media.Blob) (*media.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "upload:"+string(blob.Kind))
	if err := m.uploadErr[blob.Kind]; err != nil {
		return nil, err
	}
	if blob.Body != nil {
		if _, err := io.Copy(io.Discard, blob.Body); err != nil {
			return nil, err
		}
	}
	blob.Body = nil
	m.uploaded = append(m.uploaded, blob)

	prefix := "images/"
	if blob.Kind == media.KindVideo {
		prefix = "videos/"
	}
	key := prefix + primitive.NewObjectID().Hex()
	asset := &media.Asset{URL: "http://media.test/media/" + key, Key: key}
	if blob.Kind == media.KindVideo {
		asset.Duration = blob.Duration
	}
	return asset, nil
}

func (m *fakeMedia) DeleteImage(_ context.Context, url string) (*media.DeleteResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, "delete_image:"+url)
	fn := m.deleteImage
	m.mu.Unlock()
	if fn != nil {
		return fn(url)
	}
	return &media.DeleteResult{Result: media.ResultOK}, nil
}

func (m *fakeMedia) DeleteVideo(_ context.Context, url string) (*media.DeleteResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, "delete_video:"+url)
	fn := m.deleteVideo
	m.mu.Unlock()
	if fn != nil {
		return fn(url)
	}
	return &media.DeleteResult{Result: media.ResultOK}, nil
}

func (m *fakeMedia) callsWithPrefix(prefix string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, c := range m.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

var errBackend = errors.New("backend unavailable")
