package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"notesapi/internal/cache"
	"notesapi/internal/errors"
	"notesapi/internal/model"
	"notesapi/internal/repository"
)

const (
	noteCacheTTL     = 5 * time.Minute
	noteListCacheKey = "notes:all"
)

// NoteService handles note operations.
type NoteService interface {
	ListNotes(ctx context.Context) ([]model.Note, error)
	GetNote(ctx context.Context, id uint) (*model.Note, error)
	CreateNote(ctx context.Context, title, body string) (*model.Note, error)
	UpdateNote(ctx context.Context, id uint, title, body string) (*model.Note, error)
	DeleteNote(ctx context.Context, id uint) error
}

type noteService struct {
	repo  repository.NoteRepository
	cache *cache.Client
}

// NewNoteService builds a NoteService with repository and cache.
func NewNoteService(repo repository.NoteRepository, cache *cache.Client) NoteService {
	return &noteService{repo: repo, cache: cache}
}

func (s *noteService) cacheKey(id uint) string {
	return fmt.Sprintf("note:%d", id)
}

// ListNotes returns all notes in store order, with caching.
func (s *noteService) ListNotes(ctx context.Context) ([]model.Note, error) {
	if data, _ := s.cache.Get(ctx, noteListCacheKey); data != nil {
		var cached []model.Note
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(notes); err == nil {
		_ = s.cache.Set(ctx, noteListCacheKey, payload, noteCacheTTL)
	}
	return notes, nil
}

// GetNote retrieves a note by ID with caching.
func (s *noteService) GetNote(ctx context.Context, id uint) (*model.Note, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Note
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNoteNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(note); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, noteCacheTTL)
	}
	return note, nil
}

// CreateNote stores a new note; the store assigns the id.
func (s *noteService) CreateNote(ctx context.Context, title, body string) (*model.Note, error) {
	note := &model.Note{
		Title: title,
		Body:  body,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, noteListCacheKey)
	return note, nil
}

// UpdateNote updates the note matching id. Only the id passed here (bound from
// the request path by the handler) selects the row; ids in the request body
// are never consulted.
func (s *noteService) UpdateNote(ctx context.Context, id uint, title, body string) (*model.Note, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNoteNotFound
		}
		return nil, err
	}

	note.Title = title
	note.Body = body
	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, noteListCacheKey)
	return note, nil
}

// DeleteNote removes a note by id. Deleting an absent id is not an error.
func (s *noteService) DeleteNote(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, noteListCacheKey)
	return nil
}
