package services

import (
	"context"

	"github.com/dkrasnov/notable/internal/client/api"
	"github.com/dkrasnov/notable/internal/client/models"
)

// NoteService defines the five CRUD operations over the note collection.
// Failures come back as *ServiceError with a display-ready message.
type NoteService interface {
	List(ctx context.Context) ([]models.Note, error)
	Get(ctx context.Context, id string) (*models.Note, error)
	Create(ctx context.Context, req models.NoteRequest) (*models.Note, error)
	Update(ctx context.Context, id string, req models.NoteRequest) (*models.Note, error)
	Delete(ctx context.Context, id string) error
}

type noteService struct {
	client *api.Client
}

// NewNoteService constructs a NoteService bound to the given API client.
func NewNoteService(client *api.Client) NoteService {
	return &noteService{client: client}
}

func (n *noteService) List(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := n.client.Get(ctx, "/api/note", &notes); err != nil {
		return nil, &ServiceError{Message: displayMessage(err, "Failed to fetch notes"), Err: err}
	}
	return notes, nil
}

func (n *noteService) Get(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	if err := n.client.Get(ctx, "/api/note/"+id, &note); err != nil {
		return nil, &ServiceError{Message: displayMessage(err, "Failed to fetch note"), Err: err}
	}
	return &note, nil
}

func (n *noteService) Create(ctx context.Context, req models.NoteRequest) (*models.Note, error) {
	var note models.Note
	if err := n.client.Post(ctx, "/api/note", req, &note); err != nil {
		return nil, &ServiceError{Message: displayMessage(err, "Failed to create note"), Err: err}
	}
	return &note, nil
}

func (n *noteService) Update(ctx context.Context, id string, req models.NoteRequest) (*models.Note, error) {
	var note models.Note
	if err := n.client.Put(ctx, "/api/note/"+id, req, &note); err != nil {
		return nil, &ServiceError{Message: displayMessage(err, "Failed to update note"), Err: err}
	}
	return &note, nil
}

func (n *noteService) Delete(ctx context.Context, id string) error {
	if err := n.client.Delete(ctx, "/api/note/"+id); err != nil {
		return &ServiceError{Message: displayMessage(err, "Failed to delete note"), Err: err}
	}
	return nil
}
