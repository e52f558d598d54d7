package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Graph is a serialized document held by the store: the codec round-trips
// bytes, the store round-trips named artifacts built from those bytes.
type Graph struct {
	ID          string
	Name        string
	Description string
	Document    string // the JSON produced by Serialize
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GraphSummary is a lightweight reference returned by List, omitting the
// (potentially large) document body.
type GraphSummary struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GraphStore is an in-memory, mutex-guarded registry of serialized
// documents, each assigned a uuid.New()-derived handle on Register.
type GraphStore struct {
	mu     sync.RWMutex
	graphs map[string]*Graph
}

// New returns an empty GraphStore.
func New() *GraphStore {
	return &GraphStore{graphs: make(map[string]*Graph)}
}

// Register stores document under a new handle and returns it.
func (s *GraphStore) Register(name, description, document string) (string, error) {
	if name == "" {
		return "", ErrNameRequired
	}
	if document == "" {
		return "", ErrDocumentRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	now := time.Now()
	s.graphs[id] = &Graph{
		ID: id, Name: name, Description: description, Document: document,
		CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

// Get returns the graph registered under id.
func (s *GraphStore) Get(id string) (*Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.graphs[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *g
	return &clone, nil
}

// Delete removes the graph registered under id.
func (s *GraphStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.graphs[id]; !ok {
		return ErrNotFound
	}
	delete(s.graphs, id)
	return nil
}

// List returns a summary of every registered graph.
func (s *GraphStore) List() []GraphSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]GraphSummary, 0, len(s.graphs))
	for _, g := range s.graphs {
		summaries = append(summaries, GraphSummary{
			ID: g.ID, Name: g.Name, Description: g.Description,
			CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt,
		})
	}
	return summaries
}
