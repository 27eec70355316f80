// Package search implementa la búsqueda global del dashboard.
package search

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// Source de dónde salen los resultados (muestra fija o backend).
type Source interface {
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

// State instantánea del estado de búsqueda.
type State struct {
	Query   string                `json:"query"`
	Results []entity.SearchResult `json:"results"`
	Loading bool                  `json:"loading"`
}

// Service guarda la última búsqueda. Los métodos nunca devuelven error.
type Service struct {
	source Source
	log    zerolog.Logger

	mu    sync.RWMutex
	state State
}

// NewService construye el servicio sobre la fuente dada.
func NewService(source Source, log zerolog.Logger) *Service {
	return &Service{source: source, log: log, state: State{Results: []entity.SearchResult{}}}
}

// PerformGlobalSearch ejecuta la búsqueda y deja los resultados en el estado.
// Una consulta vacía limpia los resultados sin pasar por loading.
func (s *Service) PerformGlobalSearch(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.mu.Lock()
		s.state = State{Results: []entity.SearchResult{}}
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.state.Query = query
	s.state.Loading = true
	s.mu.Unlock()

	results, err := s.source.Search(ctx, query)
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("búsqueda global fallida")
		results = nil
	}
	if results == nil {
		results = []entity.SearchResult{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Una búsqueda posterior ya pisó el estado: no se sobrescribe con resultados viejos.
	if s.state.Query != query {
		return
	}
	s.state.Results = results
	s.state.Loading = false
}

// State devuelve una copia del estado actual.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.state
	out.Results = append([]entity.SearchResult{}, s.state.Results...)
	return out
}
