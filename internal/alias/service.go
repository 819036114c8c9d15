// Package alias maps raw counterparty labels to user-preferred display
// names. Providers only ever send masked numbers; once the user tells us
// "77 star 23" is "Maman", every later record shows the name.
package alias

import (
	"context"
)

type Repository interface {
	FindLabel(ctx context.Context, counterparty string) (string, error)
	CreateAlias(ctx context.Context, pattern, label string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a preferred label for the given counterparty.
// Returns empty string if no alias matches.
func (s *Service) Suggest(ctx context.Context, counterparty string) (string, error) {
	return s.repo.FindLabel(ctx, counterparty)
}

// Learn remembers a new mapping between a counterparty pattern and a
// preferred label.
func (s *Service) Learn(ctx context.Context, pattern, label string) error {
	return s.repo.CreateAlias(ctx, pattern, label)
}
