package services

import (
	"context"
	"sort"
)

type LocationService struct {
	store LocationStore
}

func NewLocationService(store LocationStore) *LocationService {
	return &LocationService{store: store}
}

// States returns every state name in alphabetical order.
func (s *LocationService) States(ctx context.Context) ([]string, error) {
	locs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	states := make([]string, 0, len(locs))
	for _, l := range locs {
		states = append(states, l.State)
	}
	sort.Strings(states)
	return states, nil
}

// Cities returns the cities of state in alphabetical order.
func (s *LocationService) Cities(ctx context.Context, state string) ([]string, error) {
	loc, err := s.store.FindByState(ctx, state)
	if err != nil {
		return nil, err
	}
	cities := append([]string{}, loc.Cities...)
	sort.Strings(cities)
	return cities, nil
}

