package omdb

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Episodes returns the show's full episode list in season order. The first
// call fetches every season's listing concurrently and caches the result
// on the instance; later calls return the cached list without any network
// request, even if the remote catalog has changed since. Concurrent first
// calls share a single fan-out.
func (s *TvShow) Episodes(ctx context.Context) ([]Episode, error) {
	s.mu.Lock()
	if s.fetched {
		episodes := s.episodes
		s.mu.Unlock()
		return episodes, nil
	}
	s.mu.Unlock()

	v, err, _ := s.flight.Do("episodes", func() (any, error) {
		return s.fetchEpisodes(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]Episode), nil
}

// fetchEpisodes fans out one request per season and joins on all of them.
// A single failing season fails the whole operation; partial results are
// discarded and nothing is cached, so a later call retries.
func (s *TvShow) fetchEpisodes(ctx context.Context) ([]Episode, error) {
	seasons := make([][]Episode, s.TotalSeasons)

	g, ctx := errgroup.WithContext(ctx)
	for season := 1; season <= s.TotalSeasons; season++ {
		season := season
		g.Go(func() error {
			var payload titlePayload
			if err := s.client.doRequest(ctx, seasonValues(s.ImdbID, season), &payload); err != nil {
				return err
			}
			if payload.Error != "" {
				return newError(ErrRemote, "%s (%s season %d)", payload.Error, s.ImdbID, season)
			}

			episodes, err := buildSeasonEpisodes(payload)
			if err != nil {
				return err
			}
			seasons[season-1] = episodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Episode
	for _, episodes := range seasons {
		all = append(all, episodes...)
	}

	s.mu.Lock()
	s.episodes = all
	s.fetched = true
	s.mu.Unlock()

	s.client.logger.Debug().
		Str("imdb_id", s.ImdbID).
		Int("seasons", s.TotalSeasons).
		Int("episodes", len(all)).
		Msg("Fetched episode list")

	return all, nil
}
