// Package omdb provides a typed client for the OMDb movie/TV metadata API.
//
// The client maps OMDb's loosely-typed JSON responses into strongly-shaped
// records and exposes a small call surface:
//
//   - Client.Get fetches exactly one title by IMDb id or by title text and
//     returns a *Movie, *TvShow or *Episode depending on the response's
//     type discriminator.
//   - Client.Search runs a free-text search and returns a SearchPage; its
//     Next method chains pagination by re-issuing the same criteria with
//     the page number incremented.
//   - TvShow.Episodes fetches every season's episode listing concurrently
//     on first use and caches the flattened list on the show instance.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := omdb.NewClient("your-api-key", logger,
//		omdb.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	title, err := client.Get(ctx, omdb.TitleRequest{ID: "tt0944947"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if show, ok := title.(*omdb.TvShow); ok {
//		episodes, err := show.Episodes(ctx)
//		...
//	}
//
// # Error Handling
//
// Every failure originating in this package is an *Error wrapping one of
// the kind sentinels; match them with errors.Is:
//
//   - ErrMissingAPIKey: client built without an API key
//   - ErrMissingCriteria: neither id nor title (or no search query) given
//   - ErrRemote: the OMDb API reported a failure such as "Movie not found!"
//   - ErrUnrecognizedType: unknown type discriminator on a single title
//   - ErrInvalidField: a date, integer or float field failed parsing
//
// Record construction is all-or-nothing: a field that fails coercion
// aborts the whole record rather than leaving a zero value behind.
// Transport errors from the underlying HTTP client pass through unwrapped,
// and no call is ever retried internally.
package omdb
