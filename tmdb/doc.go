// Package tmdb provides a client for the read-only parts of The Movie Database
// (TMDB) v3 API used by the movie browser.
//
// The client wraps four catalog calls: title search, weekly trending, upcoming
// releases and details with embedded credits. Each call performs exactly one
// HTTP GET authenticated with the api_key query parameter. There are no retries
// and no caching.
//
// # Fail-soft results
//
// Catalog calls never return a bare error. They return a ListResult or a
// DetailResult carrying either data or the failure reason:
//
//	res := client.TrendingMovies(ctx)
//	if !res.OK() {
//		// res.Results is an empty, non-nil slice here
//		log.Println(res.Err)
//	}
//	for _, m := range res.Results {
//		fmt.Println(m.Title)
//	}
//
// Callers that only care about presence can look at Results or Detail and ignore
// Err entirely. Failure reasons can be classified with errors.Is against
// ErrUnauthorized, ErrNotFound and ErrDecode, or with errors.As into *APIError.
//
// # Images
//
// Poster, backdrop and profile paths returned by the API are fragments. ImageURL
// and ImageURLBuilder turn them into absolute URLs for a size token such as
// PosterSize or BackdropSize.
package tmdb
