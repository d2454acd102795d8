// Package holodex provides a client for the Holodex video-metadata API.
//
// Holodex indexes VTuber channels, streams, clips and timestamped comments.
// This package implements a typed, synchronous Go client for its REST API.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the transport layer, one HTTP round trip per call with
//     status-code classification and rate-limit header parsing
//   - Query serialization: options structs rendered into query strings in
//     declaration order with strict percent-encoding
//   - Domain mapping: wire JSON records normalized into owned domain values
//   - Pager: a generic cursor over any paginated list endpoint
//
// # Usage
//
// Create a client with your API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := holodex.NewClient(holodex.DefaultBaseURL, apiKey, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	live, err := client.ListLive(ctx, holodex.VideoListOptions{
//		Org: holodex.String("Hololive"),
//	})
//
// Iterate large result sets with a pager:
//
//	pager, err := client.VideoPager(holodex.VideoListOptions{
//		Topic: holodex.String("singing"),
//		Limit: 50,
//	})
//	for {
//		video, err := pager.Next(ctx)
//		if errors.Is(err, holodex.ErrEndOfResults) {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		fmt.Println(video.Title)
//	}
//
// # Error Handling
//
// Every failure is a typed error. Protocol errors map onto sentinels
// (ErrBadAPIKey, ErrNotFound, ErrRateLimited) through APIError; transport,
// parse and conversion failures have their own types so callers can decide
// between retrying, aborting and reporting. The client itself never retries.
//
// # Concurrency
//
// A Client is synchronous and not safe for concurrent use. Reuse it
// sequentially, or give each goroutine its own instance.
package holodex
