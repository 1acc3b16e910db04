// Package repositories implements SQLite persistence for the local
// course cache.
//
// Every course the client sees over the wire (search results,
// recommendations, enrollments) is upserted into the cache keyed by
// title, so recently seen courses can be listed and enrolled offline
// by title without another round trip.
package repositories
