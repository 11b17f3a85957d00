// Package search scores and filters indexed items for the feed and
// typeahead endpoints.
package search
