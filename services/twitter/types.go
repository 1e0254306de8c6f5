package twitter

import (
	"errors"

	"tweet-fieldtype/pkg/fieldtype/tweet"

	twitterscraper "github.com/n0madic/twitter-scraper"
	"github.com/patrickmn/go-cache"
)

const (
	profileBaseURL      = "https://twitter.com/"
	embedDateFormat     = "January 2, 2006"
	embedCacheKeyPrefix = "embed:"
	cacheCleanupFactor  = 2
	authTokenCookie     = "auth_token"
	csrfTokenCookie     = "ct0"
)

var (
	ErrInvalidStatusURL = errors.New("not a twitter status URL")
	ErrTweetNotFound    = errors.New("tweet not found")
)

// Service fetches embed data for status URLs.
type Service interface {
	tweet.EmbedClient
}

type tweetFetcher interface {
	GetTweet(id string) (*twitterscraper.Tweet, error)
}

type Impl struct {
	fetcher tweetFetcher
	cache   *cache.Cache
}
