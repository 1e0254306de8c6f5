package twitter

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"time"

	"tweet-fieldtype/models/constants"
	"tweet-fieldtype/pkg/fieldtype/tweet"

	twitterscraper "github.com/n0madic/twitter-scraper"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New() *Impl {
	scraper := twitterscraper.New()

	authToken := viper.GetString(constants.TwitterAuthToken)
	csrfToken := viper.GetString(constants.TwitterCSRFToken)
	if authToken != "" && csrfToken != "" {
		scraper.SetCookies(authCookies(authToken, csrfToken))
		log.Info().Msg("Twitter scraper authenticated with session cookies")
	}

	return newWithFetcher(scraper, viper.GetDuration(constants.EmbedCache))
}

// authCookies rebuilds the session cookies of a logged in browser.
func authCookies(authToken, csrfToken string) []*http.Cookie {
	return []*http.Cookie{
		{Name: authTokenCookie, Value: authToken},
		{Name: csrfTokenCookie, Value: csrfToken},
	}
}

func newWithFetcher(fetcher tweetFetcher, ttl time.Duration) *Impl {
	return &Impl{
		fetcher: fetcher,
		cache:   cache.New(ttl, cacheCleanupFactor*ttl),
	}
}

func (service *Impl) FetchEmbed(ctx context.Context, statusURL string) (tweet.Embed, error) {
	_, statusID, ok := tweet.ParseStatusURL(statusURL)
	if !ok {
		return tweet.Embed{}, fmt.Errorf("%w: %s", ErrInvalidStatusURL, statusURL)
	}

	key := embedCacheKeyPrefix + statusID
	if x, found := service.cache.Get(key); found {
		log.Debug().Str(constants.LogTweetID, statusID).Msg("Embed served from cache")
		return x.(tweet.Embed), nil
	}

	fetched, err := service.getTweet(ctx, statusID)
	if err != nil {
		return tweet.Embed{}, err
	}

	embed := MapTweetToEmbed(fetched)
	service.cache.SetDefault(key, embed)
	log.Info().Str(constants.LogTweetID, statusID).Msg("Embed fetched")

	return embed, nil
}

// getTweet runs the scraper call so that ctx can abandon it; the scraper has
// no context support of its own.
func (service *Impl) getTweet(ctx context.Context, statusID string) (*twitterscraper.Tweet, error) {
	type result struct {
		tweet *twitterscraper.Tweet
		err   error
	}

	ch := make(chan result, 1)
	go func() {
		fetched, err := service.fetcher.GetTweet(statusID)
		ch <- result{tweet: fetched, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("failed to fetch tweet %s: %w", statusID, r.err)
		}
		if r.tweet == nil {
			return nil, fmt.Errorf("%w: %s", ErrTweetNotFound, statusID)
		}
		return r.tweet, nil
	}
}

// MapTweetToEmbed renders a scraped tweet the way Twitter's oEmbed endpoint
// does: a twitter-tweet blockquote followed by the author and a dated link.
func MapTweetToEmbed(t *twitterscraper.Tweet) tweet.Embed {
	embed := tweet.Embed{}
	if t.Username != "" {
		embed.AuthorURL = profileBaseURL + t.Username
	}

	date := ""
	if !t.TimeParsed.IsZero() {
		date = t.TimeParsed.UTC().Format(embedDateFormat)
	}

	embed.HTML = fmt.Sprintf(
		`<blockquote class="twitter-tweet"><p>%s</p>&mdash; %s (@%s) <a href="%s">%s</a></blockquote>`,
		t.HTML,
		html.EscapeString(t.Name),
		html.EscapeString(t.Username),
		html.EscapeString(t.PermanentURL),
		date,
	)

	return embed
}
