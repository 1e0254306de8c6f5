package tweet

import (
	"context"
	"errors"
)

var ErrEmbedUnavailable = errors.New("embed client is unavailable")

// Embed is what an EmbedClient knows about a status: the author profile URL
// and the embeddable HTML.
type Embed struct {
	AuthorURL string
	HTML      string
}

type EmbedClient interface {
	FetchEmbed(ctx context.Context, statusURL string) (Embed, error)
}

// NoopEmbedClient never fetches anything; values keep empty contents.
type NoopEmbedClient struct{}

func (NoopEmbedClient) FetchEmbed(_ context.Context, _ string) (Embed, error) {
	return Embed{}, ErrEmbedUnavailable
}
