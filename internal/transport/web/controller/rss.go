package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// RSS serves the ranked feed as RSS.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	RankCmd         command.Command[command.Empty, []domain.RankedFreet]
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	freets, err := c.RankCmd.Execute(ctx, command.Empty{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to rank freets for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	feed := &feeds.Feed{
		Title:       "Fritter: most recommended freets",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Freets ranked by the reactions they have received",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	for _, f := range freets {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          f.ID,
			IsPermaLink: "false",
			Title:       feedItemTitle(f),
			Link:        &feeds.Link{Href: c.FeedHostname + "/v1/freets/" + f.ID},
			Description: f.Content,
			Author:      &feeds.Author{Name: f.Author},
			Created:     f.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func feedItemTitle(f domain.RankedFreet) string {
	author := f.Author
	if author == "" {
		author = "unknown"
	}

	content := []rune(f.Content)
	if len(content) > 60 {
		content = append(content[:60], '…')
	}
	return fmt.Sprintf("@%s (%+d): %s", author, f.Score, string(content))
}
