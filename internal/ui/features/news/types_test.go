package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/listing"
)

var sampleNews = []content.NewsItem{
	{ID: "1", Title: "MusB opens new lab", Type: content.NewsArticle, IsFeatured: true, Excerpt: "A bigger home"},
	{ID: "2", Title: "Quarterly update", Type: content.NewsArticle, Excerpt: "Gut health results"},
	{ID: "3", Title: "Open house", Type: content.NewsEvent, Date: "Oct 12, 2025", Excerpt: "Meet the team"},
	{ID: "4", Title: "Microbiome paper", Type: content.NewsPublication, Excerpt: "Published in a gut journal"},
	{ID: "5", Title: "Staff blog", Type: "Blog"},
}

func ids(items []content.NewsItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID.String())
	}
	return out
}

func rowTypes(rows []Row) []content.NewsType {
	out := make([]content.NewsType, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Type)
	}
	return out
}

func TestBuildFeed_Unfiltered(t *testing.T) {
	feed := BuildFeed(sampleNews, FeedSignals{Type: listing.All})

	require.NotNil(t, feed.Featured)
	assert.Equal(t, "1", feed.Featured.ID.String())
	assert.Equal(t, []content.NewsType{content.NewsArticle, content.NewsEvent, content.NewsPublication}, rowTypes(feed.Rows))
	assert.Equal(t, []string{"2"}, ids(feed.Rows[0].Items), "featured item is left out of its row")
	assert.False(t, feed.NoResults())
}

func TestBuildFeed_TypeFilterKeepsFeaturedInRow(t *testing.T) {
	feed := BuildFeed(sampleNews, FeedSignals{Type: string(content.NewsArticle)})

	assert.Nil(t, feed.Featured)
	require.Len(t, feed.Rows, 1)
	assert.Equal(t, []string{"1", "2"}, ids(feed.Rows[0].Items))
	assert.Equal(t, "2 items", feed.Rows[0].Count())
}

func TestBuildFeed_BlankSearchIsUnfiltered(t *testing.T) {
	feed := BuildFeed(sampleNews, FeedSignals{Type: listing.All, Search: "   "})
	want := BuildFeed(sampleNews, FeedSignals{Type: listing.All})

	assert.True(t, feed.Signals.Unfiltered())
	assert.Equal(t, want.Featured, feed.Featured)
	assert.Equal(t, rowTypes(want.Rows), rowTypes(feed.Rows))
}

func TestBuildFeed_SearchMatchesTitleAndExcerpt(t *testing.T) {
	feed := BuildFeed(sampleNews, FeedSignals{Type: listing.All, Search: "GUT"})

	assert.Nil(t, feed.Featured)
	assert.Equal(t, []content.NewsType{content.NewsArticle, content.NewsPublication}, rowTypes(feed.Rows))
	assert.Equal(t, "1 item", feed.Rows[0].Count())
}

func TestBuildFeed_NoResults(t *testing.T) {
	feed := BuildFeed(sampleNews, FeedSignals{Type: string(content.NewsPartnership)})
	assert.Empty(t, feed.Rows)
	assert.True(t, feed.NoResults())

	assert.False(t, feed.Empty())

	empty := BuildFeed(nil, FeedSignals{Type: listing.All})
	assert.False(t, empty.NoResults(), "an empty unfiltered feed is not a search miss")
	assert.True(t, empty.Empty())

	full := BuildFeed(sampleNews, FeedSignals{Type: listing.All})
	assert.False(t, full.Empty())
}

func TestBuildFeed_Events(t *testing.T) {
	feed := BuildFeed(sampleNews, FeedSignals{Type: listing.All, Mode: ModeCalendar})

	require.Len(t, feed.Events, 1)
	ev := feed.Events[0]
	assert.Equal(t, "Oct", ev.Month())
	assert.Equal(t, "12", ev.Day())
	assert.Equal(t, "#", ev.Register())
	assert.True(t, feed.Signals.Calendar())
}

func TestEvent_DateParts(t *testing.T) {
	tests := []struct {
		date       string
		month, day string
	}{
		{"Oct 12, 2025", "Oct", "12"},
		{"March", "March", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			ev := Event{content.NewsItem{Date: tt.date}}
			assert.Equal(t, tt.month, ev.Month())
			assert.Equal(t, tt.day, ev.Day())
		})
	}
}
