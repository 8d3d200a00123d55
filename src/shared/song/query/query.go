package songquery

import (
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"sort"
	"strings"
)

type Order string

const (
	// OrderRecent puts the newest songs first
	OrderRecent Order = "recent"
	// OrderCanonical is the browsing order: first singer, then song name, then |key|
	OrderCanonical Order = "canonical"
)

func ParseOrder(order string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(order))) {
	case "", OrderRecent:
		return OrderRecent, nil
	case OrderCanonical:
		return OrderCanonical, nil
	default:
		return "", errors.Newf("Unknown sort order %q", order)
	}
}

// Filters are case insensitive substring matches, all of which have to hold.
// A blank filter matches everything
type Filters struct {
	Name         string
	Singer       string
	Tag          string
	FeaturedOnly bool
}

// DefaultLocale is used when a caller doesn't name a usable language
var DefaultLocale = language.English

// ParseLocale picks the preferred language of an Accept-Language value.
// Blank or malformed values fall back to DefaultLocale
func ParseLocale(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	return tags[0]
}

type Query struct {
	Filters
	Order Order
	// Locale drives the canonical comparison of names, the zero value is the root collation
	Locale language.Tag
}

// Apply filters and sorts into a new slice, the input is left untouched
func Apply(songs []songentity.Song, query Query) []songentity.Song {
	filtered := Filter(songs, query.Filters)
	Sort(filtered, query.Order, query.Locale)
	return filtered
}

func Filter(songs []songentity.Song, filters Filters) []songentity.Song {
	filtered := []songentity.Song{}
	for _, song := range songs {
		if filters.Matches(song) {
			filtered = append(filtered, song)
		}
	}

	return filtered
}

func (f Filters) Matches(song songentity.Song) bool {
	if f.FeaturedOnly && !song.Featured {
		return false
	}

	if !containsFold(song.Name, f.Name) {
		return false
	}

	if !anyContainsFold(song.Singers, f.Singer) {
		return false
	}

	if !anyContainsFold(song.Tags, f.Tag) {
		return false
	}

	return true
}

func (f Filters) IsEmpty() bool {
	return strings.TrimSpace(f.Name) == "" &&
		strings.TrimSpace(f.Singer) == "" &&
		strings.TrimSpace(f.Tag) == "" &&
		!f.FeaturedOnly
}

func containsFold(value string, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

func anyContainsFold(values []string, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}

	for _, value := range values {
		if containsFold(value, query) {
			return true
		}
	}

	return false
}

// Sort orders songs in place. Both orders are stable
func Sort(songs []songentity.Song, order Order, locale language.Tag) {
	switch order {
	case OrderCanonical:
		sortCanonical(songs, locale)
	default:
		sort.SliceStable(songs, func(i, j int) bool {
			return songs[i].CreatedAt.After(songs[j].CreatedAt)
		})
	}
}

func sortCanonical(songs []songentity.Song, locale language.Tag) {
	// a collator keeps internal buffers, so one per sort
	collator := collate.New(locale)

	sort.SliceStable(songs, func(i, j int) bool {
		a, b := songs[i], songs[j]

		if cmp := collator.CompareString(a.FirstSinger(), b.FirstSinger()); cmp != 0 {
			return cmp < 0
		}

		if cmp := collator.CompareString(a.Name, b.Name); cmp != 0 {
			return cmp < 0
		}

		return abs(a.Key) < abs(b.Key)
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
