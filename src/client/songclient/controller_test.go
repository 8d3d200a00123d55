package songclient_test

import (
	"context"
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/songlist-be/src/client/songclient"
	"github.com/veedubyou/songlist-be/src/client/songclient/songclientfakes"
	"github.com/veedubyou/songlist-be/src/shared/lib/jsonlib"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"github.com/veedubyou/songlist-be/src/shared/song/query"
	"time"
)

var _ = Describe("Controller", func() {
	var (
		api        *songclientfakes.FakeSongAPI
		cache      *songclient.Cache
		now        time.Time
		controller songclient.Controller
		ctx        context.Context
		serverList []songentity.Song
	)

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		serverList = []songentity.Song{
			{ID: "old", Name: "Sky", Singers: []string{"Zoe"}, Tags: []string{"pop"}, CreatedAt: now.Add(-2 * time.Hour)},
			{ID: "new", Name: "River", Singers: []string{"Amy"}, Tags: []string{"soul"}, CreatedAt: now.Add(-time.Hour)},
		}

		api = &songclientfakes.FakeSongAPI{}
		api.ListSongsReturns(serverList, nil)

		cache = songclient.NewCache(time.Minute)
		cache.SetClock(func() time.Time { return now })
		controller = songclient.NewController(api, cache)
	})

	Describe("Songs", func() {
		It("fetches the full list on the first read", func() {
			songs, err := controller.Songs(ctx, false, songquery.Query{})
			Expect(err).NotTo(HaveOccurred())
			Expect(songs).To(HaveLen(2))

			Expect(api.ListSongsCallCount()).To(Equal(1))
			_, query := api.ListSongsArgsForCall(0)
			Expect(query).To(Equal(songquery.Query{}))
		})

		It("serves later reads from the cache", func() {
			_, err := controller.Songs(ctx, false, songquery.Query{})
			Expect(err).NotTo(HaveOccurred())
			_, err = controller.Songs(ctx, false, songquery.Query{})
			Expect(err).NotTo(HaveOccurred())

			Expect(api.ListSongsCallCount()).To(Equal(1))
		})

		It("refetches once the cache is stale", func() {
			_, err := controller.Songs(ctx, false, songquery.Query{})
			Expect(err).NotTo(HaveOccurred())

			now = now.Add(2 * time.Minute)
			_, err = controller.Songs(ctx, false, songquery.Query{})
			Expect(err).NotTo(HaveOccurred())

			Expect(api.ListSongsCallCount()).To(Equal(2))
		})

		It("refetches when forced", func() {
			_, err := controller.Songs(ctx, false, songquery.Query{})
			Expect(err).NotTo(HaveOccurred())
			_, err = controller.Songs(ctx, true, songquery.Query{})
			Expect(err).NotTo(HaveOccurred())

			Expect(api.ListSongsCallCount()).To(Equal(2))
		})

		It("puts the newest song first by default", func() {
			songs, err := controller.Songs(ctx, false, songquery.Query{})
			Expect(err).NotTo(HaveOccurred())
			Expect(songs[0].ID).To(Equal("new"))
		})

		It("filters and sorts the cached list locally", func() {
			_, err := controller.Songs(ctx, false, songquery.Query{})
			Expect(err).NotTo(HaveOccurred())

			songs, err := controller.Songs(ctx, false, songquery.Query{
				Filters: songquery.Filters{Tag: "POP"},
				Order:   songquery.OrderCanonical,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(songs).To(HaveLen(1))
			Expect(songs[0].ID).To(Equal("old"))
			Expect(api.ListSongsCallCount()).To(Equal(1))
		})

		Describe("When the fetch fails", func() {
			BeforeEach(func() {
				_, err := controller.Songs(ctx, false, songquery.Query{})
				Expect(err).NotTo(HaveOccurred())

				api.ListSongsReturns(nil, errors.New("network down"))
			})

			It("returns the error", func() {
				_, err := controller.Songs(ctx, true, songquery.Query{})
				Expect(err).To(HaveOccurred())
			})

			It("leaves the cache as it was", func() {
				_, err := controller.Songs(ctx, true, songquery.Query{})
				Expect(err).To(HaveOccurred())

				cached, ok := cache.Get()
				Expect(ok).To(BeTrue())
				Expect(cached).To(Equal(serverList))
			})
		})
	})

	Describe("Mutations", func() {
		BeforeEach(func() {
			_, err := controller.Songs(ctx, false, songquery.Query{})
			Expect(err).NotTo(HaveOccurred())
			Expect(api.ListSongsCallCount()).To(Equal(1))
		})

		readAgain := func() {
			_, err := controller.Songs(ctx, false, songquery.Query{})
			Expect(err).NotTo(HaveOccurred())
		}

		input := songentity.SongInput{
			Name:    jsonlib.Some("Lemon"),
			Singers: jsonlib.Some([]string{"Kenshi Yonezu"}),
		}

		It("refreshes after a create", func() {
			api.CreateSongReturns(songentity.Song{ID: "created"}, nil)

			song, err := controller.CreateSong(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(song.ID).To(Equal("created"))

			readAgain()
			Expect(api.ListSongsCallCount()).To(Equal(2))
		})

		It("refreshes after an update", func() {
			api.UpdateSongReturns(songentity.Song{ID: "new"}, nil)

			_, err := controller.UpdateSong(ctx, "new", input)
			Expect(err).NotTo(HaveOccurred())

			_, songID, _ := api.UpdateSongArgsForCall(0)
			Expect(songID).To(Equal("new"))

			readAgain()
			Expect(api.ListSongsCallCount()).To(Equal(2))
		})

		It("refreshes after a delete", func() {
			api.DeleteSongReturns("Song deleted successfully", nil)

			message, err := controller.DeleteSong(ctx, "old")
			Expect(err).NotTo(HaveOccurred())
			Expect(message).To(Equal("Song deleted successfully"))

			readAgain()
			Expect(api.ListSongsCallCount()).To(Equal(2))
		})

		It("keeps the cache when a mutation fails", func() {
			api.DeleteSongReturns("", errors.New("wrong password"))

			_, err := controller.DeleteSong(ctx, "old")
			Expect(err).To(HaveOccurred())

			readAgain()
			Expect(api.ListSongsCallCount()).To(Equal(1))
		})
	})
})
