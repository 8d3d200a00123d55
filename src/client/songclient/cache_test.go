package songclient_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/songlist-be/src/client/songclient"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"time"
)

var _ = Describe("Cache", func() {
	var (
		cache *songclient.Cache
		now   time.Time
		songs []songentity.Song
	)

	BeforeEach(func() {
		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		cache = songclient.NewCache(time.Minute)
		cache.SetClock(func() time.Time { return now })

		songs = []songentity.Song{
			{ID: "1", Name: "Sky", Singers: []string{"Amy"}, Tags: []string{}},
			{ID: "2", Name: "River", Singers: []string{"Ben"}, Tags: []string{}},
		}
	})

	It("starts empty", func() {
		_, ok := cache.Get()
		Expect(ok).To(BeFalse())
	})

	It("serves what was set while fresh", func() {
		cache.Set(songs)
		now = now.Add(59 * time.Second)

		cached, ok := cache.Get()
		Expect(ok).To(BeTrue())
		Expect(cached).To(Equal(songs))
	})

	It("goes stale after the freshness window", func() {
		cache.Set(songs)
		now = now.Add(time.Minute)

		_, ok := cache.Get()
		Expect(ok).To(BeFalse())
	})

	It("can be invalidated", func() {
		cache.Set(songs)
		cache.Invalidate()

		_, ok := cache.Get()
		Expect(ok).To(BeFalse())
	})

	It("keeps its own copy of the list", func() {
		cache.Set(songs)
		songs[0] = songentity.Song{ID: "changed"}

		cached, _ := cache.Get()
		Expect(cached[0].ID).To(Equal("1"))

		cached[1] = songentity.Song{ID: "changed"}
		cachedAgain, _ := cache.Get()
		Expect(cachedAgain[1].ID).To(Equal("2"))
	})

	It("can hold an empty list", func() {
		cache.Set([]songentity.Song{})

		cached, ok := cache.Get()
		Expect(ok).To(BeTrue())
		Expect(cached).To(BeEmpty())
	})
})
