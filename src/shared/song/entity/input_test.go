package songentity_test

import (
	"encoding/json"
	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/songlist-be/src/shared/lib/jsonlib"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	. "github.com/veedubyou/songlist-be/src/shared/testing"
	"time"
)

func decodeInput(body string) songentity.SongInput {
	input := songentity.SongInput{}
	err := json.Unmarshal([]byte(body), &input)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return input
}

var _ = Describe("SongInput", func() {
	Describe("Decoding", func() {
		It("marks only the fields that were sent as present", func() {
			input := decodeInput(`{"name": "X"}`)
			Expect(input.Name).To(Equal(jsonlib.Some("X")))
			Expect(input.Singers.Present).To(BeFalse())
			Expect(input.Tags.Present).To(BeFalse())
			Expect(input.Key.Present).To(BeFalse())
			Expect(input.Notes.Present).To(BeFalse())
			Expect(input.Featured.Present).To(BeFalse())
		})

		It("turns a non numeric key into 0", func() {
			input := decodeInput(`{"key": "three"}`)
			Expect(input.Key.Present).To(BeTrue())
			Expect(input.Key.Value).To(BeEquivalentTo(0))
		})

		It("keeps negative keys", func() {
			input := decodeInput(`{"key": -5}`)
			Expect(input.Key.Value).To(BeEquivalentTo(-5))
		})

		It("keeps keys beyond the 32 bit range", func() {
			input := decodeInput(`{"key": 3000000000}`)
			Expect(input.Key.Value).To(BeEquivalentTo(3000000000))

			input = decodeInput(`{"key": -9007199254740992}`)
			Expect(input.Key.Value).To(BeEquivalentTo(-9007199254740992))
		})

		It("truncates fractional keys toward zero", func() {
			input := decodeInput(`{"key": -2.7}`)
			Expect(input.Key.Value).To(BeEquivalentTo(-2))
		})

		It("turns a key past the exact integer range into 0", func() {
			input := decodeInput(`{"key": 1e300}`)
			Expect(input.Key.Present).To(BeTrue())
			Expect(input.Key.Value).To(BeEquivalentTo(0))
		})

		It("rejects singers that aren't a list", func() {
			input := songentity.SongInput{}
			err := json.Unmarshal([]byte(`{"singers": "Amy"}`), &input)
			Expect(err).To(HaveOccurred())
		})

		It("encodes only the present fields", func() {
			input := songentity.SongInput{
				Name: jsonlib.Some("X"),
				Key:  jsonlib.Some(jsonlib.LenientInt(3)),
			}

			encoded := ExpectSuccess(json.Marshal(input))
			Expect(encoded).To(MatchJSON(`{"name": "X", "key": 3}`))
		})
	})

	Describe("NewSong", func() {
		It("trims and filters every field", func() {
			song := ExpectSuccess(songentity.NewSong(decodeInput(`{
				"name": "  Sky ",
				"singers": [" Amy ", "", "   "],
				"tags": [" pop", " "],
				"key": 2,
				"notes": "   ",
				"featured": true
			}`)))

			Expect(song.Name).To(Equal("Sky"))
			Expect(song.Singers).To(Equal([]string{"Amy"}))
			Expect(song.Tags).To(Equal([]string{"pop"}))
			Expect(song.Key).To(Equal(2))
			Expect(song.Notes).To(BeEmpty())
			Expect(song.Featured).To(BeTrue())
		})

		It("applies defaults for missing optional fields", func() {
			song := ExpectSuccess(songentity.NewSong(decodeInput(`{"name": "Sky", "singers": ["Amy"]}`)))

			Expect(song.Tags).To(Equal([]string{}))
			Expect(song.Key).To(Equal(0))
			Expect(song.Featured).To(BeFalse())
			Expect(song.IsNew()).To(BeTrue())
		})

		DescribeTable("rejects invalid input",
			func(body string) {
				_, err := songentity.NewSong(decodeInput(body))
				Expect(err).To(HaveOccurred())
				Expect(markers.Is(err, songentity.ValidationMark)).To(BeTrue())
			},
			Entry("empty name", `{"name": "", "singers": ["x"]}`),
			Entry("blank name", `{"name": "   ", "singers": ["x"]}`),
			Entry("missing name", `{"singers": ["x"]}`),
			Entry("no singers", `{"name": "X", "singers": []}`),
			Entry("only blank singers", `{"name": "X", "singers": ["  "]}`),
			Entry("null singers", `{"name": "X", "singers": null}`),
			Entry("missing singers", `{"name": "X"}`),
		)
	})

	Describe("Apply", func() {
		var existing songentity.Song

		BeforeEach(func() {
			existing = songentity.Song{
				ID:        "song-id",
				Name:      "Sky",
				Singers:   []string{"Amy"},
				Tags:      []string{"a", "b"},
				Key:       -1,
				Notes:     "capo 2",
				Featured:  true,
				CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			}
		})

		It("keeps the fields that weren't sent", func() {
			updated := ExpectSuccess(existing.Apply(decodeInput(`{"name": "X"}`)))

			expected := existing
			expected.Name = "X"
			Expect(updated).To(Equal(expected))
		})

		It("never changes the id or the creation time", func() {
			updated := ExpectSuccess(existing.Apply(decodeInput(`{"id": "other", "createdAt": "2030-01-01T00:00:00Z", "key": 4}`)))

			Expect(updated.ID).To(Equal("song-id"))
			Expect(updated.CreatedAt).To(Equal(existing.CreatedAt))
			Expect(updated.Key).To(Equal(4))
		})

		It("clears notes and tags when they are sent empty", func() {
			updated := ExpectSuccess(existing.Apply(decodeInput(`{"notes": "", "tags": []}`)))

			Expect(updated.Notes).To(BeEmpty())
			Expect(updated.Tags).To(Equal([]string{}))
		})

		It("rejects a blank name", func() {
			_, err := existing.Apply(decodeInput(`{"name": " "}`))
			Expect(markers.Is(err, songentity.ValidationMark)).To(BeTrue())
		})

		It("rejects an empty singer list", func() {
			_, err := existing.Apply(decodeInput(`{"singers": []}`))
			Expect(markers.Is(err, songentity.ValidationMark)).To(BeTrue())
		})

		It("doesn't modify the original song", func() {
			_, err := existing.Apply(decodeInput(`{"singers": ["Ben"], "tags": ["c"]}`))
			Expect(err).NotTo(HaveOccurred())

			Expect(existing.Singers).To(Equal([]string{"Amy"}))
			Expect(existing.Tags).To(Equal([]string{"a", "b"}))
		})
	})
})
