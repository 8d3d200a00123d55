package kvstore_test

import (
	"context"
	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/songlist-be/src/shared/lib/kvstore"
	. "github.com/veedubyou/songlist-be/src/shared/testing"
	"sync"
)

var _ = Describe("MemoryStore", func() {
	var memoryStore *kvstore.MemoryStore

	BeforeEach(func() {
		memoryStore = kvstore.NewMemoryStore()
	})

	ItBehavesLikeAStore(func() kvstore.Store {
		return memoryStore
	})

	Describe("Copy semantics", func() {
		It("doesn't let the caller mutate stored values", func() {
			value := map[string]any{"tags": []any{"pop"}}
			Expect(memoryStore.Set(context.Background(), "song:1", value)).To(Succeed())

			value["tags"] = []any{"rock"}

			stored := ExpectSuccess(memoryStore.Get(context.Background(), "song:1"))
			Expect(stored["tags"]).To(Equal([]any{"pop"}))
		})

		It("normalizes numbers the way a remote store would", func() {
			Expect(memoryStore.Set(context.Background(), "song:1", map[string]any{"key": 3})).To(Succeed())

			stored := ExpectSuccess(memoryStore.Get(context.Background(), "song:1"))
			Expect(stored["key"]).To(Equal(float64(3)))
		})
	})

	Describe("When unavailable", func() {
		BeforeEach(func() {
			memoryStore.SetUnavailable(true)
		})

		It("fails every call with the default error mark", func() {
			ctx := context.Background()

			_, err := memoryStore.Get(ctx, "song:1")
			Expect(markers.Is(err, kvstore.DefaultErrorMark)).To(BeTrue())

			_, err = memoryStore.Keys(ctx, "song:")
			Expect(markers.Is(err, kvstore.DefaultErrorMark)).To(BeTrue())

			_, err = memoryStore.BatchGet(ctx, []string{"song:1"})
			Expect(markers.Is(err, kvstore.DefaultErrorMark)).To(BeTrue())

			err = memoryStore.Set(ctx, "song:1", map[string]any{})
			Expect(markers.Is(err, kvstore.DefaultErrorMark)).To(BeTrue())

			_, err = memoryStore.Delete(ctx, "song:1")
			Expect(markers.Is(err, kvstore.DefaultErrorMark)).To(BeTrue())
		})
	})

	Describe("Switching availability while in use", func() {
		It("fails calls cleanly either way", func() {
			ctx := context.Background()
			Expect(memoryStore.Set(ctx, "song:1", map[string]any{"name": "a"})).To(Succeed())

			var wg sync.WaitGroup
			errs := make(chan error, 400)

			for worker := 0; worker < 4; worker++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()

					for i := 0; i < 100; i++ {
						_, err := memoryStore.Get(ctx, "song:1")
						errs <- err
					}
				}()
			}

			for i := 0; i < 50; i++ {
				memoryStore.SetUnavailable(i%2 == 0)
			}

			wg.Wait()
			close(errs)

			for err := range errs {
				if err != nil {
					Expect(markers.Is(err, kvstore.DefaultErrorMark)).To(BeTrue())
				}
			}

			memoryStore.SetUnavailable(false)
			Expect(ExpectSuccess(memoryStore.Get(ctx, "song:1"))["name"]).To(Equal("a"))
		})
	})
})
