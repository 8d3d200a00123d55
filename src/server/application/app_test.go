package application_test

import (
	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/songlist-be/src/server/application"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"github.com/veedubyou/songlist-be/src/shared/testing"
	"net/http"
	"net/http/httptest"
)

var _ = Describe("App", func() {
	var handler http.Handler

	serve := func(factory testing.RequestFactory) *httptest.ResponseRecorder {
		response := httptest.NewRecorder()
		handler.ServeHTTP(response, factory.MakeFake())
		return response
	}

	BeforeEach(func() {
		app := application.NewApp(testing.MemoryServerConfig())
		handler = app.Handler()
	})

	It("answers the health check", func() {
		response := serve(testing.RequestFactory{Method: http.MethodGet, Target: "/health-check"})
		Expect(response.Code).To(Equal(http.StatusOK))
	})

	It("allows the password header in preflight requests", func() {
		response := serve(testing.RequestFactory{
			Method: http.MethodOptions,
			Target: "/songs",
			Mods: testing.RequestModifiers{
				func(r *http.Request) {
					r.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
					r.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
				},
			},
		})

		Expect(response.Code).To(Equal(http.StatusNoContent))
		Expect(response.Header().Get(echo.HeaderAccessControlAllowHeaders)).To(ContainSubstring("X-Songlist-Password"))
	})

	It("wires the password check", func() {
		response := serve(testing.RequestFactory{
			Method: http.MethodPost,
			Target: "/auth/verify",
			Mods:   testing.RequestModifiers{testing.WithCorrectPassword()},
		})
		Expect(response.Code).To(Equal(http.StatusOK))
	})

	It("keeps songs between requests of the same app", func() {
		created := serve(testing.RequestFactory{
			Method:  http.MethodPost,
			Target:  "/songs",
			JSONObj: testing.LoadDemoSong(),
			Mods:    testing.RequestModifiers{testing.WithCorrectPassword()},
		})
		Expect(created.Code).To(Equal(http.StatusCreated))
		song := testing.DecodeData[songentity.Song](created.Body)

		fetched := serve(testing.RequestFactory{Method: http.MethodGet, Target: "/songs/" + song.ID})
		Expect(fetched.Code).To(Equal(http.StatusOK))
		Expect(testing.DecodeData[songentity.Song](fetched.Body)).To(Equal(song))

		listed := serve(testing.RequestFactory{Method: http.MethodGet, Target: "/songs"})
		Expect(testing.DecodeData[[]songentity.Song](listed.Body)).To(HaveLen(1))
	})

	It("doesn't share songs between apps", func() {
		other := application.NewApp(testing.MemoryServerConfig())
		response := httptest.NewRecorder()
		other.Handler().ServeHTTP(response, testing.RequestFactory{Method: http.MethodGet, Target: "/songs"}.MakeFake())

		Expect(testing.DecodeData[[]songentity.Song](response.Body)).To(BeEmpty())
	})
})
