package gateway_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/api"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/gateway"
	"github.com/veedubyou/songlist-be/src/server/internal/song/errors"
	. "github.com/veedubyou/songlist-be/src/shared/testing"
	"net/http"
	"net/http/httptest"
)

var _ = Describe("Gateway errors", func() {
	It("maps every error code to a status code", func() {
		for _, code := range allErrorCodes {
			_, ok := gateway.StatusCode(code)
			Expect(ok).To(BeTrue(), "error code %s has no status code", code)
		}
	})

	Describe("ErrorResponse", func() {
		var response *httptest.ResponseRecorder

		send := func(apiErr *api.Error) {
			request := RequestFactory{Method: "GET", Target: "/"}.MakeFake()
			response = httptest.NewRecorder()
			c := PrepareEchoContext(request, response)
			Expect(gateway.ErrorResponse(c, apiErr)).To(Succeed())
		}

		It("sends the user message for client errors", func() {
			send(api.CommitError(errors.New("no song under abc"),
				songerrors.SongNotFoundCode,
				"The song can't be found"))

			Expect(response.Code).To(Equal(http.StatusNotFound))
			resErr := DecodeJSONError(response.Body)
			Expect(resErr.Error).To(Equal("The song can't be found"))
			Expect(resErr.Code).To(BeEquivalentTo(songerrors.SongNotFoundCode))
		})

		It("sends the failure description for server errors", func() {
			send(api.CommitError(errors.New("connection refused"),
				api.DefaultErrorCode,
				"Unknown error"))

			Expect(response.Code).To(Equal(http.StatusInternalServerError))
			resErr := DecodeJSONError(response.Body)
			Expect(resErr.Error).To(ContainSubstring("connection refused"))
		})

		It("panics on a code without a status", func() {
			Expect(func() {
				send(api.CommitError(errors.New("oops"), api.ErrorCode("made_up"), "oops"))
			}).To(Panic())
		})
	})
})
