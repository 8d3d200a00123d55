package authtest

import (
	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/auth"
	"github.com/veedubyou/songlist-be/src/shared/testing"
	"net/http"
	"net/http/httptest"
)

// to use this shared test, all tests must set the Endpoint in the BeforeEach
// and JSONBody optionally
var (
	Endpoint func(c echo.Context) error
	JSONBody any
)

func ItRejectsUnauthorizedRequests(method string, path string) {
	Describe("Unauthorized requests", func() {
		var (
			response       *httptest.ResponseRecorder
			requestFactory testing.RequestFactory
		)

		BeforeEach(func() {
			requestFactory = testing.RequestFactory{
				Method:  method,
				Target:  path,
				JSONObj: JSONBody,
			}
		})

		BeforeEach(func() {
			Expect(Endpoint).NotTo(BeNil())
		})

		AfterEach(func() {
			Endpoint = nil
			JSONBody = nil
		})

		JustBeforeEach(func() {
			request := requestFactory.MakeFake()
			response = httptest.NewRecorder()
			c := testing.PrepareEchoContext(request, response)

			Expect(Endpoint).NotTo(BeNil())
			err := Endpoint(c)
			Expect(err).NotTo(HaveOccurred())
		})

		Describe("With no password", func() {
			It("fails with the right error code", func() {
				resErr := testing.DecodeJSONError(response.Body)
				Expect(resErr.Code).To(BeEquivalentTo(auth.PasswordRequiredCode))
			})

			It("fails with the right status code", func() {
				Expect(response.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		Describe("With a malformed header", func() {
			BeforeEach(func() {
				requestFactory.Mods.Add(testing.WithAuthHeader(testing.Password))
			})

			It("fails with the right error code", func() {
				resErr := testing.DecodeJSONError(response.Body)
				Expect(resErr.Code).To(BeEquivalentTo(auth.BadAuthorizationHeaderCode))
			})

			It("fails with the right status code", func() {
				Expect(response.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		Describe("With the wrong password", func() {
			BeforeEach(func() {
				requestFactory.Mods.Add(testing.WithPassword("daisy2024"))
			})

			It("fails with the right error code", func() {
				resErr := testing.DecodeJSONError(response.Body)
				Expect(resErr.Code).To(BeEquivalentTo(auth.WrongPasswordCode))
			})

			It("fails with the right status code", func() {
				Expect(response.Code).To(Equal(http.StatusUnauthorized))
			})

			It("doesn't claim success", func() {
				body := testing.DecodeJSON[map[string]any](response.Body)
				Expect(body["success"]).To(BeFalse())
			})
		})
	})
}
