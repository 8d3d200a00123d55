package testing

import (
	"encoding/json"
	"github.com/onsi/gomega"
	"github.com/veedubyou/songlist-be/src/shared/envelope"
	"io"
)

func DecodeJSON[T any](jsonBody io.Reader) T {
	t := new(T)
	err := json.NewDecoder(jsonBody).Decode(t)
	gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())

	return *t
}

// DecodeData reads a successful envelope and returns its data
func DecodeData[T any](jsonBody io.Reader) T {
	response := DecodeJSON[envelope.DataResponse[T]](jsonBody)
	gomega.ExpectWithOffset(1, response.Success).To(gomega.BeTrue())
	return response.Data
}

func DecodeJSONError(jsonBody io.Reader) envelope.ErrorResponse {
	response := DecodeJSON[envelope.ErrorResponse](jsonBody)
	gomega.ExpectWithOffset(1, response.Success).To(gomega.BeFalse())
	return response
}
