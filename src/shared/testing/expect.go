package testing

import (
	. "github.com/onsi/gomega"
	"os"
)

func ExpectSuccess[T any](t T, err error) T {
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return t
}

func ExpectType[T any](thing any) T {
	ExpectWithOffset(1, thing).NotTo(BeNil())
	realThing, ok := thing.(T)
	ExpectWithOffset(1, ok).To(BeTrue())
	return realThing
}

func SetTestEnv() {
	err := os.Setenv("ENVIRONMENT", "test")
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
}
