package testing

import (
	"embed"
	"encoding/json"
	. "github.com/onsi/gomega"
)

// compare every field except the ones the server assigns
func ExpectJSONEqualExceptAssigned(a map[string]any, b map[string]any) {
	a = copyWithout(a, "id", "createdAt")
	b = copyWithout(b, "id", "createdAt")
	ExpectWithOffset(1, a).To(Equal(b))
}

func copyWithout(m map[string]any, keys ...string) map[string]any {
	copied := map[string]any{}
	for k, v := range m {
		copied[k] = v
	}

	for _, key := range keys {
		delete(copied, key)
	}

	return copied
}

//go:embed demo_songs_test.json
var demoSongsFS embed.FS

// LoadDemoSongs returns create payloads, in the order of the fixture file
func LoadDemoSongs() []map[string]any {
	file := ExpectSuccess(demoSongsFS.Open("demo_songs_test.json"))

	output := struct {
		Songs []map[string]any `json:"songs"`
	}{}
	err := json.NewDecoder(file).Decode(&output)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	ExpectWithOffset(1, output.Songs).NotTo(BeEmpty())

	return output.Songs
}

func LoadDemoSong() map[string]any {
	return LoadDemoSongs()[0]
}
