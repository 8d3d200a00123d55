package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/songlist-be/src/client/songclient"
	"github.com/veedubyou/songlist-be/src/server/application"
	"github.com/veedubyou/songlist-be/src/shared/backup"
	"github.com/veedubyou/songlist-be/src/shared/lib/jsonlib"
	"github.com/veedubyou/songlist-be/src/shared/lib/kvstore"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"github.com/veedubyou/songlist-be/src/shared/song/storage"
	"github.com/veedubyou/songlist-be/src/shared/testing"
	"github.com/veedubyou/songlist-be/src/songctl/cmd"
	"net/http/httptest"
	"os"
	"path/filepath"
)

var _ = Describe("songctl", func() {
	var (
		ctx   context.Context
		store *kvstore.MemoryStore
		deps  cmd.Dependencies
		dir   string
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = kvstore.NewMemoryStore()

		var err error
		dir, err = os.MkdirTemp("", "songctl")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		deps = cmd.Dependencies{
			OpenStore: func() kvstore.Store { return store },
			OpenCloudStorage: func(ctx context.Context, bucket string, prefix string) (backup.GoogleFileStore, error) {
				return backup.GoogleFileStore{}, errors.New("no cloud storage in tests")
			},
			ServerURL: func() string { return "http://localhost:1" },
			Password:  func() string { return testing.Password },
		}
	})

	run := func(args ...string) (string, error) {
		out := &bytes.Buffer{}
		rootCmd := cmd.NewRootCommand(deps)
		rootCmd.SetOut(out)
		rootCmd.SetErr(out)
		rootCmd.SetArgs(args)

		err := rootCmd.ExecuteContext(ctx)
		return out.String(), err
	}

	writeSongsFile := func(songs []map[string]any) string {
		filePath := filepath.Join(dir, "songs.json")
		contents, err := json.Marshal(map[string]any{"songs": songs})
		Expect(err).NotTo(HaveOccurred())
		Expect(os.WriteFile(filePath, contents, 0o644)).To(Succeed())
		return filePath
	}

	Describe("import", func() {
		It("creates the songs in the file", func() {
			output, err := run("import", writeSongsFile(testing.LoadDemoSongs()))
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("Imported 3 songs, 0 failed"))

			songs := testing.ExpectSuccess(songstorage.NewDB(store).ListSongs(ctx))
			Expect(songs).To(HaveLen(3))
		})

		It("lists the entries it skipped", func() {
			songs := append(testing.LoadDemoSongs(), map[string]any{"name": "Lonely"})

			output, err := run("import", writeSongsFile(songs))
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("Imported 3 songs, 1 failed"))
			Expect(output).To(ContainSubstring(`#3 "Lonely"`))
		})

		It("fails for a missing file", func() {
			_, err := run("import", filepath.Join(dir, "nope.json"))
			Expect(err).To(HaveOccurred())
		})

		It("needs a file argument", func() {
			_, err := run("import")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("export", func() {
		BeforeEach(func() {
			_, err := run("import", writeSongsFile(testing.LoadDemoSongs()))
			Expect(err).NotTo(HaveOccurred())
		})

		It("writes a backup into the directory", func() {
			backupDir := filepath.Join(dir, "backups")
			output, err := run("export", "--dest", backupDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("Exported 3 songs"))

			files, err := filepath.Glob(filepath.Join(backupDir, "songs_*.json"))
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(HaveLen(1))

			file, err := os.Open(files[0])
			Expect(err).NotTo(HaveOccurred())
			defer file.Close()

			document := testing.DecodeJSON[backup.Document](file)
			Expect(document.Songs).To(HaveLen(3))
		})

		It("goes to cloud storage for gs locations", func() {
			_, err := run("export", "--dest", "gs://bucket/prefix")
			Expect(err).To(MatchError(ContainSubstring("no cloud storage in tests")))
		})
	})

	Describe("list", func() {
		var server *httptest.Server

		BeforeEach(func() {
			app := application.NewApp(testing.MemoryServerConfig())
			server = httptest.NewServer(app.Handler())
			DeferCleanup(server.Close)

			client := songclient.NewClient(server.URL, testing.Password, server.Client())
			for _, input := range []songentity.SongInput{
				{Name: jsonlib.Some("Sky"), Singers: jsonlib.Some([]string{"Zoe"}), Featured: jsonlib.Some(true)},
				{Name: jsonlib.Some("River"), Singers: jsonlib.Some([]string{"Amy"}), Key: jsonlib.Some(jsonlib.LenientInt(-3))},
			} {
				testing.ExpectSuccess(client.CreateSong(ctx, input))
			}
		})

		It("prints the songs from the server", func() {
			output, err := run("list", "--server", server.URL, "--sort", "canonical")
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(MatchRegexp(`(?s)River.*Amy.*-3.*Sky.*Zoe`))
			Expect(output).To(ContainSubstring("2 songs"))
		})

		It("applies the filters", func() {
			output, err := run("list", "--server", server.URL, "--featured")
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("Sky"))
			Expect(output).NotTo(ContainSubstring("River"))
			Expect(output).To(ContainSubstring("1 songs"))
		})

		It("rejects an unknown sort", func() {
			_, err := run("list", "--server", server.URL, "--sort", "shuffle")
			Expect(err).To(HaveOccurred())
		})
	})
})
