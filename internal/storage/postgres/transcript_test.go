package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/glyphspeak/internal/storage"
	"github.com/cory-johannsen/glyphspeak/internal/storage/postgres"
	"github.com/cory-johannsen/glyphspeak/internal/testutil"
)

func setupTranscripts(t *testing.T) *postgres.TranscriptRepository {
	t.Helper()
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return postgres.NewTranscriptRepository(pc.RawPool)
}

func TestTranscriptRepository(t *testing.T) {
	repo := setupTranscripts(t)
	ctx := context.Background()

	t.Run("record and get", func(t *testing.T) {
		rec, err := repo.Record(ctx, "glyphs", "tame little dog adjacent east")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rec.ID)
		assert.False(t, rec.CreatedAt.IsZero())

		got, err := repo.Get(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, got.ID)
		assert.Equal(t, "glyphs", got.Op)
		assert.Equal(t, "tame little dog adjacent east", got.Text)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, storage.ErrTranscriptNotFound)
	})

	t.Run("record rejects empty op", func(t *testing.T) {
		_, err := repo.Record(ctx, "", "text")
		assert.Error(t, err)
	})

	t.Run("recent is newest first", func(t *testing.T) {
		var ids []uuid.UUID
		for i := 0; i < 3; i++ {
			rec, err := repo.Record(ctx, "all", fmt.Sprintf(`{"n":%d}`, i))
			require.NoError(t, err)
			ids = append(ids, rec.ID)
		}

		recent, err := repo.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, ids[2], recent[0].ID)
		assert.Equal(t, ids[1], recent[1].ID)

		_, err = repo.Recent(ctx, 0)
		assert.Error(t, err)
	})

	t.Run("text round trips", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			text := rapid.StringMatching(`[ -~]{0,80}`).Draw(rt, "text")
			rec, err := repo.Record(ctx, "glyphs", text)
			if err != nil {
				rt.Fatalf("record: %v", err)
			}
			got, err := repo.Get(ctx, rec.ID)
			if err != nil {
				rt.Fatalf("get: %v", err)
			}
			if got.Text != text {
				rt.Fatalf("got %q, want %q", got.Text, text)
			}
		})
	})
}

func TestMigrateInvalidDirection(t *testing.T) {
	_, err := postgres.Migrate("postgres://x:y@127.0.0.1:1/z?sslmode=disable", "sideways", 0)
	assert.Error(t, err)
}
