//go:build unit

package kvstore_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"careerlaunch/internal/infra/kvstore"
	"careerlaunch/internal/pkg/config"
	"careerlaunch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exercises the Store contract against every backend that needs no external service
func TestStoreContract(t *testing.T) {
	backends := map[string]func(t *testing.T) kvstore.Store{
		"memory": func(_ *testing.T) kvstore.Store {
			return kvstore.NewMemoryStore()
		},
		"sqlite": func(t *testing.T) kvstore.Store {
			s, err := kvstore.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "kv.db"))
			require.NoError(t, err)
			return s
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := open(t)
			t.Cleanup(func() { _ = store.Close() })

			t.Run("absent key is not found", func(t *testing.T) {
				v, found, err := store.Get(ctx, "missing")
				require.NoError(t, err)
				assert.False(t, found)
				assert.Nil(t, v)
			})

			t.Run("set then get round-trips the blob", func(t *testing.T) {
				require.NoError(t, store.Set(ctx, "recruiter_jobs", []byte(`[{"id":"job-1"}]`)))

				v, found, err := store.Get(ctx, "recruiter_jobs")
				require.NoError(t, err)
				assert.True(t, found)
				assert.JSONEq(t, `[{"id":"job-1"}]`, string(v))
			})

			t.Run("last write wins", func(t *testing.T) {
				require.NoError(t, store.Set(ctx, "k", []byte(`1`)))
				require.NoError(t, store.Set(ctx, "k", []byte(`2`)))

				v, _, err := store.Get(ctx, "k")
				require.NoError(t, err)
				assert.Equal(t, "2", string(v))
			})

			t.Run("unparsable values are stored verbatim", func(t *testing.T) {
				require.NoError(t, store.Set(ctx, "notifications", []byte(`{not json`)))

				v, found, err := store.Get(ctx, "notifications")
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, "{not json", string(v))
			})

			t.Run("delete removes the key", func(t *testing.T) {
				require.NoError(t, store.Set(ctx, "gone", []byte(`[]`)))
				require.NoError(t, store.Delete(ctx, "gone"))

				_, found, err := store.Get(ctx, "gone")
				require.NoError(t, err)
				assert.False(t, found)
			})
		})
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	in := []byte(`[1]`)
	require.NoError(t, store.Set(ctx, "k", in))
	in[1] = '9'

	out, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(out))

	out[1] = '7'
	again, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(again))
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := kvstore.NewMemoryStore()
	assert.ErrorIs(t, store.Set(ctx, "k", []byte(`[]`)), context.Canceled)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("memory driver is the default", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Store.Driver = ""

		s, err := kvstore.Open(ctx, cfg, logger)
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		assert.IsType(t, &kvstore.MemoryStore{}, s)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Store.Driver = "etcd"

		s, err := kvstore.Open(ctx, cfg, logger)
		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), `unknown store driver "etcd"`)
		assert.Contains(t, strings.Join(errs.ExtractStackLines(err, 0), "\n"), "kvstore.Open")
	})

	t.Run("sqlite path that cannot be created", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

		_, err := kvstore.OpenSQLite(ctx, filepath.Join(blocker, "kv.db"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create kv_store table")
		assert.Contains(t, strings.Join(errs.ExtractStackLines(err, 0), "\n"), "kvstore.OpenSQLite")
	})
}
