package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ilac-otomasyon/internal/adapters/storage/sqlite"
	"ilac-otomasyon/internal/kiosk/session"
	"ilac-otomasyon/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(&flags{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestResolveConfig_FlagsOverrideYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kiosk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://yaml.example\nkiosk_id: from-yaml\n"), 0o600))

	f := &flags{}
	root := newRootCmd(f)
	require.NoError(t, root.ParseFlags([]string{"--config", path, "--kiosk-id", "from-flag"}))

	cfg, err := resolveConfig(root, f)
	require.NoError(t, err)
	assert.Equal(t, "https://yaml.example", cfg.APIURL, "unchanged flag must not override YAML")
	assert.Equal(t, "from-flag", cfg.KioskID)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestResolveConfig_Invalid(t *testing.T) {
	f := &flags{}
	root := newRootCmd(f)
	require.NoError(t, root.ParseFlags([]string{"--api-url", "ftp://nope"}))

	_, err := resolveConfig(root, f)
	require.Error(t, err)
}

func TestSessionShowAndClear(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "kiosk.db")
	logPath := filepath.Join(dir, "kiosk.log")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, dbPath)
	require.NoError(t, err)
	store := session.NewKVStore(sqlite.NewKVRepo(db), logger.Nop())
	require.NoError(t, store.Save(ctx, []session.Drug{
		{Name: "Parol 500 mg", Expiry: "2027-03-01", UsageInstructions: "Günde 3 kez"},
	}))
	require.NoError(t, db.Close())

	out, err := execute(t, "session", "show", "--session-db", dbPath, "--log-file", logPath)
	require.NoError(t, err)

	var drugs []session.Drug
	require.NoError(t, json.Unmarshal([]byte(out), &drugs))
	require.Len(t, drugs, 1)
	assert.Equal(t, "Parol 500 mg", drugs[0].Name)

	out, err = execute(t, "session", "clear", "--session-db", dbPath, "--log-file", logPath)
	require.NoError(t, err)
	assert.Contains(t, out, "sesión borrada")

	out, err = execute(t, "session", "show", "--session-db", dbPath, "--log-file", logPath)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestSessionAll_ListsAndClearsEveryKey(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "kiosk.db")
	logPath := filepath.Join(dir, "kiosk.log")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, dbPath)
	require.NoError(t, err)
	repo := sqlite.NewKVRepo(db)
	store := session.NewKVStore(repo, logger.Nop())
	require.NoError(t, store.Save(ctx, []session.Drug{{Name: "Parol 500 mg"}}))
	require.NoError(t, repo.Set(ctx, "note", []byte("not json")))
	require.NoError(t, db.Close())

	out, err := execute(t, "session", "show", "--all", "--session-db", dbPath, "--log-file", logPath)
	require.NoError(t, err)

	var all map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	require.Contains(t, all, session.Key)
	assert.JSONEq(t, `"not json"`, string(all["note"]))

	var drugs []session.Drug
	require.NoError(t, json.Unmarshal(all[session.Key], &drugs))
	assert.Equal(t, "Parol 500 mg", drugs[0].Name)

	_, err = execute(t, "session", "clear", "--all", "--session-db", dbPath, "--log-file", logPath)
	require.NoError(t, err)

	out, err = execute(t, "session", "show", "--all", "--session-db", dbPath, "--log-file", logPath)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", out)
}
