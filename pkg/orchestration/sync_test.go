package orchestration_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modsync/pkg/backup"
	"github.com/arthur-debert/modsync/pkg/errors"
	"github.com/arthur-debert/modsync/pkg/manifest"
	"github.com/arthur-debert/modsync/pkg/orchestration"
	"github.com/arthur-debert/modsync/pkg/paths"
	"github.com/arthur-debert/modsync/pkg/testutil"
	"github.com/arthur-debert/modsync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	modsDir    = "/game/mods"
	backupRoot = "/data/modsync/backups"
)

type env struct {
	fs      *testutil.FaultyFS
	server  *testutil.ModServer
	backup  *backup.Manager
	rec     *testutil.Recorder
	options orchestration.Options
}

func newEnv(t *testing.T, remote map[string]string) *env {
	t.Helper()
	srv := testutil.NewModServer(t, remote)
	client, err := manifest.NewClient(manifest.Options{BaseURL: srv.URL})
	require.NoError(t, err)

	fs := testutil.NewFaultyFS(testutil.NewTestFS())
	bm := backup.NewManager(fs, backupRoot, "latest")
	rec := &testutil.Recorder{}

	return &env{
		fs:     fs,
		server: srv,
		backup: bm,
		rec:    rec,
		options: orchestration.Options{
			Source:     client,
			Backup:     bm,
			Observer:   rec,
			FileSystem: fs,
		},
	}
}

func (e *env) run(t *testing.T, target string) (*orchestration.Report, error) {
	t.Helper()
	o, err := orchestration.New(e.options)
	require.NoError(t, err)
	return o.RunSync(context.Background(), target)
}

func TestRunSyncEndToEnd(t *testing.T) {
	e := newEnv(t, map[string]string{"b.jar": "remote-b", "c.jar": "remote-c"})
	testutil.WriteFiles(t, e.fs, modsDir, map[string]string{"a.jar": "a", "b.jar": "local-b"})

	report, err := e.run(t, modsDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"b.jar", "c.jar"}, testutil.FileNames(t, e.fs, modsDir))
	assert.Equal(t, map[string]string{"a.jar": "a", "b.jar": "local-b"},
		testutil.ReadFiles(t, e.fs, filepath.Join(backupRoot, "latest")), "backup holds the pre-sync state")
	assert.Equal(t, []string{"/mods/c.jar"}, e.server.ContentRequests())

	assert.Equal(t, modsDir, report.ModsDir)
	assert.Equal(t, filepath.Join(backupRoot, "latest"), report.BackupDir)
	assert.Equal(t, types.ModNames("a.jar"), report.Result.Removed)
	assert.Equal(t, types.ModNames("c.jar"), report.Result.Downloaded)

	assert.Equal(t, orchestration.StatusBackingUp, e.rec.Statuses[0])
	assert.Equal(t, orchestration.StatusFetching, e.rec.Statuses[1])
	assert.Equal(t, orchestration.StatusComplete, e.rec.Statuses[len(e.rec.Statuses)-1])
	assert.Equal(t, types.ModNames("b.jar", "c.jar"), e.rec.ProgressNames())
	assert.Equal(t, 1, e.rec.Completed)
	assert.Empty(t, e.rec.Errors)
}

func TestRunSyncManifestServerError(t *testing.T) {
	e := newEnv(t, map[string]string{"b.jar": "b"})
	testutil.WriteFiles(t, e.fs, modsDir, map[string]string{"a.jar": "a"})
	e.server.FailPath("/manifest", 500)

	_, err := e.run(t, modsDir)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRemote))
	assert.Equal(t, 500, errors.StatusCode(err))

	// only the backup happened
	assert.Equal(t, []string{"a.jar"}, testutil.FileNames(t, e.fs, modsDir))
	assert.Equal(t, []string{"a.jar"}, testutil.FileNames(t, e.fs, filepath.Join(backupRoot, "latest")))
	assert.Empty(t, e.server.ContentRequests())
	for _, call := range e.fs.Calls() {
		assert.NotContains(t, call, "remove:"+modsDir)
	}

	assert.Equal(t, []error{err}, e.rec.Errors)
	assert.Zero(t, e.rec.Completed)
	assert.Empty(t, e.rec.Events)
}

func TestRunSyncManifestWithoutModsListKeepsLocalFiles(t *testing.T) {
	for _, body := range []string{`null`, `{}`, `{"files": ["a.jar"]}`} {
		t.Run(body, func(t *testing.T) {
			e := newEnv(t, nil)
			testutil.WriteFiles(t, e.fs, modsDir, map[string]string{"a.jar": "a", "b.jar": "b"})

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer ts.Close()
			client, err := manifest.NewClient(manifest.Options{BaseURL: ts.URL})
			require.NoError(t, err)
			e.options.Source = client

			_, err = e.run(t, modsDir)

			assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid), "got %v", err)
			assert.Equal(t, []string{"a.jar", "b.jar"}, testutil.FileNames(t, e.fs, modsDir))
			assert.Equal(t, []error{err}, e.rec.Errors)
		})
	}
}

func TestRunSyncBackupFailureStopsEverything(t *testing.T) {
	e := newEnv(t, map[string]string{"b.jar": "b"})

	_, err := e.run(t, modsDir)

	assert.True(t, errors.IsErrorCode(err, errors.ErrFilesystem))
	assert.Empty(t, e.server.Requests(), "manifest is not fetched when the backup fails")
	assert.Len(t, e.rec.Errors, 1)
}

func TestRunSyncContentFailure(t *testing.T) {
	e := newEnv(t, map[string]string{"a.jar": "a", "b.jar": "b"})
	require.NoError(t, e.fs.MkdirAll(modsDir, 0755))
	e.server.FailPath("/mods/b.jar", 503)

	report, err := e.run(t, modsDir)

	assert.True(t, errors.IsErrorCode(err, errors.ErrRemote))
	assert.Equal(t, 503, errors.StatusCode(err))
	assert.Equal(t, "b.jar", errors.GetErrorDetails(err)[errors.DetailMod])
	assert.Equal(t, types.ModNames("a.jar"), report.Result.Downloaded)
	assert.Equal(t, []string{"a.jar"}, testutil.FileNames(t, e.fs, modsDir))
}

func TestRunSyncNetworkError(t *testing.T) {
	e := newEnv(t, nil)
	require.NoError(t, e.fs.MkdirAll(modsDir, 0755))
	e.server.Close()

	_, err := e.run(t, modsDir)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNetwork))
}

func TestRunSyncResolvesPath(t *testing.T) {
	t.Run("resolver supplies the directory", func(t *testing.T) {
		e := newEnv(t, map[string]string{"a.jar": "a"})
		require.NoError(t, e.fs.MkdirAll(modsDir, 0755))
		e.options.Resolver = paths.Chain(paths.Static(""), paths.Static(modsDir))

		report, err := e.run(t, "")
		require.NoError(t, err)
		assert.Equal(t, modsDir, report.ModsDir)
		assert.Equal(t, orchestration.StatusResolving, e.rec.Statuses[0])
		assert.Equal(t, []string{"a.jar"}, testutil.FileNames(t, e.fs, modsDir))
	})

	t.Run("resolver failure", func(t *testing.T) {
		e := newEnv(t, nil)
		e.options.Resolver = types.PathResolverFunc(func() (string, error) {
			return "", stderrors.New("launcher not installed")
		})

		_, err := e.run(t, "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Equal(t, []error{err}, e.rec.Errors)
		assert.Empty(t, e.server.Requests())
	})

	t.Run("no resolver", func(t *testing.T) {
		e := newEnv(t, nil)
		_, err := e.run(t, "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestRunSyncDryRun(t *testing.T) {
	e := newEnv(t, map[string]string{"b.jar": "b", "c.jar": "c"})
	testutil.WriteFiles(t, e.fs, modsDir, map[string]string{"a.jar": "a", "b.jar": "b"})
	e.options.DryRun = true
	e.options.Backup = nil
	setupCalls := len(e.fs.Calls())

	report, err := e.run(t, modsDir)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Nil(t, report.Result)
	assert.Equal(t, types.ModNames("a.jar"), report.Plan.Remove)
	assert.Equal(t, types.ModNames("c.jar"), report.Plan.Download)
	assert.Equal(t, types.ModNames("b.jar"), report.Plan.Present)

	assert.Equal(t, []string{"a.jar", "b.jar"}, testutil.FileNames(t, e.fs, modsDir))
	assert.Len(t, e.fs.Calls(), setupCalls, "dry run never mutates the filesystem")
	assert.Empty(t, e.server.ContentRequests())
}

func TestRunSyncIdempotent(t *testing.T) {
	e := newEnv(t, map[string]string{"a.jar": "a", "b.jar": "b"})
	require.NoError(t, e.fs.MkdirAll(modsDir, 0755))

	_, err := e.run(t, modsDir)
	require.NoError(t, err)
	fetched := len(e.server.ContentRequests())

	report, err := e.run(t, modsDir)
	require.NoError(t, err)
	assert.True(t, report.Plan.Empty())
	assert.Len(t, e.server.ContentRequests(), fetched)
}

func TestNewValidates(t *testing.T) {
	_, err := orchestration.New(orchestration.Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	e := newEnv(t, nil)
	e.options.Backup = nil
	_, err = orchestration.New(e.options)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
