package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/oneconcern/prebuilt/pkg/auth"
	"github.com/oneconcern/prebuilt/pkg/config"
	"github.com/oneconcern/prebuilt/pkg/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ExitMocks struct {
	mock.Mock
	exitStatuses []int
}

func (m *ExitMocks) Fatalf(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Fatalln(v ...interface{}) {
	fmt.Println(v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Exit(code int) {
	m.exitStatuses = append(m.exitStatuses, code)
}

func (m *ExitMocks) fatalCalls() int {
	return len(m.exitStatuses)
}

func (m *ExitMocks) lastStatus() int {
	if len(m.exitStatuses) == 0 {
		return 0
	}
	return m.exitStatuses[len(m.exitStatuses)-1]
}

func NewExitMocks() *ExitMocks {
	return &ExitMocks{
		exitStatuses: make([]int, 0),
	}
}

var exitMocks *ExitMocks

type AuthMock struct {
	mock.Mock
	name  string
	email string
}

func (a *AuthMock) Principal(_ context.Context, credFile string) (auth.Principal, error) {
	a.Called(credFile)
	return auth.Principal{
		Name:  a.name,
		Email: a.email,
	}, nil
}

func (a *AuthMock) Refresh(_ context.Context, app config.Application) error {
	return a.Called(app).Error(0)
}

func (a *AuthMock) CreateUserCredentials(_ context.Context, app config.Application) error {
	return a.Called(app).Error(0)
}

func (a *AuthMock) RemoveCredentials(path string) error {
	return a.Called(path).Error(0)
}

// testEnv is a workspace with a configuration file and a fake transfer tool
type testEnv struct {
	dir      string
	settings map[string]interface{}
	output   bytes.Buffer
	info     bytes.Buffer
	authMock *AuthMock
}

func (e *testEnv) path(elems ...string) string {
	return filepath.Join(append([]string{e.dir}, elems...)...)
}

// fakeLongtail records its arguments and environment, prints a line and exits with $FAKE_EXIT
const fakeLongtail = `#!/bin/sh
dir=$(dirname "$0")
printf '%s\n' "$@" > "$dir/longtail.args"
env > "$dir/longtail.env"
echo "longtail $1"
exit ${FAKE_EXIT:-0}
`

func setupTests(t *testing.T) *testEnv {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	e := &testEnv{dir: t.TempDir(), authMock: &AuthMock{name: "Jane Doe", email: "jane@example.com"}}

	require.NoError(t, os.WriteFile(e.path("longtail"), []byte(fakeLongtail), 0755))
	require.NoError(t, os.MkdirAll(e.path("indexes", "versions"), 0755))
	require.NoError(t, os.WriteFile(e.path("indexes", "versions", "100.lvi"), []byte("index"), 0644))
	require.NoError(t, os.WriteFile(e.path("indexes", "versions", "101.lvi"), []byte("index"), 0644))
	require.NoError(t, os.MkdirAll(e.path("engine"), 0755))
	require.NoError(t, os.WriteFile(e.path("engine", "setup.sh"), []byte("#!/bin/sh\necho prerequisites\nexit ${FAKE_PREREQS_EXIT:-0}\n"), 0755))

	e.settings = map[string]interface{}{
		"BlockStorageURI":        e.path("blocks"),
		"VersionIndexStorageURI": e.path("indexes"),
		"UE4Folder":              e.path("engine"),
		"InstalledVersionFile":   e.path("InstalledVersion.json"),
		"DesiredVersionFile":     e.path("DesiredVersion.json"),
		"Longtail":               e.path("longtail"),
		"Prerequisites":          []string{"setup.sh"},
		"MetricsFile":            e.path("prebuilt.prom"),
	}
	e.writeConfig(t)
	t.Setenv(envConfig, e.path("prebuilt.config.json"))

	exitMocks = NewExitMocks()
	osExit = exitMocks.Exit
	logFatalf = exitMocks.Fatalf
	logFatalln = exitMocks.Fatalln
	processOutput = &e.output
	infoLogger = log.New(&e.info, "", 0)
	newAuthorizer = func(*zap.Logger) userAuth { return e.authMock }
	t.Cleanup(func() {
		osExit = os.Exit
		logFatalf = log.Fatalf
		logFatalln = log.Fatalln
		processOutput = os.Stdout
		infoLogger = log.New(os.Stdout, "", 0)
	})
	return e
}

func (e *testEnv) set(t *testing.T, key string, value interface{}) {
	e.settings[key] = value
	e.writeConfig(t)
}

func (e *testEnv) writeConfig(t *testing.T) {
	b, err := json.MarshalIndent(e.settings, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(e.path("prebuilt.config.json"), b, 0644))
}

func (e *testEnv) writeVersion(t *testing.T, file, buildID string) {
	require.NoError(t, os.WriteFile(e.path(file), []byte(`{"BuildId":"`+buildID+`"}`), 0644))
}

func (e *testEnv) readVersion(t *testing.T, file string) string {
	b, err := os.ReadFile(e.path(file))
	require.NoError(t, err)
	var v model.VersionRecord
	require.NoError(t, json.Unmarshal(b, &v))
	return v.BuildID
}

func (e *testEnv) longtailInvoked() bool {
	_, err := os.Stat(e.path("longtail.args"))
	return err == nil
}

func (e *testEnv) longtailArgs(t *testing.T) []string {
	b, err := os.ReadFile(e.path("longtail.args"))
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
}

func (e *testEnv) longtailEnv(t *testing.T) map[string]string {
	b, err := os.ReadFile(e.path("longtail.env"))
	require.NoError(t, err)
	env := make(map[string]string)
	for _, line := range strings.Split(string(b), "\n") {
		if k, v, ok := strings.Cut(line, "="); ok {
			env[k] = v
		}
	}
	return env
}

func runCmd(t *testing.T, cmd []string, intentMsg string, expectError bool) {
	fatalCallsBefore := exitMocks.fatalCalls()

	viper.Reset()
	prebuiltFlags = flagsT{}
	rootCmd.SetArgs(cmd)
	require.NoError(t, rootCmd.Execute(), "error executing '"+strings.Join(cmd, " ")+"' : "+intentMsg)
	if expectError {
		require.Equal(t, fatalCallsBefore+1, exitMocks.fatalCalls(),
			"ran '"+strings.Join(cmd, " ")+"' expecting error and didn't see one in mocks : "+intentMsg)
	} else {
		require.Equal(t, fatalCallsBefore, exitMocks.fatalCalls(),
			"unexpected error in mocks on '"+strings.Join(cmd, " ")+"' : "+intentMsg)
	}
}
