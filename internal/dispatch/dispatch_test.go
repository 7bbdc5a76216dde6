package dispatch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/concave-dev/s9s/internal/modes"
	"github.com/concave-dev/s9s/internal/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	t     *testing.T
	paths options.Paths
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	for _, name := range []string{"CMON_CONTROLLER", "CMON_CLUSTER_ID", "S9S_VERBOSE", "S9S_ONLY_ASCII"} {
		t.Setenv(name, "")
	}
	dir := t.TempDir()
	return &fixture{
		t: t,
		paths: options.Paths{
			UserConfig:   filepath.Join(dir, "s9s.conf"),
			SystemConfig: filepath.Join(dir, "system.conf"),
			State:        filepath.Join(dir, "s9s.state"),
		},
	}
}

func (f *fixture) read(cmdline string) (*options.Options, *Invocation, error) {
	f.t.Helper()
	o := options.New(f.paths)
	f.t.Cleanup(o.Close)
	inv, err := ReadOptions(o, strings.Fields(cmdline))
	return o, inv, err
}

func requireBadOptions(t *testing.T, o *options.Options, err error) {
	t.Helper()
	require.Error(t, err)

	var oerr *options.Error
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, options.BadOptions, oerr.Status)
	assert.Equal(t, options.BadOptions, o.ExitStatus())
	assert.NotEmpty(t, oerr.Message)
}

func TestNodeListWithController(t *testing.T) {
	o, inv, err := newFixture(t).read("node --list --controller=localhost:9555 --color=always --verbose")
	require.NoError(t, err)

	assert.Equal(t, modes.Node, inv.Mode)
	assert.Equal(t, "list", inv.Action)
	assert.Equal(t, "localhost", o.ControllerHostName())
	assert.Equal(t, 9555, o.ControllerPort())
	assert.True(t, o.IsListRequested())
	assert.True(t, o.IsVerbose())
}

func TestClusterCreateWithNodes(t *testing.T) {
	o, inv, err := newFixture(t).read("cluster --create --nodes=10.0.0.1;10.0.0.2 --cluster-type=Galera")
	require.NoError(t, err)

	assert.Equal(t, modes.Cluster, inv.Mode)
	assert.Equal(t, "create", inv.Action)
	list := o.Nodes()
	require.Len(t, list, 2)
	assert.Equal(t, "10.0.0.1", list[0].HostName)
	assert.Equal(t, "10.0.0.2", list[1].HostName)
	assert.Equal(t, "galera", o.ClusterType())
}

func TestJobCloneWithoutJobID(t *testing.T) {
	o, inv, err := newFixture(t).read("job --clone")

	assert.Nil(t, inv)
	requireBadOptions(t, o, err)
	assert.Contains(t, err.Error(), "--job-id")
}

func TestControllerFromConfigFile(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.paths.UserConfig, []byte("controller = test.host:42\n"), 0o644))

	o, _, err := f.read("cluster --list")
	require.NoError(t, err)
	assert.Equal(t, "test.host", o.ControllerHostName())
	assert.Equal(t, 42, o.ControllerPort())
}

func TestUnknownMode(t *testing.T) {
	o, _, err := newFixture(t).read("frobnicate --list")

	requireBadOptions(t, o, err)
	assert.Contains(t, err.Error(), "frobnicate")
	assert.Contains(t, err.Error(), "invalid")
}

func TestMissingConfigFile(t *testing.T) {
	o, _, err := newFixture(t).read("node --config-file=/missing/path --frobnicate")

	requireBadOptions(t, o, err)
	assert.Equal(t, "Configuration file '/missing/path' not found.", err.Error())
	assert.Equal(t, modes.Node, o.Mode())
}

func TestNoMode(t *testing.T) {
	o, _, err := newFixture(t).read("--list")

	requireBadOptions(t, o, err)
	assert.Equal(t, "The first command line option must be the mode.", err.Error())
}

func TestHelpShortCircuitsValidation(t *testing.T) {
	o, inv, err := newFixture(t).read("job --help --kill --success")
	require.NoError(t, err)

	assert.Equal(t, modes.Job, inv.Mode)
	assert.True(t, inv.IsInfoRequest())
	assert.True(t, o.IsHelpRequested())
	assert.Equal(t, options.Ok, o.ExitStatus())
}

func TestHelpSuppressesParseErrors(t *testing.T) {
	o, inv, err := newFixture(t).read("cluster --help --nodes=; --frobnicate")
	require.NoError(t, err)

	assert.Equal(t, modes.Cluster, inv.Mode)
	assert.True(t, o.IsHelpRequested())
	assert.Empty(t, o.ErrorString())
}

func TestHelpAndVersionWithoutMode(t *testing.T) {
	o, inv, err := newFixture(t).read("--help")
	require.NoError(t, err)
	assert.Equal(t, modes.NoMode, inv.Mode)
	assert.True(t, o.IsHelpRequested())

	o, inv, err = newFixture(t).read("--version")
	require.NoError(t, err)
	assert.Equal(t, modes.NoMode, inv.Mode)
	assert.True(t, o.IsVersionRequested())
}

func TestVersionSkipsValidation(t *testing.T) {
	o, inv, err := newFixture(t).read("cluster -V")
	require.NoError(t, err)

	assert.True(t, inv.IsInfoRequest())
	assert.True(t, o.IsVersionRequested())
}

func TestActionCountViolations(t *testing.T) {
	o, _, err := newFixture(t).read("cluster --list --create --nodes=db1")
	requireBadOptions(t, o, err)
	assert.Equal(t, "The main options are mutually exclusive.", err.Error())

	o, _, err = newFixture(t).read("node --nodes=db1")
	requireBadOptions(t, o, err)
	assert.Equal(t, "One of the main options is mandatory.", err.Error())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		cmdline string
		message string
	}{
		{"node --list --frobnicate", "Unknown option --frobnicate."},
		{"node --list -Z", "Unknown option -Z."},
		{"node --list --nodes", "The --nodes option requires an argument."},
		{"cluster --list -i", "The -i option requires an argument."},
	}

	for _, tt := range tests {
		t.Run(tt.cmdline, func(t *testing.T) {
			o, _, err := newFixture(t).read(tt.cmdline)
			requireBadOptions(t, o, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestInvalidCompositeArgumentMessage(t *testing.T) {
	o, _, err := newFixture(t).read("cluster --create --nodes=db1;-bad")

	requireBadOptions(t, o, err)
	assert.True(t, strings.HasPrefix(err.Error(), "The argument for the --nodes option is invalid"), err.Error())
}

func TestGlobalOptionChecks(t *testing.T) {
	o, _, err := newFixture(t).read("node --list --color=blue")
	requireBadOptions(t, o, err)
	assert.Contains(t, err.Error(), "--color")

	o, _, err = newFixture(t).read("node --list --controller-port=99999")
	requireBadOptions(t, o, err)
	assert.Contains(t, err.Error(), "--controller-port")

	_, _, err = newFixture(t).read("node --list --color=NEVER --controller-port=9600")
	assert.NoError(t, err)
}

func TestExtraArguments(t *testing.T) {
	o, inv, err := newFixture(t).read("tree --mkdir /home/pipas/folder")
	require.NoError(t, err)

	assert.Equal(t, "mkdir", inv.Action)
	assert.Equal(t, []string{"/home/pipas/folder"}, inv.Extra)
	assert.Equal(t, []string{"/home/pipas/folder"}, o.ExtraArguments())

	_, inv, err = newFixture(t).read("tree --move /a tree")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "tree"}, inv.Extra, "only the first mode token is dropped")
}

func TestModeAfterOptions(t *testing.T) {
	_, inv, err := newFixture(t).read("--verbose job --list")
	require.NoError(t, err)
	assert.Equal(t, modes.Job, inv.Mode)
}

// Known quirk: "controllers" selects the server mode.
func TestControllersAlias(t *testing.T) {
	_, inv, err := newFixture(t).read("controllers --list")
	require.NoError(t, err)
	assert.Equal(t, modes.Server, inv.Mode)
}
