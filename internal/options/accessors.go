package options

import (
	"os"
	"strings"

	"github.com/concave-dev/s9s/internal/config"
	"github.com/concave-dev/s9s/internal/endpoint"
	"github.com/concave-dev/s9s/internal/nodes"
	"github.com/concave-dev/s9s/internal/termsize"
	"github.com/spf13/cast"
)

// UnsetID is returned by the ID accessors when no ID was given.
const UnsetID = -1

func toStringMap(value any) (map[string]any, error) {
	return cast.ToStringMapE(value)
}

func toStringSlice(value any) []string {
	return cast.ToStringSlice(value)
}

func stdoutIsTerminal() bool {
	return termsize.IsTerminal(os.Stdout)
}

// ControllerURL returns the controller as configured, before decomposition.
// Values such as a bare "https://" name no controller; they are skipped so
// the next layer down supplies the URL.
func (o *Options) ControllerURL() string {
	value, ok := o.lookupWhere(KeyController, func(v any) bool {
		return !endpoint.IsDegenerate(toString(v))
	})
	if !ok {
		return ""
	}
	return toString(value)
}

// Controller returns the decomposed controller URL. Defaults are not
// applied; use the Controller* accessors for effective values.
func (o *Options) Controller() endpoint.Endpoint {
	return endpoint.Resolve(o.ControllerURL())
}

// ControllerHostName returns the controller host, "localhost" when none is
// configured.
func (o *Options) ControllerHostName() string {
	return o.Controller().EffectiveHost()
}

// ControllerPort returns the RPC port. An explicit --controller-port wins,
// then a port embedded in the controller URL, then controller_port from the
// configuration, then 9501.
func (o *Options) ControllerPort() int {
	if value, ok := o.values[KeyControllerPort]; ok {
		return toInt(value, config.DefaultControllerPort)
	}
	if ep := o.Controller(); ep.Port > 0 {
		return ep.Port
	}
	return o.Int(KeyControllerPort, config.DefaultControllerPort)
}

// ControllerProtocol returns the URL scheme, "https" when none is given.
func (o *Options) ControllerProtocol() string {
	return o.Controller().EffectiveProtocol()
}

// ControllerPath returns the path part of the controller URL.
func (o *Options) ControllerPath() string {
	return o.Controller().Path
}

// ControllerEndpoint returns the endpoint with every default applied and the
// port resolved as ControllerPort does.
func (o *Options) ControllerEndpoint() endpoint.Endpoint {
	return endpoint.Endpoint{
		Protocol: o.ControllerProtocol(),
		Host:     o.ControllerHostName(),
		Port:     o.ControllerPort(),
		Path:     o.ControllerPath(),
	}
}

// UseTLS reports whether the RPC connection should use TLS.
func (o *Options) UseTLS() bool {
	return o.Bool(KeyRPCTLS) || o.ControllerProtocol() == "https"
}

// ClusterID returns the cluster ID, UnsetID when none is given.
func (o *Options) ClusterID() int {
	return o.Int(KeyClusterID, UnsetID)
}

// HasClusterID reports whether a cluster ID is available from any layer.
func (o *Options) HasClusterID() bool {
	return o.ClusterID() != UnsetID
}

// ClusterName returns --cluster-name.
func (o *Options) ClusterName() string {
	return o.String(KeyClusterName, "")
}

// ClusterType returns --cluster-type in lower case.
func (o *Options) ClusterType() string {
	return strings.ToLower(o.String(KeyClusterType, ""))
}

// JobID returns --job-id, UnsetID when none is given.
func (o *Options) JobID() int {
	return o.Int(KeyJobID, UnsetID)
}

// Nodes returns the parsed --nodes list.
func (o *Options) Nodes() []nodes.Node {
	list, _ := o.values[KeyNodes].([]nodes.Node)
	return list
}

// Servers returns the parsed --servers list.
func (o *Options) Servers() []nodes.Node {
	list, _ := o.values[KeyServers].([]nodes.Node)
	return list
}

// Master returns the parsed --master node.
func (o *Options) Master() (nodes.Node, bool) {
	node, ok := o.values[KeyMaster].(nodes.Node)
	return node, ok
}

// Slave returns the parsed --slave node.
func (o *Options) Slave() (nodes.Node, bool) {
	node, ok := o.values[KeySlave].(nodes.Node)
	return node, ok
}

// Account returns the parsed --account.
func (o *Options) Account() (nodes.Account, bool) {
	account, ok := o.values[KeyAccount].(nodes.Account)
	return account, ok
}

// Containers returns the parsed --containers list.
func (o *Options) Containers() []nodes.Container {
	list, _ := o.values[KeyContainers].([]nodes.Container)
	return list
}

// JobTags returns the --job-tags list.
func (o *Options) JobTags() []string {
	return o.StringList(KeyJobTags)
}

// IsListRequested reports --list.
func (o *Options) IsListRequested() bool {
	return o.Bool(KeyList)
}

// IsLongRequested reports --long.
func (o *Options) IsLongRequested() bool {
	return o.Bool(KeyLong)
}

// IsHelpRequested reports --help.
func (o *Options) IsHelpRequested() bool {
	return toBool(o.values[KeyHelp])
}

// IsVersionRequested reports --version.
func (o *Options) IsVersionRequested() bool {
	return toBool(o.values[KeyVersion])
}

// IsVerbose reports --verbose, verbose = true or $S9S_VERBOSE.
func (o *Options) IsVerbose() bool {
	return o.Bool(KeyVerbose)
}

// IsDebug reports --debug.
func (o *Options) IsDebug() bool {
	return o.Bool(KeyDebug)
}

// IsJSONRequested reports --print-json.
func (o *Options) IsJSONRequested() bool {
	return o.Bool(KeyPrintJSON)
}

// IsPrintRequest reports --print-request.
func (o *Options) IsPrintRequest() bool {
	return o.Bool(KeyPrintRequest)
}

// IsBatchRequested reports --batch.
func (o *Options) IsBatchRequested() bool {
	return o.Bool(KeyBatch)
}

// IsNoHeaderRequested reports --no-header, implied by --batch.
func (o *Options) IsNoHeaderRequested() bool {
	return o.Bool(KeyNoHeader) || o.IsBatchRequested()
}

// OnlyASCII reports whether output must avoid non-ASCII characters. A truthy
// $S9S_ONLY_ASCII forces it on.
func (o *Options) OnlyASCII() bool {
	return o.Bool(KeyOnlyASCII)
}

// MaskPasswords reports whether passwords are masked in output. A truthy
// $S9S_MASK_PASSWORDS forces it on.
func (o *Options) MaskPasswords() bool {
	return o.Bool(KeyMaskPasswords)
}

// ColorMode returns the --color setting, "auto" by default.
func (o *Options) ColorMode() string {
	return strings.ToLower(o.String(KeyColor, "auto"))
}

// UseSyntaxHighlight reports whether output is colored: always with
// --color=always, never with --color=never or --batch, otherwise when stdout
// is a terminal.
func (o *Options) UseSyntaxHighlight() bool {
	switch o.ColorMode() {
	case "always":
		return true
	case "never":
		return false
	}
	if o.IsBatchRequested() {
		return false
	}
	return o.isTerminal()
}

// UserName returns the Cmon user, falling back to $USER.
func (o *Options) UserName() string {
	return o.String(KeyUser, "")
}

// Password returns the Cmon password.
func (o *Options) Password() string {
	return o.String(KeyPassword, "")
}

// PrivateKeyFile returns the key used to authenticate the Cmon user.
func (o *Options) PrivateKeyFile() string {
	return o.String(KeyPrivateKeyFile, "")
}

// ConnectionTimeout returns the RPC timeout in seconds.
func (o *Options) ConnectionTimeout() int {
	return o.Int(KeyConnectionTimeout, config.DefaultConnectionTimeout)
}

// DateFormat returns the date format for mode, consulting the mode's
// configuration section before the global one.
func (o *Options) DateFormat() string {
	return o.StringIn(o.mode.String(), KeyDateFormat, "")
}

// IsFullPath reports --full-path.
func (o *Options) IsFullPath() bool {
	return o.Bool(KeyFullPath)
}

// Flag reports whether the switch key was given on the command line with a
// true value. Configuration layers are not consulted.
func (o *Options) Flag(key string) bool {
	value, ok := o.values[key]
	return ok && toBool(value)
}

// IsDefined reports whether any layer of the precedence chain holds key.
func (o *Options) IsDefined(key string) bool {
	_, ok := o.lookup(key)
	return ok
}
