// Package display provides output formatting for the s9s CLI.
//
// Output is either a two column table written with text/tabwriter or
// indented JSON when --print-json is given. --batch and --no-header drop the
// table header so the output can be piped into other tools, and --only-ascii
// replaces the status symbols with plain words.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/concave-dev/s9s/cmd/s9s/client"
	"github.com/concave-dev/s9s/internal/logging"
	"github.com/concave-dev/s9s/internal/modes"
	"github.com/concave-dev/s9s/internal/nodes"
	"github.com/concave-dev/s9s/internal/options"
	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
)

// Format selects how results are printed.
type Format struct {
	JSON      bool
	NoHeader  bool
	OnlyASCII bool
	// DateFormat is a strftime layout for timestamps; empty prints relative
	// times such as "3 minutes ago".
	DateFormat string
}

// FormatFromOptions derives the output format from the resolved options.
func FormatFromOptions(o *options.Options) Format {
	return Format{
		JSON:       o.IsJSONRequested(),
		NoHeader:   o.IsNoHeaderRequested() || o.IsBatchRequested(),
		OnlyASCII:  o.OnlyASCII(),
		DateFormat: o.DateFormat(),
	}
}

// Request is a resolved invocation as handed to the controller.
type Request struct {
	Mode        string   `json:"mode"`
	Action      string   `json:"action"`
	Controller  string   `json:"controller"`
	TLS         bool     `json:"tls"`
	User        string   `json:"user,omitempty"`
	KeyFile     string   `json:"private_key_file,omitempty"`
	ClusterID   *int     `json:"cluster_id,omitempty"`
	ClusterName string   `json:"cluster_name,omitempty"`
	ClusterType string   `json:"cluster_type,omitempty"`
	JobID       *int     `json:"job_id,omitempty"`
	JobTags     []string `json:"job_tags,omitempty"`
	Nodes       []string `json:"nodes,omitempty"`
	Servers     []string `json:"servers,omitempty"`
	Master      string   `json:"master,omitempty"`
	Slave       string   `json:"slave,omitempty"`
	Containers  []string `json:"containers,omitempty"`
	Account     string   `json:"account,omitempty"`
	Arguments   []string `json:"arguments,omitempty"`
	ConfigFiles []string `json:"config_files,omitempty"`
}

// NewRequest collects the resolved values of an invocation. The account
// password is masked when the mask_passwords setting or S9S_MASK_PASSWORDS
// is in effect. --long adds the configuration files that were read, and
// --full-path turns relative tree paths into absolute ones.
func NewRequest(o *options.Options, action string) Request {
	req := Request{
		Mode:        o.Mode().String(),
		Action:      action,
		Controller:  o.ControllerEndpoint().BaseURL(),
		TLS:         o.UseTLS(),
		User:        o.UserName(),
		KeyFile:     o.PrivateKeyFile(),
		ClusterName: o.ClusterName(),
		ClusterType: o.ClusterType(),
		JobTags:     o.JobTags(),
		Nodes:       nodeStrings(o.Nodes()),
		Servers:     nodeStrings(o.Servers()),
		Arguments:   o.ExtraArguments(),
	}

	if o.IsFullPath() && o.Mode() == modes.Tree {
		for i, arg := range req.Arguments {
			req.Arguments[i] = path.Join("/", arg)
		}
	}

	if id := o.ClusterID(); id != options.UnsetID {
		req.ClusterID = &id
	}
	if id := o.JobID(); id != options.UnsetID {
		req.JobID = &id
	}
	if master, ok := o.Master(); ok {
		req.Master = master.String()
	}
	if slave, ok := o.Slave(); ok {
		req.Slave = slave.String()
	}
	for _, container := range o.Containers() {
		req.Containers = append(req.Containers, container.Alias)
	}
	if account, ok := o.Account(); ok {
		req.Account = formatAccount(account, o.MaskPasswords())
	}

	if o.IsLongRequested() {
		req.ConfigFiles = o.LoadedConfigFiles()
	}

	return req
}

func nodeStrings(list []nodes.Node) []string {
	var out []string
	for _, node := range list {
		out = append(out, node.String())
	}
	return out
}

func formatAccount(account nodes.Account, mask bool) string {
	s := account.UserName
	if account.Password != "" {
		password := account.Password
		if mask {
			password = strings.Repeat("*", 8)
		}
		s += ":" + password
	}
	return s + "@" + account.HostAllow
}

// PrintRequest prints the resolved invocation.
func PrintRequest(w io.Writer, req Request, format Format) {
	if format.JSON {
		writeJSON(w, req)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	if !format.NoHeader {
		fmt.Fprintln(tw, "FIELD\tVALUE")
	}

	fmt.Fprintf(tw, "Mode\t%s\n", req.Mode)
	fmt.Fprintf(tw, "Action\t%s\n", req.Action)
	fmt.Fprintf(tw, "Controller\t%s\n", req.Controller)
	fmt.Fprintf(tw, "TLS\t%s\n", yesNo(req.TLS))
	printValue(tw, "User", req.User)
	printValue(tw, "Private key", req.KeyFile)
	if req.ClusterID != nil {
		fmt.Fprintf(tw, "Cluster ID\t%d\n", *req.ClusterID)
	}
	printValue(tw, "Cluster name", req.ClusterName)
	printValue(tw, "Cluster type", req.ClusterType)
	if req.JobID != nil {
		fmt.Fprintf(tw, "Job ID\t%d\n", *req.JobID)
	}
	printValue(tw, "Job tags", strings.Join(req.JobTags, ";"))
	printValue(tw, "Nodes", strings.Join(req.Nodes, ";"))
	printValue(tw, "Servers", strings.Join(req.Servers, ";"))
	printValue(tw, "Master", req.Master)
	printValue(tw, "Slave", req.Slave)
	printValue(tw, "Containers", strings.Join(req.Containers, ";"))
	printValue(tw, "Account", req.Account)
	for i, arg := range req.Arguments {
		fmt.Fprintf(tw, "Argument %d\t%s\n", i+1, arg)
	}
	for _, file := range req.ConfigFiles {
		fmt.Fprintf(tw, "Config file\t%s\n", file)
	}
}

func printValue(w io.Writer, field, value string) {
	if value != "" {
		fmt.Fprintf(w, "%s\t%s\n", field, value)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// PrintRPCRequest prints a request body the way it is sent, for
// --print-request.
func PrintRPCRequest(w io.Writer, path string, request any) {
	fmt.Fprintf(w, "Preparing to send request to %s:\n", path)
	writeJSON(w, request)
}

// pingOutput is the JSON form of a ping result.
type pingOutput struct {
	Controller       string `json:"controller"`
	RequestStatus    string `json:"request_status"`
	RoundtripMs      int64  `json:"roundtrip_ms"`
	RequestProcessed string `json:"request_processed,omitempty"`
}

// PrintPing prints the outcome of controller --ping.
func PrintPing(w io.Writer, result *client.PingResult, format Format) {
	if format.JSON {
		writeJSON(w, pingOutput{
			Controller:       result.URL,
			RequestStatus:    result.Reply.RequestStatus,
			RoundtripMs:      result.Roundtrip.Milliseconds(),
			RequestProcessed: result.Reply.RequestProcessed,
		})
		return
	}

	mark := "✔"
	if format.OnlyASCII {
		mark = "OK"
	}

	line := fmt.Sprintf("%s %s replied in %s", mark, result.URL, FormatRoundtrip(result.Roundtrip))
	if processed, ok := parseTimestamp(result.Reply.RequestProcessed); ok {
		line += fmt.Sprintf(" (processed %s)", formatTime(processed, format.DateFormat))
	}
	fmt.Fprintln(w, line)
}

// FormatRoundtrip renders a request duration with millisecond precision.
func FormatRoundtrip(d time.Duration) string {
	if d < time.Millisecond {
		return strconv.FormatInt(d.Microseconds(), 10) + "µs"
	}
	return humanize.FormatFloat("#,###.##", float64(d.Microseconds())/1000) + "ms"
}

func formatTime(t time.Time, dateFormat string) string {
	if dateFormat == "" {
		return humanize.Time(t)
	}
	return strftime.Format(dateFormat, t)
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func writeJSON(w io.Writer, v any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Fprintln(w, "Error encoding JSON output")
	}
}
