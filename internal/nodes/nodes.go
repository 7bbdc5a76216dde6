// Package nodes parses the structured option arguments s9s accepts for
// --nodes, --servers, --master, --slave, --account and --containers.
//
// A node is written as
//
//	[protocol://]host[:port][?key=value&key=value]
//
// for example "mysql://10.0.0.1:3306" or "db1?datadir=/data". Lists are
// separated by ';' or ','.
package nodes

import (
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"

	"github.com/concave-dev/s9s/internal/validate"
)

// Node is one host taken from a node list.
type Node struct {
	Protocol   string
	HostName   string
	Port       int
	Properties map[string]string
}

// HasPort reports whether a port was given explicitly.
func (n Node) HasPort() bool {
	return n.Port > 0
}

// String serialises the node back into the command line form.
func (n Node) String() string {
	var b strings.Builder
	if n.Protocol != "" {
		b.WriteString(n.Protocol)
		b.WriteString("://")
	}
	if n.HasPort() {
		b.WriteString(net.JoinHostPort(n.HostName, strconv.Itoa(n.Port)))
	} else {
		b.WriteString(n.HostName)
	}
	if len(n.Properties) > 0 {
		b.WriteByte('?')
		b.WriteString(formatProperties(n.Properties))
	}
	return b.String()
}

// ParseNode parses a single node.
func ParseNode(text string) (Node, error) {
	var node Node

	text = strings.TrimSpace(text)
	if text == "" {
		return node, fmt.Errorf("empty node specification")
	}

	rest, query, _ := strings.Cut(text, "?")
	props, err := parseProperties(query)
	if err != nil {
		return node, fmt.Errorf("node '%s': %w", text, err)
	}
	node.Properties = props

	if protocol, remainder, found := strings.Cut(rest, "://"); found {
		if protocol == "" {
			return node, fmt.Errorf("node '%s': missing protocol before '://'", text)
		}
		node.Protocol = strings.ToLower(protocol)
		rest = remainder
	}

	if hasPortSuffix(rest) {
		addr, err := validate.ParseHostPort(rest)
		if err != nil {
			return node, fmt.Errorf("node '%s': %w", text, err)
		}
		node.HostName = addr.Host
		node.Port = addr.Port
		return node, nil
	}

	host := strings.Trim(rest, "[]")
	if err := validate.HostNameFormat(host); err != nil {
		return node, fmt.Errorf("node '%s': %w", text, err)
	}
	node.HostName = host
	return node, nil
}

// ParseNodeList parses a ';' or ',' separated node list. Empty entries are
// skipped but the list as a whole must name at least one node.
func ParseNodeList(text string) ([]Node, error) {
	var list []Node

	for _, item := range splitList(text) {
		node, err := ParseNode(item)
		if err != nil {
			return nil, err
		}
		list = append(list, node)
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("the node list is empty")
	}
	return list, nil
}

// hasPortSuffix reports whether s ends in ":digits" addressing a port rather
// than being a bare IPv6 literal.
func hasPortSuffix(s string) bool {
	idx := strings.LastIndexByte(s, ':')
	if idx < 0 || idx == len(s)-1 {
		return false
	}
	if strings.Count(s, ":") > 1 && !strings.HasPrefix(s, "[") {
		return false
	}
	_, err := strconv.Atoi(s[idx+1:])
	return err == nil
}

func splitList(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == ','
	})

	items := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			items = append(items, field)
		}
	}
	return items
}

func parseProperties(query string) (map[string]string, error) {
	if query == "" {
		return nil, nil
	}

	props := make(map[string]string)
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			return nil, fmt.Errorf("property without a name in '%s'", query)
		}
		props[key] = value
	}
	return props, nil
}

func formatProperties(props map[string]string) string {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+props[key])
	}
	return strings.Join(pairs, "&")
}
