package options

import (
	"github.com/concave-dev/s9s/internal/nodes"
)

// SetNodes parses and stores a --nodes list.
func (o *Options) SetNodes(text string) bool {
	return o.setNodeList(KeyNodes, text)
}

// SetServers parses and stores a --servers list.
func (o *Options) SetServers(text string) bool {
	return o.setNodeList(KeyServers, text)
}

// SetMaster parses and stores the --master node.
func (o *Options) SetMaster(text string) bool {
	return o.setNode(KeyMaster, text)
}

// SetSlave parses and stores the --slave node.
func (o *Options) SetSlave(text string) bool {
	return o.setNode(KeySlave, text)
}

// SetAccount parses and stores --account.
func (o *Options) SetAccount(text string) bool {
	account, err := nodes.ParseAccount(text)
	if err != nil {
		o.SetError(BadOptions, "The argument for the --account option is invalid: %v.", err)
		return false
	}
	o.Set(KeyAccount, account)
	return true
}

// SetContainers parses and stores a --containers list.
func (o *Options) SetContainers(text string) bool {
	list, err := nodes.ParseContainerList(text)
	if err != nil {
		o.SetError(BadOptions, "The argument for the --containers option is invalid: %v.", err)
		return false
	}
	o.Set(KeyContainers, list)
	return true
}

// SetStringList splits text on ';' or ',' and stores the items under key.
// An empty list is rejected.
func (o *Options) SetStringList(key, text string) bool {
	items := splitList(text)
	if len(items) == 0 {
		o.SetError(BadOptions, "The argument for the --%s option is empty.", flagName(key))
		return false
	}
	o.Set(key, items)
	return true
}

func (o *Options) setNodeList(key, text string) bool {
	list, err := nodes.ParseNodeList(text)
	if err != nil {
		o.SetError(BadOptions, "The argument for the --%s option is invalid: %v.", flagName(key), err)
		return false
	}
	o.Set(key, list)
	return true
}

func (o *Options) setNode(key, text string) bool {
	node, err := nodes.ParseNode(text)
	if err != nil {
		o.SetError(BadOptions, "The argument for the --%s option is invalid: %v.", flagName(key), err)
		return false
	}
	o.Set(key, node)
	return true
}

// KeyForFlag maps a long option name to its key: "cluster-type" becomes
// "cluster_type".
func KeyForFlag(name string) string {
	out := []byte(name)
	for i, c := range out {
		if c == '-' {
			out[i] = '_'
		}
	}
	return string(out)
}

func flagName(key string) string {
	out := []byte(key)
	for i, c := range out {
		if c == '_' {
			out[i] = '-'
		}
	}
	return string(out)
}
