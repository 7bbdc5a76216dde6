package grammar

import "github.com/concave-dev/s9s/internal/modes"

// sw declares a boolean switch, used for primary actions and plain options.
func sw(name, usage string) Flag {
	return Flag{Name: name, Usage: usage}
}

func opt(name string, kind Kind, arg, usage string) Flag {
	return Flag{Name: name, Kind: kind, Arg: arg, Usage: usage}
}

func flags(groups ...[]Flag) []Flag {
	var out []Flag
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var listAction = Flag{Name: "list", Short: "L", Usage: "List the objects."}

var clusterRef = []Flag{
	{Name: "cluster-id", Short: "i", Kind: KindInt, Arg: "ID", Usage: "The ID of the cluster."},
	{Name: "cluster-name", Short: "n", Kind: KindString, Arg: "NAME", Usage: "The name of the cluster."},
}

var jobControl = []Flag{
	sw("wait", "Wait until the job ends."),
	sw("log", "Wait and monitor job messages."),
	opt("schedule", KindString, "DATETIME", "Run the job at the specified time."),
	opt("recurrence", KindString, "CRONTAB", "Create a recurring job."),
	opt("job-tags", KindList, "LIST", "Tags for the job if a job is created."),
	opt("timeout", KindInt, "SECONDS", "Timeout value for the entire job."),
}

var anyCluster = []string{"cluster-id", "cluster-name"}

var table = []*Spec{
	{
		Mode:        modes.Cluster,
		Description: "Create, list and manage clusters.",
		Actions: []Flag{
			listAction,
			sw("stat", "Print the details of clusters."),
			sw("create", "Create and install a new cluster."),
			sw("register", "Register a cluster already installed."),
			sw("ping", "Check the connection to a cluster."),
			sw("drop", "Remove the cluster from the controller."),
			sw("add-node", "Add a new node to the cluster."),
			sw("remove-node", "Remove a node from the cluster."),
			sw("stop", "Stop the cluster."),
			sw("start", "Start the cluster."),
			sw("rolling-restart", "Restart the nodes one by one."),
			sw("create-account", "Create a database account on the cluster."),
			sw("delete-account", "Delete a database account from the cluster."),
			sw("create-database", "Create a database on the cluster."),
			sw("delete-database", "Delete a database from the cluster."),
			sw("list-databases", "List the databases found on the cluster."),
			sw("list-config", "Print the configuration of the cluster."),
			sw("change-config", "Change a configuration value of the cluster."),
			sw("create-report", "Create a report on the cluster."),
			sw("deploy-agents", "Deploy monitoring agents to the nodes."),
			sw("set-read-only", "Set the entire cluster into read-only mode."),
			sw("import-config", "Import the configuration files of the nodes."),
			sw("collect-logs", "Collect the logs of the cluster."),
			sw("enable-ssl", "Enable SSL connections on the nodes."),
			sw("disable-ssl", "Disable SSL connections on the nodes."),
			sw("check-hosts", "Check the hosts before installing a cluster."),
			sw("available-upgrades", "Show the packages that can be upgraded."),
			sw("upgrade-cluster", "Upgrade the cluster to a new version."),
		},
		Options: flags(clusterRef, jobControl, []Flag{
			opt("nodes", KindNodes, "NODELIST", "The nodes of the cluster."),
			opt("cluster-type", KindString, "TYPE", "The type of the cluster to install."),
			opt("vendor", KindString, "VENDOR", "The name of the software vendor."),
			opt("provider-version", KindString, "VERSION", "The version of the software."),
			opt("os-user", KindString, "USERNAME", "The user name on the nodes."),
			opt("os-key-file", KindString, "PATH", "The SSH key file to authenticate on the nodes."),
			opt("db-admin", KindString, "USERNAME", "The database administrator name."),
			opt("db-admin-passwd", KindString, "PASSWD", "The password of the database administrator."),
			opt("account", KindAccount, "NAME[:PASSWD][@HOST]", "The database account."),
			opt("db-name", KindString, "NAME", "The name of the database."),
			opt("privileges", KindString, "PRIVILEGES", "Privileges to grant."),
			opt("opt-group", KindString, "NAME", "The configuration option group."),
			opt("opt-name", KindString, "NAME", "The configuration option name."),
			opt("opt-value", KindString, "VALUE", "The configuration option value."),
			opt("output-dir", KindString, "DIR", "The directory where the files are created."),
			opt("containers", KindContainers, "LIST", "The containers to create the cluster on."),
			sw("no-install", "Do not install the software, it is already installed."),
		}),
		Companions: []Companion{
			{Action: "create", Requires: []string{"nodes"}},
			{Action: "register", Requires: []string{"nodes", "cluster-type"}},
			{Action: "add-node", Requires: []string{"nodes"}, AnyOf: anyCluster},
			{Action: "remove-node", Requires: []string{"nodes"}, AnyOf: anyCluster},
			{Action: "drop", AnyOf: anyCluster},
			{Action: "ping", AnyOf: anyCluster},
			{Action: "stop", AnyOf: anyCluster},
			{Action: "start", AnyOf: anyCluster},
			{Action: "rolling-restart", AnyOf: anyCluster},
			{Action: "create-account", Requires: []string{"account"}, AnyOf: anyCluster},
			{Action: "delete-account", Requires: []string{"account"}, AnyOf: anyCluster},
			{Action: "create-database", Requires: []string{"db-name"}, AnyOf: anyCluster},
			{Action: "delete-database", Requires: []string{"db-name"}, AnyOf: anyCluster},
			{Action: "change-config", Requires: []string{"opt-name"}, AnyOf: anyCluster},
		},
	},
	{
		Mode:        modes.Container,
		Description: "Create and manage virtual machines and containers.",
		Actions: []Flag{
			listAction,
			sw("stat", "Print the details of the containers."),
			sw("create", "Create and start new containers."),
			sw("delete", "Stop and delete containers."),
			sw("start", "Start containers."),
			sw("stop", "Stop containers."),
		},
		Options: flags(jobControl, []Flag{
			opt("servers", KindServers, "LIST", "The servers the containers are created on."),
			opt("template", KindString, "NAME", "The template of the new container."),
			opt("image", KindString, "NAME", "The image of the new container."),
			opt("os-user", KindString, "USERNAME", "The user name created in the container."),
			opt("cloud", KindString, "PROVIDER", "The cloud provider."),
			opt("region", KindString, "NAME", "The region of the cloud."),
		}),
		Operands: []Operand{
			{Action: "delete", Min: 1, Max: -1, What: "the names of the containers to delete"},
			{Action: "start", Min: 1, Max: -1, What: "the names of the containers to start"},
			{Action: "stop", Min: 1, Max: -1, What: "the names of the containers to stop"},
		},
	},
	{
		Mode:        modes.Job,
		Description: "List, monitor and control jobs.",
		Actions: []Flag{
			listAction,
			sw("log", "Print the messages of the job."),
			sw("wait", "Wait for the job to finish."),
			sw("follow", "Follow the messages of the job."),
			sw("kill", "Abort a running job."),
			sw("enable", "Enable a recurring job."),
			sw("disable", "Disable a recurring job."),
			sw("fail", "Create a job that fails."),
			sw("success", "Create a job that succeeds."),
			sw("clone", "Create a copy of the job and run it."),
			sw("delete", "Delete the job."),
		},
		Groups: [][]string{{"log", "wait", "follow"}},
		Options: flags(clusterRef, []Flag{
			opt("job-id", KindInt, "ID", "The ID of the job."),
			opt("from", KindString, "DATE&TIME", "The start of the interval."),
			opt("until", KindString, "DATE&TIME", "The end of the interval."),
			opt("limit", KindInt, "N", "Limit the number of jobs listed."),
			opt("offset", KindInt, "N", "Skip the first N jobs."),
			opt("job-tags", KindList, "LIST", "Tags to set or to filter for."),
			opt("schedule", KindString, "DATETIME", "Run the job at the specified time."),
			opt("recurrence", KindString, "CRONTAB", "Create a recurring job."),
			opt("timeout", KindInt, "SECONDS", "Timeout value for the job."),
			sw("show-aborted", "Show aborted jobs in the list."),
			sw("show-defined", "Show defined jobs in the list."),
			sw("show-finished", "Show finished jobs in the list."),
			sw("show-running", "Show running jobs in the list."),
			sw("show-scheduled", "Show scheduled jobs in the list."),
		}),
		Companions: []Companion{
			{Action: "clone", Requires: []string{"job-id"}},
			{Action: "delete", Requires: []string{"job-id"}},
			{Action: "kill", Requires: []string{"job-id"}},
			{Action: "enable", Requires: []string{"job-id"}},
			{Action: "disable", Requires: []string{"job-id"}},
			{Action: "log", Requires: []string{"job-id"}},
			{Action: "wait", Requires: []string{"job-id"}},
			{Action: "follow", Requires: []string{"job-id"}},
		},
	},
	{
		Mode:        modes.Backup,
		Description: "Create, restore and manage backups.",
		Actions: []Flag{
			listAction,
			sw("list-databases", "List the databases of the backups."),
			sw("list-files", "List the files of the backups."),
			sw("create", "Create a new backup."),
			sw("restore", "Restore an existing backup."),
			sw("delete", "Delete a backup."),
			sw("verify", "Verify a backup on a node."),
			sw("delete-old", "Delete backups older than the retention period."),
		},
		Options: flags(clusterRef, jobControl, []Flag{
			opt("backup-id", KindInt, "ID", "The ID of the backup."),
			opt("nodes", KindNodes, "NODELIST", "The node to take the backup from."),
			opt("backup-method", KindString, "METHOD", "The program used for the backup."),
			opt("backup-directory", KindString, "DIR", "The directory where the backup is placed."),
			opt("databases", KindList, "LIST", "The databases to back up."),
			opt("retention", KindInt, "DAYS", "How many days the backup is kept."),
			sw("use-pigz", "Use the pigz program to compress."),
			sw("on-controller", "Store the backup on the controller."),
			sw("encrypt-backup", "Encrypt the files of the backup."),
		}),
		Companions: []Companion{
			{Action: "restore", Requires: []string{"backup-id"}, AnyOf: anyCluster},
			{Action: "delete", Requires: []string{"backup-id"}},
			{Action: "verify", Requires: []string{"backup-id"}, AnyOf: anyCluster},
			{Action: "create", AnyOf: anyCluster},
		},
	},
	{
		Mode:        modes.Node,
		Description: "List and manage the nodes of the clusters.",
		Actions: []Flag{
			listAction,
			sw("stat", "Print the details of the nodes."),
			sw("set", "Set node properties."),
			sw("change-config", "Change a configuration value of a node."),
			sw("list-config", "Print the configuration of a node."),
			sw("pull-config", "Copy configuration files from a node."),
			sw("push-config", "Copy configuration files to a node."),
			sw("restart", "Restart the node."),
			sw("start", "Start the node."),
			sw("stop", "Stop the node."),
			sw("set-read-only", "Set the node into read-only mode."),
			sw("set-read-write", "Set the node into read-write mode."),
			sw("unregister", "Unregister the node from the cluster."),
			sw("enable-binary-logging", "Enable binary logging on the node."),
		},
		Options: flags(clusterRef, jobControl, []Flag{
			opt("nodes", KindNodes, "NODELIST", "The nodes to handle."),
			opt("properties", KindString, "ASSIGNMENTS", "Names and values of the properties to set."),
			opt("opt-group", KindString, "NAME", "The configuration option group."),
			opt("opt-name", KindString, "NAME", "The configuration option name."),
			opt("opt-value", KindString, "VALUE", "The configuration option value."),
			opt("input-file", KindString, "FILE", "The file to read."),
			opt("output-dir", KindString, "DIR", "The directory where the files are created."),
			sw("graph", "Print a graph of node statistics."),
			sw("force", "Force the operation."),
		}),
		Companions: []Companion{
			{Action: "set", Requires: []string{"nodes"}},
			{Action: "change-config", Requires: []string{"nodes", "opt-name"}},
			{Action: "pull-config", Requires: []string{"nodes", "output-dir"}},
			{Action: "push-config", Requires: []string{"nodes", "input-file"}},
			{Action: "restart", Requires: []string{"nodes"}},
			{Action: "start", Requires: []string{"nodes"}},
			{Action: "stop", Requires: []string{"nodes"}},
			{Action: "set-read-only", Requires: []string{"nodes"}},
			{Action: "set-read-write", Requires: []string{"nodes"}},
			{Action: "unregister", Requires: []string{"nodes"}},
			{Action: "enable-binary-logging", Requires: []string{"nodes"}},
		},
	},
	{
		Mode:        modes.Process,
		Description: "List the processes running on the nodes.",
		Actions: []Flag{
			listAction,
			sw("top", "Continuously print the top processes."),
			sw("list-digests", "List statement digests."),
		},
		Options: flags(clusterRef, []Flag{
			opt("update-freq", KindInt, "SECONDS", "The screen update frequency."),
			opt("limit", KindInt, "N", "Limit the number of processes listed."),
			opt("client", KindString, "PATTERN", "Filter for the client host."),
			opt("server", KindString, "PATTERN", "Filter for the server host."),
		}),
		Companions: []Companion{
			{Action: "top", AnyOf: anyCluster},
			{Action: "list-digests", AnyOf: anyCluster},
		},
	},
	{
		Mode:        modes.User,
		Description: "Create and manage Cmon users.",
		Actions: []Flag{
			listAction,
			sw("stat", "Print the details of users."),
			sw("whoami", "Print the authenticated user."),
			sw("create", "Create a new user."),
			sw("set", "Change the properties of a user."),
			sw("change-password", "Change the password of a user."),
			sw("delete", "Delete a user."),
			sw("enable", "Enable a disabled user."),
			sw("disable", "Disable a user."),
			sw("list-keys", "List the public keys of a user."),
			sw("add-key", "Register a public key for a user."),
			sw("set-group", "Set the primary group of a user."),
			sw("add-to-group", "Add the user to a group."),
			sw("remove-from-group", "Remove the user from a group."),
		},
		Options: []Flag{
			opt("group", KindString, "GROUPNAME", "The primary group of the user."),
			opt("first-name", KindString, "NAME", "The first name of the user."),
			opt("last-name", KindString, "NAME", "The last name of the user."),
			opt("email-address", KindString, "ADDRESS", "The email address of the user."),
			opt("title", KindString, "TITLE", "The title of the user."),
			opt("new-password", KindString, "PASSWORD", "The new password of the user."),
			opt("old-password", KindString, "PASSWORD", "The old password of the user."),
			opt("public-key-file", KindString, "FILE", "The file holding the public key."),
			opt("public-key-name", KindString, "NAME", "The name of the public key."),
			sw("create-group", "Create the group if it does not exist."),
			sw("generate-key", "Generate a key pair for the user."),
		},
		Companions: []Companion{
			{Action: "add-key", Requires: []string{"public-key-file"}},
			{Action: "set-group", Requires: []string{"group"}},
			{Action: "add-to-group", Requires: []string{"group"}},
			{Action: "remove-from-group", Requires: []string{"group"}},
			{Action: "change-password", Requires: []string{"new-password"}},
		},
		Operands: []Operand{
			{Action: "create", Min: 1, Max: 1, What: "exactly one user name"},
			{Action: "delete", Min: 1, Max: 1, What: "exactly one user name"},
			{Action: "enable", Min: 1, Max: 1, What: "exactly one user name"},
			{Action: "disable", Min: 1, Max: 1, What: "exactly one user name"},
		},
	},
	{
		Mode:        modes.Group,
		Description: "Create and manage Cmon user groups.",
		Actions: []Flag{
			listAction,
			sw("create", "Create a new group."),
			sw("delete", "Delete a group."),
		},
		Operands: []Operand{
			{Action: "create", Min: 1, Max: 1, What: "exactly one group name"},
			{Action: "delete", Min: 1, Max: 1, What: "exactly one group name"},
		},
	},
	{
		Mode:        modes.Account,
		Description: "Create and manage database accounts.",
		Actions: []Flag{
			listAction,
			sw("create", "Create a new database account."),
			sw("delete", "Delete a database account."),
			sw("grant", "Grant privileges to an account."),
			sw("revoke", "Revoke privileges from an account."),
		},
		Options: flags(clusterRef, []Flag{
			opt("account", KindAccount, "NAME[:PASSWD][@HOST]", "The account to handle."),
			opt("privileges", KindString, "PRIVILEGES", "The privileges to grant or revoke."),
			opt("limit", KindInt, "N", "Limit the number of accounts listed."),
			opt("offset", KindInt, "N", "Skip the first N accounts."),
			sw("with-database", "Create a database for the new account."),
			sw("private", "Make the account private."),
		}),
		Companions: []Companion{
			{Action: "create", Requires: []string{"account"}, AnyOf: anyCluster},
			{Action: "delete", Requires: []string{"account"}, AnyOf: anyCluster},
			{Action: "grant", Requires: []string{"account", "privileges"}, AnyOf: anyCluster},
			{Action: "revoke", Requires: []string{"account", "privileges"}, AnyOf: anyCluster},
		},
	},
	{
		Mode:        modes.Maintenance,
		Description: "Schedule and list maintenance periods.",
		Actions: []Flag{
			listAction,
			sw("current", "Print the active maintenance period."),
			sw("next", "Print the next maintenance period."),
			sw("create", "Create a new maintenance period."),
			sw("create-with-job", "Create a maintenance period through a job."),
			sw("delete", "Delete a maintenance period."),
		},
		Options: flags(clusterRef, []Flag{
			opt("nodes", KindNodes, "NODELIST", "The nodes under maintenance."),
			opt("begin", KindString, "DATE&TIME", "The start of the maintenance."),
			opt("end", KindString, "DATE&TIME", "The end of the maintenance."),
			opt("reason", KindString, "STRING", "The reason of the maintenance."),
			opt("uuid", KindString, "UUID", "The ID of the maintenance period."),
			opt("start", KindString, "DATE&TIME", "Only periods after this date."),
		}),
		Companions: []Companion{
			{Action: "delete", Requires: []string{"uuid"}},
			{Action: "create", Requires: []string{"begin", "end"}},
			{Action: "create-with-job", Requires: []string{"begin", "end"}},
		},
	},
	{
		Mode:        modes.MetaType,
		Description: "Print metatype information.",
		Actions: []Flag{
			listAction,
			sw("list-properties", "List the properties of a type."),
			sw("list-cluster-types", "List the supported cluster types."),
		},
		Operands: []Operand{
			{Action: "list-properties", Min: 1, Max: 1, What: "exactly one type name"},
		},
	},
	{
		Mode:        modes.Script,
		Description: "Execute and manage JavaScript programs.",
		Actions: []Flag{
			sw("tree", "Print the scripts on the controller."),
			sw("execute", "Execute a local script on the controller."),
			sw("run", "Run a script stored on the controller as a job."),
			sw("system", "Execute a shell command on the nodes."),
		},
		Options: flags(clusterRef, jobControl, []Flag{
			opt("nodes", KindNodes, "NODELIST", "The nodes the command runs on."),
			opt("shell-command", KindString, "COMMAND", "The shell command to execute."),
		}),
		Companions: []Companion{
			{Action: "execute", AnyOf: anyCluster},
			{Action: "run", AnyOf: anyCluster},
			{Action: "system", AnyOf: anyCluster},
		},
		Operands: []Operand{
			{Action: "execute", Min: 1, Max: -1, What: "the names of the files to execute"},
			{Action: "run", Min: 1, Max: 1, What: "the name of the script to run"},
		},
	},
	{
		Mode:        modes.Sheet,
		Description: "List and manage spreadsheets.",
		Actions: []Flag{
			listAction,
			sw("stat", "Print the details of a spreadsheet."),
			sw("create", "Create a new spreadsheet."),
			sw("edit", "Edit a spreadsheet."),
		},
		Options: clusterRef,
		Operands: []Operand{
			{Action: "stat", Min: 1, Max: 1, What: "exactly one spreadsheet name"},
			{Action: "create", Min: 1, Max: 1, What: "exactly one spreadsheet name"},
			{Action: "edit", Min: 1, Max: 1, What: "exactly one spreadsheet name"},
		},
	},
	{
		Mode:        modes.Server,
		Description: "Register and manage container servers.",
		Actions: []Flag{
			listAction,
			sw("stat", "Print the details of the servers."),
			sw("create", "Install and register a new server."),
			sw("register", "Register an existing server."),
			sw("unregister", "Unregister a server."),
			sw("list-disks", "List the disks of the servers."),
			sw("list-images", "List the images of the servers."),
			sw("list-memory", "List the memory modules of the servers."),
			sw("list-nics", "List the network interfaces of the servers."),
			sw("list-partitions", "List the partitions of the servers."),
			sw("list-processors", "List the processors of the servers."),
			sw("list-regions", "List the regions of the servers."),
			sw("list-subnets", "List the subnets of the servers."),
			sw("list-templates", "List the templates of the servers."),
			sw("get-acl", "Print the access list of a server."),
			sw("add-acl", "Add an entry to the access list of a server."),
			sw("start", "Boot up a server."),
			sw("stop", "Shut down a server."),
		},
		Options: flags(jobControl, []Flag{
			opt("servers", KindServers, "LIST", "The servers to handle."),
			opt("acl", KindString, "ACLSTRING", "The access list entry."),
			opt("region", KindString, "NAME", "The region to filter for."),
		}),
		Companions: []Companion{
			{Action: "create", Requires: []string{"servers"}},
			{Action: "register", Requires: []string{"servers"}},
			{Action: "unregister", Requires: []string{"servers"}},
			{Action: "start", Requires: []string{"servers"}},
			{Action: "stop", Requires: []string{"servers"}},
			{Action: "add-acl", Requires: []string{"acl"}},
		},
	},
	{
		Mode:        modes.Controller,
		Description: "Inspect and manage the Cmon controllers.",
		Actions: []Flag{
			listAction,
			sw("stat", "Print the details of the controllers."),
			sw("ping", "Check the connection to the controller."),
			sw("enable-cmon-ha", "Enable Cmon high availability."),
			sw("create-snapshot", "Save a snapshot of the controller state."),
			sw("get-ldap-config", "Print the LDAP configuration."),
		},
		Options: jobControl,
	},
	{
		Mode:        modes.Tree,
		Description: "Browse and manage the Cmon object tree.",
		Actions: []Flag{
			listAction,
			sw("tree", "Print the object tree."),
			sw("access", "Check the access rights of a path."),
			sw("add-acl", "Add an access list entry."),
			sw("remove-acl", "Remove an access list entry."),
			sw("get-acl", "Print the access list of an object."),
			sw("chown", "Change the owner of an object."),
			sw("mkdir", "Create a folder."),
			sw("rmdir", "Remove a folder."),
			sw("touch", "Create an empty file."),
			sw("delete", "Delete an object."),
			sw("move", "Move an object."),
			sw("cat", "Print the content of a file."),
			sw("save", "Save the object tree into a file."),
			sw("restore", "Restore the object tree from a file."),
		},
		Options: []Flag{
			opt("acl", KindString, "ACLSTRING", "The access list entry."),
			opt("owner", KindString, "USER[:GROUP]", "The new owner of the object."),
			opt("privileges", KindString, "PRIVILEGES", "The privileges to check."),
			sw("recursive", "Apply the change recursively."),
			sw("all", "Print hidden objects too."),
			sw("directory", "List the folder itself, not its content."),
		},
		Companions: []Companion{
			{Action: "add-acl", Requires: []string{"acl"}},
			{Action: "remove-acl", Requires: []string{"acl"}},
			{Action: "chown", Requires: []string{"owner"}},
			{Action: "access", Requires: []string{"privileges"}},
		},
		Operands: []Operand{
			{Action: "list", Min: 0, Max: 1, What: "at most one path"},
			{Action: "tree", Min: 0, Max: 1, What: "at most one path"},
			{Action: "access", Min: 1, Max: 1, What: "exactly one path"},
			{Action: "add-acl", Min: 1, Max: 1, What: "exactly one path"},
			{Action: "remove-acl", Min: 1, Max: 1, What: "exactly one path"},
			{Action: "get-acl", Min: 1, Max: 1, What: "exactly one path"},
			{Action: "chown", Min: 1, Max: 1, What: "exactly one path"},
			{Action: "mkdir", Min: 1, Max: 1, What: "exactly one path"},
			{Action: "rmdir", Min: 1, Max: 1, What: "exactly one path"},
			{Action: "touch", Min: 1, Max: 1, What: "exactly one path"},
			{Action: "delete", Min: 1, Max: 1, What: "exactly one path"},
			{Action: "move", Min: 2, Max: 2, What: "a source and a target path"},
			{Action: "cat", Min: 1, Max: 1, What: "exactly one path"},
			{Action: "save", Min: 1, Max: 1, What: "exactly one file name"},
			{Action: "restore", Min: 1, Max: 1, What: "exactly one file name"},
		},
	},
	{
		Mode:        modes.Log,
		Description: "Print the controller log.",
		Actions: []Flag{
			listAction,
			sw("stat", "Print log statistics."),
		},
		Options: flags(clusterRef, []Flag{
			opt("from", KindString, "DATE&TIME", "The start of the interval."),
			opt("until", KindString, "DATE&TIME", "The end of the interval."),
			opt("limit", KindInt, "N", "Limit the number of entries."),
			opt("offset", KindInt, "N", "Skip the first N entries."),
			opt("log-format", KindString, "FORMAT", "The format of the log lines."),
		}),
	},
	{
		Mode:        modes.Event,
		Description: "Print the events of the controller.",
		Actions: []Flag{
			listAction,
			sw("watch", "Print the events as they arrive."),
		},
		Options: flags(clusterRef, []Flag{
			opt("input-file", KindString, "FILE", "Read the events from a file."),
			opt("output-file", KindString, "FILE", "Save the events into a file."),
			opt("with-event-job", KindString, "NAME", "Only print job events."),
			opt("with-event-host", KindString, "NAME", "Only print host events."),
			opt("with-event-alarm", KindString, "NAME", "Only print alarm events."),
		}),
	},
	{
		Mode:        modes.Alarm,
		Description: "List and handle alarms.",
		Actions: []Flag{
			listAction,
			sw("stat", "Print alarm statistics."),
			sw("ignore", "Ignore an alarm."),
		},
		Options: flags(clusterRef, []Flag{
			opt("alarm-id", KindInt, "ID", "The ID of the alarm."),
		}),
		Companions: []Companion{
			{Action: "ignore", Requires: []string{"alarm-id"}},
		},
	},
	{
		Mode:        modes.Report,
		Description: "Create and list operational reports.",
		Actions: []Flag{
			listAction,
			sw("cat", "Print a report."),
			sw("create", "Create a new report."),
			sw("delete", "Delete a report."),
			sw("list-templates", "List the report templates."),
		},
		Options: flags(clusterRef, []Flag{
			opt("report-id", KindInt, "ID", "The ID of the report."),
			opt("type", KindString, "TYPE", "The type of the report."),
		}),
		Companions: []Companion{
			{Action: "cat", Requires: []string{"report-id"}},
			{Action: "delete", Requires: []string{"report-id"}},
			{Action: "create", Requires: []string{"type"}, AnyOf: anyCluster},
		},
	},
	{
		Mode:        modes.Replication,
		Description: "Manage database replication.",
		Actions: []Flag{
			listAction,
			sw("promote", "Promote a slave to become a master."),
			sw("failover", "Take over a failed master."),
			sw("stop", "Stop a slave."),
			sw("start", "Start a slave."),
		},
		Options: flags(clusterRef, jobControl, []Flag{
			opt("master", KindMaster, "NODE", "The replication master."),
			opt("slave", KindSlave, "NODE", "The replication slave."),
			opt("link", KindString, "LINK", "The replication link."),
		}),
		Companions: []Companion{
			{Action: "promote", Requires: []string{"slave"}, AnyOf: anyCluster},
			{Action: "failover", Requires: []string{"slave"}, AnyOf: anyCluster},
			{Action: "stop", Requires: []string{"slave"}, AnyOf: anyCluster},
			{Action: "start", Requires: []string{"slave"}, AnyOf: anyCluster},
		},
	},
	{
		Mode:        modes.DbSchema,
		Description: "Print database schema information.",
		Actions: []Flag{
			listAction,
			sw("describe", "Describe the tables of a database."),
		},
		Options: flags(clusterRef, []Flag{
			opt("db-name", KindString, "NAME", "The name of the database."),
		}),
		Companions: []Companion{
			{Action: "describe", Requires: []string{"db-name"}, AnyOf: anyCluster},
		},
	},
	{
		Mode:        modes.DbVersions,
		Description: "Print the database versions the controller can install.",
		Actions: []Flag{
			sw("list-versions", "List the available versions."),
			sw("list-3d", "List vendor, version and cluster type combinations."),
		},
		Options: []Flag{
			opt("cluster-type", KindString, "TYPE", "The cluster type."),
			opt("vendor", KindString, "VENDOR", "The software vendor."),
		},
		Companions: []Companion{
			{Action: "list-versions", Requires: []string{"cluster-type"}},
		},
	},
	{
		Mode:        modes.CloudCredentials,
		Description: "Manage cloud provider credentials.",
		Actions: []Flag{
			listAction,
			sw("create", "Store new credentials."),
			sw("delete", "Delete credentials."),
		},
		Options: []Flag{
			opt("cloud", KindString, "PROVIDER", "The cloud provider."),
			opt("credentials-name", KindString, "NAME", "The name of the credentials."),
			opt("credentials-id", KindInt, "ID", "The ID of the credentials."),
			opt("region", KindString, "NAME", "The region of the cloud."),
			opt("s3-access-key-id", KindString, "KEY", "The access key ID."),
			opt("s3-secret-access-key", KindString, "KEY", "The secret access key."),
		},
		Companions: []Companion{
			{Action: "create", Requires: []string{"cloud", "credentials-name"}},
			{Action: "delete", Requires: []string{"cloud", "credentials-id"}},
		},
	},
}
