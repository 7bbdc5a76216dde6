package grammar

// GlobalFlags are accepted in every mode.
var GlobalFlags = []Flag{
	{Name: "help", Short: "h", Usage: "Show help for the mode."},
	{Name: "version", Short: "V", Usage: "Print version information and exit."},
	{Name: "verbose", Short: "v", Usage: "Print more messages than normally."},
	{Name: "debug", Usage: "Print debug messages."},
	{Name: "controller", Short: "c", Kind: KindString, Arg: "URL", Usage: "The URL where the controller is found."},
	{Name: "controller-port", Short: "P", Kind: KindInt, Arg: "INT", Usage: "The port where the controller is found."},
	{Name: "rpc-tls", Usage: "Use TLS encryption to controller."},
	{Name: "cmon-user", Short: "u", Kind: KindString, Arg: "USERNAME", Usage: "The name of the Cmon user."},
	{Name: "password", Short: "p", Kind: KindString, Arg: "PASSWORD", Usage: "The password for the Cmon user."},
	{Name: "private-key-file", Kind: KindString, Arg: "FILE", Usage: "The name of the file for authentication."},
	{Name: "config-file", Kind: KindString, Arg: "PATH", Usage: "Set the configuration file."},
	{Name: "color", Kind: KindString, Arg: "always|auto|never", Usage: "Sets if colors should be used in the output."},
	{Name: "print-json", Usage: "Print the sent/received JSON messages."},
	{Name: "print-request", Usage: "Print the sent request."},
	{Name: "only-ascii", Usage: "Do not use UTF8 characters."},
	{Name: "batch", Usage: "No colors, no human readable, pure data."},
	{Name: "no-header", Usage: "Do not print headers."},
	{Name: "long", Short: "l", Usage: "Print the detailed list."},
	{Name: "date-format", Kind: KindString, Arg: "FORMAT", Usage: "The format of the dates printed."},
	{Name: "full-path", Usage: "Print the full path of the objects."},
	{Name: "connection-timeout", Kind: KindInt, Arg: "SECONDS", Usage: "Timeout value for the controller connection."},
}

// ColorModes are the accepted --color arguments.
var ColorModes = []string{"always", "auto", "never"}

// PreScanConfigFile finds --config-file in raw arguments so the
// configuration can be loaded before the mode grammar runs. Both
// "--config-file=PATH" and "--config-file PATH" are recognised.
func PreScanConfigFile(args []string) string {
	const name = "--config-file"
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
		if len(arg) > len(name) && arg[:len(name)+1] == name+"=" {
			return arg[len(name)+1:]
		}
	}
	return ""
}

// HasHelpRequest reports whether raw arguments ask for help.
func HasHelpRequest(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
