package nodes

import (
	"fmt"
	"strings"
)

// Account is a database account given as user[:password][@host].
type Account struct {
	UserName  string
	Password  string
	HostAllow string
}

// ParseAccount parses an --account argument. The host part defaults to '%'
// which lets the account connect from anywhere.
func ParseAccount(text string) (Account, error) {
	var account Account

	text = strings.TrimSpace(text)
	if text == "" {
		return account, fmt.Errorf("empty account specification")
	}

	credentials := text
	if idx := strings.LastIndexByte(text, '@'); idx >= 0 {
		credentials = text[:idx]
		account.HostAllow = text[idx+1:]
		if account.HostAllow == "" {
			return account, fmt.Errorf("account '%s': missing host after '@'", text)
		}
	} else {
		account.HostAllow = "%"
	}

	user, password, _ := strings.Cut(credentials, ":")
	if user == "" {
		return account, fmt.Errorf("account '%s': missing user name", text)
	}
	account.UserName = user
	account.Password = password
	return account, nil
}

// Container is one entry of a --containers list: an alias with optional
// properties, as in "web1?template=ubuntu".
type Container struct {
	Alias      string
	Properties map[string]string
}

// ParseContainerList parses a ';' or ',' separated container list.
func ParseContainerList(text string) ([]Container, error) {
	var list []Container

	for _, item := range splitList(text) {
		alias, query, _ := strings.Cut(item, "?")
		if alias == "" {
			return nil, fmt.Errorf("container '%s': missing name", item)
		}
		props, err := parseProperties(query)
		if err != nil {
			return nil, fmt.Errorf("container '%s': %w", item, err)
		}
		list = append(list, Container{Alias: alias, Properties: props})
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("the container list is empty")
	}
	return list, nil
}
