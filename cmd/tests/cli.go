package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CommandArgs holds "name -key value ..." style arguments.
type CommandArgs struct {
	commandName string
	params      map[string]string
}

func NewCommandArgs(args []string) *CommandArgs {
	var result = &CommandArgs{params: make(map[string]string)}
	for i := 0; i < len(args); i++ {
		var arg = args[i]
		if strings.HasPrefix(arg, "-") {
			if i+1 < len(args) {
				result.params[strings.TrimPrefix(arg, "-")] = args[i+1]
				i++
			}
		} else if result.commandName == "" {
			result.commandName = arg
		}
	}
	return result
}

func (ca *CommandArgs) CommandName() string {
	return ca.commandName
}

func (ca *CommandArgs) GetString(name string, defaultVal string) string {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal
	}
	return val
}

func (ca *CommandArgs) GetInt(name string, defaultVal int) (int, error) {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal, nil
	}
	var v, err = strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("bad value of -%v: %w", name, err)
	}
	return v, nil
}

type CommandHandler struct {
	items map[string]func(args *CommandArgs) error
}

func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		items: make(map[string]func(args *CommandArgs) error),
	}
}

func (ch *CommandHandler) Add(name string, handler func(args *CommandArgs) error) {
	ch.items[name] = handler
}

func (ch *CommandHandler) Execute(args *CommandArgs) error {
	var handler, found = ch.items[args.CommandName()]
	if !found {
		var names = make([]string, 0, len(ch.items))
		for name := range ch.items {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("command not found %q, expected one of %v", args.CommandName(), names)
	}
	return handler(args)
}
