package main

import "contactbook/internal/contacts"

// CommandKind enumerates the operations one invocation can run.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandAdd
	CommandDelete
	CommandExport
	CommandList
)

func (k CommandKind) String() string {
	switch k {
	case CommandAdd:
		return "add"
	case CommandDelete:
		return "delete"
	case CommandExport:
		return "export"
	case CommandList:
		return "list"
	default:
		return "none"
	}
}

// Command is the single operation selected for this run.
type Command struct {
	Kind    CommandKind
	Contact contacts.Contact // add, delete
	Path    string           // export
}

// vcardFromConfig is the value --vcard takes when given without a path. It
// resolves to the configured export path.
const vcardFromConfig = "(export.vcard_path)"

// flagSelection is what the root command's flags captured.
type flagSelection struct {
	Add      []string
	Delete   []string
	VCard    string
	VCardSet bool
	List     bool

	// DefaultVCard replaces a bare or empty --vcard.
	DefaultVCard string
}

// selectCommand picks exactly one command with fixed precedence:
// add, delete, export, list. --add and --dl only qualify with exactly three
// values; otherwise they are skipped without a message.
func selectCommand(s flagSelection) Command {
	if c, ok := contacts.FromFields(s.Add); ok {
		return Command{Kind: CommandAdd, Contact: c}
	}
	if c, ok := contacts.FromFields(s.Delete); ok {
		return Command{Kind: CommandDelete, Contact: c}
	}
	if s.VCardSet {
		path := s.VCard
		if path == "" || path == vcardFromConfig {
			path = s.DefaultVCard
		}
		return Command{Kind: CommandExport, Path: path}
	}
	if s.List {
		return Command{Kind: CommandList}
	}
	return Command{Kind: CommandNone}
}
