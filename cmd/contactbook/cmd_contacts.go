package main

import (
	"contactbook/internal/contacts"

	"github.com/spf13/cobra"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name] [surname] [phone]",
		Short: "Add a new contact",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, Command{Kind: CommandAdd, Contact: contacts.New(args[0], args[1], args[2])})
		},
	}
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete [name] [surname] [phone]",
		Aliases: []string{"dl"},
		Short:   "Delete every contact matching the triple exactly",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, Command{Kind: CommandDelete, Contact: contacts.New(args[0], args[1], args[2])})
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, Command{Kind: CommandList})
		},
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Append all contacts as vCard 2.1 records to a file",
		Long: `Appends one vCard 2.1 record per contact to the target file.
The file is never truncated, so repeated exports accumulate records.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfg.Export.VCardPath
			if len(args) == 1 && args[0] != "" {
				path = args[0]
			}
			return opts.run(cmd, Command{Kind: CommandExport, Path: path})
		},
	}
}
