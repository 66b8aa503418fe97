package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"contactbook/cmd/contactbook/ui"
	"contactbook/internal/config"
	"contactbook/internal/contacts"
	"contactbook/internal/logging"
	"contactbook/internal/store"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listHeaders = []string{"Name", "Surname", "Phone Number"}

func (o *rootOptions) run(cmd *cobra.Command, command Command) error {
	return execute(cmd.Context(), o.cfg.Store, o.logger, command, cmd.OutOrStdout())
}

// execute initializes the store file if missing and runs command, writing
// every outcome (including store failures) to out. It never fails the
// process: store and file errors are reported, not returned.
func execute(ctx context.Context, storeCfg config.StoreConfig, logger *zap.Logger, command Command, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logging.Named(logger, logging.CategoryCLI).Debug("command selected", zap.Stringer("command", command.Kind))

	accessor := store.NewAccessor(storeCfg, logger)
	if !accessor.Exists() {
		if err := accessor.InitSchema(ctx); err != nil {
			fmt.Fprintln(out, err)
		}
	}

	book := contacts.NewBook(accessor, logger)
	switch command.Kind {
	case CommandAdd:
		fmt.Fprintln(out, book.Add(ctx, command.Contact).Message())
	case CommandDelete:
		fmt.Fprintln(out, book.Delete(ctx, command.Contact).Message())
	case CommandExport:
		fmt.Fprintln(out, book.Export(ctx, command.Path).Message())
	case CommandList:
		list, res := book.List(ctx)
		if res.Failed() {
			fmt.Fprintln(out, res.Message())
			return nil
		}
		fmt.Fprint(out, renderContacts(list, tableStyles(out)))
	}
	return nil
}

func renderContacts(list []contacts.Contact, styles ui.Styles) string {
	table := ui.NewSimpleTable(listHeaders...)
	for _, c := range list {
		table.AddRow(c.Row()...)
	}
	return table.View(styles)
}

// tableStyles styles the table only when out is an interactive terminal.
func tableStyles(out io.Writer) ui.Styles {
	if f, ok := out.(*os.File); ok && isTerminal(f.Fd()) {
		return ui.TerminalStyles()
	}
	return ui.DefaultStyles()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
