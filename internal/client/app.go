// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/promptdock/promptdock/internal/adapter"
	"github.com/promptdock/promptdock/internal/logger"
	"github.com/promptdock/promptdock/models"
)

// App is the one-shot CLI client. Each invocation runs a single command
// against the companion server and exits.
type App struct {
	server adapter.ServerAdapter
	logger *logger.Logger

	out io.Writer
}

func NewApp(server adapter.ServerAdapter, logger *logger.Logger) *App {
	return &App{
		server: server,
		logger: logger,
		out:    os.Stdout,
	}
}

// Run implements [Client]. args holds the command name followed by its
// arguments, e.g. ["export", "chat.example.com"].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]

	switch command {
	case "export":
		return a.export(ctx, rest)
	case "preview":
		return a.preview(ctx, rest)
	case "import":
		return a.importCode(ctx, rest)
	case "list":
		return a.list(ctx)
	case "remove":
		return a.remove(ctx, rest)
	case "backup":
		return a.backup(ctx, rest)
	case "restore":
		return a.restore(ctx, rest)
	case "backups":
		return a.backups(ctx)
	case "version":
		return a.version(ctx)
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *App) usage() {
	fmt.Fprint(a.out, `Usage: promptdock-client [flags] <command> [args]

Commands:
  export <hostname>             encode the stored configuration into a shareable code
  preview [code]                decode a code and show the configuration (code from clipboard if omitted)
  import [-overwrite] [code]    decode, validate and persist a code (code from clipboard if omitted)
  list                          list stored site configurations
  remove <hostname>             delete a stored configuration
  backup -password <pw> [-label <name>] <file>   encrypt a file into a backup payload
  restore -password <pw> <payload-file>          decrypt a backup payload file
  backups                       list stored backup records
  version                       show server build info
`)
}

func (a *App) export(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: hostname", ErrMissingArg)
	}

	found, err := a.server.GetConfig(ctx, args[0])
	if err != nil {
		return fmt.Errorf("fetch configuration: %w", err)
	}

	encoded, err := a.server.EncodeConfig(ctx, found.Config)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}

	a.printWarnings(encoded.Warnings)
	fmt.Fprintln(a.out, encoded.Code)

	if err := clipboard.WriteAll(encoded.Code); err != nil {
		a.logger.Warn().Err(err).Msg("clipboard unavailable")
	} else {
		fmt.Fprintln(a.out, "configuration code copied to clipboard")
	}

	return nil
}

func (a *App) preview(ctx context.Context, args []string) error {
	code, err := a.codeFromArgsOrClipboard(args)
	if err != nil {
		return err
	}

	decoded, err := a.server.DecodeConfig(ctx, code)
	if err != nil {
		return fmt.Errorf("decode configuration code: %w", err)
	}

	a.printWarnings(decoded.Warnings)
	return a.printJSON(decoded.Config)
}

func (a *App) importCode(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("import", flag.ContinueOnError)
	overwrite := flags.Bool("overwrite", false, "replace an existing configuration for the same hostname")
	if err := flags.Parse(args); err != nil {
		return err
	}

	code, err := a.codeFromArgsOrClipboard(flags.Args())
	if err != nil {
		return err
	}

	imported, err := a.server.ImportConfig(ctx, code, *overwrite)
	if err != nil {
		return fmt.Errorf("import configuration code: %w", err)
	}

	a.printWarnings(imported.Warnings)
	if imported.Replaced {
		fmt.Fprintf(a.out, "replaced configuration for %s\n", imported.Config.Hostname)
	} else {
		fmt.Fprintf(a.out, "imported configuration for %s\n", imported.Config.Hostname)
	}

	return nil
}

func (a *App) list(ctx context.Context) error {
	configs, err := a.server.ListConfigs(ctx)
	if err != nil {
		return fmt.Errorf("list configurations: %w", err)
	}

	if len(configs) == 0 {
		fmt.Fprintln(a.out, "no stored configurations")
		return nil
	}

	for _, cfg := range configs {
		selector := ""
		if cfg.Positioning != nil {
			selector = cfg.Positioning.Selector
		}
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", cfg.Hostname, cfg.DisplayName, selector)
	}

	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: hostname", ErrMissingArg)
	}

	if err := a.server.DeleteConfig(ctx, args[0]); err != nil {
		return fmt.Errorf("delete configuration: %w", err)
	}

	fmt.Fprintf(a.out, "removed configuration for %s\n", args[0])
	return nil
}

func (a *App) backup(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("backup", flag.ContinueOnError)
	password := flags.String("password", "", "password to derive the encryption key from")
	label := flags.String("label", "", "optional name for the stored backup record")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() < 1 {
		return fmt.Errorf("%w: file", ErrMissingArg)
	}

	plaintext, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("read backup source: %w", err)
	}

	payload, err := a.server.EncryptBackup(ctx, string(plaintext), *password, *label)
	if err != nil {
		return fmt.Errorf("encrypt backup: %w", err)
	}

	return a.printJSON(payload)
}

func (a *App) restore(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("restore", flag.ContinueOnError)
	password := flags.String("password", "", "password the backup was encrypted under")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() < 1 {
		return fmt.Errorf("%w: payload-file", ErrMissingArg)
	}

	raw, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("read backup payload: %w", err)
	}

	var payload models.EncryptedPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("parse backup payload: %w", err)
	}

	plaintext, err := a.server.DecryptBackup(ctx, payload, *password)
	if err != nil {
		return fmt.Errorf("decrypt backup: %w", err)
	}

	fmt.Fprintln(a.out, plaintext)
	return nil
}

func (a *App) backups(ctx context.Context) error {
	records, err := a.server.ListBackups(ctx)
	if err != nil {
		return fmt.Errorf("list backups: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "no stored backups")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", rec.ID, rec.Label, rec.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

func (a *App) version(ctx context.Context) error {
	info, err := a.server.ServerVersion(ctx)
	if err != nil {
		return fmt.Errorf("fetch server version: %w", err)
	}

	fmt.Fprintf(a.out, "Server version: %s\n", info["version"])
	fmt.Fprintf(a.out, "Build date: %s\n", info["date"])
	fmt.Fprintf(a.out, "Build commit: %s\n", info["commit"])
	return nil
}

// codeFromArgsOrClipboard returns the configuration code from the first
// positional argument, falling back to the system clipboard when none is
// given.
func (a *App) codeFromArgsOrClipboard(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}

	code, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: code (clipboard unavailable: %v)", ErrMissingArg, err)
	}
	if strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("%w: code (clipboard is empty)", ErrMissingArg)
	}

	return code, nil
}

func (a *App) printWarnings(warnings []models.SecurityWarning) {
	for _, w := range warnings {
		fmt.Fprintf(a.out, "warning [%s]: %s\n", w.Severity, w.Message)
	}
}

func (a *App) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	fmt.Fprintln(a.out, string(data))
	return nil
}
