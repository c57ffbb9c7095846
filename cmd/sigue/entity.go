package main

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/noah-isme/sigue-client/internal/access"
	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/screen"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
	"github.com/noah-isme/sigue-client/pkg/export"
)

// entityDef binds one screen to its command group.
type entityDef[T any, P any] struct {
	entity   access.Entity
	build    func(screen.Deps) *screen.Controller[T, P]
	table    func([]T) export.Dataset
	detail   func(T) (export.Dataset, bool)
	byCareer bool
}

type editFlags struct {
	sets  []string
	picks []string
}

func (f *editFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "set a text field, field=value (repeatable)")
	cmd.Flags().StringArrayVar(&f.picks, "pick", nil, "pick a list value, field=value (repeatable, replaces the list)")
}

func entityCmd[T any, P any](r *root, def entityDef[T, P]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(def.entity),
		Short: "Manage " + def.entity.Title(),
	}
	cmd.AddCommand(
		listCmd(r, def),
		getCmd(r, def),
		meCmd(r, def),
		saveCmd(r, def),
		deleteCmd(r, def),
		optionsCmd(r, def),
	)
	return cmd
}

func listCmd[T any, P any](r *root, def entityDef[T, P]) *cobra.Command {
	var (
		careerID   int64
		exportPath string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + def.entity.Title(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, nil, func(ctx context.Context, a *app) error {
				c := def.build(a.deps)
				if careerID > 0 {
					query := url.Values{}
					query.Set("careerId", strconv.FormatInt(careerID, 10))
					c.Filter(query)
				}
				if err := c.Load(ctx); err != nil {
					return err
				}
				rows := c.Rows()
				data := def.table(rows)
				if exportPath == "" {
					return printTable(cmd.OutOrStdout(), data)
				}
				path, err := export.Save(a.exports, exportPath, data, def.entity.Title())
				if err != nil {
					return err
				}
				printNotice(cmd.OutOrStdout(), screen.Success(fmt.Sprintf("exported %d %s to %s", len(rows), def.entity, path)))
				return nil
			})
		},
	}
	if def.byCareer {
		cmd.Flags().Int64Var(&careerID, "career", 0, "only list records of this career id")
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "write the list to a .csv or .pdf file under EXPORT_DIR instead of printing it")
	return cmd
}

func getCmd[T any, P any](r *root, def entityDef[T, P]) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one record of " + def.entity.Title(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return r.run(cmd, nil, func(ctx context.Context, a *app) error {
				c := def.build(a.deps)
				if err := c.Select(ctx, id); err != nil {
					return err
				}
				return printRecord(cmd, def, c)
			})
		},
	}
}

func meCmd[T any, P any](r *root, def entityDef[T, P]) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show your own " + def.entity.Title() + " record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, nil, func(ctx context.Context, a *app) error {
				c := def.build(a.deps)
				if err := c.LoadSelf(ctx); err != nil {
					return err
				}
				return printRecord(cmd, def, c)
			})
		},
	}
}

func saveCmd[T any, P any](r *root, def entityDef[T, P]) *cobra.Command {
	var (
		id    int64
		edits editFlags
	)
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update a record of " + def.entity.Title(),
		Long: "save creates a record from the given fields, or updates the record named by --id. " +
			"Self-service accounts update their own record without --id.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, nil, func(ctx context.Context, a *app) error {
				c := def.build(a.deps)
				if err := prepare(ctx, c, id); err != nil {
					return err
				}
				in, err := applyEdits(c.Input(), edits.sets, edits.picks)
				if err != nil {
					return err
				}
				c.SetInput(in)
				saved, err := c.Save(ctx)
				if err != nil {
					return err
				}
				savedID, _ := c.Identity().ID()
				printNotice(cmd.OutOrStdout(), screen.Success(fmt.Sprintf("saved %s #%d", def.entity, savedID)))
				return printJSON(cmd.OutOrStdout(), saved)
			})
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "id of the record to update")
	edits.register(cmd)
	return cmd
}

func deleteCmd[T any, P any](r *root, def entityDef[T, P]) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record of " + def.entity.Title(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var confirm screen.Confirmer
			if yes {
				confirm = screen.ConfirmFunc(func(string) bool { return true })
			}
			return r.run(cmd, confirm, func(ctx context.Context, a *app) error {
				c := def.build(a.deps)
				if err := c.Select(ctx, id); err != nil {
					return err
				}
				if err := c.Delete(ctx); err != nil {
					return err
				}
				printNotice(cmd.OutOrStdout(), screen.Success(fmt.Sprintf("deleted %s #%d", def.entity, id)))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func optionsCmd[T any, P any](r *root, def entityDef[T, P]) *cobra.Command {
	var (
		id    int64
		edits editFlags
	)
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the choices available for the " + def.entity.Title() + " form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, nil, func(ctx context.Context, a *app) error {
				c := def.build(a.deps)
				if id > 0 {
					if err := c.Select(ctx, id); err != nil {
						return err
					}
				} else if c.Capabilities().SelfService {
					if err := c.LoadSelf(ctx); err != nil {
						return err
					}
				}
				in, err := applyEdits(c.Input(), edits.sets, edits.picks)
				if err != nil {
					return err
				}
				choices, err := screen.LoadChoices(ctx, a.catalog, def.entity, c.Capabilities(), in)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fields := make([]string, 0, len(choices.Options))
				for field := range choices.Options {
					fields = append(fields, field)
				}
				sort.Strings(fields)
				for _, field := range fields {
					fmt.Fprintf(out, "%s:\n", field)
					for _, option := range choices.Options[field] {
						fmt.Fprintf(out, "  %s\n", option)
					}
				}
				if before, after := in.Text(form.FieldSubjectID), choices.Input.Text(form.FieldSubjectID); before != after {
					printNotice(out, screen.Notice{
						Severity: screen.SeverityInfo,
						Title:    "Note",
						Message:  fmt.Sprintf("%s %q is not offered for this career and was cleared", form.FieldSubjectID, before),
					})
				}
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "load the record with this id first")
	edits.register(cmd)
	return cmd
}

// prepare readies the form for a save: administrators load the list for the
// duplicate check, then the record to update; self-service accounts load
// their own record.
func prepare[T any, P any](ctx context.Context, c *screen.Controller[T, P], id int64) error {
	caps := c.Capabilities()
	if caps.CanList {
		if err := c.Load(ctx); err != nil {
			return err
		}
	}
	switch {
	case id > 0:
		return c.Select(ctx, id)
	case caps.SelfService:
		return c.LoadSelf(ctx)
	default:
		return nil
	}
}

func printRecord[T any, P any](cmd *cobra.Command, def entityDef[T, P], c *screen.Controller[T, P]) error {
	record, ok := c.Current()
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no %s loaded", def.entity))
	}
	out := cmd.OutOrStdout()
	if err := printJSON(out, record); err != nil {
		return err
	}
	if def.detail == nil {
		return nil
	}
	data, ok := def.detail(record)
	if !ok || len(data.Rows) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	return printTable(out, data)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Invalid(appErrors.ErrInvalidNumber, "id", fmt.Sprintf("%q is not a valid id", raw))
	}
	return id, nil
}
