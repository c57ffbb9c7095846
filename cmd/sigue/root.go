package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/noah-isme/sigue-client/internal/access"
	"github.com/noah-isme/sigue-client/internal/models"
	"github.com/noah-isme/sigue-client/internal/screen"
	"github.com/noah-isme/sigue-client/pkg/export"
	"github.com/noah-isme/sigue-client/pkg/middleware/requestid"
)

type credentials struct {
	username string
	password string
}

// root carries the persistent flags shared by every subcommand.
type root struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SIGUE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "sigue",
		Short:         "School administration client",
		Long:          "sigue manages careers, subjects, teachers, students, schedules, classrooms, groups and user accounts through the school API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.String("username", "", "account username (env SIGUE_USERNAME)")
	flags.String("password", "", "account password (env SIGUE_PASSWORD)")
	_ = v.BindPFlag("username", flags.Lookup("username"))
	_ = v.BindPFlag("password", flags.Lookup("password"))

	r := &root{v: v}
	cmd.AddCommand(
		newMenuCmd(r),
		newWhoamiCmd(r),
		entityCmd(r, entityDef[models.Career, models.CareerPayload]{
			entity: access.Careers, build: screen.Careers, table: export.Careers,
		}),
		entityCmd(r, entityDef[models.Classroom, models.ClassroomPayload]{
			entity: access.Classrooms, build: screen.Classrooms, table: export.Classrooms,
		}),
		entityCmd(r, entityDef[models.Schedule, models.SchedulePayload]{
			entity: access.Schedules, build: screen.Schedules, table: export.Schedules,
		}),
		entityCmd(r, entityDef[models.Subject, models.SubjectPayload]{
			entity: access.Subjects, build: screen.Subjects, table: export.Subjects, byCareer: true,
		}),
		entityCmd(r, entityDef[models.Teacher, models.TeacherPayload]{
			entity: access.Teachers, build: screen.Teachers, table: export.Teachers,
		}),
		entityCmd(r, entityDef[models.Student, models.StudentPayload]{
			entity: access.Students, build: screen.Students, table: export.Students,
		}),
		entityCmd(r, entityDef[models.User, models.UserPayload]{
			entity: access.Users, build: screen.Users, table: export.Users,
		}),
		entityCmd(r, entityDef[models.Group, models.GroupPayload]{
			entity: access.Groups, build: screen.Groups, table: export.Groups,
			detail: func(g models.Group) (export.Dataset, bool) {
				return export.GroupStudents(g.Students), true
			},
		}),
	)
	return cmd
}

func (r *root) credentials() credentials {
	return credentials{username: r.v.GetString("username"), password: r.v.GetString("password")}
}

// run logs in, hands the wired app to fn and releases it afterwards. Every
// gateway call of one invocation carries the same request id.
func (r *root) run(cmd *cobra.Command, confirm screen.Confirmer, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = requestid.WithContext(ctx, requestid.New())
	if confirm == nil {
		confirm = promptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	a, err := openApp(ctx, r.credentials(), confirm)
	if err != nil {
		return err
	}
	defer a.close(ctx)
	return fn(ctx, a)
}

func newMenuCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Show the sections available to the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, nil, func(_ context.Context, a *app) error {
				user := a.session.User()
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Signed in as %s (%s)\n", user.Name, user.Role)
				sections := access.Sections(user.Role)
				if len(sections) == 0 {
					fmt.Fprintln(out, "No sections available.")
					return nil
				}
				for i, entity := range sections {
					fmt.Fprintf(out, "%d. %-12s sigue %s\n", i+1, entity.Title(), entity)
				}
				return nil
			})
		},
	}
}

func newWhoamiCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Log in and print the session profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, nil, func(_ context.Context, a *app) error {
				user := a.session.User()
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"id":        user.ID,
					"username":  user.Username,
					"name":      user.Name,
					"role":      user.Role,
					"expiresAt": a.session.ExpiresAt(),
				})
			})
		},
	}
}
