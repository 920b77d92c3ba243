// Package usercmd provides account administration commands. Staff accounts
// cannot be created through the public sign up endpoint.
package usercmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/darna-inc/darna/internal/application/user/usecases"
	"github.com/darna-inc/darna/internal/infrastructure/auth"
	"github.com/darna-inc/darna/internal/infrastructure/database"
	"github.com/darna-inc/darna/internal/infrastructure/repository"
	"github.com/darna-inc/darna/internal/interfaces/cli/cmdutil"
	"github.com/darna-inc/darna/internal/shared/authorization"
)

var (
	env      string
	fullName string
	email    string
	role     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Account administration",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	create := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin or employee account",
		Long:  `Create a staff account. The password is read from the terminal without echo, or from stdin when it is not a terminal.`,
		RunE:  runCreateAdmin,
	}
	create.Flags().StringVar(&fullName, "name", "", "Full name (required)")
	create.Flags().StringVar(&email, "email", "", "Email address (required)")
	create.Flags().StringVar(&role, "role", string(authorization.RoleAdmin), "Staff role (admin, employee)")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("email")
	cmd.AddCommand(create)

	return cmd
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	staffRole := authorization.ParseUserRole(role)
	if !staffRole.IsPrivileged() {
		return fmt.Errorf("role must be admin or employee, got %q", role)
	}

	password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	cfg, log, db, err := cmdutil.Bootstrap(cmd.Context(), cmdutil.Environment(env))
	if err != nil {
		return err
	}
	defer database.Close()

	uc := usecases.NewCreateUserUseCase(
		repository.NewUserRepository(db, log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		authorization.PrivilegedRoles,
		log,
	)
	created, err := uc.Execute(cmd.Context(), usecases.CreateUserCommand{
		FullName: fullName,
		Email:    email,
		Password: password,
		Role:     staffRole,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s account #%d for %s\n", created.UserType, created.ID, created.Email)
	return nil
}

// readPassword prompts twice on a terminal. Piped input supplies the
// password on its first line.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		first, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprint(prompt, "Repeat password: ")
		second, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		if string(first) != string(second) {
			return "", errors.New("passwords do not match")
		}
		return string(first), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("empty password")
	}
	return password, nil
}
