package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/contactdesk/contacts-system/internal/client/controller"
	"github.com/contactdesk/contacts-system/internal/client/form"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts (administrators only)",
}

var usersPage int

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts, one page at a time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		list := controller.NewUserList(app.api, confirm, app.log)
		list.Load(cmd.Context())

		if len(list.Users) == 0 {
			fmt.Println("No users.")
			return nil
		}

		list.SetPage(usersPage)
		for _, u := range list.PageUsers() {
			fmt.Printf("%s  %s  (%d contacts)\n", u.ID, u.Username, len(u.Contacts))
		}
		fmt.Printf("Page %d of %d\n", list.Page()+1, list.TotalPages())
		return nil
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("Password for new account: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}

		f := form.NewUserCreateForm()
		f.Username = args[0]
		f.Password = string(password)

		list := controller.NewUserList(app.api, confirm, app.log)
		if err := list.CreateUser(cmd.Context(), f); err != nil {
			printFormErrors(f.Errors())
			if errors.Is(err, form.ErrInvalid) {
				return fmt.Errorf("user not created: fix the fields above")
			}
			return err
		}
		fmt.Printf("User %s created.\n", args[0])
		return nil
	},
}

var (
	editUsername      string
	editPassword      bool
	editAdminPassword string
)

var usersEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Rename an account or set a new password",
	Long: `Rename an account or set a new password. Either change requires your
own password, given with --admin-password or prompted for.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := controller.NewUserList(app.api, confirm, app.log)
		list.Load(cmd.Context())

		ev := &controller.Event{}
		list.EditClicked(args[0], ev)
		draft := list.Draft()
		if draft == nil {
			return fmt.Errorf("no such user: %s", args[0])
		}

		if cmd.Flags().Changed("username") {
			draft.Username = editUsername
		}
		if editPassword {
			fmt.Print("New password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			draft.Password = string(password)
		}

		draft.AdminPassword = editAdminPassword
		if draft.AdminPassword == "" && (editPassword || cmd.Flags().Changed("username")) {
			fmt.Print("Your password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			draft.AdminPassword = string(password)
		}

		if err := list.SubmitDraft(cmd.Context()); err != nil {
			printFormErrors(draft.Errors())
			if errors.Is(err, form.ErrInvalid) {
				return fmt.Errorf("user not updated: fix the fields above")
			}
			return err
		}
		fmt.Println("User updated.")
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account and all its contacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := controller.NewUserList(app.api, confirm, app.log)
		ev := &controller.Event{}
		return list.DeleteClicked(cmd.Context(), args[0], ev)
	},
}

func init() {
	usersListCmd.Flags().IntVar(&usersPage, "page", 0, "zero-based page to show")
	usersEditCmd.Flags().StringVar(&editUsername, "username", "", "new username")
	usersEditCmd.Flags().BoolVar(&editPassword, "password", false, "prompt for a new password")
	usersEditCmd.Flags().StringVar(&editAdminPassword, "admin-password", "", "your own password, confirming the change")
	usersCmd.AddCommand(usersListCmd, usersCreateCmd, usersEditCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
