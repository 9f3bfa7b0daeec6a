package cmd

import (
	"fmt"

	"github.com/socfin/societyctl/internal/errors"
	"github.com/socfin/societyctl/internal/tui"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with the society backend",
	Long:  `Log in, register, log out and inspect the current session.`,
}

// authLoginCmd logs in and persists the session
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the society backend",
	Long: `Log in with email and password. The session token is stored under the
config directory and used by every other command until logout or expiry.

Examples:
  societyctl auth login --email you@example.com --password secret
  societyctl auth login    (prompts interactively)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" {
			email, err = tui.PromptForString(tui.Prompt{Message: "Email", Required: true})
			if err != nil {
				return err
			}
		}
		if password == "" {
			password, err = tui.PromptForString(tui.Prompt{Message: "Password", Required: true, Password: true})
			if err != nil {
				return err
			}
		}

		result := app.Session.Login(cmd.Context(), email, password)
		if !result.OK {
			return errors.New(errors.ErrCodeAuthLoginFailed, result.Err)
		}

		user := app.Session.CurrentUser()
		fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)

		// A lone membership is selected automatically on login
		if soc := app.Society.Current(); soc != nil {
			fmt.Printf("Active society: %s (%s)\n", soc.Name, soc.Role)
		} else if len(app.Society.Societies()) > 1 {
			fmt.Println("Run 'societyctl society switch <id>' to pick a society.")
		}

		return nil
	},
}

// authRegisterCmd creates an account and logs in
var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Register a new account with the society backend. After registration
you are logged in automatically.

Examples:
  societyctl auth register --name "Asha Rao" --email asha@example.com --password secret
  societyctl auth register --name "Asha Rao" --email asha@example.com --password secret --phone 9812345678`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		password, _ := cmd.Flags().GetString("password")

		if name == "" {
			name, err = tui.PromptForString(tui.Prompt{Message: "Full name", Required: true})
			if err != nil {
				return err
			}
		}
		if email == "" {
			email, err = tui.PromptForString(tui.Prompt{Message: "Email", Required: true})
			if err != nil {
				return err
			}
		}
		if password == "" {
			password, err = tui.PromptForString(tui.Prompt{Message: "Password", Required: true, Password: true})
			if err != nil {
				return err
			}
		}

		result := app.Session.Register(cmd.Context(), name, email, phone, password)
		if !result.OK {
			return errors.New(errors.ErrCodeAuthRegisterFail, result.Err)
		}

		fmt.Printf("Registered and logged in as %s\n", email)
		return nil
	},
}

// authLogoutCmd ends the session and clears the society selection
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}

		if !app.Session.Authenticated() {
			fmt.Println("Not logged in.")
			return nil
		}

		if err := app.Session.Logout(); err != nil {
			return err
		}

		fmt.Println("Logged out.")
		return nil
	},
}

// authStatusCmd shows the current session and society selection
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}

		user := app.Session.CurrentUser()
		if user == nil {
			fmt.Println("Not logged in.")
			fmt.Println("Use 'societyctl auth login' to authenticate.")
			return nil
		}

		status := struct {
			LoggedIn bool   `json:"logged_in" yaml:"logged_in"`
			Name     string `json:"name" yaml:"name"`
			Email    string `json:"email" yaml:"email"`
			Society  string `json:"society,omitempty" yaml:"society,omitempty"`
			Role     string `json:"role,omitempty" yaml:"role,omitempty"`
		}{LoggedIn: true, Name: user.Name, Email: user.Email}
		if soc := app.Society.Current(); soc != nil {
			status.Society = soc.Name
			status.Role = soc.Role
		}

		if done, err := printStructured(cmdCtx, status); done || err != nil {
			return err
		}

		fmt.Println("Logged in")
		fmt.Printf("Name:  %s\n", status.Name)
		fmt.Printf("Email: %s\n", status.Email)
		if status.Society != "" {
			fmt.Printf("Society: %s (%s)\n", status.Society, status.Role)
		} else {
			fmt.Println("Society: none selected")
		}
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authRegisterCmd.Flags().String("name", "", "full name")
	authRegisterCmd.Flags().String("email", "", "account email")
	authRegisterCmd.Flags().String("phone", "", "phone number")
	authRegisterCmd.Flags().String("password", "", "account password")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}
