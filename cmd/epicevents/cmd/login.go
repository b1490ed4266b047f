// ABOUTME: login, logout and whoami commands
// ABOUTME: Authentication failures are deliberately generic to prevent email enumeration

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and open a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ok, fullName, err := app.engine.Authenticate(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		if !ok {
			color.New(color.FgRed).Println("Invalid credentials!")
			return nil
		}

		color.New(color.FgGreen).Printf("Successfully logged in as %s!\n", fullName)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Close the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		present, err := app.engine.Logout()
		if err != nil {
			return err
		}
		if !present {
			color.New(color.FgYellow).Println("You are not logged in.")
			return nil
		}

		color.New(color.FgGreen).Println("Successfully logged out!")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently authenticated employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		employee, err := app.engine.CurrentPrincipal(cmd.Context())
		if err != nil {
			return renderErr(err)
		}
		if employee == nil {
			color.New(color.FgYellow).Println("You are not logged in.")
			return nil
		}

		cmd.Printf("%s <%s> %s (%s)\n", employee.FullName, employee.Email, employee.Department, employee.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Email for authentication")
	loginCmd.Flags().String("password", "", "Password for authentication")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
