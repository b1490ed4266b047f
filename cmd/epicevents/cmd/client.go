// ABOUTME: Client management commands (commercial department)
// ABOUTME: Creating assigns ownership to the caller; updates require ownership

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/epicevents/crm/internal/service"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client management commands",
}

var clientCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new client",
	RunE: func(cmd *cobra.Command, args []string) error {
		fullName, _ := cmd.Flags().GetString("full-name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		companyName, _ := cmd.Flags().GetString("company-name")

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		client, err := app.clients.Create(cmd.Context(), service.CreateClientInput{
			FullName:    fullName,
			Email:       email,
			Phone:       phone,
			CompanyName: companyName,
		})
		if err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Successfully created client: %s (id %d)\n", client.FullName, client.ID)
		return nil
	},
}

var clientUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing client",
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetInt64("client-id")
		fullName, _ := cmd.Flags().GetString("full-name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		companyName, _ := cmd.Flags().GetString("company-name")

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		client, err := app.clients.Update(cmd.Context(), clientID, service.UpdateClientInput{
			FullName:    fullName,
			Email:       email,
			Phone:       phone,
			CompanyName: companyName,
		})
		if err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Successfully updated client: %s\n", client.FullName)
		return nil
	},
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		clients, err := app.clients.List(cmd.Context())
		if err != nil {
			return renderErr(err)
		}

		for _, c := range clients {
			cmd.Printf("%d\t%s\t%s\t%s\t%s\tcommercial:%d\n", c.ID, c.FullName, c.Email, c.Phone, c.CompanyName, c.CommercialID)
		}
		return nil
	},
}

func init() {
	clientCreateCmd.Flags().String("full-name", "", "Client full name")
	clientCreateCmd.Flags().String("email", "", "Client email")
	clientCreateCmd.Flags().String("phone", "", "Client phone number")
	clientCreateCmd.Flags().String("company-name", "", "Client company name")
	_ = clientCreateCmd.MarkFlagRequired("full-name")
	_ = clientCreateCmd.MarkFlagRequired("email")

	clientUpdateCmd.Flags().Int64("client-id", 0, "ID of the client to update")
	clientUpdateCmd.Flags().String("full-name", "", "New full name")
	clientUpdateCmd.Flags().String("email", "", "New email")
	clientUpdateCmd.Flags().String("phone", "", "New phone number")
	clientUpdateCmd.Flags().String("company-name", "", "New company name")
	_ = clientUpdateCmd.MarkFlagRequired("client-id")

	clientCmd.AddCommand(clientCreateCmd)
	clientCmd.AddCommand(clientUpdateCmd)
	clientCmd.AddCommand(clientListCmd)
	rootCmd.AddCommand(clientCmd)
}
