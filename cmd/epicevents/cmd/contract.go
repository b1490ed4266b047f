// ABOUTME: Contract management commands
// ABOUTME: Creation is management-only; amounts are given as decimal strings

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/epicevents/crm/internal/service"
)

var contractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Contract management commands",
}

var contractCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new contract",
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetInt64("client-id")
		commercialID, _ := cmd.Flags().GetInt64("commercial-id")
		totalStr, _ := cmd.Flags().GetString("total-amount")
		remainingStr, _ := cmd.Flags().GetString("remaining-amount")

		total, err := parseAmount(totalStr)
		if err != nil {
			return err
		}
		remaining := total
		if remainingStr != "" {
			remaining, err = parseAmount(remainingStr)
			if err != nil {
				return err
			}
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		contract, err := app.contracts.Create(cmd.Context(), service.CreateContractInput{
			ClientID:       clientID,
			CommercialID:   commercialID,
			TotalCents:     total,
			RemainingCents: remaining,
		})
		if err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Successfully created contract %d (total %s)\n", contract.ID, formatAmount(contract.TotalCents))
		return nil
	},
}

var contractUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a contract's amounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		contractID, _ := cmd.Flags().GetInt64("contract-id")
		totalStr, _ := cmd.Flags().GetString("total-amount")
		remainingStr, _ := cmd.Flags().GetString("remaining-amount")

		var input service.UpdateContractInput
		if totalStr != "" {
			total, err := parseAmount(totalStr)
			if err != nil {
				return err
			}
			input.TotalCents = &total
		}
		if remainingStr != "" {
			remaining, err := parseAmount(remainingStr)
			if err != nil {
				return err
			}
			input.RemainingCents = &remaining
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		contract, err := app.contracts.Update(cmd.Context(), contractID, input)
		if err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Successfully updated contract %d\n", contract.ID)
		return nil
	},
}

var contractSignCmd = &cobra.Command{
	Use:   "sign",
	Short: "Mark a contract as signed",
	RunE: func(cmd *cobra.Command, args []string) error {
		contractID, _ := cmd.Flags().GetInt64("contract-id")

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		contract, err := app.contracts.Sign(cmd.Context(), contractID)
		if err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Contract %d is signed\n", contract.ID)
		return nil
	},
}

var contractListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contracts",
	RunE: func(cmd *cobra.Command, args []string) error {
		unsigned, _ := cmd.Flags().GetBool("unsigned")
		unpaid, _ := cmd.Flags().GetBool("unpaid")

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		contracts, err := app.contracts.List(cmd.Context(), service.ListContractsOptions{
			Unsigned: unsigned,
			Unpaid:   unpaid,
		})
		if err != nil {
			return renderErr(err)
		}

		for _, c := range contracts {
			signed := "unsigned"
			if c.IsSigned {
				signed = "signed"
			}
			cmd.Printf("%d\tclient:%d\tcommercial:%d\ttotal:%s\tremaining:%s\t%s\n",
				c.ID, c.ClientID, c.CommercialID, formatAmount(c.TotalCents), formatAmount(c.RemainingCents), signed)
		}
		return nil
	},
}

func init() {
	contractCreateCmd.Flags().Int64("client-id", 0, "Client ID")
	contractCreateCmd.Flags().Int64("commercial-id", 0, "Commercial employee ID")
	contractCreateCmd.Flags().String("total-amount", "", "Total amount, e.g. 1000.50")
	contractCreateCmd.Flags().String("remaining-amount", "", "Remaining amount (defaults to total)")
	_ = contractCreateCmd.MarkFlagRequired("client-id")
	_ = contractCreateCmd.MarkFlagRequired("commercial-id")
	_ = contractCreateCmd.MarkFlagRequired("total-amount")

	contractUpdateCmd.Flags().Int64("contract-id", 0, "ID of the contract to update")
	contractUpdateCmd.Flags().String("total-amount", "", "New total amount")
	contractUpdateCmd.Flags().String("remaining-amount", "", "New remaining amount")
	_ = contractUpdateCmd.MarkFlagRequired("contract-id")

	contractSignCmd.Flags().Int64("contract-id", 0, "ID of the contract to sign")
	_ = contractSignCmd.MarkFlagRequired("contract-id")

	contractListCmd.Flags().Bool("unsigned", false, "Only unsigned contracts")
	contractListCmd.Flags().Bool("unpaid", false, "Only contracts with a remaining amount")

	contractCmd.AddCommand(contractCreateCmd)
	contractCmd.AddCommand(contractUpdateCmd)
	contractCmd.AddCommand(contractSignCmd)
	contractCmd.AddCommand(contractListCmd)
	rootCmd.AddCommand(contractCmd)
}
