// ABOUTME: Employee management commands (management department only)
// ABOUTME: Includes a bootstrap command for seeding the first management account

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/epicevents/crm/internal/service"
	"github.com/epicevents/crm/internal/store"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Employee management commands",
}

var employeeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		fullName, _ := cmd.Flags().GetString("full-name")
		email, _ := cmd.Flags().GetString("email")
		departmentStr, _ := cmd.Flags().GetString("department")
		role, _ := cmd.Flags().GetString("role")
		password, _ := cmd.Flags().GetString("password")

		department, err := store.ParseDepartment(departmentStr)
		if err != nil {
			return err
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		employee, err := app.employees.Create(cmd.Context(), service.CreateEmployeeInput{
			FullName:   fullName,
			Email:      email,
			Department: department,
			Role:       role,
			Password:   password,
		})
		if err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Successfully created employee: %s (id %d)\n", employee.FullName, employee.ID)
		return nil
	},
}

var employeeUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		fullName, _ := cmd.Flags().GetString("full-name")
		departmentStr, _ := cmd.Flags().GetString("department")
		role, _ := cmd.Flags().GetString("role")
		password, _ := cmd.Flags().GetString("password")

		var department store.Department
		if departmentStr != "" {
			var err error
			department, err = store.ParseDepartment(departmentStr)
			if err != nil {
				return err
			}
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		employee, err := app.employees.Update(cmd.Context(), email, service.UpdateEmployeeInput{
			FullName:   fullName,
			Department: department,
			Role:       role,
			Password:   password,
		})
		if err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Successfully updated employee: %s\n", employee.FullName)
		return nil
	},
}

var employeeDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.employees.Delete(cmd.Context(), email); err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Successfully deleted employee %s\n", email)
		return nil
	},
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		employees, err := app.employees.List(cmd.Context())
		if err != nil {
			return renderErr(err)
		}

		for _, e := range employees {
			cmd.Printf("%d\t%s\t%s\t%s\t%s\n", e.ID, e.FullName, e.Email, e.Department, e.Role)
		}
		return nil
	},
}

var employeeBootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create the first management employee in an empty store",
	RunE: func(cmd *cobra.Command, args []string) error {
		fullName, _ := cmd.Flags().GetString("full-name")
		email, _ := cmd.Flags().GetString("email")
		role, _ := cmd.Flags().GetString("role")
		password, _ := cmd.Flags().GetString("password")

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		employee, err := app.employees.Bootstrap(cmd.Context(), service.CreateEmployeeInput{
			FullName: fullName,
			Email:    email,
			Role:     role,
			Password: password,
		})
		if err != nil {
			return renderErr(err)
		}

		color.New(color.FgGreen).Printf("Successfully created management employee: %s (id %d)\n", employee.FullName, employee.ID)
		return nil
	},
}

func init() {
	employeeCreateCmd.Flags().String("full-name", "", "Employee full name")
	employeeCreateCmd.Flags().String("email", "", "Employee email")
	employeeCreateCmd.Flags().String("department", "", "Department (commercial, support, management)")
	employeeCreateCmd.Flags().String("role", "", "Role title within the department")
	employeeCreateCmd.Flags().String("password", "", "Initial password")
	_ = employeeCreateCmd.MarkFlagRequired("full-name")
	_ = employeeCreateCmd.MarkFlagRequired("email")
	_ = employeeCreateCmd.MarkFlagRequired("department")
	_ = employeeCreateCmd.MarkFlagRequired("role")
	_ = employeeCreateCmd.MarkFlagRequired("password")

	employeeUpdateCmd.Flags().String("email", "", "Email of the employee to update")
	employeeUpdateCmd.Flags().String("full-name", "", "New full name")
	employeeUpdateCmd.Flags().String("department", "", "New department")
	employeeUpdateCmd.Flags().String("role", "", "New role title")
	employeeUpdateCmd.Flags().String("password", "", "New password")
	_ = employeeUpdateCmd.MarkFlagRequired("email")

	employeeDeleteCmd.Flags().String("email", "", "Email of the employee to delete")
	_ = employeeDeleteCmd.MarkFlagRequired("email")

	employeeBootstrapCmd.Flags().String("full-name", "", "Employee full name")
	employeeBootstrapCmd.Flags().String("email", "", "Employee email")
	employeeBootstrapCmd.Flags().String("role", "", "Role title")
	employeeBootstrapCmd.Flags().String("password", "", "Initial password")
	_ = employeeBootstrapCmd.MarkFlagRequired("full-name")
	_ = employeeBootstrapCmd.MarkFlagRequired("email")
	_ = employeeBootstrapCmd.MarkFlagRequired("password")

	employeeCmd.AddCommand(employeeCreateCmd)
	employeeCmd.AddCommand(employeeUpdateCmd)
	employeeCmd.AddCommand(employeeDeleteCmd)
	employeeCmd.AddCommand(employeeListCmd)
	employeeCmd.AddCommand(employeeBootstrapCmd)
	rootCmd.AddCommand(employeeCmd)
}
