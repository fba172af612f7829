package main

import (
	"fmt"

	"pet-adoption-backend/internal/adapter/repository/mysql"
	"pet-adoption-backend/internal/infrastructure/db"
	"pet-adoption-backend/internal/usecase/identity"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts (admins are never created over HTTP)",
	}

	var username, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDB(func(gdb *gorm.DB) error {
				if err := db.Migrate(gdb); err != nil {
					return err
				}
				uc := identity.NewUsecase(mysql.NewUserRepository(gdb), mysql.NewAdminRepository(gdb), a.cfg.BcryptCost)
				adm, err := uc.CreateAdmin(cmd.Context(), identity.CredentialsInput{Username: username, Password: password})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "admin %q created\n", adm.Username)
				return nil
			})
		},
	}
	create.Flags().StringVar(&username, "username", "", "Admin username (required)")
	create.Flags().StringVar(&password, "password", "", "Admin password (required)")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}
