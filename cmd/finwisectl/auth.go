package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	authCmd := &cobra.Command{Use: "auth", Short: "Account and session operations"}

	// register
	var name, email, password, accountType string
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"fullname":    name,
				"email":       email,
				"password":    password,
				"accountType": accountType,
			}
			data, err := doPostJSON(apiFlag+"/api/auth/register", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	registerCmd.Flags().StringVarP(&name, "name", "n", "", "Full name (required)")
	registerCmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	registerCmd.Flags().StringVarP(&accountType, "type", "t", "user", "Account type: user or expert")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	authCmd.AddCommand(registerCmd)

	// login
	var loginEmail, loginPassword, loginType string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"email":       loginEmail,
				"password":    loginPassword,
				"accountType": loginType,
			}
			data, err := doPostJSON(apiFlag+"/api/auth/login", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (required)")
	loginCmd.Flags().StringVarP(&loginType, "type", "t", "user", "Account type: user or expert")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	authCmd.AddCommand(loginCmd)

	// logout
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON(apiFlag+"/api/auth/logout", map[string]interface{}{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	authCmd.AddCommand(logoutCmd)

	// session
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(apiFlag + "/api/auth/session")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	authCmd.AddCommand(sessionCmd)

	rootCmd.AddCommand(authCmd)
}
