package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	expertsCmd := &cobra.Command{Use: "experts", Short: "Expert directory operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List expert profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(apiFlag + "/api/experts")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	expertsCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get EXPERT_ID",
		Short: "Get an expert profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/experts/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	expertsCmd.AddCommand(getCmd)

	clientsCmd := &cobra.Command{
		Use:   "clients EXPERT_ID",
		Short: "List an expert's clients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/experts/%s/clients", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	expertsCmd.AddCommand(clientsCmd)

	rootCmd.AddCommand(expertsCmd)
}
