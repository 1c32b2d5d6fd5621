package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

func newAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect and extend the chart of accounts",
	}
	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsAddCommand())
	return cmd
}

func newAccountsListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the chart of accounts grouped by class",
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := openProject(dir)
			if err != nil {
				return err
			}

			classes := []model.AccountClass{
				model.ClassAsset, model.ClassLiability, model.ClassEquity,
				model.ClassIncome, model.ClassExpense,
			}
			for _, class := range classes {
				fmt.Printf("%s\n", class)
				for _, a := range pr.eng.ChartAccounts() {
					if a.Class != class {
						continue
					}
					marker := ""
					if a.Custom {
						marker = " (custom)"
					}
					fmt.Printf("  %s  %s%s\n", a.Code, a.Name, marker)
				}
			}
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}

func newAccountsAddCommand() *cobra.Command {
	var dir string
	var name string
	var class string
	var subClass string

	cmd := &cobra.Command{
		Use:   "add <code>",
		Short: "Add a custom account to the chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := openProject(dir)
			if err != nil {
				return err
			}

			account, _, err := pr.eng.AddCustomAccount(args[0], name, model.AccountClass(class), subClass)
			if err != nil {
				return err
			}
			if err := pr.saveState(); err != nil {
				return err
			}

			fmt.Printf("Added account %s %s (%s, %s-normal)\n",
				account.Code, account.Name, account.Class, account.NormalBalance)
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&class, "class", "", "asset|liability|equity|income|expense (required)")
	_ = cmd.MarkFlagRequired("class")
	cmd.Flags().StringVar(&subClass, "subclass", "", "optional subclass, e.g. current or fixed")

	return cmd
}
