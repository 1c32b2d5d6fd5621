package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTrialBalanceCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := openProject(dir)
			if err != nil {
				return err
			}

			tb := pr.eng.GenerateTrialBalance()
			fmt.Printf("%-6s %-28s %14s %14s\n", "code", "account", "debit", "credit")
			for _, row := range tb.Rows {
				fmt.Printf("%-6s %-28s %14s %14s\n",
					row.AccountCode, row.AccountName,
					row.Debit.StringFixed(2), row.Credit.StringFixed(2))
			}
			fmt.Printf("%-35s %14s %14s\n", "totals",
				tb.TotalDebits.StringFixed(2), tb.TotalCredits.StringFixed(2))
			if !tb.TotalDebits.Equal(tb.TotalCredits) {
				fmt.Println("WARNING: ledger is out of balance")
			}
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}

func newStatementsCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Print the draft financial statements",
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := openProject(dir)
			if err != nil {
				return err
			}

			s := pr.eng.GenerateStatements()
			fmt.Println("Income statement")
			fmt.Printf("  revenue             %14s\n", s.Revenue.StringFixed(2))
			fmt.Printf("  cost of sales       %14s\n", s.CostOfSales.StringFixed(2))
			fmt.Printf("  gross profit        %14s\n", s.GrossProfit.StringFixed(2))
			fmt.Printf("  operating expenses  %14s\n", s.OperatingExpenses.StringFixed(2))
			fmt.Printf("  net income          %14s\n", s.NetIncome.StringFixed(2))

			fmt.Println("Balance sheet")
			fmt.Printf("  assets              %14s\n", s.TotalAssets.StringFixed(2))
			fmt.Printf("  liabilities         %14s\n", s.TotalLiabilities.StringFixed(2))
			fmt.Printf("  equity              %14s\n", s.TotalEquity.StringFixed(2))

			fmt.Println("Cash flow (indirect)")
			fmt.Printf("  operating           %14s\n", s.CashFlow.Operating.StringFixed(2))
			fmt.Printf("  investing           %14s\n", s.CashFlow.Investing.StringFixed(2))
			fmt.Printf("  financing           %14s\n", s.CashFlow.Financing.StringFixed(2))
			fmt.Printf("  net change          %14s\n", s.CashFlow.NetChange.StringFixed(2))

			fmt.Println("Equity roll-forward")
			fmt.Printf("  capital additions   %14s\n", s.Equity.CapitalAdditions.StringFixed(2))
			fmt.Printf("  drawings            %14s\n", s.Equity.Drawings.StringFixed(2))
			fmt.Printf("  net income          %14s\n", s.Equity.NetIncome.StringFixed(2))
			fmt.Printf("  closing equity      %14s\n", s.Equity.ClosingEquity.StringFixed(2))
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}

func newBalanceCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "balance <code>",
		Short: "Print one account's closing balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := openProject(dir)
			if err != nil {
				return err
			}
			fmt.Println(pr.eng.AccountBalance(args[0]).StringFixed(2))
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}

func newHistoryCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "history <code>",
		Short: "Print one account's posted entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := openProject(dir)
			if err != nil {
				return err
			}

			for _, le := range pr.eng.AccountHistory(args[0]) {
				fmt.Printf("%s  %-12s %14s %14s %14s\n",
					le.Date.Format("2006-01-02"), le.JournalID,
					le.Debit.StringFixed(2), le.Credit.StringFixed(2), le.Balance.StringFixed(2))
			}
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}
