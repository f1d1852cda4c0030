package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fintrack-cli",
		Short: "FinTrack CLI tool",
		Long:  `A command line interface for interacting with the FinTrack API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FinTrack API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Transaction commands
	addCmd := &cobra.Command{
		Use:   "add <kind> <amount> <category> <date> [description]",
		Short: "Add a transaction (kind is income or expense, date is YYYY-MM-DD)",
		Args:  cobra.RangeArgs(4, 5),
		Run: func(cmd *cobra.Command, args []string) {
			description := ""
			if len(args) == 5 {
				description = args[4]
			}
			addTransaction(args[0], args[1], args[2], args[3], description)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Run: func(cmd *cobra.Command, args []string) {
			listTransactions()
		},
	}

	undoCmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the most recent action",
		Run: func(cmd *cobra.Command, args []string) {
			undo()
		},
	}

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the ledger dashboard",
		Run: func(cmd *cobra.Command, args []string) {
			showDashboard()
		},
	}

	rootCmd.AddCommand(addCmd, listCmd, undoCmd, dashboardCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func addTransaction(kind, amount, category, date, description string) {
	payload, _ := json.Marshal(map[string]string{
		"kind":        kind,
		"amount":      amount,
		"category":    category,
		"date":        date,
		"description": description,
	})

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/transactions", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Add FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Added transaction %s\n", result["id"])
}

func listTransactions() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/transactions")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("List FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		Transactions []struct {
			ID       string `json:"id"`
			Kind     string `json:"kind"`
			Amount   string `json:"amount"`
			Category string `json:"category"`
			Date     string `json:"date"`
		} `json:"transactions"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, t := range result.Transactions {
		fmt.Printf("%s  %-8s %10s  %-15s %s\n", t.Date, t.Kind, t.Amount, t.Category, t.ID)
	}
	fmt.Printf("Total: %d\n", result.Total)
}

func undo() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/undo", "application/json", nil)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusConflict {
		fmt.Println("Nothing to undo")
		return
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Undo FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Println("Undone")
}

func showDashboard() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/dashboard")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Dashboard FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Balance: %v\n", result["balance"])
	fmt.Printf("Income: %v  Expenses: %v\n", result["total_income"], result["total_expenses"])
	fmt.Printf("Transactions: %v  Budgets: %v  Bills: %v\n",
		result["transaction_count"], result["budget_count"], result["bill_count"])
}
