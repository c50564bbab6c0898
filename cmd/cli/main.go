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
		Use:   "tipbot-cli",
		Short: "Tipbot CLI tool",
		Long:  `A command line interface for interacting with the tipbot API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the tipbot API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List roster accounts",
		Run: func(cmd *cobra.Command, args []string) {
			listAccounts()
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showBalance(args[0])
		},
	}

	depositCmd := &cobra.Command{
		Use:   "deposit-address <account-id>",
		Short: "Show an account's deposit address",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showDepositAddress(args[0])
		},
	}

	withdrawCmd := &cobra.Command{
		Use:   "withdraw <account-id> <address> <amount>",
		Short: "Withdraw to an on-chain address",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			withdraw(args[0], args[1], args[2])
		},
	}

	tipCmd := &cobra.Command{
		Use:   "tip <from-account-id> <to-account-id> <amount>",
		Short: "Tip another account",
		Run: func(cmd *cobra.Command, args []string) {
			tip(args[0], args[1], args[2])
		},
		Args: cobra.ExactArgs(3),
	}

	accountCmd.AddCommand(listCmd, balanceCmd, depositCmd, withdrawCmd, tipCmd)
	rootCmd.AddCommand(accountCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func get(path string) map[string]any {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

func post(path string, body any) map[string]any {
	payload, err := json.Marshal(body)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

func decodeResponse(resp *http.Response) map[string]any {
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(raw))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	return result
}

func listAccounts() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/accounts/")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(raw))
		os.Exit(1)
	}

	var accounts []map[string]any
	if err := json.Unmarshal(raw, &accounts); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, acc := range accounts {
		fmt.Printf("%s\t%s\n", acc["id"], acc["name"])
	}
}

func showBalance(accountID string) {
	result := get("/api/v1/accounts/" + accountID + "/balance")

	fmt.Printf("Confirmed:   %s TAO\n", result["confirmed"])
	fmt.Printf("Unconfirmed: %s TAO\n", result["unconfirmed"])
	if high, ok := result["high_balance"].(bool); ok && high {
		fmt.Println("Warning: high balance, consider withdrawing some.")
	}
}

func showDepositAddress(accountID string) {
	result := get("/api/v1/accounts/" + accountID + "/deposit-address")
	fmt.Printf("Address: %s\n", result["address"])
}

func withdraw(accountID, address, amount string) {
	result := post("/api/v1/accounts/"+accountID+"/withdraw", map[string]string{
		"address": address,
		"amount":  amount,
	})

	fmt.Printf("Withdrawn %s TAO to %s\n", result["amount"], result["address"])
	fmt.Printf("Transaction: %s\n", result["explorer_url"])
}

func tip(fromID, toID, amount string) {
	result := post("/api/v1/accounts/"+fromID+"/tip", map[string]string{
		"to":     toID,
		"amount": amount,
	})

	fmt.Printf("Tipped %s TAO to %s\n", result["amount"], result["to"])
}
