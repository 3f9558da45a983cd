package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Veraticus/studmoney/internal/cli"
	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/config"
	"github.com/Veraticus/studmoney/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with external services",
	}

	cmd.AddCommand(authSheetsCmd())

	return cmd
}

func authSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Authenticate with Google Sheets",
		Long: `Authenticate with Google Sheets using OAuth2.

This command will:
1. Print a URL to open in your browser
2. Wait for Google to redirect back to a local callback
3. Save the refresh token to your config file

You'll need to run this once before 'studmoney export sheets'.`,
		RunE: runAuthSheets,
	}

	cmd.Flags().String("client-id", "", "OAuth2 Client ID (overrides config)")
	cmd.Flags().String("client-secret", "", "OAuth2 Client Secret (overrides config)")
	cmd.Flags().String("callback", sheets.DefaultCallbackAddr, "address of the local callback server")
	cmd.Flags().Duration("timeout", sheets.DefaultAuthTimeout, "how long to wait for the browser")

	return cmd
}

func runAuthSheets(cmd *cobra.Command, _ []string) error {
	clientID := viper.GetString("sheets.client_id")
	clientSecret := viper.GetString("sheets.client_secret")

	if flagID, _ := cmd.Flags().GetString("client-id"); flagID != "" {
		clientID = flagID
	}
	if flagSecret, _ := cmd.Flags().GetString("client-secret"); flagSecret != "" {
		clientSecret = flagSecret
	}
	if clientID == "" {
		clientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if clientSecret == "" {
		clientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}

	if clientID == "" || clientSecret == "" {
		return common.NewUserError("OAuth2 credentials not found. Set sheets.client_id and sheets.client_secret in config or use --client-id and --client-secret", nil)
	}

	callback, _ := cmd.Flags().GetString("callback")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	tokenFile := config.SheetsTokenFile()

	common.LogInfo("Starting Google Sheets authentication", common.Fields{"token_file": tokenFile})

	token, err := sheets.AuthenticateOAuth2Interactive(cmd.Context(), sheets.OAuth2Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenFile:    tokenFile,
		CallbackAddr: callback,
		Timeout:      timeout,
	})
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	out := cmd.OutOrStdout()
	viper.Set("sheets.client_id", clientID)
	viper.Set("sheets.client_secret", clientSecret)
	viper.Set("sheets.refresh_token", token.RefreshToken)

	if err := saveConfig(); err != nil {
		common.LogWarn("Failed to update config file with refresh token", common.Fields{"error": err})
		fmt.Fprintln(out, cli.FormatWarning("Could not save the refresh token; add this to your config.yaml:"))
		fmt.Fprintf(out, "sheets:\n  refresh_token: %q\n", token.RefreshToken)
	} else {
		fmt.Fprintln(out, cli.FormatSuccess("Authentication successful!"))
	}

	if !token.Expiry.IsZero() {
		common.LogDebug("Access token issued", common.Fields{"expires_in": time.Until(token.Expiry).Round(time.Second)})
	}
	fmt.Fprintln(out, cli.FormatInfo("Run 'studmoney export sheets' to publish your monthly report."))

	return nil
}
