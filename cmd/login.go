package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tanq16/sheetgrab/internal/output"
	"github.com/tanq16/sheetgrab/internal/scraper"
	"github.com/tanq16/sheetgrab/internal/utils"
)

var cookieSteps = []string{
	"Log in to Naver in a browser",
	"Open developer tools (F12) and switch to the Network tab",
	"Open the cafe post",
	"Copy the Cookie value from the request headers",
	"Pass it to: sheetgrab download --cookies \"<value>\"",
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Explain how to supply a logged-in session",
		Long: `Naver login is protected against scripted sign-in, so sheetgrab never
submits credentials. This command checks that the login page is reachable and
prints the steps for reusing a browser session's cookies instead.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.PrintRule("Naver login")
			session := utils.NewSession(buildHTTPConfig(userAgent, nil))
			output.PrintInfo("Connecting to the login page...")
			if _, err := scraper.FetchPage(cmd.Context(), session, utils.LoginURL); err != nil {
				output.PrintError(fmt.Sprintf("Login page unreachable: %v", err))
			} else {
				output.PrintSuccess("Login page reachable")
			}
			fmt.Println()
			output.PrintWarning("Naver login is hardened and cannot be automated reliably.")
			output.PrintList("Alternatives", []string{
				"Copy the cookies from a browser session (below)",
				"Download the file manually and point other tools at it",
			})
			fmt.Println()
			output.PrintRule("Downloading with cookies")
			output.PrintList("Steps", cookieSteps)
		},
	}
}
