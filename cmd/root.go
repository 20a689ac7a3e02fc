package cmd

import (
	"fmt"
	u "net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tanq16/sheetgrab/internal/output"
	"github.com/tanq16/sheetgrab/internal/utils"
)

var (
	timeout   time.Duration
	userAgent string
	proxyURL  string
	headers   []string
	debug     bool
)

var SheetgrabVersion = "dev"

const cookieEnv = "SHEETGRAB_COOKIES"

var rootCmd = &cobra.Command{
	Use:     "sheetgrab",
	Short:   "Sheetgrab finds and downloads spreadsheets attached to forum posts",
	Version: SheetgrabVersion,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", time.Minute, "Request timeout (eg. 5s, 10m)")
	rootCmd.PersistentFlags().StringVarP(&userAgent, "user-agent", "a", utils.DesktopUserAgent, "User agent (\"randomize\" picks one)")
	rootCmd.PersistentFlags().StringVarP(&proxyURL, "proxy", "p", "", "HTTP/HTTPS proxy URL (e.g., proxy.example.com:8080)")
	rootCmd.PersistentFlags().StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers (like 'Referer: https://cafe.naver.com'); can be specified multiple times")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCleanCmd())
}

func buildHTTPConfig(agent string, cookies map[string]string) utils.HTTPClientConfig {
	if agent == "randomize" {
		agent = utils.GetRandomUserAgent()
	}
	if proxyURL != "" {
		if _, err := u.Parse(proxyURL); err != nil {
			output.PrintError("Invalid proxy URL format")
			os.Exit(1)
		}
	}
	return utils.HTTPClientConfig{
		Timeout:   timeout,
		ProxyURL:  proxyURL,
		UserAgent: agent,
		Headers:   utils.ParseHeaderArgs(headers),
		Cookies:   cookies,
	}
}
