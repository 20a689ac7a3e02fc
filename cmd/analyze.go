package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/sheetgrab/internal/downloaders/attachment"
	"github.com/tanq16/sheetgrab/internal/output"
	"github.com/tanq16/sheetgrab/internal/scraper"
	"github.com/tanq16/sheetgrab/internal/utils"
)

func newAnalyzeCmd() *cobra.Command {
	var htmlOut string
	var cookies string
	var mobile bool
	var radius int

	cmd := &cobra.Command{
		Use:   "analyze [POST_URL] [--mobile] [--html-out FILE]",
		Short: "Inspect a post for spreadsheet links and related text",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if cookies == "" {
				cookies = os.Getenv(cookieEnv)
			}
			postURL := utils.DefaultPostURL
			agent := userAgent
			keywords := scraper.DefaultKeywords
			if mobile {
				postURL = utils.MobilePostURL
				keywords = scraper.MobileKeywords
				if !cmd.Flags().Changed("user-agent") {
					agent = utils.MobileUserAgent
				}
			}
			if len(args) > 0 {
				postURL = args[0]
			}
			radius = contextRadius(mobile, cmd.Flags().Changed("radius"), radius)
			session := utils.NewSession(buildHTTPConfig(agent, utils.ParseCookieString(cookies)))
			output.PrintInfo(fmt.Sprintf("Fetching %s", postURL))
			html, err := scraper.FetchPage(cmd.Context(), session, postURL)
			if err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}
			report := scraper.Analyze(html, scraper.AnalyzeOptions{Keywords: keywords, Radius: radius})
			printReport(report)
			if htmlOut != "" {
				if err := attachment.SavePage(htmlOut, html); err != nil {
					output.PrintError(err.Error())
					os.Exit(1)
				}
				output.PrintSuccess(fmt.Sprintf("HTML saved to %s", htmlOut))
			}
		},
	}

	cmd.Flags().StringVar(&htmlOut, "html-out", utils.DefaultHTMLDump, "Where to dump the raw HTML (empty to skip)")
	cmd.Flags().StringVarP(&cookies, "cookies", "c", "", "Cookie header value (name=value; name2=value2); defaults to $SHEETGRAB_COOKIES")
	cmd.Flags().BoolVarP(&mobile, "mobile", "m", false, "Use the mobile site and user agent")
	cmd.Flags().IntVarP(&radius, "radius", "r", scraper.DefaultRadius, "Characters of context to show around each keyword (mobile default 300)")
	return cmd
}

// contextRadius picks the keyword context radius; an explicit --radius always wins.
func contextRadius(mobile, radiusSet bool, radius int) int {
	if mobile && !radiusSet {
		return scraper.MobileRadius
	}
	return radius
}

func printReport(report scraper.Report) {
	output.PrintDetail(fmt.Sprintf("HTML length: %d bytes", report.Length))
	if report.Title != "" {
		output.PrintDetail(fmt.Sprintf("Title: %s", report.Title))
	}
	for _, hit := range report.Keywords {
		var snippets []string
		for _, s := range hit.Snippets {
			snippets = append(snippets, output.Truncate(s, 150))
		}
		output.PrintList(fmt.Sprintf("'%s' (%d)", hit.Keyword, hit.Count), snippets)
	}
	for _, pc := range report.PatternCounts {
		output.PrintList(fmt.Sprintf("%s: %d found", pc.Pattern, pc.Count), pc.Samples)
	}
	if len(report.Links) > 0 {
		output.PrintList("Spreadsheet links", report.Links[:min(len(report.Links), 5)])
	}
	if len(report.AbsoluteLinks) > 0 {
		output.PrintList("Absolute spreadsheet URLs", report.AbsoluteLinks)
	}
	if len(report.Contents) > 0 {
		output.PrintList("Post body", []string{output.Truncate(report.Contents[0], 500)})
	}
	if len(report.Links) == 0 && len(report.AbsoluteLinks) == 0 {
		output.PrintWarning("No spreadsheet links found; the attachment list may be rendered by script or require login")
	}
}
