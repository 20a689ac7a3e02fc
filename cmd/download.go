package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/sheetgrab/internal/output"
	"github.com/tanq16/sheetgrab/internal/scheduler"
	"github.com/tanq16/sheetgrab/internal/utils"
)

func newDownloadCmd() *cobra.Command {
	var outputPath string
	var cookies string
	var listFile string
	var uploadURI string
	var profile string
	var strict bool

	cmd := &cobra.Command{
		Use:   "download [POST_URL] [--cookies COOKIES] [--output OUTPUT_PATH]",
		Short: "Find the spreadsheet attached to a post and download it",
		Long: `Fetch a post with the given cookies, look for an attached spreadsheet link,
and save it locally. Copy the Cookie request header from a logged-in browser
session (see "sheetgrab login").

Examples:
  sheetgrab download --cookies "NID_AUT=...; NID_SES=..."
  sheetgrab download https://cafe.naver.com/realfarm/844033 -o prices.xlsx
  sheetgrab download --list posts.yaml
  sheetgrab download --cookies "$COOKIES" --upload s3://bucket/sheets/`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if cookies == "" {
				cookies = os.Getenv(cookieEnv)
			}
			if listFile != "" && len(args) > 0 {
				output.PrintError("Cannot specify url argument and --list together, choose one")
				os.Exit(1)
			}
			var jobs []utils.SheetJob
			if listFile != "" {
				entries, err := utils.ReadDownloadList(listFile)
				if err != nil {
					output.PrintError(err.Error())
					os.Exit(1)
				}
				for _, entry := range entries {
					jobs = append(jobs, utils.SheetJob{
						PostURL:          entry.URL,
						OutputPath:       entry.OutputPath,
						UploadURI:        entry.Upload,
						AWSProfile:       profile,
						HTTPClientConfig: buildHTTPConfig(userAgent, utils.ParseCookieString(entry.Cookies)),
					})
				}
			} else {
				postURL := utils.DefaultPostURL
				if len(args) > 0 {
					postURL = args[0]
				}
				jobs = append(jobs, utils.SheetJob{
					PostURL:          postURL,
					OutputPath:       outputPath,
					UploadURI:        uploadURI,
					AWSProfile:       profile,
					HTTPClientConfig: buildHTTPConfig(userAgent, utils.ParseCookieString(cookies)),
				})
			}
			if len(jobs) == 0 {
				output.PrintError("No valid entries found in the list file")
				os.Exit(1)
			}
			_, err := scheduler.Run(cmd.Context(), jobs)
			if err != nil {
				output.PrintError(err.Error())
			}
			if code := downloadExitCode(err, strict); code != 0 {
				os.Exit(code)
			}
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", utils.DefaultOutputPath, "Output file path")
	cmd.Flags().StringVarP(&cookies, "cookies", "c", "", "Cookie header value (name=value; name2=value2); defaults to $SHEETGRAB_COOKIES")
	cmd.Flags().StringVarP(&listFile, "list", "l", "", "Path to YAML file with posts to process")
	cmd.Flags().StringVar(&uploadURI, "upload", "", "Also upload the spreadsheet to s3://BUCKET/KEY")
	cmd.Flags().StringVar(&profile, "profile", "", "AWS profile to use for --upload")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 when any job fails")
	return cmd
}

// downloadExitCode reports job failures as a normal exit unless strict is set.
func downloadExitCode(err error, strict bool) int {
	if err != nil && strict {
		return 1
	}
	return 0
}
