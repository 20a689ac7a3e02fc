package scraper

import "regexp"

// Pattern is a named rule for locating candidate links in a page body.
type Pattern struct {
	Name string
	Expr *regexp.Regexp
}

func newPattern(name, expr string) Pattern {
	return Pattern{Name: name, Expr: regexp.MustCompile(`(?i)` + expr)}
}

// AttachmentPatterns is ordered; the first rule with any match wins.
var AttachmentPatterns = []Pattern{
	newPattern("attach-href-xlsx", `href="([^"]*attach[^"]*\.xlsx[^"]*)"`),
	newPattern("attach-href-xls", `href="([^"]*attach[^"]*\.xls[^"]*)"`),
	newPattern("data-url-xlsx", `data-url="([^"]*\.xlsx[^"]*)"`),
	newPattern("data-file-sn", `data-file-sn="(\d+)"[^>]*\.xlsx`),
}

// ExploratoryPatterns are the broad rules reported by analyze.
var ExploratoryPatterns = []Pattern{
	newPattern("href-xlsx", `href="([^"]*\.xlsx[^"]*)"`),
	newPattern("href-xls", `href="([^"]*\.xls[^"]*)"`),
	newPattern("data-url-xlsx", `data-url="([^"]*\.xlsx[^"]*)"`),
	newPattern("data-url-xls", `data-url="([^"]*\.xls[^"]*)"`),
	newPattern("attach-path-xlsx", `/attach/[^"]*\.xlsx`),
	newPattern("attach-path-xls", `/attach/[^"]*\.xls`),
}

var countPatterns = []Pattern{
	newPattern(`attach[^"]*\.(xlsx|xls)`, `attach[^"]*\.(xlsx|xls)`),
	newPattern(`file[^"]*\.(xlsx|xls)`, `file[^"]*\.(xlsx|xls)`),
	newPattern(`download[^"]*\.(xlsx|xls)`, `download[^"]*\.(xlsx|xls)`),
	newPattern(`\.xlsx`, `\.xlsx`),
	newPattern(`\.xls`, `\.xls`),
}

var (
	absoluteSheetRegex = regexp.MustCompile(`(?i)https?://[^\s"<>]*\.(?:xlsx|xls)`)
	tagRegex           = regexp.MustCompile(`<[^>]+>`)
	spaceRegex         = regexp.MustCompile(`\s+`)
)

var DefaultKeywords = []string{"xlsx", "xls", "엑셀", "시세표", "첨부", "다운로드", "attach"}
var MobileKeywords = []string{"xlsx", "xls", "시세"}
