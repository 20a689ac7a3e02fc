package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxContextRadius = 1000

// Context radius defaults for the desktop and mobile pages.
const (
	DefaultRadius = 200
	MobileRadius  = 300
)

type KeywordHit struct {
	Keyword  string
	Count    int
	Snippets []string
}

type PatternCount struct {
	Pattern string
	Count   int
	Samples []string
}

type Report struct {
	Title         string
	Length        int
	Keywords      []KeywordHit
	PatternCounts []PatternCount
	Links         []string
	AbsoluteLinks []string
	Contents      []string
}

type AnalyzeOptions struct {
	Keywords    []string
	Radius      int
	SampleLimit int
}

// StripTags drops markup and collapses runs of whitespace into single spaces.
func StripTags(fragment string) string {
	text := tagRegex.ReplaceAllString(fragment, " ")
	return strings.TrimSpace(spaceRegex.ReplaceAllString(text, " "))
}

func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// KeywordContexts returns the cleaned text around each case-insensitive occurrence of
// keyword, up to radius runes on either side and never crossing a line break.
func KeywordContexts(html, keyword string, radius int) []string {
	radius = max(0, min(radius, maxContextRadius))
	expr := regexp.MustCompile(fmt.Sprintf(`(?i).{0,%d}%s.{0,%d}`, radius, regexp.QuoteMeta(keyword), radius))
	var contexts []string
	for _, match := range expr.FindAllString(html, -1) {
		contexts = append(contexts, StripTags(match))
	}
	return contexts
}

// ContentBlocks returns the text of content-like containers and article elements.
func ContentBlocks(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	var blocks []string
	doc.Find("div, article").Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "div" && !hasContentAttr(s) {
			return
		}
		if text := strings.TrimSpace(spaceRegex.ReplaceAllString(s.Text(), " ")); text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks
}

func hasContentAttr(s *goquery.Selection) bool {
	for _, attr := range []string{"class", "id"} {
		if value, ok := s.Attr(attr); ok && strings.Contains(strings.ToLower(value), "content") {
			return true
		}
	}
	return false
}

func Analyze(html string, opts AnalyzeOptions) Report {
	if len(opts.Keywords) == 0 {
		opts.Keywords = DefaultKeywords
	}
	if opts.Radius == 0 {
		opts.Radius = DefaultRadius
	}
	if opts.SampleLimit == 0 {
		opts.SampleLimit = 3
	}
	report := Report{
		Title:         Title(html),
		Length:        len(html),
		Links:         ScanLinks(html, ExploratoryPatterns),
		AbsoluteLinks: AbsoluteSpreadsheetLinks(html),
		Contents:      ContentBlocks(html),
	}
	for _, keyword := range opts.Keywords {
		contexts := KeywordContexts(html, keyword, opts.Radius)
		if len(contexts) == 0 {
			continue
		}
		report.Keywords = append(report.Keywords, KeywordHit{
			Keyword:  keyword,
			Count:    len(contexts),
			Snippets: contexts[:min(len(contexts), opts.SampleLimit)],
		})
	}
	for _, p := range countPatterns {
		matches := p.Expr.FindAllString(html, -1)
		if len(matches) == 0 {
			continue
		}
		report.PatternCounts = append(report.PatternCounts, PatternCount{
			Pattern: p.Name,
			Count:   len(matches),
			Samples: matches[:min(len(matches), opts.SampleLimit)],
		})
	}
	return report
}
