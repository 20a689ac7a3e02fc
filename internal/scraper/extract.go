package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/sheetgrab/internal/utils"
)

func FetchPage(ctx context.Context, session *utils.Session, pageURL string) (string, error) {
	html, status, err := session.GetText(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("error fetching page: %w", err)
	}
	log.Debug().Str("op", "scraper/extract").Msgf("Fetched %s (status %d, %d bytes)", pageURL, status, len(html))
	return html, nil
}

func matchesOf(p Pattern, html string) []string {
	var out []string
	for _, m := range p.Expr.FindAllStringSubmatch(html, -1) {
		if len(m) > 1 {
			out = append(out, m[1])
		} else {
			out = append(out, m[0])
		}
	}
	return out
}

// ExtractLinks returns every match of the first pattern that matches at all, or nil.
func ExtractLinks(html string, patterns []Pattern) []string {
	for _, p := range patterns {
		if matches := matchesOf(p, html); len(matches) > 0 {
			log.Debug().Str("op", "scraper/extract").Msgf("Pattern %s matched %d link(s)", p.Name, len(matches))
			return matches
		}
	}
	return nil
}

// ScanLinks collects the matches of all patterns in order.
func ScanLinks(html string, patterns []Pattern) []string {
	var found []string
	for _, p := range patterns {
		found = append(found, matchesOf(p, html)...)
	}
	return found
}

func AbsoluteSpreadsheetLinks(html string) []string {
	return absoluteSheetRegex.FindAllString(html, -1)
}

// ResolveLink makes link absolute against pageURL unless it already starts with "http".
func ResolveLink(pageURL, link string) (string, error) {
	if strings.HasPrefix(link, "http") {
		return link, nil
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page URL: %w", err)
	}
	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid link %q: %w", link, err)
	}
	return base.ResolveReference(ref).String(), nil
}
