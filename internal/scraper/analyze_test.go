package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postFixture = `<html>
<head><title>2025년 5월 시세표 공유</title></head>
<body>
<div class="ArticleContentBox"><p>이번 달 <b>시세표</b> 첨부합니다.</p></div>
<div id="app">
<a href="/attach/2025-05.xlsx">2025-05.xlsx 다운로드</a>
</div>
<article><p>본문   내용</p></article>
</body>
</html>`

func TestTitle(t *testing.T) {
	assert.Equal(t, "2025년 5월 시세표 공유", Title(postFixture))
	assert.Equal(t, "", Title("<p>no title</p>"))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "이번 달 시세표 첨부합니다.", StripTags("<p>이번 달 <b>시세표</b>\n  첨부합니다.</p>"))
}

func TestKeywordContexts(t *testing.T) {
	contexts := KeywordContexts("aaaa XLSX bbbb\nline two xlsx", "xlsx", 3)
	require.Len(t, contexts, 2)
	assert.Equal(t, "aa XLSX bb", contexts[0])
	assert.Equal(t, "wo xlsx", contexts[1])

	assert.Empty(t, KeywordContexts("nothing here", "첨부", 10))
}

func TestContentBlocks(t *testing.T) {
	blocks := ContentBlocks(postFixture)
	require.Len(t, blocks, 2)
	assert.Equal(t, "이번 달 시세표 첨부합니다.", blocks[0])
	assert.Equal(t, "본문 내용", blocks[1])
}

func TestAnalyze(t *testing.T) {
	report := Analyze(postFixture, AnalyzeOptions{})
	assert.Equal(t, "2025년 5월 시세표 공유", report.Title)
	assert.Equal(t, len(postFixture), report.Length)
	assert.Contains(t, report.Links, "/attach/2025-05.xlsx")
	assert.Empty(t, report.AbsoluteLinks)

	keywords := map[string]int{}
	for _, hit := range report.Keywords {
		keywords[hit.Keyword] = hit.Count
		assert.LessOrEqual(t, len(hit.Snippets), 3)
	}
	assert.Equal(t, 2, keywords["시세표"])
	assert.Equal(t, 1, keywords["첨부"])
	assert.Equal(t, 1, keywords["다운로드"])
	assert.NotContains(t, keywords, "엑셀")

	var patterns []string
	for _, pc := range report.PatternCounts {
		patterns = append(patterns, pc.Pattern)
	}
	assert.True(t, strings.Contains(strings.Join(patterns, " "), `attach[^"]*\.(xlsx|xls)`))
}
