package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulemd/rulemd/internal/app/service"
	"github.com/rulemd/rulemd/internal/app/service/rules"
	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
)

func newEngines(t *testing.T) (*service.ParseEngine, *service.OutputEngine) {
	t.Helper()
	table := rules.BuildDefaultRules()
	engine := service.NewParseEngine(table)
	require.Empty(t, engine.Warnings())
	output, err := service.NewOutputEngine(table)
	require.NoError(t, err)
	return engine, output
}

func renderHTML(t *testing.T, source string) string {
	t.Helper()
	engine, output := newEngines(t)
	nodes, err := engine.Parse(source, value.NewState())
	require.NoError(t, err)
	return output.RenderHTML(nodes, &entity.RenderState{})
}

func TestHeadingATXAndSetext(t *testing.T) {
	assert.Equal(t, "<h1>Title</h1>", renderHTML(t, "# Title\n\n"))
	assert.Equal(t, "<h2>Sub</h2>", renderHTML(t, "Sub\n---\n\n"))
}

func TestParagraphAndNewline(t *testing.T) {
	html := renderHTML(t, "one\n\ntwo\n\n")
	assert.Equal(t, `<div class="paragraph">one</div><div class="paragraph">two</div>`, html)
}

func TestHorizontalRule(t *testing.T) {
	assert.Equal(t, "<hr>", renderHTML(t, "---\n\n"))
}

func TestBlockQuoteStripsEveryLine(t *testing.T) {
	html := renderHTML(t, "> line one\n> line two\n\n")
	assert.Equal(t, "<blockquote><div class=\"paragraph\">line one\nline two</div></blockquote>", html)
}

func TestIndentedCodeBlock(t *testing.T) {
	html := renderHTML(t, "    code here\n\n")
	assert.Equal(t, "<pre><code>code here</code></pre>", html)
}

func TestFencedCodeBlockWithLanguage(t *testing.T) {
	html := renderHTML(t, "```go\nfmt.Println(1)\n```\n\n")
	assert.Equal(t, `<pre><code class="markdown-code-go">fmt.Println(1)</code></pre>`, html)
}

func TestEmphasisAndStrongPrecedence(t *testing.T) {
	assert.Equal(t, `<div class="paragraph"><em>x</em></div>`, renderHTML(t, "*x*\n\n"))
	assert.Equal(t, `<div class="paragraph"><strong>x</strong></div>`, renderHTML(t, "**x**\n\n"))
	assert.Equal(t, `<div class="paragraph"><u>x</u></div>`, renderHTML(t, "__x__\n\n"))
	assert.Equal(t, `<div class="paragraph"><del>x</del></div>`, renderHTML(t, "~~x~~\n\n"))
}

func TestInlineCodeBacktickBalancing(t *testing.T) {
	html := renderHTML(t, "``a`b``\n\n")
	assert.Contains(t, html, "<code>a`b</code>")
}

func TestHardBreak(t *testing.T) {
	html := renderHTML(t, "a  \nb\n\n")
	assert.Contains(t, html, "<br>")
}

func TestAutolinkMailtoAndBareURL(t *testing.T) {
	assert.Contains(t, renderHTML(t, "<http://example.com>\n\n"), `href="http://example.com"`)
	assert.Contains(t, renderHTML(t, "<a@b.com>\n\n"), `href="mailto:a@b.com"`)
	assert.Contains(t, renderHTML(t, "see http://example.com/path for info\n\n"), `href="http://example.com/path"`)
}

func TestLinkAndImage(t *testing.T) {
	html := renderHTML(t, "[text](http://example.com \"title\")\n\n")
	assert.Contains(t, html, `href="http://example.com"`)
	assert.Contains(t, html, `title="title"`)
	assert.Contains(t, html, ">text<")

	imgHTML := renderHTML(t, "![alt](http://example.com/x.png)\n\n")
	assert.Contains(t, imgHTML, `src="http://example.com/x.png"`)
	assert.Contains(t, imgHTML, `alt="alt"`)
}

func TestReferenceLinkResolvesForwardAndBackward(t *testing.T) {
	forward := renderHTML(t, "[a][ref]\n\n[ref]: http://example.com\n\n")
	assert.Contains(t, forward, `href="http://example.com"`)

	backward := renderHTML(t, "[ref]: http://example.com\n\n[a][ref]\n\n")
	assert.Contains(t, backward, `href="http://example.com"`)
}

func TestReferenceLinkAnonymousFallsBackToText(t *testing.T) {
	html := renderHTML(t, "[example]: http://example.com\n\n[example][]\n\n")
	assert.Contains(t, html, `href="http://example.com"`)
}

func TestSanitizedJavascriptURLIsRejected(t *testing.T) {
	html := renderHTML(t, "[x](javascript:alert(1))\n\n")
	assert.NotContains(t, html, "javascript:")
}

func TestUnorderedListSimple(t *testing.T) {
	html := renderHTML(t, "- a\n- b\n\n")
	assert.Equal(t, "<ul><li>a</li><li>b</li></ul>", html)
}

func TestOrderedListStartsAtBulletValue(t *testing.T) {
	engine, output := newEngines(t)
	nodes, err := engine.Parse("3. a\n4. b\n\n", value.NewState())
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Equal(t, value.NodeList, nodes[0].Type)
	assert.True(t, nodes[0].Ordered)
	require.NotNil(t, nodes[0].Start)
	assert.Equal(t, 3, *nodes[0].Start)
	html := output.RenderHTML(nodes, &entity.RenderState{})
	assert.Equal(t, "<ol><li>a</li><li>b</li></ol>", html)
}

func TestListParagraphModeContagion(t *testing.T) {
	engine, _ := newEngines(t)
	nodes, err := engine.Parse("- a\n\n  still a\n- b\n\n", value.NewState())
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	list := nodes[0]
	require.Len(t, list.Items, 2)
	// Item a contains a blank line, so it is paragraph-mode; contagion
	// forces the last item (b) to paragraph-mode too even without one.
	assert.Equal(t, value.NodeParagraph, list.Items[1][0].Type)
}

func TestNestedListInsideListItem(t *testing.T) {
	html := renderHTML(t, "- a\n  - nested\n- b\n\n")
	assert.Contains(t, html, "<ul>")
	assert.Contains(t, html, ">nested<")
}

func TestPipeBoundedTable(t *testing.T) {
	source := "| A | B |\n| - | -: |\n| 1 | 2 |\n\n"
	html := renderHTML(t, source)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<th")
	assert.Contains(t, html, ">A<")
	assert.Contains(t, html, `style="text-align:right;"`)
	assert.Contains(t, html, ">1<")
}

func TestNonPipeBoundedTable(t *testing.T) {
	source := "A | B\n- | -\n1 | 2\n\n"
	html := renderHTML(t, source)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, ">1<")
}

func TestEscapedPunctuation(t *testing.T) {
	html := renderHTML(t, "\\*not em\\*\n\n")
	assert.Equal(t, `<div class="paragraph">*not em*</div>`, html)
}

func TestSanitizeTextEscapesHTML(t *testing.T) {
	html := renderHTML(t, "<script>\n\n")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestBuildDefaultRulesHasNoOrderWarnings(t *testing.T) {
	table := rules.BuildDefaultRules()
	_, warnings := table.Build()
	assert.Empty(t, warnings)
}

func TestBuildDefaultRulesRegistersArrayJoiner(t *testing.T) {
	table := rules.BuildDefaultRules()
	_, ok := table.Array()
	assert.True(t, ok)
}
