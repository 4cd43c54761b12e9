package htmldoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/greedytable/listtree"
)

func rowsOf(t *testing.T, root listtree.Node) [][]string {
	t.Helper()
	require.Len(t, root.Children(), 1)
	var rows [][]string
	for _, item := range root.Children()[0].Children() {
		require.Len(t, item.Children(), 1, "row item should hold one list")
		var row []string
		for _, cell := range item.Children()[0].Children() {
			row = append(row, listtree.TextContent(cell))
		}
		rows = append(rows, row)
	}
	return rows
}

const twoLevel = `<!DOCTYPE html>
<html>
<head><title>Test</title><style>li { color: red }</style></head>
<body>
	<ul>
		<li><ul><li>A</li><li>B</li><li>C</li></ul></li>
		<li><ul><li>D</li></ul></li>
	</ul>
</body>
</html>`

func TestOpenReader_TwoLevelList(t *testing.T) {
	r, err := OpenReader(strings.NewReader(twoLevel))
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D"}}, rowsOf(t, r.Tree()))
}

func TestOpenReader_InvalidHTML(t *testing.T) {
	// Even malformed HTML should parse (HTML parser is lenient)
	r, err := OpenReader(strings.NewReader(`<ul><li><ul><li>unclosed`))
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, [][]string{{"unclosed"}}, rowsOf(t, r.Tree()))
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.html")
	assert.Error(t, err)
}

func TestOpen_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.html")
	require.NoError(t, os.WriteFile(path, []byte(twoLevel), 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	assert.Len(t, r.Tree().Children(), 1)
}

func TestReader_Close(t *testing.T) {
	r, err := OpenReader(strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())
}

func TestTree_InlineAndBlockContent(t *testing.T) {
	doc := `<ul>
	<li><ul>
		<li>Hello <b>bold</b>world</li>
		<li><p>First</p><p>Second</p></li>
	</ul></li>
</ul>`
	r, err := OpenReader(strings.NewReader(doc))
	require.NoError(t, err)

	tree := r.Tree()
	cells := tree.Children()[0].Children()[0].Children()[0].Children()
	require.Len(t, cells, 2)

	require.Len(t, cells[0].Children(), 1)
	assert.Equal(t, "Hello boldworld", cells[0].Children()[0].Text())

	require.Len(t, cells[1].Children(), 2)
	assert.Equal(t, "First", cells[1].Children()[0].Text())
	assert.Equal(t, "Second", cells[1].Children()[1].Text())
}

func TestTree_OrderedLists(t *testing.T) {
	r, err := OpenReader(strings.NewReader(`<ol><li><ul><li>x</li></ul></li></ol>`))
	require.NoError(t, err)

	outer := r.Tree().Children()[0]
	assert.Equal(t, listtree.KindEnumeratedList, outer.Kind())
	assert.True(t, listtree.IsList(outer))
	assert.False(t, listtree.IsBulletList(outer))

	inner := outer.Children()[0].Children()[0]
	assert.Equal(t, listtree.KindList, inner.Kind())
}

func TestTree_FlatRow(t *testing.T) {
	r, err := OpenReader(strings.NewReader(`<ul><li><ul><li>a</li></ul></li><li>flat</li></ul>`))
	require.NoError(t, err)

	rows := r.Tree().Children()[0].Children()
	require.Len(t, rows, 2)
	require.Len(t, rows[1].Children(), 1)
	assert.Equal(t, listtree.KindParagraph, rows[1].Children()[0].Kind())
}

func TestTree_BodyContentAroundList(t *testing.T) {
	r, err := OpenReader(strings.NewReader(`<body><h1>Title</h1><div><ul><li>x</li></ul></div></body>`))
	require.NoError(t, err)

	tree := r.Tree()
	require.Len(t, tree.Children(), 2)
	assert.Equal(t, listtree.KindParagraph, tree.Children()[0].Kind())
	assert.Equal(t, "Title", tree.Children()[0].Text())
	assert.True(t, listtree.IsList(tree.Children()[1]))
}

func TestTree_SkipsScripts(t *testing.T) {
	r, err := OpenReader(strings.NewReader(`<ul><li><ul><li>a<script>evil()</script></li></ul></li></ul>`))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}}, rowsOf(t, r.Tree()))
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "a b c", collapseSpace("  a\n\tb   c "))
	assert.Equal(t, "", collapseSpace(" \n "))
}
