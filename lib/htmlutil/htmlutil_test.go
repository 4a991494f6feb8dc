package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	require.Equal(t, "Legal Name", Clean("  Legal \n\t Name "))
	require.Equal(t, "UBER", Clean("\x00UBER\n"))
}

func TestTrailingText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div id="c">Legal Name: UBER INDIA SYSTEMS</div>`,
	))
	require.NoError(t, err)

	node := doc.Find("#c").Nodes[0]
	require.Equal(t, "UBER INDIA SYSTEMS", TrailingText(node, "Legal Name"))
	require.Equal(t, "Legal Name: UBER INDIA SYSTEMS", TrailingText(node, "Trade Name"))
}
