package readability_test

import (
	nurl "net/url"
	"testing"

	"github.com/fwojciec/clarify"
	"github.com/fwojciec/clarify/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipePage = `<!DOCTYPE html>
<html>
<head>
<title>Sourdough basics | The Bakehouse</title>
<meta property="og:site_name" content="The Bakehouse">
</head>
<body>
<header><a href="/">The Bakehouse</a><nav><a href="/recipes">Recipes</a><a href="/shop">Shop</a></nav></header>
<main>
<article>
<h1>Sourdough basics</h1>
<p class="byline">By Sam Baker</p>
<p>A healthy starter is the foundation of every good loaf. Feed it twice a day with equal weights of flour and water and keep it somewhere warm.</p>
<p>Once the starter doubles within six hours it is ready to leaven bread. Mix it with flour, water and salt, then let the dough rest before shaping.</p>
<p>Bake in a preheated Dutch oven for the best crust, removing the lid halfway through so the loaf can brown evenly.</p>
</article>
</main>
<footer>Cookie settings | Privacy</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content and metadata", func(t *testing.T) {
		t.Parallel()

		article, err := readability.NewExtractor(nil).Extract(recipePage)

		require.NoError(t, err)
		assert.Contains(t, article.Title, "Sourdough basics")
		assert.Equal(t, "The Bakehouse", article.SiteName)
		assert.Contains(t, article.ContentHTML, "healthy starter is the foundation")
		assert.NotContains(t, article.ContentHTML, "Cookie settings")
	})

	t.Run("resolves relative links against the page URL", func(t *testing.T) {
		t.Parallel()

		u, err := nurl.Parse("https://bakehouse.example/guides/sourdough")
		require.NoError(t, err)
		page := `<html><head><title>Guide</title></head><body><article>
<p>Read the <a href="/guides/starter">starter guide</a> first. A healthy starter is the foundation of every good loaf and needs regular feeding with flour and water.</p>
<p>Once the starter doubles within six hours it is ready to leaven bread, so mix it with flour, water and salt.</p>
</article></body></html>`

		article, err := readability.NewExtractor(u).Extract(page)

		require.NoError(t, err)
		assert.Contains(t, article.ContentHTML, "https://bakehouse.example/guides/starter")
	})

	t.Run("returns invalid error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor(nil).Extract("")

		assert.Equal(t, clarify.EINVALID, clarify.ErrorCode(err))
	})
}
