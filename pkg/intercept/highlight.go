package intercept

import (
	"bufio"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// snippetStyle is the chroma style used for source snippets.
const snippetStyle = "dracula"

// sourceLine returns line n (1-based) of file, without its newline.
func sourceLine(file string, n int) (string, bool) {
	if n < 1 {
		return "", false
	}

	f, err := os.Open(file)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 1; scanner.Scan(); i++ {
		if i == n {
			return scanner.Text(), true
		}
	}
	return "", false
}

// highlight renders one line of source with colours picked by the lexer
// matching filename. Lines the lexer can't handle come back plain.
func highlight(r *lipgloss.Renderer, filename, src string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return src
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	style := styles.Get(snippetStyle)
	if style == nil {
		style = styles.Fallback
	}

	var b strings.Builder
	for _, token := range iterator.Tokens() {
		text := strings.TrimRight(token.Value, "\n")
		if text == "" {
			continue
		}

		entry := style.Get(token.Type)
		if !entry.Colour.IsSet() {
			b.WriteString(text)
			continue
		}
		b.WriteString(r.NewStyle().Foreground(lipgloss.Color(entry.Colour.String())).Render(text))
	}
	return b.String()
}
