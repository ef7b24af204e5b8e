package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PageData holds the fields every page shares
type PageData struct {
	Title string
}

// Base wraps body in the common page shell
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s | iota</title>
<style>%s</style>
</head>
<body>
<header><a href="/" class="brand">iota</a></header>
<main>
`, templ.EscapeString(data.Title), styles); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

const styles = `body{font-family:sans-serif;margin:2rem}
table.board{border-collapse:collapse}
table.board td{width:3.5rem;height:3.5rem;border:1px solid #ddd;text-align:center;font-size:.8rem}
td.pending{outline:2px dashed #333}
td.valid{background:#e6f7e6}
td.impossible{background:#f7e0e0}
.hand li{display:inline-block;margin-right:1rem}`
