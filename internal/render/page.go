package render

import "github.com/goliatone/go-filecms/pkg/interfaces"

var markdownDefaults = interfaces.ParseOptions{}

const documentPage = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>{{ .Title }}</title>
  </head>
  <body>
    <main>
{{ .Body }}
    </main>
    <p><a href="/">Back to documents</a></p>
  </body>
</html>
`
