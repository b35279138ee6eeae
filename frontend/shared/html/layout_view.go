package html

import "fmt"

const layoutShell = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s · Turnify</title>
<link rel="stylesheet" href="/assets/app.css">
</head>
<body class="portal">
%s
</body>
</html>`

// RenderLayout wraps page body markup in the shared portal shell.
func RenderLayout(title, body string) string {
	return fmt.Sprintf(layoutShell, title, body)
}
