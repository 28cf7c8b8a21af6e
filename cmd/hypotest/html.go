// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("report").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Significance Test Report</title>
<style>
.hypotest { border-collapse: collapse; }
.hypotest th { text-align: left; border-bottom: 1px solid #666; padding: 0em 1em; }
.hypotest td { padding: 0em 1em; }
.hypotest tr.reject td { font-weight: bold; }
</style>
</head>
<body>
<table class='hypotest'>
<tr><th>samples</th><th>result</th><th>verdict</th></tr>
{{range . -}}
<tr class='{{if .Reject}}reject{{else}}accept{{end}}'><td>{{.Names}}</td><td>{{.Result}}</td><td>{{.Verdict}}</td></tr>
{{end -}}
</table>
</body>
</html>
`)))

// writeHTML renders the comparisons as a standalone HTML page.
func writeHTML(w io.Writer, rows []row) error {
	return htmlTemplate.Execute(w, rows)
}
