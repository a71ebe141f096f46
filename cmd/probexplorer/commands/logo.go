package commands

import (
	"bytes"

	"github.com/dimiro1/banner"
)

func logo() string {
	buf := bytes.NewBuffer(nil)

	templ := `
{{ .AnsiColor.BrightCyan }}
{{ .Title "ProbExplorer" "" 2 }}
{{ .AnsiColor.Default }}
`

	banner.InitString(buf, true, true, templ)

	return buf.String()
}
