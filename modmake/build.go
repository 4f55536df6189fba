package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	taskingVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	for _, app := range []struct {
		name string
		path string
	}{
		{"taskserver", "cmd/taskserver"},
		{"xorenc", "cmd/xorenc"},
	} {
		a := NewAppBuild(app.name, app.path, taskingVersion)
		a.Build(func(gb *GoBuild) {
			gb.
				StripDebugSymbols().
				SetVariable("main", "version", taskingVersion).
				CgoEnabled(false)
		})
		a.Variant("linux", "amd64")
		a.Variant("linux", "arm64")
		a.Variant("darwin", "arm64")
		b.ImportApp(a)
	}

	b.Execute()
}
