package database

import (
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/d1ctl/d1ctl/internal/api"
	"github.com/d1ctl/d1ctl/internal/ui"
)

const (
	defaultBinding = "DB"
	bindingComment = " # i.e. available in your Worker on env.DB"
)

// d1Database holds the encoded fields of a d1_databases entry. The table
// header and the binding line are written around them.
type d1Database struct {
	DatabaseName string `toml:"database_name"`
	DatabaseID   string `toml:"database_id"`
}

// bindingSnippet returns the wrangler.toml block that binds db to a Worker.
func bindingSnippet(db *api.Database) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("[[d1_databases]]\n")
	buf.WriteString(`binding = "` + defaultBinding + `"` + bindingComment + "\n")

	err := toml.NewEncoder(&buf).Encode(d1Database{
		DatabaseName: db.Name,
		DatabaseID:   db.UUID,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// render formats the report for a newly created database. hint is the
// requested primary location hint; when empty the hint echoed by the server
// is shown instead.
func render(db *api.Database, hint string, styles ui.Styles) (string, error) {
	snippet, err := bindingSnippet(db)
	if err != nil {
		return "", err
	}

	if hint == "" {
		hint = db.PrimaryLocationHint
	}

	var lines []string
	if db.CreatedInColo != "" {
		created := "✅ Created " + styles.Highlight.Render(db.Name) +
			styles.Dim.Render(" ("+db.UUID+")") +
			" with Primary in " + styles.Highlight.Render(db.CreatedInColo)
		if hint != "" {
			created += styles.Dim.Render(" (requested ") + styles.Bold.Render(hint+")")
		}
		lines = append(lines,
			created+".",
			"Prefer a different location? Delete this DB then use the "+
				styles.Bold.Render("--primary-location-hint")+" argument.",
		)
	} else {
		lines = append(lines, "✅ Successfully created DB '"+db.Name+"'!")
	}

	lines = append(lines,
		"",
		"Add the following to your wrangler.toml to connect to it from a Worker:",
		"",
	)
	for _, line := range strings.Split(snippet, "\n") {
		lines = append(lines, styles.Muted.Render(line))
	}

	return strings.Join(lines, "\n"), nil
}
