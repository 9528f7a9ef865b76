package database

// Cmd groups the D1 database commands.
type Cmd struct {
	Create CreateCmd `cmd:"" help:"Create a new D1 database."`
}
