package plan

// Message constants
const (
	MsgShort = "Preview config file reconciliation without applying"
	MsgLong  = `The 'plan' command decides the outcome for every config path in the
manifests but does not touch the target root: no files are written, renamed
or removed. The output shows what 'apply' would do.`

	MsgExample = `  # Preview an upgrade
  confrec plan --old installed.toml --new shipped.toml

  # Preview an erase against a staging root
  confrec plan --old installed.toml --root ./stage`
)
