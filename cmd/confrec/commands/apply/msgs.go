package apply

// Message constants
const (
	MsgShort = "Reconcile and apply config file changes"
	MsgLong  = `The 'apply' command runs config-file reconciliation for one package
transaction and applies the outcomes to the target root.

For every config path in the manifests it decides between keeping the
on-disk file, writing the new content, backing the old content up first
(.rpmorig on install collisions, .rpmsave on upgrade conflicts and erases)
or writing the new content aside as .rpmnew, and then performs that action.

User-modified files are never silently destroyed: a modified file is always
preserved, either live or under a backup suffix.`

	MsgExample = `  # Upgrade a package's config files
  confrec apply --old installed.toml --new shipped.toml --payload ./payload

  # First install (no previous manifest)
  confrec apply --new shipped.toml --payload ./payload

  # Remove the last owner of the config paths
  confrec apply --old installed.toml

  # Operate on a staging root instead of /
  confrec apply --old installed.toml --new shipped.toml --payload ./payload --root ./stage`
)
