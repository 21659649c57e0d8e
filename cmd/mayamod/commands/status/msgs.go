package status

// Message constants
const (
	MsgShort   = "Show whether a module directory is registered"
	MsgFlagVar = "Environment variable to inspect (default from config)"

	MsgLong = `The 'status' command reports whether a directory is an entry of the module
search path variable, and lists the current entries in order. It never
mutates anything.

Without an argument, the current directory is checked.`

	MsgExample = `  # Check the current directory
  mayamod status

  # Check a specific module directory
  mayamod status ~/plugins/sppaint3d

  # Inspect the icon search path instead
  mayamod status --var XBMLANGPATH ~/plugins/sppaint3d/icons`

	MsgRegistered    = "%s is registered in %s."
	MsgNotRegistered = "%s is NOT registered in %s."
	MsgNoEntries     = "%s is unset or empty."
	MsgEntriesHeader = "Current entries of %s:"
)
