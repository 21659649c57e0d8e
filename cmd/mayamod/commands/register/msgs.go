package register

// Message constants
const (
	MsgShort   = "Add a module directory to the module search path"
	MsgFlagVar = "Environment variable to register into (default from config)"

	MsgLong = `The 'register' command makes sure a directory is an entry of the module
search path variable (MAYA_MODULE_PATH by default), at user scope.

The check-then-append is idempotent: when an existing entry already matches
the directory under the configured comparison policy, nothing is written.
Without an argument, the current directory is registered.`

	MsgExample = `  # Register the current directory
  mayamod register

  # Register an explicit module directory
  mayamod register ~/plugins/sppaint3d

  # Preview without persisting
  mayamod register --dry-run ~/plugins/sppaint3d

  # Register into a different variable
  mayamod register --var XBMLANGPATH ~/plugins/sppaint3d/icons`

	MsgAlreadyPresent = "Already registered: %s is an entry of %s. Nothing to do."
	MsgWouldRegister  = "Would register %s in %s. New value:\n  %s"
	MsgRegistered     = "Registered %s in %s."
	MsgNewSessionHint = "The change applies to newly started sessions. Restart Maya, then run 'mayamod status' to verify."
	MsgSnippetHint    = "Make sure your shell profile sources the mayamod environment script: see 'mayamod snippet'."
)
