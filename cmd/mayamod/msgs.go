package main

// Message constants
const (
	MsgRootShort = "Register Maya plugin modules for the current user"

	MsgRootLong = `mayamod keeps Maya's module search path correct for the current user.
It registers module directories in MAYA_MODULE_PATH (and icon folders in
XBMLANGPATH), and installs module description files into the user modules
folder, so a freshly unpacked plugin is available the next time Maya starts.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without persisting them"
)
