package install

// Message constants
const (
	MsgShort = "Install a module: place its descriptor and register its paths"

	MsgLong = `The 'install' command performs the full module installation:
  - Finds the module description (.mod) file in the module directory
  - Copies it into the user modules folder with its path field rewritten
    to the module's absolute location
  - Registers the module directory in the module search path variable
  - Registers the icons folder, when the module ships one

Installation aborts when the module directory holds no .mod file.
Without an argument, the current directory is installed.`

	MsgExample = `  # Install the module in the current directory
  mayamod install

  # Install an unpacked module
  mayamod install ~/downloads/sppaint3d

  # Preview without writing anything
  mayamod install --dry-run ~/downloads/sppaint3d`

	MsgInstalled               = "Installed module %s: descriptor placed at %s"
	MsgWouldInstall            = "Would install module %s: descriptor would be placed at %s"
	MsgModuleRegistered        = "Registered %s in %s."
	MsgModuleAlreadyRegistered = "Module directory already registered in %s."
	MsgIconsRegistered         = "Registered icons folder %s in %s."
	MsgNewSessionHint          = "Restart Maya for the module to be picked up, then run 'mayamod status' to verify."
)
