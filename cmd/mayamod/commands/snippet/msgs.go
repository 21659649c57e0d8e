package snippet

// Message constants
const (
	MsgShort = "Output the shell snippet for inclusion in your profile"

	MsgLong = `On hosts without a per-user environment registry, mayamod persists
variables in a managed environment script. The 'snippet' command prints the
one-liner your shell profile needs in order to source that script.

On Windows the per-user registry is used instead and no snippet is needed.`

	MsgExample = `  # Append to your profile once
  mayamod snippet >> ~/.bashrc

  # Or for zsh
  mayamod snippet >> ~/.zshrc`

	MsgNotNeeded = "No profile snippet needed on this platform: values persist in the user registry."
)
