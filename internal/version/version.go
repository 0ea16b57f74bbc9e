package version

import "fmt"

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// asciiArtTpl returns the ASCII art banner of gsqlite.
func asciiArtTpl() string {
	asciiArt := `
                      __ _ __
   ____ __________ _ / /(_) /____
  / __ ` + "`" + `/ ___/ __ ` + "`" + `// / / / __/ _ \
 / /_/ (__  ) /_/ // / / / /_/  __/
 \__, /____/\__, //_/_/_/\__/\___/
/____/        /_/
%s ` + Version + `
SQLite access in the connect/cursor/execute/fetch shape`

	asciiArt = asciiArt[1:]                          // This just removes the first newline character
	asciiArt = colorCyanBold + asciiArt + colorReset // Add color to the ASCII art

	return asciiArt
}

// CLIVersion returns the banner shown by the gsqlite shell.
func CLIVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Shell")
}
