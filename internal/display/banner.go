package display

import (
	"fmt"
	"os"

	"github.com/glowmark/limelight/internal/term"
)

// PrintBanner prints the ASCII art banner, styled when colors are enabled.
func PrintBanner() {
	const art = ` _ _                _ _       _     _
| (_)_ __ ___   ___| (_) __ _| |__ | |_
| | | '_ ` + "`" + ` _ \ / _ \ | |/ _` + "`" + ` | '_ \| __|
| | | | | | | |  __/ | | (_| | | | | |_
|_|_|_| |_| |_|\___|_|_|\__, |_| |_|\__|
                        |___/`
	fmt.Fprintln(os.Stdout, term.Banner.Render(art))
}
