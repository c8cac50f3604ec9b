// Package banner prints the release announcement header.
package banner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/thirukguru/release-notice/utils/ansi"
	"github.com/thirukguru/release-notice/utils/console"
)

type bannerColor int

const (
	bannerGitHubGreen bannerColor = iota
	bannerIBMBlue
	bannerTwitchPurple
	bannerAmazonOrange
	bannerAirbnbPink
)

var bannerTitleColors = []string{
	"\x1b[38;2;46;160;67m",  // GitHub Green
	"\x1b[38;2;15;98;254m",  // IBM Blue
	"\x1b[38;2;145;70;255m", // Twitch Purple
	"\x1b[38;2;255;153;0m",  // Amazon Orange
	"\x1b[38;2;255;90;95m",  // Airbnb Pink
}

var bannerTitleColorNames = []string{
	"GitHubGreen",
	"IBMBlue",
	"TwitchPurple",
	"AmazonOrange",
	"AirbnbPink",
}

const (
	bannerTitleColorDefault        = bannerGitHubGreen
	bannerTitleColorBlueBackground = bannerAmazonOrange
	bannerTitleColorEnv            = "RELEASE_NOTICE_BANNER_COLOR"
)

// Lines returns the boxed banner text without colour codes.
func Lines(title, subtitle string) []string {
	inner := runewidth.StringWidth(title)
	if w := runewidth.StringWidth(subtitle); w > inner {
		inner = w
	}
	inner += 4

	pad := func(s string) string {
		return "│  " + s + strings.Repeat(" ", inner-4-runewidth.StringWidth(s)) + "  │"
	}

	lines := []string{"╭" + strings.Repeat("─", inner) + "╮", pad(title)}
	if subtitle != "" {
		lines = append(lines, pad(subtitle))
	}
	return append(lines, "╰"+strings.Repeat("─", inner)+"╯")
}

func printCenteredLines(w io.Writer, lines []string, width int) {
	for _, line := range lines {
		pad := 0
		if lw := runewidth.StringWidth(line); width > lw {
			pad = (width - lw) / 2
		}
		if pad > 0 {
			fmt.Fprint(w, strings.Repeat(" ", pad))
		}
		fmt.Fprintln(w, line)
	}
}

func bannerTitleColor(f *os.File) bannerColor {
	if color, ok := bannerTitleColorFromEnv(); ok {
		return color
	}

	if console.IsBlueBackground(f) {
		return bannerTitleColorBlueBackground
	}

	return bannerTitleColorDefault
}

func bannerTitleColorFromEnv() (bannerColor, bool) {
	raw := strings.TrimSpace(os.Getenv(bannerTitleColorEnv))
	if raw == "" {
		return 0, false
	}

	for idx, color := range bannerTitleColors {
		if strings.EqualFold(raw, bannerTitleColorNames[idx]) || raw == color {
			return bannerColor(idx), true
		}
	}

	return 0, false
}

// DrawBannerTitle prints the banner centred on f.
func DrawBannerTitle(f *os.File, title, subtitle string) {
	ansi.EnableANSI(f)

	fmt.Fprint(f, bannerTitleColors[bannerTitleColor(f)])
	printCenteredLines(f, Lines(title, subtitle), console.Width(f, 80))
	fmt.Fprint(f, "\x1b[0m")
}
