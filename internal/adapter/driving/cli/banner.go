package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/caguiar/servicedesk-dashboard-go/pkg/version"
)

// displayWelcomeBanner prints the welcome banner with version information.
func displayWelcomeBanner(versionStr string) {
	banner := `
         _____                 _               ____            _
        / ___/___  ______   __(_)________     / __ \___  _____/ /__
        \__ \/ _ \/ ___/ | / / / ___/ _ \   / / / / _ \/ ___/ //_/
       ___/ /  __/ /   | |/ / / /__/  __/  / /_/ /  __(__  ) ,<
      /____/\___/_/    |___/_/\___/\___/  /_____/\___/____/_/|_|

                        D A S H B O A R D
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Service Desk Dashboard CLI (v%s)", formattedVersion)))
}
