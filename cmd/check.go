// Package cmd implements the command-line interface for pcmcast.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/pcmcast-cli/pcmcast/color"
	"github.com/pcmcast-cli/pcmcast/ffmpeg"
	"github.com/pcmcast-cli/pcmcast/icon"
	"github.com/pcmcast-cli/pcmcast/style"
)

// CheckDependencies verifies the availability of required system dependencies.
// The current implementation validates the presence of the configured decode
// program in the system PATH.
func CheckDependencies() {
	program := ffmpeg.Program()
	_, err := exec.LookPath(program)
	if err != nil {
		printMissingDependencyError(program)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install ffmpeg"
	case "linux":
		installCmd = "sudo apt install ffmpeg" // Generic, maybe check distro
	case "windows":
		installCmd = "scoop install ffmpeg"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep)

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.Orange).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
