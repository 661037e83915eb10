package ui

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// ConsoleAlerter prints blocking user-facing messages to the terminal.
type ConsoleAlerter struct {
	Out io.Writer
}

func (a ConsoleAlerter) Alert(message string) {
	fmt.Fprintf(a.Out, "\n!! %s\n\n", message)
}

// BrowserPaymentPage opens the payment link with the platform's URL opener,
// the terminal equivalent of a new browser tab.
type BrowserPaymentPage struct{}

func (BrowserPaymentPage) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
